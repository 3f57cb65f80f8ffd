package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	lenient bool
)

func main() {
	root := &cobra.Command{
		Use:   "nexusportal",
		Short: "Nexus Corp intranet portal",
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log internal activity")
	root.PersistentFlags().BoolVar(&lenient, "lenient", false, "Start the session even if some collections fail to load")
	root.AddCommand(initCmd())
	root.AddCommand(dashboardCmd())
	root.AddCommand(taskCmd())
	root.AddCommand(announcementCmd())
	root.AddCommand(kbCmd())
	root.AddCommand(peopleCmd())
	root.AddCommand(financeCmd())
	root.AddCommand(staffCmd())
	root.AddCommand(feedbackCmd())
	root.AddCommand(profileCmd())
	root.AddCommand(askCmd())
	root.AddCommand(adminCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
