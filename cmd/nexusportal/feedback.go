package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func feedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Review feedback requests",
	}
	cmd.AddCommand(feedbackListCmd())
	return cmd
}

func feedbackListCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List feedback requests addressed to you",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.finish(ctx)

			printed := 0
			for _, f := range s.ctrl.FeedbackRequests() {
				if status != "" && string(f.Status) != status {
					continue
				}
				fmt.Fprintf(os.Stdout, "%s  [%s/%s]  from %s (%s), due %s\n",
					f.ID, f.Type, f.Status, f.From.Name, f.From.Role, f.DueDate)
				printed++
			}
			if printed == 0 {
				fmt.Fprintln(os.Stdout, "No feedback requests found.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (Pending, Completed)")
	return cmd
}
