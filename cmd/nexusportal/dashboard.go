package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nexusportal/internal/portal"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the portal home view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.finish(ctx)

			user := s.ctrl.CurrentUser()
			fmt.Fprintf(os.Stdout, "Welcome back, %s (%s, %s)\n\n", user.Name, user.Role, user.Department)

			tasks := s.ctrl.Tasks()
			fmt.Fprintf(os.Stdout, "Tasks (%d):\n", len(tasks))
			for _, t := range tasks {
				if t.Priority != portal.PriorityHigh {
					continue
				}
				fmt.Fprintf(os.Stdout, "  ! %s - %s (due %s, %d%%)\n", t.ID, t.Title, t.DueDate, t.Progress)
			}

			announcements := s.ctrl.Announcements()
			fmt.Fprintf(os.Stdout, "\nAnnouncements (%d):\n", len(announcements))
			for i, a := range announcements {
				if i == 3 {
					break
				}
				fmt.Fprintf(os.Stdout, "  [%s] %s - %s\n", a.Category, a.Title, a.Date)
			}

			pending := 0
			for _, f := range s.ctrl.FeedbackRequests() {
				if f.Status == portal.FeedbackPending {
					pending++
				}
			}
			fmt.Fprintf(os.Stdout, "\nPending feedback requests: %d\n", pending)

			active := 0
			for _, e := range s.ctrl.Engagements() {
				if e.Status == portal.StatusActive {
					active++
				}
			}
			fmt.Fprintf(os.Stdout, "Active engagements: %d of %d\n", active, len(s.ctrl.Engagements()))
			fmt.Fprintf(os.Stdout, "Consultants on the bench: %d\n", len(s.ctrl.Consultants()))
			return nil
		},
	}
}
