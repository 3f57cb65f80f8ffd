package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"nexusportal/internal/portal"
)

func announcementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "announcement",
		Short: "Manage announcements",
	}
	cmd.AddCommand(announcementListCmd())
	cmd.AddCommand(announcementCreateCmd())
	cmd.AddCommand(announcementDeleteCmd())
	return cmd
}

func announcementListCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List announcements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.finish(ctx)

			printed := 0
			for _, a := range s.ctrl.Announcements() {
				if category != "" && string(a.Category) != category {
					continue
				}
				fmt.Fprintf(os.Stdout, "%s  [%s]  %s - %s\n", a.ID, a.Category, a.Title, a.Date)
				fmt.Fprintf(os.Stdout, "    %s\n", a.Summary)
				printed++
			}
			if printed == 0 {
				fmt.Fprintln(os.Stdout, "No announcements found.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Filter by category (Strategic, HR, Tech, General)")
	return cmd
}

func announcementCreateCmd() *cobra.Command {
	var (
		id       string
		category string
		date     string
		summary  string
	)
	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create an announcement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}

			if id == "" {
				id = uuid.NewString()
			}
			a := portal.Announcement{
				ID:       id,
				Title:    args[0],
				Category: portal.AnnouncementCategory(category),
				Date:     date,
				Summary:  summary,
			}
			if err := s.ctrl.CreateAnnouncement(a); err != nil {
				s.finish(ctx)
				return err
			}
			if err := s.finish(ctx); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, id)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Announcement id (generated when empty)")
	cmd.Flags().StringVar(&category, "category", "General", "Category (Strategic, HR, Tech, General)")
	cmd.Flags().StringVar(&date, "date", "", "Display date")
	cmd.Flags().StringVar(&summary, "summary", "", "Summary text")
	return cmd
}

func announcementDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an announcement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirmDelete(cmd, yes, "announcement "+args[0]); err != nil {
				return err
			}
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			if err := s.ctrl.DeleteAnnouncement(args[0]); err != nil {
				s.finish(ctx)
				return err
			}
			return s.finish(ctx)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
