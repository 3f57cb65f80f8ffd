package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"nexusportal/internal/portal"
)

func peopleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "people",
		Short: "Manage the consultant bench",
	}
	cmd.AddCommand(peopleListCmd())
	cmd.AddCommand(peopleCreateCmd())
	cmd.AddCommand(peopleDeleteCmd())
	return cmd
}

func peopleListCmd() *cobra.Command {
	var availability string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List consultants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.finish(ctx)

			printed := 0
			for _, c := range s.ctrl.Consultants() {
				if availability != "" && string(c.Availability) != availability {
					continue
				}
				fmt.Fprintf(os.Stdout, "%s  %s - %s, %s ($%.0f/hr, %s)\n",
					c.ID, c.Name, c.Role, c.Specialty, c.Rate, c.Availability)
				printed++
			}
			if printed == 0 {
				fmt.Fprintln(os.Stdout, "No consultants found.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&availability, "availability", "", "Filter by availability (Available, On Bench, Assigned)")
	return cmd
}

func peopleCreateCmd() *cobra.Command {
	var (
		id        string
		role      string
		rate      float64
		specialty string
		avatar    string
	)
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a consultant",
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
			con := portal.Consultant{
				ID:        id,
				Name:      args[0],
				Role:      role,
				Rate:      rate,
				Avatar:    avatar,
				Specialty: specialty,
			}
			if err := s.ctrl.CreateConsultant(con); err != nil {
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
	cmd.Flags().StringVar(&id, "id", "", "Consultant id (generated when empty)")
	cmd.Flags().StringVar(&role, "role", "Associate", "Role")
	cmd.Flags().Float64Var(&rate, "rate", 150, "Hourly rate")
	cmd.Flags().StringVar(&specialty, "specialty", "Generalist", "Specialty")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar URL")
	return cmd
}

func peopleDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a consultant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirmDelete(cmd, yes, "consultant "+args[0]); err != nil {
				return err
			}
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			if err := s.ctrl.DeleteConsultant(args[0]); err != nil {
				s.finish(ctx)
				return err
			}
			return s.finish(ctx)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
