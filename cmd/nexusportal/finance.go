package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"nexusportal/internal/portal"
)

func financeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Manage client engagements",
	}
	cmd.AddCommand(financeListCmd())
	cmd.AddCommand(financeShowCmd())
	cmd.AddCommand(financeCreateCmd())
	cmd.AddCommand(financeStatusCmd())
	cmd.AddCommand(financeDeleteCmd())
	return cmd
}

func financeListCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List engagements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.finish(ctx)

			printed := 0
			for _, e := range s.ctrl.Engagements() {
				if status != "" && string(e.Status) != status {
					continue
				}
				open := 0
				for _, n := range e.StaffingNeeds {
					if n.FilledBy == "" {
						open++
					}
				}
				fmt.Fprintf(os.Stdout, "%s  [%s]  %s / %s - $%.0f, %d staffed, %d open\n",
					e.ID, e.Status, e.ClientName, e.ProjectName, e.Budget, len(e.Team), open)
				printed++
			}
			if printed == 0 {
				fmt.Fprintln(os.Stdout, "No engagements found.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (Pipeline, Active, Completed, On Hold)")
	return cmd
}

func financeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one engagement with its staffing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.finish(ctx)

			e, ok := s.ctrl.Engagement(args[0])
			if !ok {
				return fmt.Errorf("engagement %q not found", args[0])
			}

			fmt.Fprintf(os.Stdout, "%s - %s / %s\n", e.ID, e.ClientName, e.ProjectName)
			fmt.Fprintf(os.Stdout, "Status: %s | %s to %s | %s | $%.0f\n",
				e.Status, e.StartDate, e.EndDate, e.PricingModel, e.Budget)
			if e.Description != "" {
				fmt.Fprintf(os.Stdout, "%s\n", e.Description)
			}

			fmt.Fprintf(os.Stdout, "Staffing (%d needs):\n", len(e.StaffingNeeds))
			for _, n := range e.StaffingNeeds {
				filled := "open"
				if n.FilledBy != "" {
					filled = "filled by " + n.FilledBy
					if c, ok := s.ctrl.Consultant(n.FilledBy); ok {
						filled = fmt.Sprintf("filled by %s (%s)", c.Name, c.ID)
					}
				}
				fmt.Fprintf(os.Stdout, "  %s  %s - %s\n", n.ID, n.Role, filled)
			}
			return nil
		},
	}
}

func financeCreateCmd() *cobra.Command {
	var (
		id           string
		projectName  string
		status       string
		startDate    string
		endDate      string
		pricingModel string
		budget       float64
		description  string
		needRoles    []string
	)
	cmd := &cobra.Command{
		Use:   "create <client>",
		Short: "Create an engagement",
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
			needs := make([]portal.StaffingNeed, 0, len(needRoles))
			for i, role := range needRoles {
				needs = append(needs, portal.StaffingNeed{
					ID:     fmt.Sprintf("need-%s-%d", id, i),
					Role:   role,
					Skills: []string{},
				})
			}
			e := portal.Engagement{
				ID:            id,
				ClientName:    args[0],
				ProjectName:   projectName,
				Status:        portal.EngagementStatus(status),
				StartDate:     startDate,
				EndDate:       endDate,
				PricingModel:  portal.PricingModel(pricingModel),
				Budget:        budget,
				Description:   description,
				Team:          []string{},
				StaffingNeeds: needs,
			}
			if err := s.ctrl.CreateEngagement(e); err != nil {
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
	cmd.Flags().StringVar(&id, "id", "", "Engagement id (generated when empty)")
	cmd.Flags().StringVar(&projectName, "project", "", "Project name")
	cmd.Flags().StringVar(&status, "status", "Pipeline", "Status (Pipeline, Active, Completed, On Hold)")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date")
	cmd.Flags().StringVar(&endDate, "end", "", "End date")
	cmd.Flags().StringVar(&pricingModel, "pricing", "Time & Materials", "Pricing model (Fixed Fee, Time & Materials, Retainer)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Budget")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringArrayVar(&needRoles, "need", nil, "Open staffing need role (repeatable)")
	return cmd
}

func financeStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move an engagement to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			if err := s.ctrl.SetEngagementStatus(args[0], portal.EngagementStatus(args[1])); err != nil {
				s.finish(ctx)
				return err
			}
			return s.finish(ctx)
		},
	}
}

func financeDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an engagement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirmDelete(cmd, yes, "engagement "+args[0]); err != nil {
				return err
			}
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			if err := s.ctrl.DeleteEngagement(args[0]); err != nil {
				s.finish(ctx)
				return err
			}
			return s.finish(ctx)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}
