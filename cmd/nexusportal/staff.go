package main

import (
	"context"

	"github.com/spf13/cobra"
)

func staffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Assign consultants to engagement needs",
	}
	cmd.AddCommand(staffAssignCmd())
	cmd.AddCommand(staffUnassignCmd())
	return cmd
}

func staffAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <engagement-id> <need-id> <consultant-id>",
		Short: "Fill a staffing need",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			if err := s.ctrl.AssignConsultant(args[0], args[1], args[2]); err != nil {
				s.finish(ctx)
				return err
			}
			return s.finish(ctx)
		},
	}
}

func staffUnassignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unassign <engagement-id> <need-id>",
		Short: "Clear a filled staffing need",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			if err := s.ctrl.UnassignConsultant(args[0], args[1]); err != nil {
				s.finish(ctx)
				return err
			}
			return s.finish(ctx)
		},
	}
}
