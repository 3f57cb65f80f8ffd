package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nexusportal/internal/portal"
	"nexusportal/internal/seed"
)

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [consultant-id]",
		Short: "Show your profile, or a consultant's",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.finish(ctx)

			var profile portal.UserProfile
			switch {
			case len(args) == 0, args[0] == seed.CurrentUser.ID:
				profile = seed.CurrentUserProfile
			default:
				con, ok := s.ctrl.Consultant(args[0])
				if !ok {
					return fmt.Errorf("consultant %q not found", args[0])
				}
				profile = portal.DeriveProfile(con)
			}

			payload, err := json.MarshalIndent(profile, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding profile: %w", err)
			}
			fmt.Fprintln(os.Stdout, string(payload))
			return nil
		},
	}
}
