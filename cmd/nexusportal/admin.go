package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nexusportal/internal/config"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative tools",
	}
	cmd.AddCommand(adminSQLCmd())
	return cmd
}

func adminSQLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sql <query>",
		Short: "Execute a raw SQL query against the portal tables",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.LoadProjectConfig(configPath)
			if err != nil {
				return err
			}
			db, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close(ctx)

			rows, err := db.RunSQL(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			payload, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
			fmt.Fprintln(os.Stdout, string(payload))
			return nil
		},
	}
}
