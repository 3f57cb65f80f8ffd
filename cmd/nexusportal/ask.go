package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nexusportal/internal/assistant"
)

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <prompt>",
		Short: "Chat with NOVA, the portal assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.finish(ctx)

			gw, err := assistant.New(ctx, s.cfg.Assistant,
				assistant.BuildCompanyContext(s.ctrl.KnowledgeDocs(), s.ctrl.CurrentUser()), s.log)
			if err != nil {
				return err
			}

			answer := gw.Respond(ctx, strings.Join(args, " "), nil)
			fmt.Fprintln(os.Stdout, answer)
			return nil
		},
	}
}
