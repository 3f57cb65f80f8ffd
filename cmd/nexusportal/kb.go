package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"nexusportal/internal/assistant"
	"nexusportal/internal/portal"
)

func kbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Browse and search the knowledge base",
	}
	cmd.AddCommand(kbListCmd())
	cmd.AddCommand(kbSearchCmd())
	cmd.AddCommand(kbCreateCmd())
	cmd.AddCommand(kbDeleteCmd())
	cmd.AddCommand(kbAskCmd())
	return cmd
}

func kbListCmd() *cobra.Command {
	var docType string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List knowledge documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.finish(ctx)

			printed := 0
			for _, d := range s.ctrl.KnowledgeDocs() {
				if docType != "" && string(d.Type) != docType {
					continue
				}
				fmt.Fprintf(os.Stdout, "%s  [%s]  %s (updated %s)", d.ID, d.Type, d.Title, d.LastUpdated)
				if len(d.Tags) > 0 {
					fmt.Fprintf(os.Stdout, "  #%s", strings.Join(d.Tags, " #"))
				}
				fmt.Fprintln(os.Stdout)
				printed++
			}
			if printed == 0 {
				fmt.Fprintln(os.Stdout, "No documents found.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&docType, "type", "", "Filter by type (Policy, Guide, Report, Wiki)")
	return cmd
}

func kbSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search over the knowledge base",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.finish(ctx)

			results, err := s.db.SearchKnowledge(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Fprintln(os.Stdout, "No results found.")
				return nil
			}
			for _, r := range results {
				fmt.Fprintf(os.Stdout, "%s  [%s]  %s (score %.2f)\n", r.ID, r.Type, r.Title, r.Score)
				if r.Snippet != "" {
					fmt.Fprintf(os.Stdout, "    %s\n", r.Snippet)
				}
			}
			return nil
		},
	}
}

func kbCreateCmd() *cobra.Command {
	var (
		id          string
		docType     string
		lastUpdated string
		content     string
		tags        []string
	)
	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a knowledge document",
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
			doc := portal.KnowledgeDoc{
				ID:          id,
				Title:       args[0],
				Type:        portal.DocType(docType),
				LastUpdated: lastUpdated,
				Content:     content,
				Tags:        tags,
			}
			if err := s.ctrl.CreateKnowledgeDoc(doc); err != nil {
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
	cmd.Flags().StringVar(&id, "id", "", "Document id (generated when empty)")
	cmd.Flags().StringVar(&docType, "type", "Wiki", "Type (Policy, Guide, Report, Wiki)")
	cmd.Flags().StringVar(&lastUpdated, "updated", "", "Last updated display date")
	cmd.Flags().StringVar(&content, "content", "", "Document content")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag (repeatable)")
	return cmd
}

func kbDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a knowledge document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirmDelete(cmd, yes, "document "+args[0]); err != nil {
				return err
			}
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			if err := s.ctrl.DeleteKnowledgeDoc(args[0]); err != nil {
				s.finish(ctx)
				return err
			}
			return s.finish(ctx)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")
	return cmd
}

func kbAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the assistant a question grounded in the knowledge base",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.finish(ctx)

			docs := s.ctrl.KnowledgeDocs()
			gw, err := assistant.New(ctx, s.cfg.Assistant,
				assistant.BuildCompanyContext(docs, s.ctrl.CurrentUser()), s.log)
			if err != nil {
				return err
			}

			answer := gw.QueryKnowledge(ctx, strings.Join(args, " "), docs)
			fmt.Fprintln(os.Stdout, answer)
			return nil
		},
	}
}
