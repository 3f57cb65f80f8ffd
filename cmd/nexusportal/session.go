package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nexusportal/internal/config"
	"nexusportal/internal/seed"
	"nexusportal/internal/state"
	"nexusportal/internal/store"
)

const configPath = "portal.yaml"

// session is one CLI invocation's view of the portal: config, store and
// the loaded state controller.
type session struct {
	cfg  *config.ProjectConfig
	db   store.Store
	ctrl *state.Controller
	log  *zap.Logger
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return nil, err
	}

	log := newLogger()

	db, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	ctrl := state.New(db, seed.CurrentUser, log)
	if lenient {
		if err := ctrl.LoadLenient(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: some collections failed to load: %v\n", err)
		}
	} else if err := ctrl.Load(ctx); err != nil {
		ctrl.Close()
		db.Close(ctx)
		return nil, err
	}

	return &session{cfg: cfg, db: db, ctrl: ctrl, log: log}, nil
}

// finish flushes pending writes and closes everything. Mutating commands
// must see the flush error: a mutation the store rejected looked applied
// until now.
func (s *session) finish(ctx context.Context) error {
	flushErr := s.ctrl.Flush(ctx)
	s.ctrl.Close()
	if err := s.db.Close(ctx); err != nil && flushErr == nil {
		flushErr = err
	}
	if flushErr != nil {
		return fmt.Errorf("saving changes: %w", flushErr)
	}
	return nil
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func seedDataset(cfg *config.ProjectConfig) store.Dataset {
	consultants := seed.Consultants(cfg.Seed.Consultants)
	return store.Dataset{
		Tasks:            seed.Tasks(),
		Announcements:    seed.Announcements(),
		KnowledgeDocs:    seed.KnowledgeDocs(),
		Consultants:      consultants,
		Engagements:      seed.Engagements(cfg.Seed.Engagements, consultants),
		FeedbackRequests: seed.FeedbackRequests(),
	}
}

// confirmDelete prompts before a destructive command unless --yes.
func confirmDelete(cmd *cobra.Command, yes bool, what string) error {
	if yes {
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Delete %s? [y/N]: ", what)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer != "y" && answer != "yes" {
		return fmt.Errorf("aborted")
	}
	return nil
}
