package state

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"nexusportal/internal/portal"
)

// Load fetches all six collections in parallel and installs them as the
// session mirror. All collections must resolve; on any failure the
// mirror is left untouched and the session stays in its prior state.
// Calling Load on a ready session refreshes the mirror.
func (c *Controller) Load(ctx context.Context) error {
	var (
		tasks            []portal.Task
		announcements    []portal.Announcement
		knowledgeDocs    []portal.KnowledgeDoc
		consultants      []portal.Consultant
		engagements      []portal.Engagement
		feedbackRequests []portal.FeedbackRequest
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if tasks, err = c.store.ListTasks(gctx); err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if announcements, err = c.store.ListAnnouncements(gctx); err != nil {
			return fmt.Errorf("loading announcements: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if knowledgeDocs, err = c.store.ListKnowledgeDocs(gctx); err != nil {
			return fmt.Errorf("loading knowledge docs: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if consultants, err = c.store.ListConsultants(gctx); err != nil {
			return fmt.Errorf("loading consultants: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if engagements, err = c.store.ListEngagements(gctx); err != nil {
			return fmt.Errorf("loading engagements: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if feedbackRequests, err = c.store.ListFeedbackRequests(gctx); err != nil {
			return fmt.Errorf("loading feedback requests: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		c.log.Error("session load failed", zap.Error(err))
		return err
	}

	c.install(tasks, announcements, knowledgeDocs, consultants, engagements, feedbackRequests)
	return nil
}

// LoadLenient fetches the collections sequentially and installs whatever
// resolved, leaving failed collections empty. The session becomes ready
// regardless; the joined error reports what is missing.
func (c *Controller) LoadLenient(ctx context.Context) error {
	var errs []error

	tasks, err := c.store.ListTasks(ctx)
	if err != nil {
		c.log.Warn("loading tasks", zap.Error(err))
		errs = append(errs, fmt.Errorf("loading tasks: %w", err))
	}
	announcements, err := c.store.ListAnnouncements(ctx)
	if err != nil {
		c.log.Warn("loading announcements", zap.Error(err))
		errs = append(errs, fmt.Errorf("loading announcements: %w", err))
	}
	knowledgeDocs, err := c.store.ListKnowledgeDocs(ctx)
	if err != nil {
		c.log.Warn("loading knowledge docs", zap.Error(err))
		errs = append(errs, fmt.Errorf("loading knowledge docs: %w", err))
	}
	consultants, err := c.store.ListConsultants(ctx)
	if err != nil {
		c.log.Warn("loading consultants", zap.Error(err))
		errs = append(errs, fmt.Errorf("loading consultants: %w", err))
	}
	engagements, err := c.store.ListEngagements(ctx)
	if err != nil {
		c.log.Warn("loading engagements", zap.Error(err))
		errs = append(errs, fmt.Errorf("loading engagements: %w", err))
	}
	feedbackRequests, err := c.store.ListFeedbackRequests(ctx)
	if err != nil {
		c.log.Warn("loading feedback requests", zap.Error(err))
		errs = append(errs, fmt.Errorf("loading feedback requests: %w", err))
	}

	c.install(tasks, announcements, knowledgeDocs, consultants, engagements, feedbackRequests)
	return errors.Join(errs...)
}

func (c *Controller) install(
	tasks []portal.Task,
	announcements []portal.Announcement,
	knowledgeDocs []portal.KnowledgeDoc,
	consultants []portal.Consultant,
	engagements []portal.Engagement,
	feedbackRequests []portal.FeedbackRequest,
) {
	c.mu.Lock()
	c.tasks = emptyIfNil(tasks)
	c.announcements = emptyIfNil(announcements)
	c.knowledgeDocs = emptyIfNil(knowledgeDocs)
	c.consultants = emptyIfNil(consultants)
	c.engagements = emptyIfNil(engagements)
	c.feedbackRequests = emptyIfNil(feedbackRequests)
	c.mu.Unlock()

	if c.lifecycle.CurrentState() == stateLoading {
		c.lifecycle.HandleEvent(eventLoaded, nil)
	}
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
