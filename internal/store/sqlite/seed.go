package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"nexusportal/internal/store"
)

// SeedOnce populates the collections on first open. The guard is a marker
// row, not an emptiness check: once a store has been seeded, later fixture
// changes (or an operator emptying a table) must never trigger a re-seed.
func (c *Client) SeedOnce(ctx context.Context, data store.Dataset) (bool, error) {
	var marker string
	err := c.db.QueryRowContext(ctx,
		`SELECT value FROM portal_meta WHERE key = 'seeded'`).Scan(&marker)
	if err == nil {
		return false, nil
	}
	if err != sql.ErrNoRows {
		return false, fmt.Errorf("reading seed marker: %w: %w", store.ErrUnavailable, err)
	}

	for _, t := range data.Tasks {
		if err := c.PutTask(ctx, t); err != nil {
			return false, fmt.Errorf("seeding tasks: %w", err)
		}
	}
	for _, a := range data.Announcements {
		if err := c.PutAnnouncement(ctx, a); err != nil {
			return false, fmt.Errorf("seeding announcements: %w", err)
		}
	}
	for _, d := range data.KnowledgeDocs {
		if err := c.PutKnowledgeDoc(ctx, d); err != nil {
			return false, fmt.Errorf("seeding knowledge docs: %w", err)
		}
	}
	for _, con := range data.Consultants {
		if err := c.PutConsultant(ctx, con); err != nil {
			return false, fmt.Errorf("seeding consultants: %w", err)
		}
	}
	for _, e := range data.Engagements {
		if err := c.PutEngagement(ctx, e); err != nil {
			return false, fmt.Errorf("seeding engagements: %w", err)
		}
	}
	for _, f := range data.FeedbackRequests {
		if err := c.AddFeedbackRequest(ctx, f); err != nil {
			return false, fmt.Errorf("seeding feedback requests: %w", err)
		}
	}

	if _, err := c.db.ExecContext(ctx,
		`INSERT INTO portal_meta (key, value) VALUES ('seeded', '1')`); err != nil {
		return false, fmt.Errorf("writing seed marker: %w: %w", store.ErrUnavailable, err)
	}
	return true, nil
}
