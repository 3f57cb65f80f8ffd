package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"nexusportal/internal/portal"
	"nexusportal/internal/store"
)

func (c *Client) GetAnnouncement(ctx context.Context, id string) (*portal.Announcement, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT id, title, category, date, summary FROM announcements WHERE id = ?`, id)

	var a portal.Announcement
	err := row.Scan(&a.ID, &a.Title, &a.Category, &a.Date, &a.Summary)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting announcement: %w: %w", store.ErrUnavailable, err)
	}
	return &a, nil
}

// ListAnnouncements returns newest first, matching the dashboard feed. The
// date column is display text, so ordering falls back to id within a day.
func (c *Client) ListAnnouncements(ctx context.Context) ([]portal.Announcement, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, title, category, date, summary
		 FROM announcements ORDER BY date DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing announcements: %w: %w", store.ErrUnavailable, err)
	}
	defer rows.Close()

	announcements := make([]portal.Announcement, 0)
	for rows.Next() {
		var a portal.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Category, &a.Date, &a.Summary); err != nil {
			return nil, fmt.Errorf("scanning announcement: %w: %w", store.ErrUnavailable, err)
		}
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating announcements: %w: %w", store.ErrUnavailable, err)
	}
	return announcements, nil
}

func (c *Client) AddAnnouncement(ctx context.Context, a portal.Announcement) error {
	return c.add(ctx, "announcements", a.ID, func(tx *sql.Tx) error {
		return c.writeAnnouncement(ctx, tx, a)
	})
}

func (c *Client) PutAnnouncement(ctx context.Context, a portal.Announcement) error {
	return c.put(ctx, func(tx *sql.Tx) error {
		return c.writeAnnouncement(ctx, tx, a)
	})
}

func (c *Client) writeAnnouncement(ctx context.Context, tx *sql.Tx, a portal.Announcement) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO announcements (id, title, category, date, summary)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			category = excluded.category,
			date = excluded.date,
			summary = excluded.summary`,
		a.ID, a.Title, a.Category, a.Date, a.Summary)
	if err != nil {
		return fmt.Errorf("writing announcement: %w: %w", store.ErrUnavailable, err)
	}
	return nil
}

func (c *Client) DeleteAnnouncement(ctx context.Context, id string) error {
	return c.deleteByID(ctx, "announcements", id)
}
