package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"nexusportal/internal/portal"
	"nexusportal/internal/store"
)

func (c *Client) GetFeedbackRequest(ctx context.Context, id string) (*portal.FeedbackRequest, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT id, from_user, fb_type, status, due_date
		 FROM feedback_requests WHERE id = ?`, id)

	var f portal.FeedbackRequest
	var fromBytes []byte
	err := row.Scan(&f.ID, &fromBytes, &f.Type, &f.Status, &f.DueDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting feedback request: %w: %w", store.ErrUnavailable, err)
	}
	if err := json.Unmarshal(fromBytes, &f.From); err != nil {
		return nil, fmt.Errorf("unmarshaling requester: %w", err)
	}
	return &f, nil
}

func (c *Client) ListFeedbackRequests(ctx context.Context) ([]portal.FeedbackRequest, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, from_user, fb_type, status, due_date
		 FROM feedback_requests ORDER BY due_date, id`)
	if err != nil {
		return nil, fmt.Errorf("listing feedback requests: %w: %w", store.ErrUnavailable, err)
	}
	defer rows.Close()

	requests := make([]portal.FeedbackRequest, 0)
	for rows.Next() {
		var f portal.FeedbackRequest
		var fromBytes []byte
		if err := rows.Scan(&f.ID, &fromBytes, &f.Type, &f.Status, &f.DueDate); err != nil {
			return nil, fmt.Errorf("scanning feedback request: %w: %w", store.ErrUnavailable, err)
		}
		if err := json.Unmarshal(fromBytes, &f.From); err != nil {
			return nil, fmt.Errorf("unmarshaling requester: %w", err)
		}
		requests = append(requests, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback requests: %w: %w", store.ErrUnavailable, err)
	}
	return requests, nil
}

func (c *Client) AddFeedbackRequest(ctx context.Context, f portal.FeedbackRequest) error {
	return c.add(ctx, "feedback_requests", f.ID, func(tx *sql.Tx) error {
		fromJSON, err := json.Marshal(f.From)
		if err != nil {
			return fmt.Errorf("marshaling requester: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO feedback_requests (id, from_user, fb_type, status, due_date)
			 VALUES (?, ?, ?, ?, ?)`,
			f.ID, fromJSON, f.Type, f.Status, f.DueDate)
		if err != nil {
			return fmt.Errorf("writing feedback request: %w: %w", store.ErrUnavailable, err)
		}
		return nil
	})
}

func (c *Client) DeleteFeedbackRequest(ctx context.Context, id string) error {
	return c.deleteByID(ctx, "feedback_requests", id)
}
