package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"nexusportal/internal/portal"
	"nexusportal/internal/store"
)

func (c *Client) GetTask(ctx context.Context, id string) (*portal.Task, error) {
	row := c.pool.QueryRow(ctx,
		`SELECT id, title, description, due_date, priority, task_type, progress
		 FROM tasks WHERE id = $1`, id)

	var t portal.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Priority, &t.Type, &t.Progress)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting task: %w: %w", store.ErrUnavailable, err)
	}
	return &t, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]portal.Task, error) {
	rows, err := c.pool.Query(ctx,
		`SELECT id, title, description, due_date, priority, task_type, progress
		 FROM tasks ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w: %w", store.ErrUnavailable, err)
	}
	defer rows.Close()

	tasks := make([]portal.Task, 0)
	for rows.Next() {
		var t portal.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Priority, &t.Type, &t.Progress); err != nil {
			return nil, fmt.Errorf("scanning task: %w: %w", store.ErrUnavailable, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w: %w", store.ErrUnavailable, err)
	}
	return tasks, nil
}

func (c *Client) AddTask(ctx context.Context, t portal.Task) error {
	return c.add(ctx, "tasks", t.ID, func(tx pgx.Tx) error {
		return writeTask(ctx, tx, t)
	})
}

func (c *Client) PutTask(ctx context.Context, t portal.Task) error {
	return writeTask(ctx, c.pool, t)
}

func writeTask(ctx context.Context, db pgxExecer, t portal.Task) error {
	_, err := db.Exec(ctx,
		`INSERT INTO tasks (id, title, description, due_date, priority, task_type, progress)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			due_date = excluded.due_date,
			priority = excluded.priority,
			task_type = excluded.task_type,
			progress = excluded.progress`,
		t.ID, t.Title, t.Description, t.DueDate, t.Priority, t.Type, t.Progress)
	if err != nil {
		return fmt.Errorf("writing task: %w: %w", store.ErrUnavailable, err)
	}
	return nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.deleteByID(ctx, "tasks", id)
}
