package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"nexusportal/internal/store"
)

// add runs write inside a transaction after verifying the id is absent.
// Table names are compile-time constants, never caller input.
func (c *Client) add(ctx context.Context, table, id string, write func(tx *sql.Tx) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning add: %w: %w", store.ErrUnavailable, err)
	}
	defer tx.Rollback()

	var one int
	err = tx.QueryRowContext(ctx,
		fmt.Sprintf("SELECT 1 FROM %s WHERE id = ?", table), id).Scan(&one)
	switch {
	case err == nil:
		return fmt.Errorf("adding to %s: id %q: %w", table, id, store.ErrDuplicateKey)
	case err != sql.ErrNoRows:
		return fmt.Errorf("checking %s id: %w: %w", table, store.ErrUnavailable, err)
	}

	if err := write(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing add: %w: %w", store.ErrUnavailable, err)
	}
	return nil
}

func (c *Client) put(ctx context.Context, write func(tx *sql.Tx) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning put: %w: %w", store.ErrUnavailable, err)
	}
	defer tx.Rollback()

	if err := write(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing put: %w: %w", store.ErrUnavailable, err)
	}
	return nil
}

// deleteByID removes the row if present. Deleting a missing id is not an
// error.
func (c *Client) deleteByID(ctx context.Context, table, id string) error {
	_, err := c.db.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w: %w", table, store.ErrUnavailable, err)
	}
	return nil
}
