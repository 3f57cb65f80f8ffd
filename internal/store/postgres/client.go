// Package postgres implements the portal store on PostgreSQL for shared
// deployments. The sqlite backend remains the canonical single-session
// store; both satisfy the same contract.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"nexusportal/internal/store"
)

var _ store.Store = (*Client)(nil)

// pgxExecer is satisfied by both *pgxpool.Pool and pgx.Tx, so the write
// statements can run standalone (Put) or inside the add transaction.
type pgxExecer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Client struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Client, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w: %w", store.ErrUnavailable, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w: %w", store.ErrUnavailable, err)
	}
	return &Client{pool: pool}, nil
}

func (c *Client) Close(ctx context.Context) error {
	c.pool.Close()
	return nil
}

// add runs write inside a transaction after verifying the id is absent.
func (c *Client) add(ctx context.Context, table, id string, write func(tx pgx.Tx) error) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning add: %w: %w", store.ErrUnavailable, err)
	}
	defer tx.Rollback(ctx)

	var one int
	err = tx.QueryRow(ctx,
		fmt.Sprintf("SELECT 1 FROM %s WHERE id = $1", table), id).Scan(&one)
	switch {
	case err == nil:
		return fmt.Errorf("adding to %s: id %q: %w", table, id, store.ErrDuplicateKey)
	case err != pgx.ErrNoRows:
		return fmt.Errorf("checking %s id: %w: %w", table, store.ErrUnavailable, err)
	}

	if err := write(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing add: %w: %w", store.ErrUnavailable, err)
	}
	return nil
}

func (c *Client) deleteByID(ctx context.Context, table, id string) error {
	_, err := c.pool.Exec(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w: %w", table, store.ErrUnavailable, err)
	}
	return nil
}
