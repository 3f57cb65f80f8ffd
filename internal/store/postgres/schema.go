package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"nexusportal/internal/store"
)

// Migrations are append-only, with the applied version recorded in
// portal_meta. Version 1 creates the six collections, their secondary
// indexes and the knowledge base search vector.
var migrations = []string{
	`
CREATE TABLE IF NOT EXISTS tasks (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	due_date    TEXT NOT NULL DEFAULT '',
	priority    TEXT NOT NULL,
	task_type   TEXT NOT NULL,
	progress    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS announcements (
	id       TEXT PRIMARY KEY,
	title    TEXT NOT NULL,
	category TEXT NOT NULL,
	date     TEXT NOT NULL DEFAULT '',
	summary  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS knowledge_docs (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	doc_type     TEXT NOT NULL,
	last_updated TEXT NOT NULL DEFAULT '',
	content      TEXT NOT NULL DEFAULT '',
	tags         JSONB NOT NULL DEFAULT '[]',
	search_vector TSVECTOR GENERATED ALWAYS AS (
		to_tsvector('english', title || ' ' || content)
	) STORED
);

CREATE TABLE IF NOT EXISTS consultants (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	role         TEXT NOT NULL,
	rate         DOUBLE PRECISION NOT NULL DEFAULT 0,
	avatar       TEXT NOT NULL DEFAULT '',
	specialty    TEXT NOT NULL DEFAULT '',
	availability TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS engagements (
	id             TEXT PRIMARY KEY,
	client_name    TEXT NOT NULL,
	project_name   TEXT NOT NULL,
	status         TEXT NOT NULL,
	start_date     TEXT NOT NULL DEFAULT '',
	end_date       TEXT NOT NULL DEFAULT '',
	pricing_model  TEXT NOT NULL,
	budget         DOUBLE PRECISION NOT NULL DEFAULT 0,
	description    TEXT NOT NULL DEFAULT '',
	team           JSONB NOT NULL DEFAULT '[]',
	staffing_needs JSONB NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS feedback_requests (
	id        TEXT PRIMARY KEY,
	from_user JSONB NOT NULL,
	fb_type   TEXT NOT NULL,
	status    TEXT NOT NULL,
	due_date  TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_tasks_priority ON tasks (priority);
CREATE INDEX IF NOT EXISTS idx_tasks_type ON tasks (task_type);
CREATE INDEX IF NOT EXISTS idx_announcements_category ON announcements (category);
CREATE INDEX IF NOT EXISTS idx_announcements_date ON announcements (date);
CREATE INDEX IF NOT EXISTS idx_docs_type ON knowledge_docs (doc_type);
CREATE INDEX IF NOT EXISTS idx_docs_search ON knowledge_docs USING GIN (search_vector);
CREATE INDEX IF NOT EXISTS idx_consultants_role ON consultants (role);
CREATE INDEX IF NOT EXISTS idx_consultants_availability ON consultants (availability);
CREATE INDEX IF NOT EXISTS idx_consultants_name ON consultants (name);
CREATE INDEX IF NOT EXISTS idx_engagements_status ON engagements (status);
CREATE INDEX IF NOT EXISTS idx_engagements_client ON engagements (client_name);
CREATE INDEX IF NOT EXISTS idx_feedback_status ON feedback_requests (status);
CREATE INDEX IF NOT EXISTS idx_feedback_type ON feedback_requests (fb_type);
`,
}

func (c *Client) EnsureSchema(ctx context.Context) error {
	if _, err := c.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS portal_meta (key TEXT PRIMARY KEY, value TEXT NOT NULL)`,
	); err != nil {
		return fmt.Errorf("creating meta table: %w: %w", store.ErrUnavailable, err)
	}

	current, err := c.schemaVersion(ctx)
	if err != nil {
		return err
	}

	for v := current; v < len(migrations); v++ {
		if err := c.applyMigration(ctx, v+1, migrations[v]); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) schemaVersion(ctx context.Context) (int, error) {
	var raw string
	err := c.pool.QueryRow(ctx,
		`SELECT value FROM portal_meta WHERE key = 'schema_version'`).Scan(&raw)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w: %w", store.ErrUnavailable, err)
	}
	version, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing schema version %q: %w", raw, err)
	}
	return version, nil
}

func (c *Client) applyMigration(ctx context.Context, version int, ddl string) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning migration %d: %w: %w", version, store.ErrUnavailable, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("executing migration %d DDL: %w: %w", version, store.ErrUnavailable, err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO portal_meta (key, value) VALUES ('schema_version', $1)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		strconv.Itoa(version),
	); err != nil {
		return fmt.Errorf("recording schema version: %w: %w", store.ErrUnavailable, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing migration %d: %w: %w", version, store.ErrUnavailable, err)
	}
	return nil
}
