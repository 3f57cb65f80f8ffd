package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"nexusportal/internal/store"
)

// Migrations are append-only: existing entries never change, upgrades only
// add new ones. portal_meta records the version already applied.
var migrations = []string{
	// v1: the six collections, their secondary indexes, and the knowledge
	// base full-text index.
	`
	CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT DEFAULT '',
		due_date    TEXT DEFAULT '',
		priority    TEXT NOT NULL,
		task_type   TEXT NOT NULL,
		progress    INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS announcements (
		id       TEXT PRIMARY KEY,
		title    TEXT NOT NULL,
		category TEXT NOT NULL,
		date     TEXT DEFAULT '',
		summary  TEXT DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS knowledge_docs (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		doc_type     TEXT NOT NULL,
		last_updated TEXT DEFAULT '',
		content      TEXT DEFAULT '',
		tags         TEXT DEFAULT '[]'
	);

	CREATE TABLE IF NOT EXISTS consultants (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		role         TEXT NOT NULL,
		rate         REAL NOT NULL DEFAULT 0,
		avatar       TEXT DEFAULT '',
		specialty    TEXT DEFAULT '',
		availability TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS engagements (
		id             TEXT PRIMARY KEY,
		client_name    TEXT NOT NULL,
		project_name   TEXT NOT NULL,
		status         TEXT NOT NULL,
		start_date     TEXT DEFAULT '',
		end_date       TEXT DEFAULT '',
		pricing_model  TEXT NOT NULL,
		budget         REAL NOT NULL DEFAULT 0,
		description    TEXT DEFAULT '',
		team           TEXT DEFAULT '[]',
		staffing_needs TEXT DEFAULT '[]'
	);

	CREATE TABLE IF NOT EXISTS feedback_requests (
		id        TEXT PRIMARY KEY,
		from_user TEXT NOT NULL,
		fb_type   TEXT NOT NULL,
		status    TEXT NOT NULL,
		due_date  TEXT DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_priority ON tasks (priority);
	CREATE INDEX IF NOT EXISTS idx_tasks_type ON tasks (task_type);
	CREATE INDEX IF NOT EXISTS idx_announcements_category ON announcements (category);
	CREATE INDEX IF NOT EXISTS idx_announcements_date ON announcements (date);
	CREATE INDEX IF NOT EXISTS idx_docs_type ON knowledge_docs (doc_type);
	CREATE INDEX IF NOT EXISTS idx_consultants_role ON consultants (role);
	CREATE INDEX IF NOT EXISTS idx_consultants_availability ON consultants (availability);
	CREATE INDEX IF NOT EXISTS idx_consultants_name ON consultants (name);
	CREATE INDEX IF NOT EXISTS idx_engagements_status ON engagements (status);
	CREATE INDEX IF NOT EXISTS idx_engagements_client ON engagements (client_name);
	CREATE INDEX IF NOT EXISTS idx_feedback_status ON feedback_requests (status);
	CREATE INDEX IF NOT EXISTS idx_feedback_type ON feedback_requests (fb_type);

	CREATE VIRTUAL TABLE IF NOT EXISTS knowledge_fts USING fts5(
		title,
		tags,
		content,
		content=knowledge_docs,
		content_rowid=rowid
	);

	CREATE TRIGGER IF NOT EXISTS knowledge_ai AFTER INSERT ON knowledge_docs BEGIN
		INSERT INTO knowledge_fts(rowid, title, tags, content)
		VALUES (new.rowid, new.title, new.tags, new.content);
	END;

	CREATE TRIGGER IF NOT EXISTS knowledge_ad AFTER DELETE ON knowledge_docs BEGIN
		INSERT INTO knowledge_fts(knowledge_fts, rowid, title, tags, content)
		VALUES ('delete', old.rowid, old.title, old.tags, old.content);
	END;

	CREATE TRIGGER IF NOT EXISTS knowledge_au AFTER UPDATE ON knowledge_docs BEGIN
		INSERT INTO knowledge_fts(knowledge_fts, rowid, title, tags, content)
		VALUES ('delete', old.rowid, old.title, old.tags, old.content);
		INSERT INTO knowledge_fts(rowid, title, tags, content)
		VALUES (new.rowid, new.title, new.tags, new.content);
	END;
	`,
}

func (c *Client) EnsureSchema(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx,
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
	err := c.db.QueryRowContext(ctx,
		`SELECT value FROM portal_meta WHERE key = 'schema_version'`,
	).Scan(&raw)
	if err == sql.ErrNoRows {
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
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration %d: %w: %w", version, store.ErrUnavailable, err)
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(ddl) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing migration %d DDL: %w: %w", version, store.ErrUnavailable, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO portal_meta (key, value) VALUES ('schema_version', ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		strconv.Itoa(version),
	); err != nil {
		return fmt.Errorf("recording schema version: %w: %w", store.ErrUnavailable, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration %d: %w: %w", version, store.ErrUnavailable, err)
	}
	return nil
}

func splitStatements(ddl string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(ddl, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(stripped, ";") && !insideTriggerBody(current.String()) {
			statements = append(statements, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		statements = append(statements, current.String())
	}

	return statements
}

// insideTriggerBody keeps CREATE TRIGGER ... BEGIN ... END; blocks whole:
// the statements between BEGIN and END carry their own semicolons.
func insideTriggerBody(s string) bool {
	upper := strings.ToUpper(s)
	if !strings.Contains(upper, "CREATE TRIGGER") {
		return false
	}
	return !strings.Contains(upper, "END;")
}
