package sqlite

import (
	"context"
	"strings"
	"testing"
)

func TestSplitStatements(t *testing.T) {
	ddl := `
CREATE TABLE a (id TEXT PRIMARY KEY);

-- a comment between statements
CREATE TABLE b (id TEXT PRIMARY KEY);

CREATE TRIGGER a_ai AFTER INSERT ON a BEGIN
	INSERT INTO b (id) VALUES (new.id);
	DELETE FROM b WHERE id = 'x';
END;

CREATE INDEX idx_a ON a (id);
`
	statements := splitStatements(ddl)
	if len(statements) != 4 {
		t.Fatalf("len(statements) = %d, want 4\n%q", len(statements), statements)
	}

	trigger := statements[2]
	if !strings.Contains(trigger, "CREATE TRIGGER") {
		t.Fatalf("statement 2 is not the trigger: %q", trigger)
	}
	if !strings.Contains(trigger, "INSERT INTO b") || !strings.Contains(trigger, "END;") {
		t.Errorf("trigger body was split: %q", trigger)
	}
	for _, s := range statements {
		if strings.Contains(s, "-- a comment") {
			t.Errorf("comment survived into statement: %q", s)
		}
	}
}

func TestMigrationsApplyOnce(t *testing.T) {
	ctx := context.Background()
	c := testClient(t)

	// A second EnsureSchema is a no-op on an up-to-date store.
	if err := c.EnsureSchema(ctx); err != nil {
		t.Fatalf("second EnsureSchema() error = %v", err)
	}

	rows, err := c.RunSQL(ctx, "SELECT value FROM portal_meta WHERE key = 'schema_version'")
	if err != nil {
		t.Fatalf("RunSQL() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("schema_version rows = %d, want 1", len(rows))
	}
}
