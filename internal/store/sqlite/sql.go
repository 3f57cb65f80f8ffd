package sqlite

import (
	"context"
	"fmt"

	"nexusportal/internal/store"
)

// RunSQL backs the admin table inspector, reading the persisted tables
// directly rather than the session's in-memory mirror.
func (c *Client) RunSQL(ctx context.Context, query string) ([]map[string]any, error) {
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("running sql: %w: %w", store.ErrUnavailable, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("getting columns: %w: %w", store.ErrUnavailable, err)
	}

	results := make([]map[string]any, 0)

	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w: %w", store.ErrUnavailable, err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sql rows: %w: %w", store.ErrUnavailable, err)
	}

	return results, nil
}
