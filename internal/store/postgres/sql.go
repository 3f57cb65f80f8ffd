package postgres

import (
	"context"
	"fmt"

	"nexusportal/internal/store"
)

// RunSQL backs the admin table inspector, reading the persisted tables
// directly rather than the session's in-memory mirror.
func (c *Client) RunSQL(ctx context.Context, query string) ([]map[string]any, error) {
	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("running sql: %w: %w", store.ErrUnavailable, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()

	results := make([]map[string]any, 0)

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w: %w", store.ErrUnavailable, err)
		}

		row := make(map[string]any, len(fields))
		for i, field := range fields {
			row[field.Name] = values[i]
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sql rows: %w: %w", store.ErrUnavailable, err)
	}

	return results, nil
}
