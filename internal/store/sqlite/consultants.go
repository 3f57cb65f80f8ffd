package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"nexusportal/internal/portal"
	"nexusportal/internal/store"
)

func (c *Client) GetConsultant(ctx context.Context, id string) (*portal.Consultant, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT id, name, role, rate, avatar, specialty, availability
		 FROM consultants WHERE id = ?`, id)

	var con portal.Consultant
	err := row.Scan(&con.ID, &con.Name, &con.Role, &con.Rate, &con.Avatar, &con.Specialty, &con.Availability)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting consultant: %w: %w", store.ErrUnavailable, err)
	}
	return &con, nil
}

func (c *Client) ListConsultants(ctx context.Context) ([]portal.Consultant, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, name, role, rate, avatar, specialty, availability
		 FROM consultants ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing consultants: %w: %w", store.ErrUnavailable, err)
	}
	defer rows.Close()

	consultants := make([]portal.Consultant, 0)
	for rows.Next() {
		var con portal.Consultant
		if err := rows.Scan(&con.ID, &con.Name, &con.Role, &con.Rate, &con.Avatar, &con.Specialty, &con.Availability); err != nil {
			return nil, fmt.Errorf("scanning consultant: %w: %w", store.ErrUnavailable, err)
		}
		consultants = append(consultants, con)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating consultants: %w: %w", store.ErrUnavailable, err)
	}
	return consultants, nil
}

func (c *Client) AddConsultant(ctx context.Context, con portal.Consultant) error {
	return c.add(ctx, "consultants", con.ID, func(tx *sql.Tx) error {
		return c.writeConsultant(ctx, tx, con)
	})
}

func (c *Client) PutConsultant(ctx context.Context, con portal.Consultant) error {
	return c.put(ctx, func(tx *sql.Tx) error {
		return c.writeConsultant(ctx, tx, con)
	})
}

func (c *Client) writeConsultant(ctx context.Context, tx *sql.Tx, con portal.Consultant) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO consultants (id, name, role, rate, avatar, specialty, availability)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			role = excluded.role,
			rate = excluded.rate,
			avatar = excluded.avatar,
			specialty = excluded.specialty,
			availability = excluded.availability`,
		con.ID, con.Name, con.Role, con.Rate, con.Avatar, con.Specialty, con.Availability)
	if err != nil {
		return fmt.Errorf("writing consultant: %w: %w", store.ErrUnavailable, err)
	}
	return nil
}

func (c *Client) DeleteConsultant(ctx context.Context, id string) error {
	return c.deleteByID(ctx, "consultants", id)
}
