package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"nexusportal/internal/portal"
	"nexusportal/internal/store"
)

func (c *Client) GetConsultant(ctx context.Context, id string) (*portal.Consultant, error) {
	row := c.pool.QueryRow(ctx,
		`SELECT id, name, role, rate, avatar, specialty, availability
		 FROM consultants WHERE id = $1`, id)

	var con portal.Consultant
	err := row.Scan(&con.ID, &con.Name, &con.Role, &con.Rate, &con.Avatar, &con.Specialty, &con.Availability)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting consultant: %w: %w", store.ErrUnavailable, err)
	}
	return &con, nil
}

func (c *Client) ListConsultants(ctx context.Context) ([]portal.Consultant, error) {
	rows, err := c.pool.Query(ctx,
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
	return c.add(ctx, "consultants", con.ID, func(tx pgx.Tx) error {
		return writeConsultant(ctx, tx, con)
	})
}

func (c *Client) PutConsultant(ctx context.Context, con portal.Consultant) error {
	return writeConsultant(ctx, c.pool, con)
}

func writeConsultant(ctx context.Context, db pgxExecer, con portal.Consultant) error {
	_, err := db.Exec(ctx,
		`INSERT INTO consultants (id, name, role, rate, avatar, specialty, availability)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
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
