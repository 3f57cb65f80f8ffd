package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"nexusportal/internal/portal"
	"nexusportal/internal/store"
)

const engagementColumns = `id, client_name, project_name, status, start_date, end_date,
	pricing_model, budget, description, team, staffing_needs`

func (c *Client) GetEngagement(ctx context.Context, id string) (*portal.Engagement, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT `+engagementColumns+` FROM engagements WHERE id = ?`, id)

	e, err := scanEngagement(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting engagement: %w", err)
	}
	return e, nil
}

func (c *Client) ListEngagements(ctx context.Context) ([]portal.Engagement, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT `+engagementColumns+` FROM engagements ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing engagements: %w: %w", store.ErrUnavailable, err)
	}
	defer rows.Close()

	engagements := make([]portal.Engagement, 0)
	for rows.Next() {
		e, err := scanEngagement(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning engagement: %w", err)
		}
		engagements = append(engagements, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating engagements: %w: %w", store.ErrUnavailable, err)
	}
	return engagements, nil
}

func scanEngagement(scan func(...any) error) (*portal.Engagement, error) {
	var e portal.Engagement
	var teamBytes, needsBytes []byte
	err := scan(&e.ID, &e.ClientName, &e.ProjectName, &e.Status, &e.StartDate, &e.EndDate,
		&e.PricingModel, &e.Budget, &e.Description, &teamBytes, &needsBytes)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrUnavailable, err)
	}
	if len(teamBytes) > 0 {
		if err := json.Unmarshal(teamBytes, &e.Team); err != nil {
			return nil, fmt.Errorf("unmarshaling team: %w", err)
		}
	}
	if len(needsBytes) > 0 {
		if err := json.Unmarshal(needsBytes, &e.StaffingNeeds); err != nil {
			return nil, fmt.Errorf("unmarshaling staffing needs: %w", err)
		}
	}
	if e.Team == nil {
		e.Team = []string{}
	}
	if e.StaffingNeeds == nil {
		e.StaffingNeeds = []portal.StaffingNeed{}
	}
	return &e, nil
}

func (c *Client) AddEngagement(ctx context.Context, e portal.Engagement) error {
	return c.add(ctx, "engagements", e.ID, func(tx *sql.Tx) error {
		return c.writeEngagement(ctx, tx, e)
	})
}

// PutEngagement is the update path for staffing and status changes:
// engagements are the one collection mutated after creation.
func (c *Client) PutEngagement(ctx context.Context, e portal.Engagement) error {
	return c.put(ctx, func(tx *sql.Tx) error {
		return c.writeEngagement(ctx, tx, e)
	})
}

func (c *Client) writeEngagement(ctx context.Context, tx *sql.Tx, e portal.Engagement) error {
	teamJSON, err := json.Marshal(e.Team)
	if err != nil {
		return fmt.Errorf("marshaling team: %w", err)
	}
	needsJSON, err := json.Marshal(e.StaffingNeeds)
	if err != nil {
		return fmt.Errorf("marshaling staffing needs: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO engagements (`+engagementColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
			client_name = excluded.client_name,
			project_name = excluded.project_name,
			status = excluded.status,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			pricing_model = excluded.pricing_model,
			budget = excluded.budget,
			description = excluded.description,
			team = excluded.team,
			staffing_needs = excluded.staffing_needs`,
		e.ID, e.ClientName, e.ProjectName, e.Status, e.StartDate, e.EndDate,
		e.PricingModel, e.Budget, e.Description, teamJSON, needsJSON)
	if err != nil {
		return fmt.Errorf("writing engagement: %w: %w", store.ErrUnavailable, err)
	}
	return nil
}

func (c *Client) DeleteEngagement(ctx context.Context, id string) error {
	return c.deleteByID(ctx, "engagements", id)
}
