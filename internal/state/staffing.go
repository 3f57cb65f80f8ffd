package state

import (
	"context"
	"fmt"
	"slices"

	"nexusportal/internal/portal"
)

// AssignConsultant fills a staffing need and adds the consultant to the
// engagement's team. Team always equals the set of filled needs: both
// sides of the record change together or not at all.
func (c *Controller) AssignConsultant(engagementID, needID, consultantID string) error {
	var stored portal.Engagement
	err := c.run("assign consultant",
		func() (func(), error) {
			if !slices.ContainsFunc(c.consultants, func(x portal.Consultant) bool { return x.ID == consultantID }) {
				return nil, fmt.Errorf("consultant %q: %w", consultantID, ErrNotFound)
			}
			i := slices.IndexFunc(c.engagements, func(x portal.Engagement) bool { return x.ID == engagementID })
			if i < 0 {
				return nil, fmt.Errorf("engagement %q: %w", engagementID, ErrNotFound)
			}
			e := &c.engagements[i]
			need := e.Need(needID)
			if need == nil {
				return nil, fmt.Errorf("need %q on engagement %q: %w", needID, engagementID, ErrNotFound)
			}
			if need.FilledBy == consultantID {
				return nil, fmt.Errorf("need %q is already filled by %q", needID, consultantID)
			}
			if need.FilledBy != "" {
				return nil, fmt.Errorf("need %q is already filled by %q", needID, need.FilledBy)
			}

			prior := e.Clone()
			need.FilledBy = consultantID
			if !e.OnTeam(consultantID) {
				e.Team = append(e.Team, consultantID)
			}
			stored = e.Clone()
			return func() {
				c.restoreEngagement(prior)
			}, nil
		},
		func(ctx context.Context) error {
			return c.store.PutEngagement(ctx, stored)
		})
	return err
}

// UnassignConsultant clears a filled staffing need. The consultant
// leaves the team unless another need on the same engagement still
// carries them: team is the live roster, not a staffing history.
func (c *Controller) UnassignConsultant(engagementID, needID string) error {
	var stored portal.Engagement
	err := c.run("unassign consultant",
		func() (func(), error) {
			i := slices.IndexFunc(c.engagements, func(x portal.Engagement) bool { return x.ID == engagementID })
			if i < 0 {
				return nil, fmt.Errorf("engagement %q: %w", engagementID, ErrNotFound)
			}
			e := &c.engagements[i]
			need := e.Need(needID)
			if need == nil {
				return nil, fmt.Errorf("need %q on engagement %q: %w", needID, engagementID, ErrNotFound)
			}
			if need.FilledBy == "" {
				return nil, fmt.Errorf("need %q is not filled", needID)
			}

			prior := e.Clone()
			consultantID := need.FilledBy
			need.FilledBy = ""

			stillStaffed := slices.ContainsFunc(e.StaffingNeeds, func(n portal.StaffingNeed) bool {
				return n.FilledBy == consultantID
			})
			if !stillStaffed {
				e.Team = slices.DeleteFunc(e.Team, func(id string) bool { return id == consultantID })
			}
			stored = e.Clone()
			return func() {
				c.restoreEngagement(prior)
			}, nil
		},
		func(ctx context.Context) error {
			return c.store.PutEngagement(ctx, stored)
		})
	return err
}

// SetEngagementStatus moves an engagement along the legal status
// transitions. Anything else, including moving back to Pipeline or out
// of Completed, is rejected.
func (c *Controller) SetEngagementStatus(engagementID string, target portal.EngagementStatus) error {
	if !target.Valid() {
		return fmt.Errorf("invalid engagement status %q", target)
	}
	var stored portal.Engagement
	err := c.run("set engagement status",
		func() (func(), error) {
			i := slices.IndexFunc(c.engagements, func(x portal.Engagement) bool { return x.ID == engagementID })
			if i < 0 {
				return nil, fmt.Errorf("engagement %q: %w", engagementID, ErrNotFound)
			}
			e := &c.engagements[i]
			if e.Status == target {
				return nil, fmt.Errorf("engagement %q is already %s", engagementID, target)
			}
			if err := stepStatus(e.Status, target); err != nil {
				return nil, fmt.Errorf("engagement %q: %w", engagementID, err)
			}

			prior := e.Clone()
			e.Status = target
			stored = e.Clone()
			return func() {
				c.restoreEngagement(prior)
			}, nil
		},
		func(ctx context.Context) error {
			return c.store.PutEngagement(ctx, stored)
		})
	return err
}
