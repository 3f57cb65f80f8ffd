// Package validate checks referential integrity across a store
// snapshot. The portal's references are weak ids, so stale entries are
// reported here rather than prevented by the schema.
package validate

import (
	"context"
	"fmt"

	"nexusportal/internal/portal"
	"nexusportal/internal/store"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeEnumInvalid      = "enum_value_invalid"
	codeDuplicateID      = "duplicate_id"
	codeDanglingFilledBy = "dangling_filled_by"
	codeStaleTeamEntry   = "stale_team_entry"
	codeMissingTeamEntry = "missing_team_entry"
	codeDanglingFeedback = "dangling_feedback_requester"
	codeProgressRange    = "progress_out_of_range"
)

type Issue struct {
	Severity   Severity
	Code       string
	Message    string
	Collection string
	ID         string
}

type Report struct {
	Issues []Issue
}

// Errors reports whether any issue is severity error.
func (r *Report) Errors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Run loads every collection and returns the integrity report. A store
// failure aborts the run; integrity findings never do.
func Run(ctx context.Context, st store.Store) (*Report, error) {
	tasks, err := st.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	announcements, err := st.ListAnnouncements(ctx)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	docs, err := st.ListKnowledgeDocs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list knowledge docs: %w", err)
	}
	consultants, err := st.ListConsultants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list consultants: %w", err)
	}
	engagements, err := st.ListEngagements(ctx)
	if err != nil {
		return nil, fmt.Errorf("list engagements: %w", err)
	}
	feedback, err := st.ListFeedbackRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feedback requests: %w", err)
	}

	issues := make([]Issue, 0)
	issues = append(issues, validateTasks(tasks)...)
	issues = append(issues, validateAnnouncements(announcements)...)
	issues = append(issues, validateDocs(docs)...)
	issues = append(issues, validateConsultants(consultants)...)
	issues = append(issues, validateEngagements(engagements, consultants)...)
	issues = append(issues, validateFeedback(feedback)...)

	return &Report{Issues: issues}, nil
}

func validateTasks(tasks []portal.Task) []Issue {
	var issues []Issue
	issues = append(issues, duplicateIDs("tasks", tasks, func(t portal.Task) string { return t.ID })...)
	for _, t := range tasks {
		if !t.Priority.Valid() {
			issues = append(issues, enumIssue("tasks", t.ID, "priority", string(t.Priority)))
		}
		if !t.Type.Valid() {
			issues = append(issues, enumIssue("tasks", t.ID, "type", string(t.Type)))
		}
		if t.Progress < 0 || t.Progress > 100 {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Code:       codeProgressRange,
				Message:    fmt.Sprintf("progress %d outside 0..100", t.Progress),
				Collection: "tasks",
				ID:         t.ID,
			})
		}
	}
	return issues
}

func validateAnnouncements(announcements []portal.Announcement) []Issue {
	var issues []Issue
	issues = append(issues, duplicateIDs("announcements", announcements, func(a portal.Announcement) string { return a.ID })...)
	for _, a := range announcements {
		if !a.Category.Valid() {
			issues = append(issues, enumIssue("announcements", a.ID, "category", string(a.Category)))
		}
	}
	return issues
}

func validateDocs(docs []portal.KnowledgeDoc) []Issue {
	var issues []Issue
	issues = append(issues, duplicateIDs("knowledge_docs", docs, func(d portal.KnowledgeDoc) string { return d.ID })...)
	for _, d := range docs {
		if !d.Type.Valid() {
			issues = append(issues, enumIssue("knowledge_docs", d.ID, "type", string(d.Type)))
		}
	}
	return issues
}

func validateConsultants(consultants []portal.Consultant) []Issue {
	var issues []Issue
	issues = append(issues, duplicateIDs("consultants", consultants, func(c portal.Consultant) string { return c.ID })...)
	for _, c := range consultants {
		if !c.Availability.Valid() {
			issues = append(issues, enumIssue("consultants", c.ID, "availability", string(c.Availability)))
		}
	}
	return issues
}

func validateEngagements(engagements []portal.Engagement, consultants []portal.Consultant) []Issue {
	known := make(map[string]bool, len(consultants))
	for _, c := range consultants {
		known[c.ID] = true
	}

	var issues []Issue
	issues = append(issues, duplicateIDs("engagements", engagements, func(e portal.Engagement) string { return e.ID })...)
	for _, e := range engagements {
		if !e.Status.Valid() {
			issues = append(issues, enumIssue("engagements", e.ID, "status", string(e.Status)))
		}
		if !e.PricingModel.Valid() {
			issues = append(issues, enumIssue("engagements", e.ID, "pricingModel", string(e.PricingModel)))
		}

		filled := make(map[string]bool)
		for _, n := range e.StaffingNeeds {
			if n.FilledBy == "" {
				continue
			}
			filled[n.FilledBy] = true
			if !known[n.FilledBy] {
				issues = append(issues, Issue{
					Severity:   SeverityError,
					Code:       codeDanglingFilledBy,
					Message:    fmt.Sprintf("need %s filled by unknown consultant %s", n.ID, n.FilledBy),
					Collection: "engagements",
					ID:         e.ID,
				})
			}
			if !e.OnTeam(n.FilledBy) {
				issues = append(issues, Issue{
					Severity:   SeverityError,
					Code:       codeMissingTeamEntry,
					Message:    fmt.Sprintf("consultant %s fills need %s but is missing from team", n.FilledBy, n.ID),
					Collection: "engagements",
					ID:         e.ID,
				})
			}
		}
		for _, id := range e.Team {
			if !known[id] {
				issues = append(issues, Issue{
					Severity:   SeverityError,
					Code:       codeDanglingFilledBy,
					Message:    fmt.Sprintf("team references unknown consultant %s", id),
					Collection: "engagements",
					ID:         e.ID,
				})
			}
			if !filled[id] {
				issues = append(issues, Issue{
					Severity:   SeverityWarn,
					Code:       codeStaleTeamEntry,
					Message:    fmt.Sprintf("team entry %s does not fill any need", id),
					Collection: "engagements",
					ID:         e.ID,
				})
			}
		}
	}
	return issues
}

func validateFeedback(requests []portal.FeedbackRequest) []Issue {
	var issues []Issue
	issues = append(issues, duplicateIDs("feedback_requests", requests, func(f portal.FeedbackRequest) string { return f.ID })...)
	for _, f := range requests {
		if !f.Type.Valid() {
			issues = append(issues, enumIssue("feedback_requests", f.ID, "type", string(f.Type)))
		}
		if !f.Status.Valid() {
			issues = append(issues, enumIssue("feedback_requests", f.ID, "status", string(f.Status)))
		}
		if f.From.ID == "" {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Code:       codeDanglingFeedback,
				Message:    "feedback request has no requester",
				Collection: "feedback_requests",
				ID:         f.ID,
			})
		}
	}
	return issues
}

func duplicateIDs[T any](collection string, items []T, key func(T) string) []Issue {
	seen := make(map[string]bool, len(items))
	var issues []Issue
	for _, item := range items {
		id := key(item)
		if seen[id] {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Code:       codeDuplicateID,
				Message:    fmt.Sprintf("duplicate id %s", id),
				Collection: collection,
				ID:         id,
			})
		}
		seen[id] = true
	}
	return issues
}

func enumIssue(collection, id, field, value string) Issue {
	return Issue{
		Severity:   SeverityError,
		Code:       codeEnumInvalid,
		Message:    fmt.Sprintf("invalid %s value %q", field, value),
		Collection: collection,
		ID:         id,
	}
}
