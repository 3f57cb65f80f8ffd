package validate

import (
	"context"
	"errors"
	"testing"

	"nexusportal/internal/portal"
	"nexusportal/internal/store/storetest"
)

func issueCodes(r *Report) map[string]int {
	codes := make(map[string]int)
	for _, issue := range r.Issues {
		codes[issue.Code]++
	}
	return codes
}

func TestRunCleanStore(t *testing.T) {
	db := storetest.New()
	db.Tasks = []portal.Task{{ID: "t-1", Title: "Expenses", Priority: portal.PriorityHigh, Type: portal.TaskAdmin, Progress: 10}}
	db.Consultants = []portal.Consultant{{ID: "c-1", Name: "Dana", Availability: portal.Available}}
	db.Engagements = []portal.Engagement{{
		ID: "e-1", ClientName: "Globex", ProjectName: "ERP",
		Status: portal.StatusActive, PricingModel: portal.PricingFixedFee,
		StaffingNeeds: []portal.StaffingNeed{{ID: "n-1", FilledBy: "c-1"}},
		Team:          []string{"c-1"},
	}}
	db.FeedbackRequests = []portal.FeedbackRequest{{
		ID: "f-1", From: portal.User{ID: "u-1", Name: "A"},
		Type: portal.FeedbackPeerReview, Status: portal.FeedbackPending,
	}}

	report, err := Run(context.Background(), db)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("issues = %+v, want none", report.Issues)
	}
	if report.Errors() {
		t.Error("Errors() = true for clean store")
	}
}

func TestRunFindsIntegrityIssues(t *testing.T) {
	db := storetest.New()
	db.Tasks = []portal.Task{
		{ID: "t-1", Title: "A", Priority: "URGENT", Type: portal.TaskAdmin, Progress: 130},
		{ID: "t-1", Title: "B", Priority: portal.PriorityLow, Type: portal.TaskAdmin},
	}
	db.Consultants = []portal.Consultant{{ID: "c-1", Name: "Dana", Availability: portal.Available}}
	db.Engagements = []portal.Engagement{{
		ID: "e-1", ClientName: "Globex", ProjectName: "ERP",
		Status: portal.StatusActive, PricingModel: portal.PricingFixedFee,
		StaffingNeeds: []portal.StaffingNeed{
			{ID: "n-1", FilledBy: "c-ghost"}, // unknown, not on team
		},
		Team: []string{"c-1"}, // known but fills nothing
	}}
	db.FeedbackRequests = []portal.FeedbackRequest{{
		ID: "f-1", Type: portal.FeedbackPeerReview, Status: portal.FeedbackPending,
	}}

	report, err := Run(context.Background(), db)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	codes := issueCodes(report)

	for code, want := range map[string]int{
		codeDuplicateID:      1,
		codeEnumInvalid:      1,
		codeProgressRange:    1,
		codeDanglingFilledBy: 1,
		codeMissingTeamEntry: 1,
		codeStaleTeamEntry:   1,
		codeDanglingFeedback: 1,
	} {
		if codes[code] != want {
			t.Errorf("code %s: got %d issues, want %d (all: %v)", code, codes[code], want, codes)
		}
	}
	if !report.Errors() {
		t.Error("Errors() = false despite error-severity issues")
	}
}

func TestStaleTeamEntryIsWarning(t *testing.T) {
	db := storetest.New()
	db.Consultants = []portal.Consultant{{ID: "c-1", Name: "Dana", Availability: portal.Available}}
	db.Engagements = []portal.Engagement{{
		ID: "e-1", ClientName: "Globex", ProjectName: "ERP",
		Status: portal.StatusPipeline, PricingModel: portal.PricingRetainer,
		Team: []string{"c-1"},
	}}

	report, err := Run(context.Background(), db)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(report.Issues) != 1 {
		t.Fatalf("issues = %+v, want exactly one", report.Issues)
	}
	if report.Issues[0].Severity != SeverityWarn {
		t.Errorf("severity = %s, want warning", report.Issues[0].Severity)
	}
	if report.Errors() {
		t.Error("Errors() = true for warning-only report")
	}
}

func TestRunAbortsOnStoreFailure(t *testing.T) {
	db := storetest.New()
	db.Errs["ListEngagements"] = errors.New("connection reset")

	if _, err := Run(context.Background(), db); err == nil {
		t.Fatal("Run() succeeded despite store failure")
	}
}
