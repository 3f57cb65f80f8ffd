package mcp

import (
	"context"
	"testing"

	"nexusportal/internal/portal"
	"nexusportal/internal/store"
	"nexusportal/internal/store/storetest"
)

func testServer(t *testing.T) (*Server, *storetest.Fake) {
	t.Helper()
	db := storetest.New()
	db.KnowledgeDocs = []portal.KnowledgeDoc{
		{ID: "k-1", Title: "Remote Work Policy", Type: portal.DocPolicy, Content: "Hybrid schedule.", Tags: []string{"hr"}},
	}
	db.Tasks = []portal.Task{
		{ID: "t-1", Title: "Security training", Priority: portal.PriorityHigh, Type: portal.TaskTraining},
		{ID: "t-2", Title: "Timesheet", Priority: portal.PriorityLow, Type: portal.TaskAdmin},
	}
	db.Consultants = []portal.Consultant{
		{ID: "c-1", Name: "Dana", Availability: portal.Available},
		{ID: "c-2", Name: "Priya", Availability: portal.Assigned},
	}
	db.Engagements = []portal.Engagement{
		{
			ID: "e-1", ClientName: "Globex", ProjectName: "ERP", Status: portal.StatusActive,
			Team: []string{"c-2"},
			StaffingNeeds: []portal.StaffingNeed{
				{ID: "n-1", Role: "Lead", FilledBy: "c-2"},
				{ID: "n-2", Role: "Analyst"},
			},
		},
		{ID: "e-2", ClientName: "Initech", ProjectName: "Audit", Status: portal.StatusPipeline},
	}
	return NewServer(db, "test"), db
}

func TestSearchKnowledgeTool(t *testing.T) {
	s, db := testServer(t)
	db.SearchResults = []store.SearchResult{
		{ID: "k-1", Title: "Remote Work Policy", Type: portal.DocPolicy, Score: 1.5, Snippet: "**Hybrid** schedule."},
	}

	_, out, err := s.handleSearchKnowledge(context.Background(), nil, SearchKnowledgeInput{Query: "remote"})
	if err != nil {
		t.Fatalf("handleSearchKnowledge() error = %v", err)
	}
	if len(out.Results) != 1 || out.Results[0].ID != "k-1" {
		t.Fatalf("results = %+v", out.Results)
	}

	if _, _, err := s.handleSearchKnowledge(context.Background(), nil, SearchKnowledgeInput{}); err == nil {
		t.Error("empty query accepted")
	}
}

func TestGetDocumentTool(t *testing.T) {
	s, _ := testServer(t)

	_, out, err := s.handleGetDocument(context.Background(), nil, GetDocumentInput{ID: "k-1"})
	if err != nil {
		t.Fatalf("handleGetDocument() error = %v", err)
	}
	if out.Title != "Remote Work Policy" || out.Content != "Hybrid schedule." {
		t.Errorf("unexpected document: %+v", out)
	}

	if _, _, err := s.handleGetDocument(context.Background(), nil, GetDocumentInput{ID: "k-404"}); err == nil {
		t.Error("missing document did not error")
	}
	if _, _, err := s.handleGetDocument(context.Background(), nil, GetDocumentInput{}); err == nil {
		t.Error("empty id accepted")
	}
}

func TestListTasksToolFiltersByPriority(t *testing.T) {
	s, _ := testServer(t)

	_, out, err := s.handleListTasks(context.Background(), nil, ListTasksInput{Priority: "HIGH"})
	if err != nil {
		t.Fatalf("handleListTasks() error = %v", err)
	}
	if len(out.Tasks) != 1 || out.Tasks[0].ID != "t-1" {
		t.Fatalf("tasks = %+v, want only t-1", out.Tasks)
	}

	_, out, err = s.handleListTasks(context.Background(), nil, ListTasksInput{})
	if err != nil {
		t.Fatalf("handleListTasks() error = %v", err)
	}
	if len(out.Tasks) != 2 {
		t.Fatalf("unfiltered tasks = %d, want 2", len(out.Tasks))
	}
}

func TestListConsultantsToolFiltersByAvailability(t *testing.T) {
	s, _ := testServer(t)

	_, out, err := s.handleListConsultants(context.Background(), nil, ListConsultantsInput{Availability: "Assigned"})
	if err != nil {
		t.Fatalf("handleListConsultants() error = %v", err)
	}
	if len(out.Consultants) != 1 || out.Consultants[0].ID != "c-2" {
		t.Fatalf("consultants = %+v, want only c-2", out.Consultants)
	}
}

func TestListEngagementsToolSummaries(t *testing.T) {
	s, _ := testServer(t)

	_, out, err := s.handleListEngagements(context.Background(), nil, ListEngagementsInput{Status: "Active"})
	if err != nil {
		t.Fatalf("handleListEngagements() error = %v", err)
	}
	if len(out.Engagements) != 1 {
		t.Fatalf("engagements = %+v, want only e-1", out.Engagements)
	}
	summary := out.Engagements[0]
	if summary.TeamSize != 1 {
		t.Errorf("team size = %d, want 1", summary.TeamSize)
	}
	if summary.OpenNeeds != 1 {
		t.Errorf("open needs = %d, want 1", summary.OpenNeeds)
	}
}

func TestGetEngagementTool(t *testing.T) {
	s, _ := testServer(t)

	_, out, err := s.handleGetEngagement(context.Background(), nil, GetEngagementInput{ID: "e-1"})
	if err != nil {
		t.Fatalf("handleGetEngagement() error = %v", err)
	}
	if out.ClientName != "Globex" || len(out.StaffingNeeds) != 2 {
		t.Errorf("unexpected engagement: %+v", out)
	}
	if out.StaffingNeeds[0].FilledBy != "c-2" {
		t.Errorf("filledBy = %q, want c-2", out.StaffingNeeds[0].FilledBy)
	}

	if _, _, err := s.handleGetEngagement(context.Background(), nil, GetEngagementInput{ID: "e-404"}); err == nil {
		t.Error("missing engagement did not error")
	}
}
