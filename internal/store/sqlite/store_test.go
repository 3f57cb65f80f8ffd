package sqlite

import (
	"context"
	"errors"
	"testing"

	"nexusportal/internal/portal"
	"nexusportal/internal/seed"
	"nexusportal/internal/store"
)

func testClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()
	c, err := New(ctx, "sqlite://:memory:")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { c.Close(ctx) })
	if err := c.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	return c
}

func fixtureDataset() store.Dataset {
	consultants := seed.Consultants(10)
	return store.Dataset{
		Tasks:            seed.Tasks(),
		Announcements:    seed.Announcements(),
		KnowledgeDocs:    seed.KnowledgeDocs(),
		Consultants:      consultants,
		Engagements:      seed.Engagements(5, consultants),
		FeedbackRequests: seed.FeedbackRequests(),
	}
}

func TestSeedOnce(t *testing.T) {
	ctx := context.Background()
	c := testClient(t)

	seeded, err := c.SeedOnce(ctx, fixtureDataset())
	if err != nil {
		t.Fatalf("SeedOnce() error = %v", err)
	}
	if !seeded {
		t.Fatal("first SeedOnce() reported seeded = false")
	}

	tasks, err := c.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 4 {
		t.Fatalf("len(tasks) = %d, want 4", len(tasks))
	}

	t1, err := c.GetTask(ctx, "t-1")
	if err != nil {
		t.Fatalf("GetTask(t-1) error = %v", err)
	}
	if t1 == nil {
		t.Fatal("GetTask(t-1) = nil")
	}
	if t1.Priority != portal.PriorityHigh || t1.Type != portal.TaskTraining {
		t.Errorf("t-1 = %s/%s, want HIGH/TRAINING", t1.Priority, t1.Type)
	}

	// The marker, not emptiness, guards the seed.
	if err := c.DeleteTask(ctx, "t-1"); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	seeded, err = c.SeedOnce(ctx, fixtureDataset())
	if err != nil {
		t.Fatalf("second SeedOnce() error = %v", err)
	}
	if seeded {
		t.Fatal("second SeedOnce() reported seeded = true")
	}
	if got, _ := c.GetTask(ctx, "t-1"); got != nil {
		t.Error("re-seed restored a deleted record")
	}
}

func TestTaskCRUD(t *testing.T) {
	ctx := context.Background()
	c := testClient(t)

	task := portal.Task{
		ID:       "t-100",
		Title:    "Quarterly review",
		DueDate:  "2023-12-01",
		Priority: portal.PriorityMedium,
		Type:     portal.TaskEvaluation,
		Progress: 40,
	}
	if err := c.AddTask(ctx, task); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if err := c.AddTask(ctx, task); !errors.Is(err, store.ErrDuplicateKey) {
		t.Errorf("second AddTask() error = %v, want ErrDuplicateKey", err)
	}

	got, err := c.GetTask(ctx, "t-100")
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if got == nil || got.Title != task.Title || got.Progress != 40 {
		t.Errorf("GetTask() = %+v, want %+v", got, task)
	}

	task.Progress = 90
	if err := c.PutTask(ctx, task); err != nil {
		t.Fatalf("PutTask() error = %v", err)
	}
	got, _ = c.GetTask(ctx, "t-100")
	if got.Progress != 90 {
		t.Errorf("progress after put = %d, want 90", got.Progress)
	}

	if err := c.DeleteTask(ctx, "t-100"); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if got, err := c.GetTask(ctx, "t-100"); err != nil || got != nil {
		t.Errorf("GetTask() after delete = (%v, %v), want (nil, nil)", got, err)
	}

	// Missing ids are a no-op.
	if err := c.DeleteTask(ctx, "t-100"); err != nil {
		t.Errorf("repeat DeleteTask() error = %v", err)
	}
}

func TestGetAbsentReturnsNil(t *testing.T) {
	ctx := context.Background()
	c := testClient(t)

	if got, err := c.GetConsultant(ctx, "c-404"); err != nil || got != nil {
		t.Errorf("GetConsultant(absent) = (%v, %v), want (nil, nil)", got, err)
	}
	if got, err := c.GetEngagement(ctx, "e-404"); err != nil || got != nil {
		t.Errorf("GetEngagement(absent) = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestListEmptyReturnsNonNil(t *testing.T) {
	ctx := context.Background()
	c := testClient(t)

	docs, err := c.ListKnowledgeDocs(ctx)
	if err != nil {
		t.Fatalf("ListKnowledgeDocs() error = %v", err)
	}
	if docs == nil {
		t.Error("ListKnowledgeDocs() = nil, want empty slice")
	}
}

func TestEngagementRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := testClient(t)

	e := portal.Engagement{
		ID:           "e-100",
		ClientName:   "Globex",
		ProjectName:  "Phoenix",
		Status:       portal.StatusActive,
		StartDate:    "2023-09-01",
		EndDate:      "2024-03-01",
		PricingModel: portal.PricingRetainer,
		Budget:       250000,
		Description:  "Platform rebuild",
		Team:         []string{"c-gen-1"},
		StaffingNeeds: []portal.StaffingNeed{
			{ID: "n-1", Role: "Architect", Skills: []string{"aws", "terraform"}, FilledBy: "c-gen-1"},
			{ID: "n-2", Role: "Engineer", Skills: []string{"go"}},
		},
	}
	if err := c.AddEngagement(ctx, e); err != nil {
		t.Fatalf("AddEngagement() error = %v", err)
	}

	got, err := c.GetEngagement(ctx, "e-100")
	if err != nil {
		t.Fatalf("GetEngagement() error = %v", err)
	}
	if got == nil {
		t.Fatal("GetEngagement() = nil")
	}
	if len(got.Team) != 1 || got.Team[0] != "c-gen-1" {
		t.Errorf("team = %v, want [c-gen-1]", got.Team)
	}
	if len(got.StaffingNeeds) != 2 {
		t.Fatalf("len(staffingNeeds) = %d, want 2", len(got.StaffingNeeds))
	}
	if got.StaffingNeeds[0].FilledBy != "c-gen-1" || len(got.StaffingNeeds[0].Skills) != 2 {
		t.Errorf("need n-1 = %+v", got.StaffingNeeds[0])
	}
	if got.StaffingNeeds[1].FilledBy != "" {
		t.Errorf("need n-2 filledBy = %q, want empty", got.StaffingNeeds[1].FilledBy)
	}

	// Empty lists come back as empty, not nil.
	e2 := portal.Engagement{
		ID: "e-101", ClientName: "Initech", ProjectName: "Migration",
		Status: portal.StatusPipeline, PricingModel: portal.PricingFixedFee,
	}
	if err := c.PutEngagement(ctx, e2); err != nil {
		t.Fatalf("PutEngagement() error = %v", err)
	}
	got, _ = c.GetEngagement(ctx, "e-101")
	if got.Team == nil || got.StaffingNeeds == nil {
		t.Error("empty team or staffing needs came back nil")
	}
}

func TestSearchKnowledge(t *testing.T) {
	ctx := context.Background()
	c := testClient(t)

	if _, err := c.SeedOnce(ctx, fixtureDataset()); err != nil {
		t.Fatalf("SeedOnce() error = %v", err)
	}

	results, err := c.SearchKnowledge(ctx, "expense")
	if err != nil {
		t.Fatalf("SearchKnowledge() error = %v", err)
	}
	if len(results) == 0 {
		t.Fatal("SearchKnowledge(expense) returned no results")
	}
	found := false
	for _, r := range results {
		if r.ID == "k-2" {
			found = true
		}
	}
	if !found {
		t.Errorf("expense policy k-2 missing from results: %+v", results)
	}

	if _, err := c.SearchKnowledge(ctx, "   "); err == nil {
		t.Error("SearchKnowledge(blank) error = nil, want rejection")
	}

	// The index follows deletes through the triggers.
	if err := c.DeleteKnowledgeDoc(ctx, "k-2"); err != nil {
		t.Fatalf("DeleteKnowledgeDoc() error = %v", err)
	}
	results, err = c.SearchKnowledge(ctx, "expense")
	if err != nil {
		t.Fatalf("SearchKnowledge() after delete error = %v", err)
	}
	for _, r := range results {
		if r.ID == "k-2" {
			t.Error("deleted document still indexed")
		}
	}
}

func TestSearchKnowledgeRanksBestFirst(t *testing.T) {
	ctx := context.Background()
	c := testClient(t)

	strong := portal.KnowledgeDoc{
		ID:      "k-strong",
		Title:   "Expense Reporting Handbook",
		Type:    portal.DocGuide,
		Tags:    []string{"expense", "finance"},
		Content: "Expense reports cover every expense category. Submit each expense with a receipt.",
	}
	weak := portal.KnowledgeDoc{
		ID:      "k-weak",
		Title:   "Office Seating Chart",
		Type:    portal.DocWiki,
		Content: "Level 4 seating. Contact facilities for desk moves; expense desk accessories via the portal.",
	}
	for _, d := range []portal.KnowledgeDoc{weak, strong} {
		if err := c.AddKnowledgeDoc(ctx, d); err != nil {
			t.Fatalf("AddKnowledgeDoc(%s) error = %v", d.ID, err)
		}
	}

	results, err := c.SearchKnowledge(ctx, "expense")
	if err != nil {
		t.Fatalf("SearchKnowledge() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].ID != "k-strong" {
		t.Errorf("results[0].ID = %s, want k-strong (scores: %v %v)",
			results[0].ID, results[0].Score, results[1].Score)
	}
	if results[0].Score > results[1].Score {
		t.Errorf("scores not best-first: %v then %v", results[0].Score, results[1].Score)
	}
}

func TestSearchKnowledgeIgnoresBareDash(t *testing.T) {
	ctx := context.Background()
	c := testClient(t)

	if _, err := c.SeedOnce(ctx, fixtureDataset()); err != nil {
		t.Fatalf("SeedOnce() error = %v", err)
	}

	results, err := c.SearchKnowledge(ctx, "expense -")
	if err != nil {
		t.Fatalf("SearchKnowledge(expense -) error = %v", err)
	}
	if len(results) == 0 {
		t.Error("bare trailing dash dropped all results")
	}
}

func TestRunSQL(t *testing.T) {
	ctx := context.Background()
	c := testClient(t)

	if _, err := c.SeedOnce(ctx, fixtureDataset()); err != nil {
		t.Fatalf("SeedOnce() error = %v", err)
	}

	rows, err := c.RunSQL(ctx, "SELECT id, priority FROM tasks ORDER BY id")
	if err != nil {
		t.Fatalf("RunSQL() error = %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("len(rows) = %d, want 4", len(rows))
	}
	if _, ok := rows[0]["priority"]; !ok {
		t.Errorf("row missing priority column: %v", rows[0])
	}
}
