package state

import (
	"context"
	"errors"
	"testing"

	"nexusportal/internal/portal"
	"nexusportal/internal/store/storetest"
)

func testUser() portal.User {
	return portal.User{ID: "u-123", Name: "Alex Chen", Role: "Senior Consultant"}
}

func testFake() *storetest.Fake {
	db := storetest.New()
	db.Tasks = []portal.Task{
		{ID: "t-1", Title: "Security Training", Priority: portal.PriorityHigh, Type: portal.TaskTraining},
	}
	db.Consultants = []portal.Consultant{
		{ID: "c-1", Name: "Sarah Jenkins", Role: "Manager", Rate: 450, Availability: portal.Available},
		{ID: "c-2", Name: "David Chen", Role: "Senior Consultant", Rate: 300, Availability: portal.OnBench},
	}
	db.Engagements = []portal.Engagement{
		{
			ID:           "e-1",
			ClientName:   "Globex",
			ProjectName:  "Phoenix",
			Status:       portal.StatusActive,
			PricingModel: portal.PricingTimeAndMat,
			Team:         []string{},
			StaffingNeeds: []portal.StaffingNeed{
				{ID: "n-1", Role: "Data Engineer", Skills: []string{"python"}},
				{ID: "n-2", Role: "Cloud Architect", Skills: []string{"aws"}},
			},
		},
	}
	return db
}

func loadedController(t *testing.T, db *storetest.Fake) *Controller {
	t.Helper()
	c := New(db, testUser(), nil)
	t.Cleanup(c.Close)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return c
}

func TestLoadPopulatesMirror(t *testing.T) {
	c := loadedController(t, testFake())

	if !c.Ready() {
		t.Fatal("controller not ready after load")
	}
	if got := len(c.Tasks()); got != 1 {
		t.Errorf("len(Tasks()) = %d, want 1", got)
	}
	if got := len(c.Consultants()); got != 2 {
		t.Errorf("len(Consultants()) = %d, want 2", got)
	}
	if got := c.CurrentUser().ID; got != "u-123" {
		t.Errorf("CurrentUser().ID = %q, want u-123", got)
	}
}

func TestLoadFailureLeavesSessionNotReady(t *testing.T) {
	db := testFake()
	db.Errs["ListEngagements"] = errors.New("backend down")

	c := New(db, testUser(), nil)
	defer c.Close()

	if err := c.Load(context.Background()); err == nil {
		t.Fatal("Load() error = nil, want failure")
	}
	if c.Ready() {
		t.Error("controller ready after failed load")
	}
	if err := c.CreateTask(portal.Task{ID: "t-9", Title: "x", Priority: portal.PriorityLow, Type: portal.TaskAdmin}); !errors.Is(err, ErrNotReady) {
		t.Errorf("CreateTask before load = %v, want ErrNotReady", err)
	}
}

func TestLoadLenientBecomesReadyDespiteFailure(t *testing.T) {
	db := testFake()
	db.Errs["ListTasks"] = errors.New("backend down")

	c := New(db, testUser(), nil)
	defer c.Close()

	if err := c.LoadLenient(context.Background()); err == nil {
		t.Fatal("LoadLenient() error = nil, want joined failure")
	}
	if !c.Ready() {
		t.Fatal("controller not ready after lenient load")
	}
	if got := len(c.Tasks()); got != 0 {
		t.Errorf("len(Tasks()) = %d, want 0", got)
	}
	if got := len(c.Consultants()); got != 2 {
		t.Errorf("len(Consultants()) = %d, want 2", got)
	}
}

func TestCreateTaskOptimisticThenPersisted(t *testing.T) {
	db := testFake()
	c := loadedController(t, db)

	task := portal.Task{ID: "t-2", Title: "File expenses", Priority: portal.PriorityLow, Type: portal.TaskAdmin}
	if err := c.CreateTask(task); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	// Visible before the write lands.
	if got := len(c.Tasks()); got != 2 {
		t.Fatalf("len(Tasks()) = %d, want 2", got)
	}

	if err := c.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if got := len(db.Tasks); got != 2 {
		t.Errorf("store has %d tasks after flush, want 2", got)
	}
}

func TestCreateTaskRollsBackOnPersistFailure(t *testing.T) {
	db := testFake()
	c := loadedController(t, db)
	db.Errs["AddTask"] = errors.New("disk full")

	task := portal.Task{ID: "t-2", Title: "File expenses", Priority: portal.PriorityLow, Type: portal.TaskAdmin}
	if err := c.CreateTask(task); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	if err := c.Flush(context.Background()); err == nil {
		t.Fatal("Flush() error = nil, want persist failure")
	}
	if got := len(c.Tasks()); got != 1 {
		t.Errorf("len(Tasks()) after rollback = %d, want 1", got)
	}
	if got := c.DriftCount(); got != 1 {
		t.Errorf("DriftCount() = %d, want 1", got)
	}

	// A second flush with nothing queued is clean.
	if err := c.Flush(context.Background()); err != nil {
		t.Errorf("second Flush() error = %v", err)
	}
}

func TestDeleteTaskRestoredOnPersistFailure(t *testing.T) {
	db := testFake()
	c := loadedController(t, db)
	db.Errs["DeleteTask"] = errors.New("locked")

	if err := c.DeleteTask("t-1"); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if err := c.Flush(context.Background()); err == nil {
		t.Fatal("Flush() error = nil, want persist failure")
	}

	tasks := c.Tasks()
	if len(tasks) != 1 || tasks[0].ID != "t-1" {
		t.Errorf("tasks after rollback = %+v, want t-1 restored", tasks)
	}
}

func TestCreateConsultantDefaultsAvailability(t *testing.T) {
	db := testFake()
	c := loadedController(t, db)

	con := portal.Consultant{ID: "c-9", Name: "Jane Doe", Role: "Associate", Rate: 150, Specialty: "Generalist"}
	if err := c.CreateConsultant(con); err != nil {
		t.Fatalf("CreateConsultant() error = %v", err)
	}

	got, ok := c.Consultant("c-9")
	if !ok {
		t.Fatal("consultant c-9 not in mirror")
	}
	if got.Availability != portal.Available {
		t.Errorf("Availability = %q, want %q", got.Availability, portal.Available)
	}
}

func TestDeleteConsultantRejectedWhileStaffed(t *testing.T) {
	db := testFake()
	c := loadedController(t, db)

	if err := c.AssignConsultant("e-1", "n-1", "c-1"); err != nil {
		t.Fatalf("AssignConsultant() error = %v", err)
	}
	if err := c.DeleteConsultant("c-1"); err == nil {
		t.Fatal("DeleteConsultant() error = nil, want rejection while staffed")
	}

	if err := c.UnassignConsultant("e-1", "n-1"); err != nil {
		t.Fatalf("UnassignConsultant() error = %v", err)
	}
	if err := c.DeleteConsultant("c-1"); err != nil {
		t.Fatalf("DeleteConsultant() after unassign error = %v", err)
	}
}

func TestAssignMaintainsTeam(t *testing.T) {
	db := testFake()
	c := loadedController(t, db)

	if err := c.AssignConsultant("e-1", "n-1", "c-1"); err != nil {
		t.Fatalf("AssignConsultant() error = %v", err)
	}

	e, ok := c.Engagement("e-1")
	if !ok {
		t.Fatal("engagement e-1 not in mirror")
	}
	if got := e.Need("n-1").FilledBy; got != "c-1" {
		t.Errorf("need n-1 filledBy = %q, want c-1", got)
	}
	if !e.OnTeam("c-1") {
		t.Error("c-1 missing from team after assignment")
	}
	if !portal.StaffingConsistent(e) {
		t.Error("staffing inconsistent after assignment")
	}

	// Filled needs stay filled.
	if err := c.AssignConsultant("e-1", "n-1", "c-2"); err == nil {
		t.Error("assigning over a filled need succeeded")
	}
	if err := c.AssignConsultant("e-1", "n-9", "c-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("assigning to unknown need = %v, want ErrNotFound", err)
	}
	if err := c.AssignConsultant("e-1", "n-2", "c-404"); !errors.Is(err, ErrNotFound) {
		t.Errorf("assigning unknown consultant = %v, want ErrNotFound", err)
	}
}

func TestUnassignRemovesTeamEntry(t *testing.T) {
	db := testFake()
	c := loadedController(t, db)

	if err := c.AssignConsultant("e-1", "n-1", "c-1"); err != nil {
		t.Fatalf("AssignConsultant() error = %v", err)
	}
	if err := c.UnassignConsultant("e-1", "n-1"); err != nil {
		t.Fatalf("UnassignConsultant() error = %v", err)
	}

	e, _ := c.Engagement("e-1")
	if got := e.Need("n-1").FilledBy; got != "" {
		t.Errorf("need n-1 filledBy = %q, want empty", got)
	}
	if e.OnTeam("c-1") {
		t.Error("c-1 still on team after unassignment")
	}
	if !portal.StaffingConsistent(e) {
		t.Error("staffing inconsistent after unassignment")
	}
}

func TestUnassignKeepsTeamEntryWhileOtherNeedFilled(t *testing.T) {
	db := testFake()
	c := loadedController(t, db)

	if err := c.AssignConsultant("e-1", "n-1", "c-1"); err != nil {
		t.Fatalf("AssignConsultant(n-1) error = %v", err)
	}
	if err := c.AssignConsultant("e-1", "n-2", "c-1"); err != nil {
		t.Fatalf("AssignConsultant(n-2) error = %v", err)
	}
	if err := c.UnassignConsultant("e-1", "n-1"); err != nil {
		t.Fatalf("UnassignConsultant() error = %v", err)
	}

	e, _ := c.Engagement("e-1")
	if !e.OnTeam("c-1") {
		t.Error("c-1 left team while still filling n-2")
	}
	if !portal.StaffingConsistent(e) {
		t.Error("staffing inconsistent after partial unassignment")
	}
}

func TestAssignConvergesAfterFlush(t *testing.T) {
	db := testFake()
	c := loadedController(t, db)

	if err := c.AssignConsultant("e-1", "n-1", "c-1"); err != nil {
		t.Fatalf("AssignConsultant() error = %v", err)
	}
	if err := c.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	stored := db.Engagements[0]
	if got := stored.Need("n-1").FilledBy; got != "c-1" {
		t.Errorf("stored need n-1 filledBy = %q, want c-1", got)
	}
	if !stored.OnTeam("c-1") {
		t.Error("stored engagement team missing c-1")
	}
}

func TestAssignRollsBackBothFieldsOnPersistFailure(t *testing.T) {
	db := testFake()
	c := loadedController(t, db)
	db.Errs["PutEngagement"] = errors.New("conflict")

	if err := c.AssignConsultant("e-1", "n-1", "c-1"); err != nil {
		t.Fatalf("AssignConsultant() error = %v", err)
	}
	if err := c.Flush(context.Background()); err == nil {
		t.Fatal("Flush() error = nil, want persist failure")
	}

	e, _ := c.Engagement("e-1")
	if got := e.Need("n-1").FilledBy; got != "" {
		t.Errorf("need n-1 filledBy = %q after rollback, want empty", got)
	}
	if e.OnTeam("c-1") {
		t.Error("c-1 on team after rollback")
	}
}

func TestSetEngagementStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    portal.EngagementStatus
		to      portal.EngagementStatus
		wantErr bool
	}{
		{"pipeline to active", portal.StatusPipeline, portal.StatusActive, false},
		{"pipeline to on hold", portal.StatusPipeline, portal.StatusOnHold, false},
		{"active to completed", portal.StatusActive, portal.StatusCompleted, false},
		{"active to on hold", portal.StatusActive, portal.StatusOnHold, false},
		{"on hold to active", portal.StatusOnHold, portal.StatusActive, false},
		{"pipeline to completed", portal.StatusPipeline, portal.StatusCompleted, true},
		{"on hold to completed", portal.StatusOnHold, portal.StatusCompleted, true},
		{"completed to active", portal.StatusCompleted, portal.StatusActive, true},
		{"active to pipeline", portal.StatusActive, portal.StatusPipeline, true},
		{"same status", portal.StatusActive, portal.StatusActive, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testFake()
			db.Engagements[0].Status = tt.from
			c := loadedController(t, db)

			err := c.SetEngagementStatus("e-1", tt.to)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetEngagementStatus(%s -> %s) error = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
			}
			e, _ := c.Engagement("e-1")
			want := tt.from
			if !tt.wantErr {
				want = tt.to
			}
			if e.Status != want {
				t.Errorf("status = %s, want %s", e.Status, want)
			}
		})
	}
}

func TestOrderedPersistKeepsLastWrite(t *testing.T) {
	db := testFake()
	c := loadedController(t, db)

	if err := c.AssignConsultant("e-1", "n-1", "c-1"); err != nil {
		t.Fatalf("AssignConsultant() error = %v", err)
	}
	if err := c.UnassignConsultant("e-1", "n-1"); err != nil {
		t.Fatalf("UnassignConsultant() error = %v", err)
	}
	if err := c.AssignConsultant("e-1", "n-1", "c-2"); err != nil {
		t.Fatalf("reassign error = %v", err)
	}
	if err := c.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	stored := db.Engagements[0]
	if got := stored.Need("n-1").FilledBy; got != "c-2" {
		t.Errorf("stored need n-1 filledBy = %q, want c-2", got)
	}
}

func TestReadsReturnCopies(t *testing.T) {
	c := loadedController(t, testFake())

	engagements := c.Engagements()
	engagements[0].Team = append(engagements[0].Team, "c-999")
	engagements[0].StaffingNeeds[0].FilledBy = "c-999"

	e, _ := c.Engagement("e-1")
	if e.OnTeam("c-999") {
		t.Error("mutating a returned slice leaked into the mirror")
	}
	if e.Need("n-1").FilledBy == "c-999" {
		t.Error("mutating a returned need leaked into the mirror")
	}
}

func TestCreateEngagementRequiresConsistentStaffing(t *testing.T) {
	c := loadedController(t, testFake())

	err := c.CreateEngagement(portal.Engagement{
		ID:           "e-2",
		ClientName:   "Initech",
		ProjectName:  "Migration",
		Status:       portal.StatusPipeline,
		PricingModel: portal.PricingFixedFee,
		Team:         []string{"c-1"},
		StaffingNeeds: []portal.StaffingNeed{
			{ID: "n-1", Role: "Engineer"},
		},
	})
	if err == nil {
		t.Fatal("CreateEngagement() accepted a team entry with no filled need")
	}
}
