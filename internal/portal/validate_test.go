package portal

import "testing"

func TestValidateTask(t *testing.T) {
	valid := Task{ID: "t-1", Title: "File expenses", Priority: PriorityHigh, Type: TaskAdmin, Progress: 40}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Task) {}},
		{name: "blank id", mutate: func(t *Task) { t.ID = "  " }, wantErr: true},
		{name: "blank title", mutate: func(t *Task) { t.Title = "" }, wantErr: true},
		{name: "bad priority", mutate: func(t *Task) { t.Priority = "URGENT" }, wantErr: true},
		{name: "bad type", mutate: func(t *Task) { t.Type = "CHORE" }, wantErr: true},
		{name: "progress over 100", mutate: func(t *Task) { t.Progress = 101 }, wantErr: true},
		{name: "negative progress", mutate: func(t *Task) { t.Progress = -1 }, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			task := valid
			tc.mutate(&task)
			err := ValidateTask(task)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateTask() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateEngagement(t *testing.T) {
	valid := Engagement{
		ID:           "e-1",
		ClientName:   "Globex",
		ProjectName:  "ERP Rollout",
		Status:       StatusActive,
		PricingModel: PricingFixedFee,
		StaffingNeeds: []StaffingNeed{
			{ID: "n-1", Role: "Engagement Manager"},
			{ID: "n-2", Role: "Analyst"},
		},
	}

	tests := []struct {
		name    string
		mutate  func(*Engagement)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Engagement) {}},
		{name: "blank client", mutate: func(e *Engagement) { e.ClientName = "" }, wantErr: true},
		{name: "blank project", mutate: func(e *Engagement) { e.ProjectName = " " }, wantErr: true},
		{name: "bad status", mutate: func(e *Engagement) { e.Status = "Paused" }, wantErr: true},
		{name: "bad pricing model", mutate: func(e *Engagement) { e.PricingModel = "Barter" }, wantErr: true},
		{name: "blank need id", mutate: func(e *Engagement) { e.StaffingNeeds[0].ID = "" }, wantErr: true},
		{name: "duplicate need id", mutate: func(e *Engagement) { e.StaffingNeeds[1].ID = "n-1" }, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := valid.Clone()
			tc.mutate(&e)
			err := ValidateEngagement(e)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateEngagement() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestStaffingConsistent(t *testing.T) {
	tests := []struct {
		name string
		e    Engagement
		want bool
	}{
		{
			name: "empty engagement",
			e:    Engagement{},
			want: true,
		},
		{
			name: "filled needs match team",
			e: Engagement{
				StaffingNeeds: []StaffingNeed{{ID: "n-1", FilledBy: "c-1"}, {ID: "n-2"}},
				Team:          []string{"c-1"},
			},
			want: true,
		},
		{
			name: "one consultant filling two needs",
			e: Engagement{
				StaffingNeeds: []StaffingNeed{{ID: "n-1", FilledBy: "c-1"}, {ID: "n-2", FilledBy: "c-1"}},
				Team:          []string{"c-1"},
			},
			want: true,
		},
		{
			name: "team member without filled need",
			e: Engagement{
				StaffingNeeds: []StaffingNeed{{ID: "n-1"}},
				Team:          []string{"c-1"},
			},
			want: false,
		},
		{
			name: "filled need missing from team",
			e: Engagement{
				StaffingNeeds: []StaffingNeed{{ID: "n-1", FilledBy: "c-1"}},
			},
			want: false,
		},
		{
			name: "duplicate team entry",
			e: Engagement{
				StaffingNeeds: []StaffingNeed{{ID: "n-1", FilledBy: "c-1"}},
				Team:          []string{"c-1", "c-1"},
			},
			want: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StaffingConsistent(tc.e); got != tc.want {
				t.Fatalf("StaffingConsistent() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEnumValid(t *testing.T) {
	if !PriorityHigh.Valid() || Priority("CRITICAL").Valid() {
		t.Error("Priority.Valid misclassifies")
	}
	if !DocGuide.Valid() || DocType("Memo").Valid() {
		t.Error("DocType.Valid misclassifies")
	}
	if !StatusOnHold.Valid() || EngagementStatus("Cancelled").Valid() {
		t.Error("EngagementStatus.Valid misclassifies")
	}
	if !FeedbackPending.Valid() || FeedbackStatus("Overdue").Valid() {
		t.Error("FeedbackStatus.Valid misclassifies")
	}
}
