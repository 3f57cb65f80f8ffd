package seed

import (
	"fmt"
	"reflect"
	"testing"

	"nexusportal/internal/portal"
)

func TestConsultantsDeterministic(t *testing.T) {
	a := Consultants(25)
	b := Consultants(25)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two runs of Consultants(25) differ")
	}
	if len(a) != 25 {
		t.Fatalf("len = %d, want 25", len(a))
	}
	for i, c := range a {
		if want := fmt.Sprintf("c-gen-%d", i); c.ID != want {
			t.Errorf("id = %q, want %q", c.ID, want)
		}
		if !c.Availability.Valid() {
			t.Errorf("%s: invalid availability %q", c.ID, c.Availability)
		}
		if c.Rate < 200 {
			t.Errorf("%s: rate %v below floor", c.ID, c.Rate)
		}
		if err := portal.ValidateConsultant(c); err != nil {
			t.Errorf("%s: %v", c.ID, err)
		}
	}
}

func TestEngagementsStaffingConsistent(t *testing.T) {
	consultants := Consultants(40)
	engagements := Engagements(30, consultants)
	if len(engagements) != 30 {
		t.Fatalf("len = %d, want 30", len(engagements))
	}

	known := make(map[string]bool, len(consultants))
	for _, c := range consultants {
		known[c.ID] = true
	}

	for _, e := range engagements {
		if err := portal.ValidateEngagement(e); err != nil {
			t.Errorf("%s: %v", e.ID, err)
		}
		if !portal.StaffingConsistent(e) {
			t.Errorf("%s: team does not match filled needs", e.ID)
		}
		for _, id := range e.Team {
			if !known[id] {
				t.Errorf("%s: team references unknown consultant %s", e.ID, id)
			}
		}
	}
}

func TestFixturesShape(t *testing.T) {
	if got := len(Tasks()); got != 4 {
		t.Errorf("len(Tasks()) = %d, want 4", got)
	}
	if got := len(Announcements()); got != 3 {
		t.Errorf("len(Announcements()) = %d, want 3", got)
	}
	if got := len(KnowledgeDocs()); got != 25 {
		t.Errorf("len(KnowledgeDocs()) = %d, want 25", got)
	}
	seen := make(map[string]bool)
	for _, doc := range KnowledgeDocs() {
		if seen[doc.ID] {
			t.Errorf("duplicate knowledge doc id %s", doc.ID)
		}
		seen[doc.ID] = true
		if err := portal.ValidateKnowledgeDoc(doc); err != nil {
			t.Errorf("%s: %v", doc.ID, err)
		}
	}
	if got := len(FeedbackRequests()); got != 2 {
		t.Errorf("len(FeedbackRequests()) = %d, want 2", got)
	}
	for _, task := range Tasks() {
		if err := portal.ValidateTask(task); err != nil {
			t.Errorf("%s: %v", task.ID, err)
		}
	}
	if CurrentUser.ID != "u-123" {
		t.Errorf("CurrentUser.ID = %q, want u-123", CurrentUser.ID)
	}
	if CurrentUserProfile.ID != CurrentUser.ID {
		t.Error("profile and user ids differ")
	}
}
