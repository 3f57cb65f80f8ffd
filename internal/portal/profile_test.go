package portal

import (
	"reflect"
	"strings"
	"testing"
)

func TestDeriveProfileDeterministic(t *testing.T) {
	c := Consultant{
		ID:        "c-7",
		Name:      "Dana Whitfield",
		Role:      "Principal",
		Specialty: "Supply Chain",
		Avatar:    "https://example.com/avatar/7",
	}
	first := DeriveProfile(c)
	second := DeriveProfile(c)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("DeriveProfile is not deterministic for the same consultant")
	}
}

func TestDeriveProfileFields(t *testing.T) {
	c := Consultant{
		ID:        "c-42",
		Name:      "Priya Raman",
		Role:      "Senior Consultant",
		Specialty: "Digital Strategy",
	}
	p := DeriveProfile(c)

	if p.ID != c.ID || p.Name != c.Name || p.Role != c.Role {
		t.Errorf("identity fields not carried over: got %s/%s/%s", p.ID, p.Name, p.Role)
	}
	if p.Email != "priya.raman@nexus.com" {
		t.Errorf("email = %q, want priya.raman@nexus.com", p.Email)
	}
	if !strings.HasPrefix(p.Phone, "+1 (555) ") {
		t.Errorf("phone = %q, want +1 (555) prefix", p.Phone)
	}
	if p.Guild != c.Specialty {
		t.Errorf("guild = %q, want %q", p.Guild, c.Specialty)
	}
	if p.Department != "Consulting Services" {
		t.Errorf("department = %q", p.Department)
	}
	if !strings.HasSuffix(p.Tenure, " Years") {
		t.Errorf("tenure = %q, want a year count", p.Tenure)
	}
	if len(p.WorkExperience) != 2 || p.WorkExperience[0].ID != "w-c-42-1" {
		t.Errorf("unexpected work experience: %+v", p.WorkExperience)
	}
	if len(p.Languages) != 2 || p.Languages[0] != "English (Native)" {
		t.Errorf("unexpected languages: %v", p.Languages)
	}
	if !strings.Contains(p.Bio, c.Name) || !strings.Contains(p.Bio, c.Specialty) {
		t.Errorf("bio does not mention the consultant: %q", p.Bio)
	}
}

func TestDeriveProfileVariesByID(t *testing.T) {
	a := DeriveProfile(Consultant{ID: "c-1", Name: "A B", Role: "Analyst", Specialty: "Ops"})
	b := DeriveProfile(Consultant{ID: "c-2", Name: "A B", Role: "Analyst", Specialty: "Ops"})
	if a.Phone == b.Phone && a.Location == b.Location && a.Tenure == b.Tenure {
		t.Error("profiles for different ids share every derived field")
	}
}
