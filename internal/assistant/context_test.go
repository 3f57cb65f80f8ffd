package assistant

import (
	"strings"
	"testing"

	"nexusportal/internal/portal"
)

func TestBuildCompanyContext(t *testing.T) {
	docs := []portal.KnowledgeDoc{
		{ID: "k-1", Title: "Remote Work Policy", Content: "Hybrid schedule, two office days."},
		{ID: "k-2", Title: "Expense Reimbursement Guidelines", Content: "Receipts over $50 required."},
	}
	user := portal.User{ID: "u-123", Name: "Alex Chen", Role: "Senior Consultant"}

	got := BuildCompanyContext(docs, user)

	for _, want := range []string{
		"You are NOVA",
		"- Remote Work Policy: Hybrid schedule, two office days.",
		"- Expense Reimbursement Guidelines: Receipts over $50 required.",
		"Key Information for Employees:",
		"Current User: Alex Chen, Senior Consultant.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q", want)
		}
	}
}

func TestBuildCompanyContextNoDocs(t *testing.T) {
	got := BuildCompanyContext(nil, portal.User{Name: "Alex Chen", Role: "Senior Consultant"})
	if !strings.Contains(got, "Knowledge Base:") {
		t.Error("document section header missing")
	}
	if !strings.Contains(got, "Current User: Alex Chen") {
		t.Error("user line missing")
	}
}
