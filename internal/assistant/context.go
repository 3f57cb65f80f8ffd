package assistant

import (
	"fmt"
	"strings"

	"nexusportal/internal/portal"
)

// BuildCompanyContext renders the NOVA system instruction from the
// knowledge base and the signed-in user. Document content goes in
// verbatim, so the chat assistant is grounded in the same text the
// knowledge views render.
func BuildCompanyContext(docs []portal.KnowledgeDoc, user portal.User) string {
	var b strings.Builder
	b.WriteString("You are NOVA, the intelligent assistant for Nexus Corp.\n")
	b.WriteString("Nexus Corp is a top-tier global consulting firm.\n\n")

	b.WriteString("Key Documents & Policies available in the Knowledge Base:\n")
	for _, doc := range docs {
		fmt.Fprintf(&b, "- %s: %s\n", doc.Title, doc.Content)
	}

	b.WriteString("\nKey Information for Employees:\n")
	b.WriteString("1. **Security Training**: Mandatory for all staff by Nov 17th. Failure to complete results in account lockout.\n")
	b.WriteString("2. **Evaluations**: The 360 feedback cycle is open. Focus on \"Impact\" and \"Collaboration\".\n")
	b.WriteString("3. **Finance**: Expense reports are due by the 25th of each month. Receipts >$50 required.\n")
	b.WriteString("4. **Benefits**: Open enrollment starts Dec 1st. New vision plan added this year.\n")
	b.WriteString("5. **IT Support**: Located on Level 4. Remote support via ticket system.\n")
	b.WriteString("6. **Remote Work**: Hybrid policy. 2 days in office recommended, but flexible for Consultants.\n")

	fmt.Fprintf(&b, "\nCurrent User: %s, %s.\n", user.Name, user.Role)
	return b.String()
}
