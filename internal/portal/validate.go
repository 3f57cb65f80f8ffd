package portal

import (
	"fmt"
	"strings"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

func (t TaskType) Valid() bool {
	switch t {
	case TaskTraining, TaskEvaluation, TaskProjectPrep, TaskAdmin:
		return true
	}
	return false
}

func (c AnnouncementCategory) Valid() bool {
	switch c {
	case CategoryStrategic, CategoryHR, CategoryTech, CategoryGeneral:
		return true
	}
	return false
}

func (d DocType) Valid() bool {
	switch d {
	case DocPolicy, DocGuide, DocReport, DocWiki:
		return true
	}
	return false
}

func (a Availability) Valid() bool {
	switch a {
	case Available, OnBench, Assigned:
		return true
	}
	return false
}

func (s EngagementStatus) Valid() bool {
	switch s {
	case StatusPipeline, StatusActive, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

func (p PricingModel) Valid() bool {
	switch p {
	case PricingFixedFee, PricingTimeAndMat, PricingRetainer:
		return true
	}
	return false
}

func (t FeedbackType) Valid() bool {
	switch t {
	case FeedbackPeerReview, FeedbackProjectReview, FeedbackYearEnd:
		return true
	}
	return false
}

func (s FeedbackStatus) Valid() bool {
	switch s {
	case FeedbackPending, FeedbackCompleted:
		return true
	}
	return false
}

// ValidateTask checks required fields and enum membership before a write.
func ValidateTask(t Task) error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title is required")
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("invalid task priority: %q", t.Priority)
	}
	if !t.Type.Valid() {
		return fmt.Errorf("invalid task type: %q", t.Type)
	}
	if t.Progress < 0 || t.Progress > 100 {
		return fmt.Errorf("task progress must be between 0 and 100, got %d", t.Progress)
	}
	return nil
}

func ValidateAnnouncement(a Announcement) error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("announcement id is required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("announcement title is required")
	}
	if !a.Category.Valid() {
		return fmt.Errorf("invalid announcement category: %q", a.Category)
	}
	return nil
}

func ValidateKnowledgeDoc(d KnowledgeDoc) error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("document id is required")
	}
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("document title is required")
	}
	if !d.Type.Valid() {
		return fmt.Errorf("invalid document type: %q", d.Type)
	}
	return nil
}

func ValidateConsultant(c Consultant) error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("consultant id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("consultant name is required")
	}
	if c.Rate < 0 {
		return fmt.Errorf("consultant rate must not be negative")
	}
	if !c.Availability.Valid() {
		return fmt.Errorf("invalid availability: %q", c.Availability)
	}
	return nil
}

// ValidateEngagement mirrors the finance form: client and project names are
// required; everything else is checked for enum membership only.
func ValidateEngagement(e Engagement) error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("engagement id is required")
	}
	if strings.TrimSpace(e.ClientName) == "" {
		return fmt.Errorf("client name is required")
	}
	if strings.TrimSpace(e.ProjectName) == "" {
		return fmt.Errorf("project name is required")
	}
	if !e.Status.Valid() {
		return fmt.Errorf("invalid engagement status: %q", e.Status)
	}
	if !e.PricingModel.Valid() {
		return fmt.Errorf("invalid pricing model: %q", e.PricingModel)
	}
	seen := make(map[string]struct{})
	for _, need := range e.StaffingNeeds {
		if strings.TrimSpace(need.ID) == "" {
			return fmt.Errorf("staffing need id is required")
		}
		if _, dup := seen[need.ID]; dup {
			return fmt.Errorf("duplicate staffing need id: %s", need.ID)
		}
		seen[need.ID] = struct{}{}
	}
	return nil
}

// StaffingConsistent reports whether the engagement's team equals the set of
// filled staffing needs, with no duplicates on either side.
func StaffingConsistent(e Engagement) bool {
	filled := make(map[string]struct{})
	for _, need := range e.StaffingNeeds {
		if need.FilledBy == "" {
			continue
		}
		filled[need.FilledBy] = struct{}{}
	}
	team := make(map[string]struct{})
	for _, id := range e.Team {
		if _, dup := team[id]; dup {
			return false
		}
		team[id] = struct{}{}
	}
	if len(team) != len(filled) {
		return false
	}
	for id := range filled {
		if _, ok := team[id]; !ok {
			return false
		}
	}
	return true
}
