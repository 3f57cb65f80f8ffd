// Package portal defines the domain records stored by the intranet portal:
// tasks, announcements, knowledge documents, consultants, engagements and
// feedback requests, plus the enumerations they carry.
package portal

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

type TaskType string

const (
	TaskTraining    TaskType = "TRAINING"
	TaskEvaluation  TaskType = "EVALUATION"
	TaskProjectPrep TaskType = "PROJECT_PREP"
	TaskAdmin       TaskType = "ADMIN"
)

type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Priority    Priority `json:"priority"`
	Type        TaskType `json:"type"`
	Progress    int      `json:"progress"` // 0 to 100
}

type AnnouncementCategory string

const (
	CategoryStrategic AnnouncementCategory = "Strategic"
	CategoryHR        AnnouncementCategory = "HR"
	CategoryTech      AnnouncementCategory = "Tech"
	CategoryGeneral   AnnouncementCategory = "General"
)

type Announcement struct {
	ID       string               `json:"id"`
	Title    string               `json:"title"`
	Category AnnouncementCategory `json:"category"`
	Date     string               `json:"date"` // display text, not a timestamp
	Summary  string               `json:"summary"`
}

type DocType string

const (
	DocPolicy DocType = "Policy"
	DocGuide  DocType = "Guide"
	DocReport DocType = "Report"
	DocWiki   DocType = "Wiki"
)

type KnowledgeDoc struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        DocType  `json:"type"`
	LastUpdated string   `json:"lastUpdated"`
	Content     string   `json:"content"` // used verbatim as assistant grounding
	Tags        []string `json:"tags"`
}

type Availability string

const (
	Available Availability = "Available"
	OnBench   Availability = "On Bench"
	Assigned  Availability = "Assigned"
)

type Consultant struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Role         string       `json:"role"`
	Rate         float64      `json:"rate"` // hourly
	Avatar       string       `json:"avatar"`
	Specialty    string       `json:"specialty"`
	Availability Availability `json:"availability"`
}

type EngagementStatus string

const (
	StatusPipeline  EngagementStatus = "Pipeline"
	StatusActive    EngagementStatus = "Active"
	StatusCompleted EngagementStatus = "Completed"
	StatusOnHold    EngagementStatus = "On Hold"
)

type PricingModel string

const (
	PricingFixedFee   PricingModel = "Fixed Fee"
	PricingTimeAndMat PricingModel = "Time & Materials"
	PricingRetainer   PricingModel = "Retainer"
)

// StaffingNeed is an open position on an engagement. FilledBy, when set,
// holds the assigned consultant's id.
type StaffingNeed struct {
	ID       string   `json:"id"`
	Role     string   `json:"role"`
	Skills   []string `json:"skills"`
	FilledBy string   `json:"filledBy,omitempty"`
}

// Engagement is the one record mutated after creation. Team holds the ids
// of currently staffed consultants and must equal the set of non-empty
// FilledBy values across StaffingNeeds.
type Engagement struct {
	ID            string           `json:"id"`
	ClientName    string           `json:"clientName"`
	ProjectName   string           `json:"projectName"`
	Status        EngagementStatus `json:"status"`
	StartDate     string           `json:"startDate"`
	EndDate       string           `json:"endDate"`
	PricingModel  PricingModel     `json:"pricingModel"`
	Budget        float64          `json:"budget"`
	Description   string           `json:"description"`
	Team          []string         `json:"team"`
	StaffingNeeds []StaffingNeed   `json:"staffingNeeds"`
}

// Need returns the staffing need with the given id, or nil.
func (e *Engagement) Need(needID string) *StaffingNeed {
	for i := range e.StaffingNeeds {
		if e.StaffingNeeds[i].ID == needID {
			return &e.StaffingNeeds[i]
		}
	}
	return nil
}

// Clone returns a deep copy, so a caller can hold a snapshot across
// later mutations of the original.
func (e Engagement) Clone() Engagement {
	out := e
	if e.Team != nil {
		out.Team = append([]string(nil), e.Team...)
	}
	if e.StaffingNeeds != nil {
		out.StaffingNeeds = make([]StaffingNeed, len(e.StaffingNeeds))
		copy(out.StaffingNeeds, e.StaffingNeeds)
		for i, n := range out.StaffingNeeds {
			if n.Skills != nil {
				out.StaffingNeeds[i].Skills = append([]string(nil), n.Skills...)
			}
		}
	}
	return out
}

// OnTeam reports whether the consultant id appears in Team.
func (e *Engagement) OnTeam(consultantID string) bool {
	for _, id := range e.Team {
		if id == consultantID {
			return true
		}
	}
	return false
}

type FeedbackType string

const (
	FeedbackPeerReview    FeedbackType = "Peer Review"
	FeedbackProjectReview FeedbackType = "Project Review"
	FeedbackYearEnd       FeedbackType = "Year-End"
)

type FeedbackStatus string

const (
	FeedbackPending   FeedbackStatus = "Pending"
	FeedbackCompleted FeedbackStatus = "Completed"
)

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Avatar     string `json:"avatar"`
}

type FeedbackRequest struct {
	ID      string         `json:"id"`
	From    User           `json:"from"`
	Type    FeedbackType   `json:"type"`
	Status  FeedbackStatus `json:"status"`
	DueDate string         `json:"dueDate"`
}

type WorkExperience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Year        string `json:"year"`
}

type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

type OfficeStay struct {
	Location string `json:"location"`
	Period   string `json:"period"`
}

// UserProfile is never persisted. It is either the fixed current-user
// profile or derived on demand from a consultant record.
type UserProfile struct {
	User
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Location       string           `json:"location"`
	Timezone       string           `json:"timezone"`
	Tenure         string           `json:"tenure"`
	Path           string           `json:"path"`
	Guild          string           `json:"guild"`
	Languages      []string         `json:"languages"`
	Expertise      []string         `json:"expertise"`
	Bio            string           `json:"bio"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Certifications []Certification  `json:"certifications"`
	OfficeHistory  []OfficeStay     `json:"officeHistory"`
}
