// Package store defines the persistence contract for the six portal
// collections. Backends live in the sqlite and postgres subpackages and
// are selected by DSN scheme.
package store

import (
	"context"

	"nexusportal/internal/portal"
)

// Store is the data access layer. Get lookups return (nil, nil) when the
// id is absent. Add fails with ErrDuplicateKey on an existing id, Put
// upserts, Delete is a no-op on a missing id. Any backend failure wraps
// ErrUnavailable.
type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	// SeedOnce populates an empty store from the dataset exactly once,
	// guarded by a persistent marker. It reports whether seeding ran.
	SeedOnce(ctx context.Context, data Dataset) (bool, error)

	GetTask(ctx context.Context, id string) (*portal.Task, error)
	ListTasks(ctx context.Context) ([]portal.Task, error)
	AddTask(ctx context.Context, t portal.Task) error
	PutTask(ctx context.Context, t portal.Task) error
	DeleteTask(ctx context.Context, id string) error

	GetAnnouncement(ctx context.Context, id string) (*portal.Announcement, error)
	ListAnnouncements(ctx context.Context) ([]portal.Announcement, error)
	AddAnnouncement(ctx context.Context, a portal.Announcement) error
	PutAnnouncement(ctx context.Context, a portal.Announcement) error
	DeleteAnnouncement(ctx context.Context, id string) error

	GetKnowledgeDoc(ctx context.Context, id string) (*portal.KnowledgeDoc, error)
	ListKnowledgeDocs(ctx context.Context) ([]portal.KnowledgeDoc, error)
	AddKnowledgeDoc(ctx context.Context, d portal.KnowledgeDoc) error
	PutKnowledgeDoc(ctx context.Context, d portal.KnowledgeDoc) error
	DeleteKnowledgeDoc(ctx context.Context, id string) error
	SearchKnowledge(ctx context.Context, query string) ([]SearchResult, error)

	GetConsultant(ctx context.Context, id string) (*portal.Consultant, error)
	ListConsultants(ctx context.Context) ([]portal.Consultant, error)
	AddConsultant(ctx context.Context, c portal.Consultant) error
	PutConsultant(ctx context.Context, c portal.Consultant) error
	DeleteConsultant(ctx context.Context, id string) error

	GetEngagement(ctx context.Context, id string) (*portal.Engagement, error)
	ListEngagements(ctx context.Context) ([]portal.Engagement, error)
	AddEngagement(ctx context.Context, e portal.Engagement) error
	PutEngagement(ctx context.Context, e portal.Engagement) error
	DeleteEngagement(ctx context.Context, id string) error

	GetFeedbackRequest(ctx context.Context, id string) (*portal.FeedbackRequest, error)
	ListFeedbackRequests(ctx context.Context) ([]portal.FeedbackRequest, error)
	AddFeedbackRequest(ctx context.Context, f portal.FeedbackRequest) error
	DeleteFeedbackRequest(ctx context.Context, id string) error

	// RunSQL backs the admin raw-table inspector. Read-only statements only.
	RunSQL(ctx context.Context, query string) ([]map[string]any, error)
}

// Dataset is the first-open seed payload.
type Dataset struct {
	Tasks            []portal.Task
	Announcements    []portal.Announcement
	KnowledgeDocs    []portal.KnowledgeDoc
	Consultants      []portal.Consultant
	Engagements      []portal.Engagement
	FeedbackRequests []portal.FeedbackRequest
}

// SearchResult is one knowledge base hit, best first.
type SearchResult struct {
	ID      string
	Title   string
	Type    portal.DocType
	Tags    []string
	Score   float64
	Snippet string
}
