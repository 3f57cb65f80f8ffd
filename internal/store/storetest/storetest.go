// Package storetest provides an in-memory Store for tests.
package storetest

import (
	"context"
	"fmt"
	"sync"

	"nexusportal/internal/portal"
	"nexusportal/internal/store"
)

var _ store.Store = (*Fake)(nil)

// Fake keeps every collection in a slice and injects failures by
// operation name: Errs["AddTask"] makes AddTask fail. Collections are
// exported so tests can seed and inspect them directly.
type Fake struct {
	mu sync.Mutex

	Tasks            []portal.Task
	Announcements    []portal.Announcement
	KnowledgeDocs    []portal.KnowledgeDoc
	Consultants      []portal.Consultant
	Engagements      []portal.Engagement
	FeedbackRequests []portal.FeedbackRequest

	SearchResults []store.SearchResult
	SQLRows       []map[string]any

	Errs   map[string]error
	Seeded bool
	Calls  []string
}

func New() *Fake {
	return &Fake{Errs: make(map[string]error)}
}

func (f *Fake) fail(op string) error {
	f.Calls = append(f.Calls, op)
	return f.Errs[op]
}

func (f *Fake) Close(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fail("Close")
}

func (f *Fake) EnsureSchema(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fail("EnsureSchema")
}

func (f *Fake) SeedOnce(ctx context.Context, data store.Dataset) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("SeedOnce"); err != nil {
		return false, err
	}
	if f.Seeded {
		return false, nil
	}
	f.Tasks = append(f.Tasks, data.Tasks...)
	f.Announcements = append(f.Announcements, data.Announcements...)
	f.KnowledgeDocs = append(f.KnowledgeDocs, data.KnowledgeDocs...)
	f.Consultants = append(f.Consultants, data.Consultants...)
	f.Engagements = append(f.Engagements, data.Engagements...)
	f.FeedbackRequests = append(f.FeedbackRequests, data.FeedbackRequests...)
	f.Seeded = true
	return true, nil
}

func (f *Fake) GetTask(ctx context.Context, id string) (*portal.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("GetTask"); err != nil {
		return nil, err
	}
	for _, t := range f.Tasks {
		if t.ID == id {
			out := t
			return &out, nil
		}
	}
	return nil, nil
}

func (f *Fake) ListTasks(ctx context.Context) ([]portal.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("ListTasks"); err != nil {
		return nil, err
	}
	return append([]portal.Task{}, f.Tasks...), nil
}

func (f *Fake) AddTask(ctx context.Context, t portal.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("AddTask"); err != nil {
		return err
	}
	for _, existing := range f.Tasks {
		if existing.ID == t.ID {
			return fmt.Errorf("task %q: %w", t.ID, store.ErrDuplicateKey)
		}
	}
	f.Tasks = append(f.Tasks, t)
	return nil
}

func (f *Fake) PutTask(ctx context.Context, t portal.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("PutTask"); err != nil {
		return err
	}
	for i, existing := range f.Tasks {
		if existing.ID == t.ID {
			f.Tasks[i] = t
			return nil
		}
	}
	f.Tasks = append(f.Tasks, t)
	return nil
}

func (f *Fake) DeleteTask(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("DeleteTask"); err != nil {
		return err
	}
	f.Tasks = deleteByID(f.Tasks, id, func(t portal.Task) string { return t.ID })
	return nil
}

func (f *Fake) GetAnnouncement(ctx context.Context, id string) (*portal.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("GetAnnouncement"); err != nil {
		return nil, err
	}
	for _, a := range f.Announcements {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (f *Fake) ListAnnouncements(ctx context.Context) ([]portal.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("ListAnnouncements"); err != nil {
		return nil, err
	}
	return append([]portal.Announcement{}, f.Announcements...), nil
}

func (f *Fake) AddAnnouncement(ctx context.Context, a portal.Announcement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("AddAnnouncement"); err != nil {
		return err
	}
	for _, existing := range f.Announcements {
		if existing.ID == a.ID {
			return fmt.Errorf("announcement %q: %w", a.ID, store.ErrDuplicateKey)
		}
	}
	f.Announcements = append(f.Announcements, a)
	return nil
}

func (f *Fake) PutAnnouncement(ctx context.Context, a portal.Announcement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("PutAnnouncement"); err != nil {
		return err
	}
	for i, existing := range f.Announcements {
		if existing.ID == a.ID {
			f.Announcements[i] = a
			return nil
		}
	}
	f.Announcements = append(f.Announcements, a)
	return nil
}

func (f *Fake) DeleteAnnouncement(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("DeleteAnnouncement"); err != nil {
		return err
	}
	f.Announcements = deleteByID(f.Announcements, id, func(a portal.Announcement) string { return a.ID })
	return nil
}

func (f *Fake) GetKnowledgeDoc(ctx context.Context, id string) (*portal.KnowledgeDoc, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("GetKnowledgeDoc"); err != nil {
		return nil, err
	}
	for _, d := range f.KnowledgeDocs {
		if d.ID == id {
			out := d
			return &out, nil
		}
	}
	return nil, nil
}

func (f *Fake) ListKnowledgeDocs(ctx context.Context) ([]portal.KnowledgeDoc, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("ListKnowledgeDocs"); err != nil {
		return nil, err
	}
	return append([]portal.KnowledgeDoc{}, f.KnowledgeDocs...), nil
}

func (f *Fake) AddKnowledgeDoc(ctx context.Context, d portal.KnowledgeDoc) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("AddKnowledgeDoc"); err != nil {
		return err
	}
	for _, existing := range f.KnowledgeDocs {
		if existing.ID == d.ID {
			return fmt.Errorf("knowledge doc %q: %w", d.ID, store.ErrDuplicateKey)
		}
	}
	f.KnowledgeDocs = append(f.KnowledgeDocs, d)
	return nil
}

func (f *Fake) PutKnowledgeDoc(ctx context.Context, d portal.KnowledgeDoc) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("PutKnowledgeDoc"); err != nil {
		return err
	}
	for i, existing := range f.KnowledgeDocs {
		if existing.ID == d.ID {
			f.KnowledgeDocs[i] = d
			return nil
		}
	}
	f.KnowledgeDocs = append(f.KnowledgeDocs, d)
	return nil
}

func (f *Fake) DeleteKnowledgeDoc(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("DeleteKnowledgeDoc"); err != nil {
		return err
	}
	f.KnowledgeDocs = deleteByID(f.KnowledgeDocs, id, func(d portal.KnowledgeDoc) string { return d.ID })
	return nil
}

func (f *Fake) SearchKnowledge(ctx context.Context, query string) ([]store.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("SearchKnowledge"); err != nil {
		return nil, err
	}
	return append([]store.SearchResult{}, f.SearchResults...), nil
}

func (f *Fake) GetConsultant(ctx context.Context, id string) (*portal.Consultant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("GetConsultant"); err != nil {
		return nil, err
	}
	for _, c := range f.Consultants {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (f *Fake) ListConsultants(ctx context.Context) ([]portal.Consultant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("ListConsultants"); err != nil {
		return nil, err
	}
	return append([]portal.Consultant{}, f.Consultants...), nil
}

func (f *Fake) AddConsultant(ctx context.Context, c portal.Consultant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("AddConsultant"); err != nil {
		return err
	}
	for _, existing := range f.Consultants {
		if existing.ID == c.ID {
			return fmt.Errorf("consultant %q: %w", c.ID, store.ErrDuplicateKey)
		}
	}
	f.Consultants = append(f.Consultants, c)
	return nil
}

func (f *Fake) PutConsultant(ctx context.Context, c portal.Consultant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("PutConsultant"); err != nil {
		return err
	}
	for i, existing := range f.Consultants {
		if existing.ID == c.ID {
			f.Consultants[i] = c
			return nil
		}
	}
	f.Consultants = append(f.Consultants, c)
	return nil
}

func (f *Fake) DeleteConsultant(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("DeleteConsultant"); err != nil {
		return err
	}
	f.Consultants = deleteByID(f.Consultants, id, func(c portal.Consultant) string { return c.ID })
	return nil
}

func (f *Fake) GetEngagement(ctx context.Context, id string) (*portal.Engagement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("GetEngagement"); err != nil {
		return nil, err
	}
	for _, e := range f.Engagements {
		if e.ID == id {
			out := e.Clone()
			return &out, nil
		}
	}
	return nil, nil
}

func (f *Fake) ListEngagements(ctx context.Context) ([]portal.Engagement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("ListEngagements"); err != nil {
		return nil, err
	}
	out := make([]portal.Engagement, 0, len(f.Engagements))
	for _, e := range f.Engagements {
		out = append(out, e.Clone())
	}
	return out, nil
}

func (f *Fake) AddEngagement(ctx context.Context, e portal.Engagement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("AddEngagement"); err != nil {
		return err
	}
	for _, existing := range f.Engagements {
		if existing.ID == e.ID {
			return fmt.Errorf("engagement %q: %w", e.ID, store.ErrDuplicateKey)
		}
	}
	f.Engagements = append(f.Engagements, e.Clone())
	return nil
}

func (f *Fake) PutEngagement(ctx context.Context, e portal.Engagement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("PutEngagement"); err != nil {
		return err
	}
	for i, existing := range f.Engagements {
		if existing.ID == e.ID {
			f.Engagements[i] = e.Clone()
			return nil
		}
	}
	f.Engagements = append(f.Engagements, e.Clone())
	return nil
}

func (f *Fake) DeleteEngagement(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("DeleteEngagement"); err != nil {
		return err
	}
	f.Engagements = deleteByID(f.Engagements, id, func(e portal.Engagement) string { return e.ID })
	return nil
}

func (f *Fake) GetFeedbackRequest(ctx context.Context, id string) (*portal.FeedbackRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("GetFeedbackRequest"); err != nil {
		return nil, err
	}
	for _, r := range f.FeedbackRequests {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, nil
}

func (f *Fake) ListFeedbackRequests(ctx context.Context) ([]portal.FeedbackRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("ListFeedbackRequests"); err != nil {
		return nil, err
	}
	return append([]portal.FeedbackRequest{}, f.FeedbackRequests...), nil
}

func (f *Fake) AddFeedbackRequest(ctx context.Context, r portal.FeedbackRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("AddFeedbackRequest"); err != nil {
		return err
	}
	for _, existing := range f.FeedbackRequests {
		if existing.ID == r.ID {
			return fmt.Errorf("feedback request %q: %w", r.ID, store.ErrDuplicateKey)
		}
	}
	f.FeedbackRequests = append(f.FeedbackRequests, r)
	return nil
}

func (f *Fake) DeleteFeedbackRequest(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("DeleteFeedbackRequest"); err != nil {
		return err
	}
	f.FeedbackRequests = deleteByID(f.FeedbackRequests, id, func(r portal.FeedbackRequest) string { return r.ID })
	return nil
}

func (f *Fake) RunSQL(ctx context.Context, query string) ([]map[string]any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("RunSQL"); err != nil {
		return nil, err
	}
	return append([]map[string]any{}, f.SQLRows...), nil
}

func deleteByID[T any](s []T, id string, key func(T) string) []T {
	out := s[:0]
	for _, item := range s {
		if key(item) != id {
			out = append(out, item)
		}
	}
	return out
}
