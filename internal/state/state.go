// Package state holds a session's in-memory mirror of the portal
// collections. Reads are served from the mirror; mutations apply to the
// mirror synchronously and persist through an ordered background writer,
// rolling the mirror back when a write fails. The mirror is the single
// rendering source between loads, so reads may be stale with respect to
// other sessions but never with respect to this one.
package state

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/anggasct/fluo"
	"go.uber.org/zap"

	"nexusportal/internal/portal"
	"nexusportal/internal/store"
)

// Session lifecycle. One way: mutations are rejected until the first
// load completes.
const (
	stateLoading = "loading"
	stateReady   = "ready"
	eventLoaded  = "loaded"
)

var (
	// ErrNotReady is returned by mutations before the first successful load.
	ErrNotReady = errors.New("session not loaded")

	// ErrNotFound is returned by mutations referencing an id absent from
	// the session mirror.
	ErrNotFound = errors.New("not found")
)

type Controller struct {
	store store.Store
	log   *zap.Logger

	lifecycle fluo.Machine

	mu               sync.Mutex
	tasks            []portal.Task
	announcements    []portal.Announcement
	knowledgeDocs    []portal.KnowledgeDoc
	consultants      []portal.Consultant
	engagements      []portal.Engagement
	feedbackRequests []portal.FeedbackRequest
	currentUser      portal.User

	queue     chan persistOp
	done      chan struct{}
	closeOnce sync.Once

	drift atomic.Int64

	errMu    sync.Mutex
	firstErr error
}

func New(st store.Store, currentUser portal.User, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}

	lifecycle := fluo.NewMachine().
		State(stateLoading).Initial().
		To(stateReady).On(eventLoaded).
		State(stateReady).
		Build().
		CreateInstance()
	_ = lifecycle.Start()

	c := &Controller{
		store:       st,
		log:         log,
		lifecycle:   lifecycle,
		currentUser: currentUser,
		queue:       make(chan persistOp, persistQueueDepth),
		done:        make(chan struct{}),
	}
	go c.runQueue()
	return c
}

func (c *Controller) ready() bool {
	return c.lifecycle.CurrentState() == stateReady
}

// Ready reports whether the first load has completed.
func (c *Controller) Ready() bool {
	return c.ready()
}

// DriftCount is the number of optimistic mutations rolled back because
// their persistence failed.
func (c *Controller) DriftCount() int64 {
	return c.drift.Load()
}

// Close drains and stops the background writer.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		close(c.queue)
	})
	<-c.done
}

func (c *Controller) CurrentUser() portal.User {
	return c.currentUser
}

func (c *Controller) Tasks() []portal.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]portal.Task(nil), c.tasks...)
}

func (c *Controller) Announcements() []portal.Announcement {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]portal.Announcement(nil), c.announcements...)
}

func (c *Controller) KnowledgeDocs() []portal.KnowledgeDoc {
	c.mu.Lock()
	defer c.mu.Unlock()
	docs := make([]portal.KnowledgeDoc, len(c.knowledgeDocs))
	copy(docs, c.knowledgeDocs)
	for i, d := range docs {
		if d.Tags != nil {
			docs[i].Tags = append([]string(nil), d.Tags...)
		}
	}
	return docs
}

func (c *Controller) Consultants() []portal.Consultant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]portal.Consultant(nil), c.consultants...)
}

func (c *Controller) Engagements() []portal.Engagement {
	c.mu.Lock()
	defer c.mu.Unlock()
	engagements := make([]portal.Engagement, len(c.engagements))
	for i, e := range c.engagements {
		engagements[i] = e.Clone()
	}
	return engagements
}

func (c *Controller) FeedbackRequests() []portal.FeedbackRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]portal.FeedbackRequest(nil), c.feedbackRequests...)
}

// Consultant returns a copy of the consultant with the given id.
func (c *Controller) Consultant(id string) (portal.Consultant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, con := range c.consultants {
		if con.ID == id {
			return con, true
		}
	}
	return portal.Consultant{}, false
}

// Engagement returns a copy of the engagement with the given id.
func (c *Controller) Engagement(id string) (portal.Engagement, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.engagements {
		if c.engagements[i].ID == id {
			return c.engagements[i].Clone(), true
		}
	}
	return portal.Engagement{}, false
}
