package state

import (
	"context"
	"fmt"
	"slices"

	"nexusportal/internal/portal"
)

// run is the command shape shared by every mutation: mutate changes the
// mirror under lock and returns the rollback for the background writer,
// persist is the queued store write. A mutate error means nothing was
// changed or enqueued.
func (c *Controller) run(op string, mutate func() (func(), error), persist func(context.Context) error) error {
	if !c.ready() {
		return ErrNotReady
	}

	c.mu.Lock()
	compensate, err := mutate()
	c.mu.Unlock()
	if err != nil {
		return err
	}

	c.enqueue(persistOp{name: op, persist: persist, compensate: compensate})
	return nil
}

func (c *Controller) CreateTask(t portal.Task) error {
	if err := portal.ValidateTask(t); err != nil {
		return err
	}
	return c.run("create task",
		func() (func(), error) {
			if slices.ContainsFunc(c.tasks, func(x portal.Task) bool { return x.ID == t.ID }) {
				return nil, fmt.Errorf("task %q already exists", t.ID)
			}
			c.tasks = append(c.tasks, t)
			return func() {
				c.tasks = removeByID(c.tasks, t.ID, func(x portal.Task) string { return x.ID })
			}, nil
		},
		func(ctx context.Context) error {
			return c.store.AddTask(ctx, t)
		})
}

func (c *Controller) DeleteTask(id string) error {
	return c.run("delete task",
		func() (func(), error) {
			i := slices.IndexFunc(c.tasks, func(x portal.Task) bool { return x.ID == id })
			if i < 0 {
				return nil, fmt.Errorf("task %q: %w", id, ErrNotFound)
			}
			prior := c.tasks[i]
			c.tasks = slices.Delete(slices.Clone(c.tasks), i, i+1)
			return func() {
				c.tasks = insertAt(c.tasks, i, prior)
			}, nil
		},
		func(ctx context.Context) error {
			return c.store.DeleteTask(ctx, id)
		})
}

func (c *Controller) CreateAnnouncement(a portal.Announcement) error {
	if err := portal.ValidateAnnouncement(a); err != nil {
		return err
	}
	return c.run("create announcement",
		func() (func(), error) {
			if slices.ContainsFunc(c.announcements, func(x portal.Announcement) bool { return x.ID == a.ID }) {
				return nil, fmt.Errorf("announcement %q already exists", a.ID)
			}
			c.announcements = append(c.announcements, a)
			return func() {
				c.announcements = removeByID(c.announcements, a.ID, func(x portal.Announcement) string { return x.ID })
			}, nil
		},
		func(ctx context.Context) error {
			return c.store.AddAnnouncement(ctx, a)
		})
}

func (c *Controller) DeleteAnnouncement(id string) error {
	return c.run("delete announcement",
		func() (func(), error) {
			i := slices.IndexFunc(c.announcements, func(x portal.Announcement) bool { return x.ID == id })
			if i < 0 {
				return nil, fmt.Errorf("announcement %q: %w", id, ErrNotFound)
			}
			prior := c.announcements[i]
			c.announcements = slices.Delete(slices.Clone(c.announcements), i, i+1)
			return func() {
				c.announcements = insertAt(c.announcements, i, prior)
			}, nil
		},
		func(ctx context.Context) error {
			return c.store.DeleteAnnouncement(ctx, id)
		})
}

func (c *Controller) CreateKnowledgeDoc(d portal.KnowledgeDoc) error {
	if err := portal.ValidateKnowledgeDoc(d); err != nil {
		return err
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return c.run("create knowledge doc",
		func() (func(), error) {
			if slices.ContainsFunc(c.knowledgeDocs, func(x portal.KnowledgeDoc) bool { return x.ID == d.ID }) {
				return nil, fmt.Errorf("knowledge doc %q already exists", d.ID)
			}
			c.knowledgeDocs = append(c.knowledgeDocs, d)
			return func() {
				c.knowledgeDocs = removeByID(c.knowledgeDocs, d.ID, func(x portal.KnowledgeDoc) string { return x.ID })
			}, nil
		},
		func(ctx context.Context) error {
			return c.store.AddKnowledgeDoc(ctx, d)
		})
}

func (c *Controller) DeleteKnowledgeDoc(id string) error {
	return c.run("delete knowledge doc",
		func() (func(), error) {
			i := slices.IndexFunc(c.knowledgeDocs, func(x portal.KnowledgeDoc) bool { return x.ID == id })
			if i < 0 {
				return nil, fmt.Errorf("knowledge doc %q: %w", id, ErrNotFound)
			}
			prior := c.knowledgeDocs[i]
			c.knowledgeDocs = slices.Delete(slices.Clone(c.knowledgeDocs), i, i+1)
			return func() {
				c.knowledgeDocs = insertAt(c.knowledgeDocs, i, prior)
			}, nil
		},
		func(ctx context.Context) error {
			return c.store.DeleteKnowledgeDoc(ctx, id)
		})
}

// CreateConsultant defaults availability to Available when unset.
func (c *Controller) CreateConsultant(con portal.Consultant) error {
	if con.Availability == "" {
		con.Availability = portal.Available
	}
	if err := portal.ValidateConsultant(con); err != nil {
		return err
	}
	return c.run("create consultant",
		func() (func(), error) {
			if slices.ContainsFunc(c.consultants, func(x portal.Consultant) bool { return x.ID == con.ID }) {
				return nil, fmt.Errorf("consultant %q already exists", con.ID)
			}
			c.consultants = append(c.consultants, con)
			return func() {
				c.consultants = removeByID(c.consultants, con.ID, func(x portal.Consultant) string { return x.ID })
			}, nil
		},
		func(ctx context.Context) error {
			return c.store.AddConsultant(ctx, con)
		})
}

// DeleteConsultant refuses to delete a consultant any engagement still
// references, in a team list or a staffing need. Unassign first.
func (c *Controller) DeleteConsultant(id string) error {
	return c.run("delete consultant",
		func() (func(), error) {
			i := slices.IndexFunc(c.consultants, func(x portal.Consultant) bool { return x.ID == id })
			if i < 0 {
				return nil, fmt.Errorf("consultant %q: %w", id, ErrNotFound)
			}
			for j := range c.engagements {
				e := &c.engagements[j]
				if e.OnTeam(id) {
					return nil, fmt.Errorf("consultant %q is staffed on engagement %q", id, e.ID)
				}
				for _, n := range e.StaffingNeeds {
					if n.FilledBy == id {
						return nil, fmt.Errorf("consultant %q fills need %q on engagement %q", id, n.ID, e.ID)
					}
				}
			}
			prior := c.consultants[i]
			c.consultants = slices.Delete(slices.Clone(c.consultants), i, i+1)
			return func() {
				c.consultants = insertAt(c.consultants, i, prior)
			}, nil
		},
		func(ctx context.Context) error {
			return c.store.DeleteConsultant(ctx, id)
		})
}

func (c *Controller) CreateEngagement(e portal.Engagement) error {
	if e.Team == nil {
		e.Team = []string{}
	}
	if e.StaffingNeeds == nil {
		e.StaffingNeeds = []portal.StaffingNeed{}
	}
	if err := portal.ValidateEngagement(e); err != nil {
		return err
	}
	if !portal.StaffingConsistent(e) {
		return fmt.Errorf("engagement %q: team does not match filled staffing needs", e.ID)
	}
	stored := e.Clone()
	return c.run("create engagement",
		func() (func(), error) {
			if slices.ContainsFunc(c.engagements, func(x portal.Engagement) bool { return x.ID == e.ID }) {
				return nil, fmt.Errorf("engagement %q already exists", e.ID)
			}
			c.engagements = append(c.engagements, e.Clone())
			return func() {
				c.engagements = removeByID(c.engagements, e.ID, func(x portal.Engagement) string { return x.ID })
			}, nil
		},
		func(ctx context.Context) error {
			return c.store.AddEngagement(ctx, stored)
		})
}

// UpdateEngagement replaces the whole record. Staffing changes should go
// through AssignConsultant and UnassignConsultant instead.
func (c *Controller) UpdateEngagement(e portal.Engagement) error {
	if e.Team == nil {
		e.Team = []string{}
	}
	if e.StaffingNeeds == nil {
		e.StaffingNeeds = []portal.StaffingNeed{}
	}
	if err := portal.ValidateEngagement(e); err != nil {
		return err
	}
	if !portal.StaffingConsistent(e) {
		return fmt.Errorf("engagement %q: team does not match filled staffing needs", e.ID)
	}
	stored := e.Clone()
	return c.run("update engagement",
		func() (func(), error) {
			i := slices.IndexFunc(c.engagements, func(x portal.Engagement) bool { return x.ID == e.ID })
			if i < 0 {
				return nil, fmt.Errorf("engagement %q: %w", e.ID, ErrNotFound)
			}
			prior := c.engagements[i].Clone()
			c.engagements[i] = e.Clone()
			return func() {
				c.restoreEngagement(prior)
			}, nil
		},
		func(ctx context.Context) error {
			return c.store.PutEngagement(ctx, stored)
		})
}

func (c *Controller) DeleteEngagement(id string) error {
	return c.run("delete engagement",
		func() (func(), error) {
			i := slices.IndexFunc(c.engagements, func(x portal.Engagement) bool { return x.ID == id })
			if i < 0 {
				return nil, fmt.Errorf("engagement %q: %w", id, ErrNotFound)
			}
			prior := c.engagements[i].Clone()
			c.engagements = slices.Delete(slices.Clone(c.engagements), i, i+1)
			return func() {
				c.engagements = insertAt(c.engagements, i, prior)
			}, nil
		},
		func(ctx context.Context) error {
			return c.store.DeleteEngagement(ctx, id)
		})
}

// restoreEngagement puts prior back by id, used by compensations that
// may run after the slice has been reordered by later mutations.
func (c *Controller) restoreEngagement(prior portal.Engagement) {
	i := slices.IndexFunc(c.engagements, func(x portal.Engagement) bool { return x.ID == prior.ID })
	if i < 0 {
		c.engagements = append(c.engagements, prior)
		return
	}
	c.engagements[i] = prior
}

func removeByID[T any](s []T, id string, key func(T) string) []T {
	i := slices.IndexFunc(s, func(x T) bool { return key(x) == id })
	if i < 0 {
		return s
	}
	return slices.Delete(slices.Clone(s), i, i+1)
}

func insertAt[T any](s []T, i int, v T) []T {
	if i > len(s) {
		i = len(s)
	}
	return slices.Insert(slices.Clone(s), i, v)
}
