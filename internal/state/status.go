package state

import (
	"fmt"

	"github.com/anggasct/fluo"

	"nexusportal/internal/portal"
)

// Engagement status events. Pipeline is entry-only and Completed is
// terminal, so three events cover the lattice.
const (
	eventActivate = "activate"
	eventHold     = "hold"
	eventComplete = "complete"
)

var statusMachine = fluo.NewMachine().
	State(string(portal.StatusPipeline)).Initial().
	To(string(portal.StatusActive)).On(eventActivate).
	To(string(portal.StatusOnHold)).On(eventHold).
	State(string(portal.StatusActive)).
	To(string(portal.StatusCompleted)).On(eventComplete).
	To(string(portal.StatusOnHold)).On(eventHold).
	State(string(portal.StatusOnHold)).
	To(string(portal.StatusActive)).On(eventActivate).
	State(string(portal.StatusCompleted)).Final().
	Build()

func statusEvent(target portal.EngagementStatus) (string, bool) {
	switch target {
	case portal.StatusActive:
		return eventActivate, true
	case portal.StatusOnHold:
		return eventHold, true
	case portal.StatusCompleted:
		return eventComplete, true
	default:
		return "", false
	}
}

// stepStatus checks one transition against the status machine. A fresh
// instance per call keeps the machine stateless from the caller's view.
func stepStatus(from, to portal.EngagementStatus) error {
	event, ok := statusEvent(to)
	if !ok {
		return fmt.Errorf("cannot move an engagement back to %s", to)
	}

	m := statusMachine.CreateInstance()
	if err := m.Start(); err != nil {
		return fmt.Errorf("starting status machine: %w", err)
	}
	if err := m.SetState(string(from)); err != nil {
		return fmt.Errorf("setting status %q: %w", from, err)
	}

	result := m.HandleEvent(event, nil)
	if result.Error != nil {
		return fmt.Errorf("moving from %s to %s: %w", from, to, result.Error)
	}
	if !result.Processed || !result.StateChanged || result.CurrentState != string(to) {
		return fmt.Errorf("cannot move from %s to %s", from, to)
	}
	return nil
}
