package state

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	persistQueueDepth = 128
	persistTimeout    = 30 * time.Second
)

// persistOp is one queued write. Ops run in enqueue order on a single
// goroutine, so two mutations of the same record cannot land out of
// order. compensate restores the mirror's prior value when the write
// fails; a flush op instead reports the first failure seen so far.
type persistOp struct {
	name       string
	persist    func(context.Context) error
	compensate func()
	flush      chan error
}

func (c *Controller) enqueue(op persistOp) {
	c.queue <- op
}

func (c *Controller) runQueue() {
	defer close(c.done)

	for op := range c.queue {
		if op.flush != nil {
			c.errMu.Lock()
			err := c.firstErr
			c.firstErr = nil
			c.errMu.Unlock()
			op.flush <- err
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		err := op.persist(ctx)
		cancel()
		if err == nil {
			continue
		}

		c.drift.Add(1)
		c.log.Warn("persist failed, rolling back session state",
			zap.String("op", op.name),
			zap.Error(err))

		if op.compensate != nil {
			c.mu.Lock()
			op.compensate()
			c.mu.Unlock()
		}

		c.errMu.Lock()
		if c.firstErr == nil {
			c.firstErr = fmt.Errorf("%s: %w", op.name, err)
		}
		c.errMu.Unlock()
	}
}

// Flush waits for every queued write to land and returns the first
// persistence failure since the previous Flush, nil when all landed.
// After a clean Flush the store and the mirror agree on everything this
// session wrote.
func (c *Controller) Flush(ctx context.Context) error {
	ch := make(chan error, 1)
	select {
	case c.queue <- persistOp{flush: ch}:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
