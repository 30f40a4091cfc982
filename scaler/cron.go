package scaler

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// Invoker runs one invocation.
type Invoker interface {
	Run(ctx context.Context) (Outcome, error)
}

// Cron runs an Invoker once at start and then on every tick, one invocation at a time.
// A failed invocation is logged; the next tick tries again.
type Cron struct {
	tickCh <-chan time.Time
	inv    Invoker
	outCh  chan Outcome
}

// NewCron creates a Cron driven by a ticker of the given interval.
func NewCron(inv Invoker, interval time.Duration) (*Cron, func()) {
	ticker := time.NewTicker(interval)
	return newCron(inv, ticker.C), ticker.Stop
}

func newCron(inv Invoker, tickCh <-chan time.Time) *Cron {
	return &Cron{tickCh: tickCh, inv: inv}
}

// Loop blocks until ctx is done or the tick channel is closed.
func (c *Cron) Loop(ctx context.Context) {
	c.invoke(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-c.tickCh:
			if !ok {
				return
			}
			c.invoke(ctx)
		}
	}
}

func (c *Cron) invoke(ctx context.Context) {
	out, err := c.inv.Run(ctx)
	if err != nil {
		log.WithFields(log.Fields{"invocation": out.ID, "err": err}).Error("invocation failed")
	}
	if c.outCh != nil {
		c.outCh <- out
	}
}
