// Package pump runs a blocking message loop until a shutdown flag is set.
package pump

import (
	"context"
	"sync"
	"sync/atomic"
)

// Pump owns the shutdown flag. Close may be called from anywhere, Run polls
// the flag once per iteration on the loop thread. mu serialises wake with
// Detach.
type Pump struct {
	closing atomic.Bool

	mu   sync.Mutex
	wake func()
}

// New returns a pump. wake, if non-nil, must be safe to call from any
// goroutine and unblocks a pending wait (e.g. glfw.PostEmptyEvent).
func New(wake func()) *Pump {
	return &Pump{wake: wake}
}

// Close requests shutdown. A message already being processed finishes
// first; the loop exits before waiting again.
func (p *Pump) Close() {
	if p.closing.Swap(true) {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.wake != nil {
		p.wake()
	}
}

// Detach marks the pump closed and drops the wake hook. It returns only after
// any wake already in progress has finished, so the resource behind the hook
// can be torn down once Detach returns.
func (p *Pump) Detach() {
	p.closing.Store(true)
	p.mu.Lock()
	p.wake = nil
	p.mu.Unlock()
}

func (p *Pump) Closed() bool { return p.closing.Load() }

// Run calls wait until Close is observed. wait blocks for the next batch of
// messages and dispatches them. Cancelling ctx is the same as Close.
func (p *Pump) Run(ctx context.Context, wait func()) {
	stop := context.AfterFunc(ctx, p.Close)
	defer stop()

	for !p.closing.Load() {
		wait()
	}
}
