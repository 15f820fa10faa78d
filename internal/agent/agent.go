// Package agent drives the reveal tracker at a fixed cadence inside the host
// process and watches for the unload key.
package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/d2reveal/internal/game/session"
	"github.com/cory-johannsen/d2reveal/internal/reveal"
)

// ErrAttached is returned by Attach when the loop is already running.
var ErrAttached = errors.New("agent already attached")

// ErrStopped is returned by Attach after Stop.
var ErrStopped = errors.New("agent stopped")

// Options configures an Agent.
type Options struct {
	// Interval is the delay between ticks.
	Interval time.Duration
	// UnloadKey is the virtual key whose release stops the agent. 0 disables it.
	UnloadKey int
	// Keys is polled for UnloadKey. Nil disables the unload key.
	Keys KeyState
	// NewTracker builds the per-attach tracker and its session set.
	NewTracker func() *reveal.Tracker
	// OnUnload runs on the loop goroutine after the unload key stopped the loop.
	OnUnload func()
}

// Agent runs Tracker.Tick once per interval until detached or unloaded.
//
// Agent satisfies server.Service.
type Agent struct {
	opts    Options
	logger  *zap.Logger
	exiting atomic.Bool
	ticks   atomic.Uint64

	mu      sync.Mutex
	stopped bool
	tracker *reveal.Tracker
	watcher *KeyWatcher
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a detached Agent.
//
// Precondition: logger must be non-nil.
// Postcondition: Returns an Agent or an error if opts is unusable.
func New(opts Options, logger *zap.Logger) (*Agent, error) {
	if opts.Interval <= 0 {
		return nil, fmt.Errorf("agent interval must be > 0, got %s", opts.Interval)
	}
	if opts.NewTracker == nil {
		return nil, errors.New("agent requires a tracker factory")
	}
	return &Agent{opts: opts, logger: logger}, nil
}

// Attach creates fresh session state and starts the polling loop.
//
// Postcondition: The loop runs until ctx is cancelled, Detach is called, or
// the unload key is released.
func (a *Agent) Attach(ctx context.Context) error {
	_, err := a.attach(ctx)
	return err
}

func (a *Agent) attach(ctx context.Context) (<-chan struct{}, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return nil, ErrStopped
	}
	if a.done != nil {
		return nil, ErrAttached
	}

	a.tracker = a.opts.NewTracker()
	if a.opts.Keys != nil && a.opts.UnloadKey != 0 {
		a.watcher = NewKeyWatcher(a.opts.Keys)
	} else {
		a.watcher = nil
	}
	a.exiting.Store(false)
	a.ticks.Store(0)

	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.done = make(chan struct{})

	a.logger.Info("agent attached",
		zap.Duration("interval", a.opts.Interval),
		zap.Int("unload_key", a.opts.UnloadKey),
		zap.Stringer("session", a.tracker.Session().ID()),
	)
	go a.run(ctx, a.tracker, a.watcher, a.done)
	return a.done, nil
}

// Detach stops the loop, waits for it to finish and discards the session state.
// Detach on a detached Agent is a no-op.
func (a *Agent) Detach() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done == nil {
		return
	}
	a.cancel()
	<-a.done
	a.logger.Info("agent detached", zap.Uint64("ticks", a.ticks.Load()))
	a.tracker = nil
	a.watcher = nil
	a.cancel = nil
	a.done = nil
}

// Done returns a channel closed when the current loop has returned, or nil
// when detached.
func (a *Agent) Done() <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.done
}

// Session returns the current session set, or nil when detached.
func (a *Agent) Session() *session.Revealed {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.tracker == nil {
		return nil
	}
	return a.tracker.Session()
}

// Exiting reports whether the unload key stopped the loop.
func (a *Agent) Exiting() bool {
	return a.exiting.Load()
}

// Ticks returns the number of ticks run since the last Attach.
func (a *Agent) Ticks() uint64 {
	return a.ticks.Load()
}

// Start attaches with a background context and blocks until the loop returns.
// It returns at once if Stop has already been called.
func (a *Agent) Start() error {
	done, err := a.attach(context.Background())
	if errors.Is(err, ErrStopped) {
		return nil
	}
	if err != nil {
		return err
	}
	<-done
	return nil
}

// Stop detaches the agent and prevents any later attach.
//
// Postcondition: No loop is running and none will be started.
func (a *Agent) Stop() {
	a.mu.Lock()
	a.stopped = true
	a.mu.Unlock()
	a.Detach()
}

func (a *Agent) run(ctx context.Context, tr *reveal.Tracker, w *KeyWatcher, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(a.opts.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if a.step(tr, w) {
				a.logger.Info("unload key released, exiting",
					zap.Int("unload_key", a.opts.UnloadKey),
				)
				if a.opts.OnUnload != nil {
					a.opts.OnUnload()
				}
				return
			}
		}
	}
}

// step runs one tick and reports whether the loop should exit.
func (a *Agent) step(tr *reveal.Tracker, w *KeyWatcher) bool {
	a.ticks.Add(1)
	if !a.exiting.Load() {
		if out, st := tr.Tick(); out == reveal.OutcomeRevealed {
			a.logger.Debug("tick", zap.Stringer("outcome", out), zap.Int("revealed", st.Revealed))
		}
	}
	if w != nil && w.Released(a.opts.UnloadKey) {
		a.exiting.Store(true)
	}
	return a.exiting.Load()
}
