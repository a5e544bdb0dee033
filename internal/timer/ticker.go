package timer

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/manav03panchal/fastpilot/internal/config"
)

// Ticker runs a callback on a fixed interval until stopped.
// Start and Stop are both safe to call more than once.
type Ticker struct {
	interval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	inTick  *atomic.Bool
	running bool
}

// NewTicker creates a ticker. A non-positive interval uses the configured
// refresh interval.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = config.Global.Timer.RefreshInterval
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{interval: interval}
}

// Interval returns the tick interval.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Running reports whether the ticker is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Start calls fn immediately and then once per interval until Stop is
// called or ctx is cancelled. Calling Start on a running ticker does nothing.
// fn may call Stop.
func (t *Ticker) Start(ctx context.Context, fn func(time.Time)) {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	inTick := new(atomic.Bool)
	t.cancel = cancel
	t.done = done
	t.inTick = inTick
	t.running = true
	t.mu.Unlock()

	tick := func(now time.Time) {
		inTick.Store(true)
		defer inTick.Store(false)
		fn(now)
	}

	tick(time.Now())

	go func() {
		defer close(done)
		tk := time.NewTicker(t.interval)
		defer tk.Stop()

		for {
			select {
			case <-ctx.Done():
				t.mu.Lock()
				if t.done == done {
					t.running = false
				}
				t.mu.Unlock()
				return
			case now := <-tk.C:
				if ctx.Err() != nil {
					continue
				}
				tick(now)
			}
		}
	}()
}

// Stop halts the ticker and waits for the loop to exit. Called from inside
// the callback it only cancels; the loop exits once the callback returns.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	cancel, done, inTick := t.cancel, t.done, t.inTick
	t.running = false
	t.cancel = nil
	t.mu.Unlock()

	cancel()
	if inTick.Load() {
		return
	}
	<-done
}

// Done returns a channel closed when the current run loop exits.
func (t *Ticker) Done() <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return t.done
}
