// Package animation provides the timing and interpolation primitives that
// drive anima values.
//
// # Core Components
//
//   - [AnimationController]: Drives raw progress from 0.0 to 1.0 over a
//     duration. Progress is linear; easing is applied separately by
//     [CurvedAnimation] so the raw value stays observable.
//
//   - [Ticker]: The low-level frame callback primitive. Tickers are pumped
//     once per frame via [StepTickers] and can be muted, which freezes the
//     elapsed time they report until unmuted.
//
//   - [TickerProvider]: Supplies tickers to controllers. Hosts that own a
//     frame loop implement this; everyone else gets a
//     [FallbackTickerProvider] managed by the animated façade.
//
//   - [Tween] and [TweenSequence]: Map the 0-1 progress range to values of
//     any type, either over a single begin/end range or over weighted
//     segments.
//
//   - [CurvedAnimation] and [Curve]: Easing applied on read, with separate
//     forward and reverse curves.
//
// # Basic Usage
//
//	controller := animation.NewAnimationController(300*time.Millisecond, nil)
//	controller.AddListener(func() {
//	    render(controller.Value)
//	})
//	controller.Forward()
//
//	// Once per frame:
//	animation.StepTickers()
//
// Always call Dispose on a controller when done so its ticker is released.
package animation

import (
	"sync"
	"time"

	"go.uber.org/atomic"

	animaerrors "github.com/go-drift/anima/pkg/errors"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// Most code should use AnimationController directly rather than Ticker.
//
// The callback receives the elapsed time since Start was called, excluding
// any time spent muted. Tickers are driven by the host's frame loop via
// [StepTickers]; a muted ticker stays registered but is skipped by the pump.
type Ticker struct {
	callback func(elapsed time.Duration)
	active   atomic.Bool
	muted    atomic.Bool

	mu      sync.Mutex
	start   time.Time
	mutedAt time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker. The elapsed time reported to the callback
// is measured from this call. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if !t.active.CompareAndSwap(false, true) {
		return
	}
	t.mu.Lock()
	t.start = Now()
	t.mu.Unlock()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker. Stopping also clears the muted flag so a
// later Start begins delivering ticks immediately.
func (t *Ticker) Stop() {
	if !t.active.CompareAndSwap(true, false) {
		return
	}
	t.muted.Store(false)
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.active.Load()
}

// SetMuted mutes or unmutes the ticker. While muted the ticker remains
// active but receives no ticks, and its elapsed time is frozen: unmuting
// shifts the start time forward by the muted span so progress resumes
// exactly where it stopped.
func (t *Ticker) SetMuted(muted bool) {
	if !t.muted.CompareAndSwap(!muted, muted) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if muted {
		t.mutedAt = Now()
	} else if !t.mutedAt.IsZero() {
		t.start = t.start.Add(Now().Sub(t.mutedAt))
		t.mutedAt = time.Time{}
	}
}

// IsMuted returns whether the ticker is currently muted.
func (t *Ticker) IsMuted() bool {
	return t.muted.Load()
}

// Elapsed returns the time since the ticker started, excluding muted spans.
func (t *Ticker) Elapsed() time.Duration {
	if !t.active.Load() {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.muted.Load() {
		return t.mutedAt.Sub(t.start)
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active, unmuted tickers.
// This should be called once per frame by the host's frame loop.
//
// A panic in a ticker callback is recovered and reported through the
// errors package so one misbehaving listener cannot take down the frame
// loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy to avoid holding the lock during callbacks.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if !ticker.active.Load() || ticker.muted.Load() || ticker.callback == nil {
			continue
		}
		stepTicker(ticker)
	}
}

func stepTicker(t *Ticker) {
	defer animaerrors.Recover("animation.StepTickers")
	t.callback(t.Elapsed())
}

// HasActiveTickers returns true if any tickers are active, muted or not.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
