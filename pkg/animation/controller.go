package animation

import (
	"fmt"
	"math"
	"time"
)

// AnimationStatus represents the current state of an animation.
//
// The status follows this state machine:
//
//	                Forward()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
//
// While animating, status is AnimationForward or AnimationReverse.
// When stopped, status is AnimationDismissed (at 0) or AnimationCompleted (at 1).
type AnimationStatus int

const (
	// AnimationDismissed means the animation is stopped at the lower bound (0.0).
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the animation is playing toward the upper bound (1.0).
	AnimationForward
	// AnimationReverse means the animation is playing toward the lower bound (0.0).
	AnimationReverse
	// AnimationCompleted means the animation is stopped at the upper bound (1.0).
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// RepeatConfig configures looping playback started by
// [AnimationController.Repeat].
type RepeatConfig struct {
	// Min is the lower loop bound. Defaults to the controller's LowerBound.
	Min float64
	// Max is the upper loop bound. Defaults to the controller's UpperBound.
	Max float64
	// Reverse alternates direction each cycle instead of jumping back to Min.
	Reverse bool
	// Period is the length of one cycle. Defaults to the controller's Duration.
	Period time.Duration
}

// AnimationController drives raw animation progress over time.
//
// The controller advances Value from LowerBound (default 0.0) to UpperBound
// (default 1.0) over Duration. Value is the raw, pre-curve progress; apply
// easing with [CurvedAnimation] and map to other types with [Tween] or
// [TweenSequence].
//
// The controller obtains its single ticker lazily from the TickerProvider
// given at construction, or creates one directly when the provider is nil.
//
// Always call Dispose when done to stop the ticker and release listeners.
type AnimationController struct {
	// Value is the current raw progress, ranging from LowerBound to UpperBound.
	Value float64

	// Duration is the length of a full forward or reverse run.
	Duration time.Duration

	// LowerBound is the minimum value (default 0.0).
	LowerBound float64

	// UpperBound is the maximum value (default 1.0).
	UpperBound float64

	vsync      TickerProvider
	ticker     *Ticker
	status     AnimationStatus
	target     float64
	startValue float64
	repeat     *repeatState

	listeners       []listenerEntry
	statusListeners []statusListenerEntry
	nextListenerID  int
}

type listenerEntry struct {
	id int
	fn func()
}

type statusListenerEntry struct {
	id int
	fn func(AnimationStatus)
}

type repeatState struct {
	min, max float64
	reverse  bool
	period   time.Duration
}

// NewAnimationController creates an animation controller with the given
// duration. vsync supplies the controller's ticker; pass nil to have the
// controller create its own.
func NewAnimationController(duration time.Duration, vsync TickerProvider) *AnimationController {
	return &AnimationController{
		Value:      0,
		Duration:   duration,
		LowerBound: 0,
		UpperBound: 1,
		vsync:      vsync,
		status:     AnimationDismissed,
	}
}

// Forward animates from the current value to the upper bound.
func (c *AnimationController) Forward() {
	c.animateTo(c.UpperBound, AnimationForward)
}

// ForwardFrom jumps to the given value, then animates to the upper bound.
func (c *AnimationController) ForwardFrom(from float64) {
	c.Value = c.clamp(from)
	c.notifyListeners()
	c.Forward()
}

// Reverse animates from the current value to the lower bound.
func (c *AnimationController) Reverse() {
	c.animateTo(c.LowerBound, AnimationReverse)
}

// ReverseFrom jumps to the given value, then animates to the lower bound.
func (c *AnimationController) ReverseFrom(from float64) {
	c.Value = c.clamp(from)
	c.notifyListeners()
	c.Reverse()
}

// AnimateTo animates to a specific target value.
func (c *AnimationController) AnimateTo(target float64) {
	if target > c.Value {
		c.animateTo(target, AnimationForward)
	} else {
		c.animateTo(target, AnimationReverse)
	}
}

// Repeat loops playback according to cfg until Stop, Reset, or Dispose.
// The zero config loops forward over the full bounds with Duration as the
// period.
func (c *AnimationController) Repeat(cfg RepeatConfig) {
	if cfg.Max <= cfg.Min {
		cfg.Min = c.LowerBound
		cfg.Max = c.UpperBound
	}
	if cfg.Period <= 0 {
		cfg.Period = c.Duration
	}
	c.repeat = &repeatState{
		min:     cfg.Min,
		max:     cfg.Max,
		reverse: cfg.Reverse,
		period:  cfg.Period,
	}
	c.setStatus(AnimationForward)
	c.restartTicker()
}

func (c *AnimationController) animateTo(target float64, direction AnimationStatus) {
	c.repeat = nil
	c.target = c.clamp(target)
	c.startValue = c.Value
	c.setStatus(direction)
	c.restartTicker()
}

func (c *AnimationController) restartTicker() {
	t := c.ensureTicker()
	t.Stop()
	t.Start()
}

func (c *AnimationController) ensureTicker() *Ticker {
	if c.ticker == nil {
		if c.vsync != nil {
			c.ticker = c.vsync.CreateTicker(c.tick)
		} else {
			c.ticker = NewTicker(c.tick)
		}
	}
	return c.ticker
}

func (c *AnimationController) tick(elapsed time.Duration) {
	if c.repeat != nil {
		c.repeatTick(elapsed)
		return
	}

	if c.Duration <= 0 {
		c.Value = c.target
		c.notifyListeners()
		c.finish()
		return
	}

	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1.0 {
		progress = 1.0
	}

	c.Value = c.startValue + (c.target-c.startValue)*progress
	c.notifyListeners()

	if progress >= 1.0 {
		c.finish()
	}
}

func (c *AnimationController) repeatTick(elapsed time.Duration) {
	r := c.repeat
	if r.period <= 0 {
		return
	}

	cycles := float64(elapsed) / float64(r.period)
	whole, phase := math.Modf(cycles)

	direction := AnimationForward
	if r.reverse && int64(whole)%2 == 1 {
		phase = 1 - phase
		direction = AnimationReverse
	}
	c.setStatus(direction)
	c.Value = r.min + (r.max-r.min)*phase
	c.notifyListeners()
}

func (c *AnimationController) finish() {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	if c.Value <= c.LowerBound {
		c.setStatus(AnimationDismissed)
	} else if c.Value >= c.UpperBound {
		c.setStatus(AnimationCompleted)
	}
}

// Stop stops the animation at the current value.
func (c *AnimationController) Stop() {
	c.repeat = nil
	if c.ticker != nil {
		c.ticker.Stop()
	}
}

// Reset stops the animation and returns the value to the lower bound.
func (c *AnimationController) Reset() {
	c.Stop()
	c.Value = c.LowerBound
	c.setStatus(AnimationDismissed)
	c.notifyListeners()
}

// SetProgress stops the animation and jumps the value to v, clamped to
// the controller's bounds. Status becomes dismissed or completed when v
// lands on a bound.
func (c *AnimationController) SetProgress(v float64) {
	c.Stop()
	c.Value = c.clamp(v)
	if c.Value <= c.LowerBound {
		c.setStatus(AnimationDismissed)
	} else if c.Value >= c.UpperBound {
		c.setStatus(AnimationCompleted)
	}
	c.notifyListeners()
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *AnimationController) IsAnimating() bool {
	return c.status == AnimationForward || c.status == AnimationReverse
}

// IsCompleted returns true if the animation finished at the upper bound.
func (c *AnimationController) IsCompleted() bool {
	return c.status == AnimationCompleted
}

// IsDismissed returns true if the animation is at the lower bound.
func (c *AnimationController) IsDismissed() bool {
	return c.status == AnimationDismissed
}

// AddListener adds a callback that fires whenever the value changes.
// Listeners fire in registration order. Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, entry := range c.listeners {
			if entry.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners = append(c.statusListeners, statusListenerEntry{id: id, fn: fn})
	return func() {
		for i, entry := range c.statusListeners {
			if entry.id == id {
				c.statusListeners = append(c.statusListeners[:i], c.statusListeners[i+1:]...)
				return
			}
		}
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	// Snapshot so listeners can unsubscribe mid-notification.
	snapshot := make([]statusListenerEntry, len(c.statusListeners))
	copy(snapshot, c.statusListeners)
	for _, entry := range snapshot {
		entry.fn(status)
	}
}

func (c *AnimationController) notifyListeners() {
	snapshot := make([]listenerEntry, len(c.listeners))
	copy(snapshot, c.listeners)
	for _, entry := range snapshot {
		entry.fn()
	}
}

func (c *AnimationController) clamp(v float64) float64 {
	if v < c.LowerBound {
		return c.LowerBound
	}
	if v > c.UpperBound {
		return c.UpperBound
	}
	return v
}

// Dispose stops the animation and releases all listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.ticker = nil
	c.listeners = nil
	c.statusListeners = nil
}
