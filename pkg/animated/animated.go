// Package animated is a convenience façade over the animation engine.
//
// A [Value] bundles the pieces an animated property needs — a controller,
// an interpolation definition, an easing curve, and a ticker — behind one
// handle, so host code does not have to wire them by hand or mix in ticker
// boilerplate. When constructed with a navigation context it also watches
// whether the owning screen is still current and applies a
// [LifecyclePolicy] when it is not.
//
// # Basic Usage
//
//	fade := animated.New(animated.RangeFloat64(0, 1), animated.Options{
//	    Duration: 300 * time.Millisecond,
//	    Curve:    animation.EaseOut,
//	})
//	fade.AddListener(func() {
//	    render(fade.Value())
//	})
//	fade.Start()
//
//	// In teardown:
//	fade.Dispose()
//
// # Navigation awareness
//
// Pass a [NavigationContext] (for example a *navigation.Route) and a policy
// to control what happens when the owning screen is navigated away from:
//
//	spin := animated.New(animated.RangeFloat64(0, 1), animated.Options{
//	    Duration:   time.Second,
//	    Navigation: route,
//	    Policy:     animated.PauseOnLeave,
//	})
//
// The policy only engages when no external ticker provider was supplied;
// a host that brings its own ticking is assumed to govern pause and resume
// through its own widget lifecycle already.
package animated

import (
	"time"

	"github.com/go-drift/anima/pkg/animation"
)

// NavigationContext answers whether the screen owning an animation is
// still the one currently presented to the user. It is a narrow query
// capability; the façade never holds richer navigation state.
type NavigationContext interface {
	IsCurrent() bool
}

// Options configures a [Value] at construction. All fields are optional
// except Duration for time-driven playback.
type Options struct {
	// Duration is the length of a full forward or reverse run.
	Duration time.Duration

	// Curve eases forward playback. Nil means linear.
	Curve animation.Curve

	// ReverseCurve eases reverse playback. Nil means linear.
	ReverseCurve animation.Curve

	// Navigation enables the lifecycle policy when set. See Policy.
	Navigation NavigationContext

	// Policy selects what happens when Navigation reports the owning
	// screen is no longer current. Defaults to ResetOnLeave. Ignored
	// when Navigation is nil or Vsync is set.
	Policy LifecyclePolicy

	// Vsync supplies frame ticking from the host. When nil the Value
	// owns a FallbackTickerProvider instead.
	Vsync animation.TickerProvider
}

// Value animates a single property of type T.
//
// It owns an [animation.AnimationController] bound to either the caller's
// ticker provider or an internal fallback one, composes the controller
// with easing curves, and evaluates the interpolation definition on read.
// Value must be torn down with Dispose; the fallback ticker is not
// released by garbage collection.
type Value[T any] struct {
	def        Definition[T]
	controller *animation.AnimationController
	curved     *animation.CurvedAnimation
	fallback   *animation.FallbackTickerProvider

	nav    NavigationContext
	policy LifecyclePolicy

	listeners       callbackSet[func()]
	statusListeners callbackSet[func(animation.AnimationStatus)]
}

// New creates a Value from an interpolation definition and options.
//
// If opts.Navigation is set and opts.Vsync is not, the returned Value
// registers a lifecycle observer that checks navigation state on every
// value change.
func New[T any](def Definition[T], opts Options) *Value[T] {
	if def.tween == nil && def.sequence == nil {
		panic("animated: Definition must be built with Range, Sequence, Custom, or CustomSequence")
	}

	v := &Value[T]{
		def:    def,
		nav:    opts.Navigation,
		policy: opts.Policy,
	}

	vsync := opts.Vsync
	if vsync == nil {
		v.fallback = animation.NewFallbackTickerProvider()
		vsync = v.fallback
	}
	v.controller = animation.NewAnimationController(opts.Duration, vsync)
	v.curved = animation.NewCurvedAnimation(v.controller, opts.Curve, opts.ReverseCurve)

	if opts.Navigation != nil && opts.Vsync == nil {
		// The observer joins the tracked listener set so lifecycle
		// resets can detach it along with everything else.
		v.listeners.add(v.observeNavigation, v.controller.AddListener(v.observeNavigation))
	}

	return v
}

// Value returns the interpolated value at the current eased progress.
// Pure read, no side effect.
func (v *Value[T]) Value() T {
	return v.def.evaluate(v.curved.Value())
}

// Progress returns the controller's raw 0-1 progress, pre-curve.
func (v *Value[T]) Progress() float64 {
	return v.controller.Value
}

// Status returns the playback status of the output animation.
func (v *Value[T]) Status() animation.AnimationStatus {
	return v.curved.Status()
}

// Start begins forward playback.
//
// When the fallback ticker is in use and currently muted (paused by the
// lifecycle policy), Start only unmutes it: resuming from a pause is
// "unmute", starting fresh is "forward". With an external ticker the call
// always forwards to the controller.
func (v *Value[T]) Start() {
	if v.resumeIfMuted() {
		return
	}
	v.controller.Forward()
}

// StartFrom jumps to the given raw progress, then begins forward playback.
// Like Start, a muted fallback ticker is only unmuted; the from value is
// not applied in that case.
func (v *Value[T]) StartFrom(from float64) {
	if v.resumeIfMuted() {
		return
	}
	v.controller.ForwardFrom(from)
}

func (v *Value[T]) resumeIfMuted() bool {
	if v.fallback != nil && v.fallback.IsMuted() {
		v.fallback.Unmute()
		return true
	}
	return false
}

// Repeat loops playback according to cfg until stopped.
func (v *Value[T]) Repeat(cfg animation.RepeatConfig) {
	v.controller.Repeat(cfg)
}

// Stop halts playback at the current progress.
func (v *Value[T]) Stop() {
	v.controller.Stop()
}

// Reverse begins reverse playback from the current progress.
func (v *Value[T]) Reverse() {
	v.controller.Reverse()
}

// ReverseFrom jumps to the given raw progress, then begins reverse playback.
func (v *Value[T]) ReverseFrom(from float64) {
	v.controller.ReverseFrom(from)
}

// Reset stops playback and returns progress to 0.
func (v *Value[T]) Reset() {
	v.controller.Reset()
}

// AddListener registers a callback fired on every value change. Listeners
// fire in registration order and are identified by function identity for
// removal.
func (v *Value[T]) AddListener(fn func()) {
	v.listeners.add(fn, v.controller.AddListener(fn))
}

// RemoveListener unregisters a previously added value listener. Removing a
// listener that was never added, or removing twice, is a no-op.
func (v *Value[T]) RemoveListener(fn func()) {
	v.listeners.remove(fn)
}

// AddStatusListener registers a callback fired on playback phase
// transitions (forward, reverse, completed, dismissed).
func (v *Value[T]) AddStatusListener(fn func(animation.AnimationStatus)) {
	v.statusListeners.add(fn, v.controller.AddStatusListener(fn))
}

// RemoveStatusListener unregisters a previously added status listener.
// Unknown or repeated removals are no-ops.
func (v *Value[T]) RemoveStatusListener(fn func(animation.AnimationStatus)) {
	v.statusListeners.remove(fn)
}

// Dispose releases the fallback ticker (if owned) and the controller.
// Must be called exactly once; calling any other method afterward is
// unsupported.
func (v *Value[T]) Dispose() {
	v.listeners.detachAll()
	v.statusListeners.detachAll()
	if v.fallback != nil {
		v.fallback.Dispose()
	}
	v.controller.Dispose()
}
