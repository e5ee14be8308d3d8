package animated

import "fmt"

// LifecyclePolicy selects what a [Value] does when its navigation context
// reports that the owning screen is no longer the current one. Chosen at
// construction, immutable per instance.
type LifecyclePolicy int

const (
	// ResetOnLeave stops ticking and returns progress to 0 when the
	// owning screen is navigated away from. The default.
	ResetOnLeave LifecyclePolicy = iota
	// PauseOnLeave mutes the fallback ticker, freezing progress in
	// place until Start is called after the screen returns.
	PauseOnLeave
	// IgnoreNavigation keeps playing regardless of navigation state.
	IgnoreNavigation
	// JumpToEndOnLeave stops ticking and forces progress to 1.
	JumpToEndOnLeave
)

// String returns a human-readable representation of the policy.
func (p LifecyclePolicy) String() string {
	switch p {
	case ResetOnLeave:
		return "reset-on-leave"
	case PauseOnLeave:
		return "pause-on-leave"
	case IgnoreNavigation:
		return "ignore-navigation"
	case JumpToEndOnLeave:
		return "jump-to-end-on-leave"
	default:
		return fmt.Sprintf("LifecyclePolicy(%d)", int(p))
	}
}

// observeNavigation runs on every value change while the lifecycle
// observer is attached. It is registered only when construction supplied
// a navigation context and no external ticker, so v.nav and v.fallback
// are always non-nil here.
func (v *Value[T]) observeNavigation() {
	if v.nav.IsCurrent() {
		return
	}

	switch v.policy {
	case IgnoreNavigation:
		// Playback continues regardless of navigation state.

	case PauseOnLeave:
		v.fallback.Mute()

	case ResetOnLeave:
		v.withListenersDetached(func() {
			v.controller.Reset()
		})

	case JumpToEndOnLeave:
		v.withListenersDetached(func() {
			v.controller.SetProgress(v.controller.UpperBound)
		})
	}
}

// withListenersDetached stops the ticker and brackets mutate with a bulk
// detach/reattach of the tracked value listeners. The bracket keeps the
// listener set from receiving redundant notifications mid-mutation and
// keeps the mutation from feeding back into the lifecycle observer while
// it is running.
func (v *Value[T]) withListenersDetached(mutate func()) {
	v.controller.Stop()
	v.listeners.detachAll()
	mutate()
	v.listeners.reattachAll(v.controller.AddListener)
}
