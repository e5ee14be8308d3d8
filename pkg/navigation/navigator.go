// Package navigation provides a minimal route stack for hosts that do not
// bring their own navigation.
//
// A [Navigator] manages a stack of routes with push/pop semantics. The
// part the animation façade cares about is [Route.IsCurrent]: a route is
// current while it is the topmost entry of its navigator, which is exactly
// the query a navigation-aware animation needs to decide whether its
// owning screen is still presented.
//
//	nav := navigation.NewNavigator()
//	home := nav.Push(navigation.RouteSettings{Name: "/"})
//
//	spinner := animated.New(animated.RangeFloat64(0, 1), animated.Options{
//	    Duration:   time.Second,
//	    Navigation: home,
//	    Policy:     animated.PauseOnLeave,
//	})
package navigation

import "sync"

// RouteSettings contains configuration for a route.
type RouteSettings struct {
	// Name is the route path (e.g., "/home", "/details").
	Name string

	// Arguments contains arbitrary data passed during navigation.
	Arguments any
}

// Route represents one screen in a navigator's stack.
type Route struct {
	settings RouteSettings
	nav      *Navigator

	// OnPush is called when the route is pushed onto the navigator.
	OnPush func()

	// OnPop is called with the pop result when the route is popped.
	OnPop func(result any)
}

// NewRoute creates a detached route. Attach it with [Navigator.Push].
func NewRoute(settings RouteSettings) *Route {
	return &Route{settings: settings}
}

// Settings returns the route configuration.
func (r *Route) Settings() RouteSettings {
	return r.settings
}

// IsCurrent reports whether the route is the topmost entry of its
// navigator. A route that was never pushed, or was popped, is not current.
func (r *Route) IsCurrent() bool {
	return r.nav != nil && r.nav.Top() == r
}

// Navigator manages a stack of routes with push/pop semantics.
// All methods are safe for concurrent use.
type Navigator struct {
	mu    sync.Mutex
	stack []*Route
}

// NewNavigator creates a navigator with an empty stack.
func NewNavigator() *Navigator {
	return &Navigator{}
}

// Push creates a route from settings and pushes it. Returns the new route.
func (n *Navigator) Push(settings RouteSettings) *Route {
	r := NewRoute(settings)
	n.PushRoute(r)
	return r
}

// PushRoute pushes an existing route onto the stack.
func (n *Navigator) PushRoute(r *Route) {
	n.mu.Lock()
	r.nav = n
	n.stack = append(n.stack, r)
	n.mu.Unlock()
	if r.OnPush != nil {
		r.OnPush()
	}
}

// Pop removes the topmost route, passing result to its OnPop hook.
// Returns false when the stack would become empty below its root.
func (n *Navigator) Pop(result any) bool {
	n.mu.Lock()
	if len(n.stack) <= 1 {
		n.mu.Unlock()
		return false
	}
	r := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	n.mu.Unlock()
	if r.OnPop != nil {
		r.OnPop(result)
	}
	return true
}

// CanPop reports whether a Pop would remove a route.
func (n *Navigator) CanPop() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack) > 1
}

// Top returns the topmost route, or nil for an empty stack.
func (n *Navigator) Top() *Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of routes on the stack.
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}
