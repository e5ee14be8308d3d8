package animated

import "reflect"

// callbackSet tracks callbacks registered through the façade in insertion
// order, keyed by function identity so they can be removed by reference
// and bulk-detached from the controller around lifecycle resets.
//
// Identity is the function's code pointer. Two distinct closures created
// from the same function literal share a code pointer, so removal takes
// the most recently added match.
type callbackSet[F any] struct {
	entries []callbackEntry[F]
}

type callbackEntry[F any] struct {
	key    uintptr
	fn     F
	detach func()
}

func callbackKey(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// add tracks fn along with the unsubscribe function returned by the
// controller registration.
func (s *callbackSet[F]) add(fn F, detach func()) {
	s.entries = append(s.entries, callbackEntry[F]{
		key:    callbackKey(fn),
		fn:     fn,
		detach: detach,
	})
}

// remove detaches and forgets the most recently added entry matching fn.
// Unknown callbacks are a no-op.
func (s *callbackSet[F]) remove(fn F) {
	key := callbackKey(fn)
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].key != key {
			continue
		}
		if s.entries[i].detach != nil {
			s.entries[i].detach()
		}
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		return
	}
}

// detachAll unsubscribes every entry from the controller but keeps the
// set, so reattachAll can restore the same callbacks in the same order.
func (s *callbackSet[F]) detachAll() {
	for i := range s.entries {
		if s.entries[i].detach != nil {
			s.entries[i].detach()
			s.entries[i].detach = nil
		}
	}
}

// reattachAll re-registers every entry through attach, preserving order.
func (s *callbackSet[F]) reattachAll(attach func(F) func()) {
	for i := range s.entries {
		if s.entries[i].detach == nil {
			s.entries[i].detach = attach(s.entries[i].fn)
		}
	}
}
