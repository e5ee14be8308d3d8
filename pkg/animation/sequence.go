package animation

import "fmt"

// SequenceItem is one leg of a [TweenSequence]. Weight determines the
// fraction of overall progress allotted to this leg relative to its
// siblings; weights do not need to sum to any particular total.
type SequenceItem[T any] struct {
	Tween  *Tween[T]
	Weight float64
}

// TweenSequence chains weighted tweens over a single 0-1 progress range.
//
// Overall progress is partitioned by normalized weights: items with weights
// [1, 2, 1] occupy [0, 0.25), [0.25, 0.75) and [0.75, 1] of progress. Each
// item's tween is evaluated with progress rescaled to its own 0-1 span.
// The sequence is immutable after construction.
type TweenSequence[T any] struct {
	items  []SequenceItem[T]
	starts []float64 // cumulative normalized start of each item
	total  float64
}

// NewTweenSequence creates a sequence from the given items. It panics if
// no items are given or any weight is not positive; both are programming
// errors, not runtime conditions.
func NewTweenSequence[T any](items ...SequenceItem[T]) *TweenSequence[T] {
	if len(items) == 0 {
		panic("animation: TweenSequence requires at least one item")
	}
	total := 0.0
	for i, item := range items {
		if item.Weight <= 0 {
			panic(fmt.Sprintf("animation: TweenSequence item %d has non-positive weight %v", i, item.Weight))
		}
		if item.Tween == nil {
			panic(fmt.Sprintf("animation: TweenSequence item %d has nil tween", i))
		}
		total += item.Weight
	}

	s := &TweenSequence[T]{
		items:  append([]SequenceItem[T](nil), items...),
		starts: make([]float64, len(items)),
		total:  total,
	}
	acc := 0.0
	for i, item := range items {
		s.starts[i] = acc / total
		acc += item.Weight
	}
	return s
}

// Evaluate returns the interpolated value at overall progress t in [0, 1].
// Values outside the range clamp to the first begin or last end value.
func (s *TweenSequence[T]) Evaluate(t float64) T {
	if t <= 0 {
		return s.items[0].Tween.Evaluate(0)
	}
	if t >= 1 {
		return s.items[len(s.items)-1].Tween.Evaluate(1)
	}

	i := len(s.items) - 1
	for ; i > 0; i-- {
		if t >= s.starts[i] {
			break
		}
	}
	span := s.items[i].Weight / s.total
	local := (t - s.starts[i]) / span
	return s.items[i].Tween.Evaluate(local)
}

// Transform returns the interpolated value using the controller's current
// raw value.
func (s *TweenSequence[T]) Transform(controller *AnimationController) T {
	return s.Evaluate(controller.Value)
}

// Begin returns the value at overall progress 0.
func (s *TweenSequence[T]) Begin() T {
	return s.items[0].Tween.Evaluate(0)
}

// End returns the value at overall progress 1.
func (s *TweenSequence[T]) End() T {
	return s.items[len(s.items)-1].Tween.Evaluate(1)
}

// Len returns the number of items in the sequence.
func (s *TweenSequence[T]) Len() int {
	return len(s.items)
}
