package animated

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/anima/pkg/animation"
)

// Definition describes how progress maps to a value of type T: either a
// single begin/end range or an ordered sequence of weighted segments.
// Exactly one of the two is populated, set at construction and never
// mutated. Build one with [Range], [Sequence], [Custom], or
// [CustomSequence].
type Definition[T any] struct {
	tween    *animation.Tween[T]
	sequence *animation.TweenSequence[T]
}

// Range defines a single interpolation range with the given lerp function.
func Range[T any](begin, end T, lerp func(a, b T, t float64) T) Definition[T] {
	return Definition[T]{tween: &animation.Tween[T]{Begin: begin, End: end, Lerp: lerp}}
}

// RangeFloat64 defines a single float64 range.
func RangeFloat64(begin, end float64) Definition[float64] {
	return Definition[float64]{tween: animation.TweenFloat64(begin, end)}
}

// RangeColor defines a single color range interpolated in RGB space.
func RangeColor(begin, end colorful.Color) Definition[colorful.Color] {
	return Definition[colorful.Color]{tween: animation.TweenColor(begin, end)}
}

// Sequence defines an ordered multi-segment interpolation. Each item's
// weight sets the fraction of overall progress allotted to it relative to
// its siblings. Panics on empty input or non-positive weights, like
// [animation.NewTweenSequence].
func Sequence[T any](items ...animation.SequenceItem[T]) Definition[T] {
	return Definition[T]{sequence: animation.NewTweenSequence(items...)}
}

// Custom wraps an externally supplied tween.
func Custom[T any](tw *animation.Tween[T]) Definition[T] {
	return Definition[T]{tween: tw}
}

// CustomSequence wraps an externally supplied weighted sequence.
func CustomSequence[T any](seq *animation.TweenSequence[T]) Definition[T] {
	return Definition[T]{sequence: seq}
}

func (d Definition[T]) evaluate(t float64) T {
	if d.sequence != nil {
		return d.sequence.Evaluate(t)
	}
	return d.tween.Evaluate(t)
}
