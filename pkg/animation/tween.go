package animation

import "github.com/lucasb-eyer/go-colorful"

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 range of an [AnimationController] to any value range or
// type. Use the helper constructors ([TweenFloat64], [TweenColor]) for common
// types, or create custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin
	// value, end value, and progress t in [0, 1]. Returns the interpolated
	// value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the controller's current
// raw value. To interpolate over eased progress, evaluate at a
// [CurvedAnimation]'s Value instead.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor interpolates between two colors in RGB space.
func LerpColor(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendRgb(b, t)
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenColor creates a tween for color values.
func TweenColor(begin, end colorful.Color) *Tween[colorful.Color] {
	return &Tween[colorful.Color]{
		Begin: begin,
		End:   end,
		Lerp:  LerpColor,
	}
}
