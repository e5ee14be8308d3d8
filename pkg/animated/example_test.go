package animated_test

import (
	"fmt"
	"time"

	"github.com/go-drift/anima/pkg/animated"
	"github.com/go-drift/anima/pkg/animation"
	"github.com/go-drift/anima/pkg/navigation"
)

// This example shows the basic lifecycle of an animated value.
func ExampleNew() {
	fade := animated.New(animated.RangeFloat64(0, 1), animated.Options{
		Duration: 300 * time.Millisecond,
		Curve:    animation.EaseOut,
	})

	fade.AddListener(func() {
		// Repaint with fade.Value()
	})
	fade.Start()

	// In teardown:
	fade.Dispose()
}

// This example shows a multi-segment value that rises, holds, and falls.
func ExampleSequence() {
	pulse := animated.New(animated.Sequence(
		animation.SequenceItem[float64]{Tween: animation.TweenFloat64(0, 1), Weight: 1},
		animation.SequenceItem[float64]{Tween: animation.TweenFloat64(1, 1), Weight: 2},
		animation.SequenceItem[float64]{Tween: animation.TweenFloat64(1, 0), Weight: 1},
	), animated.Options{Duration: time.Second})

	fmt.Printf("At start: %.1f\n", pulse.Value())
	pulse.Dispose()

	// Output:
	// At start: 0.0
}

// This example shows a value that pauses whenever its screen is covered.
func ExampleOptions_navigation() {
	nav := navigation.NewNavigator()
	home := nav.Push(navigation.RouteSettings{Name: "/"})

	spinner := animated.New(animated.RangeFloat64(0, 1), animated.Options{
		Duration:   time.Second,
		Navigation: home,
		Policy:     animated.PauseOnLeave,
	})
	spinner.Repeat(animation.RepeatConfig{})

	// Pushing another route makes home non-current; the next tick pauses
	// the spinner until home returns and Start is called.
	nav.Push(navigation.RouteSettings{Name: "/details"})

	spinner.Dispose()
}

// This example shows loading a designer-tuned preset from YAML.
func ExampleParsePreset() {
	preset, err := animated.ParsePreset([]byte(`
duration: 400ms
curve: ease-in-out
segments:
  - { from: 0, to: 10, weight: 1 }
  - { from: 10, to: 30, weight: 2 }
  - { from: 30, to: 40, weight: 1 }
`))
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	opts, err := preset.Options()
	if err != nil {
		fmt.Println("options:", err)
		return
	}
	def, err := preset.Definition()
	if err != nil {
		fmt.Println("definition:", err)
		return
	}

	v := animated.New(def, opts)
	fmt.Printf("duration: %v, start: %.0f\n", opts.Duration, v.Value())
	v.Dispose()

	// Output:
	// duration: 400ms, start: 0
}
