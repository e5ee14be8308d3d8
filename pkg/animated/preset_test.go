package animated_test

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/anima/pkg/animated"
	animaerrors "github.com/go-drift/anima/pkg/errors"
	animatest "github.com/go-drift/anima/pkg/testing"
)

func TestParsePresetRange(t *testing.T) {
	p, err := animated.ParsePreset([]byte(`
duration: 300ms
curve: ease-out
policy: pause-on-leave
from: 0
to: 100
`))
	if err != nil {
		t.Fatalf("ParsePreset: %v", err)
	}

	opts, err := p.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Duration != 300*time.Millisecond {
		t.Errorf("Duration = %v, want 300ms", opts.Duration)
	}
	if opts.Curve == nil {
		t.Error("Curve not resolved")
	}
	if opts.Policy != animated.PauseOnLeave {
		t.Errorf("Policy = %v, want pause-on-leave", opts.Policy)
	}

	def, err := p.Definition()
	if err != nil {
		t.Fatalf("Definition: %v", err)
	}

	tester := animatest.NewTesterWithT(t)
	v := animated.New(def, opts)
	defer v.Dispose()
	if got := v.Value(); got != 0 {
		t.Errorf("Value at 0 = %v, want 0", got)
	}
	v.Start()
	tester.Pump(300 * time.Millisecond)
	if got := v.Value(); got != 100 {
		t.Errorf("Value at 1 = %v, want 100", got)
	}
}

func TestParsePresetSegments(t *testing.T) {
	p, err := animated.ParsePreset([]byte(`
duration: 400ms
segments:
  - { from: 0, to: 10, weight: 1 }
  - { from: 10, to: 30, weight: 2 }
  - { from: 30, to: 40, weight: 1 }
`))
	if err != nil {
		t.Fatalf("ParsePreset: %v", err)
	}

	def, err := p.Definition()
	if err != nil {
		t.Fatalf("Definition: %v", err)
	}

	tester := animatest.NewTesterWithT(t)
	v := animated.New(def, animated.Options{Duration: 400 * time.Millisecond})
	defer v.Dispose()
	v.Start()
	tester.Pump(200 * time.Millisecond)
	if got := v.Value(); got != 20 {
		t.Errorf("Value at 0.5 = %v, want 20", got)
	}
}

func TestParsePresetDefaultSegmentWeight(t *testing.T) {
	p, err := animated.ParsePreset([]byte(`
segments:
  - { from: 0, to: 1 }
  - { from: 1, to: 0 }
`))
	if err != nil {
		t.Fatalf("ParsePreset: %v", err)
	}
	def, err := p.Definition()
	if err != nil {
		t.Fatalf("Definition: %v", err)
	}

	animatest.NewTesterWithT(t)
	v := animated.New(def, animated.Options{Duration: time.Second})
	defer v.Dispose()
	// Equal default weights put the first segment's end at progress 0.5.
	if got := v.Value(); got != 0 {
		t.Errorf("Value = %v, want 0", got)
	}
}

func TestParsePresetColors(t *testing.T) {
	p, err := animated.ParsePreset([]byte(`
duration: 200ms
color_from: black
color_to: "#ffffff"
`))
	if err != nil {
		t.Fatalf("ParsePreset: %v", err)
	}

	def, err := p.ColorDefinition()
	if err != nil {
		t.Fatalf("ColorDefinition: %v", err)
	}

	tester := animatest.NewTesterWithT(t)
	v := animated.New(def, animated.Options{Duration: 200 * time.Millisecond})
	defer v.Dispose()

	if got := v.Value(); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("begin color = %v, want black", got)
	}
	v.Start()
	tester.Pump(200 * time.Millisecond)
	if got := v.Value(); got.R != 1 || got.G != 1 || got.B != 1 {
		t.Errorf("end color = %v, want white", got)
	}
}

func TestParsePresetColorSegments(t *testing.T) {
	p, err := animated.ParsePreset([]byte(`
color_segments:
  - { from: black, to: red, weight: 1 }
  - { from: red, to: "#0000ff", weight: 1 }
`))
	if err != nil {
		t.Fatalf("ParsePreset: %v", err)
	}
	if _, err := p.ColorDefinition(); err != nil {
		t.Fatalf("ColorDefinition: %v", err)
	}
}

func TestPresetErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		call func(p *animated.Preset) error
	}{
		{
			name: "bad duration",
			yaml: "duration: fast\nfrom: 0\nto: 1",
			call: func(p *animated.Preset) error { _, err := p.Options(); return err },
		},
		{
			name: "unknown curve",
			yaml: "curve: bouncy\nfrom: 0\nto: 1",
			call: func(p *animated.Preset) error { _, err := p.Options(); return err },
		},
		{
			name: "unknown policy",
			yaml: "policy: explode\nfrom: 0\nto: 1",
			call: func(p *animated.Preset) error { _, err := p.Options(); return err },
		},
		{
			name: "no range",
			yaml: "duration: 1s",
			call: func(p *animated.Preset) error { _, err := p.Definition(); return err },
		},
		{
			name: "both range and segments",
			yaml: "from: 0\nto: 1\nsegments: [{ from: 0, to: 1 }]",
			call: func(p *animated.Preset) error { _, err := p.Definition(); return err },
		},
		{
			name: "negative weight",
			yaml: "segments: [{ from: 0, to: 1, weight: -1 }]",
			call: func(p *animated.Preset) error { _, err := p.Definition(); return err },
		},
		{
			name: "unknown color name",
			yaml: "color_from: blurple\ncolor_to: red",
			call: func(p *animated.Preset) error { _, err := p.ColorDefinition(); return err },
		},
		{
			name: "invalid hex color",
			yaml: "color_from: \"#zz0000\"\ncolor_to: red",
			call: func(p *animated.Preset) error { _, err := p.ColorDefinition(); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := animated.ParsePreset([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParsePreset: %v", err)
			}
			err = tt.call(p)
			if err == nil {
				t.Fatal("expected error")
			}
			var ae *animaerrors.AnimaError
			if !errors.As(err, &ae) {
				t.Fatalf("error %T is not an AnimaError", err)
			}
			if ae.Kind != animaerrors.KindParsing {
				t.Errorf("Kind = %v, want parsing", ae.Kind)
			}
		})
	}
}

func TestParsePresetMalformedYAML(t *testing.T) {
	_, err := animated.ParsePreset([]byte("duration: [unclosed"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestCurveByName(t *testing.T) {
	for _, name := range []string{"linear", "ease", "ease-in", "ease-out", "ease-in-out", "ios-navigation"} {
		if _, ok := animated.CurveByName(name); !ok {
			t.Errorf("CurveByName(%q) not found", name)
		}
	}
	if _, ok := animated.CurveByName("spring"); ok {
		t.Error("CurveByName should reject unknown names")
	}
}

func TestPolicyByName(t *testing.T) {
	tests := map[string]animated.LifecyclePolicy{
		"reset-on-leave":       animated.ResetOnLeave,
		"pause-on-leave":       animated.PauseOnLeave,
		"ignore-navigation":    animated.IgnoreNavigation,
		"jump-to-end-on-leave": animated.JumpToEndOnLeave,
	}
	for name, want := range tests {
		got, ok := animated.PolicyByName(name)
		if !ok || got != want {
			t.Errorf("PolicyByName(%q) = %v, %v; want %v, true", name, got, ok, want)
		}
	}
	if _, ok := animated.PolicyByName("detonate"); ok {
		t.Error("PolicyByName should reject unknown names")
	}
}
