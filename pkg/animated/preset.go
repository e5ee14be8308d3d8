package animated

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/anima/pkg/animation"
	animaerrors "github.com/go-drift/anima/pkg/errors"
)

// Preset is a declarative animation definition, typically loaded from a
// YAML asset so designers can tune durations, curves, and segments without
// touching code.
//
//	duration: 300ms
//	curve: ease-out
//	policy: pause-on-leave
//	segments:
//	  - { from: 0, to: 1, weight: 1 }
//	  - { from: 1, to: 0.5, weight: 2 }
//
// Float presets use from/to or segments; color presets use color_from/
// color_to or color_segments with hex ("#ff8800") or SVG 1.1 color names
// ("tomato").
type Preset struct {
	Duration     string `yaml:"duration"`
	Curve        string `yaml:"curve,omitempty"`
	ReverseCurve string `yaml:"reverse_curve,omitempty"`
	Policy       string `yaml:"policy,omitempty"`

	From     *float64        `yaml:"from,omitempty"`
	To       *float64        `yaml:"to,omitempty"`
	Segments []PresetSegment `yaml:"segments,omitempty"`

	ColorFrom     string               `yaml:"color_from,omitempty"`
	ColorTo       string               `yaml:"color_to,omitempty"`
	ColorSegments []PresetColorSegment `yaml:"color_segments,omitempty"`
}

// PresetSegment is one weighted leg of a float preset. Weight defaults to 1.
type PresetSegment struct {
	From   float64 `yaml:"from"`
	To     float64 `yaml:"to"`
	Weight float64 `yaml:"weight,omitempty"`
}

// PresetColorSegment is one weighted leg of a color preset. Weight defaults to 1.
type PresetColorSegment struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight,omitempty"`
}

// ParsePreset decodes a YAML preset.
func ParsePreset(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, parseErr("animated.ParsePreset", fmt.Errorf("failed to parse preset: %w", err))
	}
	return &p, nil
}

// Options resolves the preset's duration, curves, and policy into façade
// options. Navigation and Vsync are left for the caller to fill in.
func (p *Preset) Options() (Options, error) {
	var opts Options

	if p.Duration != "" {
		d, err := time.ParseDuration(p.Duration)
		if err != nil {
			return Options{}, parseErr("animated.Preset.Options", fmt.Errorf("invalid duration %q: %w", p.Duration, err))
		}
		opts.Duration = d
	}

	if p.Curve != "" {
		curve, ok := CurveByName(p.Curve)
		if !ok {
			return Options{}, parseErr("animated.Preset.Options", fmt.Errorf("unknown curve %q", p.Curve))
		}
		opts.Curve = curve
	}

	if p.ReverseCurve != "" {
		curve, ok := CurveByName(p.ReverseCurve)
		if !ok {
			return Options{}, parseErr("animated.Preset.Options", fmt.Errorf("unknown reverse curve %q", p.ReverseCurve))
		}
		opts.ReverseCurve = curve
	}

	if p.Policy != "" {
		policy, ok := PolicyByName(p.Policy)
		if !ok {
			return Options{}, parseErr("animated.Preset.Options", fmt.Errorf("unknown policy %q", p.Policy))
		}
		opts.Policy = policy
	}

	return opts, nil
}

// Definition builds the float interpolation described by the preset:
// a single from/to range, or weighted segments.
func (p *Preset) Definition() (Definition[float64], error) {
	const op = "animated.Preset.Definition"

	switch {
	case len(p.Segments) > 0:
		if p.From != nil || p.To != nil {
			return Definition[float64]{}, parseErr(op, fmt.Errorf("preset defines both from/to and segments"))
		}
		items := make([]animation.SequenceItem[float64], len(p.Segments))
		for i, seg := range p.Segments {
			weight, err := segmentWeight(op, i, seg.Weight)
			if err != nil {
				return Definition[float64]{}, err
			}
			items[i] = animation.SequenceItem[float64]{
				Tween:  animation.TweenFloat64(seg.From, seg.To),
				Weight: weight,
			}
		}
		return Sequence(items...), nil

	case p.From != nil && p.To != nil:
		return RangeFloat64(*p.From, *p.To), nil

	default:
		return Definition[float64]{}, parseErr(op, fmt.Errorf("preset defines neither from/to nor segments"))
	}
}

// ColorDefinition builds the color interpolation described by the preset.
func (p *Preset) ColorDefinition() (Definition[colorful.Color], error) {
	const op = "animated.Preset.ColorDefinition"

	switch {
	case len(p.ColorSegments) > 0:
		if p.ColorFrom != "" || p.ColorTo != "" {
			return Definition[colorful.Color]{}, parseErr(op, fmt.Errorf("preset defines both color_from/color_to and color_segments"))
		}
		items := make([]animation.SequenceItem[colorful.Color], len(p.ColorSegments))
		for i, seg := range p.ColorSegments {
			weight, err := segmentWeight(op, i, seg.Weight)
			if err != nil {
				return Definition[colorful.Color]{}, err
			}
			from, err := parseColor(op, seg.From)
			if err != nil {
				return Definition[colorful.Color]{}, err
			}
			to, err := parseColor(op, seg.To)
			if err != nil {
				return Definition[colorful.Color]{}, err
			}
			items[i] = animation.SequenceItem[colorful.Color]{
				Tween:  animation.TweenColor(from, to),
				Weight: weight,
			}
		}
		return Sequence(items...), nil

	case p.ColorFrom != "" && p.ColorTo != "":
		from, err := parseColor(op, p.ColorFrom)
		if err != nil {
			return Definition[colorful.Color]{}, err
		}
		to, err := parseColor(op, p.ColorTo)
		if err != nil {
			return Definition[colorful.Color]{}, err
		}
		return RangeColor(from, to), nil

	default:
		return Definition[colorful.Color]{}, parseErr(op, fmt.Errorf("preset defines neither color_from/color_to nor color_segments"))
	}
}

// CurveByName resolves a curve by its preset name.
func CurveByName(name string) (animation.Curve, bool) {
	switch name {
	case "linear":
		return animation.LinearCurve, true
	case "ease":
		return animation.Ease, true
	case "ease-in":
		return animation.EaseIn, true
	case "ease-out":
		return animation.EaseOut, true
	case "ease-in-out":
		return animation.EaseInOut, true
	case "ios-navigation":
		return animation.IOSNavigationCurve, true
	default:
		return nil, false
	}
}

// PolicyByName resolves a lifecycle policy by its preset name.
func PolicyByName(name string) (LifecyclePolicy, bool) {
	switch name {
	case "reset-on-leave":
		return ResetOnLeave, true
	case "pause-on-leave":
		return PauseOnLeave, true
	case "ignore-navigation":
		return IgnoreNavigation, true
	case "jump-to-end-on-leave":
		return JumpToEndOnLeave, true
	default:
		return 0, false
	}
}

func segmentWeight(op string, index int, weight float64) (float64, error) {
	if weight < 0 {
		return 0, parseErr(op, fmt.Errorf("segment %d has negative weight %v", index, weight))
	}
	if weight == 0 {
		return 1, nil
	}
	return weight, nil
}

// parseColor accepts "#rrggbb" hex or an SVG 1.1 color name.
func parseColor(op, s string) (colorful.Color, error) {
	if s == "" {
		return colorful.Color{}, parseErr(op, fmt.Errorf("empty color"))
	}
	if s[0] == '#' {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, parseErr(op, fmt.Errorf("invalid hex color %q: %w", s, err))
		}
		return c, nil
	}
	named, ok := colornames.Map[s]
	if !ok {
		return colorful.Color{}, parseErr(op, fmt.Errorf("unknown color name %q", s))
	}
	c, _ := colorful.MakeColor(named)
	return c, nil
}

func parseErr(op string, err error) error {
	return &animaerrors.AnimaError{Op: op, Kind: animaerrors.KindParsing, Err: err}
}
