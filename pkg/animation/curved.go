package animation

// CurvedAnimation applies easing to a controller's raw progress on read.
//
// The controller keeps linear progress so it stays observable pre-curve;
// CurvedAnimation composes it with a forward curve and, optionally, a
// separate reverse curve. During reverse playback the reverse curve is
// applied mirrored, so a curve that eases out on the way in also eases
// out on the way back.
type CurvedAnimation struct {
	// Parent supplies the raw progress and playback direction.
	Parent *AnimationController
	// Curve eases forward playback. Nil means linear.
	Curve Curve
	// ReverseCurve eases reverse playback. Nil falls back to Curve.
	ReverseCurve Curve
}

// NewCurvedAnimation composes a controller with forward and reverse curves.
func NewCurvedAnimation(parent *AnimationController, curve, reverseCurve Curve) *CurvedAnimation {
	return &CurvedAnimation{Parent: parent, Curve: curve, ReverseCurve: reverseCurve}
}

// Value returns the eased progress at the parent's current raw value.
func (a *CurvedAnimation) Value() float64 {
	t := a.Parent.Value
	if a.Parent.Status() == AnimationReverse && a.ReverseCurve != nil {
		return FlippedCurve(a.ReverseCurve)(t)
	}
	if a.Curve != nil {
		return a.Curve(t)
	}
	return t
}

// Status returns the parent controller's status.
func (a *CurvedAnimation) Status() AnimationStatus {
	return a.Parent.Status()
}
