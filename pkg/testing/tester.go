// Package testing provides a deterministic harness for driving animations
// in tests without real time or a frame loop.
//
// A [Tester] installs a [FakeClock] as the animation clock and pumps
// frames on demand:
//
//	tester := animatest.NewTesterWithT(t)
//	value.Start()
//	tester.Pump(150 * time.Millisecond) // half of a 300ms animation
package testing

import (
	"testing"
	"time"

	"github.com/go-drift/anima/pkg/animation"
)

// Tester drives animations frame by frame against a fake clock.
type Tester struct {
	clock     *FakeClock
	prevClock animation.Clock
}

// NewTester creates a tester and installs its fake clock as the animation
// clock. Call Cleanup() when done, or use NewTesterWithT instead.
func NewTester() *Tester {
	clk := NewFakeClock()
	return &Tester{
		clock:     clk,
		prevClock: animation.SetClock(clk),
	}
}

// NewTesterWithT creates a tester that auto-restores the animation clock
// via t.Cleanup. This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the previous animation clock. Must be called if not
// using NewTesterWithT.
func (t *Tester) Cleanup() {
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock for direct manipulation.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Pump advances the clock by d and delivers one frame to all active
// tickers.
func (t *Tester) Pump(d time.Duration) {
	t.clock.Advance(d)
	animation.StepTickers()
}

// PumpFrames delivers n frames of dt each.
func (t *Tester) PumpFrames(n int, dt time.Duration) {
	for i := 0; i < n; i++ {
		t.Pump(dt)
	}
}
