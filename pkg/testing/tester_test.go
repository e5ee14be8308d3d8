package testing_test

import (
	"testing"
	"time"

	"github.com/go-drift/anima/pkg/animation"
	animatest "github.com/go-drift/anima/pkg/testing"
)

func TestTesterPumpDrivesAnimations(t *testing.T) {
	tester := animatest.NewTesterWithT(t)

	c := animation.NewAnimationController(100*time.Millisecond, nil)
	defer c.Dispose()

	c.Forward()
	tester.Pump(50 * time.Millisecond)
	if c.Value != 0.5 {
		t.Errorf("value = %v, want 0.5", c.Value)
	}
}

func TestTesterPumpFrames(t *testing.T) {
	tester := animatest.NewTesterWithT(t)

	c := animation.NewAnimationController(100*time.Millisecond, nil)
	defer c.Dispose()

	ticks := 0
	c.AddListener(func() { ticks++ })

	c.Forward()
	tester.PumpFrames(4, 25*time.Millisecond)
	if ticks != 4 {
		t.Errorf("got %d frames, want 4", ticks)
	}
	if c.Value != 1 {
		t.Errorf("value = %v, want 1", c.Value)
	}
}

func TestTesterCleanupRestoresClock(t *testing.T) {
	before := animation.Now()

	tester := animatest.NewTester()
	tester.Cleanup()

	// After cleanup the animation clock is real time again, not the
	// tester's 2024 epoch.
	after := animation.Now()
	if after.Before(before) {
		t.Error("Cleanup did not restore the previous clock")
	}
}
