package game

import (
	"math"
	"testing"
)

func TestBobOffsetIsPure(t *testing.T) {
	for _, tt := range []float64{0, 0.1, 1.3, 7.77, 123.456} {
		first := BobOffset(tt, BobAmplitude, BobFrequency)
		second := BobOffset(tt, BobAmplitude, BobFrequency)
		if first != second {
			t.Errorf("BobOffset(%v) not deterministic: %v != %v", tt, first, second)
		}
		if math.Abs(first) > BobAmplitude {
			t.Errorf("BobOffset(%v) = %v exceeds amplitude %v", tt, first, BobAmplitude)
		}
	}
}

func TestBobOffsetZeroAtStart(t *testing.T) {
	if got := BobOffset(0, BobAmplitude, BobFrequency); got != 0 {
		t.Errorf("BobOffset(0) = %v, want 0", got)
	}
}

func TestBobOffsetPeriod(t *testing.T) {
	period := 1.0 / BobFrequency
	a := BobOffset(0.3, BobAmplitude, BobFrequency)
	b := BobOffset(0.3+period, BobAmplitude, BobFrequency)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("offset not periodic: f(0.3)=%v f(0.3+T)=%v", a, b)
	}
}

func TestIdleMotionTracksTheClock(t *testing.T) {
	scene := newTestScene(t, nil)
	_, _, tf := scene.sponge(t)

	scene.tickFor(1.0)

	wantY := 0.8 + BobOffset(scene.clock.Elapsed, BobAmplitude, BobFrequency)
	if math.Abs(tf.Pos.Y-wantY) > 1e-9 {
		t.Errorf("sponge Y = %v, want %v at t=%v", tf.Pos.Y, wantY, scene.clock.Elapsed)
	}

	wantRot := SpinSpeed * scene.clock.Elapsed
	if math.Abs(tf.Rot-wantRot) > 1e-9 {
		t.Errorf("sponge rot = %v, want %v", tf.Rot, wantRot)
	}
}

func TestIdleMotionSkipsDraggedSponge(t *testing.T) {
	scene := newTestScene(t, nil)
	_, sponge, tf := scene.sponge(t)

	scene.grabSponge(t, Vec3{X: -1, Y: 1, Z: DragPlaneDepth})
	if !sponge.Dragging {
		t.Fatal("grab did not start a drag")
	}
	held := tf.Pos

	// More frames while held in place: the bob must not move it.
	for i := 0; i < 30; i++ {
		scene.tick()
	}
	if tf.Pos != held {
		t.Errorf("dragged sponge drifted from %v to %v", held, tf.Pos)
	}
}
