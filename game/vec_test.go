package game

import (
	"math"
	"testing"
)

func TestVecDist(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: 6, Z: 3}
	if got := a.Dist(b); got != 5 {
		t.Errorf("Dist = %v, want 5", got)
	}
	if got := a.Dist(a); got != 0 {
		t.Errorf("Dist to self = %v, want 0", got)
	}
}

func TestLerpClamps(t *testing.T) {
	a := Vec3{X: 0, Y: 0, Z: 0}
	b := Vec3{X: 10, Y: -4, Z: 2}

	if got := Lerp(a, b, -0.5); got != a {
		t.Errorf("Lerp(t<0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1.5); got != b {
		t.Errorf("Lerp(t>1) = %v, want %v", got, b)
	}
	mid := Lerp(a, b, 0.5)
	if mid.X != 5 || mid.Y != -2 || mid.Z != 1 {
		t.Errorf("Lerp(0.5) = %v", mid)
	}
}

func TestCameraUnprojectInvertsProject(t *testing.T) {
	camera := Camera{
		OriginX: 480, OriginY: 420,
		Scale: 120, SkewX: 0.18, Rise: 0.12,
		ScreenW: 960, ScreenH: 640,
	}

	points := []Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1.6, Y: 0.8, Z: -0.3},
		{X: -2.1, Y: 0.45, Z: 0.2},
		{X: 0.333, Y: -1.25, Z: 1.0},
	}

	for _, p := range points {
		sx, sy := camera.Project(p)
		back := camera.Unproject(sx, sy, p.Z)
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 || back.Z != p.Z {
			t.Errorf("round trip of %v gave %v", p, back)
		}
	}
}

func TestCameraProjectionDepthCues(t *testing.T) {
	camera := Camera{OriginX: 480, OriginY: 420, Scale: 120, SkewX: 0.18, Rise: 0.12}

	near := Vec3{X: 0, Y: 0, Z: 0}
	far := Vec3{X: 0, Y: 0, Z: 1}

	nx, ny := camera.Project(near)
	fx, fy := camera.Project(far)
	if fx <= nx {
		t.Errorf("depth must skew right: near x %v, far x %v", nx, fx)
	}
	if fy <= ny {
		t.Errorf("depth must sit lower on screen: near y %v, far y %v", ny, fy)
	}

	// Up in the scene is up on the screen.
	hx, hy := camera.Project(Vec3{X: 0, Y: 1, Z: 0})
	if hy >= ny || hx != nx {
		t.Errorf("raising a point moved it to (%v,%v) from (%v,%v)", hx, hy, nx, ny)
	}
}
