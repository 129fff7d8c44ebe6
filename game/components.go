package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Transform places an entity in the scene.
type Transform struct {
	Pos   Vec3
	Rot   float64 // radians
	Scale float64 // scene units per sprite, 1.0 = natural size
}

// Sprite is the drawable for an entity. Image may be nil (headless runs);
// the render system then falls back to a flat shape in Tint.
type Sprite struct {
	Image *ebiten.Image
	Tint  [3]uint8
	Size  float64 // scene-space width the image is scaled to
}

// Crow marks the scrub target entity.
type Crow struct{}

// Tub marks the bathtub entity.
type Tub struct{}

// Sponge is the draggable. GrabOffset keeps the point inside the sponge
// where the drag started under the pointer.
type Sponge struct {
	Dragging   bool
	GrabOffset Vec3
	Home       Vec3
}

// ScrubTarget is the fixed point and trigger radius the detector measures
// the sponge against.
type ScrubTarget struct {
	Point  Vec3
	Radius float64
}

// Bob produces the idle vertical oscillation around Origin.
type Bob struct {
	Origin    Vec3
	Amplitude float64
	Frequency float64
}

// Spin is a constant idle rotation.
type Spin struct {
	Speed float64
}

// Glow is a per-scrub highlight pulse; Intensity decays to zero at
// FadeSpeed per second.
type Glow struct {
	Intensity float64
	FadeSpeed float64
	Color     [3]uint8
}

// Tween glides a transform from From to To over Duration seconds, then the
// tween system removes it.
type Tween struct {
	From     Vec3
	To       Vec3
	Elapsed  float64
	Duration float64
}

// --- singletons ---

// SceneClock is the deterministic time base every temporal rule reads.
type SceneClock struct {
	Elapsed float64
}

// PointerState is the per-frame pointer sample. Blocked is set while an
// overlay window owns the mouse.
type PointerState struct {
	X, Y         int
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	Blocked      bool

	prevPressed bool
}

// Sample folds a raw pointer reading into edge flags.
func (p *PointerState) Sample(x, y int, pressed bool) {
	p.X, p.Y = x, y
	p.Pressed = pressed
	p.JustPressed = pressed && !p.prevPressed
	p.JustReleased = !pressed && p.prevPressed
	p.prevPressed = pressed
}

// Camera maps scene space to the screen with a fixed oblique projection.
type Camera struct {
	OriginX, OriginY float64
	Scale            float64
	SkewX            float64 // horizontal shift per unit of depth
	Rise             float64 // vertical shift per unit of depth
	ScreenW, ScreenH int
}

// Project returns the screen position of a scene point.
func (c *Camera) Project(p Vec3) (float64, float64) {
	sx := c.OriginX + (p.X+p.Z*c.SkewX)*c.Scale
	sy := c.OriginY - p.Y*c.Scale + p.Z*c.Rise*c.Scale
	return sx, sy
}

// Unproject maps a screen position onto the scene plane at the given depth.
// It is the exact inverse of Project restricted to that plane.
func (c *Camera) Unproject(sx, sy float64, planeZ float64) Vec3 {
	return Vec3{
		X: (sx-c.OriginX)/c.Scale - planeZ*c.SkewX,
		Y: (c.OriginY-sy)/c.Scale + planeZ*c.Rise,
		Z: planeZ,
	}
}

// ScrubState is the scene's one counter and its derived flag.
type ScrubState struct {
	Count         int
	Threshold     int
	GlowUnlocked  bool    // monotonic: never drops back to false
	CooldownUntil float64 // scene-clock time the detector re-arms at
}

// StoryState drives the intro modal and the scripted dead overlay.
type StoryState struct {
	IntroOpen   bool
	ChoiceMade  bool
	DeadArmed   bool // the delayed transition was scheduled once
	DeadPending bool
	DeadAt      float64 // scene-clock deadline, valid while DeadPending
	Dead        bool
	DeadFade    float64 // overlay opacity, 0..1
}

// Choose records the modal answer. Both answers are deliberately
// identical downstream; the riddle has no right answer.
func (s *StoryState) Choose(yes bool) {
	_ = yes
	s.IntroOpen = false
	s.ChoiceMade = true
}

// CancelDead withdraws a pending dead transition before it fires.
func (s *StoryState) CancelDead() {
	s.DeadPending = false
}
