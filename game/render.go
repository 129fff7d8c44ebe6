package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mossfeather/crowtub/ecs"
)

// Screen is the frame's draw target, set by the game loop before the
// render scheduler ticks.
type Screen struct {
	*ebiten.Image
}

// RenderSystem draws the whole scene back to front: backdrop, tub, water,
// crow with its glow, sponge, then the dead overlay dim. All text lives in
// the overlay windows, not here.
type RenderSystem struct {
	Camera ecs.Singleton[Camera]
	State  ecs.Singleton[ScrubState]
	Story  ecs.Singleton[StoryState]
	Screen ecs.Singleton[Screen]

	Tubs ecs.Query[struct {
		*Tub
		*Transform
		*Sprite
	}]
	Crows ecs.Query[struct {
		*Crow
		*Transform
		*Sprite
		*Glow
	}]
	Sponges ecs.Query[struct {
		*Sponge
		*Transform
		*Sprite
	}]
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get().Image
	if screen == nil {
		return
	}

	camera := s.Camera.Get()
	state := s.State.Get()
	story := s.Story.Get()

	screen.Fill(color.RGBA{186, 214, 232, 255})

	for item := range s.Tubs.Values() {
		s.drawSprite(screen, camera, item.Transform, item.Sprite)
	}

	s.drawWater(screen, camera)

	for item := range s.Crows.Values() {
		if state.GlowUnlocked {
			s.drawHalo(screen, camera, item.Transform, item.Glow.Color, 0.55)
		}
		if item.Glow.Intensity > 0 {
			s.drawHalo(screen, camera, item.Transform, item.Glow.Color, 0.8*item.Glow.Intensity)
		}
		s.drawSprite(screen, camera, item.Transform, item.Sprite)
		if story.Dead {
			s.drawDeadEyes(screen, camera, item.Transform)
		}
	}

	for item := range s.Sponges.Values() {
		s.drawSprite(screen, camera, item.Transform, item.Sprite)
	}

	if story.DeadFade > 0 {
		a := story.DeadFade * 0.55
		dim := color.RGBA{0, 0, 0, uint8(255 * a)}
		vector.DrawFilledRect(screen, 0, 0, float32(camera.ScreenW), float32(camera.ScreenH), dim, false)
	}
}

// drawSprite draws the entity's image centered on its projected position,
// or a flat tinted square when no image is available.
func (s *RenderSystem) drawSprite(screen *ebiten.Image, camera *Camera, tf *Transform, sprite *Sprite) {
	sx, sy := camera.Project(tf.Pos)
	sizePx := sprite.Size * tf.Scale * camera.Scale

	if sprite.Image == nil {
		c := color.RGBA{sprite.Tint[0], sprite.Tint[1], sprite.Tint[2], 255}
		half := float32(sizePx / 2)
		vector.DrawFilledRect(screen, float32(sx)-half, float32(sy)-half, half*2, half*2, c, false)
		return
	}

	bounds := sprite.Image.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	scale := sizePx / w

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(-w/2, -h/2)
	opts.GeoM.Rotate(tf.Rot)
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(sx, sy)
	screen.DrawImage(sprite.Image, opts)
}

func (s *RenderSystem) drawWater(screen *ebiten.Image, camera *Camera) {
	sx, sy := camera.Project(Vec3{X: 0, Y: 0.05, Z: 0.2})
	w := float32(3.0 * camera.Scale)
	h := float32(0.5 * camera.Scale)
	water := color.RGBA{120, 182, 220, 235}
	vector.DrawFilledRect(screen, float32(sx)-w/2, float32(sy)-h/2, w, h, water, false)

	// A little standing foam.
	foam := color.RGBA{235, 245, 250, 200}
	for i := -2; i <= 2; i++ {
		fx := float32(sx) + float32(i)*w/5
		vector.DrawFilledCircle(screen, fx, float32(sy)-h/2, 0.06*float32(camera.Scale), foam, false)
	}
}

func (s *RenderSystem) drawHalo(screen *ebiten.Image, camera *Camera, tf *Transform, tint [3]uint8, strength float64) {
	sx, sy := camera.Project(tf.Pos)
	a := uint8(160 * strength)
	halo := color.RGBA{
		uint8(float64(tint[0]) * strength),
		uint8(float64(tint[1]) * strength),
		uint8(float64(tint[2]) * strength),
		a,
	}
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(0.95*camera.Scale), halo, false)
}

func (s *RenderSystem) drawDeadEyes(screen *ebiten.Image, camera *Camera, tf *Transform) {
	sx, sy := camera.Project(tf.Pos.Add(Vec3{Y: 0.25}))
	c := color.RGBA{20, 20, 20, 255}
	for _, side := range []float64{-0.18, 0.18} {
		ex := float32(sx + side*camera.Scale)
		ey := float32(sy)
		r := float32(0.07 * camera.Scale)
		// An X per eye, drawn as two thin strokes.
		vector.StrokeLine(screen, ex-r, ey-r, ex+r, ey+r, 3, c, false)
		vector.StrokeLine(screen, ex-r, ey+r, ex+r, ey-r, 3, c, false)
	}
}
