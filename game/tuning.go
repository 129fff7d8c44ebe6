package game

// Scene tuning. Everything here is a compile-time choice; there is no
// runtime configuration surface.
const (
	ScreenWidth  = 960
	ScreenHeight = 640

	// Scrub detector contract: a scrub fires only when the sponge is
	// strictly closer than ScrubRadius to the target, at most once per
	// ScrubCooldown seconds of scene time.
	ScrubRadius    = 0.55
	ScrubCooldown  = 0.35
	ScrubThreshold = 10

	// Seconds between intro dismissal and the dead flag.
	DeadDelay = 0.8

	// Sponge idle motion: vertical bob plus constant spin, both pure
	// functions of elapsed scene time.
	BobAmplitude = 0.12
	BobFrequency = 0.8
	SpinSpeed    = 0.9

	// Drag interaction.
	DragPlaneDepth  = 0.0  // scene-space Z of the plane the pointer maps onto
	GrabRadiusPx    = 48.0 // screen-space pickup radius around the sponge
	ReleaseTweenSec = 0.45 // sponge glide back to its perch after a drag

	// Glow pulse on each scrub (the unlocked halo is steady).
	GlowPulseFade = 2.0

	// Dead overlay fade-in, seconds.
	DeadFadeSec = 1.2

	SfxVolume  = 0.6
	SampleRate = 44100
)
