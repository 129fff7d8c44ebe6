// Package audio plays short, fire-and-forget cues over an ebiten audio
// context.
package audio

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Sampler holds raw PCM cues and starts a fresh player per trigger, so the
// same cue can overlap itself. Play never blocks and never reports errors;
// a cue that cannot start is simply not heard.
type Sampler struct {
	ctx    *audio.Context
	volume float64
	cues   map[int][]byte
}

// NewSampler creates the process's audio context at the given sample rate.
// ebiten allows one context per process, so create one Sampler and share it.
func NewSampler(sampleRate int, volume float64) *Sampler {
	return &Sampler{
		ctx:    audio.NewContext(sampleRate),
		volume: volume,
		cues:   make(map[int][]byte),
	}
}

// Register stores 16-bit LE stereo PCM under the given cue id, replacing
// any previous registration.
func (s *Sampler) Register(id int, pcm []byte) {
	s.cues[id] = pcm
}

// Play starts the cue if it is registered. Unknown ids are ignored.
func (s *Sampler) Play(id int) {
	pcm, ok := s.cues[id]
	if !ok || len(pcm) == 0 {
		return
	}

	player := s.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(s.volume)
	player.Play()
}
