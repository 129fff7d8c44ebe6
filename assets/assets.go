// Package assets resolves the scene's optional art and sounds. Every asset
// resolves to a usable value: files that are missing or unreadable fall
// back to deterministic procedural stand-ins, so the scene runs the same
// with an empty asset directory as with a full one.
package assets

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/png"
	"io"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Resolution says where an asset's bytes came from.
type Resolution int

const (
	Loaded   Resolution = iota // decoded from the asset file
	Fallback                   // procedurally generated stand-in
)

func (r Resolution) String() string {
	if r == Loaded {
		return "loaded"
	}
	return "fallback"
}

// ImageAsset is a resolved drawable.
type ImageAsset struct {
	Name       string
	Resolution Resolution
	Image      *image.RGBA
}

// SoundAsset is a resolved cue as raw 16-bit LE stereo PCM at SampleRate.
type SoundAsset struct {
	Name       string
	Resolution Resolution
	PCM        []byte
}

// SampleRate is the rate every sound asset is decoded or synthesized at.
const SampleRate = 44100

// LoadImage decodes name from fsys, falling back to placeholder() when the
// file is missing or does not decode.
func LoadImage(fsys fs.FS, name string, placeholder func() *image.RGBA) ImageAsset {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		log.Printf("assets: %s unavailable, using fallback: %v", name, err)
		return ImageAsset{Name: name, Resolution: Fallback, Image: placeholder()}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("assets: %s does not decode, using fallback: %v", name, err)
		return ImageAsset{Name: name, Resolution: Fallback, Image: placeholder()}
	}

	return ImageAsset{Name: name, Resolution: Loaded, Image: toRGBA(img)}
}

// LoadSound decodes a WAV file from fsys, falling back to synth() when the
// file is missing or does not decode.
func LoadSound(fsys fs.FS, name string, synth func() []byte) SoundAsset {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		log.Printf("assets: %s unavailable, using fallback: %v", name, err)
		return SoundAsset{Name: name, Resolution: Fallback, PCM: synth()}
	}

	stream, err := wav.DecodeWithoutResampling(bytes.NewReader(data))
	if err != nil {
		log.Printf("assets: %s does not decode, using fallback: %v", name, err)
		return SoundAsset{Name: name, Resolution: Fallback, PCM: synth()}
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		log.Printf("assets: %s truncated, using fallback: %v", name, err)
		return SoundAsset{Name: name, Resolution: Fallback, PCM: synth()}
	}

	return SoundAsset{Name: name, Resolution: Loaded, PCM: pcm}
}

// Bundle is every asset the scene uses.
type Bundle struct {
	Crow   ImageAsset
	Tub    ImageAsset
	Sponge ImageAsset
	Squeak SoundAsset
	Pop    SoundAsset
}

// Load resolves the whole bundle from fsys.
func Load(fsys fs.FS) Bundle {
	return Bundle{
		Crow:   LoadImage(fsys, "crow.png", CrowPlaceholder),
		Tub:    LoadImage(fsys, "tub.png", TubPlaceholder),
		Sponge: LoadImage(fsys, "sponge.png", SpongePlaceholder),
		Squeak: LoadSound(fsys, "squeak.wav", SqueakPCM),
		Pop:    LoadSound(fsys, "pop.wav", PopPCM),
	}
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
