package assets

import "math"

// The synthesized cues stand in when no wav files ship with the binary.
// Both are short, quiet, and fully deterministic.

// SqueakPCM synthesizes a rubber-duck squeak: a sine sweep from 1200 Hz
// down to 600 Hz over 180 ms with a soft attack/release envelope.
func SqueakPCM() []byte {
	const (
		dur       = 0.18
		startHz   = 1200.0
		endHz     = 600.0
		amplitude = 0.35
	)

	samples := int(dur * SampleRate)
	out := make([]byte, 0, samples*4)

	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		hz := startHz + (endHz-startHz)*t
		phase += 2 * math.Pi * hz / SampleRate

		v := amplitude * envelope(t) * math.Sin(phase)
		out = appendStereoSample(out, v)
	}
	return out
}

// PopPCM synthesizes a bubble pop: a 90 ms burst of deterministic noise
// with a sharp exponential decay.
func PopPCM() []byte {
	const (
		dur       = 0.09
		amplitude = 0.4
	)

	samples := int(dur * SampleRate)
	out := make([]byte, 0, samples*4)

	// xorshift keeps the "noise" identical run to run.
	state := uint32(0x9e3779b9)
	for i := 0; i < samples; i++ {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		noise := float64(int32(state)) / float64(math.MaxInt32)

		t := float64(i) / float64(samples)
		v := amplitude * noise * math.Exp(-6*t)
		out = appendStereoSample(out, v)
	}
	return out
}

// envelope shapes a unit-duration tone: 15% linear attack, 35% release.
func envelope(t float64) float64 {
	switch {
	case t < 0.15:
		return t / 0.15
	case t > 0.65:
		return (1 - t) / 0.35
	default:
		return 1
	}
}

// appendStereoSample writes one sample to both channels as 16-bit LE.
func appendStereoSample(out []byte, v float64) []byte {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	s := int16(v * math.MaxInt16)
	lo, hi := byte(s), byte(s>>8)
	return append(out, lo, hi, lo, hi)
}
