package vectorscope

import "github.com/viterin/vek/vek32"

// AudioBuffer is a buffer of stereo samples, left channel first. Values are
// nominally in [-1, 1]; the writers clamp anything outside that range.
type AudioBuffer [][2]float32

// Interleaved returns the samples as one L, R, L, R... slice.
func (b AudioBuffer) Interleaved() []float32 {
	ret := make([]float32, 0, 2*len(b))
	for _, s := range b {
		ret = append(ret, s[0], s[1])
	}
	return ret
}

// Duration returns the length of the buffer in seconds at the given rate.
func (b AudioBuffer) Duration(sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(len(b)) / float64(sampleRate)
}

// Peak returns the largest absolute sample value over both channels.
func (b AudioBuffer) Peak() float32 {
	if len(b) == 0 {
		return 0
	}
	data := b.Interleaved()
	vek32.Abs_Inplace(data)
	return vek32.Max(data)
}

// Silent reports whether every sample is zero.
func (b AudioBuffer) Silent() bool {
	for _, s := range b {
		if s[0] != 0 || s[1] != 0 {
			return false
		}
	}
	return true
}
