package vectorscope

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Mapping selects how a Point is laid out on the two audio channels.
type Mapping int

const (
	// MappingXY puts X on the left channel and Y on the right channel, which
	// is what an oscilloscope in XY mode expects.
	MappingXY Mapping = iota
	// MappingVectorscope rotates the image by 45 degrees for goniometer-style
	// vectorscopes, which plot R-L horizontally and R+L vertically.
	MappingVectorscope
)

const (
	DefaultSampleRate   = 44100
	DefaultDwellSamples = 40 // samples each point is held for in one loop cycle
)

var mappingNames = map[Mapping]string{
	MappingXY:          "xy",
	MappingVectorscope: "vectorscope",
}

func (m Mapping) String() string {
	if s, ok := mappingNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mapping(%d)", int(m))
}

// ParseMapping parses the names returned by Mapping.String.
func ParseMapping(s string) (Mapping, error) {
	for m, name := range mappingNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return MappingXY, fmt.Errorf("unknown channel mapping %q", s)
}

// Synthesizer turns Paths into stereo sample buffers. The zero value is not
// usable; create one with NewSynthesizer and adjust the fields as needed.
// A Synthesizer never modifies its inputs and holds no state between calls,
// so it can be shared by goroutines.
type Synthesizer struct {
	SampleRate int
	Mapping    Mapping

	// DwellSamples is the number of samples each point is held for in one
	// cycle of a looping buffer. The looping exports use it; values <= 0 make
	// the video export fall back to a single pass per frame.
	DwellSamples int

	// Jitter is the standard deviation of Gaussian noise added to every
	// non-silent sample, thickening the dots on the display. 0 disables it.
	// The noise comes from a source seeded with Seed, so output stays
	// deterministic.
	Jitter float64
	Seed   int64

	// Workers limits the number of frames ExportVideo renders at once; 0
	// means runtime.NumCPU().
	Workers int
}

// NewSynthesizer returns a Synthesizer with the default settings for the
// given sample rate.
func NewSynthesizer(sampleRate int) *Synthesizer {
	return &Synthesizer{
		SampleRate:   sampleRate,
		Mapping:      MappingXY,
		DwellSamples: DefaultDwellSamples,
		Seed:         1,
	}
}

// Synthesize renders the path as a buffer of duration seconds using the
// default settings. See Synthesizer.Synthesize.
func Synthesize(path Path, duration float64, sampleRate int) (AudioBuffer, error) {
	return NewSynthesizer(sampleRate).Synthesize(path, duration)
}

// Synthesize renders the path as a single pass of duration seconds: the
// samples are divided evenly between the points and each point is held for
// its whole share. An empty path gives silence.
func (s *Synthesizer) Synthesize(path Path, duration float64) (AudioBuffer, error) {
	if err := checkTiming(duration, s.SampleRate); err != nil {
		return nil, err
	}
	return s.Render(path, SampleCount(duration, s.SampleRate)), nil
}

// SampleCount returns the number of stereo samples in duration seconds,
// truncating any fractional sample. Products within 1e-6 of a whole number
// are rounded to it, so e.g. 0.009 s at 48000 Hz is 432 samples and not 431.
func SampleCount(duration float64, sampleRate int) int {
	n := duration * float64(sampleRate)
	if r := math.Round(n); math.Abs(n-r) < 1e-6 {
		return int(r)
	}
	return int(n)
}

// Render renders the path as a single pass of n samples. Point i covers
// samples [i*n/k, (i+1)*n/k) where k is the length of the path.
func (s *Synthesizer) Render(path Path, n int) AudioBuffer {
	buf := make(AudioBuffer, n)
	s.render(path, buf, s.Seed)
	return buf
}

func (s *Synthesizer) render(path Path, buf AudioBuffer, seed int64) {
	k, n := path.Len(), len(buf)
	if k == 0 || n == 0 {
		return
	}
	for i, p := range path.Points {
		fill(buf[i*n/k:(i+1)*n/k], s.frame(p))
	}
	s.jitter(buf, seed)
}

// Cycle renders one closed loop cycle of n samples: the dwell of the first
// point is split between the head and the tail of the cycle, so the cycle
// both starts and ends on the first point. Repeating such cycles back to back
// keeps the beam on the same point across every seam. When n is too short to
// give every point a sample at both ends, the whole cycle holds the first
// point.
func (s *Synthesizer) Cycle(path Path, n int) AudioBuffer {
	buf := make(AudioBuffer, n)
	s.cycle(path, buf, s.Seed)
	return buf
}

func (s *Synthesizer) cycle(path Path, buf AudioBuffer, seed int64) {
	k, n := path.Len(), len(buf)
	if k == 0 || n == 0 {
		return
	}
	if k == 1 || n < 2*k {
		fill(buf, s.frame(path.Points[0]))
		s.jitter(buf, seed)
		return
	}
	// boundaries are placed in half-dwell units: the first point gets one
	// half at the head and one at the tail, every other point gets two
	halves := 2 * k
	b := func(h int) int { return h * n / halves }
	fill(buf[:b(1)], s.frame(path.Points[0]))
	for i := 1; i < k; i++ {
		fill(buf[b(2*i-1):b(2*i+1)], s.frame(path.Points[i]))
	}
	fill(buf[b(halves-1):], s.frame(path.Points[0]))
	s.jitter(buf, seed)
}

// CycleLength returns the length of one loop cycle for the path.
func (s *Synthesizer) CycleLength(path Path) int {
	dwell := s.DwellSamples
	if dwell <= 0 {
		dwell = DefaultDwellSamples
	}
	return path.Len() * dwell
}

// Loop fills n samples by repeating the loop cycle of the path. If n is not
// a multiple of the cycle length, the remainder is rendered as a shorter
// closed cycle, so the buffer still ends on the first point. Loop returns the
// buffer and the indices where one cycle ends and the next begins.
func (s *Synthesizer) Loop(path Path, n int) (AudioBuffer, []int) {
	buf := make(AudioBuffer, n)
	seams := s.loop(path, buf, s.Seed)
	return buf, seams
}

func (s *Synthesizer) loop(path Path, buf AudioBuffer, seed int64) (seams []int) {
	if path.Empty() || len(buf) == 0 {
		return nil
	}
	c := s.CycleLength(path)
	if c >= len(buf) {
		s.cycle(path, buf, seed)
		return nil
	}
	s.cycle(path, buf[:c], seed)
	pos := c
	for ; pos+c <= len(buf); pos += c {
		seams = append(seams, pos)
		copy(buf[pos:pos+c], buf[:c])
	}
	if pos < len(buf) {
		seams = append(seams, pos)
		s.cycle(path, buf[pos:], seed)
	}
	return seams
}

func (s *Synthesizer) frame(p Point) [2]float32 {
	if s.Mapping == MappingVectorscope {
		return [2]float32{(p.Y - p.X) / 2, (p.X + p.Y) / 2}
	}
	return [2]float32{p.X, p.Y}
}

func (s *Synthesizer) jitter(buf AudioBuffer, seed int64) {
	if s.Jitter <= 0 {
		return
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range buf {
		for ch := range buf[i] {
			v := buf[i][ch] + float32(rng.NormFloat64()*s.Jitter)
			buf[i][ch] = clampSample(v)
		}
	}
}

func fill(buf AudioBuffer, value [2]float32) {
	for i := range buf {
		buf[i] = value
	}
}

func clampSample(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
