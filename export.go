package vectorscope

import (
	"fmt"
	"runtime"
	"sync"
)

const (
	DefaultImageDuration = 30.0  // seconds
	DefaultFrameDuration = 0.125 // seconds per animation frame
)

// ExportImage renders a single frame as a looping buffer of totalDuration
// seconds with the default settings. See Synthesizer.ExportImage.
func ExportImage(frame Grid, totalDuration float64, sampleRate int) (AudioBuffer, error) {
	return NewSynthesizer(sampleRate).ExportImage(frame, totalDuration)
}

// ExportVideo renders every frame of the sequence in order with the default
// settings. See Synthesizer.ExportVideo.
func ExportVideo(seq *FrameSequence, perFrameDuration float64, sampleRate int) (AudioBuffer, error) {
	if err := checkTiming(perFrameDuration, sampleRate); err != nil {
		return nil, err
	}
	if seq == nil {
		return nil, ErrEmptySequence
	}
	return NewSynthesizer(sampleRate).ExportVideo(seq.Frames(), perFrameDuration)
}

// ExportImage renders the frame as totalDuration seconds of a repeating loop
// cycle. Every cycle starts and ends on the same point, and so does the
// whole buffer, so it can itself be looped without a jump of the beam. A
// blank frame gives silence.
func (s *Synthesizer) ExportImage(frame Grid, totalDuration float64) (AudioBuffer, error) {
	if err := checkTiming(totalDuration, s.SampleRate); err != nil {
		return nil, err
	}
	buf, seams := s.Loop(BuildPath(frame), SampleCount(totalDuration, s.SampleRate))
	if err := s.checkSeams(buf, seams); err != nil {
		return nil, err
	}
	return buf, nil
}

// ExportVideo renders the frames back to back, each exactly
// perFrameDuration seconds long regardless of how many cells it has lit.
// Each frame's path starts near where the previous frame left the beam.
// Frames are rendered concurrently; the result does not depend on the
// number of workers.
func (s *Synthesizer) ExportVideo(frames []Grid, perFrameDuration float64) (AudioBuffer, error) {
	if err := checkTiming(perFrameDuration, s.SampleRate); err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, ErrEmptySequence
	}
	paths := make([]Path, len(frames))
	start := Cell{}
	for i, g := range frames {
		paths[i] = BuildPathFrom(g, start)
		if end, ok := s.beamEnd(paths[i]); ok {
			start = end
		}
	}
	n := SampleCount(perFrameDuration, s.SampleRate)
	buf := make(AudioBuffer, n*len(frames))
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, p := range paths {
		if p.Empty() {
			continue // already silent
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p Path) {
			defer func() {
				<-sem
				wg.Done()
			}()
			s.renderFrame(p, buf[i*n:(i+1)*n], s.Seed+int64(i))
		}(i, p)
	}
	wg.Wait()
	return buf, nil
}

func (s *Synthesizer) renderFrame(p Path, seg AudioBuffer, seed int64) {
	if s.DwellSamples > 0 {
		s.loop(p, seg, seed)
	} else {
		s.render(p, seg, seed)
	}
}

// beamEnd returns the cell the beam rests on at the end of a rendered frame:
// looping frames end on their first point, single-pass frames on their last.
func (s *Synthesizer) beamEnd(p Path) (Cell, bool) {
	if p.Empty() {
		return Cell{}, false
	}
	if s.DwellSamples > 0 {
		return p.Cells[0], true
	}
	return p.Last()
}

// checkSeams verifies that the buffer ends where it starts and that every
// cycle boundary joins two identical samples. Jittered buffers are noisy by
// request and are not checked.
func (s *Synthesizer) checkSeams(buf AudioBuffer, seams []int) error {
	if s.Jitter > 0 || len(buf) == 0 {
		return nil
	}
	if buf[0] != buf[len(buf)-1] {
		return fmt.Errorf("loop discontinuity: buffer starts at %v but ends at %v", buf[0], buf[len(buf)-1])
	}
	for _, i := range seams {
		if buf[i-1] != buf[i] {
			return fmt.Errorf("loop discontinuity at sample %d: %v -> %v", i, buf[i-1], buf[i])
		}
	}
	return nil
}
