package vectorscope

// FrameSequence is the ordered list of frames of an animation together with
// the index of the frame being edited. It always holds at least one frame
// and the current index is always valid. A FrameSequence is meant to be
// owned by a single editing session; it is not safe for concurrent
// mutation.
type FrameSequence struct {
	frames  []Grid
	current int
}

// NewFrameSequence returns a sequence with one blank frame.
func NewFrameSequence() *FrameSequence {
	return &FrameSequence{frames: []Grid{{}}}
}

// NewFrameSequenceFrom returns a sequence holding copies of the given frames,
// with the first one current.
func NewFrameSequenceFrom(frames []Grid) (*FrameSequence, error) {
	if len(frames) == 0 {
		return nil, ErrEmptySequence
	}
	return &FrameSequence{frames: append([]Grid(nil), frames...)}, nil
}

// Len returns the number of frames.
func (s *FrameSequence) Len() int { return len(s.frames) }

// Index returns the index of the current frame.
func (s *FrameSequence) Index() int { return s.current }

// SetIndex makes frame i current, clamping i to the valid range.
func (s *FrameSequence) SetIndex(i int) {
	s.current = clamp(i, 0, len(s.frames)-1)
}

// Current returns the current frame. Modifying the returned Grid modifies
// the sequence.
func (s *FrameSequence) Current() *Grid { return &s.frames[s.current] }

// Frame returns a copy of frame i, or false if i is out of range.
func (s *FrameSequence) Frame(i int) (Grid, bool) {
	if i < 0 || i >= len(s.frames) {
		return Grid{}, false
	}
	return s.frames[i], true
}

// Frames returns a snapshot of all frames in playback order.
func (s *FrameSequence) Frames() []Grid {
	return append([]Grid(nil), s.frames...)
}

// Advance moves the current index by delta, stopping at the first and last
// frames.
func (s *FrameSequence) Advance(delta int) {
	s.SetIndex(s.current + delta)
}

// InsertAfterCurrent inserts g right after the current frame and makes it
// current.
func (s *FrameSequence) InsertAfterCurrent(g Grid) {
	i := s.current + 1
	s.frames = append(s.frames, Grid{})
	copy(s.frames[i+1:], s.frames[i:])
	s.frames[i] = g
	s.current = i
}

// Append adds g after the last frame and makes it current.
func (s *FrameSequence) Append(g Grid) {
	s.frames = append(s.frames, g)
	s.current = len(s.frames) - 1
}

// ClearCurrent switches off every cell of the current frame.
func (s *FrameSequence) ClearCurrent() {
	s.frames[s.current].Clear()
}

// DeleteCurrent removes the current frame and makes the previous one (or the
// new first one) current. Deleting the only frame clears it instead, as a
// sequence is never empty.
func (s *FrameSequence) DeleteCurrent() {
	if len(s.frames) == 1 {
		s.ClearCurrent()
		return
	}
	s.frames = append(s.frames[:s.current], s.frames[s.current+1:]...)
	s.SetIndex(s.current - 1)
}

// Copy makes a deep copy of the sequence.
func (s *FrameSequence) Copy() *FrameSequence {
	return &FrameSequence{frames: s.Frames(), current: s.current}
}

// Equal reports whether both sequences hold the same frames in the same
// order. The current index is not compared.
func (s *FrameSequence) Equal(o *FrameSequence) bool {
	if len(s.frames) != len(o.frames) {
		return false
	}
	for i := range s.frames {
		if s.frames[i] != o.frames[i] {
			return false
		}
	}
	return true
}
