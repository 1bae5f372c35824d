package editor

import (
	"github.com/NaFo44/vectorscope"
	"github.com/NaFo44/vectorscope/config"
)

type (
	Model struct {
		seq    *vectorscope.FrameSequence
		cursor vectorscope.Cell
		// paintValue is written by Paint; every Toggle sets it to the state it
		// left the cell in, so painting continues a stroke.
		paintValue bool

		filePath         string
		changedSinceSave bool

		prevUndoKind    string
		undoSkipCounter int
		undoStack       []*vectorscope.FrameSequence
		redoStack       []*vectorscope.FrameSequence

		alerts Alerts

		synth         *vectorscope.Synthesizer
		format        vectorscope.WavFormat
		imageDuration float64
		frameDuration float64
	}
)

const maxUndo = 256

// NewModel returns a session with one blank frame, configured with the
// preferences. A YmlError in the preferences is shown as a warning.
func NewModel(p config.Preferences) (*Model, error) {
	synth, err := p.Synthesizer()
	if err != nil {
		return nil, err
	}
	m := &Model{
		seq:           vectorscope.NewFrameSequence(),
		paintValue:    true,
		synth:         synth,
		format:        p.WavFormat(),
		imageDuration: p.ImageDuration,
		frameDuration: p.FrameDuration,
	}
	if p.YmlError != nil {
		m.alerts.Add("Error reading preferences.yml: "+p.YmlError.Error(), Warning)
	}
	return m, nil
}

// Sequence returns a copy of the frames being edited.
func (m *Model) Sequence() *vectorscope.FrameSequence { return m.seq.Copy() }

func (m *Model) Frame() vectorscope.Grid { return *m.seq.Current() }
func (m *Model) FrameIndex() int         { return m.seq.Index() }
func (m *Model) FrameCount() int         { return m.seq.Len() }
func (m *Model) Cursor() vectorscope.Cell {
	return m.cursor
}
func (m *Model) PaintValue() bool { return m.paintValue }
func (m *Model) Alerts() *Alerts  { return &m.alerts }

func (m *Model) FilePath() string { return m.filePath }

func (m *Model) SetFilePath(path string) { m.filePath = path }

func (m *Model) ChangedSinceSave() bool { return m.changedSinceSave }

// SetCursor moves the cursor, clamped to the grid.
func (m *Model) SetCursor(c vectorscope.Cell) {
	m.cursor.Row = clamp(c.Row, 0, vectorscope.GridSize-1)
	m.cursor.Col = clamp(c.Col, 0, vectorscope.GridSize-1)
}

func (m *Model) MoveCursor(dRow, dCol int) {
	m.SetCursor(vectorscope.Cell{Row: m.cursor.Row + dRow, Col: m.cursor.Col + dCol})
}

// SetSequence replaces the frames, keeping the current edit undoable.
func (m *Model) SetSequence(seq *vectorscope.FrameSequence) {
	m.saveUndo("SetSequence", 0)
	m.seq = seq.Copy()
}

func (m *Model) CanUndo() bool { return len(m.undoStack) > 0 }
func (m *Model) CanRedo() bool { return len(m.redoStack) > 0 }

func (m *Model) ClearUndoHistory() {
	m.undoStack = m.undoStack[:0]
	m.redoStack = m.redoStack[:0]
	m.prevUndoKind = ""
}

// saveUndo records the sequence before a change. Consecutive changes of the
// same kind are merged until undoSkipping of them have been skipped, so that
// e.g. a paint stroke is undone in a few steps instead of cell by cell.
func (m *Model) saveUndo(kind string, undoSkipping int) {
	m.changedSinceSave = true
	if m.prevUndoKind == kind && m.undoSkipCounter < undoSkipping {
		m.undoSkipCounter++
		return
	}
	m.prevUndoKind = kind
	m.undoSkipCounter = 0
	m.undoStack = append(m.undoStack, m.seq.Copy())
	m.redoStack = m.redoStack[:0]
	m.limitUndoRedoLengths()
}

func (m *Model) limitUndoRedoLengths() {
	if len(m.undoStack) >= maxUndo {
		m.undoStack = m.undoStack[len(m.undoStack)-maxUndo:]
	}
	if len(m.redoStack) >= maxUndo {
		m.redoStack = m.redoStack[len(m.redoStack)-maxUndo:]
	}
}

func clamp(a, min, max int) int {
	if a > max {
		return max
	}
	if a < min {
		return min
	}
	return a
}
