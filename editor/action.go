package editor

import (
	"github.com/NaFo44/vectorscope"
)

type (
	// Action describes a user action that can be performed on the model,
	// initiated by calling the Do() method. If the underlying Doer also
	// implements Enabler, the action is only performed when it is enabled.
	Action struct {
		doer Doer
	}

	Doer interface {
		Do()
	}

	Enabler interface {
		Enabled() bool
	}
)

func MakeAction(doer Doer) Action {
	return Action{doer: doer}
}

func (a Action) Do() {
	e, ok := a.doer.(Enabler)
	if ok && !e.Enabled() {
		return
	}
	if a.doer != nil {
		a.doer.Do()
	}
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false
	}
	e, ok := a.doer.(Enabler)
	if !ok {
		return true
	}
	return e.Enabled()
}

// toggle
type toggle Model

// Toggle flips the cell under the cursor and remembers its new state as the
// paint value.
func (m *Model) Toggle() Action { return MakeAction((*toggle)(m)) }
func (m *toggle) Do() {
	(*Model)(m).saveUndo("Toggle", 0)
	m.paintValue = m.seq.Current().Toggle(m.cursor)
}

// paint
type paint Model

// Paint sets the cell under the cursor to the paint value.
func (m *Model) Paint() Action { return MakeAction((*paint)(m)) }
func (m *paint) Enabled() bool {
	return m.seq.Current().Get(m.cursor) != m.paintValue
}
func (m *paint) Do() {
	(*Model)(m).saveUndo("Paint", 16)
	m.seq.Current().Set(m.cursor, m.paintValue)
}

// prevFrame
type prevFrame Model

func (m *Model) PrevFrame() Action { return MakeAction((*prevFrame)(m)) }
func (m *prevFrame) Do() {
	if m.seq.Index() == 0 {
		m.alerts.Add("Already at the first frame.", Info)
		return
	}
	m.seq.Advance(-1)
}

// nextFrame
type nextFrame Model

// NextFrame moves to the next frame, adding a blank one when the current
// frame is the last.
func (m *Model) NextFrame() Action { return MakeAction((*nextFrame)(m)) }
func (m *nextFrame) Do() {
	if m.seq.Index() == m.seq.Len()-1 {
		(*Model)(m).NewFrame().Do()
		return
	}
	m.seq.Advance(1)
}

// newFrame
type newFrame Model

// NewFrame appends a blank frame at the end of the sequence and makes it
// current.
func (m *Model) NewFrame() Action { return MakeAction((*newFrame)(m)) }
func (m *newFrame) Do() {
	(*Model)(m).saveUndo("NewFrame", 0)
	m.seq.Append(vectorscope.Grid{})
}

// insertFrame
type insertFrame Model

// InsertFrame adds a copy of the current frame right after it.
func (m *Model) InsertFrame() Action { return MakeAction((*insertFrame)(m)) }
func (m *insertFrame) Do() {
	(*Model)(m).saveUndo("InsertFrame", 0)
	m.seq.InsertAfterCurrent(*m.seq.Current())
}

// clearFrame
type clearFrame Model

func (m *Model) ClearFrame() Action { return MakeAction((*clearFrame)(m)) }
func (m *clearFrame) Enabled() bool { return !m.seq.Current().Empty() }
func (m *clearFrame) Do() {
	(*Model)(m).saveUndo("ClearFrame", 0)
	m.seq.ClearCurrent()
}

// deleteFrame
type deleteFrame Model

func (m *Model) DeleteFrame() Action { return MakeAction((*deleteFrame)(m)) }
func (m *deleteFrame) Enabled() bool {
	return m.seq.Len() > 1 || !m.seq.Current().Empty()
}
func (m *deleteFrame) Do() {
	(*Model)(m).saveUndo("DeleteFrame", 0)
	m.seq.DeleteCurrent()
}

// undo
type undo Model

func (m *Model) Undo() Action { return MakeAction((*undo)(m)) }
func (m *undo) Enabled() bool { return (*Model)(m).CanUndo() }
func (m *undo) Do() {
	m.redoStack = append(m.redoStack, m.seq.Copy())
	m.seq = m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	(*Model)(m).limitUndoRedoLengths()
	m.prevUndoKind = ""
	m.changedSinceSave = true
}

// redo
type redo Model

func (m *Model) Redo() Action { return MakeAction((*redo)(m)) }
func (m *redo) Enabled() bool { return (*Model)(m).CanRedo() }
func (m *redo) Do() {
	m.undoStack = append(m.undoStack, m.seq.Copy())
	m.seq = m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	(*Model)(m).limitUndoRedoLengths()
	m.prevUndoKind = ""
	m.changedSinceSave = true
}
