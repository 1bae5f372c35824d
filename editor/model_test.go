package editor_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/NaFo44/vectorscope"
	"github.com/NaFo44/vectorscope/config"
	"github.com/NaFo44/vectorscope/editor"
)

func testPreferences() config.Preferences {
	return config.Preferences{
		SampleRate:    8000,
		ImageDuration: 0.5,
		FrameDuration: 0.125,
		PCM16:         true,
		DwellSamples:  vectorscope.DefaultDwellSamples,
		Mapping:       "xy",
		Seed:          1,
	}
}

func newModel(t *testing.T) *editor.Model {
	t.Helper()
	m, err := editor.NewModel(testPreferences())
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func TestNewModel(t *testing.T) {
	m := newModel(t)
	if m.FrameCount() != 1 || m.FrameIndex() != 0 || !m.Frame().Empty() {
		t.Fatal("expected a single blank frame")
	}
	if m.ChangedSinceSave() || m.CanUndo() || m.CanRedo() {
		t.Fatal("a new model should have no history")
	}
	p := testPreferences()
	p.Mapping = "polar"
	if _, err := editor.NewModel(p); err == nil {
		t.Fatal("expected an error for bad preferences")
	}
}

func TestToggleAndPaint(t *testing.T) {
	m := newModel(t)
	m.SetCursor(vectorscope.Cell{Row: 2, Col: 3})
	m.Toggle().Do()
	if g := m.Frame(); !g.Get(vectorscope.Cell{Row: 2, Col: 3}) || !m.PaintValue() {
		t.Fatal("toggle did not light the cell")
	}
	m.MoveCursor(0, 1)
	if !m.Paint().Enabled() {
		t.Fatal("paint should be enabled on a dark cell after lighting one")
	}
	m.Paint().Do()
	if g := m.Frame(); !g.Get(vectorscope.Cell{Row: 2, Col: 4}) {
		t.Fatal("paint did not light the cell")
	}
	if m.Paint().Enabled() {
		t.Fatal("paint should be disabled on a cell that already has the paint value")
	}
	m.Toggle().Do() // dark again, paint value is now false
	m.MoveCursor(0, -1)
	m.Paint().Do()
	if g := m.Frame(); !g.Empty() {
		t.Fatalf("expected a blank frame after erasing, got\n%v", g)
	}
	if !m.ChangedSinceSave() {
		t.Fatal("edits should mark the session changed")
	}
}

func TestCursorIsClamped(t *testing.T) {
	m := newModel(t)
	m.MoveCursor(-5, 100)
	if c := m.Cursor(); c != (vectorscope.Cell{Row: 0, Col: 15}) {
		t.Fatalf("got cursor %v, expected %v", c, vectorscope.Cell{Row: 0, Col: 15})
	}
}

func TestFrameNavigation(t *testing.T) {
	m := newModel(t)
	m.PrevFrame().Do()
	if a, ok := m.Alerts().Top(); !ok || a.Priority != editor.Info {
		t.Fatal("expected an info alert when going back from the first frame")
	}
	m.NextFrame().Do() // at the end: appends
	m.NextFrame().Do()
	if m.FrameCount() != 3 || m.FrameIndex() != 2 {
		t.Fatalf("got %v frames at %v, expected 3 frames at 2", m.FrameCount(), m.FrameIndex())
	}
	m.PrevFrame().Do()
	m.PrevFrame().Do()
	m.NextFrame().Do()
	if m.FrameCount() != 3 || m.FrameIndex() != 1 {
		t.Fatalf("got %v frames at %v, expected 3 frames at 1", m.FrameCount(), m.FrameIndex())
	}
	m.NewFrame().Do()
	if m.FrameCount() != 4 || m.FrameIndex() != 3 {
		t.Fatalf("NewFrame should append at the end, got %v frames at %v", m.FrameCount(), m.FrameIndex())
	}
	m.Toggle().Do()
	m.InsertFrame().Do()
	if m.FrameCount() != 5 || m.FrameIndex() != 4 || m.Frame().Empty() {
		t.Fatal("InsertFrame should duplicate the current frame after it")
	}
}

func TestClearAndDelete(t *testing.T) {
	m := newModel(t)
	if m.ClearFrame().Enabled() || m.DeleteFrame().Enabled() {
		t.Fatal("clear and delete should be disabled on a single blank frame")
	}
	m.Toggle().Do()
	m.ClearFrame().Do()
	if !m.Frame().Empty() {
		t.Fatal("clear left cells lit")
	}
	m.NewFrame().Do()
	m.DeleteFrame().Do()
	if m.FrameCount() != 1 {
		t.Fatalf("got %v frames, expected 1", m.FrameCount())
	}
}

func TestUndoRedo(t *testing.T) {
	m := newModel(t)
	m.Toggle().Do()
	m.NewFrame().Do()
	m.SetCursor(vectorscope.Cell{Row: 9, Col: 9})
	m.Toggle().Do()
	edited := m.Sequence()
	m.Undo().Do()
	m.Undo().Do()
	if m.FrameCount() != 1 {
		t.Fatalf("got %v frames after two undos, expected 1", m.FrameCount())
	}
	m.Redo().Do()
	m.Redo().Do()
	if !m.Sequence().Equal(edited) {
		t.Fatal("redo did not restore the edited sequence")
	}
	if m.Redo().Enabled() {
		t.Fatal("nothing left to redo")
	}
	m.Undo().Do()
	m.Toggle().Do()
	if m.CanRedo() {
		t.Fatal("a new edit should clear the redo stack")
	}
}

func TestPaintStrokeUndoesInOneStep(t *testing.T) {
	m := newModel(t)
	m.Toggle().Do()
	for i := 1; i < 8; i++ {
		m.SetCursor(vectorscope.Cell{Row: 0, Col: i})
		m.Paint().Do()
	}
	m.Undo().Do()
	if g := m.Frame(); g.Count() != 1 {
		t.Fatalf("got %v lit cells after undoing the stroke, expected 1", g.Count())
	}
}

func TestUndoIsBounded(t *testing.T) {
	m := newModel(t)
	for i := 0; i < 300; i++ {
		m.Toggle().Do()
	}
	n := 0
	for m.CanUndo() {
		m.Undo().Do()
		n++
	}
	if n >= 300 || n == 0 {
		t.Fatalf("undid %v steps, expected the history to be bounded", n)
	}
}

func TestSaveLoadAndExport(t *testing.T) {
	dir := t.TempDir()
	m := newModel(t)
	m.SetCursor(vectorscope.Cell{Row: 4, Col: 4})
	m.Toggle().Do()
	m.NewFrame().Do()
	path := filepath.Join(dir, "anim.wcv")
	if !m.SaveAs(path) {
		t.Fatalf("save failed: %v", m.Alerts().Items())
	}
	if m.ChangedSinceSave() || m.FilePath() != path {
		t.Fatal("save should reset the changed flag and set the file path")
	}
	for _, video := range []bool{false, true} {
		m.SetCursor(vectorscope.Cell{})
		ok := false
		out := m.ExportPath(video)
		if video {
			ok = m.ExportVideo(out)
		} else {
			m.PrevFrame().Do()
			ok = m.ExportImage(out)
		}
		if !ok {
			t.Fatalf("export failed: %v", m.Alerts().Items())
		}
		if _, err := os.Stat(out); err != nil {
			t.Fatalf("export did not write %v: %v", out, err)
		}
	}
	if got := m.ExportPath(true); got != filepath.Join(dir, "anim_video.wav") {
		t.Fatalf("got export path %v", got)
	}
	other := newModel(t)
	if !other.Load(path) {
		t.Fatalf("load failed: %v", other.Alerts().Items())
	}
	if !other.Sequence().Equal(m.Sequence()) || other.ChangedSinceSave() {
		t.Fatal("loaded session differs from the saved one")
	}
}

func TestExportBlankImageWarns(t *testing.T) {
	m := newModel(t)
	out := filepath.Join(t.TempDir(), "blank.wav")
	if m.ExportImage(out) {
		t.Fatal("exporting a blank frame should not succeed")
	}
	if a, _ := m.Alerts().Top(); a.Priority != editor.Warning {
		t.Fatalf("got alert %+v, expected a warning", a)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatal("a blank export wrote a file")
	}
}

func TestLoadErrorsBecomeAlerts(t *testing.T) {
	m := newModel(t)
	m.Toggle().Do()
	before := m.Sequence()
	if m.Load(filepath.Join(t.TempDir(), "missing.wcv")) {
		t.Fatal("loading a missing file should fail")
	}
	if m.ReadProject(bytes.NewBufferString("format: nope")) {
		t.Fatal("reading a corrupt project should fail")
	}
	if a, _ := m.Alerts().Top(); a.Priority != editor.Error {
		t.Fatalf("got alert %+v, expected an error", a)
	}
	if !m.Sequence().Equal(before) {
		t.Fatal("a failed load changed the session")
	}
	m.Alerts().Dismiss()
	if _, ok := m.Alerts().Top(); ok {
		t.Fatal("dismiss left alerts behind")
	}
}

func TestProjectStreamRoundTrip(t *testing.T) {
	m := newModel(t)
	m.Toggle().Do()
	var buf bytes.Buffer
	if !m.WriteProject(&buf) {
		t.Fatal("WriteProject failed")
	}
	other := newModel(t)
	if !other.ReadProject(&buf) || !other.Sequence().Equal(m.Sequence()) {
		t.Fatal("project did not round-trip through a stream")
	}
	other.Undo().Do()
	if !other.Frame().Empty() {
		t.Fatal("loading should be undoable")
	}
}
