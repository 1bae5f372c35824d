// Package tui is the terminal front end of the editor: a bubbletea program
// drawing the current frame and mapping keys and mouse clicks to editor
// actions.
package tui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NaFo44/vectorscope"
	"github.com/NaFo44/vectorscope/config"
	"github.com/NaFo44/vectorscope/editor"
)

type Model struct {
	ed   *editor.Model
	keys config.KeyMap

	confirmQuit bool
	width       int
	height      int
}

const (
	gridTop   = 2 // lines above the grid: title and frame label
	cellWidth = 2
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	litStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	darkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	alertStyles = map[editor.AlertPriority]lipgloss.Style{
		editor.Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		editor.Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		editor.Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
)

func NewModel(ed *editor.Model, keys config.KeyMap) Model {
	return Model{ed: ed, keys: keys}
}

// Run starts the editor in the alternate screen with mouse support and
// blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ed.Alerts().Dismiss()
	action, ok := m.keys.Action(msg.String())
	if !ok {
		return m, nil
	}
	if action != "Quit" {
		m.confirmQuit = false
	}
	switch action {
	case "CursorUp":
		m.ed.MoveCursor(-1, 0)
	case "CursorDown":
		m.ed.MoveCursor(1, 0)
	case "CursorLeft":
		m.ed.MoveCursor(0, -1)
	case "CursorRight":
		m.ed.MoveCursor(0, 1)
	case "Toggle":
		m.ed.Toggle().Do()
	case "Paint":
		m.ed.Paint().Do()
	case "PrevFrame":
		m.ed.PrevFrame().Do()
	case "NextFrame":
		m.ed.NextFrame().Do()
	case "NewFrame":
		m.ed.NewFrame().Do()
	case "InsertFrame":
		m.ed.InsertFrame().Do()
	case "ClearFrame":
		m.ed.ClearFrame().Do()
	case "DeleteFrame":
		m.ed.DeleteFrame().Do()
	case "Undo":
		m.ed.Undo().Do()
	case "Redo":
		m.ed.Redo().Do()
	case "Save":
		m.ed.Save()
	case "ExportImage":
		m.ed.ExportImage(m.ed.ExportPath(false))
	case "ExportVideo":
		m.ed.ExportVideo(m.ed.ExportPath(true))
	case "Quit":
		if m.ed.ChangedSinceSave() && !m.confirmQuit {
			m.confirmQuit = true
			m.ed.Alerts().Add("Unsaved changes. Quit again to discard them.", editor.Warning)
			return m, nil
		}
		return m, tea.Quit
	default:
		log.Printf("unknown action %q bound to %q", action, msg.String())
	}
	return m, nil
}

// handleMouse toggles the clicked cell and paints while dragging, like a
// pen on the grid.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	c := vectorscope.Cell{Row: msg.Y - gridTop, Col: msg.X / cellWidth}
	if !c.InBounds() {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.ed.Alerts().Dismiss()
		m.ed.SetCursor(c)
		m.ed.Toggle().Do()
	case tea.MouseActionMotion:
		m.ed.SetCursor(c)
		m.ed.Paint().Do()
	}
}

func (m Model) View() string {
	var b strings.Builder
	name := m.ed.FilePath()
	if name == "" {
		name = editor.DefaultProjectFile
	}
	if m.ed.ChangedSinceSave() {
		name += " *"
	}
	b.WriteString(titleStyle.Render("vectorscope") + " " + name + "\n")
	b.WriteString(labelStyle.Render(FrameLabel(m.ed.FrameIndex(), m.ed.FrameCount())) + "\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	if a, ok := m.ed.Alerts().Top(); ok {
		b.WriteString(alertStyles[a.Priority].Render(a.Message))
	}
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

// FrameLabel returns the 1-based frame label shown above the grid.
func FrameLabel(index, count int) string {
	return fmt.Sprintf("Frame %d / %d", index+1, count)
}

func (m Model) renderGrid() string {
	var b strings.Builder
	g := m.ed.Frame()
	cursor := m.ed.Cursor()
	for r := 0; r < vectorscope.GridSize; r++ {
		for c := 0; c < vectorscope.GridSize; c++ {
			cell := vectorscope.Cell{Row: r, Col: c}
			var s string
			if g.Get(cell) {
				s = litStyle.Render("██")
			} else {
				s = darkStyle.Render("··")
			}
			if cell == cursor {
				s = cursorStyle.Render(s)
			}
			b.WriteString(s)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderHelp() string {
	var parts []string
	for _, a := range []struct{ action, text string }{
		{"Toggle", "toggle"},
		{"Paint", "paint"},
		{"PrevFrame", "prev"},
		{"NextFrame", "next"},
		{"NewFrame", "new"},
		{"ClearFrame", "clear"},
		{"DeleteFrame", "delete"},
		{"Undo", "undo"},
		{"Save", "save"},
		{"ExportImage", "image"},
		{"ExportVideo", "video"},
		{"Quit", "quit"},
	} {
		if h := m.keys.Hint(a.action); h != "" {
			parts = append(parts, h+":"+a.text)
		}
	}
	return helpStyle.Render(strings.Join(parts, "  "))
}
