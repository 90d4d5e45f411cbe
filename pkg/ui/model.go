// Package ui renders the interactive module editor in the terminal: a canvas
// panel showing the generated drawing, a cutlist panel beside it, and mouse
// plumbing that translates terminal cells into millimeter-space pointer
// events for the session store.
package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plankworks/cabd/pkg/config"
	"github.com/plankworks/cabd/pkg/cutlist"
	"github.com/plankworks/cabd/pkg/export"
	"github.com/plankworks/cabd/pkg/model"
	"github.com/plankworks/cabd/pkg/session"
)

// ConfigChangedMsg asks the editor to adopt a config that changed outside the
// session, typically via the file watcher.
type ConfigChangedMsg struct {
	Config model.ModuleConfig
}

// Model is the top-level bubbletea model for the editor.
type Model struct {
	store *session.Store

	width  int
	height int

	pointerInCanvas bool

	warning string
	status  string

	// Save-as prompt state.
	saveInput  textinput.Model
	showSave   bool
	configPath string

	quitting bool
}

// NewModel creates the editor model around an existing session store.
func NewModel(store *session.Store, configPath string) Model {
	ti := textinput.New()
	ti.Placeholder = config.DefaultFileName
	ti.CharLimit = 120
	ti.Width = 40

	m := Model{
		store:      store,
		saveInput:  ti,
		configPath: configPath,
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.showSave {
			return m.updateSavePrompt(msg)
		}
		return m.updateKeys(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case ConfigChangedMsg:
		m.store.SetConfig(msg.Config)
		m.status = "config reloaded from disk"
		return m, nil
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "v":
		m.store.SetMode(session.ModeSelect)
	case "m":
		m.store.SetMode(session.ModeMove)
	case "r":
		m.store.SetMode(session.ModeResize)

	case "u":
		if m.store.Undo() {
			m.status = "undo"
		} else {
			m.status = "nothing to undo"
		}
	case "U", "ctrl+r":
		if m.store.Redo() {
			m.status = "redo"
		} else {
			m.status = "nothing to redo"
		}

	case "c":
		panels := cutlist.GeneratePanels(m.store.Config())
		if err := clipboard.WriteAll(export.CutlistTSV(panels)); err != nil {
			m.status = fmt.Sprintf("copy failed: %v", err)
		} else {
			m.status = fmt.Sprintf("copied %d cutlist rows", len(panels))
		}

	case "w":
		m.saveInput.SetValue(m.configPath)
		m.saveInput.Focus()
		m.showSave = true
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateSavePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.showSave = false
		return m, nil
	case "enter":
		path := m.saveInput.Value()
		if path == "" {
			path = config.DefaultFileName
		}
		if err := config.Save(path, m.store.Config()); err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
		} else {
			m.status = "saved " + path
			m.configPath = path
		}
		m.showSave = false
		return m, nil
	}
	var cmd tea.Cmd
	m.saveInput, cmd = m.saveInput.Update(msg)
	return m, cmd
}

// canvasGeom returns the screen position and inner size of the canvas panel.
// Both View and the mouse handler derive it from the window size, so the
// mapping stays consistent without storing render-time state.
func (m Model) canvasGeom() (x, y, w, h int) {
	canvasOuterW := m.width * 6 / 10
	return 1, 1, canvasOuterW - 2, m.height - 3
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// The solver warns synchronously from the pointer handlers below, so the
	// callback must write into this call's model copy, the one returned.
	m.store.SetWarnFunc(func(s string) { m.warning = s })

	gx, gy, gw, gh := m.canvasGeom()
	cx := msg.X - gx
	cy := msg.Y - gy
	inside := cx >= 0 && cx < gw && cy >= 0 && cy < gh

	if !inside {
		if m.pointerInCanvas {
			m.store.OnPointerLeave()
			m.pointerInCanvas = false
		}
		return m, nil
	}
	m.pointerInCanvas = true
	vp := newViewport(m.store.Shapes(), gw-1, gh-1)
	p := vp.toMm(cx, cy)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.warning = ""
			m.store.OnPointerDown(p)
		}
	case tea.MouseActionMotion:
		m.store.OnPointerMove(p)
	case tea.MouseActionRelease:
		m.store.OnPointerUp(p)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width < 40 || m.height < 10 {
		return "window too small"
	}

	// Layout: canvas takes ~60% of the width, cutlist the rest, one status
	// line at the bottom. Panel borders eat two cells per axis.
	_, _, canvasW, canvasH := m.canvasGeom()
	listOuterW := m.width - (canvasW + 2)

	canvasContent, _ := renderCanvas(m.store.Shapes(), m.store.IsSelected, canvasW, canvasH)

	panels := cutlist.GeneratePanels(m.store.Config())
	listContent := RenderCutlist(panels, listOuterW-2)

	canvasPanel := FocusedPanelStyle.Width(canvasW).Height(canvasH).Render(canvasContent)
	listPanel := PanelStyle.Width(listOuterW - 2).Height(canvasH).Render(listContent)

	body := lipgloss.JoinHorizontal(lipgloss.Top, canvasPanel, listPanel)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar())
}

func (m Model) statusBar() string {
	if m.showSave {
		return StatusBarStyle.Width(m.width).Render("save to: " + m.saveInput.View())
	}

	left := RenderModeBadge(string(m.store.Mode()))
	hints := " v/m/r mode · drag to edit · u undo · U redo · c copy · w write · q quit"

	msg := m.status
	if m.warning != "" {
		msg = WarningStyle.Render("⚠ " + m.warning)
	}
	line := left + hints
	if msg != "" {
		line += "  " + msg
	}
	return StatusBarStyle.Width(m.width).Render(line)
}
