// Package tui hosts a knob widget in the terminal: mouse events become
// pointer events for the dispatcher, and the render state is drawn as a
// character-cell dial.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/knob/cmd/knobsim/internal/config"
	"github.com/go-drift/knob/pkg/engine"
	"github.com/go-drift/knob/pkg/gestures"
	"github.com/go-drift/knob/pkg/graphics"
	"github.com/go-drift/knob/pkg/knob"
	"github.com/go-drift/knob/pkg/layout"
	"github.com/go-drift/knob/pkg/widgets"
)

// cellAspect compensates for terminal cells being roughly twice as tall
// as they are wide: one cell maps to 1x2 logical pixels.
const cellAspect = 2.0

// mousePointerID identifies the terminal's single mouse pointer.
const mousePointerID = 1

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(34)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(11)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	rimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	markStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// status collects notifications across Update calls. The tea model is a
// value type, so the knob callbacks write through this shared pointer.
type status struct {
	lastInput  string
	lastChange string
}

// Model hosts one knob render tree behind a pointer dispatcher.
type Model struct {
	dispatcher *engine.Dispatcher
	target     knob.Target
	status     *status
	cfg        *config.Config
	diameter   float64
	pressed    bool
}

// NewModel mounts a knob built from cfg.
func NewModel(cfg *config.Config) Model {
	st := &status{}
	w := widgets.Knob{
		Value:     cfg.Knob.Value,
		Min:       cfg.Knob.Min,
		Max:       cfg.Knob.Max,
		Divisions: cfg.Knob.Divisions,
		Diameter:  cfg.Knob.Diameter,
		OnInput: func(e knob.InputEvent) {
			st.lastInput = fmt.Sprintf("%.4f -> %.4f", e.Old, e.New)
		},
		OnChange: func(e knob.ChangeEvent) {
			st.lastChange = fmt.Sprintf("%.4f -> %.4f", e.Initial, e.Final)
		},
	}

	ro := w.CreateRenderObject()
	diameter := cfg.Knob.Diameter
	ro.Layout(layout.Tight(graphics.Size{Width: diameter, Height: diameter}), false)

	m := Model{
		dispatcher: engine.NewDispatcher(ro),
		target:     ro.(knob.Target),
		status:     st,
		cfg:        cfg,
		diameter:   diameter,
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and mouse input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.target.State().SetValue(m.cfg.Knob.Value)
		case "left", "h":
			m.nudge(-1)
		case "right", "l":
			m.nudge(1)
		}
	case tea.MouseMsg:
		m.handleMouse(tea.MouseEvent(msg))
	}
	return m, nil
}

// nudge turns the knob by one division step, or a sixteenth of a turn
// when unquantized.
func (m Model) nudge(direction float64) {
	step := 1.0 / 16
	if d := m.target.State().Divisions(); d >= 2 {
		step = 1.0 / float64(d)
	}
	state := m.target.State()
	state.SetValue(state.Value() + direction*step)
}

// handleMouse maps a terminal mouse event onto the pointer pipeline.
// Motion is only forwarded while the button is held, matching how a
// touch surface reports contact.
func (m *Model) handleMouse(ev tea.MouseEvent) {
	position := graphics.Offset{
		X: float64(ev.X - canvasStyle.GetPaddingLeft()),
		Y: float64(ev.Y-canvasStyle.GetPaddingTop()) * cellAspect,
	}

	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft {
			return
		}
		m.pressed = true
		m.dispatch(position, gestures.PointerPhaseDown, gestures.ButtonPrimary)
	case tea.MouseActionMotion:
		if !m.pressed {
			return
		}
		m.dispatch(position, gestures.PointerPhaseMove, gestures.ButtonPrimary)
	case tea.MouseActionRelease:
		if !m.pressed {
			return
		}
		m.pressed = false
		m.dispatch(position, gestures.PointerPhaseUp, 0)
	}
}

func (m *Model) dispatch(position graphics.Offset, phase gestures.PointerPhase, buttons gestures.PointerButton) {
	m.dispatcher.HandlePointer(gestures.PointerEvent{
		PointerID: mousePointerID,
		Position:  position,
		Phase:     phase,
		Kind:      gestures.PointerKindMouse,
		Buttons:   buttons,
	})
}

// View draws the dial and a stats panel side by side.
func (m Model) View() string {
	canvas := canvasStyle.Render(m.drawDial())

	state := m.target.State()
	var b strings.Builder
	b.WriteString(headerStyle.Render("knobsim"))
	b.WriteString("\n")
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	row("value", fmt.Sprintf("%.4f turns", state.Value()))
	row("rotation", fmt.Sprintf("%.1f deg", state.Rotation()*180/math.Pi))
	row("bounds", formatBounds(state.Min(), state.Max()))
	if d := state.Divisions(); d >= 2 {
		row("divisions", fmt.Sprintf("%d", d))
	} else {
		row("divisions", "none")
	}
	if m.status.lastInput != "" {
		b.WriteString(labelStyle.Render("input"))
		b.WriteString(eventStyle.Render(m.status.lastInput))
		b.WriteString("\n")
	}
	if m.status.lastChange != "" {
		b.WriteString(labelStyle.Render("change"))
		b.WriteString(eventStyle.Render(m.status.lastChange))
		b.WriteString("\n")
	}
	stats := statsStyle.Render(b.String())

	view := lipgloss.JoinHorizontal(lipgloss.Top, canvas, stats)
	help := helpStyle.Render("drag the dial with the mouse · left/right nudge · r reset · q quit")
	return view + "\n" + help
}

// drawDial renders the knob as a rune grid, one cell per 1x2 logical
// pixels.
func (m Model) drawDial() string {
	cols := int(m.diameter)
	rows := int(m.diameter / cellAspect)
	radius := m.diameter / 2
	center := graphics.Offset{X: radius, Y: radius}

	// Indicator direction for the current rotation, zero pointing up.
	rotation := m.target.State().Rotation()
	dirX := math.Sin(rotation)
	dirY := -math.Cos(rotation)

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := graphics.Offset{
				X: float64(col) + 0.5,
				Y: (float64(row) + 0.5) * cellAspect,
			}
			b.WriteString(m.dialCell(p, center, radius, dirX, dirY))
		}
		if row < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) dialCell(p, center graphics.Offset, radius, dirX, dirY float64) string {
	dx := p.X - center.X
	dy := p.Y - center.Y
	dist := math.Hypot(dx, dy)

	// Distance along and across the indicator ray.
	along := dx*dirX + dy*dirY
	across := math.Abs(dx*dirY - dy*dirX)
	if along > radius*0.15 && along < radius*0.85 && across < 1.0 {
		return markStyle.Render("█")
	}
	if math.Abs(dist-radius) < 1.1 {
		return rimStyle.Render("·")
	}
	if dist < 1.2 {
		return rimStyle.Render("+")
	}
	return " "
}

func formatBounds(min, max float64) string {
	format := func(v float64, open string) string {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return open
		}
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("[%s, %s]", format(min, "-inf"), format(max, "+inf"))
}

// Run starts the TUI program with mouse tracking enabled.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
