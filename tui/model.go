package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-guitar/chord"
	"go-guitar/debug"
	"go-guitar/guitar"
	"go-guitar/midi"
	"go-guitar/theme"
	"go-guitar/widgets"
)

// How often held keys are checked for expiry.
const tickInterval = 25 * time.Millisecond

type Model struct {
	Engine  *guitar.Engine
	KeyMap  *guitar.KeyMap
	Out     *midi.Out
	Watcher *midi.Watcher
	Theme   *theme.Theme

	hold       *KeyHold
	instrument int // index into guitar.Instruments
	tuning     int // index into guitar.Tunings
	portName   string
	quitting   bool
	lastErr    string
}

type tickMsg time.Time

type portEventMsg midi.PortEvent

func NewModel(engine *guitar.Engine, km *guitar.KeyMap, out *midi.Out, watcher *midi.Watcher, th *theme.Theme, gate time.Duration) Model {
	m := Model{
		Engine:  engine,
		KeyMap:  km,
		Out:     out,
		Watcher: watcher,
		Theme:   th,
		hold:    NewKeyHold(gate),
	}
	for i, ins := range guitar.Instruments {
		if ins.Program == engine.Program() {
			m.instrument = i
			break
		}
	}
	for i, t := range guitar.Tunings {
		if t.Name == engine.Tuning().Name {
			m.tuning = i
			break
		}
	}
	return m
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func listenForPorts(watcher *midi.Watcher) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-watcher.Events()
		if !ok {
			return nil
		}
		return portEventMsg(event)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), listenForPorts(m.Watcher))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.BlurMsg:
		// Terminal lost focus: release events for the held keys will never
		// arrive, so release everything now.
		for _, key := range m.hold.ReleaseAll() {
			m.send(m.Engine.ProcessKeyUp(key))
		}
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		for _, key := range m.hold.Expire(now) {
			m.send(m.Engine.ProcessKeyUp(key))
		}
		return m, tick()

	case portEventMsg:
		event := midi.PortEvent(msg)
		if event.Type == midi.PortConnected {
			m.portName = event.Name
			debug.Log("midi", "connected to %s", event.Name)
			// Restate the instrument so the synth's program matches ours.
			if cmds, err := m.Engine.SetProgram(int(m.Engine.Program())); err == nil {
				m.send(cmds)
			}
		} else {
			debug.Log("midi", "lost %s", m.portName)
			m.portName = ""
			// Port is gone; clear sounding state so nothing is stuck when
			// the next port appears.
			m.Engine.Silence()
		}
		return m, listenForPorts(m.Watcher)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.quitting = true
		for _, key := range m.hold.ReleaseAll() {
			m.send(m.Engine.ProcessKeyUp(key))
		}
		m.send(m.Engine.Silence())
		return m, tea.Quit

	case "up", "down":
		delta := 1
		if msg.String() == "down" {
			delta = -1
		}
		n := len(guitar.Instruments)
		m.instrument = (m.instrument + delta + n) % n
		m.applyInstrument()

	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		if m.Engine.ShiftOctave(delta) {
			debug.Log("engine", "octave %+d", m.Engine.Octave())
		}

	case "tab":
		m.tuning = (m.tuning + 1) % len(guitar.Tunings)
		cmds, err := m.Engine.SetTuning(guitar.Tunings[m.tuning])
		if err != nil {
			m.lastErr = err.Error()
			break
		}
		m.send(cmds)
		debug.Log("engine", "tuning %s", guitar.Tunings[m.tuning].Name)

	default:
		key := guitar.Key(msg.String())
		if _, mapped := m.KeyMap.CoordinateFor(key); !mapped {
			break
		}
		if m.hold.Press(key, time.Now()) {
			m.send(m.Engine.ProcessKeyDown(key))
		}
	}
	return m, nil
}

// InstrumentName returns the name of the selected instrument.
func (m Model) InstrumentName() string {
	return guitar.Instruments[m.instrument].Name
}

func (m *Model) applyInstrument() {
	name := guitar.Instruments[m.instrument].Name
	cmds, err := m.Engine.SetInstrument(name)
	if err != nil {
		m.lastErr = err.Error()
		return
	}
	m.send(cmds)
	debug.Log("engine", "instrument %s", name)
}

// send forwards engine commands to the MIDI output, preserving their order.
func (m *Model) send(cmds []midi.Command) {
	if len(cmds) == 0 {
		return
	}
	for _, cmd := range cmds {
		debug.Log("cmd", "%s", cmd)
	}
	if err := m.Out.SendAll(cmds); err != nil {
		m.lastErr = err.Error()
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	chordStyle := lipgloss.NewStyle().Foreground(m.Theme.Sounding()).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cc4444"))

	tuning := m.Engine.Tuning()

	port := "no synth - connect a MIDI output"
	if m.portName != "" {
		port = m.portName
	}
	header := headerStyle.Render(fmt.Sprintf("go-guitar  %s  %s  octave %+d  %s",
		guitar.Instruments[m.instrument].Name, tuning.Name, m.Engine.Octave(), port))

	board := m.Engine.Board()
	rows := make([][]widgets.Cell, board.StringCount())
	labels := make([]string, board.StringCount())
	for s := 0; s < board.StringCount(); s++ {
		labels[s] = tuning.StringName(s)
		row := make([]widgets.Cell, m.KeyMap.FretCount())
		for f := 0; f < m.KeyMap.FretCount(); f++ {
			key, _ := m.KeyMap.KeyFor(guitar.Coord{String: s, Fret: f})
			cell := widgets.Cell{Label: string(key)}
			switch {
			case board.Sounding(s) == f:
				cell.State = widgets.CellSounding
			case m.hold.Held(key):
				cell.State = widgets.CellHeld
			}
			row[f] = cell
		}
		rows[s] = row
	}
	neck := widgets.RenderNeck(rows, labels, m.Theme)

	chordLine := ""
	if name, ok := chord.Detect(board.SoundingNotes()); ok {
		chordLine = chordStyle.Render("  " + name)
	} else if notes := board.SoundingNotes(); len(notes) > 0 {
		names := make([]string, len(notes))
		for i, n := range notes {
			names[i] = guitar.NoteName(n)
		}
		chordLine = dimStyle.Render("  " + strings.Join(names, " "))
	}

	help := dimStyle.Render("rows=strings cols=frets  up/down:instrument  left/right:octave  tab:tuning  esc:quit")

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(neck)
	out.WriteString("\n")
	out.WriteString(chordLine)
	out.WriteString("\n\n")
	out.WriteString(help)
	if m.lastErr != "" {
		out.WriteString("\n")
		out.WriteString(errStyle.Render(m.lastErr))
	}
	return out.String()
}
