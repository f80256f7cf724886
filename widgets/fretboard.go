package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-guitar/theme"
)

// CellState is the display state of one fret position.
type CellState int

const (
	CellIdle     CellState = iota
	CellHeld               // key down, not the sounding fret
	CellSounding           // producing the string's note
)

// Cell is one fret position on the rendered neck.
type Cell struct {
	Label string // key cap, e.g. "q"
	State CellState
}

// RenderNeck draws the fretboard, one row per string, highest-pitched string
// on top. labels carries the open-string names ("G", "D", ...), one per row.
func RenderNeck(rows [][]Cell, labels []string, th *theme.Theme) string {
	labelStyle := lipgloss.NewStyle().Foreground(th.FG()).Bold(true)
	wireStyle := lipgloss.NewStyle().Foreground(th.Muted())
	idleStyle := lipgloss.NewStyle().Foreground(th.Neck())
	heldStyle := lipgloss.NewStyle().Foreground(th.Held())
	soundStyle := lipgloss.NewStyle().Foreground(th.Sounding()).Bold(true)

	nut := wireStyle.Render(string(th.Symbols.Nut))
	wire := wireStyle.Render(string(th.Symbols.Fret))

	var lines []string
	for r, row := range rows {
		var line strings.Builder
		line.WriteString(labelStyle.Render(fmt.Sprintf("%2s ", labels[r])))
		line.WriteString(nut)
		for _, cell := range row {
			var s string
			switch cell.State {
			case CellSounding:
				s = soundStyle.Render(" " + strings.ToUpper(cell.Label) + " ")
			case CellHeld:
				s = heldStyle.Render(" " + strings.ToUpper(cell.Label) + " ")
			default:
				s = idleStyle.Render(" " + cell.Label + " ")
			}
			line.WriteString(s)
			line.WriteString(wire)
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
