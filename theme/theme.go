package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Open     rune // ─ open string segment
	Fret     rune // │ fret wire
	Held     rune // ○ fret held but not sounding
	Sounding rune // ● fret currently sounding
	Nut      rune // ║ fret zero
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Open:     '─',
			Fret:     '│',
			Held:     '○',
			Sounding: '●',
			Nut:      '║',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG       = 0.0 // near black
	RoleMuted    = 0.2 // dark wood
	RoleNeck     = 0.4 // fretboard
	RoleFG       = 0.6 // brass (readable)
	RoleHeld     = 0.7
	RoleAccent   = 0.8
	RoleSounding = 1.0 // string shine
)

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Neck() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleNeck))
}

func (t *Theme) Held() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleHeld))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Sounding() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleSounding))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
