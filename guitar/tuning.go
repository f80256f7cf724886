package guitar

import "fmt"

// Tuning holds the open-string pitch of every string, low string index first,
// plus the number of playable frets. Immutable after construction; the engine
// validates string indexes against StringCount before lookup.
type Tuning struct {
	Name  string
	Open  []uint8 // MIDI note of each open string
	Frets int
}

// Named tunings for the 4-string layout. String index 0 is the top keyboard
// row (number row), matching the on-screen neck: G3 D3 A2 E2 in standard
// tuning.
var (
	Standard = Tuning{Name: "Standard", Open: []uint8{55, 50, 45, 40}, Frets: 10}
	DropD    = Tuning{Name: "Drop D", Open: []uint8{55, 50, 45, 38}, Frets: 10}
	OpenG    = Tuning{Name: "Open G", Open: []uint8{55, 50, 43, 38}, Frets: 10}
)

// Tunings lists the built-in tunings in menu order.
var Tunings = []Tuning{Standard, DropD, OpenG}

// TuningByName finds a built-in tuning.
func TuningByName(name string) (Tuning, bool) {
	for _, t := range Tunings {
		if t.Name == name {
			return t, true
		}
	}
	return Tuning{}, false
}

// OpenNote returns the MIDI note of the open string s.
func (t Tuning) OpenNote(s int) uint8 {
	return t.Open[s]
}

// StringCount returns the number of strings.
func (t Tuning) StringCount() int {
	return len(t.Open)
}

// FretCount returns the number of fret columns (fret 0 = open string).
func (t Tuning) FretCount() int {
	return t.Frets
}

// StringName returns the pitch name of the open string, without octave
// ("G", "D", ...), for display next to each row.
func (t Tuning) StringName(s int) string {
	return noteNames[t.Open[s]%12]
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName returns the full pitch name for a MIDI note, e.g. "E2" for 40.
func NoteName(note uint8) string {
	return fmt.Sprintf("%s%d", noteNames[note%12], int(note)/12-1)
}
