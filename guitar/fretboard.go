package guitar

// stringState is the per-string playing state. held is every fret with its
// key physically down; sounding is the fret currently producing a note, -1
// for none. note remembers the MIDI note actually emitted for the sounding
// fret, so the matching note-off is exact even after an octave shift or
// range clamp.
type stringState struct {
	held     map[int]bool
	sounding int
	note     uint8
}

// Fretboard tracks the playing state of every string. Only the Engine
// mutates it; everything else reads through the accessors.
type Fretboard struct {
	strings []stringState
}

// NewFretboard creates an all-silent board.
func NewFretboard(strings int) *Fretboard {
	fb := &Fretboard{strings: make([]stringState, strings)}
	for i := range fb.strings {
		fb.strings[i] = stringState{held: make(map[int]bool), sounding: -1}
	}
	return fb
}

// Held reports whether the fret is physically held on string s.
func (fb *Fretboard) Held(s, fret int) bool {
	return fb.strings[s].held[fret]
}

// Sounding returns the sounding fret of string s, or -1.
func (fb *Fretboard) Sounding(s int) int {
	return fb.strings[s].sounding
}

// SoundingNote returns the emitted MIDI note of string s. Only meaningful
// when Sounding(s) >= 0.
func (fb *Fretboard) SoundingNote(s int) uint8 {
	return fb.strings[s].note
}

// SoundingNotes returns the notes of every sounding string, low string index
// first. Used by the display and the chord detector.
func (fb *Fretboard) SoundingNotes() []uint8 {
	var notes []uint8
	for _, st := range fb.strings {
		if st.sounding >= 0 {
			notes = append(notes, st.note)
		}
	}
	return notes
}

// StringCount returns the number of strings on the board.
func (fb *Fretboard) StringCount() int {
	return len(fb.strings)
}

// highestHeld returns the arbitration winner for string s: the highest held
// fret, or -1 when nothing is held.
func (fb *Fretboard) highestHeld(s int) int {
	best := -1
	for fret := range fb.strings[s].held {
		if fret > best {
			best = fret
		}
	}
	return best
}
