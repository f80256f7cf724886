package guitar

import (
	"fmt"

	"go-guitar/midi"
)

// EventKind tags a raw key event.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
)

// Event is a raw key event from the input source.
type Event struct {
	Kind EventKind
	Key  Key
}

// Octave shift bounds, in octaves.
const (
	MinOctave = -3
	MaxOctave = 3
)

// Engine turns key events into MIDI commands. Each string is strictly
// monophonic: when several frets are held on one string, the highest fret
// sounds, like fretting up the neck on a real guitar. Strings are independent,
// so keys held across strings form chords with no special casing.
//
// The engine is single-threaded: callers must deliver events one at a time
// and forward the returned commands in order before the next event.
type Engine struct {
	keymap   *KeyMap
	tuning   Tuning
	board    *Fretboard
	velocity uint8
	channel  uint8
	program  uint8
	octave   int
}

// NewEngine creates an engine over the given layout and tuning. The tuning
// must cover every string the key map addresses.
func NewEngine(km *KeyMap, tuning Tuning, velocity uint8) (*Engine, error) {
	if tuning.StringCount() != km.StringCount() {
		return nil, fmt.Errorf("tuning %q has %d strings, key map has %d",
			tuning.Name, tuning.StringCount(), km.StringCount())
	}
	return &Engine{
		keymap:   km,
		tuning:   tuning,
		board:    NewFretboard(km.StringCount()),
		velocity: velocity,
	}, nil
}

// Board exposes the fretboard for read-only display access.
func (e *Engine) Board() *Fretboard {
	return e.board
}

// Tuning returns the active tuning.
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// Program returns the current MIDI program number.
func (e *Engine) Program() uint8 {
	return e.program
}

// Octave returns the current octave shift.
func (e *Engine) Octave() int {
	return e.octave
}

// Process dispatches a raw key event and returns the commands to forward to
// the synth, in emission order.
func (e *Engine) Process(ev Event) []midi.Command {
	switch ev.Kind {
	case KeyDown:
		return e.ProcessKeyDown(ev.Key)
	case KeyUp:
		return e.ProcessKeyUp(ev.Key)
	}
	return nil
}

// ProcessKeyDown handles a key press. Unmapped keys and key repeats (the fret
// is already held) are no-ops.
func (e *Engine) ProcessKeyDown(key Key) []midi.Command {
	coord, ok := e.keymap.CoordinateFor(key)
	if !ok {
		return nil
	}
	st := &e.board.strings[coord.String]
	if st.held[coord.Fret] {
		return nil // key repeat
	}
	st.held[coord.Fret] = true

	want := e.board.highestHeld(coord.String)
	if want == st.sounding {
		return nil // pressed below the sounding fret
	}

	var cmds []midi.Command
	if st.sounding >= 0 {
		cmds = append(cmds, e.noteOff(st.note))
	}
	note := e.noteFor(coord.String, want)
	cmds = append(cmds, e.noteOn(note))
	st.sounding = want
	st.note = note
	return cmds
}

// ProcessKeyUp handles a key release. Unmapped keys and releases of unheld
// frets are no-ops. Releasing a non-sounding fret updates the held set only.
func (e *Engine) ProcessKeyUp(key Key) []midi.Command {
	coord, ok := e.keymap.CoordinateFor(key)
	if !ok {
		return nil
	}
	st := &e.board.strings[coord.String]
	if !st.held[coord.Fret] {
		return nil
	}
	delete(st.held, coord.Fret)

	want := e.board.highestHeld(coord.String)
	if want == st.sounding {
		return nil
	}
	if st.sounding < 0 {
		// Nothing sounding (silenced by an instrument or tuning switch):
		// releases only drain the held set, they never start a note.
		return nil
	}

	cmds := []midi.Command{e.noteOff(st.note)}
	if want >= 0 {
		note := e.noteFor(coord.String, want)
		cmds = append(cmds, e.noteOn(note))
		st.sounding = want
		st.note = note
	} else {
		st.sounding = -1
	}
	return cmds
}

// SetProgram switches the instrument. Out-of-range programs are rejected and
// leave the engine untouched. Every sounding string is silenced before the
// program change so the old timbre cannot bleed into the new one; held keys
// stay held and re-arbitrate on the next press.
func (e *Engine) SetProgram(program int) ([]midi.Command, error) {
	if program < 0 || program > 127 {
		return nil, fmt.Errorf("program %d out of range 0-127", program)
	}
	cmds := e.Silence()
	cmds = append(cmds, midi.Command{
		Type:    midi.ProgramChange,
		Channel: e.channel,
		Program: uint8(program),
	})
	e.program = uint8(program)
	return cmds, nil
}

// SetInstrument switches the instrument by General MIDI name.
func (e *Engine) SetInstrument(name string) ([]midi.Command, error) {
	program, ok := ProgramByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown instrument %q", name)
	}
	return e.SetProgram(int(program))
}

// SetTuning swaps the tuning, silencing all sounding notes first so no string
// keeps ringing at a stale pitch.
func (e *Engine) SetTuning(tuning Tuning) ([]midi.Command, error) {
	if tuning.StringCount() != e.board.StringCount() {
		return nil, fmt.Errorf("tuning %q has %d strings, board has %d",
			tuning.Name, tuning.StringCount(), e.board.StringCount())
	}
	cmds := e.Silence()
	e.tuning = tuning
	return cmds, nil
}

// ShiftOctave moves the octave shift by delta, staying within
// [MinOctave, MaxOctave]. Reports whether the shift changed. Sounding notes
// keep their pitch; the shift applies from the next note-on.
func (e *Engine) ShiftOctave(delta int) bool {
	next := e.octave + delta
	if next < MinOctave || next > MaxOctave {
		return false
	}
	e.octave = next
	return true
}

// Silence emits note-off for every sounding string and clears the sounding
// state. Held keys are untouched. Used on instrument change, retune,
// output-port loss, and shutdown.
func (e *Engine) Silence() []midi.Command {
	var cmds []midi.Command
	for s := range e.board.strings {
		st := &e.board.strings[s]
		if st.sounding >= 0 {
			cmds = append(cmds, e.noteOff(st.note))
			st.sounding = -1
		}
	}
	return cmds
}

// noteFor computes the pitch of a fret on a string with the octave shift
// applied, clamped into the MIDI range.
func (e *Engine) noteFor(s, fret int) uint8 {
	n := int(e.tuning.OpenNote(s)) + fret + e.octave*12
	if n < 0 {
		n = 0
	}
	if n > 127 {
		n = 127
	}
	return uint8(n)
}

func (e *Engine) noteOn(note uint8) midi.Command {
	return midi.Command{Type: midi.NoteOn, Channel: e.channel, Note: note, Velocity: e.velocity}
}

func (e *Engine) noteOff(note uint8) midi.Command {
	return midi.Command{Type: midi.NoteOff, Channel: e.channel, Note: note}
}
