package guitar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-guitar/midi"
)

// newTestEngine builds an engine over the default 4x10 layout in standard
// tuning. String 0 is the G row ("1".."0"), so fret f is key digit f+1.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultKeyMap(), Standard, 100)
	require.NoError(t, err)
	return e
}

func noteOn(note uint8) midi.Command {
	return midi.Command{Type: midi.NoteOn, Note: note, Velocity: 100}
}

func noteOff(note uint8) midi.Command {
	return midi.Command{Type: midi.NoteOff, Note: note}
}

func TestOpenStringScenario(t *testing.T) {
	// Two-key layout on one string, open note 40: the walkthrough from the
	// engine's docs.
	km, err := NewKeyMap([][]Key{{"a"}, {"s"}}, 1)
	require.NoError(t, err)
	e, err := NewEngine(km, Tuning{Name: "test", Open: []uint8{40}, Frets: 2}, 100)
	require.NoError(t, err)

	assert.Equal(t, []midi.Command{noteOn(40)}, e.ProcessKeyDown("a"))
	assert.Equal(t, []midi.Command{noteOff(40), noteOn(41)}, e.ProcessKeyDown("s"))
	assert.Equal(t, []midi.Command{noteOff(41), noteOn(40)}, e.ProcessKeyUp("s"))
	assert.Equal(t, []midi.Command{noteOff(40)}, e.ProcessKeyUp("a"))
	assert.Equal(t, -1, e.Board().Sounding(0))
}

func TestHighestFretWins(t *testing.T) {
	e := newTestEngine(t)

	// Hold frets 2, 5, 3 on the G string in that order.
	assert.Equal(t, []midi.Command{noteOn(57)}, e.ProcessKeyDown("3"))
	assert.Equal(t, []midi.Command{noteOff(57), noteOn(60)}, e.ProcessKeyDown("6"))
	// Fret 3 is below the sounding fret 5: held, but silent.
	assert.Empty(t, e.ProcessKeyDown("4"))
	assert.Equal(t, 5, e.Board().Sounding(0))

	// Releasing the sounding fret falls back to the next-highest held fret.
	assert.Equal(t, []midi.Command{noteOff(60), noteOn(58)}, e.ProcessKeyUp("6"))
	assert.Equal(t, 3, e.Board().Sounding(0))

	// Releasing a non-sounding held fret changes nothing audible.
	assert.Empty(t, e.ProcessKeyUp("3"))
	assert.Equal(t, 3, e.Board().Sounding(0))

	assert.Equal(t, []midi.Command{noteOff(58)}, e.ProcessKeyUp("4"))
	assert.Equal(t, -1, e.Board().Sounding(0))
}

func TestMonophonyPerString(t *testing.T) {
	e := newTestEngine(t)

	// Walk a messy press/release sequence on one string and count active
	// notes after every event.
	keys := []Event{
		{KeyDown, "1"}, {KeyDown, "5"}, {KeyDown, "3"},
		{KeyUp, "5"}, {KeyDown, "8"}, {KeyUp, "1"},
		{KeyUp, "8"}, {KeyUp, "3"},
	}
	active := 0
	for _, ev := range keys {
		for _, cmd := range e.Process(ev) {
			switch cmd.Type {
			case midi.NoteOn:
				active++
			case midi.NoteOff:
				active--
			}
		}
		assert.LessOrEqual(t, active, 1, "after %v", ev)
		assert.GreaterOrEqual(t, active, 0, "after %v", ev)
	}
	assert.Equal(t, 0, active)
}

func TestChordAcrossStrings(t *testing.T) {
	e := newTestEngine(t)

	// Same column (fret 3) on the G and D strings: two independent note-ons,
	// no note-off in between.
	first := e.ProcessKeyDown("4")
	second := e.ProcessKeyDown("r")
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, noteOn(58), first[0])  // G3 + 3
	assert.Equal(t, noteOn(53), second[0]) // D3 + 3

	assert.ElementsMatch(t, []uint8{58, 53}, e.Board().SoundingNotes())
}

func TestNoteOffPrecedesNoteOn(t *testing.T) {
	e := newTestEngine(t)

	e.ProcessKeyDown("2")
	cmds := e.ProcessKeyDown("7")
	require.Len(t, cmds, 2)
	assert.Equal(t, midi.NoteOff, cmds[0].Type)
	assert.Equal(t, midi.NoteOn, cmds[1].Type)
	assert.Equal(t, uint8(56), cmds[0].Note)
	assert.Equal(t, uint8(61), cmds[1].Note)
}

func TestKeyRepeatAndStrayRelease(t *testing.T) {
	e := newTestEngine(t)

	require.Len(t, e.ProcessKeyDown("5"), 1)
	assert.Empty(t, e.ProcessKeyDown("5"), "key repeat must not retrigger")
	assert.Empty(t, e.ProcessKeyUp("9"), "release of unheld fret is a no-op")
	assert.Empty(t, e.ProcessKeyUp("enter"), "unmapped key is ignored")
	assert.Empty(t, e.ProcessKeyDown("space"), "unmapped key is ignored")
	assert.Equal(t, []midi.Command{noteOff(59)}, e.ProcessKeyUp("5"))
}

func TestProgramChangeSilencesSounding(t *testing.T) {
	e := newTestEngine(t)

	// Three strings sounding.
	e.ProcessKeyDown("4") // G string
	e.ProcessKeyDown("w") // D string
	e.ProcessKeyDown("z") // E string
	require.Len(t, e.Board().SoundingNotes(), 3)

	cmds, err := e.SetProgram(30)
	require.NoError(t, err)
	require.Len(t, cmds, 4)
	offs := 0
	for _, cmd := range cmds[:3] {
		if cmd.Type == midi.NoteOff {
			offs++
		}
	}
	assert.Equal(t, 3, offs, "one note-off per sounding string")
	assert.Equal(t, midi.ProgramChange, cmds[3].Type)
	assert.Equal(t, uint8(30), cmds[3].Program)
	assert.Equal(t, uint8(30), e.Program())

	// Sounding cleared, held untouched.
	assert.Empty(t, e.Board().SoundingNotes())
	assert.True(t, e.Board().Held(0, 3))

	// Releasing the stale keys stays silent.
	assert.Empty(t, e.ProcessKeyUp("4"))
	assert.Empty(t, e.ProcessKeyUp("w"))

	// A fresh press re-arbitrates normally.
	assert.Equal(t, []midi.Command{noteOn(59)}, e.ProcessKeyDown("5"))
}

func TestReleaseAfterSilenceWithLowerFretHeld(t *testing.T) {
	e := newTestEngine(t)

	// Two frets held on one string, then silenced by a program change.
	e.ProcessKeyDown("3")
	e.ProcessKeyDown("6")
	_, err := e.SetProgram(24)
	require.NoError(t, err)

	// Releasing the higher fret must not resurrect the lower one.
	assert.Empty(t, e.ProcessKeyUp("6"))
	assert.Empty(t, e.ProcessKeyUp("3"))
	assert.Equal(t, -1, e.Board().Sounding(0))
}

func TestProgramRange(t *testing.T) {
	e := newTestEngine(t)

	for _, p := range []int{-1, 128, 500} {
		_, err := e.SetProgram(p)
		assert.Error(t, err, "program %d", p)
	}
	assert.Equal(t, uint8(0), e.Program(), "rejected change must not stick")

	_, err := e.SetInstrument("Theremin")
	assert.Error(t, err)
}

func TestNoteClamping(t *testing.T) {
	km, err := NewKeyMap([][]Key{{"a"}, {"s"}, {"d"}, {"f"}, {"g"}}, 1)
	require.NoError(t, err)
	e, err := NewEngine(km, Tuning{Name: "high", Open: []uint8{125}, Frets: 5}, 100)
	require.NoError(t, err)

	cmds := e.ProcessKeyDown("g") // 125 + 4 = 129, clamped
	require.Len(t, cmds, 1)
	assert.Equal(t, uint8(127), cmds[0].Note)

	// The note-off matches the clamped pitch.
	assert.Equal(t, []midi.Command{noteOff(127)}, e.ProcessKeyUp("g"))
}

func TestOctaveShift(t *testing.T) {
	e := newTestEngine(t)

	assert.True(t, e.ShiftOctave(1))
	cmds := e.ProcessKeyDown("1")
	require.Len(t, cmds, 1)
	assert.Equal(t, uint8(67), cmds[0].Note, "G3 + 12")

	// Shifting while a note rings must not break its note-off.
	assert.True(t, e.ShiftOctave(-2))
	assert.Equal(t, []midi.Command{noteOff(67)}, e.ProcessKeyUp("1"))

	// Bounds.
	e2 := newTestEngine(t)
	for i := 0; i < MaxOctave; i++ {
		assert.True(t, e2.ShiftOctave(1))
	}
	assert.False(t, e2.ShiftOctave(1))
	assert.Equal(t, MaxOctave, e2.Octave())
}

func TestSetTuning(t *testing.T) {
	e := newTestEngine(t)

	e.ProcessKeyDown("z") // E string open-ish fret 0, note 40
	cmds, err := e.SetTuning(DropD)
	require.NoError(t, err)
	assert.Equal(t, []midi.Command{noteOff(40)}, cmds, "retune silences sounding notes")
	assert.Equal(t, "Drop D", e.Tuning().Name)

	// The stale key drains silently; the next press uses the new open note.
	assert.Empty(t, e.ProcessKeyUp("z"))
	assert.Equal(t, []midi.Command{noteOn(38)}, e.ProcessKeyDown("z"))

	_, err = e.SetTuning(Tuning{Name: "bad", Open: []uint8{40}, Frets: 10})
	assert.Error(t, err, "string count mismatch is a configuration error")
}

func TestEngineConstruction(t *testing.T) {
	_, err := NewEngine(DefaultKeyMap(), Tuning{Name: "short", Open: []uint8{40, 45}, Frets: 10}, 100)
	assert.Error(t, err)
}
