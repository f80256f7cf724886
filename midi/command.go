package midi

import "fmt"

// MIDI status bytes
const (
	NoteOn        uint8 = 0x90
	NoteOff       uint8 = 0x80
	ProgramChange uint8 = 0xC0
)

// Command is a single MIDI command emitted by the engine.
// For NoteOn/NoteOff the Note field is used; for ProgramChange the Program
// field is used. Channel is the MIDI channel (0-15).
type Command struct {
	Type     uint8 // NoteOn, NoteOff, ProgramChange
	Channel  uint8
	Note     uint8
	Velocity uint8 // NoteOn only
	Program  uint8 // ProgramChange only
}

func (c Command) String() string {
	switch c.Type {
	case NoteOn:
		return fmt.Sprintf("note-on ch=%d note=%d vel=%d", c.Channel, c.Note, c.Velocity)
	case NoteOff:
		return fmt.Sprintf("note-off ch=%d note=%d", c.Channel, c.Note)
	case ProgramChange:
		return fmt.Sprintf("program-change ch=%d program=%d", c.Channel, c.Program)
	}
	return fmt.Sprintf("unknown type=0x%02x", c.Type)
}
