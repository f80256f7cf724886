package guitar

// Instrument is a General MIDI program with a display name.
type Instrument struct {
	Name    string
	Program uint8
}

// Instruments is the selectable instrument list, guitars first since this is
// a guitar. GM bank 0 program numbers.
var Instruments = []Instrument{
	{"Acoustic Guitar (nylon)", 24},
	{"Acoustic Guitar (steel)", 25},
	{"Electric Guitar (clean)", 26},
	{"Electric Guitar (jazz)", 27},
	{"Electric Guitar (muted)", 28},
	{"Overdriven Guitar", 29},
	{"Distortion Guitar", 30},
	{"Guitar Harmonics", 31},
	{"Acoustic Bass", 32},
	{"Electric Bass (finger)", 33},
	{"Electric Bass (pick)", 34},
	{"Piano", 0},
	{"Electric Piano", 4},
	{"Violin", 40},
	{"Trumpet", 56},
	{"Saxophone", 65},
	{"Flute", 73},
	{"Synth Lead", 80},
	{"Synth Pad", 88},
}

// ProgramByName resolves an instrument name to its program number.
func ProgramByName(name string) (uint8, bool) {
	for _, ins := range Instruments {
		if ins.Name == name {
			return ins.Program, true
		}
	}
	return 0, false
}

// NameByProgram returns the display name for a program number, or "" when the
// program is not in the list.
func NameByProgram(program uint8) string {
	for _, ins := range Instruments {
		if ins.Program == program {
			return ins.Name
		}
	}
	return ""
}
