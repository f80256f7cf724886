// Package chord names the chord formed by a set of sounding MIDI notes.
// Display only: the note engine never depends on it.
package chord

import "sort"

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// quality maps the interval pattern above a root (semitones mod 12, sorted,
// root excluded) to a chord suffix.
type quality struct {
	intervals []int
	suffix    string
}

// Checked in order: larger templates first so a 7th chord is not reported as
// its triad.
var qualities = []quality{
	{[]int{3, 6, 9}, "dim7"},
	{[]int{3, 6, 10}, "m7b5"},
	{[]int{3, 7, 10}, "m7"},
	{[]int{3, 7, 11}, "mMaj7"},
	{[]int{4, 7, 10}, "7"},
	{[]int{4, 7, 11}, "maj7"},
	{[]int{4, 8, 10}, "aug7"},
	{[]int{3, 7, 9}, "m6"},
	{[]int{4, 7, 9}, "6"},
	{[]int{2, 4, 7}, "add9"},
	{[]int{4, 7}, ""},
	{[]int{3, 7}, "m"},
	{[]int{3, 6}, "dim"},
	{[]int{4, 8}, "aug"},
	{[]int{2, 7}, "sus2"},
	{[]int{5, 7}, "sus4"},
	{[]int{7}, "5"},
}

// Detect names the chord formed by the given notes. Octaves and doublings are
// ignored. The lowest note is tried as root first, so inversions resolve to
// the bass when ambiguous. Partial matches (one extra color note) are
// reported with a "(partial)" marker, mirroring loose left-hand voicings.
func Detect(notes []uint8) (string, bool) {
	classes, bass := pitchClasses(notes)
	if len(classes) < 2 {
		return "", false
	}

	if name, ok := match(classes, bass); ok {
		return name, true
	}

	// Drop one class at a time and retry: the removed note may be a passing
	// tone over a recognizable chord. The bass is never the dropped note.
	if len(classes) >= 4 {
		for skip := range classes {
			if classes[skip] == bass {
				continue
			}
			subset := make([]int, 0, len(classes)-1)
			for i, c := range classes {
				if i != skip {
					subset = append(subset, c)
				}
			}
			if name, ok := match(subset, bass); ok {
				return name + " (partial)", true
			}
		}
	}

	return "", false
}

// pitchClasses reduces notes to their distinct pitch classes and returns the
// class of the lowest note.
func pitchClasses(notes []uint8) ([]int, int) {
	if len(notes) == 0 {
		return nil, 0
	}
	lowest := notes[0]
	seen := make(map[int]bool)
	for _, n := range notes {
		seen[int(n)%12] = true
		if n < lowest {
			lowest = n
		}
	}
	classes := make([]int, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Ints(classes)
	return classes, int(lowest) % 12
}

// match tries every class as root, bass first, against the quality templates.
func match(classes []int, bass int) (string, bool) {
	roots := make([]int, 0, len(classes))
	for _, c := range classes {
		if c == bass {
			roots = append([]int{c}, roots...)
		} else {
			roots = append(roots, c)
		}
	}
	for _, root := range roots {
		intervals := make([]int, 0, len(classes)-1)
		for _, c := range classes {
			if c != root {
				intervals = append(intervals, ((c-root)%12+12)%12)
			}
		}
		sort.Ints(intervals)
		for _, q := range qualities {
			if equal(intervals, q.intervals) {
				return noteNames[root] + q.suffix, true
			}
		}
	}
	return "", false
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
