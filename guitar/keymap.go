package guitar

import "fmt"

// Key identifies a physical key as reported by the input source
// (tea.KeyMsg.String() values: "a", "1", ";", ...).
type Key string

// Coord is a position on the neck.
type Coord struct {
	String int
	Fret   int
}

// DefaultColumns is the column-based QWERTY layout: each column is one fret
// across all four strings, top row to bottom row.
//
//	Fret:  0   1   2   3   4   5   6   7   8   9
//	G:     1   2   3   4   5   6   7   8   9   0
//	D:     q   w   e   r   t   y   u   i   o   p
//	A:     a   s   d   f   g   h   j   k   l   ;
//	E:     z   x   c   v   b   n   m   ,   .   /
var DefaultColumns = [][]Key{
	{"1", "q", "a", "z"},
	{"2", "w", "s", "x"},
	{"3", "e", "d", "c"},
	{"4", "r", "f", "v"},
	{"5", "t", "g", "b"},
	{"6", "y", "h", "n"},
	{"7", "u", "j", "m"},
	{"8", "i", "k", ","},
	{"9", "o", "l", "."},
	{"0", "p", ";", "/"},
}

// KeyMap is the bidirectional mapping between keys and neck coordinates.
// Built once at startup; lookups never fail at runtime, unmapped keys simply
// miss.
type KeyMap struct {
	byKey   map[Key]Coord
	byCoord map[Coord]Key
	strings int
	frets   int
}

// NewKeyMap builds a key map from per-fret columns. Every column must have
// one key per string. Duplicate keys and duplicate coordinates are
// configuration errors and fail construction.
func NewKeyMap(columns [][]Key, strings int) (*KeyMap, error) {
	km := &KeyMap{
		byKey:   make(map[Key]Coord),
		byCoord: make(map[Coord]Key),
		strings: strings,
		frets:   len(columns),
	}
	for fret, column := range columns {
		if len(column) != strings {
			return nil, fmt.Errorf("fret %d: %d keys for %d strings", fret, len(column), strings)
		}
		for s, key := range column {
			coord := Coord{String: s, Fret: fret}
			if prev, ok := km.byKey[key]; ok {
				return nil, fmt.Errorf("key %q assigned to both %v and %v", key, prev, coord)
			}
			km.byKey[key] = coord
			km.byCoord[coord] = key
		}
	}
	return km, nil
}

// DefaultKeyMap returns the map for the standard 4x10 layout.
func DefaultKeyMap() *KeyMap {
	km, err := NewKeyMap(DefaultColumns, 4)
	if err != nil {
		panic(err) // static layout, cannot fail
	}
	return km
}

// CoordinateFor resolves a key to its neck position.
func (km *KeyMap) CoordinateFor(key Key) (Coord, bool) {
	coord, ok := km.byKey[key]
	return coord, ok
}

// KeyFor returns the key bound to a coordinate. Display only; the engine
// never calls it.
func (km *KeyMap) KeyFor(coord Coord) (Key, bool) {
	key, ok := km.byCoord[coord]
	return key, ok
}

// StringCount returns the number of rows in the layout.
func (km *KeyMap) StringCount() int {
	return km.strings
}

// FretCount returns the number of columns in the layout.
func (km *KeyMap) FretCount() int {
	return km.frets
}
