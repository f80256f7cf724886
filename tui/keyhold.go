package tui

import (
	"sort"
	"time"

	"go-guitar/guitar"
)

// KeyHold reconstructs key releases from terminal input. Terminals report key
// presses (and auto-repeats) but never releases, so a key counts as held while
// presses keep arriving and as released once no press has been seen for the
// gate interval. The gate must be longer than the terminal's repeat period.
type KeyHold struct {
	gate time.Duration
	last map[guitar.Key]time.Time
}

func NewKeyHold(gate time.Duration) *KeyHold {
	return &KeyHold{
		gate: gate,
		last: make(map[guitar.Key]time.Time),
	}
}

// Press records a key press at the given time. Returns true when the key was
// not already held (a fresh KeyDown); repeats just refresh the hold.
func (h *KeyHold) Press(key guitar.Key, now time.Time) bool {
	_, held := h.last[key]
	h.last[key] = now
	return !held
}

// Held reports whether the key is currently held.
func (h *KeyHold) Held(key guitar.Key) bool {
	_, ok := h.last[key]
	return ok
}

// Expire returns the keys whose hold lapsed before now, in a stable order,
// and forgets them. Call on every tick.
func (h *KeyHold) Expire(now time.Time) []guitar.Key {
	var expired []guitar.Key
	for key, seen := range h.last {
		if now.Sub(seen) >= h.gate {
			expired = append(expired, key)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i] < expired[j] })
	for _, key := range expired {
		delete(h.last, key)
	}
	return expired
}

// ReleaseAll forgets every held key and returns them in a stable order. Used
// when focus is lost or on shutdown.
func (h *KeyHold) ReleaseAll() []guitar.Key {
	var keys []guitar.Key
	for key := range h.last {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	h.last = make(map[guitar.Key]time.Time)
	return keys
}
