package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// PortEvent is emitted when the synth output port appears or disappears.
type PortEvent struct {
	Type PortEventType
	Name string
}

type PortEventType int

const (
	PortConnected PortEventType = iota
	PortDisconnected
)

// Port names never auto-connected (virtual/system loopback ports).
var excludedPortPatterns = []string{"midi through", "through port", "dummy"}

// Watcher polls the available MIDI output ports and keeps an Out connected.
// It prefers a configured port name; with no preference it takes the first
// non-excluded port. Hot-plug and hot-unplug are handled transparently and
// reported on Events so the caller can silence stuck notes on unplug.
type Watcher struct {
	out       *Out
	preferred string

	mu       sync.Mutex
	events   chan PortEvent
	pollRate time.Duration
}

// NewWatcher creates a watcher managing the given output. preferred may be
// empty.
func NewWatcher(out *Out, preferred string) *Watcher {
	return &Watcher{
		out:       out,
		preferred: preferred,
		events:    make(chan PortEvent, 16),
		pollRate:  time.Second,
	}
}

// Events returns the connect/disconnect event channel.
func (w *Watcher) Events() <-chan PortEvent {
	return w.events
}

// Run starts the polling loop (blocking - run in goroutine).
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.pollRate)
	defer ticker.Stop()

	w.scan()

	for {
		select {
		case <-ctx.Done():
			close(w.events)
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *Watcher) scan() {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Enumerate with a timeout: CoreMIDI can hang.
	ch := make(chan []string, 1)
	go func() {
		outs := gomidi.GetOutPorts()
		names := make([]string, len(outs))
		for i, o := range outs {
			names[i] = o.String()
		}
		ch <- names
	}()

	var names []string
	select {
	case names = <-ch:
	case <-time.After(3 * time.Second):
		return
	}

	current, connected := w.out.Connected()

	if connected {
		for _, n := range names {
			if n == current {
				return // still there
			}
		}
		// Port disappeared.
		w.out.Disconnect()
		w.events <- PortEvent{Type: PortDisconnected, Name: current}
		return
	}

	cand, ok := w.pick(names)
	if !ok {
		return
	}
	if err := w.out.Connect(cand); err != nil {
		return // retry on next scan
	}
	w.events <- PortEvent{Type: PortConnected, Name: cand}
}

func (w *Watcher) pick(names []string) (string, bool) {
	var usable []string
	for _, n := range names {
		if !excluded(n) {
			usable = append(usable, n)
		}
	}
	if w.preferred != "" {
		for _, n := range usable {
			if strings.Contains(strings.ToLower(n), strings.ToLower(w.preferred)) {
				return n, true
			}
		}
		return "", false
	}
	if len(usable) > 0 {
		return usable[0], true
	}
	return "", false
}

func excluded(name string) bool {
	name = strings.ToLower(name)
	for _, pat := range excludedPortPatterns {
		if strings.Contains(name, pat) {
			return true
		}
	}
	return false
}
