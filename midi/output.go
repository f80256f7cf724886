package midi

import (
	"fmt"
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

// Out is a connection to a single MIDI output port. A nil or unconnected Out
// drops commands silently, so the engine can run without any synth attached.
type Out struct {
	mu       sync.Mutex
	port     drivers.Out
	portName string
	send     func(msg gomidi.Message) error
}

// NewOut creates an unconnected output.
func NewOut() *Out {
	return &Out{}
}

// ListPorts returns the names of all available MIDI output ports.
func ListPorts() []string {
	outs := gomidi.GetOutPorts()
	names := make([]string, len(outs))
	for i, out := range outs {
		names[i] = out.String()
	}
	return names
}

// Connect opens the output port with the given name.
func (o *Out) Connect(name string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var found drivers.Out
	for _, out := range gomidi.GetOutPorts() {
		if out.String() == name {
			found = out
			break
		}
	}
	if found == nil {
		return fmt.Errorf("output port %q not found", name)
	}

	send, err := gomidi.SendTo(found)
	if err != nil {
		return fmt.Errorf("open port %q: %w", name, err)
	}

	o.port = found
	o.portName = name
	o.send = send
	return nil
}

// Disconnect drops the current port connection. Safe to call when not
// connected.
func (o *Out) Disconnect() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.port = nil
	o.portName = ""
	o.send = nil
}

// Connected reports whether a port is open, and its name.
func (o *Out) Connected() (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.portName, o.send != nil
}

// Send forwards a single command to the connected port. Commands are sent in
// call order; the caller is responsible for delivering them in order.
func (o *Out) Send(cmd Command) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.send == nil {
		return nil
	}
	return o.send(message(cmd))
}

// SendAll forwards a batch of commands, stopping at the first error.
func (o *Out) SendAll(cmds []Command) error {
	for _, cmd := range cmds {
		if err := o.Send(cmd); err != nil {
			return fmt.Errorf("send %s: %w", cmd, err)
		}
	}
	return nil
}

// Close shuts down the MIDI driver. Call once at program exit.
func (o *Out) Close() {
	o.Disconnect()
	gomidi.CloseDriver()
}

// message converts a Command to its wire representation.
func message(cmd Command) gomidi.Message {
	switch cmd.Type {
	case NoteOn:
		return gomidi.NoteOn(cmd.Channel, cmd.Note, cmd.Velocity)
	case NoteOff:
		return gomidi.NoteOff(cmd.Channel, cmd.Note)
	case ProgramChange:
		return gomidi.ProgramChange(cmd.Channel, cmd.Program)
	}
	return nil
}
