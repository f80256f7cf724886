package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go-guitar/guitar"
	"go-guitar/midi"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "strum":
		strum()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI Test Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list           - List all MIDI output ports")
	fmt.Println("  strum [index]  - Strum the open strings through a port (default 0)")
}

func listPorts() {
	ports := midi.ListPorts()
	if len(ports) == 0 {
		fmt.Println("No MIDI output ports found")
		return
	}
	fmt.Println("=== MIDI Output Ports ===")
	for i, name := range ports {
		fmt.Printf("  %d: %s\n", i, name)
	}
}

// strum plays the open strings of the standard tuning, low to high, so you
// can hear whether a port is wired to anything.
func strum() {
	ports := midi.ListPorts()
	if len(ports) == 0 {
		fmt.Println("No MIDI output ports found")
		return
	}

	index := 0
	if len(os.Args) > 2 {
		i, err := strconv.Atoi(os.Args[2])
		if err != nil || i < 0 || i >= len(ports) {
			fmt.Printf("bad port index %q\n", os.Args[2])
			return
		}
		index = i
	}

	out := midi.NewOut()
	defer out.Close()
	if err := out.Connect(ports[index]); err != nil {
		fmt.Printf("connect: %v\n", err)
		return
	}
	fmt.Printf("Strumming through %s\n", ports[index])

	tuning := guitar.Standard
	for s := tuning.StringCount() - 1; s >= 0; s-- {
		note := tuning.OpenNote(s)
		fmt.Printf("  %s (%d)\n", guitar.NoteName(note), note)
		out.Send(midi.Command{Type: midi.NoteOn, Note: note, Velocity: 100})
		time.Sleep(300 * time.Millisecond)
		out.Send(midi.Command{Type: midi.NoteOff, Note: note})
	}
}
