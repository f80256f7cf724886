package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"go-guitar/config"
	"go-guitar/debug"
	"go-guitar/guitar"
	"go-guitar/midi"
	"go-guitar/theme"
	"go-guitar/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("config: %v\n", err)
		os.Exit(1)
	}

	if cfg.Debug {
		if err := debug.Enable(); err != nil {
			fmt.Printf("debug log: %v\n", err)
		}
		defer debug.Disable()
	}

	tuning, ok := guitar.TuningByName(cfg.Tuning)
	if !ok {
		fmt.Printf("config: unknown tuning %q\n", cfg.Tuning)
		os.Exit(1)
	}

	keymap := guitar.DefaultKeyMap()
	engine, err := guitar.NewEngine(keymap, tuning, cfg.Velocity)
	if err != nil {
		fmt.Printf("engine: %v\n", err)
		os.Exit(1)
	}
	if _, err := engine.SetInstrument(cfg.Instrument); err != nil {
		fmt.Printf("config: %v\n", err)
		os.Exit(1)
	}

	// MIDI output with hot-plug watching: the synth can come and go.
	out := midi.NewOut()
	defer out.Close()
	watcher := midi.NewWatcher(out, cfg.Output.PortName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Run(ctx)

	th := theme.New(theme.DefaultPalette())

	m := tui.NewModel(engine, keymap, out, watcher, th, time.Duration(cfg.ReleaseMs)*time.Millisecond)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())

	final, err := p.Run()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Whatever is still ringing dies with the program.
	out.SendAll(engine.Silence())

	// Remember the instrument and tuning for next time.
	if fm, ok := final.(tui.Model); ok {
		cfg.Instrument = fm.InstrumentName()
		cfg.Tuning = fm.Engine.Tuning().Name
		if err := cfg.Save(); err != nil {
			debug.Log("config", "save: %v", err)
		}
	}
}
