package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/modes"
	"github.com/lixenwraith/vi-invaders/render"
	"github.com/lixenwraith/vi-invaders/terminal"
)

const (
	backendTcell = "tcell"
	backendANSI  = "ansi"
)

// frontend pairs an input source with a renderer over one terminal session
type frontend struct {
	input    modes.InputSource
	renderer render.Renderer
	close    func()
}

// openFrontend initializes the requested backend.
// A tcell failure falls back to the ANSI backend
func openFrontend(backend string) (*frontend, error) {
	switch backend {
	case backendTcell:
		f, err := openTcell()
		if err == nil {
			return f, nil
		}
		log.Printf("tcell backend unavailable, falling back to ansi: %v", err)
		return openANSI(), nil
	case backendANSI:
		return openANSI(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", backend, backendTcell, backendANSI)
	}
}

func openTcell() (*frontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	return &frontend{
		input:    modes.NewTcellSource(screen),
		renderer: render.NewTcellRenderer(screen),
		close:    screen.Fini,
	}, nil
}

// openANSI enters raw mode on stdin. Without a terminal the game still
// renders but keyboard input is disabled
func openANSI() *frontend {
	term := terminal.New()
	f := &frontend{
		renderer: render.NewANSIRenderer(term),
		close:    term.Fini,
	}

	if err := term.Init(); err != nil {
		if errors.Is(err, terminal.ErrNotTerminal) {
			fmt.Fprintln(os.Stderr, constants.NoTerminalText)
		} else {
			fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		}
		log.Printf("keyboard input disabled: %v", err)
		f.input = modes.NullSource{}
		return f
	}

	f.input = modes.NewTerminalSource(term)
	return f
}
