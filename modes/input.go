package modes

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/terminal"
)

// InputSource yields at most one command per tick and never blocks.
// CommandNone means no key was pending
type InputSource interface {
	Poll() engine.Command
}

// CommandForRune maps a printable key, case-insensitive
func CommandForRune(r rune) engine.Command {
	switch unicode.ToLower(r) {
	case constants.KeyMoveLeft:
		return engine.CommandLeft
	case constants.KeyMoveRight:
		return engine.CommandRight
	case constants.KeyFire:
		return engine.CommandFire
	case constants.KeyReset:
		return engine.CommandReset
	case constants.KeyQuit:
		return engine.CommandQuit
	}
	return engine.CommandNone
}

// CommandForTcellKey maps a tcell key event
func CommandForTcellKey(ev *tcell.EventKey) engine.Command {
	switch ev.Key() {
	case tcell.KeyLeft:
		return engine.CommandLeft
	case tcell.KeyRight:
		return engine.CommandRight
	case tcell.KeyCtrlC:
		return engine.CommandExit
	case tcell.KeyRune:
		return CommandForRune(ev.Rune())
	}
	return engine.CommandNone
}

// CommandForTerminalKey maps a raw terminal key event
func CommandForTerminalKey(ev terminal.Event) engine.Command {
	switch ev.Key {
	case terminal.KeyLeft:
		return engine.CommandLeft
	case terminal.KeyRight:
		return engine.CommandRight
	case terminal.KeyCtrlC:
		return engine.CommandExit
	case terminal.KeyRune:
		return CommandForRune(ev.Rune)
	}
	return engine.CommandNone
}

// NullSource is the degraded input used when no terminal is available
type NullSource struct{}

// Poll always reports no key
func (NullSource) Poll() engine.Command {
	return engine.CommandNone
}
