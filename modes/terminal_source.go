package modes

import (
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/terminal"
)

// KeyReader is the non-blocking key primitive of the raw terminal
type KeyReader interface {
	ReadKey() (terminal.Event, bool)
}

// TerminalSource reads keys from a raw-mode terminal
type TerminalSource struct {
	reader KeyReader
}

// NewTerminalSource wraps a key reader
func NewTerminalSource(reader KeyReader) *TerminalSource {
	return &TerminalSource{reader: reader}
}

// Poll returns the command of the next mapped key, skipping unmapped keys
func (s *TerminalSource) Poll() engine.Command {
	for {
		ev, ok := s.reader.ReadKey()
		if !ok {
			return engine.CommandNone
		}
		if cmd := CommandForTerminalKey(ev); cmd != engine.CommandNone {
			return cmd
		}
	}
}
