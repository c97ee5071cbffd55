package modes

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
)

// tcellEventBuffer bounds queued events; overflow is dropped
const tcellEventBuffer = 16

// TcellSource adapts the blocking tcell event poll to a non-blocking source.
// A poller goroutine only forwards events; commands are applied on the tick goroutine
type TcellSource struct {
	screen tcell.Screen
	events chan tcell.Event
}

// NewTcellSource starts polling the screen; the poller exits when the screen is finalized
func NewTcellSource(screen tcell.Screen) *TcellSource {
	s := &TcellSource{
		screen: screen,
		events: make(chan tcell.Event, tcellEventBuffer),
	}
	core.Go(s.pollLoop)
	return s
}

func (s *TcellSource) pollLoop() {
	for {
		ev := s.screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		default:
			// Channel full, drop
		}
	}
}

// Poll returns the command of the next pending key event, handling resizes inline
func (s *TcellSource) Poll() engine.Command {
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if cmd := CommandForTcellKey(ev); cmd != engine.CommandNone {
					return cmd
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		default:
			return engine.CommandNone
		}
	}
}
