package modes

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/terminal"
)

func TestCommandForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want engine.Command
	}{
		{'a', engine.CommandLeft},
		{'A', engine.CommandLeft},
		{'d', engine.CommandRight},
		{'D', engine.CommandRight},
		{' ', engine.CommandFire},
		{'r', engine.CommandReset},
		{'R', engine.CommandReset},
		{'q', engine.CommandQuit},
		{'Q', engine.CommandQuit},
		{'x', engine.CommandNone},
		{'1', engine.CommandNone},
	}

	for _, tt := range tests {
		if got := CommandForRune(tt.r); got != tt.want {
			t.Errorf("CommandForRune(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestCommandForTcellKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want engine.Command
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), engine.CommandLeft},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), engine.CommandRight},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), engine.CommandExit},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), engine.CommandFire},
		{"rune d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), engine.CommandRight},
		{"up arrow ignored", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), engine.CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommandForTcellKey(tt.ev); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCommandForTerminalKey(t *testing.T) {
	tests := []struct {
		ev   terminal.Event
		want engine.Command
	}{
		{terminal.Event{Key: terminal.KeyLeft}, engine.CommandLeft},
		{terminal.Event{Key: terminal.KeyRight}, engine.CommandRight},
		{terminal.Event{Key: terminal.KeyCtrlC}, engine.CommandExit},
		{terminal.Event{Key: terminal.KeyRune, Rune: 'A'}, engine.CommandLeft},
		{terminal.Event{Key: terminal.KeyEscape}, engine.CommandNone},
	}

	for _, tt := range tests {
		if got := CommandForTerminalKey(tt.ev); got != tt.want {
			t.Errorf("CommandForTerminalKey(%+v) = %v, want %v", tt.ev, got, tt.want)
		}
	}
}

// fakeKeyReader replays a fixed key sequence
type fakeKeyReader struct {
	keys []terminal.Event
}

func (f *fakeKeyReader) ReadKey() (terminal.Event, bool) {
	if len(f.keys) == 0 {
		return terminal.Event{}, false
	}
	ev := f.keys[0]
	f.keys = f.keys[1:]
	return ev, true
}

func TestTerminalSourceOneCommandPerPoll(t *testing.T) {
	reader := &fakeKeyReader{keys: []terminal.Event{
		{Key: terminal.KeyUp},
		{Key: terminal.KeyRune, Rune: 'd'},
		{Key: terminal.KeyRune, Rune: ' '},
	}}
	src := NewTerminalSource(reader)

	want := []engine.Command{engine.CommandRight, engine.CommandFire, engine.CommandNone, engine.CommandNone}
	for i, w := range want {
		if got := src.Poll(); got != w {
			t.Errorf("Poll %d: expected %v, got %v", i, w, got)
		}
	}
}

func TestNullSource(t *testing.T) {
	var src InputSource = NullSource{}
	if got := src.Poll(); got != engine.CommandNone {
		t.Errorf("Expected no command, got %v", got)
	}
}

func TestTcellSourceNonBlocking(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	src := NewTcellSource(screen)

	// Nothing injected: must return immediately
	start := time.Now()
	if got := src.Poll(); got != engine.CommandNone {
		t.Errorf("Expected no command, got %v", got)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("Poll blocked for %v", elapsed)
	}

	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)

	deadline := time.Now().Add(time.Second)
	var got engine.Command
	for time.Now().Before(deadline) {
		if got = src.Poll(); got != engine.CommandNone {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if got != engine.CommandLeft {
		t.Errorf("Expected injected key to map to left, got %v", got)
	}
}
