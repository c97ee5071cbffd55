package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// escapeTimeout is how long an incomplete escape prefix waits for its tail
// before it is reported as a standalone ESC
const escapeTimeout = 50 * time.Millisecond

// ErrNotTerminal is returned by Init when stdin is not an interactive terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Terminal owns raw mode on stdin and the alternate screen on stdout
type Terminal struct {
	out   *os.File
	inFd  int
	state *term.State

	mu          sync.Mutex
	initialized bool
	finalized   bool

	// Bytes read but not yet decoded into keys
	pending []byte
	// When the pending escape prefix was first seen incomplete
	escSince time.Time
	readBuf [64]byte
}

// New creates a terminal bound to stdin/stdout; Init must be called before use
func New() *Terminal {
	return &Terminal{
		out:  os.Stdout,
		inFd: int(os.Stdin.Fd()),
	}
}

// IsTerminal reports whether stdin is an interactive terminal
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(t.inFd)
}

// Init enters raw mode and the alternate screen, hides the cursor.
// Pair every successful Init with a deferred Fini
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if !term.IsTerminal(t.inFd) {
		return ErrNotTerminal
	}

	state, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.state = state

	t.writeRaw(csiAltScreenEnter)
	t.writeRaw(csiCursorHide)
	// Prevents scroll when writing the bottom-right corner
	t.writeRaw(csiAutoWrapOff)
	t.writeRaw(csiClear)

	t.initialized = true
	return nil
}

// Fini restores cooked mode and the main screen. Safe to call multiple times
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.writeRaw(csiCursorShow)
	t.writeRaw(csiAltScreenExit)
	// Re-enable Auto-Wrap after exiting alt screen so the main buffer has wrap enabled
	t.writeRaw(csiAutoWrapOn)
	t.writeRaw(csiSGR0)

	if t.state != nil {
		term.Restore(t.inFd, t.state)
	}
	t.finalized = true
}

// ReadKey returns the next pending key without blocking.
// Reports false when no key is available
func (t *Terminal) ReadKey() (Event, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return Event{}, false
	}

	n, err := readAvailable(t.inFd, t.readBuf[:])
	if err == nil && n > 0 {
		t.pending = append(t.pending, t.readBuf[:n]...)
	}

	return t.nextPending(time.Now())
}

// nextPending decodes keys from the pending buffer, skipping ignored bytes.
// An incomplete escape prefix stays pending until escapeTimeout passes
func (t *Terminal) nextPending(now time.Time) (Event, bool) {
	for len(t.pending) > 0 {
		ev, consumed := parseKey(t.pending)
		if consumed == 0 {
			if t.escSince.IsZero() {
				t.escSince = now
			}
			if now.Sub(t.escSince) < escapeTimeout {
				return Event{}, false
			}
			// Stale prefix: the user pressed ESC alone
			ev, consumed = Event{Key: KeyEscape}, len(t.pending)
		}
		t.escSince = time.Time{}
		t.pending = t.pending[consumed:]
		if ev.Key != KeyNone {
			return ev, true
		}
	}
	return Event{}, false
}

// Write writes raw bytes to the terminal output
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// writeRaw writes control sequences, errors ignored
func (t *Terminal) writeRaw(data []byte) {
	t.out.Write(data)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
