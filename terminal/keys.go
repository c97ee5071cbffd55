// @focus: #sys { io } #input { keys }
package terminal

import "unicode/utf8"

// maxCSILength bounds the bytes scanned for a CSI final byte
const maxCSILength = 16

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)
	KeyEscape
	KeyEnter
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

// Event is a single decoded key press
type Event struct {
	Key  Key
	Rune rune
}

// parseKey decodes the first key in data and returns it with the bytes consumed.
// Returns consumed 0 for empty input or an incomplete escape prefix
func parseKey(data []byte) (Event, int) {
	if len(data) == 0 {
		return Event{}, 0
	}

	b := data[0]
	switch {
	case b == 0x1b:
		return parseEscape(data)
	case b == 0x03:
		return Event{Key: KeyCtrlC}, 1
	case b == '\r' || b == '\n':
		return Event{Key: KeyEnter}, 1
	case b >= 0x20 && b < 0x7f:
		return Event{Key: KeyRune, Rune: rune(b)}, 1
	case b >= 0x80:
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError {
			return Event{}, 1
		}
		return Event{Key: KeyRune, Rune: r}, size
	}

	// Other control characters are ignored
	return Event{}, 1
}

// parseEscape handles ESC, CSI (ESC [) and SS3 (ESC O) sequences.
// Returns consumed 0 while the sequence is incomplete so the caller keeps the bytes
func parseEscape(data []byte) (Event, int) {
	if len(data) < 2 {
		return Event{}, 0
	}
	if data[1] != '[' && data[1] != 'O' {
		return Event{Key: KeyEscape}, 1
	}
	if len(data) < 3 {
		return Event{}, 0
	}

	if data[1] == 'O' {
		return Event{Key: arrowKey(data[2])}, 3
	}

	// CSI: parameter bytes then a final byte in 0x40-0x7e
	for i := 2; i < len(data) && i < maxCSILength; i++ {
		c := data[i]
		if c >= 0x40 && c <= 0x7e {
			// Modified arrows (ESC [ 1 ; 2 C) map to plain arrows
			return Event{Key: arrowKey(c)}, i + 1
		}
		if c < 0x20 || c > 0x7e {
			// Malformed, drop the prefix
			return Event{}, i
		}
	}

	if len(data) >= maxCSILength {
		// Overlong sequence, drop it
		return Event{}, maxCSILength
	}
	return Event{}, 0
}

func arrowKey(final byte) Key {
	switch final {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	}
	return KeyNone
}
