// @focus: #terminal { ansi }
package terminal

// Pre-allocated ANSI sequences
var (
	csiClear = []byte("\x1b[2J\x1b[H")
	csiHome  = []byte("\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0  = []byte("\x1b[0m")

	// Clears from cursor to end of screen; used after a frame to wipe stale banner lines
	csiClearBelow = []byte("\x1b[J")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: Auto-Wrap Mode
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)

// ClearScreen returns the sequence that clears the screen and homes the cursor
func ClearScreen() []byte {
	return csiClear
}

// CursorHome returns the sequence that moves the cursor to the top-left cell
func CursorHome() []byte {
	return csiHome
}

// ClearBelow returns the sequence that erases from the cursor to the end of screen
func ClearBelow() []byte {
	return csiClearBelow
}
