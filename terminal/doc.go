// @focus: #sys { term }
// Package terminal provides raw-mode ANSI terminal access for the plain frontend.
//
// Features:
//   - Scoped raw mode via golang.org/x/term with guaranteed restoration
//   - Zero-timeout key polling; a poll with no pending input returns immediately
//   - Escape sequence parsing for arrow keys
//   - Emergency termios reset for crash paths
//
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
// Other platforms compile but report no input.
package terminal
