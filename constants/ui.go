package constants

// Glyphs
const (
	PlayerGlyph = "<x>"
	EnemyGlyph  = "(<|>)"
	BulletGlyph = "o"

	HorizontalWallRune = '-'
	VerticalWallRune   = '|'
	EmptyRune          = ' '
)

// Status and banner text
const (
	ScoreLabel     = "Score: "
	HelpText       = "Press 'A'/'D' or arrows to move, SPACE to fire."
	GameOverText   = "GAME OVER!"
	WinText        = "You win! All invaders destroyed!"
	RestartText    = "Press 'R' to restart or 'Q' to quit."
	FinishedText   = "Game finished!"
	NoTerminalText = "Warning: standard input is not a terminal; keyboard input is disabled."
)

// HelpTicks is how many ticks the help line stays visible after a round starts
const HelpTicks = 30
