package constants

// Key bindings (case-insensitive runes; arrows handled by the input adapters)
const (
	KeyMoveLeft  = 'a'
	KeyMoveRight = 'd'
	KeyFire      = ' '
	KeyReset     = 'r'
	KeyQuit      = 'q'
)
