package engine

// Command is a decoded input signal for one tick
type Command int

const (
	CommandNone Command = iota
	CommandLeft
	CommandRight
	CommandFire
	CommandReset
	CommandQuit // Honored only while the round is over
	CommandExit // Interrupt; honored in any phase
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandFire:
		return "fire"
	case CommandReset:
		return "reset"
	case CommandQuit:
		return "quit"
	case CommandExit:
		return "exit"
	default:
		return "unknown"
	}
}
