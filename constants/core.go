package constants

// System priorities, lower runs first; order is fixed per tick:
// bullets, formation, bullet hits, round outcome
const (
	PriorityBullets   = 10
	PriorityFormation = 20
	PriorityCollision = 30
	PriorityOutcome   = 40
)
