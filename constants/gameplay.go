// @focus: #constants { gameplay }
package constants

// Movement speeds in cells per step
const (
	PlayerSpeed = 0.8
	BulletSpeed = 1.1
	EnemySpeed  = 0.3
)

// Entity widths derived from glyphs
const (
	PlayerWidth = len(PlayerGlyph)
	EnemyWidth  = len(EnemyGlyph)
	BulletWidth = len(BulletGlyph)
)

// Formation
const (
	// EnemySpacingGap is the number of empty cells between adjacent enemies in a row
	EnemySpacingGap = 2

	// EnemyStartColumn is the interior column of the first enemy in each row
	EnemyStartColumn = 1
)

// Combat
const (
	// MaxBullets caps concurrent player bullets
	MaxBullets = 3

	// PointsPerEnemy is awarded for each destroyed enemy
	PointsPerEnemy = 10
)

// Directions
const (
	Left  = -1
	Right = 1
)
