package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-invaders/core"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbWall       = tcell.NewRGBColor(110, 110, 130) // Slate gray
	RgbPlayer     = tcell.NewRGBColor(80, 220, 100)  // Green
	RgbEnemy      = tcell.NewRGBColor(230, 70, 70)   // Red
	RgbBullet     = tcell.NewRGBColor(255, 230, 80)  // Yellow
	RgbStatusBar  = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbGameOver   = tcell.NewRGBColor(255, 60, 60)   // Bright red
	RgbWin        = tcell.NewRGBColor(80, 200, 255)  // Sky blue
)

// styleForKind returns the foreground style of a buffer cell kind
func styleForKind(kind core.CellKind) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	switch kind {
	case core.KindWall:
		return base.Foreground(RgbWall)
	case core.KindPlayer:
		return base.Foreground(RgbPlayer).Bold(true)
	case core.KindEnemy:
		return base.Foreground(RgbEnemy)
	case core.KindBullet:
		return base.Foreground(RgbBullet).Bold(true)
	default:
		return base
	}
}
