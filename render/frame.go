package render

import (
	"strconv"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
)

// Compose draws the arena and every entity of a view into buf.
// buf must match the view's arena size
func Compose(view engine.View, buf *core.Buffer) {
	buf.Clear()
	buf.DrawBorder(constants.HorizontalWallRune, constants.VerticalWallRune)

	p := view.Player
	buf.DrawRun(core.Trunc(p.X), core.Trunc(p.Y), constants.PlayerGlyph, core.KindPlayer)

	for _, b := range view.Bullets {
		c := b.Cell()
		buf.DrawRun(c.X, c.Y, constants.BulletGlyph, core.KindBullet)
	}

	// Enemies drawn last cover bullets in the same cell
	for _, e := range view.Enemies {
		buf.DrawRun(core.Trunc(e.X), core.Trunc(e.Y), constants.EnemyGlyph, core.KindEnemy)
	}
}

// StatusLines returns the text printed under the arena
func StatusLines(view engine.View) []string {
	lines := []string{constants.ScoreLabel + strconv.Itoa(view.Score)}

	if view.Phase == engine.PhaseOver {
		lines = append(lines, constants.GameOverText)
		if view.Outcome == engine.OutcomeWin {
			lines = append(lines, constants.WinText)
		}
		lines = append(lines, constants.RestartText)
		return lines
	}

	if view.RoundTicks < constants.HelpTicks {
		lines = append(lines, constants.HelpText)
	}
	return lines
}

// frameBuffer reuses buf when it matches the arena, otherwise allocates
func frameBuffer(buf *core.Buffer, cfg engine.Config) *core.Buffer {
	if buf == nil || buf.Width() != cfg.ArenaWidth || buf.Height() != cfg.ArenaHeight {
		return core.NewBuffer(cfg.ArenaWidth, cfg.ArenaHeight)
	}
	return buf
}
