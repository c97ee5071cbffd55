package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
)

// TcellRenderer draws frames onto a tcell screen
type TcellRenderer struct {
	screen tcell.Screen
	buf    *core.Buffer
}

// NewTcellRenderer creates a renderer bound to an initialized screen
func NewTcellRenderer(screen tcell.Screen) *TcellRenderer {
	return &TcellRenderer{screen: screen}
}

// Render composes the view and pushes it to the screen
func (r *TcellRenderer) Render(view engine.View) error {
	r.buf = frameBuffer(r.buf, view.Config)
	Compose(view, r.buf)

	r.screen.Clear()
	r.screen.Fill(' ', tcell.StyleDefault.Background(RgbBackground))

	for y := 0; y < r.buf.Height(); y++ {
		for x, cell := range r.buf.GetLine(y) {
			r.screen.SetContent(x, y, cell.Rune, nil, styleForKind(cell.Kind))
		}
	}

	statusStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)
	y := r.buf.Height()
	for i, line := range StatusLines(view) {
		style := statusStyle
		if view.Phase == engine.PhaseOver && i > 0 {
			style = bannerStyle(view.Outcome)
		}
		drawText(r.screen, 0, y+i, line, style)
	}

	r.screen.Show()
	return nil
}

func bannerStyle(outcome engine.Outcome) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground).Bold(true)
	if outcome == engine.OutcomeWin {
		return base.Foreground(RgbWin)
	}
	return base.Foreground(RgbGameOver)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
