package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/terminal"
)

// ANSIRenderer prints frames as plain text lines using cursor-home redraws
type ANSIRenderer struct {
	w   *bufio.Writer
	buf *core.Buffer
}

// NewANSIRenderer creates a renderer writing to w
func NewANSIRenderer(w io.Writer) *ANSIRenderer {
	return &ANSIRenderer{w: bufio.NewWriter(w)}
}

// Render writes one full frame and flushes it
func (r *ANSIRenderer) Render(view engine.View) error {
	r.buf = frameBuffer(r.buf, view.Config)
	Compose(view, r.buf)

	r.w.Write(terminal.CursorHome())
	for y := 0; y < r.buf.Height(); y++ {
		r.w.WriteString(r.buf.LineString(y))
		r.w.WriteString("\r\n")
	}
	for _, line := range StatusLines(view) {
		r.w.WriteString(line)
		r.w.WriteString("\r\n")
	}
	r.w.Write(terminal.ClearBelow())

	if err := r.w.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}
