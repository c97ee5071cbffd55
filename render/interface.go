package render

import "github.com/lixenwraith/vi-invaders/engine"

// Renderer draws one frame from a state snapshot
type Renderer interface {
	Render(view engine.View) error
}
