package core

// Trunc projects a continuous coordinate onto the cell grid.
// Conversion truncates toward zero; collision fairness depends on this, do not replace with rounding
func Trunc(v float64) int {
	return int(v)
}

// Hitbox is the integer collision box of a one-row-tall entity
type Hitbox struct {
	X, Y  int // Floored top-left cell
	Width int // Horizontal span in cells
}

// HitboxAt builds a hitbox from continuous coordinates
func HitboxAt(x, y float64, width int) Hitbox {
	return Hitbox{X: Trunc(x), Y: Trunc(y), Width: width}
}

// Right returns the exclusive right edge
func (h Hitbox) Right() int {
	return h.X + h.Width
}

// ContainsCell reports whether cell (x, y) lies in the half-open span [X, X+Width) on row Y
func (h Hitbox) ContainsCell(x, y int) bool {
	return y == h.Y && x >= h.X && x < h.Right()
}

// Overlaps reports AABB intersection between two one-row hitboxes
func (h Hitbox) Overlaps(o Hitbox) bool {
	if h.Y != o.Y {
		return false
	}
	return !(h.Right() <= o.X || o.Right() <= h.X)
}
