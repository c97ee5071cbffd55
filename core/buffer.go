package core

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// CellKind tags what occupies a cell so renderers can style it
type CellKind uint8

const (
	KindEmpty CellKind = iota
	KindWall
	KindPlayer
	KindEnemy
	KindBullet
)

// Cell represents a single cell in the buffer
type Cell struct {
	Rune rune
	Kind CellKind
}

var emptyCell = Cell{Rune: ' ', Kind: KindEmpty}

// Buffer is the arena character grid composited each frame
type Buffer struct {
	width  int
	height int
	lines  [][]Cell
}

// NewBuffer creates a new buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := make([][]Cell, height)
	for y := 0; y < height; y++ {
		lines[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			lines[y][x] = emptyCell
		}
	}

	return &Buffer{
		width:  width,
		height: height,
		lines:  lines,
	}
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// GetCell returns the cell at the given position
func (b *Buffer) GetCell(x, y int) (Cell, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}, false
	}
	return b.lines[y][x], true
}

// SetCell sets the cell at the given position
func (b *Buffer) SetCell(x, y int, cell Cell) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	b.lines[y][x] = cell
	return true
}

// Clear resets every cell to empty
func (b *Buffer) Clear() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.lines[y][x] = emptyCell
		}
	}
}

// InInterior reports whether (x, y) is strictly inside the border wall
func (b *Buffer) InInterior(x, y int) bool {
	return x > 0 && x < b.width-1 && y > 0 && y < b.height-1
}

// DrawBorder writes wall glyphs on all four edges.
// Side walls are drawn last and own the corners
func (b *Buffer) DrawBorder(horizontal, vertical rune) {
	if b.width == 0 || b.height == 0 {
		return
	}
	for x := 0; x < b.width; x++ {
		b.lines[0][x] = Cell{Rune: horizontal, Kind: KindWall}
		b.lines[b.height-1][x] = Cell{Rune: horizontal, Kind: KindWall}
	}
	for y := 0; y < b.height; y++ {
		b.lines[y][0] = Cell{Rune: vertical, Kind: KindWall}
		b.lines[y][b.width-1] = Cell{Rune: vertical, Kind: KindWall}
	}
}

// DrawRun writes a glyph run starting at (x, y), clipped to the interior.
// Returns the number of cells written
func (b *Buffer) DrawRun(x, y int, glyph string, kind CellKind) int {
	if y <= 0 || y >= b.height-1 {
		return 0
	}
	written := 0
	i := 0
	for _, r := range glyph {
		cx := x + i
		i++
		if !b.InInterior(cx, y) {
			continue
		}
		b.lines[y][cx] = Cell{Rune: r, Kind: kind}
		written++
	}
	return written
}

// GetLine returns all cells in a given row
func (b *Buffer) GetLine(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	// Return a copy to prevent external modification
	line := make([]Cell, b.width)
	copy(line, b.lines[y])
	return line
}

// LineString returns a row as plain text
func (b *Buffer) LineString(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, b.width)
	for x, c := range b.lines[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
