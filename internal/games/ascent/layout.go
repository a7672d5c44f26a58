package ascent

import (
	"math"

	"github.com/vovakirdan/neon-ascent/internal/core"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Minimum playfield size in cells.
const (
	minCols = 16
	minRows = 8
)

// Layout maps world units onto the terminal grid. Row 0 is the HUD; the
// playfield is centred horizontally with a one-cell wall on each side.
type Layout struct {
	ScreenW, ScreenH int
	OffsetX          int // first playfield column
	Cols, Rows       int // playfield size in cells
	ColScale         float64
	RowScale         float64
	ViewHeight       float64 // visible world height
}

// NewLayout fits a world of the given width to the screen, keeping the
// world's aspect ratio close to a phone held upright.
func NewLayout(screenW, screenH int, worldWidth float64) Layout {
	rows := core.Max(screenH-1, minRows)
	cols := int(math.Floor(worldWidth * cellAspect * float64(rows) / referenceViewHeight))
	cols = core.Clamp(cols, minCols, core.Max(screenW-2, minCols))

	colScale := float64(cols) / worldWidth
	rowScale := colScale / cellAspect
	return Layout{
		ScreenW:    screenW,
		ScreenH:    screenH,
		OffsetX:    core.Max((screenW-cols)/2, 1),
		Cols:       cols,
		Rows:       rows,
		ColScale:   colScale,
		RowScale:   rowScale,
		ViewHeight: float64(rows) / rowScale,
	}
}

// referenceViewHeight is the world height the layout aims to show.
const referenceViewHeight = 560

// Column returns the screen column for world x.
func (l Layout) Column(x float64) int {
	return l.OffsetX + core.Clamp(int(x*l.ColScale), 0, l.Cols-1)
}

// Row returns the screen row for world y, or -1 if y is out of view.
func (l Layout) Row(y, camera float64) int {
	r := int(math.Floor((y - camera) * l.RowScale))
	if r < 0 || r >= l.Rows {
		return -1
	}
	return r + 1
}

// WorldX converts a pointer position, as a fraction of screen width, to
// a world x clamped to the playfield.
func (l Layout) WorldX(fraction float64, worldWidth float64) float64 {
	col := fraction * float64(l.ScreenW)
	x := (col - float64(l.OffsetX)) / l.ColScale
	return core.ClampF(x, 0, worldWidth)
}

// Span returns the first and last screen columns covered by [x, x+w).
func (l Layout) Span(x, w float64) (int, int) {
	from := l.Column(x)
	to := l.Column(x + w - 1e-9)
	return from, to
}
