// Package canvas implements a small 2D drawing surface over a terminal
// cell buffer. Callers draw in pixel coordinates; each terminal cell covers
// CellW x CellH pixels and is painted when its centre falls inside a shape.
package canvas

import (
	"math"

	"github.com/vovakirdan/tui-greeting/internal/core"
)

// Surface is the drawing API the confetti engine renders through.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h float64)
	// Clear erases the whole surface.
	Clear()
	// SetGlobalAlpha sets the opacity applied to subsequent fills.
	SetGlobalAlpha(a float64)
	// GlobalAlpha returns the current fill opacity.
	GlobalAlpha() float64
	// FillRotatedRect fills a w x h rectangle centred on c and rotated by
	// angle radians.
	FillRotatedRect(c core.Vec, w, h, angle float64, color core.Color)
}

// Shade glyphs from most to least opaque.
var shades = []rune{'█', '▓', '▒', '░'}

// Shade maps an opacity in [0,1] to a glyph, or 0 when nothing is visible.
func Shade(alpha float64) rune {
	switch {
	case alpha <= 0:
		return 0
	case alpha >= 0.75:
		return shades[0]
	case alpha >= 0.5:
		return shades[1]
	case alpha >= 0.25:
		return shades[2]
	default:
		return shades[3]
	}
}

// Canvas is a Surface backed by a core.Screen.
type Canvas struct {
	screen *core.Screen
	cellW  float64
	cellH  float64
	alpha  float64
}

// New creates a canvas of cols x rows cells with the given cell metrics.
func New(cols, rows int, cellW, cellH float64) *Canvas {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Canvas{
		screen: core.NewScreen(cols, rows),
		cellW:  cellW,
		cellH:  cellH,
		alpha:  1,
	}
}

// Resize matches the canvas to a new window size in cells and clears it.
func (c *Canvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
}

// Screen exposes the backing cell buffer for compositing.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// CellSize returns the pixel dimensions of one cell.
func (c *Canvas) CellSize() (w, h float64) {
	return c.cellW, c.cellH
}

// Size implements Surface.
func (c *Canvas) Size() (w, h float64) {
	return float64(c.screen.Width()) * c.cellW, float64(c.screen.Height()) * c.cellH
}

// Clear implements Surface.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// SetGlobalAlpha implements Surface.
func (c *Canvas) SetGlobalAlpha(a float64) {
	c.alpha = core.ClampF(a, 0, 1)
}

// GlobalAlpha implements Surface.
func (c *Canvas) GlobalAlpha() float64 {
	return c.alpha
}

// FillRotatedRect implements Surface.
func (c *Canvas) FillRotatedRect(center core.Vec, w, h, angle float64, color core.Color) {
	glyph := Shade(c.alpha)
	if glyph == 0 || w <= 0 || h <= 0 {
		return
	}
	cell := core.Cell{Rune: glyph, Color: color}

	sin, cos := math.Sincos(angle)
	hw, hh := w/2, h/2

	// Half extents of the rotated rectangle's bounding box.
	ex := math.Abs(hw*cos) + math.Abs(hh*sin)
	ey := math.Abs(hw*sin) + math.Abs(hh*cos)

	x0 := int(math.Floor((center.X - ex) / c.cellW))
	x1 := int(math.Floor((center.X + ex) / c.cellW))
	y0 := int(math.Floor((center.Y - ey) / c.cellH))
	y1 := int(math.Floor((center.Y + ey) / c.cellH))

	painted := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			px := (float64(cx)+0.5)*c.cellW - center.X
			py := (float64(cy)+0.5)*c.cellH - center.Y
			// Rotate the sample point into the rectangle's frame.
			lx := px*cos + py*sin
			ly := -px*sin + py*cos
			if math.Abs(lx) <= hw && math.Abs(ly) <= hh {
				c.screen.SetCell(cx, cy, cell)
				painted = true
			}
		}
	}

	// Shapes smaller than a cell still show up in the cell holding their centre.
	if !painted {
		c.screen.SetCell(int(math.Floor(center.X/c.cellW)), int(math.Floor(center.Y/c.cellH)), cell)
	}
}
