// Package grid owns the 2-D pixel canvas of a counting game. It maps grid
// units to pixel blocks, provides the drawing primitives the registry uses,
// and answers bounds queries. Coordinates are recorded as (row, col) in grid
// units, not pixels.
package grid

// DefaultColor is the value empty canvas pixels hold.
const DefaultColor = 0

// Grid is a dense pixel canvas sized (rows*density, cols*density). The
// canvas is a rendered view of object colors; it is never the source of
// truth for object positions.
type Grid struct {
	rows, cols   int
	density      int
	divided      bool
	dividerColor float64
	pixels       []float64 // row-major, rows*density x cols*density
}

// New creates a grid with the given unit dimensions and pixel density. If
// divide is true, a 1-unit-thick divider line is drawn horizontally at row
// ceil(rows/2) and redrawn on every Clear.
func New(rows, cols, density int, divide bool, dividerColor float64) *Grid {
	if density < 1 {
		density = 1
	}
	g := &Grid{
		rows:         rows,
		cols:         cols,
		density:      density,
		divided:      divide,
		dividerColor: dividerColor,
		pixels:       make([]float64, rows*density*cols*density),
	}
	g.Clear()
	return g
}

// Rows returns the height of the grid in units.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the width of the grid in units.
func (g *Grid) Cols() int { return g.cols }

// Density returns the number of pixels per unit side.
func (g *Grid) Density() int { return g.density }

// IsDivided reports whether the grid carries a divider line.
func (g *Grid) IsDivided() bool { return g.divided }

// PixelRows returns the canvas height in pixels.
func (g *Grid) PixelRows() int { return g.rows * g.density }

// PixelCols returns the canvas width in pixels.
func (g *Grid) PixelCols() int { return g.cols * g.density }

// Divider returns the row index of the dividing line: rows [0, Divider())
// form the playable half, rows [Divider(), Rows()) the staging half.
func (g *Grid) Divider() int {
	return (g.rows + 1) / 2
}

// Pixels returns a copy of the canvas. Successive calls without an
// intervening draw return identical slices.
func (g *Grid) Pixels() []float64 {
	out := make([]float64, len(g.pixels))
	copy(out, g.pixels)
	return out
}

// At returns the pixel value at the given pixel (not unit) coordinate.
func (g *Grid) At(pixelRow, pixelCol int) float64 {
	return g.pixels[pixelRow*g.PixelCols()+pixelCol]
}

// UnitAt returns the pixel value at the top-left pixel of the given unit.
func (g *Grid) UnitAt(c Coord) float64 {
	return g.At(c.Row*g.density, c.Col*g.density)
}

// IsInbounds reports whether the coordinate lies on the grid.
func (g *Grid) IsInbounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsInboundsPlayableHalf reports whether the coordinate lies in the playable
// half, above the divider.
func (g *Grid) IsInboundsPlayableHalf(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Divider() && c.Col >= 0 && c.Col < g.cols
}

// Draw writes color into the density x density block for the coordinate,
// leaving a 1-pixel margin on the block's bottom and right edges so adjacent
// units stay visually separable. Out-of-bounds coordinates are ignored.
func (g *Grid) Draw(c Coord, color float64) {
	if !g.IsInbounds(c) {
		return
	}
	size := g.density - 1
	if size < 1 {
		size = 1
	}
	base := c.Row * g.density
	for pr := base; pr < base+size; pr++ {
		off := pr*g.PixelCols() + c.Col*g.density
		for pc := 0; pc < size; pc++ {
			g.pixels[off+pc] = color
		}
	}
}

// SliceDraw fills the half-open rectangular run of units [c0, c1) by tiling
// the single-unit block. If both endpoints coincide on an axis the run is
// drawn as a single inclusive row or column; if c0 exceeds c1 on either axis
// nothing is drawn.
func (g *Grid) SliceDraw(c0, c1 Coord, color float64) {
	if c0.Row > c1.Row || c0.Col > c1.Col {
		return
	}
	if c0.Row == c1.Row && c0.Col == c1.Col {
		g.Draw(c0, color)
		return
	}
	if c0.Row == c1.Row {
		c1.Row++
	} else if c0.Col == c1.Col {
		c1.Col++
	}
	for row := c0.Row; row < c1.Row; row++ {
		for col := c0.Col; col < c1.Col; col++ {
			g.Draw(Coord{Row: row, Col: col}, color)
		}
	}
}

// ClearUnit zeroes the full pixel block of a single coordinate.
func (g *Grid) ClearUnit(c Coord) {
	if !g.IsInbounds(c) {
		return
	}
	base := c.Row * g.density
	for pr := base; pr < base+g.density; pr++ {
		off := pr*g.PixelCols() + c.Col*g.density
		for pc := 0; pc < g.density; pc++ {
			g.pixels[off+pc] = DefaultColor
		}
	}
}

// Clear zeroes the whole canvas and redraws the divider line.
func (g *Grid) Clear() {
	for i := range g.pixels {
		g.pixels[i] = DefaultColor
	}
	if g.divided {
		mid := g.Divider()
		g.SliceDraw(Coord{Row: mid, Col: 0}, Coord{Row: mid, Col: g.cols}, g.dividerColor)
	}
}

// ClearPlayableHalf zeroes only the rows above the divider, leaving the
// staging half and the divider line untouched.
func (g *Grid) ClearPlayableHalf() {
	limit := g.Divider() * g.density * g.PixelCols()
	for i := 0; i < limit; i++ {
		g.pixels[i] = DefaultColor
	}
}
