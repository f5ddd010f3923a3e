package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivider(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		divider int
	}{
		{"odd rows", 9, 5},
		{"even rows", 10, 5},
		{"two rows", 2, 1},
		{"large odd", 31, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.rows, 6, 1, true, 1)
			assert.Equal(t, tt.divider, g.Divider())
		})
	}
}

func TestNewDrawsDividerLine(t *testing.T) {
	g := New(9, 6, 1, true, 1)
	mid := g.Divider()
	for col := 0; col < g.Cols(); col++ {
		assert.Equal(t, 1.0, g.UnitAt(Coord{Row: mid, Col: col}), "divider at col %d", col)
	}
	// Rows adjacent to the divider stay empty.
	for col := 0; col < g.Cols(); col++ {
		assert.Equal(t, 0.0, g.UnitAt(Coord{Row: mid - 1, Col: col}))
		assert.Equal(t, 0.0, g.UnitAt(Coord{Row: mid + 1, Col: col}))
	}
}

func TestUndividedGridStartsEmpty(t *testing.T) {
	g := New(5, 5, 1, false, 1)
	for _, p := range g.Pixels() {
		require.Equal(t, 0.0, p)
	}
}

func TestDrawUnitDensity(t *testing.T) {
	g := New(4, 4, 1, false, 1)
	g.Draw(Coord{Row: 2, Col: 3}, 4)
	assert.Equal(t, 4.0, g.At(2, 3))

	sum := 0.0
	for _, p := range g.Pixels() {
		sum += p
	}
	assert.Equal(t, 4.0, sum, "exactly one pixel should be colored")
}

func TestDrawLeavesMargin(t *testing.T) {
	g := New(3, 3, 3, false, 1)
	g.Draw(Coord{Row: 1, Col: 1}, 5)

	// A 2x2 block of the 3x3 unit is filled, the bottom and right pixel
	// rows stay empty.
	for pr := 3; pr < 5; pr++ {
		for pc := 3; pc < 5; pc++ {
			assert.Equal(t, 5.0, g.At(pr, pc), "pixel (%d,%d)", pr, pc)
		}
	}
	for i := 3; i < 6; i++ {
		assert.Equal(t, 0.0, g.At(5, i), "bottom margin pixel (5,%d)", i)
		assert.Equal(t, 0.0, g.At(i, 5), "right margin pixel (%d,5)", i)
	}
}

func TestDrawOutOfBoundsIsNoop(t *testing.T) {
	g := New(3, 3, 1, false, 1)
	g.Draw(Coord{Row: -1, Col: 0}, 7)
	g.Draw(Coord{Row: 0, Col: 3}, 7)
	for _, p := range g.Pixels() {
		require.Equal(t, 0.0, p)
	}
}

func TestSliceDraw(t *testing.T) {
	t.Run("rectangle is half open", func(t *testing.T) {
		g := New(5, 5, 1, false, 1)
		g.SliceDraw(Coord{Row: 1, Col: 1}, Coord{Row: 3, Col: 4}, 2)
		for row := 0; row < 5; row++ {
			for col := 0; col < 5; col++ {
				want := 0.0
				if row >= 1 && row < 3 && col >= 1 && col < 4 {
					want = 2.0
				}
				assert.Equal(t, want, g.UnitAt(Coord{Row: row, Col: col}), "(%d,%d)", row, col)
			}
		}
	})

	t.Run("single row", func(t *testing.T) {
		g := New(5, 5, 1, false, 1)
		g.SliceDraw(Coord{Row: 2, Col: 0}, Coord{Row: 2, Col: 5}, 2)
		for col := 0; col < 5; col++ {
			assert.Equal(t, 2.0, g.UnitAt(Coord{Row: 2, Col: col}))
		}
		assert.Equal(t, 0.0, g.UnitAt(Coord{Row: 1, Col: 0}))
		assert.Equal(t, 0.0, g.UnitAt(Coord{Row: 3, Col: 0}))
	})

	t.Run("degenerate point", func(t *testing.T) {
		g := New(5, 5, 1, false, 1)
		g.SliceDraw(Coord{Row: 2, Col: 2}, Coord{Row: 2, Col: 2}, 2)
		assert.Equal(t, 2.0, g.UnitAt(Coord{Row: 2, Col: 2}))
	})

	t.Run("inverted endpoints draw nothing", func(t *testing.T) {
		g := New(5, 5, 1, false, 1)
		g.SliceDraw(Coord{Row: 3, Col: 3}, Coord{Row: 1, Col: 1}, 2)
		for _, p := range g.Pixels() {
			require.Equal(t, 0.0, p)
		}
	})
}

func TestClearRedrawsDivider(t *testing.T) {
	g := New(9, 6, 1, true, 1)
	g.Draw(Coord{Row: 0, Col: 0}, 4)
	g.Draw(Coord{Row: 7, Col: 2}, 3)
	g.Clear()

	mid := g.Divider()
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			want := 0.0
			if row == mid {
				want = 1.0
			}
			assert.Equal(t, want, g.UnitAt(Coord{Row: row, Col: col}), "(%d,%d)", row, col)
		}
	}
}

func TestClearPlayableHalf(t *testing.T) {
	g := New(9, 6, 1, true, 1)
	g.Draw(Coord{Row: 2, Col: 2}, 4) // playable half
	g.Draw(Coord{Row: 7, Col: 3}, 3) // staging half
	g.ClearPlayableHalf()

	assert.Equal(t, 0.0, g.UnitAt(Coord{Row: 2, Col: 2}))
	assert.Equal(t, 3.0, g.UnitAt(Coord{Row: 7, Col: 3}))
	assert.Equal(t, 1.0, g.UnitAt(Coord{Row: g.Divider(), Col: 0}), "divider survives")
}

func TestBounds(t *testing.T) {
	g := New(9, 6, 1, true, 1)

	assert.True(t, g.IsInbounds(Coord{Row: 0, Col: 0}))
	assert.True(t, g.IsInbounds(Coord{Row: 8, Col: 5}))
	assert.False(t, g.IsInbounds(Coord{Row: 9, Col: 0}))
	assert.False(t, g.IsInbounds(Coord{Row: 0, Col: -1}))

	assert.True(t, g.IsInboundsPlayableHalf(Coord{Row: 4, Col: 5}))
	assert.False(t, g.IsInboundsPlayableHalf(Coord{Row: 5, Col: 0}), "divider row is not playable")
	assert.False(t, g.IsInboundsPlayableHalf(Coord{Row: 8, Col: 0}))
}

func TestPixelsReturnsCopy(t *testing.T) {
	g := New(3, 3, 1, false, 1)
	first := g.Pixels()
	first[0] = 99
	assert.Equal(t, 0.0, g.Pixels()[0])
}

func TestCoordMove(t *testing.T) {
	c := Coord{Row: 3, Col: 3}
	assert.Equal(t, Coord{Row: 2, Col: 3}, c.Move(Up))
	assert.Equal(t, Coord{Row: 4, Col: 3}, c.Move(Down))
	assert.Equal(t, Coord{Row: 3, Col: 4}, c.Move(Right))
	assert.Equal(t, Coord{Row: 3, Col: 2}, c.Move(Left))
	assert.Equal(t, c, c.Move(Stay))
}

func TestChebyshevDistance(t *testing.T) {
	a := Coord{Row: 2, Col: 2}
	assert.Equal(t, 0, a.ChebyshevDistance(a))
	assert.Equal(t, 1, a.ChebyshevDistance(Coord{Row: 3, Col: 3}))
	assert.Equal(t, 3, a.ChebyshevDistance(Coord{Row: 5, Col: 1}))
}
