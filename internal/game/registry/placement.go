package registry

import (
	"sort"

	"github.com/numcog/gridgames/internal/game/grid"
)

// Placement algorithms position the episode's targets inside the playable
// half. Each one guarantees that no two targets share a coordinate. They are
// invoked once per episode by the owning controller, before player movement
// begins.

// lineRow is the fixed row line-match variants place targets in: the last
// playable row, directly above the divider.
func (r *Registry) lineRow() int {
	return r.grid.Divider() - 1
}

// PlaceEvenLine spreads the targets across a single row with even spacing:
// target i lands in column (i+1)*cols/(n+1).
func (r *Registry) PlaceEvenLine() {
	n := len(r.targs)
	row := r.lineRow()
	for i, t := range r.targs {
		col := (i + 1) * r.grid.Cols() / (n + 1)
		r.moveObject(t, grid.Coord{Row: row, Col: col})
	}
	r.DrawRegister()
}

// PlaceUnevenLine places the targets in a single row at monotonically
// increasing columns with non-uniform random gaps. Uniform spacings are
// rejected and redrawn so the arrangement never degenerates into the even
// variant when more than two targets are present.
func (r *Registry) PlaceUnevenLine() {
	n := len(r.targs)
	row := r.lineRow()
	if n == 0 {
		return
	}
	cols := r.sampleUnevenCols(n)
	for i, t := range r.targs {
		r.moveObject(t, grid.Coord{Row: row, Col: cols[i]})
	}
	r.DrawRegister()
}

func (r *Registry) sampleUnevenCols(n int) []int {
	width := r.grid.Cols()
	const maxAttempts = 100
	var cols []int
	for attempt := 0; attempt < maxAttempts; attempt++ {
		cols = r.sampleDistinctCols(n, width)
		sort.Ints(cols)
		if n <= 2 || !uniformGaps(cols) {
			return cols
		}
	}
	// Nearly-full rows can make uneven gaps impossible; accept the last draw.
	return cols
}

func (r *Registry) sampleDistinctCols(n, width int) []int {
	picked := make(map[int]struct{}, n)
	cols := make([]int, 0, n)
	for len(cols) < n {
		c := r.rng.Intn(width)
		if _, ok := picked[c]; ok {
			continue
		}
		picked[c] = struct{}{}
		cols = append(cols, c)
	}
	return cols
}

func uniformGaps(cols []int) bool {
	if len(cols) < 3 {
		return true
	}
	gap := cols[1] - cols[0]
	for i := 2; i < len(cols); i++ {
		if cols[i]-cols[i-1] != gap {
			return false
		}
	}
	return true
}

// PlaceCluster scatters the targets uniformly over the playable half,
// rejection-sampling against collisions with already placed targets and any
// excluded coordinates.
func (r *Registry) PlaceCluster(exclude map[grid.Coord]struct{}) {
	occupied := make(map[grid.Coord]struct{}, len(r.targs)+len(exclude))
	for c := range exclude {
		occupied[c] = struct{}{}
	}
	divider := r.grid.Divider()
	for _, t := range r.targs {
		coord := r.sampleFreePlayable(occupied, divider)
		occupied[coord] = struct{}{}
		r.moveObject(t, coord)
	}
	r.DrawRegister()
}

func (r *Registry) sampleFreePlayable(occupied map[grid.Coord]struct{}, divider int) grid.Coord {
	maxAttempts := divider * r.grid.Cols() * 10
	for attempt := 0; attempt < maxAttempts; attempt++ {
		c := grid.Coord{Row: r.rng.Intn(divider), Col: r.rng.Intn(r.grid.Cols())}
		if _, taken := occupied[c]; !taken {
			return c
		}
	}
	// Fallback scan so a crowded playable half cannot loop forever.
	for row := 0; row < divider; row++ {
		for col := 0; col < r.grid.Cols(); col++ {
			c := grid.Coord{Row: row, Col: col}
			if _, taken := occupied[c]; !taken {
				return c
			}
		}
	}
	panic("no free playable cell for target placement")
}

// PlaceOrthogonalLine stacks the targets in a single column, spaced evenly
// down the playable half the way PlaceEvenLine spaces them across a row.
// When the playable half is too short for even spacing the targets fill
// consecutive rows, wrapping into the neighboring column if they outnumber
// the rows.
func (r *Registry) PlaceOrthogonalLine() {
	n := len(r.targs)
	divider := r.grid.Divider()
	col := r.grid.Cols() / 2
	for i, t := range r.targs {
		var c grid.Coord
		if divider >= n+1 {
			c = grid.Coord{Row: (i + 1) * divider / (n + 1), Col: col}
		} else {
			c = grid.Coord{Row: i % divider, Col: col + i/divider}
		}
		r.moveObject(t, c)
	}
	r.DrawRegister()
}
