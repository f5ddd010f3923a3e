package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/numcog/gridgames/internal/game/grid"
	"github.com/numcog/gridgames/internal/game/object"
)

func objsAt(coords ...grid.Coord) []*object.Object {
	out := make([]*object.Object, len(coords))
	for i, c := range coords {
		out[i] = &object.Object{ID: i, Type: object.Item, Coord: c}
	}
	return out
}

func TestRowsAndCols(t *testing.T) {
	objs := objsAt(
		grid.Coord{Row: 1, Col: 2},
		grid.Coord{Row: 1, Col: 4},
		grid.Coord{Row: 3, Col: 2},
	)
	rows, cols := RowsAndCols(objs)
	assert.Equal(t, map[int]struct{}{1: {}, 3: {}}, rows)
	assert.Equal(t, map[int]struct{}{2: {}, 4: {}}, cols)
}

func TestRowsAndColsEmpty(t *testing.T) {
	rows, cols := RowsAndCols(nil)
	assert.Empty(t, rows)
	assert.Empty(t, cols)
}

func TestAlignedItems(t *testing.T) {
	targs := objsAt(
		grid.Coord{Row: 4, Col: 1},
		grid.Coord{Row: 4, Col: 3},
	)
	items := objsAt(
		grid.Coord{Row: 0, Col: 1}, // aligned but below minRow 1
		grid.Coord{Row: 2, Col: 1}, // aligned
		grid.Coord{Row: 3, Col: 3}, // aligned
		grid.Coord{Row: 2, Col: 2}, // wrong column
	)

	aligned := AlignedItems(items, targs, 1)
	assert.Len(t, aligned, 2)

	// minRow 0 admits the top-row item as well.
	aligned = AlignedItems(items, targs, 0)
	assert.Len(t, aligned, 3)
}

func TestAlignedItemsNoTargs(t *testing.T) {
	items := objsAt(grid.Coord{Row: 1, Col: 1})
	assert.Empty(t, AlignedItems(items, nil, 0))
}

func TestMaxRow(t *testing.T) {
	tests := []struct {
		name      string
		coords    []grid.Coord
		minRow    int
		wantRow   int
		wantCount int
	}{
		{
			name: "single dominant row",
			coords: []grid.Coord{
				{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 3}, {Row: 1, Col: 0},
			},
			minRow:    0,
			wantRow:   2,
			wantCount: 3,
		},
		{
			name: "tie goes to smaller row",
			coords: []grid.Coord{
				{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 3, Col: 0}, {Row: 3, Col: 1},
			},
			minRow:    0,
			wantRow:   1,
			wantCount: 2,
		},
		{
			name: "minRow excludes top row",
			coords: []grid.Coord{
				{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 2, Col: 0},
			},
			minRow:    1,
			wantRow:   2,
			wantCount: 1,
		},
		{
			name:      "no qualifying items",
			coords:    []grid.Coord{{Row: 0, Col: 0}},
			minRow:    1,
			wantRow:   -1,
			wantCount: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, count := MaxRow(objsAt(tt.coords...), tt.minRow)
			assert.Equal(t, tt.wantRow, row)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestIntersection(t *testing.T) {
	a := map[int]struct{}{1: {}, 2: {}, 3: {}}
	b := map[int]struct{}{2: {}, 3: {}, 4: {}}
	assert.Equal(t, 2, Intersection(a, b))
	assert.Equal(t, 0, Intersection(a, map[int]struct{}{}))
}

func TestSetsEqual(t *testing.T) {
	a := map[int]struct{}{1: {}, 2: {}}
	assert.True(t, SetsEqual(a, map[int]struct{}{2: {}, 1: {}}))
	assert.False(t, SetsEqual(a, map[int]struct{}{1: {}}))
	assert.False(t, SetsEqual(a, map[int]struct{}{1: {}, 3: {}}))
	assert.True(t, SetsEqual(map[int]struct{}{}, map[int]struct{}{}))
}
