// Package geometry provides pure helpers over object sets: row/column sets,
// aligned-item counts and maximal populated rows. Controllers consume these
// in their reward logic.
package geometry

import (
	"github.com/numcog/gridgames/internal/game/object"
)

// RowsAndCols returns the set of rows and the set of columns occupied by the
// given objects.
func RowsAndCols(objs []*object.Object) (rows, cols map[int]struct{}) {
	rows = make(map[int]struct{}, len(objs))
	cols = make(map[int]struct{}, len(objs))
	for _, o := range objs {
		rows[o.Coord.Row] = struct{}{}
		cols[o.Coord.Col] = struct{}{}
	}
	return rows, cols
}

// AlignedItems returns the items sharing a column with at least one targ,
// restricted to items at row >= minRow.
func AlignedItems(items, targs []*object.Object, minRow int) []*object.Object {
	targCols := make(map[int]struct{}, len(targs))
	for _, t := range targs {
		targCols[t.Coord.Col] = struct{}{}
	}
	var aligned []*object.Object
	for _, it := range items {
		if it.Coord.Row < minRow {
			continue
		}
		if _, ok := targCols[it.Coord.Col]; ok {
			aligned = append(aligned, it)
		}
	}
	return aligned
}

// MaxRow returns the most populated row among items at row >= minRow and the
// number of items in it. Returns (-1, 0) when no item qualifies. Ties go to
// the smaller row index.
func MaxRow(items []*object.Object, minRow int) (row, count int) {
	perRow := make(map[int]int)
	for _, it := range items {
		if it.Coord.Row >= minRow {
			perRow[it.Coord.Row]++
		}
	}
	row = -1
	for r, n := range perRow {
		if n > count || (n == count && (row == -1 || r < row)) {
			row, count = r, n
		}
	}
	return row, count
}

// Intersection returns the size of the intersection of two integer sets.
func Intersection(a, b map[int]struct{}) int {
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

// SetsEqual reports whether two integer sets hold the same members.
func SetsEqual(a, b map[int]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	return Intersection(a, b) == len(a)
}
