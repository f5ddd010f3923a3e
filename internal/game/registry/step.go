package registry

import (
	"github.com/numcog/gridgames/internal/game/grid"
	"github.com/numcog/gridgames/internal/game/object"
)

// Move is a single movement input: either a discrete direction or a
// continuous target. When Target is non-nil it takes precedence.
type Move struct {
	Dir    grid.Direction
	Target *Target
}

// Target is a continuous movement input in [-1, 1] on both axes, centered on
// the middle of the playable half. It is rounded to the nearest in-bounds
// unit.
type Target struct {
	X, Y float64
}

// DirectionMove wraps a discrete direction as a Move.
func DirectionMove(d grid.Direction) Move {
	return Move{Dir: d}
}

// TargetMove wraps a continuous coordinate as a Move.
func TargetMove(x, y float64) Move {
	return Move{Target: &Target{X: x, Y: y}}
}

// Step executes one discrete simulation step: it resolves the player's
// destination, handles grab acquisition and release, moves the player and
// any carried item, and reports the resulting event. Out-of-bounds direction
// moves leave the player in place; they are never an error.
func (r *Registry) Step(m Move, grab bool) Event {
	dest := r.destination(m)

	// Grab acquisition happens at the destination: stepping onto the pile
	// while grabbing spawns a fresh item; stepping onto a loose item picks
	// it up. At most one object is ever carried.
	if grab && r.carried == nil {
		if r.pile.Coord.Equal(dest) {
			it := r.create(object.Item, r.pile.Coord)
			r.items = append(r.items, it)
			r.carried = it
			r.logger.Debug().Stringer("coord", dest).Int("n_items", len(r.items)).Msg("item spawned from pile")
		} else if it := r.itemAt(dest, nil); it != nil {
			r.carried = it
		}
	}

	r.moveObject(r.player, dest)
	if r.carried != nil {
		r.moveObject(r.carried, dest)
	}

	// Release resolution: a grab->no-grab transition drops the carried item.
	// Over the pile the item is returned (destroyed); over another item the
	// dropped one is displaced to the nearest empty cell.
	if r.wasGrabbing && !grab && r.carried != nil {
		dropped := r.carried
		r.carried = nil
		if r.pile.Coord.Equal(dest) {
			r.removeItem(dropped)
		} else if r.itemAt(dest, dropped) != nil {
			r.moveObject(dropped, r.findSpace(dest))
		}
	}
	r.wasGrabbing = grab

	r.DrawRegister()

	if grab && r.player.Coord.Equal(r.button.Coord) {
		return EventButtonPress
	}
	if r.maxItems > 0 && len(r.items) > r.maxItems {
		return EventFull
	}
	return EventStep
}

func (r *Registry) destination(m Move) grid.Coord {
	if m.Target != nil {
		return r.targetCoord(m.Target.X, m.Target.Y)
	}
	next := r.player.Coord.Move(m.Dir)
	if !r.grid.IsInbounds(next) {
		return r.player.Coord
	}
	return next
}

// itemAt returns an item at the coordinate other than the excluded one, or
// nil.
func (r *Registry) itemAt(c grid.Coord, exclude *object.Object) *object.Object {
	for _, o := range r.index[c] {
		if o.Type == object.Item && o != exclude {
			return o
		}
	}
	return nil
}

func (r *Registry) removeItem(it *object.Object) {
	for i, o := range r.items {
		if o == it {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	r.destroy(it)
}

// findSpace locates the nearest empty in-bounds cell for a displaced item.
// The four orthogonal neighbors are tried first in Up, Right, Down, Left
// order; failing that the search spirals outward over Chebyshev rings,
// scanning each ring clockwise from the top so the same angular priority
// holds.
func (r *Registry) findSpace(c grid.Coord) grid.Coord {
	for _, d := range []grid.Direction{grid.Up, grid.Right, grid.Down, grid.Left} {
		n := c.Move(d)
		if r.grid.IsInbounds(n) && r.IsEmpty(n) {
			return n
		}
	}
	maxRadius := r.grid.Rows() + r.grid.Cols()
	for radius := 1; radius <= maxRadius; radius++ {
		for _, n := range ringCoords(c, radius) {
			if r.grid.IsInbounds(n) && r.IsEmpty(n) {
				return n
			}
		}
	}
	return c
}

// ringCoords lists the cells at exactly the given Chebyshev radius,
// clockwise starting from straight up.
func ringCoords(c grid.Coord, radius int) []grid.Coord {
	out := make([]grid.Coord, 0, 8*radius)
	for dc := 0; dc <= radius; dc++ { // top edge, center to right corner
		out = append(out, grid.Coord{Row: c.Row - radius, Col: c.Col + dc})
	}
	for dr := -radius + 1; dr <= radius; dr++ { // right edge
		out = append(out, grid.Coord{Row: c.Row + dr, Col: c.Col + radius})
	}
	for dc := radius - 1; dc >= -radius; dc-- { // bottom edge
		out = append(out, grid.Coord{Row: c.Row + radius, Col: c.Col + dc})
	}
	for dr := radius - 1; dr >= -radius; dr-- { // left edge
		out = append(out, grid.Coord{Row: c.Row + dr, Col: c.Col - radius})
	}
	for dc := -radius + 1; dc <= -1; dc++ { // top edge, left corner to center
		out = append(out, grid.Coord{Row: c.Row - radius, Col: c.Col + dc})
	}
	return out
}
