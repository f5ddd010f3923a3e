// Package registry owns the authoritative set of game objects, the
// coordinate index over them, and the per-step movement/grab resolution of a
// counting game. Controllers drive it through Reset, the placement methods
// and Step; the grid canvas it draws to is a derived view.
package registry

import (
	"math"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/numcog/gridgames/internal/game/grid"
	"github.com/numcog/gridgames/internal/game/object"
)

// Event is the outcome of one simulation step.
type Event int

const (
	// EventStep is an ordinary step: the episode continues.
	EventStep Event = iota
	// EventButtonPress ends the episode and triggers reward evaluation.
	EventButtonPress
	// EventFull ends the episode as a failure: the item ceiling was hit.
	EventFull
)

func (e Event) String() string {
	switch e {
	case EventStep:
		return "step"
	case EventButtonPress:
		return "button_press"
	case EventFull:
		return "full"
	default:
		return "unknown"
	}
}

// Registry enforces the game-object invariants: exactly one player, at most
// one pile and one button, targ count fixed per episode, and a coordinate
// index whose keys always match the objects' coordinates.
type Registry struct {
	grid   *grid.Grid
	rng    *rand.Rand
	logger zerolog.Logger

	objs   map[int]*object.Object
	index  map[grid.Coord]map[int]*object.Object
	nextID int

	player *object.Object
	pile   *object.Object
	button *object.Object
	signal *object.Object
	targs  []*object.Object
	items  []*object.Object

	carried      *object.Object
	wasGrabbing  bool
	displayTargs bool
	maxItems     int
}

// New creates a registry bound to the given grid. The player, pile and
// button are created at their canonical staging coordinates; call Reset
// before stepping.
func New(g *grid.Grid, rng *rand.Rand) *Registry {
	r := &Registry{
		grid:         g,
		rng:          rng,
		logger:       log.With().Str("component", "registry").Logger(),
		objs:         make(map[int]*object.Object),
		index:        make(map[grid.Coord]map[int]*object.Object),
		displayTargs: true,
	}
	r.player = r.create(object.Player, r.PlayerStart())
	r.pile = r.create(object.Pile, r.PileCoord())
	r.button = r.create(object.Button, r.ButtonCoord())
	r.DrawRegister()
	return r
}

// PlayerStart is the canonical player reset coordinate: bottom-left of the
// staging half.
func (r *Registry) PlayerStart() grid.Coord {
	return grid.Coord{Row: r.grid.Rows() - 1, Col: 0}
}

// PileCoord is the canonical pile coordinate: bottom-middle of the staging
// half.
func (r *Registry) PileCoord() grid.Coord {
	return grid.Coord{Row: r.grid.Rows() - 1, Col: r.grid.Cols() / 2}
}

// ButtonCoord is the canonical button coordinate: bottom-right of the
// staging half.
func (r *Registry) ButtonCoord() grid.Coord {
	return grid.Coord{Row: r.grid.Rows() - 1, Col: r.grid.Cols() - 1}
}

// SignalCoord is where the end-of-animation signal appears: the center of
// the playable half.
func (r *Registry) SignalCoord() grid.Coord {
	return grid.Coord{Row: r.grid.Divider() / 2, Col: r.grid.Cols() / 2}
}

// Grid returns the grid this registry draws to.
func (r *Registry) Grid() *grid.Grid { return r.grid }

// Player returns the player object.
func (r *Registry) Player() *object.Object { return r.player }

// Pile returns the pile object.
func (r *Registry) Pile() *object.Object { return r.pile }

// Button returns the button object.
func (r *Registry) Button() *object.Object { return r.button }

// Targs returns the target objects placed for this episode.
func (r *Registry) Targs() []*object.Object { return r.targs }

// Items returns the items currently on the grid.
func (r *Registry) Items() []*object.Object { return r.items }

// NTargs returns the number of targets in this episode.
func (r *Registry) NTargs() int { return len(r.targs) }

// NItems returns the number of items currently on the grid.
func (r *Registry) NItems() int { return len(r.items) }

// Carried returns the item the player is carrying, or nil.
func (r *Registry) Carried() *object.Object { return r.carried }

// DisplayTargs reports whether targets are drawn to the canvas.
func (r *Registry) DisplayTargs() bool { return r.displayTargs }

// SetRand swaps the random source used by placement algorithms.
func (r *Registry) SetRand(rng *rand.Rand) { r.rng = rng }

// SetMaxItems configures the item ceiling past which Step reports EventFull.
// A ceiling of zero disables the check.
func (r *Registry) SetMaxItems(n int) { r.maxItems = n }

// Reset re-initializes the registry for a new episode: items and targs from
// the previous episode are destroyed, nTargs fresh targets are created (to
// be positioned by a placement method), and the player, pile and button
// return to their canonical coordinates.
func (r *Registry) Reset(nTargs int) {
	for _, it := range r.items {
		r.destroy(it)
	}
	r.items = nil
	for _, t := range r.targs {
		r.destroy(t)
	}
	r.targs = nil
	if r.signal != nil {
		r.destroy(r.signal)
		r.signal = nil
	}
	r.carried = nil
	r.wasGrabbing = false
	r.displayTargs = true

	r.moveObject(r.player, r.PlayerStart())
	r.moveObject(r.pile, r.PileCoord())
	r.moveObject(r.button, r.ButtonCoord())

	r.targs = make([]*object.Object, 0, nTargs)
	for i := 0; i < nTargs; i++ {
		r.targs = append(r.targs, r.create(object.Targ, grid.Coord{}))
	}
	r.DrawRegister()
}

// ObjectsAt returns the objects occupying the coordinate. The slice is a
// copy; priority ordering among them is the caller's concern.
func (r *Registry) ObjectsAt(c grid.Coord) []*object.Object {
	set := r.index[c]
	out := make([]*object.Object, 0, len(set))
	for _, o := range set {
		out = append(out, o)
	}
	return out
}

// IsEmpty reports whether a cell holds nothing that would block placement
// or grabbing: the player itself and signal markers do not count.
func (r *Registry) IsEmpty(c grid.Coord) bool {
	for _, o := range r.index[c] {
		if o != r.player && o.IsBlocking() {
			return false
		}
	}
	return true
}

// MakeSignal places the end-of-animation signal marker. No-op if the signal
// already exists.
func (r *Registry) MakeSignal() {
	if r.signal != nil {
		return
	}
	r.signal = r.create(object.Signal, r.SignalCoord())
	r.DrawRegister()
}

// HasSignal reports whether the signal marker has been placed this episode.
func (r *Registry) HasSignal() bool { return r.signal != nil }

// HideTargs stops targets from being drawn for the rest of the episode.
func (r *Registry) HideTargs() {
	r.displayTargs = false
	r.DrawRegister()
}

// DrawRegister renders every object to the grid canvas. The player is drawn
// last so it stays visible atop anything it shares a cell with.
func (r *Registry) DrawRegister() {
	r.grid.Clear()
	if r.displayTargs {
		for _, t := range r.targs {
			r.grid.Draw(t.Coord, t.Color)
		}
	}
	r.grid.Draw(r.pile.Coord, r.pile.Color)
	r.grid.Draw(r.button.Coord, r.button.Color)
	for _, it := range r.items {
		r.grid.Draw(it.Coord, it.Color)
	}
	if r.signal != nil {
		r.grid.Draw(r.signal.Coord, r.signal.Color)
	}
	r.grid.Draw(r.player.Coord, r.player.Color)
}

func (r *Registry) create(t object.Type, c grid.Coord) *object.Object {
	o := object.New(r.nextID, t, c)
	r.nextID++
	r.objs[o.ID] = o
	r.indexAdd(o)
	return o
}

func (r *Registry) destroy(o *object.Object) {
	r.indexRemove(o)
	delete(r.objs, o.ID)
}

func (r *Registry) indexAdd(o *object.Object) {
	set := r.index[o.Coord]
	if set == nil {
		set = make(map[int]*object.Object)
		r.index[o.Coord] = set
	}
	set[o.ID] = o
}

func (r *Registry) indexRemove(o *object.Object) {
	set := r.index[o.Coord]
	delete(set, o.ID)
	if len(set) == 0 {
		delete(r.index, o.Coord)
	}
}

func (r *Registry) moveObject(o *object.Object, c grid.Coord) {
	r.indexRemove(o)
	o.Coord = c
	r.indexAdd(o)
}

// TargetFor converts a grid coordinate back to the continuous (x, y) input
// that maps onto it. Inverse of the Step target mapping; used by scripted
// drivers and tests.
func (r *Registry) TargetFor(c grid.Coord) (x, y float64) {
	ctr := r.playableCenter()
	x = float64(c.Col-ctr.Col) / (float64(r.grid.Cols()) / 2)
	y = float64(c.Row-ctr.Row) / (float64(r.grid.Rows()) / 2)
	return x, y
}

func (r *Registry) playableCenter() grid.Coord {
	return grid.Coord{Row: r.grid.Divider() / 2, Col: r.grid.Cols() / 2}
}

func (r *Registry) targetCoord(x, y float64) grid.Coord {
	ctr := r.playableCenter()
	row := ctr.Row + int(math.Round(y*float64(r.grid.Rows())/2))
	col := ctr.Col + int(math.Round(x*float64(r.grid.Cols())/2))
	if row < 0 {
		row = 0
	} else if row >= r.grid.Rows() {
		row = r.grid.Rows() - 1
	}
	if col < 0 {
		col = 0
	} else if col >= r.grid.Cols() {
		col = r.grid.Cols() - 1
	}
	return grid.Coord{Row: row, Col: col}
}
