// Package object defines the game objects that live on the grid and the
// color palette used to render them. Colors double as the semantic lookup
// key for object types on the rendered canvas.
package object

import (
	"fmt"

	"github.com/numcog/gridgames/internal/game/grid"
)

// Type tags the kind of a game object.
type Type int

const (
	Player Type = iota
	Item
	Targ
	Pile
	Button
	Signal
)

func (t Type) String() string {
	switch t {
	case Player:
		return "player"
	case Item:
		return "item"
	case Targ:
		return "targ"
	case Pile:
		return "pile"
	case Button:
		return "button"
	case Signal:
		return "signal"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Palette values drawn to the canvas. ColorDefault is the empty cell value.
const (
	ColorDefault float64 = 0
	ColorDivider float64 = 1
	ColorPlayer  float64 = 2
	ColorTarg    float64 = 3
	ColorItem    float64 = 4
	ColorPile    float64 = 5
	ColorButton  float64 = 6
	ColorSignal  float64 = 7
)

// Colors maps each object type to its palette value.
var Colors = map[Type]float64{
	Player: ColorPlayer,
	Item:   ColorItem,
	Targ:   ColorTarg,
	Pile:   ColorPile,
	Button: ColorButton,
	Signal: ColorSignal,
}

// Object is a single game object. Identity is the arena ID assigned by the
// registry; Color may diverge from the type's palette entry while an object
// is hidden or flashing.
type Object struct {
	ID    int
	Type  Type
	Color float64
	Coord grid.Coord
}

// New creates an object of the given type at the given coordinate, colored
// with the type's palette entry.
func New(id int, t Type, c grid.Coord) *Object {
	return &Object{ID: id, Type: t, Color: Colors[t], Coord: c}
}

// IsBlocking reports whether the object occupies its cell for the purposes
// of emptiness checks. Signals are visual markers only.
func (o *Object) IsBlocking() bool {
	return o.Type != Signal
}

func (o *Object) String() string {
	return fmt.Sprintf("%s#%d@%s", o.Type, o.ID, o.Coord)
}

// TypePriority orders object types for "what is under the player" queries.
// Downstream consumers depend on this order; override the slice rather than
// assuming it.
var TypePriority = []Type{Button, Targ, Item, Pile, Player}

// Priority returns the 1-based rank of the type in TypePriority, or 0 when
// the type carries no priority (Signal).
func Priority(t Type) int {
	for i, p := range TypePriority {
		if p == t {
			return i + 1
		}
	}
	return 0
}
