// Package oracle provides scripted solvers for every game variant. An
// oracle inspects the registry after reset, plans a full episode of
// continuous actions and replays it, finishing with a button press. It is
// the reference driver for end-to-end tests and the demo CLI.
package oracle

import (
	"sort"

	"github.com/numcog/gridgames/internal/env"
	"github.com/numcog/gridgames/internal/game/controller"
	"github.com/numcog/gridgames/internal/game/grid"
)

type action struct {
	x, y float64
	grab float64
}

// Oracle plays one environment episode optimally (for harsh grading).
type Oracle struct {
	env   *env.Env
	queue []action
}

// New plans against the environment's current episode. Re-plan after every
// reset.
func New(e *env.Env) *Oracle {
	o := &Oracle{env: e}
	o.Plan()
	return o
}

// Plan rebuilds the action queue from the current episode state.
func (o *Oracle) Plan() {
	ctrl := o.env.Controller()
	reg := ctrl.Register()
	nTargs := ctrl.NTargs()

	o.queue = o.queue[:0]

	// Sit through the counting/flashing phase: grab input is dead until the
	// signal can appear.
	stayX, stayY := reg.TargetFor(reg.Player().Coord)
	for i := 0; i < nTargs+1; i++ {
		o.queue = append(o.queue, action{x: stayX, y: stayY})
	}

	pileX, pileY := reg.TargetFor(reg.Pile().Coord)
	for _, dest := range o.itemDestinations() {
		dx, dy := reg.TargetFor(dest)
		o.queue = append(o.queue,
			action{x: pileX, y: pileY, grab: 1}, // spawn and pick up
			action{x: dx, y: dy, grab: 1},       // carry
			action{x: dx, y: dy, grab: 0},       // release
		)
	}

	buttonX, buttonY := reg.TargetFor(reg.Button().Coord)
	o.queue = append(o.queue, action{x: buttonX, y: buttonY, grab: 1})
}

// itemDestinations picks one drop cell per required item, all in the first
// staging row so the items end up in a single line.
func (o *Oracle) itemDestinations() []grid.Coord {
	ctrl := o.env.Controller()
	reg := ctrl.Register()
	row := reg.Grid().Divider()
	nTargs := ctrl.NTargs()

	var cols []int
	switch ctrl.Config().Variant {
	case controller.EvenLineMatch, controller.UnevenLineMatch:
		// Mirror the target columns exactly.
		for _, t := range reg.Targs() {
			cols = append(cols, t.Coord.Col)
		}
		sort.Ints(cols)
	case controller.ReverseClusterMatch:
		// Match the count while avoiding perfect column alignment: lead
		// with columns no target occupies.
		targCols := make(map[int]bool, nTargs)
		for _, t := range reg.Targs() {
			targCols[t.Coord.Col] = true
		}
		for c := 0; c < reg.Grid().Cols() && len(cols) < nTargs; c++ {
			if !targCols[c] {
				cols = append(cols, c)
			}
		}
		for c := 0; c < reg.Grid().Cols() && len(cols) < nTargs; c++ {
			if targCols[c] {
				cols = append(cols, c)
			}
		}
	default:
		// Count matching only: any distinct columns along one row do.
		for c := 0; c < nTargs; c++ {
			cols = append(cols, c)
		}
	}

	dests := make([]grid.Coord, 0, len(cols))
	for _, c := range cols {
		dests = append(dests, grid.Coord{Row: row, Col: c})
	}
	return dests
}

// Next returns the next planned action, or ok=false when the plan is
// exhausted.
func (o *Oracle) Next() (x, y, grab float64, ok bool) {
	if len(o.queue) == 0 {
		return 0, 0, 0, false
	}
	a := o.queue[0]
	o.queue = o.queue[1:]
	return a.x, a.y, a.grab, true
}

// Run replays the plan against the environment and returns the terminal
// step result.
func (o *Oracle) Run() env.StepResult {
	var res env.StepResult
	for {
		x, y, grab, ok := o.Next()
		if !ok {
			return res
		}
		res = o.env.StepContinuous(x, y, grab)
		if res.Done {
			return res
		}
	}
}
