// Package env adapts a game controller to a training loop: it translates
// external action representations into movement/grab pairs, enforces the
// per-episode step budget, and reports the priority-ordered object under the
// player. The simulation semantics stay in internal/game.
package env

import (
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/numcog/gridgames/internal/game/controller"
	"github.com/numcog/gridgames/internal/game/grid"
	"github.com/numcog/gridgames/internal/game/object"
	"github.com/numcog/gridgames/internal/game/registry"
)

// DiscreteAction is the 6-way discrete action space.
type DiscreteAction int

const (
	ActionStay DiscreteAction = iota
	ActionUp
	ActionRight
	ActionDown
	ActionLeft
	ActionToggleGrab
)

// StepResult is the full outcome of one environment step.
type StepResult struct {
	Canvas []float64
	Reward float64
	Done   bool
	Info   controller.Info
	// Grab is the priority code of the highest-priority object sharing the
	// player's cell while grabbing, 0 when not grabbing or alone.
	Grab int
}

// Env wraps a controller with the episode bookkeeping the training loop
// expects: step budget, item ceiling and grab-state toggling for the
// discrete action space.
type Env struct {
	ctrl   *controller.Controller
	logger zerolog.Logger

	stepCount      int
	maxSteps       int
	masterMaxSteps int // caller-provided override, 0 for automatic
	maxStepBase    int
	maxItems       int
	isGrabbing     bool
}

// New builds an environment around a freshly constructed controller, seeded
// from the given seed. The first episode starts immediately.
func New(cfg controller.Config, seed int64) (*Env, error) {
	rng := rand.New(rand.NewSource(seed))
	ctrl, err := controller.New(cfg, rng)
	if err != nil {
		return nil, err
	}
	return Wrap(ctrl, 0), nil
}

// Wrap adapts an existing controller. maxSteps of 0 derives the budget from
// the grid size and target count on every reset.
func Wrap(ctrl *controller.Controller, maxSteps int) *Env {
	cfg := ctrl.Config()
	e := &Env{
		ctrl:           ctrl,
		logger:         log.With().Str("component", "env").Stringer("variant", cfg.Variant).Logger(),
		masterMaxSteps: maxSteps,
		maxStepBase:    cfg.GridRows / 2 * cfg.GridCols * 2,
		maxItems:       3 * cfg.TargHigh,
	}
	e.Reset(0)
	return e
}

// Controller exposes the wrapped controller.
func (e *Env) Controller() *controller.Controller { return e.ctrl }

// MaxSteps returns the step budget of the current episode.
func (e *Env) MaxSteps() int { return e.maxSteps }

// StepCount returns the number of steps taken this episode.
func (e *Env) StepCount() int { return e.stepCount }

// IsGrabbing reports the discrete action space's persistent grab state.
func (e *Env) IsGrabbing() bool { return e.isGrabbing }

// Reset starts a new episode; nTargs of 0 samples the target count. The
// budget is enough for the agent to walk the playable perimeter n_targs+1
// times.
func (e *Env) Reset(nTargs int) []float64 {
	return e.ResetWithMaxSteps(nTargs, 0)
}

// ResetWithMaxSteps starts a new episode with an explicit step budget;
// maxSteps of 0 falls back to the construction-time override, then to the
// automatic budget.
func (e *Env) ResetWithMaxSteps(nTargs, maxSteps int) []float64 {
	canvas := e.ctrl.Reset(nTargs)
	switch {
	case maxSteps > 0:
		e.maxSteps = maxSteps
	case e.masterMaxSteps > 0:
		e.maxSteps = e.masterMaxSteps
	default:
		e.maxSteps = (e.ctrl.NTargs() + 1) * e.maxStepBase
	}
	e.stepCount = 0
	e.isGrabbing = false
	return canvas
}

// StepDiscrete consumes one discrete action. Movement actions keep the
// current grab state; ActionToggleGrab stays in place and flips it.
func (e *Env) StepDiscrete(a DiscreteAction) StepResult {
	var move registry.Move
	grab := e.isGrabbing
	switch a {
	case ActionStay, ActionUp, ActionRight, ActionDown, ActionLeft:
		move = registry.DirectionMove(grid.Direction(a))
	default:
		move = registry.DirectionMove(grid.Stay)
		grab = e.toggleGrab()
	}
	return e.step(move, grab)
}

// StepContinuous consumes a continuous 3-vector action: an (x, y) target
// coordinate and a grab scalar where positive means grabbing.
func (e *Env) StepContinuous(x, y, grabScalar float64) StepResult {
	return e.step(registry.TargetMove(x, y), grabScalar > 0)
}

// toggleGrab flips the persistent grab state. Grabbing only engages when
// something lies under the player, and is refused outright while a
// brief-presentation animation is running.
func (e *Env) toggleGrab() bool {
	grab := !e.isGrabbing
	reg := e.ctrl.Register()
	if e.isGrabbing {
		e.isGrabbing = false
	} else if !reg.IsEmpty(reg.Player().Coord) {
		e.isGrabbing = true
	}
	if e.ctrl.Config().Variant == controller.BriefPresentation && e.ctrl.IsAnimating() {
		e.isGrabbing = false
		grab = false
	}
	return grab
}

func (e *Env) step(move registry.Move, grab bool) StepResult {
	e.stepCount++
	canvas, rew, done, info := e.ctrl.Step(move, grab)
	res := StepResult{
		Canvas: canvas,
		Reward: rew,
		Done:   done,
		Info:   info,
		Grab:   e.objectUnderPlayer(grab),
	}
	if e.stepCount > e.maxSteps {
		res.Done = true
	}
	if info.NItems > e.maxItems {
		res.Done = true
	} else if e.stepCount == e.maxSteps && res.Reward == 0 {
		res.Reward = e.ctrl.MaxPunishment()
		res.Done = true
	}
	return res
}

// objectUnderPlayer returns the priority code of the first object sharing
// the player's cell, honoring object.TypePriority. 0 means the player is
// either not grabbing or alone on its cell.
func (e *Env) objectUnderPlayer(grab bool) int {
	if !grab {
		return 0
	}
	reg := e.ctrl.Register()
	player := reg.Player()
	present := make(map[object.Type]bool)
	for _, o := range reg.ObjectsAt(player.Coord) {
		if o != player {
			present[o.Type] = true
		}
	}
	for _, t := range object.TypePriority {
		if present[t] {
			return object.Priority(t)
		}
	}
	return 0
}
