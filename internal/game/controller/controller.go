// Package controller implements the episode state machine of the counting
// games: target sampling, variant-specific placement, the animation phase,
// per-step event handling and reward computation. One Controller owns one
// Grid/Registry pair and is driven by a single caller.
package controller

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/numcog/gridgames/internal/game/events"
	"github.com/numcog/gridgames/internal/game/grid"
	"github.com/numcog/gridgames/internal/game/object"
	"github.com/numcog/gridgames/internal/game/registry"
)

// Config holds the static parameters of a game.
type Config struct {
	Variant      Variant
	GridRows     int
	GridCols     int
	PixelDensity int
	TargLow      int // inclusive
	TargHigh     int // inclusive
	Harsh        bool
	HoldOuts     []int
}

// DefaultConfig mirrors the canonical benchmark settings.
func DefaultConfig(v Variant) Config {
	return Config{
		Variant:      v,
		GridRows:     31,
		GridCols:     31,
		PixelDensity: 1,
		TargLow:      1,
		TargHigh:     10,
		Harsh:        false,
	}
}

// Validate checks the configuration. Errors here are fatal at setup and are
// never silently corrected.
func (c Config) Validate() error {
	if c.Variant == VariantUnset {
		return ErrUnsetVariant
	}
	if c.GridRows < 2 || c.GridCols < 1 {
		return fmt.Errorf("%w: grid %dx%d too small", ErrInvalidRange, c.GridRows, c.GridCols)
	}
	if c.TargLow > c.TargHigh {
		return fmt.Errorf("%w: low %d > high %d", ErrInvalidRange, c.TargLow, c.TargHigh)
	}
	// Reward formulas divide by the target count, so zero targets is
	// disallowed outright.
	if c.TargLow < 1 {
		return fmt.Errorf("%w: low %d must be at least 1", ErrInvalidRange, c.TargLow)
	}
	if c.TargHigh >= c.GridCols {
		return fmt.Errorf("%w: high %d must be below grid width %d", ErrInvalidRange, c.TargHigh, c.GridCols)
	}
	holdOuts := make(map[int]struct{}, len(c.HoldOuts))
	for _, h := range c.HoldOuts {
		holdOuts[h] = struct{}{}
	}
	allowed := 0
	for n := c.TargLow; n <= c.TargHigh; n++ {
		if _, held := holdOuts[n]; !held {
			allowed++
		}
	}
	if allowed == 0 {
		return ErrEmptyTargetPool
	}
	return nil
}

// Info is the per-step metadata reported alongside reward and done.
type Info struct {
	IsHarsh           bool
	NTargs            int
	NItems            int
	NAligned          int
	DisplayingTargets bool
	IsAnimating       bool
}

// Controller drives one game. It is not safe for concurrent use; the model
// assumes a single caller per instance.
type Controller struct {
	cfg    Config
	grid   *grid.Grid
	reg    *registry.Registry
	rng    *rand.Rand
	logger zerolog.Logger
	bus    events.Publisher

	episodeID string
	nSteps    int
	animating bool

	holdOuts map[int]struct{}

	// flashing state for the nuts variants
	pendingTargs []*object.Object
	flashedTargs []*object.Object
	currentTarg  *object.Object
}

// Option configures optional collaborators of a Controller.
type Option func(*Controller)

// WithEventBus attaches a publisher for episode lifecycle events.
func WithEventBus(bus events.Publisher) Option {
	return func(c *Controller) { c.bus = bus }
}

// WithLogger overrides the default component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// New builds a controller for the configured variant. The random source is
// required: reproducibility is a design goal, so there is no clock-seeded
// fallback in the engine.
func New(cfg Config, rng *rand.Rand, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	c := &Controller{
		cfg:      cfg,
		rng:      rng,
		logger:   log.With().Str("component", "controller").Stringer("variant", cfg.Variant).Logger(),
		holdOuts: make(map[int]struct{}, len(cfg.HoldOuts)),
	}
	for _, h := range cfg.HoldOuts {
		c.holdOuts[h] = struct{}{}
	}
	for _, opt := range opts {
		opt(c)
	}
	c.grid = grid.New(cfg.GridRows, cfg.GridCols, cfg.PixelDensity, true, object.ColorDivider)
	c.reg = registry.New(c.grid, rng)
	c.reg.SetMaxItems(3 * cfg.TargHigh)
	return c, nil
}

// Config returns the static configuration.
func (c *Controller) Config() Config { return c.cfg }

// Register exposes the registry for adapter-layer queries (object priority
// lookups, player coordinate). Mutation stays with the controller.
func (c *Controller) Register() *registry.Registry { return c.reg }

// NTargs returns the target count of the current episode.
func (c *Controller) NTargs() int { return c.reg.NTargs() }

// MaxPunishment is the reward floor: the negative of the largest target
// count the game can ask for.
func (c *Controller) MaxPunishment() float64 { return -float64(c.cfg.TargHigh) }

// IsAnimating reports whether the initial animation phase is running.
func (c *Controller) IsAnimating() bool { return c.animating }

// EpisodeID identifies the current episode.
func (c *Controller) EpisodeID() string { return c.episodeID }

// StepCount returns the number of steps taken this episode.
func (c *Controller) StepCount() int { return c.nSteps }

// Grid returns a snapshot of the rendered canvas. Two calls without an
// intervening Step or Reset return identical slices.
func (c *Controller) Grid() []float64 { return c.grid.Pixels() }

// Seed replaces the controller's random source. Reseeding mid-episode is
// undefined behavior; call before Reset.
func (c *Controller) Seed(rng *rand.Rand) {
	if rng == nil {
		return
	}
	c.rng = rng
	c.reg.SetRand(rng)
}

// Reset starts a new episode and returns the initial canvas. A nTargs of 0
// samples the target count uniformly from the configured range, excluding
// hold-outs. An explicit hold-out value is honored with a warning.
func (c *Controller) Reset(nTargs int) []float64 {
	if nTargs == 0 {
		nTargs = c.sampleTargs()
	} else if _, held := c.holdOuts[nTargs]; held {
		c.logger.Warn().Int("n_targs", nTargs).Msg("overriding hold-outs with explicit target count")
	}
	c.episodeID = uuid.NewString()
	c.nSteps = 0
	c.animating = true
	c.reg.Reset(nTargs)
	c.place()

	if c.cfg.Variant.flashesTargets() {
		c.pendingTargs = append([]*object.Object(nil), c.reg.Targs()...)
		c.flashedTargs = nil
		c.currentTarg = nil
		for _, t := range c.pendingTargs {
			t.Color = object.ColorDefault
		}
		c.reg.DrawRegister()
	} else {
		c.pendingTargs = nil
		c.flashedTargs = nil
		c.currentTarg = nil
	}

	if c.bus != nil {
		c.bus.Publish(events.NewEpisodeStartedEvent(
			c.episodeID, c.cfg.Variant.String(), nTargs, c.cfg.GridRows, c.cfg.GridCols))
		c.bus.Publish(events.NewTargetsPlacedEvent(c.episodeID, c.cfg.Variant.String(), nTargs))
	}
	c.logger.Debug().Int("n_targs", nTargs).Str("episode_id", c.episodeID).Msg("episode reset")
	return c.grid.Pixels()
}

func (c *Controller) sampleTargs() int {
	span := c.cfg.TargHigh - c.cfg.TargLow + 1
	n := c.cfg.TargLow + c.rng.Intn(span)
	for {
		if _, held := c.holdOuts[n]; !held {
			return n
		}
		n = c.cfg.TargLow + c.rng.Intn(span)
	}
}

// place runs the variant's placement algorithm. This is the single dispatch
// point for placement behavior.
func (c *Controller) place() {
	switch c.cfg.Variant {
	case EvenLineMatch, ReverseClusterMatch:
		c.reg.PlaceEvenLine()
	case UnevenLineMatch:
		c.reg.PlaceUnevenLine()
	case OrthogonalLineMatch:
		c.reg.PlaceOrthogonalLine()
	case ClusterMatch, ClusterClusterMatch, BriefPresentation, NutsInCan:
		c.reg.PlaceCluster(nil)
	case VisNuts:
		// The signal appears mid-episode; keep its cell free of targets.
		c.reg.PlaceCluster(map[grid.Coord]struct{}{c.reg.SignalCoord(): {}})
	}
}
