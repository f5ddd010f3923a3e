package testutil

import (
	"github.com/numcog/gridgames/internal/game/controller"
	"github.com/numcog/gridgames/internal/game/grid"
	"github.com/numcog/gridgames/internal/game/object"
	"github.com/numcog/gridgames/internal/game/registry"
)

// NewTestGrid creates a divided grid at unit pixel density
func NewTestGrid(rows, cols int) *grid.Grid {
	return grid.New(rows, cols, 1, true, object.ColorDivider)
}

// NewTestRegistry creates a registry over a fresh divided grid with a
// deterministic RNG
func NewTestRegistry(rows, cols int, seed int64) *registry.Registry {
	return registry.New(NewTestGrid(rows, cols), NewTestRNG(seed))
}

// TestConfig returns a small, fast configuration for the given variant:
// a 9x6 grid with a fixed target count of 4 and harsh rewards
func TestConfig(v controller.Variant) controller.Config {
	return controller.Config{
		Variant:      v,
		GridRows:     9,
		GridCols:     6,
		PixelDensity: 1,
		TargLow:      4,
		TargHigh:     4,
		Harsh:        true,
	}
}

// NewTestController creates a controller with TestConfig settings and a
// deterministic RNG, failing loudly on configuration errors
func NewTestController(v controller.Variant, seed int64) *controller.Controller {
	ctrl, err := controller.New(TestConfig(v), NewTestRNG(seed))
	if err != nil {
		panic(err)
	}
	return ctrl
}
