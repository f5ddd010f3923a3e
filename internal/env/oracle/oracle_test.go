package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numcog/gridgames/internal/env"
	"github.com/numcog/gridgames/internal/game/controller"
	"github.com/numcog/gridgames/internal/testutil"
)

func TestOracleSolvesEveryVariant(t *testing.T) {
	for _, v := range controller.Variants {
		t.Run(v.String(), func(t *testing.T) {
			for seed := int64(1); seed <= 5; seed++ {
				e, err := env.New(testutil.TestConfig(v), seed)
				require.NoError(t, err)

				o := New(e)
				res := o.Run()
				assert.True(t, res.Done, "seed %d: episode should end on the button press", seed)
				assert.Equal(t, 1.0, res.Reward, "seed %d: the oracle plays perfectly under harsh grading", seed)
			}
		})
	}
}

func TestOracleSolvesSampledTargetCounts(t *testing.T) {
	cfg := testutil.TestConfig(controller.EvenLineMatch)
	cfg.TargLow, cfg.TargHigh = 1, 4

	for seed := int64(1); seed <= 10; seed++ {
		e, err := env.New(cfg, seed)
		require.NoError(t, err)

		o := New(e)
		res := o.Run()
		require.True(t, res.Done)
		assert.Equal(t, 1.0, res.Reward, "seed %d with %d targets", seed, e.Controller().NTargs())
	}
}

func TestOracleReplansAfterReset(t *testing.T) {
	e, err := env.New(testutil.TestConfig(controller.ClusterMatch), 123456)
	require.NoError(t, err)

	o := New(e)
	res := o.Run()
	require.Equal(t, 1.0, res.Reward)

	e.Reset(0)
	o.Plan()
	res = o.Run()
	assert.Equal(t, 1.0, res.Reward)
	assert.True(t, res.Done)
}

func TestOracleStepCountIsMinimal(t *testing.T) {
	e, err := env.New(testutil.TestConfig(controller.EvenLineMatch), 123456)
	require.NoError(t, err)

	o := New(e)
	res := o.Run()
	require.True(t, res.Done)

	// n_targs+1 counting steps, three steps per item, one button press.
	n := e.Controller().NTargs()
	assert.Equal(t, (n+1)+3*n+1, e.StepCount())
}

func TestNextDrainsQueue(t *testing.T) {
	e, err := env.New(testutil.TestConfig(controller.EvenLineMatch), 1)
	require.NoError(t, err)

	o := New(e)
	n := 0
	for {
		_, _, _, ok := o.Next()
		if !ok {
			break
		}
		n++
	}
	assert.Equal(t, 18, n, "4 targets plan to 18 actions")
	_, _, _, ok := o.Next()
	assert.False(t, ok)
}
