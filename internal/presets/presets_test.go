package presets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numcog/gridgames/internal/game/controller"
)

const sampleYAML = `
- name: small_even
  variant: even_line_match
  grid_rows: 9
  grid_cols: 6
  pixel_density: 1
  targ_low: 4
  targ_high: 4
  harsh: true
- name: nuts
  variant: nuts_in_can
  grid_rows: 31
  grid_cols: 31
  pixel_density: 1
  targ_low: 1
  targ_high: 10
  hold_outs: [3, 7]
`

func TestLoad(t *testing.T) {
	ps, err := Load(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.Len(t, ps, 2)

	assert.Equal(t, "small_even", ps[0].Name)
	assert.Equal(t, "even_line_match", ps[0].Variant)
	assert.True(t, ps[0].Harsh)
	assert.Equal(t, []int{3, 7}, ps[1].HoldOuts)
}

func TestLoadRejectsDuplicateNames(t *testing.T) {
	dup := `
- name: twin
  variant: even_line_match
- name: twin
  variant: cluster_match
`
	_, err := Load(strings.NewReader(dup))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadRejectsUnnamedPreset(t *testing.T) {
	_, err := Load(strings.NewReader("- variant: even_line_match\n"))
	assert.Error(t, err)
}

func TestControllerConfig(t *testing.T) {
	ps, err := Load(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	cfg, err := ps[0].ControllerConfig()
	require.NoError(t, err)
	assert.Equal(t, controller.EvenLineMatch, cfg.Variant)
	assert.Equal(t, 9, cfg.GridRows)
	assert.Equal(t, 4, cfg.TargLow)
}

func TestControllerConfigRejectsUnknownVariant(t *testing.T) {
	p := Preset{Name: "bad", Variant: "no_such_game", GridRows: 9, GridCols: 6, TargLow: 1, TargHigh: 4}
	_, err := p.ControllerConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}

func TestControllerConfigValidates(t *testing.T) {
	p := Preset{Name: "bad_range", Variant: "even_line_match", GridRows: 9, GridCols: 6, TargLow: 5, TargHigh: 4}
	_, err := p.ControllerConfig()
	assert.ErrorIs(t, err, controller.ErrInvalidRange)
}

func TestFind(t *testing.T) {
	ps := Defaults()
	p, err := Find(ps, "v0")
	require.NoError(t, err)
	assert.Equal(t, "even_line_match", p.Variant)

	_, err = Find(ps, "missing")
	assert.Error(t, err)
}

func TestDefaultsCoverEveryVariant(t *testing.T) {
	ps := Defaults()
	require.Len(t, ps, len(controller.Variants))
	for _, p := range ps {
		cfg, err := p.ControllerConfig()
		require.NoError(t, err, "preset %s", p.Name)
		assert.NotEqual(t, controller.VariantUnset, cfg.Variant)
	}
}
