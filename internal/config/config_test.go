package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildstyl3r/graftsas/internal/config"
)

type grafted struct {
	Radius  float64 `toml:"radius"`
	PolySig float64 `toml:"poly_sig"`
	SLD     float64 `toml:"sld"`
	Volume  float64 `toml:"v_poly"`
	Mn      float64 `toml:"Mn"`
	Nu      float64 `toml:"nu"`
}

var schema = config.Schema{
	{Name: "radius", Units: "Ang", Default: 60, Lower: 0, Upper: math.Inf(1)},
	{Name: "poly_sig", Units: "chains/nm^2", Default: 0.5, Lower: 0, Upper: math.Inf(1)},
	{Name: "sld", Units: "1e-6/Ang^2", Default: 3.5, Lower: -math.Inf(1), Upper: math.Inf(1), Role: config.RoleSLD},
	{Name: "v_poly", Units: "Ang^3", Default: 30, Lower: 0, Upper: math.Inf(1), Role: config.RoleVolume},
	{Name: "Mn", Units: "g/mol", Default: 11180, Lower: 0, Upper: math.Inf(1)},
	{Name: "nu", Units: "None", Default: 0.5, Lower: 0, Upper: 1},
}

func TestSchema_Defaults(t *testing.T) {
	var g grafted
	require.NoError(t, schema.SetDefaults(&g))
	assert.Equal(t, grafted{Radius: 60, PolySig: 0.5, SLD: 3.5, Volume: 30, Mn: 11180, Nu: 0.5}, g)

	values, err := schema.Values(g)
	require.NoError(t, err)
	assert.Equal(t, 0.5, values["poly_sig"])
	assert.Equal(t, []string{"radius", "poly_sig", "sld", "v_poly", "Mn", "nu"}, schema.Names())

	p, some := schema.Lookup("sld")
	require.True(t, some)
	assert.Equal(t, config.RoleSLD, p.Role)
	_, some = schema.Lookup("rg")
	assert.False(t, some)
}

func TestSchema_MissingField(t *testing.T) {
	var target struct {
		Radius float64 `toml:"radius"`
	}
	assert.ErrorIs(t, schema.SetDefaults(&target), config.ErrUnknownParameter)
	assert.Error(t, schema.SetDefaults(3))
}

func TestSchema_OutOfBounds(t *testing.T) {
	g := grafted{Radius: -1, PolySig: 0.5, SLD: 3.5, Volume: -30, Mn: 1, Nu: 1.2}
	outside, err := schema.OutOfBounds(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"nu", "radius", "v_poly"}, outside)
}

func TestDecode_UnitConversion(t *testing.T) {
	c, err := config.DecodeConfig(`
InputUnits = ["nm", "kg/mol"]

[Models.pgnp_10]
radius = 6.0
poly_sig = 0.5
sld = 0.04
v_poly = 0.03
Mn = 11.18

[Models.pgnp_2]
nu = 0.6
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"pgnp_2", "pgnp_10"}, c.ModelNames())

	var g grafted
	require.NoError(t, c.Decode("pgnp_10", schema, &g))
	assert.InDelta(t, 60., g.Radius, 1e-12)
	// chains/nm² stays per nm²
	assert.InDelta(t, 0.5, g.PolySig, 1e-15)
	// 1e-6 nm^-2 -> 1e-6 Å^-2
	assert.InDelta(t, 4e-4, g.SLD, 1e-15)
	assert.InDelta(t, 30., g.Volume, 1e-12)
	assert.InDelta(t, 11180., g.Mn, 1e-9)
	assert.Equal(t, 0.5, g.Nu)

	require.NoError(t, c.Decode("pgnp_2", schema, &g))
	assert.Equal(t, grafted{Radius: 60, PolySig: 0.5, SLD: 3.5, Volume: 30, Mn: 11180, Nu: 0.6}, g)
}

func TestDecode_DefaultUnits(t *testing.T) {
	c, err := config.DecodeConfig(`
[Models.a]
radius = 45.0
poly_sig = 0.2
sld = 0.04
v_poly = 25.0
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "g/mol"}, c.InputUnits)

	// values without InputUnits are already in the schema units
	var g grafted
	require.NoError(t, c.Decode("a", schema, &g))
	assert.Equal(t, grafted{Radius: 45, PolySig: 0.2, SLD: 0.04, Volume: 25, Mn: 11180, Nu: 0.5}, g)
}

func TestDecode_AngstromGraftingDensity(t *testing.T) {
	c, err := config.DecodeConfig(`
InputUnits = ["A"]
[Models.a]
poly_sig = 0.005
`)
	require.NoError(t, err)
	var g grafted
	require.NoError(t, c.Decode("a", schema, &g))
	// 0.005 chains/Å² = 0.5 chains/nm²
	assert.InDelta(t, 0.5, g.PolySig, 1e-12)
}

func TestDecode_Errors(t *testing.T) {
	c, err := config.DecodeConfig(`
[Models.a]
radius = 45.0
rg = 40.0
`)
	require.NoError(t, err)
	var g grafted
	err = c.Decode("a", schema, &g)
	assert.ErrorIs(t, err, config.ErrUnknownParameter)
	assert.Contains(t, err.Error(), "rg")

	assert.ErrorIs(t, c.Decode("b", schema, &g), config.ErrUnknownModel)

	_, err = config.DecodeConfig(`InputUnits = ["nm", "A"]`)
	assert.ErrorIs(t, err, config.ErrUnitConflict)

	_, err = config.DecodeConfig(`InputUnits = ["furlong"]`)
	assert.ErrorIs(t, err, config.ErrUnknownUnit)

	_, err = config.DecodeConfig(`InputUnits = [`)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sets.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Models.x]\nradius = 12.5\n"), 0o600))
	c, err := config.LoadConfig(path)
	require.NoError(t, err)
	var g grafted
	require.NoError(t, c.Decode("x", schema, &g))
	assert.Equal(t, 12.5, g.Radius)

	_, err = config.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestCanonical(t *testing.T) {
	volume := []config.UnitElement{{Class: config.Length, Power: 3}}
	assert.InDelta(t, 1000., config.Canonical(1, volume, []string{"nm"}, true), 1e-12)
	assert.InDelta(t, 1., config.Canonical(1000, volume, []string{"nm"}, false), 1e-12)
	assert.Equal(t, 7., config.Canonical(7, nil, []string{"nm"}, true))
}
