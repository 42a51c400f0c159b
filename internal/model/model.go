// Package model assembles particle, chain and interference layers into the
// intensity of each supported geometry. Models are immutable parameter
// values; every evaluation is a pure function of q and the receiver.
package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/wildstyl3r/graftsas/internal/assembly"
	"github.com/wildstyl3r/graftsas/internal/chain"
	"github.com/wildstyl3r/graftsas/internal/config"
)

var (
	ErrScatteringVector = errors.New("model: scattering vector must be finite and non-negative")
	ErrRadiusMode       = errors.New("model: unknown effective radius mode")
	ErrFraction         = errors.New("model: volume fraction must lie in [0, 1]")
	ErrSpinodal         = errors.New("model: inverse structure factor vanishes")
	ErrExponent         = errors.New("model: power-law exponent must be non-negative")
)

// Model is one geometry with its parameter values. Intensity is in cm^-1
// for q in Å^-1. Parameters outside their Schema bounds are not clamped.
type Model interface {
	Name() string
	Schema() config.Schema
	Intensity(q float64) (float64, error)
}

type RadiusMode int

const (
	RadiusCore  RadiusMode = 1
	RadiusOuter RadiusMode = 2
)

func (m RadiusMode) String() string {
	switch m {
	case RadiusCore:
		return "radius"
	case RadiusOuter:
		return "outer_radius"
	}
	return fmt.Sprintf("RadiusMode(%d)", int(m))
}

// RadiusEstimator is implemented by models that can feed a structure factor.
type RadiusEstimator interface {
	EffectiveRadius(mode RadiusMode) (float64, error)
}

func checkScatteringVector(q float64) error {
	if !(q >= 0) || math.IsInf(q, 1) {
		return fmt.Errorf("%w: got %v", ErrScatteringVector, q)
	}
	return nil
}

func badRadiusMode(mode RadiusMode) error {
	return fmt.Errorf("%w: %v", ErrRadiusMode, mode)
}

// polymerBlock weights the statistics of a chain of size variable u by its
// contrast and volume.
func polymerBlock(u, nu, contrast, volume, propagator float64) (assembly.Block, error) {
	st, err := chain.Evaluate(u, nu)
	if err != nil {
		return assembly.Block{}, err
	}
	a := contrast * volume
	return assembly.Block{
		Amplitude:  a * st.Amplitude,
		FormFactor: a * a * st.FormFactor,
		Propagator: propagator,
	}, nil
}

func formFactor(u, nu float64) (float64, error) {
	st, err := chain.Evaluate(u, nu)
	if err != nil {
		return 0, err
	}
	return st.FormFactor, nil
}

func mustDefaults(schema config.Schema, target any) {
	if err := schema.SetDefaults(target); err != nil {
		panic(err)
	}
}

// Decode reads the named parameter set of c into a model of type T.
func Decode[T Model](c *config.Config, set string) (T, error) {
	var m T
	err := c.Decode(set, m.Schema(), &m)
	return m, err
}

var inf = math.Inf(1)
