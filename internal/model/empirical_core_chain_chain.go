package model

import (
	"fmt"
	"math"

	"github.com/wildstyl3r/graftsas/internal/assembly"
	"github.com/wildstyl3r/graftsas/internal/chain"
	"github.com/wildstyl3r/graftsas/internal/config"
	"github.com/wildstyl3r/graftsas/internal/constants"
	"github.com/wildstyl3r/graftsas/internal/particle"
)

var empiricalCoreChainChainSchema = config.Schema{
	{Name: "I0", Units: "None", Default: 1, Lower: -inf, Upper: inf, Description: "Coefficient 1"},
	{Name: "I1", Units: "None", Default: 1, Lower: 0, Upper: inf, Description: "Coefficient 2, power-law exponent of the core"},
	{Name: "sld_c", Units: "1e-6/Ang^2", Default: 3.47, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Core scattering length density"},
	{Name: "sld1", Units: "1e-6/Ang^2", Default: 0.814, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Chain region 1 scattering length density"},
	{Name: "sld2", Units: "1e-6/Ang^2", Default: 4.24, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Chain region 2 scattering length density"},
	{Name: "sld_solvent", Units: "1e-6/Ang^2", Default: 6.37, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Solvent scattering length density"},
	{Name: "R", Units: "Ang", Default: 75, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Core radius"},
	{Name: "rc", Units: "Ang", Default: 150, Lower: 0, Upper: inf, Description: "Cutoff distance between region 1 and region 2"},
	{Name: "poly_sig", Units: "chains/nm^2", Default: 0.33, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Grafting density"},
	{Name: "rg1", Units: "Ang", Default: 163, Lower: 1, Upper: inf, Role: config.RoleVolume, Description: "Radius of gyration of chain in region 1"},
	{Name: "rg2", Units: "Ang", Default: 100, Lower: 1, Upper: inf, Role: config.RoleVolume, Description: "Radius of gyration of chain in region 2"},
	{Name: "nu1", Units: "None", Default: 0.7, Lower: 0.25, Upper: 1, Description: "Excluded volume parameter of chain in region 1"},
	{Name: "nu2", Units: "None", Default: 0.5, Lower: 0.25, Upper: 1, Description: "Excluded volume parameter of chain in region 2"},
	{Name: "v1", Units: "Ang^3", Default: 12000, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Volume of polymer in region 1"},
	{Name: "v2", Units: "Ang^3", Default: 12000, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Volume of polymer in region 2"},
}

// EmpiricalCoreChainChain replaces the sphere amplitude and the propagators
// of CoreChainChain by Guinier laws that cross over to power laws of
// exponent I1. The result is not volume normalized.
//
// I0 is an overall scale added here; the published kernel ignores it, which
// is the same as the default I0 = 1. Above the core crossover the amplitude
// continues the Guinier law continuously, where the published kernel uses
// the prefactor exp(-q1²R²/5)·q1^I1.
type EmpiricalCoreChainChain struct {
	I0         float64 `toml:"I0"`
	I1         float64 `toml:"I1"`
	SLDCore    float64 `toml:"sld_c"`
	SLD1       float64 `toml:"sld1"`
	SLD2       float64 `toml:"sld2"`
	SLDSolvent float64 `toml:"sld_solvent"`
	R          float64 `toml:"R"`
	Rc         float64 `toml:"rc"`
	PolySig    float64 `toml:"poly_sig"`
	Rg1        float64 `toml:"rg1"`
	Rg2        float64 `toml:"rg2"`
	Nu1        float64 `toml:"nu1"`
	Nu2        float64 `toml:"nu2"`
	V1         float64 `toml:"v1"`
	V2         float64 `toml:"v2"`
}

func DefaultEmpiricalCoreChainChain() EmpiricalCoreChainChain {
	var m EmpiricalCoreChainChain
	mustDefaults(empiricalCoreChainChainSchema, &m)
	return m
}

func (EmpiricalCoreChainChain) Name() string { return "e_ccc" }

func (EmpiricalCoreChainChain) Schema() config.Schema { return empiricalCoreChainChainSchema }

// guinierPorod is exp(-(q·r)²/g) below the crossover q_x = √(g·p/2)/r and
// its continuous continuation A·q^(-p) above it.
func guinierPorod(q, r, g, p float64) float64 {
	if p == 0 || r == 0 {
		return 1
	}
	qx := math.Sqrt(g*p/2.) / r
	if q < qx {
		return math.Exp(-(q * r) * (q * r) / g)
	}
	return math.Exp(-(qx*r)*(qx*r)/g) * math.Pow(qx, p) * math.Pow(q, -p)
}

// CoreAmplitude is the core amplitude Δρ·V·exp(-q²R²/10), crossing over to
// q^(-I1/2).
func (m EmpiricalCoreChainChain) CoreAmplitude(q float64) float64 {
	return (m.SLDCore - m.SLDSolvent) * particle.SphereVolume(m.R) * guinierPorod(q, m.R, 10., m.I1/2.)
}

// Propagator decays as exp(-q²r²/6), crossing over to q^(-I1/4).
func (m EmpiricalCoreChainChain) Propagator(q, r float64) float64 {
	return guinierPorod(q, r, 6., m.I1/4.)
}

func (m EmpiricalCoreChainChain) Terms(q float64) (assembly.Terms, error) {
	if err := checkScatteringVector(q); err != nil {
		return assembly.Terms{}, err
	}
	if !(m.I1 >= 0) {
		return assembly.Terms{}, fmt.Errorf("%w: I1 = %v", ErrExponent, m.I1)
	}
	if !(m.R >= 0) {
		return assembly.Terms{}, fmt.Errorf("%w: got %v", particle.ErrNegativeRadius, m.R)
	}
	ng, err := particle.GraftedChains(m.PolySig, m.R)
	if err != nil {
		return assembly.Terms{}, err
	}
	b1, err := polymerBlock(chain.GyrationVariable(q, m.Rg1, m.Nu1), m.Nu1,
		m.SLD1-m.SLDSolvent, m.V1, m.Propagator(q, m.R))
	if err != nil {
		return assembly.Terms{}, err
	}
	b2, err := polymerBlock(chain.GyrationVariable(q, m.Rg2, m.Nu2), m.Nu2,
		m.SLD2-m.SLDSolvent, m.V2, m.Propagator(q, m.Rc))
	if err != nil {
		return assembly.Terms{}, err
	}
	return assembly.Sum(m.CoreAmplitude(q), ng, assembly.Layout{Mixed: assembly.All}, b1, b2), nil
}

func (m EmpiricalCoreChainChain) Intensity(q float64) (float64, error) {
	terms, err := m.Terms(q)
	if err != nil {
		return 0, err
	}
	return m.I0 * terms.Total() * constants.UnitScale, nil
}

func (m EmpiricalCoreChainChain) EffectiveRadius(mode RadiusMode) (float64, error) {
	switch mode {
	case RadiusCore:
		return m.R, nil
	case RadiusOuter:
		return m.R + m.Rg1 + m.Rg2, nil
	}
	return 0, badRadiusMode(mode)
}
