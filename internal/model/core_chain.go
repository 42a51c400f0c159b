package model

import (
	"github.com/wildstyl3r/graftsas/internal/assembly"
	"github.com/wildstyl3r/graftsas/internal/chain"
	"github.com/wildstyl3r/graftsas/internal/config"
	"github.com/wildstyl3r/graftsas/internal/particle"
)

var coreChainSchema = config.Schema{
	{Name: "sld", Units: "1e-6/Ang^2", Default: 3.5, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Core scattering length density"},
	{Name: "sld_poly", Units: "1e-6/Ang^2", Default: 1.0, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Grafted polymer scattering length density"},
	{Name: "sld_solvent", Units: "1e-6/Ang^2", Default: 4.4, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Solvent scattering length density"},
	{Name: "radius", Units: "Ang", Default: 60, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Core radius"},
	{Name: "poly_sig", Units: "chains/nm^2", Default: 0.5, Lower: 0, Upper: inf, Description: "Polymer grafting density"},
	{Name: "rg", Units: "Ang", Default: 40, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Grafted polymer radius of gyration"},
	{Name: "nu", Units: "None", Default: 0.5, Lower: 0.25, Upper: 1, Description: "Grafted polymer excluded volume parameter"},
	{Name: "v_poly", Units: "Ang^3", Default: 30, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Volume of one polymer"},
}

// CoreChain is a homogeneous sphere with one species of grafted chains.
type CoreChain struct {
	SLD        float64 `toml:"sld"`
	SLDPoly    float64 `toml:"sld_poly"`
	SLDSolvent float64 `toml:"sld_solvent"`
	Radius     float64 `toml:"radius"`
	PolySig    float64 `toml:"poly_sig"`
	Rg         float64 `toml:"rg"`
	Nu         float64 `toml:"nu"`
	VPoly      float64 `toml:"v_poly"`
}

func DefaultCoreChain() CoreChain {
	var m CoreChain
	mustDefaults(coreChainSchema, &m)
	return m
}

func (CoreChain) Name() string { return "core_chain" }

func (CoreChain) Schema() config.Schema { return coreChainSchema }

func (m CoreChain) Terms(q float64) (assembly.Terms, error) {
	if err := checkScatteringVector(q); err != nil {
		return assembly.Terms{}, err
	}
	fs, err := particle.Amplitude(q, particle.Sphere(m.Radius, m.SLD, m.SLDSolvent)...)
	if err != nil {
		return assembly.Terms{}, err
	}
	ng, err := particle.GraftedChains(m.PolySig, m.Radius)
	if err != nil {
		return assembly.Terms{}, err
	}
	b, err := polymerBlock(chain.GyrationVariable(q, m.Rg, m.Nu), m.Nu,
		m.SLDPoly-m.SLDSolvent, m.VPoly, particle.SurfacePropagator(q, m.Radius))
	if err != nil {
		return assembly.Terms{}, err
	}
	return assembly.Sum(fs, ng, assembly.Layout{}, b), nil
}

func (m CoreChain) Intensity(q float64) (float64, error) {
	terms, err := m.Terms(q)
	if err != nil {
		return 0, err
	}
	return assembly.Normalize(terms.Total(), particle.SphereVolume(m.Radius)+m.VPoly)
}

func (m CoreChain) EffectiveRadius(mode RadiusMode) (float64, error) {
	switch mode {
	case RadiusCore, RadiusOuter:
		return m.Radius + m.Rg, nil
	}
	return 0, badRadiusMode(mode)
}
