package model

import (
	"github.com/wildstyl3r/graftsas/internal/assembly"
	"github.com/wildstyl3r/graftsas/internal/chain"
	"github.com/wildstyl3r/graftsas/internal/config"
	"github.com/wildstyl3r/graftsas/internal/particle"
)

var coreChainChainSchema = config.Schema{
	{Name: "volf", Units: "None", Default: 0.02, Lower: 0, Upper: 1, Description: "Particle volume fraction"},
	{Name: "sld_c", Units: "1e-6/Ang^2", Default: 3.47, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Core scattering length density"},
	{Name: "sld_s", Units: "1e-6/Ang^2", Default: -0.022, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Initiator scattering length density"},
	{Name: "sld1", Units: "1e-6/Ang^2", Default: 0.814, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Chain region 1 scattering length density"},
	{Name: "sld2", Units: "1e-6/Ang^2", Default: 4.24, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Chain region 2 scattering length density"},
	{Name: "sld_solvent", Units: "1e-6/Ang^2", Default: 6.37, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Solvent scattering length density"},
	{Name: "radius", Units: "Ang", Default: 75, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Core radius"},
	{Name: "i_shell", Units: "Ang", Default: 10, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Initiator shell thickness"},
	{Name: "rc", Units: "Ang", Default: 150, Lower: 0, Upper: inf, Description: "Cutoff distance between region 1 and region 2"},
	{Name: "poly_sig", Units: "chains/nm^2", Default: 0.33, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Grafting density"},
	{Name: "rg1", Units: "Ang", Default: 163, Lower: 1, Upper: inf, Role: config.RoleVolume, Description: "Radius of gyration of chain in region 1"},
	{Name: "rg2", Units: "Ang", Default: 100, Lower: 1, Upper: inf, Role: config.RoleVolume, Description: "Radius of gyration of chain in region 2"},
	{Name: "nu1", Units: "None", Default: 0.7, Lower: 0.25, Upper: 1, Description: "Excluded volume parameter of chain in region 1"},
	{Name: "nu2", Units: "None", Default: 0.5, Lower: 0.25, Upper: 1, Description: "Excluded volume parameter of chain in region 2"},
	{Name: "v1", Units: "Ang^3", Default: 12000, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Volume of polymer in region 1"},
	{Name: "v2", Units: "Ang^3", Default: 12000, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Volume of polymer in region 2"},
	{Name: "I0", Units: "None", Default: 0, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Intensity of free chains"},
	{Name: "rg3", Units: "Ang", Default: 25, Lower: 0, Upper: inf, Description: "Radius of gyration of free chains"},
}

// CoreChainChain is a core with an initiator shell whose grafted chains
// change conformation at distance rc from the centre: region 1 is
// correlated with the particle surface, region 2 with the crossover sphere.
// Free chains of region 2 material may be present in the sample.
type CoreChainChain struct {
	Volf       float64 `toml:"volf"`
	SLDCore    float64 `toml:"sld_c"`
	SLDShell   float64 `toml:"sld_s"`
	SLD1       float64 `toml:"sld1"`
	SLD2       float64 `toml:"sld2"`
	SLDSolvent float64 `toml:"sld_solvent"`
	Radius     float64 `toml:"radius"`
	IShell     float64 `toml:"i_shell"`
	Rc         float64 `toml:"rc"`
	PolySig    float64 `toml:"poly_sig"`
	Rg1        float64 `toml:"rg1"`
	Rg2        float64 `toml:"rg2"`
	Nu1        float64 `toml:"nu1"`
	Nu2        float64 `toml:"nu2"`
	V1         float64 `toml:"v1"`
	V2         float64 `toml:"v2"`
	I0         float64 `toml:"I0"`
	Rg3        float64 `toml:"rg3"`

	// Recombination replaces volf·particle + I0·free when set.
	Recombination assembly.Recombination `toml:"-"`
}

func DefaultCoreChainChain() CoreChainChain {
	var m CoreChainChain
	mustDefaults(coreChainChainSchema, &m)
	return m
}

func (CoreChainChain) Name() string { return "ccc" }

func (CoreChainChain) Schema() config.Schema { return coreChainChainSchema }

func (m CoreChainChain) Terms(q float64) (assembly.Terms, error) {
	if err := checkScatteringVector(q); err != nil {
		return assembly.Terms{}, err
	}
	shells := particle.CoreShell(m.Radius, m.IShell, m.SLDCore, m.SLDShell, m.SLDSolvent)
	fs, err := particle.Amplitude(q, shells...)
	if err != nil {
		return assembly.Terms{}, err
	}
	outer := particle.OuterRadius(shells)
	ng, err := particle.GraftedChains(m.PolySig, outer)
	if err != nil {
		return assembly.Terms{}, err
	}
	b1, err := polymerBlock(chain.GyrationVariable(q, m.Rg1, m.Nu1), m.Nu1,
		m.SLD1-m.SLDSolvent, m.V1, particle.SurfacePropagator(q, outer))
	if err != nil {
		return assembly.Terms{}, err
	}
	b2, err := polymerBlock(chain.GyrationVariable(q, m.Rg2, m.Nu2), m.Nu2,
		m.SLD2-m.SLDSolvent, m.V2, particle.SurfacePropagator(q, m.Rc))
	if err != nil {
		return assembly.Terms{}, err
	}
	return assembly.Sum(fs, ng, assembly.Layout{Mixed: assembly.Distinct}, b1, b2), nil
}

// FreeChains is the intensity per unit I0 of free region 2 chains.
func (m CoreChainChain) FreeChains(q float64) (float64, error) {
	if err := checkScatteringVector(q); err != nil {
		return 0, err
	}
	pp, err := formFactor(chain.GyrationVariable(q, m.Rg3, m.Nu2), m.Nu2)
	if err != nil {
		return 0, err
	}
	contrast := m.SLD2 - m.SLDSolvent
	return assembly.Normalize(contrast*contrast*m.V2*pp, 1)
}

func (m CoreChainChain) Intensity(q float64) (float64, error) {
	terms, err := m.Terms(q)
	if err != nil {
		return 0, err
	}
	outer := m.Radius + m.IShell
	ng, err := particle.GraftedChains(m.PolySig, outer)
	if err != nil {
		return 0, err
	}
	grafted, err := assembly.Normalize(terms.Total(), particle.SphereVolume(outer)+ng*(m.V1+m.V2)+m.I0*m.V2)
	if err != nil {
		return 0, err
	}
	free, err := m.FreeChains(q)
	if err != nil {
		return 0, err
	}
	if m.Recombination != nil {
		return m.Recombination(grafted, free), nil
	}
	return assembly.Mixture{VolumeFraction: m.Volf, FreeChains: m.I0}.Combine(grafted, free), nil
}

func (m CoreChainChain) EffectiveRadius(mode RadiusMode) (float64, error) {
	switch mode {
	case RadiusCore:
		return m.Radius + m.IShell, nil
	case RadiusOuter:
		return m.Radius + m.IShell + m.Rg1 + m.Rg2, nil
	}
	return 0, badRadiusMode(mode)
}
