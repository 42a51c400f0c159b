package model

import (
	"github.com/wildstyl3r/graftsas/internal/assembly"
	"github.com/wildstyl3r/graftsas/internal/chain"
	"github.com/wildstyl3r/graftsas/internal/config"
	"github.com/wildstyl3r/graftsas/internal/particle"
)

var coreShellChainSchema = config.Schema{
	{Name: "sld", Units: "1e-6/Ang^2", Default: 3.5, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Core scattering length density"},
	{Name: "sld_shell", Units: "1e-6/Ang^2", Default: -0.022, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Shell scattering length density"},
	{Name: "sld_poly", Units: "1e-6/Ang^2", Default: 1.269, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Grafted polymer scattering length density"},
	{Name: "sld_solvent", Units: "1e-6/Ang^2", Default: 6.37, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Solvent scattering length density"},
	{Name: "radius", Units: "Ang", Default: 70, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Core radius"},
	{Name: "t_shell", Units: "Ang", Default: 20, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Shell thickness"},
	{Name: "poly_sig", Units: "chains/nm^2", Default: 0.33, Lower: 0, Upper: inf, Description: "Polymer grafting density"},
	{Name: "C_infty", Units: "None", Default: 12, Lower: 1, Upper: inf, Description: "Characteristic ratio"},
	{Name: "M0", Units: "g/mol", Default: 113, Lower: 1, Upper: inf, Description: "Monomer molar mass"},
	{Name: "Mn", Units: "g/mol", Default: 11.18, Lower: 0, Upper: inf, Description: "Polymer molar mass"},
	{Name: "nu", Units: "None", Default: 0.5, Lower: 0.25, Upper: 1, Description: "Flory exponent"},
	{Name: "v", Units: "Ang^3", Default: 162, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Kuhn monomer volume"},
}

// CoreShellChain is a core-shell sphere carrying chains described by their
// molar mass and backbone stiffness.
type CoreShellChain struct {
	SLD        float64 `toml:"sld"`
	SLDShell   float64 `toml:"sld_shell"`
	SLDPoly    float64 `toml:"sld_poly"`
	SLDSolvent float64 `toml:"sld_solvent"`
	Radius     float64 `toml:"radius"`
	TShell     float64 `toml:"t_shell"`
	PolySig    float64 `toml:"poly_sig"`
	CInfty     float64 `toml:"C_infty"`
	M0         float64 `toml:"M0"`
	Mn         float64 `toml:"Mn"`
	Nu         float64 `toml:"nu"`
	V          float64 `toml:"v"`
}

func DefaultCoreShellChain() CoreShellChain {
	var m CoreShellChain
	mustDefaults(coreShellChainSchema, &m)
	return m
}

func (CoreShellChain) Name() string { return "csc" }

func (CoreShellChain) Schema() config.Schema { return coreShellChainSchema }

func (m CoreShellChain) segments() float64 {
	return chain.KuhnSegments(m.Mn, m.M0, m.CInfty, 1)
}

func (m CoreShellChain) Terms(q float64) (assembly.Terms, error) {
	if err := checkScatteringVector(q); err != nil {
		return assembly.Terms{}, err
	}
	shells := particle.CoreShell(m.Radius, m.TShell, m.SLD, m.SLDShell, m.SLDSolvent)
	fs, err := particle.Amplitude(q, shells...)
	if err != nil {
		return assembly.Terms{}, err
	}
	outer := particle.OuterRadius(shells)
	ng, err := particle.GraftedChains(m.PolySig, outer)
	if err != nil {
		return assembly.Terms{}, err
	}
	n := m.segments()
	u := chain.KuhnVariable(q, chain.KuhnLength(m.CInfty), n, m.Nu)
	b, err := polymerBlock(u, m.Nu, m.SLDPoly-m.SLDSolvent, n*m.V, particle.SurfacePropagator(q, outer))
	if err != nil {
		return assembly.Terms{}, err
	}
	return assembly.Sum(fs, ng, assembly.Layout{}, b), nil
}

func (m CoreShellChain) Intensity(q float64) (float64, error) {
	terms, err := m.Terms(q)
	if err != nil {
		return 0, err
	}
	ng, err := particle.GraftedChains(m.PolySig, m.Radius+m.TShell)
	if err != nil {
		return 0, err
	}
	return assembly.Normalize(terms.Total(), particle.SphereVolume(m.Radius+m.TShell)+ng*m.segments()*m.V)
}

func (m CoreShellChain) EffectiveRadius(mode RadiusMode) (float64, error) {
	switch mode {
	case RadiusCore, RadiusOuter:
		return m.Radius + m.TShell, nil
	}
	return 0, badRadiusMode(mode)
}

// VolumeRatio returns the volume of the whole particle and of its shell.
func (m CoreShellChain) VolumeRatio() (whole, shell float64) {
	whole = particle.SphereVolume(m.Radius + m.TShell)
	return whole, whole - particle.SphereVolume(m.Radius)
}
