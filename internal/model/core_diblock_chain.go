package model

import (
	"github.com/wildstyl3r/graftsas/internal/assembly"
	"github.com/wildstyl3r/graftsas/internal/chain"
	"github.com/wildstyl3r/graftsas/internal/config"
	"github.com/wildstyl3r/graftsas/internal/particle"
)

var coreDiblockChainSchema = config.Schema{
	{Name: "volf", Units: "None", Default: 0.02, Lower: 0, Upper: 1, Description: "Particle volume fraction"},
	{Name: "sld_c", Units: "1e-6/Ang^2", Default: 3.47, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Core scattering length density"},
	{Name: "sld_s", Units: "1e-6/Ang^2", Default: -0.022, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Initiator scattering length density"},
	{Name: "sld1", Units: "1e-6/Ang^2", Default: 0.814, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Block 1 scattering length density"},
	{Name: "sld2", Units: "1e-6/Ang^2", Default: 4.24, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Block 2 scattering length density"},
	{Name: "sld_solvent", Units: "1e-6/Ang^2", Default: 6.37, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Solvent scattering length density"},
	{Name: "radius", Units: "Ang", Default: 75, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Core radius"},
	{Name: "i_shell", Units: "Ang", Default: 10, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Initiator shell thickness"},
	{Name: "poly_sig", Units: "chains/nm^2", Default: 0.33, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Grafting density"},
	{Name: "rc", Units: "Ang", Default: 100, Lower: 0, Upper: inf, Description: "Block junction distance"},
	{Name: "C_infty", Units: "None", Default: 12, Lower: 7, Upper: 50, Description: "Characteristic ratio"},
	{Name: "M0", Units: "g/mol", Default: 113, Lower: 0, Upper: inf, Description: "Monomer molar mass"},
	{Name: "M1", Units: "g/mol", Default: 8900, Lower: 1, Upper: inf, Description: "Block 1 molar mass"},
	{Name: "M2", Units: "g/mol", Default: 9900, Lower: 1, Upper: inf, Description: "Block 2 molar mass"},
	{Name: "nu1", Units: "None", Default: 0.8, Lower: 0.25, Upper: 1, Description: "Flory exponent of block 1"},
	{Name: "nu2", Units: "None", Default: 0.8, Lower: 0.25, Upper: 1, Description: "Flory exponent of block 2"},
	{Name: "v", Units: "Ang^3", Default: 149, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Kuhn monomer volume"},
	{Name: "I0", Units: "None", Default: 0, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Intensity of free chains"},
	{Name: "rg3", Units: "Ang", Default: 25, Lower: 0, Upper: inf, Description: "Radius of gyration of free chains"},
	{Name: "nu3", Units: "None", Default: 0.5, Lower: 0.25, Upper: 1, Description: "Flory exponent of free chains"},
}

// CoreDiblockChain is a core-shell particle grafted with diblock chains.
// Block 2 starts at the junction and is correlated with the surface through
// block 1 and a Gaussian junction propagator.
type CoreDiblockChain struct {
	Volf       float64 `toml:"volf"`
	SLDCore    float64 `toml:"sld_c"`
	SLDShell   float64 `toml:"sld_s"`
	SLD1       float64 `toml:"sld1"`
	SLD2       float64 `toml:"sld2"`
	SLDSolvent float64 `toml:"sld_solvent"`
	Radius     float64 `toml:"radius"`
	IShell     float64 `toml:"i_shell"`
	PolySig    float64 `toml:"poly_sig"`
	Rc         float64 `toml:"rc"`
	CInfty     float64 `toml:"C_infty"`
	M0         float64 `toml:"M0"`
	M1         float64 `toml:"M1"`
	M2         float64 `toml:"M2"`
	Nu1        float64 `toml:"nu1"`
	Nu2        float64 `toml:"nu2"`
	V          float64 `toml:"v"`
	I0         float64 `toml:"I0"`
	Rg3        float64 `toml:"rg3"`
	Nu3        float64 `toml:"nu3"`

	// Recombination replaces volf·particle + I0·free when set.
	Recombination assembly.Recombination `toml:"-"`
}

func DefaultCoreDiblockChain() CoreDiblockChain {
	var m CoreDiblockChain
	mustDefaults(coreDiblockChainSchema, &m)
	return m
}

func (CoreDiblockChain) Name() string { return "cdbc" }

func (CoreDiblockChain) Schema() config.Schema { return coreDiblockChainSchema }

// blockVolumes are the volumes of the two blocks of one chain.
func (m CoreDiblockChain) blockVolumes() (n1, n2, v1, v2 float64) {
	n1 = chain.KuhnSegments(m.M1, m.M0, m.CInfty, 2)
	n2 = chain.KuhnSegments(m.M2, m.M0, m.CInfty, 2)
	return n1, n2, n1 * m.V, n2 * m.V
}

// BlockGyrationRadii are the radii of gyration implied by the block masses.
func (m CoreDiblockChain) BlockGyrationRadii() (rg1, rg2 float64) {
	b := chain.KuhnLength(m.CInfty)
	n1, n2, _, _ := m.blockVolumes()
	return chain.GyrationRadius(b, n1, m.Nu1), chain.GyrationRadius(b, n2, m.Nu2)
}

func (m CoreDiblockChain) Terms(q float64) (assembly.Terms, error) {
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

	b := chain.KuhnLength(m.CInfty)
	n1, n2, v1, v2 := m.blockVolumes()
	e1 := particle.SurfacePropagator(q, outer)
	block1, err := polymerBlock(chain.KuhnVariable(q, b, n1, m.Nu1), m.Nu1, m.SLD1-m.SLDSolvent, v1, e1)
	if err != nil {
		return assembly.Terms{}, err
	}
	block2, err := polymerBlock(chain.KuhnVariable(q, b, n2, m.Nu2), m.Nu2, m.SLD2-m.SLDSolvent, v2,
		e1*particle.GaussianPropagator(q, m.Rc))
	if err != nil {
		return assembly.Terms{}, err
	}
	return assembly.Sum(fs, ng, assembly.Layout{IntraChain: true, Mixed: assembly.All}, block1, block2), nil
}

// FreeChains is the unweighted form factor of free chains in intensity units.
func (m CoreDiblockChain) FreeChains(q float64) (float64, error) {
	if err := checkScatteringVector(q); err != nil {
		return 0, err
	}
	pp, err := formFactor(chain.GyrationVariable(q, m.Rg3, m.Nu3), m.Nu3)
	if err != nil {
		return 0, err
	}
	return assembly.Normalize(pp, 1)
}

func (m CoreDiblockChain) Intensity(q float64) (float64, error) {
	terms, err := m.Terms(q)
	if err != nil {
		return 0, err
	}
	outer := m.Radius + m.IShell
	ng, err := particle.GraftedChains(m.PolySig, outer)
	if err != nil {
		return 0, err
	}
	_, _, v1, v2 := m.blockVolumes()
	grafted, err := assembly.Normalize(terms.Total(), particle.SphereVolume(outer)+ng*(v1+v2))
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

func (m CoreDiblockChain) EffectiveRadius(mode RadiusMode) (float64, error) {
	switch mode {
	case RadiusCore, RadiusOuter:
		return m.Radius + m.IShell, nil
	}
	return 0, badRadiusMode(mode)
}
