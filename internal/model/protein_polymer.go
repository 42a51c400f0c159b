package model

import (
	"github.com/wildstyl3r/graftsas/internal/assembly"
	"github.com/wildstyl3r/graftsas/internal/chain"
	"github.com/wildstyl3r/graftsas/internal/config"
	"github.com/wildstyl3r/graftsas/internal/special"
)

var proteinPolymerSchema = config.Schema{
	{Name: "sld1", Units: "1e-6/Ang^2", Default: 1, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Protein scattering length density"},
	{Name: "sld2", Units: "1e-6/Ang^2", Default: 1, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Polymer scattering length density"},
	{Name: "sld_solvent", Units: "1e-6/Ang^2", Default: 4.4, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Solvent scattering length density"},
	{Name: "rg1", Units: "Ang", Default: 40, Lower: 1, Upper: inf, Role: config.RoleVolume, Description: "Radius of gyration of protein"},
	{Name: "rg2", Units: "Ang", Default: 40, Lower: 1, Upper: inf, Role: config.RoleVolume, Description: "Radius of gyration of polymer"},
	{Name: "nu1", Units: "None", Default: 0.5, Lower: 0.25, Upper: 1, Description: "Excluded volume parameter of protein"},
	{Name: "nu2", Units: "None", Default: 0.5, Lower: 0.25, Upper: 1, Description: "Excluded volume parameter of polymer"},
	{Name: "v1", Units: "Ang^3", Default: 30, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Volume of protein"},
	{Name: "v2", Units: "Ang^3", Default: 30, Lower: 0, Upper: inf, Role: config.RoleVolume, Description: "Volume of polymer"},
}

// ProteinPolymer is a protein conjugated to one polymer chain, both treated
// as excluded-volume coils joined through a J0 propagator.
type ProteinPolymer struct {
	SLD1       float64 `toml:"sld1"`
	SLD2       float64 `toml:"sld2"`
	SLDSolvent float64 `toml:"sld_solvent"`
	Rg1        float64 `toml:"rg1"`
	Rg2        float64 `toml:"rg2"`
	Nu1        float64 `toml:"nu1"`
	Nu2        float64 `toml:"nu2"`
	V1         float64 `toml:"v1"`
	V2         float64 `toml:"v2"`
}

func DefaultProteinPolymer() ProteinPolymer {
	var m ProteinPolymer
	mustDefaults(proteinPolymerSchema, &m)
	return m
}

func (ProteinPolymer) Name() string { return "protein_polymer" }

func (ProteinPolymer) Schema() config.Schema { return proteinPolymerSchema }

func (m ProteinPolymer) Intensity(q float64) (float64, error) {
	if err := checkScatteringVector(q); err != nil {
		return 0, err
	}
	protein, err := polymerBlock(chain.GyrationVariable(q, m.Rg1, m.Nu1), m.Nu1,
		m.SLD1-m.SLDSolvent, m.V1, special.BesselJ0(q*m.Rg1))
	if err != nil {
		return 0, err
	}
	polymer, err := polymerBlock(chain.GyrationVariable(q, m.Rg2, m.Nu2), m.Nu2,
		m.SLD2-m.SLDSolvent, m.V2, 1)
	if err != nil {
		return 0, err
	}
	total := protein.FormFactor + polymer.FormFactor +
		2.*protein.Amplitude*protein.Propagator*polymer.Amplitude
	return assembly.Normalize(total, m.V1+m.V2)
}

func (m ProteinPolymer) EffectiveRadius(mode RadiusMode) (float64, error) {
	switch mode {
	case RadiusCore, RadiusOuter:
		return m.Rg1 + m.Rg2, nil
	}
	return 0, badRadiusMode(mode)
}
