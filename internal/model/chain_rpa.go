package model

import (
	"fmt"
	"math"

	"github.com/wildstyl3r/graftsas/internal/assembly"
	"github.com/wildstyl3r/graftsas/internal/chain"
	"github.com/wildstyl3r/graftsas/internal/config"
	"github.com/wildstyl3r/graftsas/internal/constants"
)

var chainRPASchema = config.Schema{
	{Name: "phi_p", Units: "None", Default: 0.01, Lower: 0, Upper: 1, Description: "Polymer volume fraction"},
	{Name: "nu", Units: "None", Default: 0.5, Lower: 0, Upper: 1, Description: "Excluded volume parameter"},
	{Name: "b", Units: "Ang", Default: 7, Lower: 1, Upper: inf, Description: "Kuhn length"},
	{Name: "n", Units: "None", Default: 30, Lower: 1, Upper: inf, Description: "Degree of polymerization"},
	{Name: "sldp", Units: "1e-6/Ang^2", Default: 1.4, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Polymer SLD"},
	{Name: "slds", Units: "1e-6/Ang^2", Default: 6.7, Lower: -inf, Upper: inf, Role: config.RoleSLD, Description: "Solvent SLD"},
	{Name: "vm", Units: "Ang^3", Default: 178, Lower: 1, Upper: inf, Description: "Monomer volume"},
	{Name: "vs", Units: "Ang^3", Default: 179, Lower: 1, Upper: inf, Description: "Solvent volume"},
	{Name: "chi", Units: "None", Default: 0.5, Lower: -inf, Upper: inf, Description: "Flory-Huggins parameter"},
}

// ChainRPA is a solution of free excluded-volume chains with Flory-Huggins
// interactions in the random phase approximation.
type ChainRPA struct {
	PhiP float64 `toml:"phi_p"`
	Nu   float64 `toml:"nu"`
	B    float64 `toml:"b"`
	N    float64 `toml:"n"`
	SLDP float64 `toml:"sldp"`
	SLDS float64 `toml:"slds"`
	Vm   float64 `toml:"vm"`
	Vs   float64 `toml:"vs"`
	Chi  float64 `toml:"chi"`
}

func DefaultChainRPA() ChainRPA {
	var m ChainRPA
	mustDefaults(chainRPASchema, &m)
	return m
}

func (ChainRPA) Name() string { return "poly_excl_vol_rpa" }

func (ChainRPA) Schema() config.Schema { return chainRPASchema }

// InverseStructureFactor is 1/(nφ·vm·Pp) + 1/(vs(1-φ)) - 2χ/√(vm·vs) [Å^-3].
// One of the components being absent makes it infinite.
func (m ChainRPA) InverseStructureFactor(q float64) (float64, error) {
	if err := checkScatteringVector(q); err != nil {
		return 0, err
	}
	if !(m.PhiP >= 0 && m.PhiP <= 1) {
		return 0, fmt.Errorf("%w: phi_p = %v", ErrFraction, m.PhiP)
	}
	if !(m.Vm > 0) || !(m.Vs > 0) {
		return 0, fmt.Errorf("%w: vm = %v, vs = %v", assembly.ErrVolume, m.Vm, m.Vs)
	}
	if m.PhiP == 0 || m.PhiP == 1 {
		return inf, nil
	}
	pp, err := formFactor(chain.KuhnVariable(q, m.B, m.N, m.Nu), m.Nu)
	if err != nil {
		return 0, err
	}
	polymer := m.N * m.PhiP * m.Vm * pp
	if !(polymer > 0) {
		return inf, nil
	}
	return 1./polymer + 1./(m.Vs*(1.-m.PhiP)) - 2.*m.Chi/math.Sqrt(m.Vm*m.Vs), nil
}

func (m ChainRPA) Intensity(q float64) (float64, error) {
	inverse, err := m.InverseStructureFactor(q)
	if err != nil {
		return 0, err
	}
	if math.IsInf(inverse, 1) {
		return 0, nil
	}
	if inverse == 0 {
		return 0, fmt.Errorf("%w at q = %v", ErrSpinodal, q)
	}
	contrast := m.SLDP - m.SLDS
	return contrast * contrast * constants.UnitScale / inverse, nil
}
