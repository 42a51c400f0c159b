// Package assembly combines a particle amplitude and the amplitudes of the
// chains grafted to it into a single scattered intensity.
//
// For Ng chains, each made of one or more blocks, the sum has four parts:
//
//	Core       = Fs²
//	ChainSelf  = Ng·Σ P_i  (+ Ng·Σ_{i<j} 2·A_i·A_j for blocks of one chain)
//	CoreChain  = 2·Ng·Fs·Σ E_i·A_i
//	ChainChain = Ng(Ng-1)·Σ (E_i·A_i)² + Mixed(Ng)·Σ_{i<j} E_i·A_i·E_j·A_j
//
// A_i and P_i are the contrast- and volume-weighted amplitude and form factor
// of block i, E_i its propagator to the particle centre.
package assembly

import (
	"errors"
	"fmt"

	"github.com/wildstyl3r/graftsas/internal/constants"
	"github.com/wildstyl3r/graftsas/internal/utils"
)

var ErrVolume = errors.New("assembly: normalization volume must be positive")

type Block struct {
	Amplitude  float64 // Δρ·v·Fp
	FormFactor float64 // Δρ²·v²·Pp
	Propagator float64 // E
}

// PairCount is the number of chain pairs weighting a chain-chain term.
type PairCount func(ng float64) float64

// Distinct counts ordered pairs of different chains.
func Distinct(ng float64) float64 {
	if ng <= 1 {
		return 0
	}
	return ng * (ng - 1)
}

// All counts every ordered pair, including a chain with itself.
func All(ng float64) float64 {
	return ng * ng
}

type Layout struct {
	// IntraChain adds the interference of different blocks of the same chain.
	IntraChain bool
	// Mixed weights the interference of different blocks on different chains.
	// Nil means Distinct.
	Mixed PairCount
}

type Terms struct {
	Core       float64
	ChainSelf  float64
	CoreChain  float64
	ChainChain float64
}

func (t Terms) Total() float64 {
	return utils.SumSlice([]float64{t.Core, t.ChainSelf, t.CoreChain, t.ChainChain})
}

func Sum(fs, ng float64, layout Layout, blocks ...Block) Terms {
	mixed := layout.Mixed
	if mixed == nil {
		mixed = Distinct
	}

	self := make([]float64, 0, len(blocks))
	phased := make([]float64, len(blocks))
	squared := make([]float64, len(blocks))
	var intra, cross []float64
	for i, b := range blocks {
		self = append(self, b.FormFactor)
		phased[i] = b.Propagator * b.Amplitude
		squared[i] = phased[i] * phased[i]
		for j := range i {
			if layout.IntraChain {
				intra = append(intra, 2.*blocks[j].Amplitude*b.Amplitude)
			}
			cross = append(cross, phased[j]*phased[i])
		}
	}

	return Terms{
		Core:       fs * fs,
		ChainSelf:  ng * (utils.SumSlice(self) + utils.SumSlice(intra)),
		CoreChain:  2. * ng * fs * utils.SumSlice(phased),
		ChainChain: Distinct(ng)*utils.SumSlice(squared) + mixed(ng)*utils.SumSlice(cross),
	}
}

// Normalize converts an interference sum [1e-12 Å^-4 · Å^6] per particle of
// volume [Å^3] into an absolute intensity [cm^-1].
func Normalize(total, volume float64) (float64, error) {
	if !(volume > 0) {
		return 0, fmt.Errorf("%w: got %v", ErrVolume, volume)
	}
	return total * constants.UnitScale / volume, nil
}

// Mixture recombines the intensity of grafted particles with that of free
// chains present in the same sample.
type Mixture struct {
	VolumeFraction float64
	FreeChains     float64
}

func (m Mixture) Combine(particle, free float64) float64 {
	return m.VolumeFraction*particle + m.FreeChains*free
}

// Recombination overrides the default mixture rule of a two-region model.
type Recombination func(particle, free float64) float64
