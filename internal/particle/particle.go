package particle

import (
	"errors"
	"fmt"
	"math"

	"github.com/wildstyl3r/graftsas/internal/constants"
	"github.com/wildstyl3r/graftsas/internal/special"
)

var (
	ErrNegativeRadius  = errors.New("particle: radius must be non-negative")
	ErrNegativeDensity = errors.New("particle: grafting density must be non-negative")
)

// Shell is one concentric sphere of a layered particle. Contrast is the SLD
// step across its outer surface (inner minus outer material).
type Shell struct {
	Radius   float64 // [Å]
	Contrast float64 // [1e-6 Å^-2]
}

func SphereVolume(radius float64) float64 {
	return 4. / 3. * math.Pi * radius * radius * radius
}

// Sphere is a homogeneous sphere in solvent.
func Sphere(radius, sld, sldSolvent float64) []Shell {
	return []Shell{{Radius: radius, Contrast: sld - sldSolvent}}
}

// CoreShell telescopes a core of radius r and a shell of thickness t into
// two contrast steps: core/shell at r and shell/solvent at r+t.
func CoreShell(radius, thickness, sldCore, sldShell, sldSolvent float64) []Shell {
	return []Shell{
		{Radius: radius, Contrast: sldCore - sldShell},
		{Radius: radius + thickness, Contrast: sldShell - sldSolvent},
	}
}

// Amplitude is Fs(q) = Σ Contrast_k·V(R_k)·3j1(qR_k)/(qR_k).
func Amplitude(q float64, shells ...Shell) (float64, error) {
	fs := 0.
	for _, shell := range shells {
		if !(shell.Radius >= 0) {
			return 0, fmt.Errorf("%w: got %v", ErrNegativeRadius, shell.Radius)
		}
		fs += shell.Contrast * SphereVolume(shell.Radius) * special.Sph3J1X(q*shell.Radius)
	}
	return fs, nil
}

// OuterRadius of a layered particle; shells are ordered inside out.
func OuterRadius(shells []Shell) float64 {
	if len(shells) == 0 {
		return 0
	}
	return shells[len(shells)-1].Radius
}

// GraftedChains is the expected number of chains on a sphere of radius [Å]
// at a grafting density [chains nm^-2].
func GraftedChains(density, radius float64) (float64, error) {
	if !(density >= 0) {
		return 0, fmt.Errorf("%w: got %v", ErrNegativeDensity, density)
	}
	if !(radius >= 0) {
		return 0, fmt.Errorf("%w: got %v", ErrNegativeRadius, radius)
	}
	r := radius / constants.AngstromsPerNanometre
	return density * 4. * math.Pi * r * r, nil
}

// SurfacePropagator correlates a grafting point on a sphere of radius r with its centre.
func SurfacePropagator(q, r float64) float64 {
	return special.Sinc(q * r)
}

// GaussianPropagator damps correlations across a junction at distance rc.
func GaussianPropagator(q, rc float64) float64 {
	return math.Exp(-(q * rc) * (q * rc))
}

// Roughness is the Gaussian smearing of a fuzzy interface of width sigma.
func Roughness(q, sigma float64) float64 {
	return math.Exp(-(sigma * q) * (sigma * q) / 2.)
}
