// Package chain evaluates the excluded-volume polymer chain amplitude Fp(q)
// and form factor Pp(q) from the dimensionless size variable U.
//
// With s = 1/(2ν):
//
//	Fp = s·U^(-s)·γ(s,U)
//	Pp = (1/ν)·[U^(-s)·γ(s,U) - U^(-2s)·γ(2s,U)]
//
// where γ is the lower incomplete gamma Γ(s)·P(s,U). Both tend to 1 as U -> 0.
// Pp is not Fp² except in special cases; callers must keep them apart.
package chain

import (
	"errors"
	"fmt"
	"math"

	"github.com/wildstyl3r/graftsas/internal/constants"
	"github.com/wildstyl3r/graftsas/internal/special"
)

var ErrExponent = errors.New("chain: excluded-volume exponent must be positive")

type Statistics struct {
	U          float64
	Amplitude  float64 // Fp
	FormFactor float64 // Pp
}

// KuhnVariable is U for a chain of n Kuhn segments of length b.
func KuhnVariable(q, b, n, nu float64) float64 {
	return math.Pow(q*b, 2.) * math.Pow(n, 2.*nu) / 6.
}

// GyrationVariable is U for a chain with radius of gyration rg.
func GyrationVariable(q, rg, nu float64) float64 {
	return (q * rg) * (q * rg) * (2.*nu + 1.) * (2.*nu + 2.) / 6.
}

func Evaluate(u, nu float64) (Statistics, error) {
	if !(nu > 0) || math.IsInf(nu, 1) {
		return Statistics{}, fmt.Errorf("%w: got %v", ErrExponent, nu)
	}
	s := 1. / (2. * nu)
	half, err := special.ScaledLowerGamma(s, u)
	if err != nil {
		return Statistics{}, fmt.Errorf("chain amplitude at U=%v: %w", u, err)
	}
	full, err := special.ScaledLowerGamma(2.*s, u)
	if err != nil {
		return Statistics{}, fmt.Errorf("chain form factor at U=%v: %w", u, err)
	}
	return Statistics{
		U:          u,
		Amplitude:  s * half,
		FormFactor: (half - full) / nu,
	}, nil
}

// Debye is the Gaussian chain form factor 2(e^(-x) + x - 1)/x².
func Debye(x float64) float64 {
	if x < 1e-3 {
		// 1 - x/3 + x²/12 - x³/60
		return 1. + x*(-1./3.+x*(1./12.-x/60.))
	}
	return 2. * (math.Expm1(-x) + x) / (x * x)
}

// KuhnLength of a vinyl backbone with characteristic ratio cInfinity.
func KuhnLength(cInfinity float64) float64 {
	return cInfinity * constants.BondLength / math.Cos(constants.BondAngle/2.)
}

// KuhnSegments converts a molar mass into a number of Kuhn segments.
// projections is the power of cos(θ0/2) in the backbone contour length.
func KuhnSegments(molarMass, monomerMass, cInfinity float64, projections int) float64 {
	return (molarMass / monomerMass) * math.Pow(math.Cos(constants.BondAngle/2.), float64(projections)) / cInfinity
}

func GyrationRadius(b, n, nu float64) float64 {
	return b * math.Pow(n, nu) / math.Sqrt((2.*nu+1.)*(2.*nu+2.))
}
