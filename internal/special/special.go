// Package special holds the scalar special functions the scattering layers
// are built from. Removable singularities at zero argument are resolved by
// explicit series branches, never by letting a 0/0 through.
package special

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
)

var ErrDomain = errors.New("special: argument outside function domain")

const (
	sincSeriesBound       = 1e-4
	sph3j1SeriesBound     = 0.1
	lowerGammaSeriesBound = 1.
	maxSeriesTerms        = 64
)

func checkShape(s float64) error {
	if !(s > 0) || math.IsInf(s, 1) {
		return fmt.Errorf("%w: shape parameter %v must be positive and finite", ErrDomain, s)
	}
	return nil
}

func checkArgument(x float64) error {
	if !(x >= 0) {
		return fmt.Errorf("%w: argument %v must be non-negative", ErrDomain, x)
	}
	return nil
}

// Gamma is Euler's Γ(s) restricted to s > 0.
func Gamma(s float64) (float64, error) {
	if err := checkShape(s); err != nil {
		return 0, err
	}
	return math.Gamma(s), nil
}

// GammaIncReg is the regularized lower incomplete gamma P(s,x) = γ(s,x)/Γ(s).
func GammaIncReg(s, x float64) (float64, error) {
	if err := checkShape(s); err != nil {
		return 0, err
	}
	if err := checkArgument(x); err != nil {
		return 0, err
	}
	if x == 0 {
		return 0, nil
	}
	if math.IsInf(x, 1) {
		return 1, nil
	}
	return mathext.GammaIncReg(s, x), nil
}

// ScaledLowerGamma returns u^(-s)·γ(s,u), which tends to 1/s as u -> 0.
//
// Below u = 1 the series Σ (-u)^k / (k!·(s+k)) is summed directly; its terms
// shrink like u^k/k! so it converges quickly and needs no 0^(-s).
func ScaledLowerGamma(s, u float64) (float64, error) {
	if err := checkShape(s); err != nil {
		return 0, err
	}
	if err := checkArgument(u); err != nil {
		return 0, err
	}
	if u < lowerGammaSeriesBound {
		sum := 1. / s
		power := 1. // (-u)^k / k!
		for k := 1; k < maxSeriesTerms; k++ {
			power *= -u / float64(k)
			term := power / (s + float64(k))
			sum += term
			if math.Abs(term) <= 1e-17*math.Abs(sum) {
				break
			}
		}
		return sum, nil
	}
	if math.IsInf(u, 1) {
		return 0, nil
	}
	p, err := GammaIncReg(s, u)
	if err != nil {
		return 0, err
	}
	return math.Pow(u, -s) * math.Gamma(s) * p, nil
}

// Sinc is sin(x)/x with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if math.Abs(x) < sincSeriesBound {
		return 1. - x*x/6.
	}
	return math.Sin(x) / x
}

// Sph3J1X is the normalized spherical Bessel amplitude 3·j1(x)/x, equal to 1 at x = 0.
func Sph3J1X(x float64) float64 {
	if math.Abs(x) < sph3j1SeriesBound {
		x2 := x * x
		// 1 - x²/10 + x⁴/280 - x⁶/15120 + x⁸/1330560
		return 1. + x2*(-1./10.+x2*(1./280.+x2*(-1./15120.+x2/1330560.)))
	}
	sin, cos := math.Sincos(x)
	return 3. * (sin - x*cos) / (x * x * x)
}

// BesselJ0 is the cylindrical Bessel function of the first kind, order zero.
func BesselJ0(x float64) float64 {
	return math.J0(x)
}
