package config

import "github.com/wildstyl3r/graftsas/internal/utils"

var unitToCanonical = map[string]float64{
	"A":      1,   // [Å]
	"nm":     10,  // [Å]
	"g/mol":  1,   // [g mol^-1]
	"kg/mol": 1e3, // [g mol^-1]
}

type UnitClass int

const (
	Length UnitClass = iota
	MolarMass
)

var unitsInClass = map[UnitClass][]string{
	Length:    {"A", "nm"},
	MolarMass: {"g/mol", "kg/mol"},
}

var classesOfUnits = map[string]UnitClass{
	"A":      Length,
	"nm":     Length,
	"g/mol":  MolarMass,
	"kg/mol": MolarMass,
}

var defaultUnits = []string{"A", "g/mol"}

// UnitElement is one factor of a compound unit. Base names the unit the
// canonical value is expressed in when it is not the first-class unit (Å,
// g/mol), e.g. grafting densities are kept per nm².
type UnitElement struct {
	Class UnitClass
	Power int
	Base  string
}

// parameterUnits maps the unit labels of a Schema onto unit elements.
// Labels absent here are dimensionless.
var parameterUnits = map[string][]UnitElement{
	"Ang":         {{Class: Length, Power: 1}},
	"Ang^3":       {{Class: Length, Power: 3}},
	"1e-6/Ang^2":  {{Class: Length, Power: -2}},
	"chains/nm^2": {{Class: Length, Power: -2, Base: "nm"}},
	"g/mol":       {{Class: MolarMass, Power: 1}},
}

// checkUnits splits unknown and repeated-class units off and completes the
// list with defaults for the classes left unspecified.
func checkUnits(units []string) (extended, unknown, conflicts []string) {
	classes := map[UnitClass]struct{}{}
	for _, unit := range units {
		class, known := classesOfUnits[unit]
		if !known {
			unknown = append(unknown, unit)
			continue
		}
		if _, some := classes[class]; some {
			conflicts = append(conflicts, unit)
		} else {
			classes[class] = struct{}{}
			extended = append(extended, unit)
		}
	}
	for _, unit := range defaultUnits {
		if _, some := classes[classesOfUnits[unit]]; !some {
			extended = append(extended, unit)
		}
	}
	return
}

// Canonical converts v between the given units and the canonical ones:
// direct means from units to canonical.
func Canonical(v float64, elements []UnitElement, units []string, direct bool) float64 {
	for _, ue := range elements {
		unit := utils.Intersect(unitsInClass[ue.Class], units)
		if unit == nil {
			continue
		}
		factor := unitToCanonical[*unit]
		if ue.Base != "" {
			factor /= unitToCanonical[ue.Base]
		}
		absPower := utils.IntAbs(ue.Power)
		if direct == (ue.Power > 0) {
			for range absPower {
				v *= factor
			}
		} else {
			for range absPower {
				v /= factor
			}
		}
	}
	return v
}
