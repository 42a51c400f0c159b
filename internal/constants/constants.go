package constants

import "math"

const SLDUnit float64 = 1e-6                            // [Å^-2] per tabulated SLD unit
const InverseCentimetre float64 = 1e8                   // [Å cm^-1]
const UnitScale = SLDUnit * SLDUnit * InverseCentimetre // SLD^2 -> Å^-4, Å^4 / Å^3 -> cm^-1
const AngstromsPerNanometre float64 = 10.               // [Å nm^-1]
const BondLength float64 = 1.54                         // C-C, [Å]
const BondAngle = 68. * math.Pi / 180.                  // θ0, [rad]
