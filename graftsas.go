// Package graftsas computes small-angle scattering intensities of
// polymer-grafted spherical particles and of free polymer chains in solution.
//
// A model is a plain parameter value; Intensity(q) returns I(q) in cm^-1 for
// q in Å^-1. Parameter sets can be read from TOML files:
//
//	cfg, err := graftsas.LoadConfig("samples.toml")
//	m, err := graftsas.Decode[graftsas.CoreChainChain](cfg, "pgnp_a")
//	curve, err := graftsas.NewEvaluator(m).Sample(qs)
package graftsas

import (
	"github.com/wildstyl3r/graftsas/internal/config"
	"github.com/wildstyl3r/graftsas/internal/model"
	"github.com/wildstyl3r/graftsas/internal/utils"
)

type (
	Model           = model.Model
	RadiusMode      = model.RadiusMode
	RadiusEstimator = model.RadiusEstimator
	Evaluator       = model.Evaluator
	Option          = model.Option
	Curve           = model.Curve
	Point           = model.Point

	CoreChain               = model.CoreChain
	CoreShellChain          = model.CoreShellChain
	CoreChainChain          = model.CoreChainChain
	CoreDiblockChain        = model.CoreDiblockChain
	FuzzyCoreChainChain     = model.FuzzyCoreChainChain
	EmpiricalCoreChainChain = model.EmpiricalCoreChainChain
	ChainRPA                = model.ChainRPA
	ProteinPolymer          = model.ProteinPolymer

	Config    = config.Config
	Schema    = config.Schema
	Parameter = config.Parameter
)

const (
	RadiusCore  = model.RadiusCore
	RadiusOuter = model.RadiusOuter
)

var (
	NewEvaluator = model.NewEvaluator
	WithThreads  = model.WithThreads
	WithLogger   = model.WithLogger

	DefaultCoreChain               = model.DefaultCoreChain
	DefaultCoreShellChain          = model.DefaultCoreShellChain
	DefaultCoreChainChain          = model.DefaultCoreChainChain
	DefaultCoreDiblockChain        = model.DefaultCoreDiblockChain
	DefaultFuzzyCoreChainChain     = model.DefaultFuzzyCoreChainChain
	DefaultEmpiricalCoreChainChain = model.DefaultEmpiricalCoreChainChain
	DefaultChainRPA                = model.DefaultChainRPA
	DefaultProteinPolymer          = model.DefaultProteinPolymer

	LoadConfig   = config.LoadConfig
	DecodeConfig = config.DecodeConfig

	LinearGrid = utils.LinearGrid
	LogGrid    = utils.LogGrid

	ErrScatteringVector = model.ErrScatteringVector
	ErrUnknownParameter = config.ErrUnknownParameter
	ErrUnknownModel     = config.ErrUnknownModel
)

// Decode reads the named parameter set of c into a model of type T.
func Decode[T Model](c *Config, set string) (T, error) {
	return model.Decode[T](c, set)
}

// Models lists the default value of every supported model.
func Models() []Model {
	return []Model{
		DefaultCoreChain(),
		DefaultCoreShellChain(),
		DefaultCoreChainChain(),
		DefaultCoreDiblockChain(),
		DefaultFuzzyCoreChainChain(),
		DefaultEmpiricalCoreChainChain(),
		DefaultChainRPA(),
		DefaultProteinPolymer(),
	}
}
