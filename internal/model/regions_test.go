package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildstyl3r/graftsas/internal/chain"
	"github.com/wildstyl3r/graftsas/internal/config"
	"github.com/wildstyl3r/graftsas/internal/model"
	"github.com/wildstyl3r/graftsas/internal/particle"
)

func TestCoreChainChain_FreeChainsOnly(t *testing.T) {
	m := model.DefaultCoreChainChain()
	m.Volf = 0
	m.I0 = 1
	q := 0.05
	got, err := m.Intensity(q)
	require.NoError(t, err)

	st, err := chain.Evaluate(chain.GyrationVariable(q, m.Rg3, m.Nu2), m.Nu2)
	require.NoError(t, err)
	d := m.SLD2 - m.SLDSolvent
	assert.InEpsilon(t, d*d*m.V2*st.FormFactor*1e-4, got, 1e-12)
}

func TestCoreChainChain_Recombination(t *testing.T) {
	m := model.DefaultCoreChainChain()
	m.I0 = 0.5
	q := 0.01
	want, err := m.Intensity(q)
	require.NoError(t, err)

	var gotParticle, gotFree float64
	m.Recombination = func(particle, free float64) float64 {
		gotParticle, gotFree = particle, free
		return m.Volf*particle + m.I0*free
	}
	got, err := m.Intensity(q)
	require.NoError(t, err)
	assert.InEpsilon(t, want, got, 1e-15)

	free, err := m.FreeChains(q)
	require.NoError(t, err)
	assert.Equal(t, free, gotFree)
	assert.Greater(t, gotParticle, 0.)

	m.Recombination = func(particle, _ float64) float64 { return particle }
	got, err = m.Intensity(q)
	require.NoError(t, err)
	assert.Equal(t, gotParticle, got)
}

func TestCoreChainChain_Terms(t *testing.T) {
	m := model.DefaultCoreChainChain()
	q := 0.02
	terms, err := m.Terms(q)
	require.NoError(t, err)

	outer := m.Radius + m.IShell
	ng, err := particle.GraftedChains(m.PolySig, outer)
	require.NoError(t, err)
	s1, err := chain.Evaluate(chain.GyrationVariable(q, m.Rg1, m.Nu1), m.Nu1)
	require.NoError(t, err)
	s2, err := chain.Evaluate(chain.GyrationVariable(q, m.Rg2, m.Nu2), m.Nu2)
	require.NoError(t, err)
	fp1 := m.V1 * (m.SLD1 - m.SLDSolvent) * s1.Amplitude
	fp2 := m.V2 * (m.SLD2 - m.SLDSolvent) * s2.Amplitude
	e1, e2 := particle.SurfacePropagator(q, outer), particle.SurfacePropagator(q, m.Rc)

	chainChain := ng * (ng - 1) * (fp1*e1*e1*fp1 + fp2*e2*e2*fp2 + fp1*e1*e2*fp2)
	assert.InEpsilon(t, chainChain, terms.ChainChain, 1e-12)
	fs, err := particle.Amplitude(q, particle.CoreShell(m.Radius, m.IShell, m.SLDCore, m.SLDShell, m.SLDSolvent)...)
	require.NoError(t, err)
	assert.InEpsilon(t, 2*ng*fs*(e1*fp1+e2*fp2), terms.CoreChain, 1e-12)
}

func TestFuzzyCoreChainChain_SharpLimit(t *testing.T) {
	fuzzy := model.DefaultFuzzyCoreChainChain()
	fuzzy.Sigma = 0
	fuzzy.I0 = 0.2
	fuzzy.Nu3 = fuzzy.Nu2

	ccc := model.DefaultCoreChainChain()
	ccc.IShell = 0
	ccc.I0 = 0.2

	for _, q := range []float64{0, 0.003, 0.02, 0.15} {
		want, err := ccc.Intensity(q)
		require.NoError(t, err)
		got, err := fuzzy.Intensity(q)
		require.NoError(t, err)
		assert.InEpsilon(t, want, got, 1e-9, "q=%v", q)
	}
}

func TestFuzzyCoreChainChain_Roughness(t *testing.T) {
	m := model.DefaultFuzzyCoreChainChain()
	m.PolySig = 0
	q := 0.04
	terms, err := m.Terms(q)
	require.NoError(t, err)
	fs, err := particle.Amplitude(q, particle.Sphere(m.Radius, m.SLDCore, m.SLDSolvent)...)
	require.NoError(t, err)
	damped := fs * math.Exp(-(m.Sigma*q)*(m.Sigma*q)/2)
	assert.InEpsilon(t, damped*damped, terms.Core, 1e-12)
}

func TestCoreDiblockChain_Terms(t *testing.T) {
	m := model.DefaultCoreDiblockChain()
	q := 0.015
	terms, err := m.Terms(q)
	require.NoError(t, err)

	theta := 68. * math.Pi / 180.
	b := m.CInfty * 1.54 / math.Cos(theta/2)
	n1 := (m.M1 / m.M0) * math.Pow(math.Cos(theta/2), 2) / m.CInfty
	n2 := (m.M2 / m.M0) * math.Pow(math.Cos(theta/2), 2) / m.CInfty
	v1, v2 := n1*m.V, n2*m.V
	s1, err := chain.Evaluate(math.Pow(q*b, 2)*math.Pow(n1, 2*m.Nu1)/6, m.Nu1)
	require.NoError(t, err)
	s2, err := chain.Evaluate(math.Pow(q*b, 2)*math.Pow(n2, 2*m.Nu2)/6, m.Nu2)
	require.NoError(t, err)
	fp1 := v1 * (m.SLD1 - m.SLDSolvent) * s1.Amplitude
	fp2 := v2 * (m.SLD2 - m.SLDSolvent) * s2.Amplitude
	pp1 := v1 * v1 * (m.SLD1 - m.SLDSolvent) * (m.SLD1 - m.SLDSolvent) * s1.FormFactor
	pp2 := v2 * v2 * (m.SLD2 - m.SLDSolvent) * (m.SLD2 - m.SLDSolvent) * s2.FormFactor

	outer := m.Radius + m.IShell
	ng := 4 * math.Pi * (0.1 * outer) * (0.1 * outer) * m.PolySig
	e1 := math.Sin(q*outer) / (q * outer)
	e2 := math.Exp(-(q * m.Rc) * (q * m.Rc))

	assert.InEpsilon(t, ng*(pp1+pp2+2*fp1*fp2), terms.ChainSelf, 1e-9)
	chainChain := ng*(ng-1)*(fp1*e1*e1*fp1+fp2*e2*e1*e1*e2*fp2) + ng*ng*fp1*e1*e1*e2*fp2
	assert.InEpsilon(t, chainChain, terms.ChainChain, 1e-9)

	rg1, rg2 := m.BlockGyrationRadii()
	assert.InEpsilon(t, chain.GyrationRadius(b, n1, m.Nu1), rg1, 1e-12)
	assert.InEpsilon(t, chain.GyrationRadius(b, n2, m.Nu2), rg2, 1e-12)
}

func TestCoreDiblockChain_FreeChainsUnweighted(t *testing.T) {
	m := model.DefaultCoreDiblockChain()
	m.Volf = 0
	m.I0 = 2
	q := 0.03
	got, err := m.Intensity(q)
	require.NoError(t, err)
	pp, err := chain.Evaluate(chain.GyrationVariable(q, m.Rg3, m.Nu3), m.Nu3)
	require.NoError(t, err)
	assert.InEpsilon(t, 2*pp.FormFactor*1e-4, got, 1e-12)
}

func TestEmpiricalCoreChainChain_Crossovers(t *testing.T) {
	m := model.DefaultEmpiricalCoreChainChain()
	m.I1 = 4
	const eps = 1e-9

	q1 := math.Sqrt(5*m.I1/2) / m.R
	below, above := m.CoreAmplitude(q1*(1-eps)), m.CoreAmplitude(q1*(1+eps))
	assert.InEpsilon(t, below, above, 1e-6)
	assert.InEpsilon(t, (m.SLDCore-m.SLDSolvent)*particle.SphereVolume(m.R)*math.Exp(-0.01*0.01*m.R*m.R/10), m.CoreAmplitude(0.01), 1e-12)
	// power law q^(-I1/2) beyond the crossover
	assert.InEpsilon(t, math.Pow(2, -m.I1/2), m.CoreAmplitude(2*q1*2)/m.CoreAmplitude(2*q1), 1e-12)

	for _, r := range []float64{m.R, m.Rc} {
		qx := math.Sqrt(3*m.I1/4) / r
		assert.InEpsilon(t, m.Propagator(qx*(1-eps), r), m.Propagator(qx*(1+eps), r), 1e-6)
		assert.InEpsilon(t, math.Pow(3, -m.I1/4), m.Propagator(3*qx*2, r)/m.Propagator(2*qx, r), 1e-12)
	}

	m.I1 = 0
	assert.Equal(t, 1., m.Propagator(0.3, m.R))
	assert.InEpsilon(t, (m.SLDCore-m.SLDSolvent)*particle.SphereVolume(m.R), m.CoreAmplitude(0.3), 1e-15)

	m.I1 = -1
	_, err := m.Intensity(0.01)
	assert.ErrorIs(t, err, model.ErrExponent)
}

func TestEmpiricalCoreChainChain_Scale(t *testing.T) {
	m := model.DefaultEmpiricalCoreChainChain()
	base, err := m.Intensity(0.02)
	require.NoError(t, err)
	m.I0 = 3
	scaled, err := m.Intensity(0.02)
	require.NoError(t, err)
	assert.InEpsilon(t, 3*base, scaled, 1e-14)

	terms, err := m.Terms(0.02)
	require.NoError(t, err)
	assert.InEpsilon(t, 3*terms.Total()*1e-4, scaled, 1e-14)
}

func TestChainRPA(t *testing.T) {
	m := model.DefaultChainRPA()
	q := 0.03
	got, err := m.Intensity(q)
	require.NoError(t, err)

	u := (q * m.B) * (q * m.B) * m.N / 6
	pp := chain.Debye(u)
	inverse := 1/(m.N*m.PhiP*m.Vm*pp) + 1/(m.Vs*(1-m.PhiP)) - 2*m.Chi/math.Sqrt(m.Vm*m.Vs)
	d := m.SLDP - m.SLDS
	assert.InEpsilon(t, d*d*1e-4/inverse, got, 1e-9)

	for _, phi := range []float64{0, 1} {
		m.PhiP = phi
		i, err := m.Intensity(q)
		require.NoError(t, err)
		assert.Equal(t, 0., i, "phi=%v", phi)
	}

	m.PhiP = 1.5
	_, err = m.Intensity(q)
	assert.ErrorIs(t, err, model.ErrFraction)

	m = model.DefaultChainRPA()
	m.Nu = 0
	_, err = m.Intensity(q)
	assert.ErrorIs(t, err, chain.ErrExponent)
}

func TestChainRPA_Spinodal(t *testing.T) {
	m := model.DefaultChainRPA()
	m.Vm, m.Vs = 100, 100
	m.PhiP = 0.5
	m.N = 1
	m.B = 0
	// Pp = 1 at b = 0: 1/50 + 1/50 - 2χ/100 = 0 at χ = 2
	m.Chi = 2
	_, err := m.Intensity(0.01)
	assert.ErrorIs(t, err, model.ErrSpinodal)
}

func TestProteinPolymer(t *testing.T) {
	m := model.DefaultProteinPolymer()
	m.SLD1, m.SLD2 = 2, 1
	q := 0.02
	got, err := m.Intensity(q)
	require.NoError(t, err)

	s1, err := chain.Evaluate(chain.GyrationVariable(q, m.Rg1, m.Nu1), m.Nu1)
	require.NoError(t, err)
	s2, err := chain.Evaluate(chain.GyrationVariable(q, m.Rg2, m.Nu2), m.Nu2)
	require.NoError(t, err)
	d1, d2 := m.SLD1-m.SLDSolvent, m.SLD2-m.SLDSolvent
	sum := d1*d1*m.V1*m.V1*s1.FormFactor + d2*d2*m.V2*m.V2*s2.FormFactor +
		2*m.V1*m.V2*d1*d2*s1.Amplitude*math.J0(q*m.Rg1)*s2.Amplitude
	assert.InEpsilon(t, sum*1e-4/(m.V1+m.V2), got, 1e-12)
}

func TestEmpiricalCoreChainChain_CoreAmplitudeValue(t *testing.T) {
	m := model.DefaultEmpiricalCoreChainChain()
	// q1 = √2.5/75: Δρ·V·exp(-0.25)·(q1/q)^(1/2) at q = 0.1
	assert.InEpsilon(t, -1832530.2289072839, m.CoreAmplitude(0.1), 1e-12)
	assert.InEpsilon(t, -2.9*particle.SphereVolume(75)*math.Exp(-0.25)*math.Sqrt(math.Sqrt(2.5)/75/0.1),
		m.CoreAmplitude(0.1), 1e-12)
}

func TestFuzzyCoreChainChain_InitiatorSLDIsInert(t *testing.T) {
	m := model.DefaultFuzzyCoreChainChain()
	base, err := m.Intensity(0.02)
	require.NoError(t, err)
	m.SLDShell = 5
	got, err := m.Intensity(0.02)
	require.NoError(t, err)
	assert.Equal(t, base, got)

	c, err := config.DecodeConfig(`
[Models.shared]
sld_s = -0.022
sigma = 5.0
`)
	require.NoError(t, err)
	fuzzy, err := model.Decode[model.FuzzyCoreChainChain](c, "shared")
	require.NoError(t, err)
	assert.Equal(t, 5., fuzzy.Sigma)
	assert.Equal(t, -0.022, fuzzy.SLDShell)
}
