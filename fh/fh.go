// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fh implements the Frankenhaeuser-Huxley (1964) active membrane
mechanism, as measured in the Xenopus laevis node of Ranvier, which is the
standard kinetics model for myelinated peripheral axons such as the spiral
ganglion neuron.

Unlike the classic Hodgkin-Huxley formulation, the ionic currents are not
ohmic: they follow the Goldman-Hodgkin-Katz (GHK) constant-field flux
equation, with permeabilities (cm/s) gated by the usual activation and
inactivation variables.  There are four gates: m, h (Na activation and
inactivation), n (K activation), and p (a slow nonspecific permeability
carried mostly by Na).  A linear leak closes the balance.

Voltages are in mV, with rate functions expressed in terms of the
displacement E = V - VRest from the resting potential, per the original
paper.  Current densities are in mA/cm^2, permeabilities in cm/s,
concentrations in mM, time in msec.
*/
package fh

import "math"

// Physical constants.
const (
	Faraday = 96485.33212 // C / mol
	GasR    = 8.31446262  // J / (mol * K)
	ZeroC   = 273.15      // K
)

// Gates holds the four FH gating variables for one membrane patch.
type Gates struct {
	M float64 `desc:"Na activation"`
	H float64 `desc:"Na inactivation"`
	N float64 `desc:"K activation"`
	P float64 `desc:"nonspecific slow activation"`
}

// Params holds the Frankenhaeuser-Huxley membrane parameters.
// Defaults are the published 1964 values at 20 C.
type Params struct {
	PNaBar  float64 `def:"0.008" desc:"max Na permeability in cm/s"`
	PKBar   float64 `def:"0.0012" desc:"max K permeability in cm/s"`
	PPBar   float64 `def:"0.00054" desc:"max nonspecific permeability in cm/s, carried by Na"`
	GLeak   float64 `def:"0.0303" desc:"leak conductance density in S/cm^2"`
	ELeak   float64 `def:"-69.97" desc:"leak reversal in mV -- set by RestBalance so no net current flows at rest"`
	NaIn    float64 `def:"13.74" desc:"internal Na concentration in mM"`
	NaOut   float64 `def:"114.5" desc:"external Na concentration in mM"`
	KIn     float64 `def:"120" desc:"internal K concentration in mM"`
	KOut    float64 `def:"2.5" desc:"external K concentration in mM"`
	VRest   float64 `def:"-70" desc:"resting potential in mV -- rate functions are relative to this"`
	Celsius float64 `def:"20" desc:"temperature in deg C"`
	Q10     float64 `def:"3" desc:"rate Q10 for temperatures away from the 20 C reference"`

	VTF  float64 `view:"-" desc:"F / RT in 1/mV, computed by Update"`
	TAdj float64 `view:"-" desc:"Q10-based rate scaling, computed by Update"`
}

func (fp *Params) Defaults() {
	fp.PNaBar = 0.008
	fp.PKBar = 0.0012
	fp.PPBar = 0.00054
	fp.GLeak = 0.0303
	fp.NaIn = 13.74
	fp.NaOut = 114.5
	fp.KIn = 120
	fp.KOut = 2.5
	fp.VRest = -70
	fp.ELeak = fp.VRest
	fp.Celsius = 20
	fp.Q10 = 3
	fp.Update()
}

// Update computes the temperature-dependent factors from the current
// parameter values.  Must be called after any change to Celsius.
func (fp *Params) Update() {
	tk := ZeroC + fp.Celsius
	fp.VTF = 1e-3 * Faraday / (GasR * tk)
	fp.TAdj = math.Pow(fp.Q10, (fp.Celsius-20)/10)
}

// Efun is the exponential singularity helper z / (e^z - 1), returning the
// limit 1 - z/2 for small |z|.
func Efun(z float64) float64 {
	if math.Abs(z) < 1e-6 {
		return 1 - z/2
	}
	return z / (math.Exp(z) - 1)
}

// GHK returns the constant-field flux factor for a monovalent cation at
// membrane potential v (mV) with internal and external concentrations
// ci, co (mM).  Multiplying by a permeability in m/s yields a current
// density in A/m^2 (0.1 mA/cm^2).
func (fp *Params) GHK(v, ci, co float64) float64 {
	z := v * fp.VTF
	return Faraday * (ci*Efun(-z) - co*Efun(z))
}

// rateUp is the rising rate form a*(v-vh) / (1 - e^((vh-v)/k)), with the
// removable singularity at v == vh filled in by its limit a*k.
func rateUp(a, vh, k, v float64) float64 {
	if math.Abs(v-vh) < 1e-9 {
		return a * k
	}
	return a * (v - vh) / (1 - math.Exp((vh-v)/k))
}

// rateDown is the falling rate form a*(vh-v) / (1 - e^((v-vh)/k)), with
// the same limit a*k at v == vh.
func rateDown(a, vh, k, v float64) float64 {
	if math.Abs(v-vh) < 1e-9 {
		return a * k
	}
	return a * (vh - v) / (1 - math.Exp((v-vh)/k))
}

// RateM returns the m gate opening and closing rates (1/msec) at
// displacement e = v - VRest (mV).
func (fp *Params) RateM(e float64) (alpha, beta float64) {
	alpha = rateUp(0.36, 22, 3, e)
	beta = rateDown(0.4, 13, 20, e)
	return
}

// RateH returns the h gate rates at displacement e.
func (fp *Params) RateH(e float64) (alpha, beta float64) {
	alpha = rateDown(0.1, -10, 6, e)
	beta = 4.5 / (1 + math.Exp((45-e)/10))
	return
}

// RateN returns the n gate rates at displacement e.
func (fp *Params) RateN(e float64) (alpha, beta float64) {
	alpha = rateUp(0.02, 35, 10, e)
	beta = rateDown(0.05, 10, 10, e)
	return
}

// RateP returns the p gate rates at displacement e.
func (fp *Params) RateP(e float64) (alpha, beta float64) {
	alpha = rateUp(0.006, 40, 10, e)
	beta = rateDown(0.09, -25, 20, e)
	return
}

// SteadyGates returns the steady-state gate values at membrane potential
// v (mV), used to initialize the membrane at rest.
func (fp *Params) SteadyGates(v float64) Gates {
	e := v - fp.VRest
	var g Gates
	am, bm := fp.RateM(e)
	ah, bh := fp.RateH(e)
	an, bn := fp.RateN(e)
	ap, bp := fp.RateP(e)
	g.M = am / (am + bm)
	g.H = ah / (ah + bh)
	g.N = an / (an + bn)
	g.P = ap / (ap + bp)
	return g
}

// StepGates advances the gates by one timestep dt (msec) at membrane
// potential v, using the exponential Euler update, which is exact for the
// gate ODEs at fixed voltage.
func (fp *Params) StepGates(g *Gates, v, dt float64) {
	e := v - fp.VRest
	am, bm := fp.RateM(e)
	ah, bh := fp.RateH(e)
	an, bn := fp.RateN(e)
	ap, bp := fp.RateP(e)
	g.M = expEuler(g.M, am, bm, fp.TAdj, dt)
	g.H = expEuler(g.H, ah, bh, fp.TAdj, dt)
	g.N = expEuler(g.N, an, bn, fp.TAdj, dt)
	g.P = expEuler(g.P, ap, bp, fp.TAdj, dt)
}

func expEuler(g, a, b, tadj, dt float64) float64 {
	sum := tadj * (a + b)
	inf := a / (a + b)
	return inf + (g-inf)*math.Exp(-dt*sum)
}

// INa returns the Na current density (mA/cm^2) at v with gates g.
func (fp *Params) INa(v float64, g *Gates) float64 {
	return fp.PNaBar * 1e-3 * g.M * g.M * g.H * fp.GHK(v, fp.NaIn, fp.NaOut)
}

// IK returns the K current density (mA/cm^2).
func (fp *Params) IK(v float64, g *Gates) float64 {
	return fp.PKBar * 1e-3 * g.N * g.N * fp.GHK(v, fp.KIn, fp.KOut)
}

// IP returns the nonspecific current density (mA/cm^2), carried by Na.
func (fp *Params) IP(v float64, g *Gates) float64 {
	return fp.PPBar * 1e-3 * g.P * g.P * fp.GHK(v, fp.NaIn, fp.NaOut)
}

// ILeak returns the leak current density (mA/cm^2).
func (fp *Params) ILeak(v float64) float64 {
	return fp.GLeak * (v - fp.ELeak)
}

// Current returns the total ionic current density (mA/cm^2) at v with
// gates g.  Outward positive.
func (fp *Params) Current(v float64, g *Gates) float64 {
	return fp.INa(v, g) + fp.IK(v, g) + fp.IP(v, g) + fp.ILeak(v)
}

// RestBalance sets ELeak such that the total ionic current at VRest, with
// gates at their steady-state values, is exactly zero, so the membrane is
// in equilibrium before any stimulus is applied.
func (fp *Params) RestBalance() {
	g := fp.SteadyGates(fp.VRest)
	iact := fp.INa(fp.VRest, &g) + fp.IK(fp.VRest, &g) + fp.IP(fp.VRest, &g)
	fp.ELeak = fp.VRest + iact/fp.GLeak
}
