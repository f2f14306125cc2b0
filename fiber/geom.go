// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"fmt"
	"math"
)

// Geom holds the geometry of one fiber region (dendrite, soma, or axon):
// node count, calibers, segment lengths, and the periaxonal spaces under
// the myelin.  Lengths and diameters are in um.
type Geom struct {
	NNodes   int     `desc:"number of nodes of Ranvier in this region"`
	FiberD   float64 `desc:"outer fiber diameter including myelin, in um -- sets the internodal caliber scaling"`
	NodeD    float64 `desc:"node diameter -- if zero, computed as 0.7 * FiberD in Update"`
	ParaD1   float64 `desc:"MYSA diameter -- if zero, computed as 0.7 * FiberD in Update"`
	ParaD2   float64 `desc:"FLUT diameter -- if zero, computed as 0.85 * FiberD in Update"`
	AxonD    float64 `desc:"STIN diameter -- if zero, computed as 0.85 * FiberD in Update"`
	NodeLen  float64 `def:"2.5" desc:"node length in um"`
	MysaLen  float64 `def:"3" desc:"MYSA length in um"`
	FlutLen  float64 `def:"10" desc:"FLUT length in um"`
	InterLen float64 `desc:"node-to-node internode distance -- if zero, computed as 100 * FiberD in Update"`
	StinLen  float64 `view:"-" desc:"length of each of the 6 STIN segments, computed by Update from the other lengths"`
	NLam     int     `desc:"number of myelin lamellae wrapping the internodal segments"`
	SpaceN   float64 `def:"0.002" desc:"periaxonal space width at nodes, in um"`
	SpaceP1  float64 `def:"0.002" desc:"periaxonal space width at MYSA, in um"`
	SpaceP2  float64 `def:"0.004" desc:"periaxonal space width at FLUT, in um"`
	SpaceI   float64 `def:"0.004" desc:"periaxonal space width at STIN, in um"`
}

func (gm *Geom) Defaults() {
	gm.NodeLen = 2.5
	gm.MysaLen = 3
	gm.FlutLen = 10
	gm.SpaceN = 0.002
	gm.SpaceP1 = 0.002
	gm.SpaceP2 = 0.004
	gm.SpaceI = 0.004
	gm.Update()
}

// Update computes the derived diameters and segment lengths from the
// primary parameters.  The diameters and InterLen are only derived if
// left zero, so any of them can be overridden (e.g., a fat cell body, or
// an unmyelinated caliber equal to the fiber diameter).
func (gm *Geom) Update() {
	if gm.ParaD1 == 0 {
		gm.ParaD1 = 0.7 * gm.FiberD
	}
	if gm.ParaD2 == 0 {
		gm.ParaD2 = 0.85 * gm.FiberD
	}
	if gm.AxonD == 0 {
		gm.AxonD = 0.85 * gm.FiberD
	}
	if gm.NodeD == 0 {
		gm.NodeD = 0.7 * gm.FiberD
	}
	if gm.InterLen == 0 {
		gm.InterLen = 100 * gm.FiberD
	}
	gm.StinLen = (gm.InterLen - gm.NodeLen - 2*gm.MysaLen - 2*gm.FlutLen) / 6
}

// Validate returns an error for any non-physical geometry.  Called by
// Fiber.Build before any compartments are made.
func (gm *Geom) Validate(nm string) error {
	if gm.NNodes < 1 {
		return fmt.Errorf("%s: NNodes must be >= 1, got %d", nm, gm.NNodes)
	}
	if gm.FiberD <= 0 || gm.NodeD <= 0 || gm.ParaD1 <= 0 || gm.ParaD2 <= 0 || gm.AxonD <= 0 {
		return fmt.Errorf("%s: diameters must be positive: FiberD %g NodeD %g ParaD1 %g ParaD2 %g AxonD %g", nm, gm.FiberD, gm.NodeD, gm.ParaD1, gm.ParaD2, gm.AxonD)
	}
	if gm.NodeLen <= 0 || gm.MysaLen <= 0 || gm.FlutLen <= 0 || gm.StinLen <= 0 {
		return fmt.Errorf("%s: segment lengths must be positive: node %g mysa %g flut %g stin %g", nm, gm.NodeLen, gm.MysaLen, gm.FlutLen, gm.StinLen)
	}
	if gm.NLam < 1 {
		return fmt.Errorf("%s: NLam must be >= 1, got %d", nm, gm.NLam)
	}
	if gm.SpaceN <= 0 || gm.SpaceP1 <= 0 || gm.SpaceP2 <= 0 || gm.SpaceI <= 0 {
		return fmt.Errorf("%s: periaxonal spaces must be positive", nm)
	}
	return nil
}

// ClassDims returns the diameter, length, and periaxonal space width for
// the given compartment class in this region.
func (gm *Geom) ClassDims(cls CompClass) (diam, length, space float64) {
	switch cls {
	case Node:
		return gm.NodeD, gm.NodeLen, gm.SpaceN
	case MYSA:
		return gm.ParaD1, gm.MysaLen, gm.SpaceP1
	case FLUT:
		return gm.ParaD2, gm.FlutLen, gm.SpaceP2
	default:
		return gm.AxonD, gm.StinLen, gm.SpaceI
	}
}

// PasParams holds the passive electrical parameters shared by all regions:
// cytoplasm and periaxonal resistivities, membrane and myelin densities.
type PasParams struct {
	RhoA       float64 `def:"0.7" desc:"axoplasmic resistivity in MOhm * um (70 Ohm cm)"`
	RhoP       float64 `def:"0.7" desc:"periaxonal resistivity in MOhm * um"`
	CmDens     float64 `def:"1" desc:"membrane capacitance density in uF/cm^2"`
	MyCm       float64 `def:"0.1" desc:"myelin capacitance per lamella membrane pair, uF/cm^2"`
	MyGm       float64 `def:"0.001" desc:"myelin conductance per lamella membrane pair, S/cm^2"`
	GMysa      float64 `def:"0.001" desc:"MYSA passive conductance density, S/cm^2, scaled by diameter ratio"`
	GFlut      float64 `def:"0.0001" desc:"FLUT passive conductance density, S/cm^2, scaled by diameter ratio"`
	GStin      float64 `def:"0.0001" desc:"STIN passive conductance density, S/cm^2, scaled by diameter ratio"`
	XgNode     float64 `def:"1e5" desc:"nodal sheath conductance density, S/cm^2 -- effectively shorts the nodal periaxonal space to the bath"`
	NodeRefD   float64 `def:"2" desc:"reference caliber for nodal channel totals -- every node carries the channel complement of a node of this fiber diameter, regardless of its own caliber"`
	NodeRefLen float64 `def:"2.5" desc:"reference node length for nodal channel totals, um"`
}

func (pp *PasParams) Defaults() {
	pp.RhoA = 0.7
	pp.RhoP = 0.7
	pp.CmDens = 1
	pp.MyCm = 0.1
	pp.MyGm = 0.001
	pp.GMysa = 0.001
	pp.GFlut = 0.0001
	pp.GStin = 0.0001
	pp.XgNode = 1e5
	pp.NodeRefD = 2
	pp.NodeRefLen = 2.5
}

func (pp *PasParams) Update() {
}

// GPas returns the passive conductance density (S/cm^2) for the given
// non-node compartment class.
func (pp *PasParams) GPas(cls CompClass) float64 {
	switch cls {
	case MYSA:
		return pp.GMysa
	case FLUT:
		return pp.GFlut
	default:
		return pp.GStin
	}
}

// NodeRefArea returns the reference node membrane area in cm^2 used to
// scale the fixed per-node channel totals.
func (pp *PasParams) NodeRefArea() float64 {
	return math.Pi * pp.NodeRefD * pp.NodeRefLen * 1e-8
}

// PeriaxialRes returns the periaxonal axial resistance per unit length, in
// MOhm/cm, for an axon of diameter d (um) with a periaxonal space of width
// space (um) between the axolemma and the myelin sheath:
//
//	R = (rho * 0.01) / (pi * ((r + space)^2 - r^2))
//
// with rho in Ohm um.  Narrower spaces give a proportionally higher
// longitudinal resistance.
func (pp *PasParams) PeriaxialRes(d, space float64) float64 {
	r := d / 2
	rho := pp.RhoP * 1e6 // MOhm um -> Ohm um
	return (rho * 0.01) / (math.Pi * ((r+space)*(r+space) - r*r))
}
