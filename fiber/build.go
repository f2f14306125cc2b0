// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"errors"
	"fmt"
	"math"

	"github.com/goki/mat32"
)

// internodeStride is the passive chain between two successive nodes of a
// myelinated region.  All region wiring is generated from these stride
// descriptors.
var internodeStride = []CompClass{MYSA, FLUT, STIN, STIN, STIN, STIN, STIN, STIN, FLUT, MYSA}

// somaStrides gives the full layout of the soma region for each variant.
// Node here is the cell body itself.
var somaStrides = map[SomaVariant][]CompClass{
	SomaCentered:  {MYSA, FLUT, STIN, STIN, STIN, Node, STIN, STIN, STIN, FLUT, MYSA},
	SomaOffCenter: {MYSA, FLUT, STIN, STIN, STIN, STIN, STIN, STIN, STIN, STIN, FLUT, MYSA, Node, STIN, STIN, STIN, STIN, FLUT, MYSA},
}

// Build generates the full compartment chain from the current parameters:
// dendrite, soma region, axon, concatenated into one unbranched cable.
// It precomputes all electrical parameters, the 3-D positions, and the
// transfer resistances to the electrode, and sizes the solver.  Returns a
// fatal ErrConfig-wrapped error for any invalid configuration, before any
// integration state is touched.
func (fb *Fiber) Build() error {
	fb.Update()
	var errs []error
	if err := fb.Dend.Validate("Dend"); err != nil {
		errs = append(errs, err)
	}
	if err := fb.Soma.Validate("Soma"); err != nil {
		errs = append(errs, err)
	}
	if err := fb.Axon.Validate("Axon"); err != nil {
		errs = append(errs, err)
	}
	if fb.SomaVar < 0 || fb.SomaVar >= SomaVariantN {
		errs = append(errs, fmt.Errorf("SomaVar out of range: %d", fb.SomaVar))
	}
	if fb.Stim.ElecNode < 0 || fb.Stim.ElecNode >= fb.Dend.NNodes {
		errs = append(errs, fmt.Errorf("Stim.ElecNode %d out of range for %d dendritic nodes", fb.Stim.ElecNode, fb.Dend.NNodes))
	}
	if fb.Stim.Sigma <= 0 {
		errs = append(errs, fmt.Errorf("Stim.Sigma must be positive, got %g", fb.Stim.Sigma))
	}
	if fb.Stim.Dur <= 0 {
		errs = append(errs, fmt.Errorf("Stim.Dur must be positive, got %g", fb.Stim.Dur))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrConfig, errors.Join(errs...))
	}

	fb.Comps = fb.Comps[:0]
	fb.regionChain(&fb.Dend, Dendrite)
	fb.somaChain(&fb.Soma, fb.SomaVar)
	fb.regionChain(&fb.Axon, Axon)

	// midpoint positions along the x axis
	x := 0.0
	fb.Nodes = fb.Nodes[:0]
	for i := range fb.Comps {
		cp := &fb.Comps[i]
		cp.Pos = mat32.Vec3{X: float32(x + cp.Len/2), Y: 0, Z: 0}
		x += cp.Len
		if cp.IsNode() {
			fb.Nodes = append(fb.Nodes, i)
		}
	}

	ec := fb.Comps[fb.DendNode(fb.Stim.ElecNode)]
	fb.Elec = mat32.Vec3{X: ec.Pos.X, Y: 0, Z: float32(fb.Stim.ElecDist)}

	n := len(fb.Comps)
	fb.TrR = resize(fb.TrR, n)
	fb.Vx = resize(fb.Vx, n)
	fb.VxOld = resize(fb.VxOld, n)
	for i := range fb.Comps {
		tr := TransferRes(fb.Comps[i].Pos, fb.Elec, fb.Stim.Sigma)
		if tr == 0 {
			return fmt.Errorf("%w: electrode coincides with compartment %d", ErrConfig, i)
		}
		fb.TrR[i] = tr
	}

	fb.Solv.Config(fb.Comps)
	fb.InitRest()
	return nil
}

// regionChain appends a standard myelinated region: NNodes nodes with the
// internode stride between successive nodes.
func (fb *Fiber) regionChain(gm *Geom, reg Region) {
	for i := 0; i < gm.NNodes; i++ {
		fb.Comps = append(fb.Comps, fb.makeComp(gm, reg, Node))
		if i < gm.NNodes-1 {
			for _, cls := range internodeStride {
				fb.Comps = append(fb.Comps, fb.makeComp(gm, reg, cls))
			}
		}
	}
}

// somaChain appends the soma region per the layout variant.
func (fb *Fiber) somaChain(gm *Geom, sv SomaVariant) {
	for _, cls := range somaStrides[sv] {
		fb.Comps = append(fb.Comps, fb.makeComp(gm, Soma, cls))
	}
}

// makeComp computes all electrical parameters for one compartment of the
// given class in the given region, converting the configured density
// units (S/cm^2, uF/cm^2, Ohm cm) into the internal uS / nF / MOhm.
func (fb *Fiber) makeComp(gm *Geom, reg Region, cls CompClass) Comp {
	cp := Comp{Class: cls, Reg: reg}
	d, ln, space := gm.ClassDims(cls)
	cp.Diam = d
	cp.Len = ln
	area := math.Pi * d * ln // um^2
	ratio := d / gm.FiberD

	cp.Ra = fb.Pas.RhoA * ln / (math.Pi * (d / 2) * (d / 2))  // MOhm
	cp.Xr = fb.Pas.PeriaxialRes(d, space) * ln * 1e-4         // MOhm/cm * cm

	if cls == Node {
		cp.Cm = fb.Pas.CmDens * area * 1e-5 // uF/cm^2 * um^2 -> nF
		if reg == Soma {
			// the cell body retains a loose myelin wrap in series with
			// its membrane, reducing the effective capacitance
			cp.Cm /= float64(1 + 2*gm.NLam)
		}
		cp.Xg = fb.Pas.XgNode * area * 0.01 // S/cm^2 * um^2 -> uS
		cp.Xc = 0
		cp.AreaAct = fb.Pas.NodeRefArea()
	} else {
		nl := 2 * float64(gm.NLam)
		cp.Cm = fb.Pas.CmDens * ratio * area * 1e-5
		cp.Xg = (fb.Pas.MyGm / nl) * area * 0.01
		cp.Xc = (fb.Pas.MyCm / nl) * area * 1e-5
		cp.GPas = fb.Pas.GPas(cls) * ratio * area * 0.01
	}
	return cp
}

func resize(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	return s[:n]
}
