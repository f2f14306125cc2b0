// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fiber implements a double-cable compartment model of the cochlear
spiral ganglion neuron (SGN): a peripheral dendrite, a loosely myelinated
cell body, and a central axon, each built from nodes of Ranvier separated
by myelinated internodes (MYSA and FLUT paranodes plus 6 STIN segments,
after McIntyre, Richardson & Grill 2002).

Nodes carry the Frankenhaeuser-Huxley active membrane (package fh); all
compartments additionally carry the periaxonal space under the myelin as a
second cable layer, so the model state per compartment is the membrane
potential Vm and the periaxonal potential Ve.

Stimulation is extracellular, from a monopolar point-source electrode in a
homogeneous medium, as an approximation of a cochlear implant contact.
Integration is implicit (backward Euler) over the whole interleaved
system, which keeps the stiff cable equations stable at large stimulus
amplitudes.  The Search driver finds the excitation threshold by lowering
the pulse amplitude until a propagated response fails.
*/
package fiber

import (
	"errors"

	"github.com/emer/sgn/fh"
	"github.com/goki/mat32"
)

var (
	// ErrConfig is wrapped by all fiber configuration errors, reported by
	// Build before any integration starts.
	ErrConfig = errors.New("fiber: invalid configuration")

	// ErrDiverged is wrapped by numerical errors: a NaN or Inf appeared in
	// the solution, typically from an unstable parameter regime.
	ErrDiverged = errors.New("fiber: numerical divergence")

	// ErrSearchBound is reported when the threshold search hits its
	// iteration bound while runs still succeed.  The threshold found so
	// far is still returned.
	ErrSearchBound = errors.New("fiber: threshold search iteration bound reached")

	// ErrNoExcite is reported when the initial search amplitude already
	// fails to excite the fiber, so no threshold can be bracketed.
	ErrNoExcite = errors.New("fiber: initial amplitude does not excite the fiber")
)

// Fiber is a complete spiral ganglion neuron model: configuration
// parameters plus the built compartment chain and solver state.
// Call Defaults, optionally adjust parameters, then Build, then Run
// (or Search.Run for a threshold).
type Fiber struct {
	Dend    Geom        `view:"inline" desc:"peripheral process geometry"`
	Soma    Geom        `view:"inline" desc:"cell body region geometry"`
	Axon    Geom        `view:"inline" desc:"central process geometry"`
	SomaVar SomaVariant `desc:"layout variant of the soma region"`
	Pas     PasParams   `view:"inline" desc:"passive electrical parameters"`
	Mem     fh.Params   `view:"inline" desc:"active membrane parameters for nodes"`
	Stim    StimParams  `view:"inline" desc:"extracellular stimulus"`

	Comps []Comp     `view:"-" desc:"all compartments in order, dendrite terminal to axon end -- built by Build"`
	Nodes []int      `view:"-" desc:"compartment indices of the nodes, in order"`
	Elec  mat32.Vec3 `inactive:"+" desc:"electrode position in um, computed by Build from Stim"`
	TrR   []float64  `view:"-" desc:"per-compartment transfer resistance to the electrode, MOhm"`
	Vx    []float64  `view:"-" desc:"applied extracellular potential per compartment, mV"`
	VxOld []float64  `view:"-" desc:"extracellular potential at the previous step"`
	Solv  Solver     `view:"-" desc:"implicit cable solver state"`
}

// Defaults sets the standard SGN morphology: a 1 um dendrite with 5 nodes,
// a 20 um cell body under a loose 10-lamella wrap, and a 2 um axon with
// 21 nodes.
func (fb *Fiber) Defaults() {
	fb.Dend.Defaults()
	fb.Dend.NNodes = 5
	fb.Dend.FiberD = 1
	fb.Dend.NLam = 40
	fb.Dend.Update()

	fb.Soma.Defaults()
	fb.Soma.NNodes = 1
	fb.Soma.FiberD = 2
	fb.Soma.NodeD = 20
	fb.Soma.NodeLen = 20
	fb.Soma.InterLen = 80
	fb.Soma.NLam = 10
	fb.Soma.Update()

	fb.SomaVar = SomaCentered

	fb.Axon.Defaults()
	fb.Axon.NNodes = 21
	fb.Axon.FiberD = 2
	fb.Axon.NLam = 80
	fb.Axon.Update()

	fb.Pas.Defaults()
	fb.Mem.Defaults()
	fb.Stim.Defaults()
}

// Update updates all the derived parameter values.
func (fb *Fiber) Update() {
	fb.Dend.Update()
	fb.Soma.Update()
	fb.Axon.Update()
	fb.Pas.Update()
	fb.Mem.Update()
	fb.Stim.Update()
}

// NComps returns the number of compartments in the built fiber.
func (fb *Fiber) NComps() int {
	return len(fb.Comps)
}

// DendNode returns the compartment index of the i-th dendritic node.
func (fb *Fiber) DendNode(i int) int {
	return fb.Nodes[i]
}

// SomaNode returns the compartment index of the cell body.
func (fb *Fiber) SomaNode() int {
	return fb.Nodes[fb.Dend.NNodes]
}

// AxonNode returns the compartment index of the i-th axonal node.
func (fb *Fiber) AxonNode(i int) int {
	return fb.Nodes[fb.Dend.NNodes+fb.Soma.NNodes+i]
}

// InitRest initializes the whole fiber to its resting equilibrium: leak
// reversal balanced so no net ionic current flows, gates at steady state,
// Vm at rest, periaxonal and applied potentials at zero.  Must be called
// before each Run.
func (fb *Fiber) InitRest() {
	fb.Mem.Update()
	fb.Mem.RestBalance()
	g := fb.Mem.SteadyGates(fb.Mem.VRest)
	for i := range fb.Comps {
		cp := &fb.Comps[i]
		cp.Vm = fb.Mem.VRest
		cp.Ve = 0
		if cp.IsNode() {
			cp.Gates = g
		}
	}
	for i := range fb.Vx {
		fb.Vx[i] = 0
		fb.VxOld[i] = 0
	}
}
