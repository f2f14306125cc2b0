// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"math"

	"github.com/emer/sgn/fh"
	"github.com/goki/mat32"
)

// Comp holds all the state and derived electrical parameters of one fiber
// compartment.  The electrical values are in the model's internal unit
// system: mV, nA, MOhm, uS, nF, ms, um, which is self-consistent
// (mV = nA * MOhm, nA = nF * mV / ms).
type Comp struct {
	Class CompClass  `desc:"structural class: Node, MYSA, FLUT, or STIN"`
	Reg   Region     `desc:"anatomical region: Dendrite, Soma, or Axon"`
	Diam  float64    `desc:"diameter in um"`
	Len   float64    `desc:"length in um"`
	Pos   mat32.Vec3 `desc:"3-D position of the compartment midpoint, in um"`

	Ra      float64 `desc:"intracellular axial resistance over the full length, MOhm"`
	Xr      float64 `desc:"periaxonal axial resistance over the full length, MOhm"`
	Cm      float64 `desc:"membrane capacitance, nF"`
	Xg      float64 `desc:"myelin sheath conductance, uS"`
	Xc      float64 `desc:"myelin sheath capacitance, nF"`
	GPas    float64 `desc:"passive membrane conductance, uS -- zero for nodes"`
	AreaAct float64 `desc:"membrane area in cm^2 used to scale active current densities -- the fixed reference node area for nodes, zero otherwise"`

	Gates fh.Gates `desc:"active gating state -- nodes only"`
	Vm    float64  `desc:"membrane potential, mV"`
	Ve    float64  `desc:"periaxonal (sub-myelin) potential, mV -- absolute, with the local bath held at the applied extracellular potential"`
}

// IsNode returns true for compartments carrying the active membrane.
func (cp *Comp) IsNode() bool {
	return cp.Class == Node
}

// SurfArea returns the cylindrical surface area in um^2.
func (cp *Comp) SurfArea() float64 {
	return math.Pi * cp.Diam * cp.Len
}
