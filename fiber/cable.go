// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"fmt"
	"math"

	"github.com/emer/sgn/fh"
)

// dvLin is the voltage step (mV) for the centered-difference
// linearization of the ionic current.
const dvLin = 1e-3

// Solver integrates the double-cable system implicitly (backward Euler).
// The unknowns per compartment are the membrane potential Vm and the
// periaxonal potential Ve, interleaved as [Vm0, Ve0, Vm1, Ve1, ...], so
// the system matrix is banded with half-bandwidth 3: each compartment
// couples intracellularly and periaxonally to its two neighbors only.
//
// Per step, the gates advance first by exponential Euler at the old Vm,
// the ionic current is linearized about the old Vm, and the resulting
// linear system is solved by banded Gaussian elimination.  The matrix is
// strongly diagonally dominant (the Cm/dt terms sit on the diagonal), so
// no pivoting is needed.
type Solver struct {
	N  int         `desc:"number of compartments; the system size is 2N"`
	BW int         `desc:"half-bandwidth of the system matrix"`
	A  [][]float64 `view:"-" desc:"banded matrix rows, 2*BW+1 wide, diagonal at column BW"`
	B  []float64   `view:"-" desc:"right-hand side, solved in place"`
	GA []float64   `view:"-" desc:"intracellular axial conductance between compartment j and j+1, uS"`
	GP []float64   `view:"-" desc:"periaxonal axial conductance between compartment j and j+1, uS"`
}

// Config sizes the solver for the given compartment chain and precomputes
// the inter-compartment coupling conductances from the half-resistances
// of each neighbor pair.
func (sv *Solver) Config(comps []Comp) {
	sv.N = len(comps)
	sv.BW = 3
	n2 := 2 * sv.N
	sv.A = make([][]float64, n2)
	for i := range sv.A {
		sv.A[i] = make([]float64, 2*sv.BW+1)
	}
	sv.B = make([]float64, n2)
	sv.GA = make([]float64, sv.N-1)
	sv.GP = make([]float64, sv.N-1)
	for j := 0; j < sv.N-1; j++ {
		sv.GA[j] = 2 / (comps[j].Ra + comps[j+1].Ra)
		sv.GP[j] = 2 / (comps[j].Xr + comps[j+1].Xr)
	}
}

func (sv *Solver) add(i, j int, v float64) {
	sv.A[i][j-i+sv.BW] += v
}

// Step advances the whole fiber by one timestep dt (ms).  vx and vxOld
// are the applied extracellular potentials (mV) per compartment at the
// new and previous step.  Writes the new Vm and Ve back into comps and
// returns an ErrDiverged-wrapped error if the solution is not finite.
func (sv *Solver) Step(comps []Comp, mem *fh.Params, dt float64, vx, vxOld []float64) error {
	for i := range comps {
		cp := &comps[i]
		if cp.IsNode() {
			mem.StepGates(&cp.Gates, cp.Vm, dt)
		}
	}
	for i := range sv.A {
		row := sv.A[i]
		for j := range row {
			row[j] = 0
		}
		sv.B[i] = 0
	}
	for j := range comps {
		cp := &comps[j]
		iv := 2 * j
		ie := 2*j + 1

		// ionic current (nA) and its slope (uS) at the old Vm
		var i0, gi float64
		if cp.IsNode() {
			sc := cp.AreaAct * 1e6 // mA/cm^2 * cm^2 -> nA
			i0 = mem.Current(cp.Vm, &cp.Gates) * sc
			ip := mem.Current(cp.Vm+dvLin, &cp.Gates) * sc
			im := mem.Current(cp.Vm-dvLin, &cp.Gates) * sc
			gi = (ip - im) / (2 * dvLin)
		} else {
			i0 = cp.GPas * (cp.Vm - mem.VRest)
			gi = cp.GPas
		}
		cdt := cp.Cm / dt

		// membrane charge balance: capacitive + linearized ionic current
		// equals the net axial current arriving intracellularly, where the
		// intracellular potential is Vm + Ve
		sv.add(iv, iv, cdt+gi)
		sv.B[iv] += cdt*cp.Vm + gi*cp.Vm - i0

		// periaxonal charge balance: membrane current feeds the periaxonal
		// space, which drains axially and through the sheath (conductance
		// Xg, capacitance Xc) to the bath held at the applied potential vx
		sv.add(ie, iv, -(cdt + gi))
		sv.add(ie, ie, cp.Xg+cp.Xc/dt)
		sv.B[ie] += -(cdt*cp.Vm + gi*cp.Vm - i0) + cp.Xg*vx[j] + (cp.Xc/dt)*(vx[j]-vxOld[j]+cp.Ve)

		for _, k := range [2]int{j - 1, j + 1} {
			if k < 0 || k >= sv.N {
				continue
			}
			ci := j
			if k < j {
				ci = k
			}
			ga := sv.GA[ci]
			gp := sv.GP[ci]
			kv := 2 * k
			ke := 2*k + 1
			sv.add(iv, iv, ga)
			sv.add(iv, ie, ga)
			sv.add(iv, kv, -ga)
			sv.add(iv, ke, -ga)
			sv.add(ie, ie, gp)
			sv.add(ie, ke, -gp)
		}
	}
	if err := sv.solve(); err != nil {
		return err
	}
	for j := range comps {
		cp := &comps[j]
		cp.Vm = sv.B[2*j]
		cp.Ve = sv.B[2*j+1]
		if math.IsNaN(cp.Vm) || math.IsInf(cp.Vm, 0) || math.IsNaN(cp.Ve) || math.IsInf(cp.Ve, 0) {
			return fmt.Errorf("%w: non-finite potential at compartment %d", ErrDiverged, j)
		}
	}
	return nil
}

// solve runs banded Gaussian elimination without pivoting on A, solving
// in place into B.
func (sv *Solver) solve() error {
	n := 2 * sv.N
	bw := sv.BW
	a := sv.A
	b := sv.B
	for k := 0; k < n; k++ {
		piv := a[k][bw]
		if piv == 0 {
			return fmt.Errorf("%w: singular system at row %d", ErrDiverged, k)
		}
		for i := k + 1; i < n && i <= k+bw; i++ {
			off := k - i + bw
			f := a[i][off] / piv
			if f == 0 {
				continue
			}
			for j := 1; j <= bw; j++ {
				if k+j < n {
					a[i][off+j] -= f * a[k][bw+j]
				}
			}
			a[i][off] = 0
			b[i] -= f * b[k]
		}
	}
	for i := n - 1; i >= 0; i-- {
		s := b[i]
		for j := i + 1; j < n && j <= i+bw; j++ {
			s -= a[i][j-i+bw] * b[j]
		}
		b[i] = s / a[i][bw]
	}
	return nil
}
