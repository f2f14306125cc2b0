// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"math"

	"github.com/goki/mat32"
	"gonum.org/v1/gonum/floats"
)

// PointSource returns the potential at distance r from a monopolar point
// electrode passing current i into an infinite homogeneous medium of
// conductivity sigma:
//
//	phi = i / (4 pi sigma r)
//
// The formula is unit-consistent: with i in mA, sigma in S/mm, and r in mm
// the result is in mV.
func PointSource(i, sigma, r float64) float64 {
	return i / (4 * math.Pi * sigma * r)
}

// TransferRes returns the transfer resistance in MOhm between the
// electrode at elec and a compartment at pos (both in um), for medium
// conductivity sigma in S/mm: the extracellular potential at pos in mV is
// the electrode current in nA times this.  Returns 0 if the electrode
// coincides with pos, which Build reports as a config error.
func TransferRes(pos, elec mat32.Vec3, sigma float64) float64 {
	r := float64(pos.Sub(elec).Length()) // um
	if r == 0 {
		return 0
	}
	return 1e-6 / (4 * math.Pi * sigma * (r / 1000))
}

// ApplyField fills vx with the extracellular potential (mV) at each
// compartment for electrode current istim (nA), by rescaling the
// precomputed transfer resistances.
func ApplyField(vx, trr []float64, istim float64) {
	floats.ScaleTo(vx, istim, trr)
}
