// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"math"
	"testing"

	"github.com/goki/mat32"
)

const difTol = 1.0e-9

// TestPointSource checks the potential formula against a hand-computed
// value: i = -8.75, sigma = 1/700, r = 1 gives i * 700 / (4 pi).
func TestPointSource(t *testing.T) {
	phi := PointSource(-8.75, 1.0/700.0, 1)
	want := -487.41201321892953
	if d := math.Abs(phi - want); d > difTol {
		t.Errorf("PointSource: got %v, want %v", phi, want)
	}
}

func TestTransferRes(t *testing.T) {
	sigma := 1.0 / 700.0
	elec := mat32.Vec3{X: 0, Y: 0, Z: 1000}
	near := TransferRes(mat32.Vec3{}, elec, sigma)
	far := TransferRes(mat32.Vec3{X: 3000}, elec, sigma)
	if near <= 0 || far <= 0 {
		t.Fatalf("transfer resistances must be positive: %g %g", near, far)
	}
	if near <= far {
		t.Errorf("transfer resistance must fall with distance: %g <= %g", near, far)
	}
	// 1000 um = 1 mm from the electrode: nA * MOhm = mV means the
	// transfer resistance is 1e-6 times the point-source potential of a
	// unit current at 1 mm
	want := 1e-6 * PointSource(1, sigma, 1)
	if d := math.Abs(near - want); d > difTol {
		t.Errorf("transfer resistance at 1 mm: got %v, want %v", near, want)
	}
	if r := TransferRes(elec, elec, sigma); r != 0 {
		t.Errorf("coincident electrode must return 0, got %g", r)
	}
}

// TestApplyField checks the per-step field rescaling against direct
// evaluation.
func TestApplyField(t *testing.T) {
	trr := []float64{2e-5, 1e-5, 5e-6}
	vx := make([]float64, 3)
	ApplyField(vx, trr, -8.75e6)
	for i := range trr {
		want := -8.75e6 * trr[i]
		if d := math.Abs(vx[i] - want); d > difTol {
			t.Errorf("vx[%d]: got %v, want %v", i, vx[i], want)
		}
	}
}
