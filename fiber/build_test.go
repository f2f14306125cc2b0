// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"errors"
	"testing"
)

func classCounts(fb *Fiber) map[Region]map[CompClass]int {
	cnt := map[Region]map[CompClass]int{}
	for reg := Dendrite; reg < RegionN; reg++ {
		cnt[reg] = map[CompClass]int{}
	}
	for i := range fb.Comps {
		cp := &fb.Comps[i]
		cnt[cp.Reg][cp.Class]++
	}
	return cnt
}

// TestBuildCounts checks the stride arithmetic: a region with N nodes has
// 2(N-1) MYSA, 2(N-1) FLUT, and 6(N-1) STIN compartments.
func TestBuildCounts(t *testing.T) {
	fb := &Fiber{}
	fb.Defaults()
	if err := fb.Build(); err != nil {
		t.Fatal(err)
	}
	cnt := classCounts(fb)
	checks := []struct {
		reg  Region
		cls  CompClass
		want int
	}{
		{Dendrite, Node, 5},
		{Dendrite, MYSA, 8},
		{Dendrite, FLUT, 8},
		{Dendrite, STIN, 24},
		{Soma, Node, 1},
		{Soma, MYSA, 2},
		{Soma, FLUT, 2},
		{Soma, STIN, 6},
		{Axon, Node, 21},
		{Axon, MYSA, 40},
		{Axon, FLUT, 40},
		{Axon, STIN, 120},
	}
	for _, ck := range checks {
		if got := cnt[ck.reg][ck.cls]; got != ck.want {
			t.Errorf("%v %v count: got %d, want %d", ck.reg, ck.cls, got, ck.want)
		}
	}
	if fb.NComps() != 277 {
		t.Errorf("total compartments: got %d, want 277", fb.NComps())
	}
	if len(fb.Nodes) != 27 {
		t.Errorf("total nodes: got %d, want 27", len(fb.Nodes))
	}
	if sn := fb.SomaNode(); fb.Comps[sn].Reg != Soma || !fb.Comps[sn].IsNode() {
		t.Errorf("SomaNode %d is not the somatic node", sn)
	}
}

func TestBuildSomaOffCenter(t *testing.T) {
	fb := &Fiber{}
	fb.Defaults()
	fb.SomaVar = SomaOffCenter
	if err := fb.Build(); err != nil {
		t.Fatal(err)
	}
	cnt := classCounts(fb)
	if cnt[Soma][Node] != 1 || cnt[Soma][MYSA] != 3 || cnt[Soma][FLUT] != 3 || cnt[Soma][STIN] != 12 {
		t.Errorf("off-center soma counts wrong: %v", cnt[Soma])
	}
	if fb.NComps() != 285 {
		t.Errorf("total compartments: got %d, want 285", fb.NComps())
	}
	// the cell body sits after the second MYSA of the region
	sn := fb.SomaNode()
	if fb.Comps[sn-1].Class != MYSA || fb.Comps[sn+1].Class != STIN {
		t.Errorf("off-center soma neighbors: %v %v", fb.Comps[sn-1].Class, fb.Comps[sn+1].Class)
	}
}

// TestBuildChain checks that the compartments form a single unbranched
// cable with strictly increasing midpoints and consistent total length.
func TestBuildChain(t *testing.T) {
	fb := &Fiber{}
	fb.Defaults()
	if err := fb.Build(); err != nil {
		t.Fatal(err)
	}
	tot := 0.0
	prev := -1.0
	for i := range fb.Comps {
		cp := &fb.Comps[i]
		x := float64(cp.Pos.X)
		if x <= prev {
			t.Fatalf("positions not increasing at comp %d: %g <= %g", i, x, prev)
		}
		if cp.Ra <= 0 || cp.Xr <= 0 || cp.Cm <= 0 {
			t.Fatalf("non-positive electrical params at comp %d: Ra %g Xr %g Cm %g", i, cp.Ra, cp.Xr, cp.Cm)
		}
		prev = x
		tot += cp.Len
	}
	last := &fb.Comps[len(fb.Comps)-1]
	end := float64(last.Pos.X) + last.Len/2
	if d := end - tot; d > 1e-3 || d < -1e-3 {
		t.Errorf("total length %g != end position %g", tot, end)
	}
}

// TestBuildDegenerate checks that a diameter ratio of exactly 1 (an
// unmyelinated caliber equal to the fiber diameter) builds cleanly.
func TestBuildDegenerate(t *testing.T) {
	fb := &Fiber{}
	fb.Defaults()
	fb.Dend.ParaD1 = fb.Dend.FiberD
	fb.Dend.ParaD2 = fb.Dend.FiberD
	fb.Dend.AxonD = fb.Dend.FiberD
	fb.Dend.NodeD = fb.Dend.FiberD
	if err := fb.Build(); err != nil {
		t.Fatalf("degenerate ratio should build: %v", err)
	}
}

func TestBuildErrors(t *testing.T) {
	fb := &Fiber{}
	fb.Defaults()
	fb.Axon.FiberD = 0
	fb.Axon.NodeD = 0
	fb.Axon.ParaD1 = 0
	fb.Axon.ParaD2 = 0
	fb.Axon.AxonD = 0
	if err := fb.Build(); !errors.Is(err, ErrConfig) {
		t.Errorf("zero diameter: got %v, want ErrConfig", err)
	}

	fb = &Fiber{}
	fb.Defaults()
	fb.Stim.ElecNode = 17
	if err := fb.Build(); !errors.Is(err, ErrConfig) {
		t.Errorf("electrode node out of range: got %v, want ErrConfig", err)
	}

	fb = &Fiber{}
	fb.Defaults()
	fb.Stim.ElecDist = 0
	if err := fb.Build(); !errors.Is(err, ErrConfig) {
		t.Errorf("electrode on fiber: got %v, want ErrConfig", err)
	}
}

// TestPeriaxialRes checks the scaling of the periaxonal resistance
// formula: linear in resistivity, decreasing in space width.
func TestPeriaxialRes(t *testing.T) {
	pp := &PasParams{}
	pp.Defaults()
	narrow := pp.PeriaxialRes(2, 0.002)
	wide := pp.PeriaxialRes(2, 0.004)
	if narrow <= wide {
		t.Errorf("narrower space must have higher resistance: %g <= %g", narrow, wide)
	}
	pp2 := &PasParams{}
	pp2.Defaults()
	pp2.RhoP = 2 * pp.RhoP
	r2 := pp2.PeriaxialRes(2, 0.002)
	if d := r2/narrow - 2; d > 1e-12 || d < -1e-12 {
		t.Errorf("resistance not linear in resistivity: ratio %g", r2/narrow)
	}
}
