// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"gonum.org/v1/gonum/floats"
)

// Recording holds per-cycle membrane potential traces at designated
// compartments.  The buffers are fixed-size and overwritten in place
// across runs, so repeated runs (e.g., during a threshold search) do not
// reallocate.
type Recording struct {
	SiteNames []string           `desc:"display names of the recorded sites"`
	Sites     []int              `desc:"compartment indices of the recorded sites"`
	Time      *etensor.Float64   `view:"-" desc:"time axis, ms"`
	Vm        []*etensor.Float64 `view:"-" desc:"membrane potential trace per site, mV"`
}

// Config sets up recording at the given compartments with room for
// nsteps integration steps (buffers hold nsteps+1 samples including the
// initial state).  Buffers are only reallocated when sizes change.
func (rc *Recording) Config(names []string, sites []int, nsteps int) {
	rc.SiteNames = names
	rc.Sites = sites
	ln := nsteps + 1
	if rc.Time == nil || rc.Time.Len() != ln {
		rc.Time = etensor.NewFloat64([]int{ln}, nil, nil)
	}
	if len(rc.Vm) != len(sites) {
		rc.Vm = make([]*etensor.Float64, len(sites))
	}
	for i := range rc.Vm {
		if rc.Vm[i] == nil || rc.Vm[i].Len() != ln {
			rc.Vm[i] = etensor.NewFloat64([]int{ln}, nil, nil)
		}
	}
}

// ConfigStd sets up the standard recording montage used for threshold
// detection: the dendritic node under the electrode region midpoint, the
// cell body, and the first, middle, and last axonal nodes.
func (rc *Recording) ConfigStd(fb *Fiber, tm *Time) {
	names := []string{"DendMid", "Soma", "AxonFirst", "AxonMid", "AxonLast"}
	sites := []int{
		fb.DendNode(fb.Dend.NNodes / 2),
		fb.SomaNode(),
		fb.AxonNode(0),
		fb.AxonNode(fb.Axon.NNodes / 2),
		fb.AxonNode(fb.Axon.NNodes - 1),
	}
	rc.Config(names, sites, tm.NSteps())
}

// Rec records the current state at cycle cyc, time t.
func (rc *Recording) Rec(comps []Comp, cyc int, t float64) {
	rc.Time.SetFloat1D(cyc, t)
	for i, si := range rc.Sites {
		rc.Vm[i].SetFloat1D(cyc, comps[si].Vm)
	}
}

// Peak returns the maximum recorded potential at site index si.
func (rc *Recording) Peak(si int) float64 {
	return floats.Max(rc.Vm[si].Values)
}

// AllCross returns whether every recorded site crossed the given
// criterion potential, i.e., the response propagated end to end.
func (rc *Recording) AllCross(crit float64) bool {
	for si := range rc.Sites {
		if rc.Peak(si) <= crit {
			return false
		}
	}
	return true
}

// Table returns the recorded traces as a table with a Time column and one
// column per site, for saving or plotting.
func (rc *Recording) Table() *etable.Table {
	sch := etable.Schema{
		{Name: "Time", Type: etensor.FLOAT64},
	}
	for _, nm := range rc.SiteNames {
		sch = append(sch, etable.Column{Name: nm, Type: etensor.FLOAT64})
	}
	dt := &etable.Table{}
	dt.SetFromSchema(sch, rc.Time.Len())
	for row := 0; row < rc.Time.Len(); row++ {
		dt.SetCellFloat("Time", row, rc.Time.FloatVal1D(row))
		for i, nm := range rc.SiteNames {
			dt.SetCellFloat(nm, row, rc.Vm[i].FloatVal1D(row))
		}
	}
	return dt
}
