// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import "math"

// Time manages the integration time state: fixed timestep, current cycle,
// and total duration of one run.
type Time struct {
	Time  float64 `desc:"current simulation time in ms"`
	Cycle int     `desc:"number of steps taken since Reset"`
	Dt    float64 `def:"0.001" desc:"integration timestep in ms"`
	TStop float64 `def:"10" desc:"duration of one run in ms"`
}

func (tm *Time) Defaults() {
	tm.Dt = 0.001
	tm.TStop = 10
	tm.Reset()
}

// Reset resets the time and cycle back to zero.
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Cycle = 0
}

// NSteps returns the number of integration steps in one run.
func (tm *Time) NSteps() int {
	return int(math.Round(tm.TStop / tm.Dt))
}

// CycleInc increments the cycle, recomputing time from the cycle count so
// no floating-point drift accumulates.
func (tm *Time) CycleInc() {
	tm.Cycle++
	tm.Time = float64(tm.Cycle) * tm.Dt
}

// Run integrates one full stimulus presentation: the fiber is first
// reinitialized to rest, then stepped from 0 to TStop, re-evaluating the
// extracellular field and recording each cycle.  rec can be nil to run
// without recording.  Returns an ErrDiverged-wrapped error if the
// solution leaves the finite domain; the fiber state is then invalid
// until the next Run.
func (fb *Fiber) Run(tm *Time, rec *Recording) error {
	fb.InitRest()
	tm.Reset()
	if rec != nil {
		rec.Rec(fb.Comps, tm.Cycle, tm.Time)
	}
	nst := tm.NSteps()
	for s := 0; s < nst; s++ {
		t1 := float64(s+1) * tm.Dt
		istim := fb.Stim.Current(t1)
		fb.Vx, fb.VxOld = fb.VxOld, fb.Vx
		ApplyField(fb.Vx, fb.TrR, istim)
		if err := fb.Solv.Step(fb.Comps, &fb.Mem, tm.Dt, fb.Vx, fb.VxOld); err != nil {
			return err
		}
		tm.CycleInc()
		if rec != nil {
			rec.Rec(fb.Comps, tm.Cycle, tm.Time)
		}
	}
	return nil
}
