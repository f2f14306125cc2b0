// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"fmt"
	"math"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/goki/ki/kit"
)

// SearchState is the state of the threshold search driver.
type SearchState int32

//go:generate stringer -type=SearchState

var KiT_SearchState = kit.Enums.AddEnum(SearchStateN, kit.NotBitFlag, nil)

func (ev SearchState) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SearchState) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Searching means threshold has not been bracketed yet.
	Searching SearchState = iota

	// Done means the search has terminated.
	Done

	SearchStateN
)

// Search finds the excitation threshold by descending amplitude: starting
// from the configured (suprathreshold) stimulus amplitude, the magnitude
// is reduced by DecStep after every run in which the response propagates
// to all recorded sites, and the search stops at the first run that fails
// to propagate.  The threshold is the last successful amplitude.
type Search struct {
	DecStep   float64       `def:"0.1" desc:"amplitude magnitude decrement per iteration, in mA"`
	Criterion float64       `def:"0" desc:"membrane potential a site must exceed to count as excited, in mV"`
	MaxIters  int           `def:"100" desc:"iteration bound -- exceeding it reports ErrSearchBound with the threshold found so far"`
	State     SearchState   `inactive:"+" desc:"current search state"`
	Iter      int           `inactive:"+" desc:"current iteration"`
	Thresh    float64       `inactive:"+" desc:"last successful amplitude, in mA"`
	Log       *etable.Table `view:"no-inline" desc:"per-iteration log: amplitude, success, per-site peaks"`
}

func (sr *Search) Defaults() {
	sr.DecStep = 0.1
	sr.Criterion = 0
	sr.MaxIters = 100
}

// ConfigLog sets up the search log table for the given recording montage.
func (sr *Search) ConfigLog(rc *Recording) {
	sch := etable.Schema{
		{Name: "Iter", Type: etensor.FLOAT64},
		{Name: "Amp", Type: etensor.FLOAT64},
		{Name: "Success", Type: etensor.FLOAT64},
	}
	for _, nm := range rc.SiteNames {
		sch = append(sch, etable.Column{Name: "Peak" + nm, Type: etensor.FLOAT64})
	}
	sr.Log = &etable.Table{}
	sr.Log.SetFromSchema(sch, 0)
}

func (sr *Search) logIter(rc *Recording, amp float64, succ bool) {
	if sr.Log == nil {
		return
	}
	row := sr.Log.Rows
	sr.Log.AddRows(1)
	sr.Log.SetCellFloat("Iter", row, float64(sr.Iter))
	sr.Log.SetCellFloat("Amp", row, amp)
	sv := 0.0
	if succ {
		sv = 1
	}
	sr.Log.SetCellFloat("Success", row, sv)
	for i, nm := range rc.SiteNames {
		sr.Log.SetCellFloat("Peak"+nm, row, rc.Peak(i))
	}
}

// Run performs the descending threshold search, returning the threshold
// amplitude in mA.  The fiber's configured Stim.Amp is the starting
// amplitude, and is left at the threshold on return; the recording holds
// the traces of the run at the threshold (the stimulus is rerun once at
// the threshold after the terminating failure).  Numerical errors from
// the integrator are fatal and returned as is.  If the starting
// amplitude already fails to excite, ErrNoExcite is returned.  If
// MaxIters runs all succeed, the last amplitude is returned along with
// ErrSearchBound.
func (sr *Search) Run(fb *Fiber, tm *Time, rc *Recording) (float64, error) {
	sr.State = Searching
	sr.Thresh = 0
	amp := fb.Stim.Amp
	found := false
	for sr.Iter = 0; sr.Iter < sr.MaxIters; sr.Iter++ {
		fb.Stim.Amp = amp
		if err := fb.Run(tm, rc); err != nil {
			sr.State = Done
			return 0, err
		}
		succ := rc.AllCross(sr.Criterion)
		sr.logIter(rc, amp, succ)
		if !succ {
			sr.State = Done
			if !found {
				return 0, fmt.Errorf("%w: amplitude %g mA", ErrNoExcite, amp)
			}
			// rerun at the threshold so the recording holds the
			// threshold response, not the failed run below it
			fb.Stim.Amp = sr.Thresh
			if err := fb.Run(tm, rc); err != nil {
				return 0, err
			}
			return sr.Thresh, nil
		}
		found = true
		sr.Thresh = amp
		amp -= math.Copysign(sr.DecStep, amp)
		if amp == 0 || math.Signbit(amp) != math.Signbit(sr.Thresh) {
			// decrement stepped past zero: nothing weaker left to test
			sr.State = Done
			fb.Stim.Amp = sr.Thresh
			return sr.Thresh, nil
		}
	}
	sr.State = Done
	fb.Stim.Amp = sr.Thresh
	return sr.Thresh, ErrSearchBound
}
