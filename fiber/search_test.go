// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import (
	"errors"
	"math"
	"testing"
)

func searchFixture(t *testing.T) (*Fiber, *Time, *Recording) {
	t.Helper()
	fb := &Fiber{}
	fb.Defaults()
	fb.Stim.Delay = 0.1
	fb.Stim.Dur = 0.05
	if err := fb.Build(); err != nil {
		t.Fatal(err)
	}
	tm := &Time{}
	tm.Defaults()
	tm.Dt = 0.005
	tm.TStop = 0.3
	rc := &Recording{}
	rc.ConfigStd(fb, tm)
	return fb, tm, rc
}

// TestSearchNoExcite checks that a starting amplitude too weak to excite
// anything reports ErrNoExcite rather than a bogus threshold.
func TestSearchNoExcite(t *testing.T) {
	fb, tm, rc := searchFixture(t)
	fb.Stim.Amp = -0.001
	sr := &Search{}
	sr.Defaults()
	sr.ConfigLog(rc)
	th, err := sr.Run(fb, tm, rc)
	if !errors.Is(err, ErrNoExcite) {
		t.Fatalf("got err %v, want ErrNoExcite", err)
	}
	if th != 0 {
		t.Errorf("threshold should be 0 on failure, got %g", th)
	}
	if sr.State != Done {
		t.Errorf("search state should be Done, got %v", sr.State)
	}
	if sr.Log.Rows != 1 {
		t.Errorf("log should have 1 row, got %d", sr.Log.Rows)
	}
}

// TestSearchBound checks the iteration cap: with a criterion below rest,
// every run "succeeds", so the search must stop at MaxIters and report
// the bound along with the amplitude it got to.
func TestSearchBound(t *testing.T) {
	fb, tm, rc := searchFixture(t)
	fb.Stim.Amp = -8.75
	sr := &Search{}
	sr.Defaults()
	sr.Criterion = -200
	sr.MaxIters = 4
	sr.ConfigLog(rc)
	th, err := sr.Run(fb, tm, rc)
	if !errors.Is(err, ErrSearchBound) {
		t.Fatalf("got err %v, want ErrSearchBound", err)
	}
	want := -8.75 + 3*sr.DecStep
	if d := math.Abs(th - want); d > 1e-12 {
		t.Errorf("threshold at bound: got %g, want %g", th, want)
	}
	if sr.Log.Rows != 4 {
		t.Errorf("log rows: got %d, want 4", sr.Log.Rows)
	}
	if fb.Stim.Amp != th {
		t.Errorf("Stim.Amp should be left at the threshold: %g != %g", fb.Stim.Amp, th)
	}
}

// TestSearchRecAtThreshold checks that when the search terminates on a
// failed run, the recording is rerun at the threshold amplitude, so the
// saved traces show the threshold response rather than the failure.
func TestSearchRecAtThreshold(t *testing.T) {
	fb, tm, rc := searchFixture(t)
	fb.Stim.Amp = -8.75
	en := fb.DendNode(fb.Stim.ElecNode)
	rc.Config([]string{"Elec"}, []int{en}, tm.NSteps())
	sr := &Search{}
	sr.Defaults()
	sr.Criterion = fb.Mem.VRest + 5
	sr.DecStep = 8.749 // second amplitude -0.001 mA cannot cross
	sr.ConfigLog(rc)
	th, err := sr.Run(fb, tm, rc)
	if err != nil {
		t.Fatal(err)
	}
	if th != -8.75 {
		t.Errorf("threshold: got %g, want -8.75", th)
	}
	if sr.Iter != 1 {
		t.Errorf("should fail on the second iteration, got iter %d", sr.Iter)
	}
	if fb.Stim.Amp != th {
		t.Errorf("Stim.Amp should be left at the threshold: %g != %g", fb.Stim.Amp, th)
	}
	if !rc.AllCross(sr.Criterion) {
		t.Errorf("recording holds a run that did not cross the criterion: peak %g", rc.Peak(0))
	}
}

// TestSearchStepPastZero checks that the search stops cleanly when the
// decrement would cross zero amplitude.
func TestSearchStepPastZero(t *testing.T) {
	fb, tm, rc := searchFixture(t)
	fb.Stim.Amp = -0.05
	sr := &Search{}
	sr.Defaults()
	sr.Criterion = -200
	sr.ConfigLog(rc)
	th, err := sr.Run(fb, tm, rc)
	if err != nil {
		t.Fatal(err)
	}
	if th != -0.05 {
		t.Errorf("threshold: got %g, want -0.05", th)
	}
	if sr.Iter != 0 {
		t.Errorf("should stop after the first iteration, got iter %d", sr.Iter)
	}
}
