// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

// StimParams specifies the extracellular stimulus: a monophasic
// rectangular current pulse from a monopolar point-source electrode
// positioned above one of the dendritic nodes.
type StimParams struct {
	Amp      float64 `def:"-8.75" desc:"pulse amplitude in mA -- negative is cathodic, which depolarizes the membrane under the electrode"`
	Delay    float64 `def:"1" desc:"pulse onset time in ms"`
	Dur      float64 `def:"0.05" desc:"pulse width in ms"`
	ElecNode int     `def:"2" desc:"index of the dendritic node the electrode sits above"`
	ElecDist float64 `def:"100" desc:"perpendicular distance from the fiber axis to the electrode, in um"`
	Sigma    float64 `def:"0.0014286" desc:"conductivity of the extracellular medium in S/mm -- default 1/700, representative of the fluid path in the cochlea"`
}

func (sp *StimParams) Defaults() {
	sp.Amp = -8.75
	sp.Delay = 1
	sp.Dur = 0.05
	sp.ElecNode = 2
	sp.ElecDist = 100
	sp.Sigma = 1.0 / 700.0
}

func (sp *StimParams) Update() {
}

// IsOn returns whether the pulse is on at time t (ms).
func (sp *StimParams) IsOn(t float64) bool {
	return t >= sp.Delay && t < sp.Delay+sp.Dur
}

// Current returns the electrode current in nA at time t (ms).
func (sp *StimParams) Current(t float64) float64 {
	if !sp.IsOn(t) {
		return 0
	}
	return sp.Amp * 1e6 // mA -> nA
}
