// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sgn is the overall repository for a multi-compartment cable model of
the cochlear spiral ganglion neuron (SGN), for simulating the response of the
auditory nerve to extracellular electrical stimulation as delivered by a
cochlear implant electrode.

The repository is organized into the following sub-packages:

* fh: the Frankenhaeuser-Huxley (1964) active membrane mechanism, with
voltage-gated Na, K, and nonspecific permeabilities driving GHK
(constant-field) currents, as measured in Xenopus node of Ranvier.

* fiber: the core model -- morphology builder for the dendrite / soma / axon
compartment chain with myelinated internodes, the extracellular point-source
stimulus, the implicit double-cable integrator, recording buffers, and the
threshold search driver.

* examples/threshold: a standalone simulation that builds a fiber, finds the
excitation threshold for a monophasic pulse, and writes voltage traces.
*/
package sgn
