// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fiber

import "github.com/goki/ki/kit"

// CompClass is the structural class of a fiber compartment, which
// determines its membrane mechanism and geometry defaults.
type CompClass int32

//go:generate stringer -type=CompClass

var KiT_CompClass = kit.Enums.AddEnum(CompClassN, kit.NotBitFlag, nil)

func (ev CompClass) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *CompClass) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Node is an unmyelinated node of Ranvier (or the cell body), carrying
	// the active voltage-gated membrane.
	Node CompClass = iota

	// MYSA is the myelin attachment segment immediately flanking a node.
	MYSA

	// FLUT is the paranode main segment between MYSA and the internode.
	FLUT

	// STIN is a stereotyped internode segment under compact myelin --
	// six of them span the bulk of each internode.
	STIN

	CompClassN
)

// Region identifies the anatomical region of the fiber a compartment
// belongs to.
type Region int32

//go:generate stringer -type=Region

var KiT_Region = kit.Enums.AddEnum(RegionN, kit.NotBitFlag, nil)

func (ev Region) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Region) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Dendrite is the peripheral process, from the terminal toward the soma.
	Dendrite Region = iota

	// Soma is the cell body region, including its passive wrapping.
	Soma

	// Axon is the central process, from the soma to the last node.
	Axon

	RegionN
)

// SomaVariant selects the layout of the soma region, which differs across
// morphological reconstructions in where the cell body sits relative to
// its passive wrapping.
type SomaVariant int32

//go:generate stringer -type=SomaVariant

var KiT_SomaVariant = kit.Enums.AddEnum(SomaVariantN, kit.NotBitFlag, nil)

func (ev SomaVariant) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SomaVariant) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// SomaCentered places the cell body at the center of its wrapping:
	// MYSA, FLUT, 3 STIN, soma, 3 STIN, FLUT, MYSA.
	SomaCentered SomaVariant = iota

	// SomaOffCenter places the cell body off center, with a full myelinated
	// stretch on the dendritic side:
	// MYSA, FLUT, 8 STIN, FLUT, MYSA, soma, 4 STIN, FLUT, MYSA.
	SomaOffCenter

	SomaVariantN
)
