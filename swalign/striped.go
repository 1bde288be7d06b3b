// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package swalign

import (
	"github.com/grailbio/align/biosimd"
)

// hBuffers holds the striped H vectors of two consecutive target columns.
// load is the previous column and is only read, for diagonal moves; store
// receives the column being computed.  swap() is called once per column.
type hBuffers[V any] struct {
	load, store []V
}

func (b *hBuffers[V]) swap() {
	b.load, b.store = b.store, b.load
}

// stripedScore returns the best local alignment score of the encoded target
// against the query behind p, saturated at the lane maximum.  opts must have
// passed checkLanes for V.
func stripedScore[V biosimd.Lanes[V]](p *profile[V], opts Options, target []byte) int {
	n := p.stripeCount
	if n == 0 || len(target) == 0 {
		return 0
	}
	var vZero V
	lo, _ := vZero.Limits()
	vMin := vZero.Splat(lo)
	vGapOpen := vZero.Splat(opts.GapOpen)
	vGapExtend := vZero.Splat(opts.laneGapExtend())

	h := hBuffers[V]{load: make([]V, n), store: make([]V, n)}
	// e[j] is the best score ending in a gap in the query at stripe j of the
	// next column.
	e := make([]V, n)
	for j := range e {
		e[j] = vMin
	}
	vMax := vZero

	for _, c := range target {
		row := p.row(c)
		// Lane k of the last stripe is the position just above lane k+1 of
		// stripe 0.  Lane 0 gets the zero boundary row.
		vH := h.store[n-1].ShiftUp(0)
		h.swap()
		vF := vMin
		for j := 0; j < n; j++ {
			vH = vH.AddSat(row[j]).Max(e[j]).Max(vF).Max(vZero)
			vMax = vMax.Max(vH)
			h.store[j] = vH
			vOpen := vH.SubSat(vGapOpen)
			e[j] = e[j].SubSat(vGapExtend).Max(vOpen)
			vF = vF.SubSat(vGapExtend).Max(vOpen)
			vH = h.load[j]
		}

		// Lazy-F: vF so far only carried gaps within each lane's segment.
		// Carry it across lane boundaries until it can no longer beat a gap
		// opened from the stored H.  Shifting in the lane minimum bounds the
		// loop: after Len() wraps every lane of vF is lo, which never exceeds
		// H-GapOpen.
		vF = vF.ShiftUp(lo)
		for j := 0; vF.AnyGreater(h.store[j].SubSat(vGapOpen)); {
			vH = h.store[j].Max(vF)
			h.store[j] = vH
			vMax = vMax.Max(vH)
			e[j] = e[j].Max(vH.SubSat(vGapOpen))
			vF = vF.SubSat(vGapExtend)
			if j++; j == n {
				vF = vF.ShiftUp(lo)
				j = 0
			}
		}
	}
	return vMax.HMax()
}

// AlignFast returns the best local alignment score of query against target,
// computed by the striped engine with 8-bit lanes.  Scores above 127 are
// reported as 127; use Align or an Aligner with Lanes16 when exact large
// scores are needed.  Input requirements and errors are those of Align, and
// in addition Options must have non-negative gap penalties with every field
// in [-128, 127].
func AlignFast(opts Options, target, query []byte) (int, error) {
	a, err := newAligner(opts, query, AlignerOpts{Width: Lanes8})
	if err != nil {
		return 0, err
	}
	r, err := a.Score(target)
	return r.Score, err
}
