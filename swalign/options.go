// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package swalign

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Options holds the scoring parameters.  Both engines add Match or Mismatch
// on the diagonal and subtract GapOpen/GapExtend for gaps, so with the
// usual conventions Match > 0 > Mismatch and GapOpen >= GapExtend >= 0.
// Those conventions are not enforced by Align, which accepts any values.
// The striped engine (AlignFast, Aligner) rejects negative gap penalties and
// values outside its lane range with an errors.Invalid error, so the two
// engines agree only for options both accept.
type Options struct {
	// Match is the score of aligning two equal symbols.
	Match int
	// Mismatch is the score of aligning two different symbols.
	Mismatch int
	// GapOpen is the cost of the first position of a gap.
	GapOpen int
	// GapExtend is the cost of every later position of the same gap.
	GapExtend int
}

// DefaultOptions scores +1 per match and -1 per mismatch or gap position.
var DefaultOptions = Options{
	Match:     1,
	Mismatch:  -1,
	GapOpen:   1,
	GapExtend: 1,
}

// String implements fmt.Stringer.
func (o Options) String() string {
	return fmt.Sprintf("{match:%d mismatch:%d gapOpen:%d gapExtend:%d}", o.Match, o.Mismatch, o.GapOpen, o.GapExtend)
}

// checkLanes verifies that o can be run by the striped engine on lanes
// holding values in [lo, hi].
func (o Options) checkLanes(lo, hi int) error {
	if o.GapOpen < 0 || o.GapExtend < 0 {
		return errors.E(errors.Invalid, fmt.Sprintf("striped alignment requires non-negative gap penalties, got %v", o))
	}
	for _, x := range [...]int{o.Match, o.Mismatch, o.GapOpen, o.GapExtend} {
		if x < lo || x > hi {
			return errors.E(errors.Invalid, fmt.Sprintf("scoring parameter %d of %v does not fit in lanes of range [%d, %d]", x, o, lo, hi))
		}
	}
	return nil
}

// laneGapExtend returns the per-position extension cost used by the striped
// engine.  When extending a gap costs more than opening a new one, the
// reference recurrence always reopens, so min(GapExtend, GapOpen) yields the
// same scores and keeps GapOpen >= extension, which the lazy-F stop rule
// relies on.
func (o Options) laneGapExtend() int {
	if o.GapExtend > o.GapOpen {
		return o.GapOpen
	}
	return o.GapExtend
}
