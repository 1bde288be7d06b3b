// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

/*Package swalign computes Smith-Waterman local alignment scores with affine
  gap penalties.

  Two engines implement the same contract:

  Align is the textbook O(|T|*|Q|) dynamic program over full H/E/F
  matrices.  It is exact and slow, and serves as the reference.

  AlignFast (and Aligner) implement Farrar's striped algorithm
  (https://doi.org/10.1093/bioinformatics/btl582).  Query position p is
  assigned to lane p / stripeCount and stripe p % stripeCount of a
  biosimd lane vector, so that the diagonal dependency between adjacent
  query positions becomes a one-lane shift of the previous column's last
  stripe.  Vertical gaps that cross lane boundaries are repaired after each
  column by the lazy-F loop.  Scores saturate at the lane range: 127 for
  8-bit lanes, 32767 for 16-bit lanes.

  Both engines use the maximization convention.  Options.Match is added for
  equal symbols, Options.Mismatch for different ones, and a gap of length L
  costs GapOpen + (L-1)*GapExtend.  Scores are floored at 0, and the result
  is the best score over every cell, so alignments may start and end
  anywhere.  No traceback is computed.
*/
package swalign
