// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package swalign

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grailbio/align/alphabet"
)

// matrix is a row-major nRow x nCol score matrix.
type matrix struct {
	nRow, nCol int
	data       []int
}

func newMatrix(nRow, nCol int) matrix {
	return matrix{
		nRow: nRow,
		nCol: nCol,
		data: make([]int, nRow*nCol),
	}
}

func (m matrix) at(i, j int) int {
	return m.data[i*m.nCol+j]
}

func (m matrix) set(i, j, v int) {
	m.data[i*m.nCol+j] = v
}

// String returns a string representation of a matrix, one row per line.
func (m matrix) String() string {
	width := 0
	for _, d := range m.data {
		if l := len(strconv.Itoa(d)); l > width {
			width = l
		}
	}
	lines := make([]string, 0, m.nRow)
	for i := 0; i < m.nRow; i++ {
		parts := make([]string, m.nCol)
		for j := range parts {
			parts[j] = fmt.Sprintf("%*d", width, m.at(i, j))
		}
		lines = append(lines, strings.Join(parts, " | "))
	}
	return strings.Join(lines, "\n")
}

// referenceMatrices holds the three DP matrices of one alignment.  Rows
// follow the query and columns follow the target; row 0 and column 0 are the
// all-zero boundary.
//
//   H[i][j]: best score of a local alignment ending at (i, j) in any state.
//   E[i][j]: best score ending with query[i-1] aligned to a gap.
//   F[i][j]: best score ending with target[j-1] aligned to a gap.
type referenceMatrices struct {
	h, e, f matrix
}

// fill runs the affine-gap recurrence over the encoded sequences and returns
// the best score of any cell.
func (m *referenceMatrices) fill(opts Options, target, query []byte) int {
	nRow, nCol := len(query)+1, len(target)+1
	m.h = newMatrix(nRow, nCol)
	m.e = newMatrix(nRow, nCol)
	m.f = newMatrix(nRow, nCol)
	best := 0
	for i := 1; i < nRow; i++ {
		for j := 1; j < nCol; j++ {
			diag := m.h.at(i-1, j-1) + opts.Mismatch
			if query[i-1] == target[j-1] {
				diag = m.h.at(i-1, j-1) + opts.Match
			}
			e := maxInt(m.e.at(i-1, j)-opts.GapExtend, m.h.at(i-1, j)-opts.GapOpen)
			f := maxInt(m.f.at(i, j-1)-opts.GapExtend, m.h.at(i, j-1)-opts.GapOpen)
			h := maxInt(maxInt(0, diag), maxInt(e, f))
			m.e.set(i, j, e)
			m.f.set(i, j, f)
			m.h.set(i, j, h)
			if h > best {
				best = h
			}
		}
	}
	return best
}

// Align returns the best local alignment score of query against target,
// computed with the full dynamic-programming matrices.  Both sequences must
// consist of A/C/G/T in either case; any other byte yields an error for which
// alphabet.IsInvalidSymbol is true.  The score is exact and never saturates.
// An empty target or query scores 0.
func Align(opts Options, target, query []byte) (int, error) {
	t, err := alphabet.Encode(target)
	if err != nil {
		return 0, err
	}
	q, err := alphabet.Encode(query)
	if err != nil {
		return 0, err
	}
	var m referenceMatrices
	return m.fill(opts, t, q), nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
