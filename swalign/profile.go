// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package swalign

import (
	"fmt"

	"github.com/grailbio/align/biosimd"
	"github.com/grailbio/base/errors"
)

// profile is a striped query profile.  For symbol code c and stripe i,
//
//   vecs[c*stripeCount+i].Lane(k) = score(query[i+k*stripeCount], c)
//
// or 0 when i+k*stripeCount >= queryLen.  The padding value is harmless
// because padded positions come after every real query position, so nothing
// they hold flows back into a real cell.
type profile[V biosimd.Lanes[V]] struct {
	queryLen     int
	alphabetSize int
	stripeCount  int
	vecs         []V
}

// newProfile builds the striped profile of an encoded query.  Every element
// of query must be less than alphabetSize; otherwise an errors.Precondition
// error is returned, since it means the query was not produced by an
// alphabet.Alphabet of that size.
func newProfile[V biosimd.Lanes[V]](query []byte, alphabetSize, match, mismatch int) (*profile[V], error) {
	for pos, c := range query {
		if int(c) >= alphabetSize {
			return nil, errors.E(errors.Precondition, fmt.Sprintf("profile: query code %d at position %d is not below alphabet size %d; was the query encoded?", c, pos, alphabetSize))
		}
	}
	var zero V
	nLane := zero.Len()
	stripeCount := (len(query) + nLane - 1) / nLane
	p := &profile[V]{
		queryLen:     len(query),
		alphabetSize: alphabetSize,
		stripeCount:  stripeCount,
		vecs:         make([]V, alphabetSize*stripeCount),
	}
	for c := 0; c < alphabetSize; c++ {
		row := p.vecs[c*stripeCount : (c+1)*stripeCount]
		for i := range row {
			var v V
			for k, pos := 0, i; k < nLane && pos < len(query); k, pos = k+1, pos+stripeCount {
				if int(query[pos]) == c {
					v = v.SetLane(k, match)
				} else {
					v = v.SetLane(k, mismatch)
				}
			}
			row[i] = v
		}
	}
	return p, nil
}

// row returns the stripe vectors of symbol code c.
func (p *profile[V]) row(c byte) []V {
	return p.vecs[int(c)*p.stripeCount : (int(c)+1)*p.stripeCount]
}
