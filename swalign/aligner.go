// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package swalign

import (
	"fmt"

	"github.com/grailbio/align/alphabet"
	"github.com/grailbio/align/biosimd"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// debugf is where the package writes debug logs.
var debugf = log.Debug.Printf

// Width is the number of bits per lane used by the striped engine.
type Width int

const (
	// Lanes8 packs 16 (or 32, with AVX2) positions per vector and saturates at
	// 127.
	Lanes8 Width = 8
	// Lanes16 packs half as many positions and saturates at 32767.
	Lanes16 Width = 16
)

// AlignerOpts configures an Aligner.
type AlignerOpts struct {
	// Width selects 8- or 16-bit lanes.  The zero value means Lanes8.
	Width Width
	// Promote makes Score recompute saturated Lanes8 results with 16-bit
	// lanes.  The 16-bit profile is built on first use.
	Promote bool
	// Alphabet encodes the query and targets.  nil means alphabet.ACGT.
	Alphabet *alphabet.Alphabet
}

// DefaultAlignerOpts uses 8-bit lanes and promotes saturated scores.
var DefaultAlignerOpts = AlignerOpts{
	Width:   Lanes8,
	Promote: true,
}

// Result is the outcome of scoring one target.
type Result struct {
	// Score is the best local alignment score, clamped to the lane range.
	Score int
	// Saturated is true when Score reached the lane maximum, in which case
	// the exact score may be larger.
	Saturated bool
}

// engine scores encoded targets against one striped query profile.
type engine interface {
	score(target []byte) int
	lanes() int
	stripeCount() int
	maxScore() int
}

type stripedEngine[V biosimd.Lanes[V]] struct {
	opts Options
	prof *profile[V]
	hi   int
}

func newStripedEngine[V biosimd.Lanes[V]](opts Options, query []byte, alphabetSize int) (engine, error) {
	var zero V
	lo, hi := zero.Limits()
	if err := opts.checkLanes(lo, hi); err != nil {
		return nil, err
	}
	prof, err := newProfile[V](query, alphabetSize, opts.Match, opts.Mismatch)
	if err != nil {
		return nil, err
	}
	return &stripedEngine[V]{opts: opts, prof: prof, hi: hi}, nil
}

func (s *stripedEngine[V]) score(target []byte) int {
	return stripedScore(s.prof, s.opts, target)
}

func (s *stripedEngine[V]) lanes() int {
	var zero V
	return zero.Len()
}

func (s *stripedEngine[V]) stripeCount() int {
	return s.prof.stripeCount
}

func (s *stripedEngine[V]) maxScore() int {
	return s.hi
}

// newEngine picks the vector type for the lane width and the register width
// reported by biosimd.BytesPerVec.
func newEngine(opts Options, query []byte, width Width, alphabetSize int) (engine, error) {
	wide := biosimd.BytesPerVec() >= 32
	switch width {
	case Lanes8:
		if wide {
			return newStripedEngine[biosimd.Int8x32](opts, query, alphabetSize)
		}
		return newStripedEngine[biosimd.Int8x16](opts, query, alphabetSize)
	case Lanes16:
		if wide {
			return newStripedEngine[biosimd.Int16x16](opts, query, alphabetSize)
		}
		return newStripedEngine[biosimd.Int16x8](opts, query, alphabetSize)
	}
	return nil, errors.E(errors.Invalid, fmt.Sprintf("unsupported lane width %d", width))
}

// Aligner scores many targets against one query with the striped engine.
// The query is encoded and its profile built once, in NewAligner.
//
// An Aligner is not safe for concurrent use.
type Aligner struct {
	opts   Options
	aopts  AlignerOpts
	query  []byte // encoded
	engine engine
	// wide is the Lanes16 engine used for promotion; nil until needed.
	wide engine
	buf  []byte
}

// NewAligner returns an Aligner for query.  It fails with an error for which
// alphabet.IsInvalidSymbol is true when query contains a byte outside
// aopts.Alphabet (either case), and with an errors.Invalid error when opts
// cannot be represented in the selected lanes.
func NewAligner(opts Options, query []byte, aopts AlignerOpts) (*Aligner, error) {
	a, err := newAligner(opts, query, aopts)
	if err != nil {
		return nil, err
	}
	debugf("swalign: aligner for query of length %d over %s, opts %v, %d-bit lanes x %d, %d stripes",
		len(a.query), a.aopts.Alphabet.Symbols(), opts, a.aopts.Width, a.Lanes(), a.StripeCount())
	return a, nil
}

// newAligner is NewAligner without logging, for one-shot alignments.
func newAligner(opts Options, query []byte, aopts AlignerOpts) (*Aligner, error) {
	if aopts.Width == 0 {
		aopts.Width = Lanes8
	}
	if aopts.Alphabet == nil {
		aopts.Alphabet = alphabet.ACGT
	}
	q, err := aopts.Alphabet.Encode(query)
	if err != nil {
		return nil, err
	}
	eng, err := newEngine(opts, q, aopts.Width, aopts.Alphabet.Size())
	if err != nil {
		return nil, err
	}
	return &Aligner{opts: opts, aopts: aopts, query: q, engine: eng}, nil
}

// QueryLen returns the length of the query.
func (a *Aligner) QueryLen() int { return len(a.query) }

// Lanes returns the number of lanes per vector.
func (a *Aligner) Lanes() int { return a.engine.lanes() }

// StripeCount returns the number of vectors per profile row,
// ceil(QueryLen()/Lanes()).
func (a *Aligner) StripeCount() int { return a.engine.stripeCount() }

// Score returns the best local alignment score of the query against target.
// target has the same requirements as the query.
func (a *Aligner) Score(target []byte) (Result, error) {
	if cap(a.buf) < len(target) {
		a.buf = make([]byte, len(target))
	}
	t := a.buf[:len(target)]
	if err := a.aopts.Alphabet.EncodeTo(t, target); err != nil {
		return Result{}, err
	}
	score := a.engine.score(t)
	r := Result{Score: score, Saturated: score >= a.engine.maxScore()}
	if !r.Saturated || !a.aopts.Promote || a.aopts.Width != Lanes8 {
		return r, nil
	}
	if a.wide == nil {
		var err error
		if a.wide, err = newEngine(a.opts, a.query, Lanes16, a.aopts.Alphabet.Size()); err != nil {
			return r, err
		}
	}
	debugf("swalign: 8-bit score saturated for target of length %d, rescoring with 16-bit lanes", len(target))
	score = a.wide.score(t)
	return Result{Score: score, Saturated: score >= a.wide.maxScore()}, nil
}
