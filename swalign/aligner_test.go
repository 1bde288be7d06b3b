// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package swalign_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/grailbio/align/alphabet"
	"github.com/grailbio/align/encoding/fasta"
	"github.com/grailbio/align/encoding/fastq"
	"github.com/grailbio/align/swalign"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignerLayout(t *testing.T) {
	query := bytes.Repeat([]byte("ACGT"), 10)
	tests := []struct {
		bytesPerVec int
		width       swalign.Width
		lanes       int
	}{
		{16, swalign.Lanes8, 16},
		{32, swalign.Lanes8, 32},
		{16, swalign.Lanes16, 8},
		{32, swalign.Lanes16, 16},
		{16, 0, 16},
	}
	for _, test := range tests {
		withBytesPerVec(t, test.bytesPerVec, func(t *testing.T) {
			a, err := swalign.NewAligner(swalign.DefaultOptions, query, swalign.AlignerOpts{Width: test.width})
			require.NoError(t, err)
			assert.Equal(t, 40, a.QueryLen())
			assert.Equal(t, test.lanes, a.Lanes())
			assert.Equal(t, (40+test.lanes-1)/test.lanes, a.StripeCount())
		})
	}
}

func TestAlignerInvalid(t *testing.T) {
	_, err := swalign.NewAligner(swalign.DefaultOptions, []byte("ACGU"), swalign.DefaultAlignerOpts)
	expect.True(t, alphabet.IsInvalidSymbol(err))

	_, err = swalign.NewAligner(swalign.DefaultOptions, []byte("ACGT"), swalign.AlignerOpts{Width: 12})
	expect.True(t, errors.Is(errors.Invalid, err))
	expect.False(t, alphabet.IsInvalidSymbol(err))

	// Bad options share the errors.Invalid kind but are not symbol errors.
	_, err = swalign.NewAligner(swalign.Options{Match: 1, Mismatch: -1, GapOpen: -1, GapExtend: 1}, []byte("ACGT"), swalign.DefaultAlignerOpts)
	expect.True(t, errors.Is(errors.Invalid, err))
	expect.False(t, alphabet.IsInvalidSymbol(err))
	_, err = swalign.NewAligner(swalign.Options{Match: 1000, Mismatch: -1, GapOpen: 1, GapExtend: 1}, []byte("ACGT"), swalign.DefaultAlignerOpts)
	expect.True(t, errors.Is(errors.Invalid, err))
	expect.False(t, alphabet.IsInvalidSymbol(err))

	a, err := swalign.NewAligner(swalign.DefaultOptions, []byte("ACGT"), swalign.DefaultAlignerOpts)
	require.NoError(t, err)
	_, err = a.Score([]byte("AC-GT"))
	expect.True(t, alphabet.IsInvalidSymbol(err))
	// A failed target does not spoil the next one.
	r, err := a.Score([]byte("acgt"))
	require.NoError(t, err)
	expect.EQ(t, r, swalign.Result{Score: 4})
}

func TestAlignerWideLanes(t *testing.T) {
	// Too large for 8-bit lanes.
	opts := swalign.Options{Match: 200, Mismatch: -100, GapOpen: 150, GapExtend: 20}
	_, err := swalign.NewAligner(opts, []byte("ACGT"), swalign.AlignerOpts{Width: swalign.Lanes8})
	expect.True(t, errors.Is(errors.Invalid, err))

	a, err := swalign.NewAligner(opts, []byte("ACGTACGT"), swalign.AlignerOpts{Width: swalign.Lanes16})
	require.NoError(t, err)
	got, err := a.Score([]byte("TTACGTACGTTT"))
	require.NoError(t, err)
	expect.EQ(t, got, swalign.Result{Score: 1600})
}

func TestAlignerLanes16MatchesAlign(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for _, n := range []int{16, 32} {
		withBytesPerVec(t, n, func(t *testing.T) {
			nIter := 30
			for iter := 0; iter < nIter; iter++ {
				opts := swalign.Options{
					Match:     1 + r.Intn(3),
					Mismatch:  -1 - r.Intn(4),
					GapOpen:   r.Intn(8),
					GapExtend: r.Intn(3),
				}
				query := randomSeq(r, 100+r.Intn(300), "ACGT")
				target := mutate(r, query, 0.1)
				// Embed in unrelated flanks so the alignment is local.
				target = append(randomSeq(r, r.Intn(50), "ACGT"), target...)
				target = append(target, randomSeq(r, r.Intn(50), "ACGT")...)

				want, err := swalign.Align(opts, target, query)
				require.NoError(t, err)
				a, err := swalign.NewAligner(opts, query, swalign.AlignerOpts{Width: swalign.Lanes16})
				require.NoError(t, err)
				got, err := a.Score(target)
				require.NoError(t, err)
				if got.Score != want || got.Saturated {
					t.Fatalf("Lanes16 score %+v, Align = %d (opts %v, |T|=%d, |Q|=%d)", got, want, opts, len(target), len(query))
				}
			}
		})
	}
}

func TestAlignerPromote(t *testing.T) {
	seq := bytes.Repeat([]byte("ACGTTGCA"), 25)

	a, err := swalign.NewAligner(swalign.DefaultOptions, seq, swalign.AlignerOpts{Width: swalign.Lanes8})
	require.NoError(t, err)
	r, err := a.Score(seq)
	require.NoError(t, err)
	expect.EQ(t, r, swalign.Result{Score: 127, Saturated: true})

	a, err = swalign.NewAligner(swalign.DefaultOptions, seq, swalign.DefaultAlignerOpts)
	require.NoError(t, err)
	r, err = a.Score(seq)
	require.NoError(t, err)
	expect.EQ(t, r, swalign.Result{Score: 200})
	// Unsaturated targets stay on the 8-bit engine.
	r, err = a.Score([]byte("ACGTTGCA"))
	require.NoError(t, err)
	expect.EQ(t, r, swalign.Result{Score: 8})
	// The 16-bit engine is reused.
	r, err = a.Score(seq[:150])
	require.NoError(t, err)
	expect.EQ(t, r, swalign.Result{Score: 150})
}

func TestAlignerReuse(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	query := randomSeq(r, 60, "ACGT")
	opts := swalign.Options{Match: 2, Mismatch: -2, GapOpen: 3, GapExtend: 1}
	a, err := swalign.NewAligner(opts, query, swalign.DefaultAlignerOpts)
	require.NoError(t, err)
	// Targets of varying length share the aligner's buffer.
	for _, n := range []int{80, 5, 0, 120, 33} {
		target := mutate(r, randomSeq(r, n, "ACGT"), 0.1)
		want, err := swalign.Align(opts, target, query)
		require.NoError(t, err)
		got, err := a.Score(target)
		require.NoError(t, err)
		assert.Equal(t, want, got.Score, "target %s", target)
	}
}

func TestScoreRecords(t *testing.T) {
	const data = `>r1 first record
ACGTAC
GT
>r2
TTTT

>r3
acgtacgt
`
	a, err := swalign.NewAligner(swalign.DefaultOptions, []byte("ACGT"), swalign.DefaultAlignerOpts)
	require.NoError(t, err)
	scores, err := a.ScoreRecords(fasta.NewScanner(strings.NewReader(data)))
	require.NoError(t, err)
	expect.EQ(t, scores, []swalign.RecordScore{
		{Name: "r1", Result: swalign.Result{Score: 4}},
		{Name: "r2", Result: swalign.Result{Score: 1}},
		{Name: "r3", Result: swalign.Result{Score: 4}},
	})
}

func TestScoreRecordsInvalid(t *testing.T) {
	const data = ">ok\nACGT\n>broken\nACNGT\n>never\nACGT\n"
	a, err := swalign.NewAligner(swalign.DefaultOptions, []byte("ACGT"), swalign.DefaultAlignerOpts)
	require.NoError(t, err)
	scores, err := a.ScoreRecords(fasta.NewScanner(strings.NewReader(data)))
	require.Error(t, err)
	assert.True(t, alphabet.IsInvalidSymbol(err), "%v", err)
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, []swalign.RecordScore{{Name: "ok", Result: swalign.Result{Score: 4}}}, scores)
}

func TestScoreRecordsMalformed(t *testing.T) {
	a, err := swalign.NewAligner(swalign.DefaultOptions, []byte("ACGT"), swalign.DefaultAlignerOpts)
	require.NoError(t, err)
	_, err = a.ScoreRecords(fasta.NewScanner(strings.NewReader("ACGT\n>r1\nACGT\n")))
	assert.Error(t, err)
}

func TestScoreReads(t *testing.T) {
	const data = `@read1 1:N:0:ATCACG
TTACGTTT
+
IIIIIIII
@read2
GGGG
+
IIII
`
	a, err := swalign.NewAligner(swalign.DefaultOptions, []byte("ACGT"), swalign.DefaultAlignerOpts)
	require.NoError(t, err)
	scores, err := a.ScoreReads(fastq.NewScanner(strings.NewReader(data)))
	require.NoError(t, err)
	expect.EQ(t, scores, []swalign.RecordScore{
		{Name: "read1", Result: swalign.Result{Score: 4}},
		{Name: "read2", Result: swalign.Result{Score: 1}},
	})

	// Ns are outside the alphabet.
	scores, err = a.ScoreReads(fastq.NewScanner(strings.NewReader("@r1\nACGT\n+\nIIII\n@r2\nACNT\n+\nIIII\n")))
	assert.True(t, alphabet.IsInvalidSymbol(err), "%v", err)
	assert.Contains(t, err.Error(), "FASTQ read r2")
	assert.Len(t, scores, 1)

	_, err = a.ScoreReads(fastq.NewScanner(strings.NewReader("@r1\nACGT\n+\nIII\n")))
	assert.Error(t, err)
}

func TestAlignerAlphabet(t *testing.T) {
	alpha, err := alphabet.New("ACGTN")
	require.NoError(t, err)
	a, err := swalign.NewAligner(swalign.DefaultOptions, []byte("acnngt"), swalign.AlignerOpts{Alphabet: alpha})
	require.NoError(t, err)
	r, err := a.Score([]byte("TTACNNGTTT"))
	require.NoError(t, err)
	expect.EQ(t, r, swalign.Result{Score: 6})
	_, err = a.Score([]byte("ACGTX"))
	expect.True(t, alphabet.IsInvalidSymbol(err))
}
