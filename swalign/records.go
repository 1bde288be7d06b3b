// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package swalign

import (
	"fmt"

	"github.com/grailbio/align/encoding/fasta"
	"github.com/grailbio/align/encoding/fastq"
	"github.com/grailbio/base/errors"
)

// RecordScore is the score of one named sequence against an Aligner's query.
type RecordScore struct {
	Name string
	Result
}

// ScoreRecords scores every remaining record of s, in input order.  It stops
// at the first record with an invalid symbol; the error names the record and
// keeps the errors.Invalid kind.  The scores before the failing record are
// returned along with the error.
func (a *Aligner) ScoreRecords(s *fasta.Scanner) ([]RecordScore, error) {
	return a.scoreAll("FASTA record", s.Scan, func() (string, []byte) {
		rec := s.Record()
		return rec.Name, rec.Seq
	}, s.Err)
}

// ScoreReads is ScoreRecords for FASTQ reads.  Reads are named by
// fastq.Read.Name; quality values are ignored.
func (a *Aligner) ScoreReads(s *fastq.Scanner) ([]RecordScore, error) {
	var read fastq.Read
	return a.scoreAll("FASTQ read", func() bool { return s.Scan(&read) }, func() (string, []byte) {
		return read.Name(), []byte(read.Seq)
	}, s.Err)
}

func (a *Aligner) scoreAll(what string, scan func() bool, next func() (string, []byte), scanErr func() error) ([]RecordScore, error) {
	var scores []RecordScore
	nSaturated := 0
	for scan() {
		name, seq := next()
		r, err := a.Score(seq)
		if err != nil {
			return scores, errors.E(err, fmt.Sprintf("scoring %s %s", what, name))
		}
		if r.Saturated {
			nSaturated++
		}
		scores = append(scores, RecordScore{Name: name, Result: r})
	}
	if err := scanErr(); err != nil {
		return scores, err
	}
	debugf("swalign: scored %d sequences, %d saturated", len(scores), nSaturated)
	return scores, nil
}
