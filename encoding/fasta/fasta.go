// Package fasta reads named sequences from FASTA data.  FASTA files consist of
// a number of named sequences that may be interrupted by newlines.  For
// example:
//
// >chr7
// ACGTAC
// GAGGAC
// GCG
// >chr8
// ACGT
//
// Note: Sequence names are defined to be the stretch of characters excluding
// spaces immediately after '>'.  Any text appear after a space are ignored.
// For example, '>chr1 A viral sequence' becomes 'chr1'.
package fasta

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

const maxLineSize = 1024 * 1024 * 300 // 300 MB

// Record is one named sequence.
type Record struct {
	Name string
	Seq  []byte
}

// Scanner reads FASTA records one at a time:
//
//   s := fasta.NewScanner(r)
//   for s.Scan() {
//     rec := s.Record()
//     ...
//   }
//   if err := s.Err(); err != nil { ... }
type Scanner struct {
	lines   *bufio.Scanner
	lineNo  int
	pending string // name of the next record, if its header was already read
	started bool
	done    bool
	rec     Record
	err     error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(nil, maxLineSize)
	return &Scanner{lines: lines}
}

// Scan advances to the next record.  It returns false at the end of the input
// or on error; Err tells them apart.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	var seq []byte
	for s.lines.Scan() {
		s.lineNo++
		line := bytes.TrimRight(s.lines.Bytes(), "\r")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' { // Start a new sequence.
			name := headerName(line)
			if s.started {
				s.rec = Record{Name: s.pending, Seq: seq}
				s.pending = name
				return true
			}
			s.started = true
			s.pending = name
			continue
		}
		if !s.started {
			s.err = errors.Errorf("malformed FASTA data: line %d has sequence data before any '>' header", s.lineNo)
			s.done = true
			return false
		}
		seq = append(seq, line...)
	}
	s.done = true
	if err := s.lines.Err(); err != nil {
		s.err = errors.Wrap(err, "couldn't read FASTA data")
		return false
	}
	if !s.started {
		return false
	}
	s.rec = Record{Name: s.pending, Seq: seq}
	return true
}

// Record returns the record read by the last successful Scan.  The returned
// sequence is not reused by later calls.
func (s *Scanner) Record() Record {
	return s.rec
}

// Err returns the first error encountered, or nil at a clean end of input.
func (s *Scanner) Err() error {
	return s.err
}

func headerName(line []byte) string {
	name := line[1:]
	if i := bytes.IndexByte(name, ' '); i >= 0 {
		name = name[:i]
	}
	return string(name)
}
