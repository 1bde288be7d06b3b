// Package fastq reads sequencing reads in FASTQ format.  Each read spans four
// lines:
//
// @NB500956:89:HW2FHBGX2:1:11101:25648:1069 1:N:0:ATCACG
// ATACAGGCCTGA
// +
// AAAAAEEEEEEE
//
// The third line may repeat the ID after the '+' and is not kept.
package fastq

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrShort is the cause of errors for FASTQ data that ends inside a read.
	ErrShort = errors.New("short FASTQ file")
	// ErrInvalid is the cause of errors for malformed FASTQ data.
	ErrInvalid = errors.New("invalid FASTQ file")
)

// A Read is one FASTQ read.  ID is the first line without its leading '@'.
type Read struct {
	ID, Seq, Qual string
}

// Name returns the read name: the part of ID before the first space.
func (r *Read) Name() string {
	if i := strings.IndexByte(r.ID, ' '); i >= 0 {
		return r.ID[:i]
	}
	return r.ID
}

// Scanner reads FASTQ data one read at a time.  It checks the '@' and '+'
// markers and that sequence and quality lines have equal length, and nothing
// else.  Errors carry the line number; errors.Cause returns ErrShort,
// ErrInvalid or the underlying read error.  Scanners are not threadsafe.
type Scanner struct {
	lines  *bufio.Scanner
	lineNo int
	err    error
	done   bool
}

// NewScanner returns a Scanner reading raw FASTQ data from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{lines: bufio.NewScanner(r)}
}

// Scan reads the next read into read.  Once Scan returns false it never
// returns true again; Err then tells the end of the stream from an error.
func (s *Scanner) Scan(read *Read) bool {
	if s.done {
		return false
	}
	id, ok := s.line(false)
	if !ok {
		return false
	}
	if len(id) == 0 || id[0] != '@' {
		return s.fail(errors.Wrapf(ErrInvalid, "line %d: read must start with '@'", s.lineNo))
	}
	read.ID = string(id[1:])
	seq, ok := s.line(true)
	if !ok {
		return false
	}
	read.Seq = string(seq)
	plus, ok := s.line(true)
	if !ok {
		return false
	}
	if len(plus) == 0 || plus[0] != '+' {
		return s.fail(errors.Wrapf(ErrInvalid, "line %d: expected '+' separator", s.lineNo))
	}
	qual, ok := s.line(true)
	if !ok {
		return false
	}
	if len(qual) != len(read.Seq) {
		return s.fail(errors.Wrapf(ErrInvalid, "line %d: %d quality values for %d bases of read %s", s.lineNo, len(qual), len(read.Seq), read.Name()))
	}
	read.Qual = string(qual)
	return true
}

// line returns the next line without any trailing '\r'.  Running out of input
// is an error when inRead is set.
func (s *Scanner) line(inRead bool) ([]byte, bool) {
	if !s.lines.Scan() {
		s.done = true
		if err := s.lines.Err(); err != nil {
			s.err = errors.Wrap(err, "couldn't read FASTQ data")
		} else if inRead {
			s.err = errors.Wrapf(ErrShort, "line %d: read truncated", s.lineNo)
		}
		return nil, false
	}
	s.lineNo++
	return bytes.TrimRight(s.lines.Bytes(), "\r"), true
}

func (s *Scanner) fail(err error) bool {
	s.err = err
	s.done = true
	return false
}

// Err returns the scanning error, if any.  It should be checked after Scan
// returns false.
func (s *Scanner) Err() error {
	return s.err
}
