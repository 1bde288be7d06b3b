// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package alphabet converts ASCII sequences into dense symbol codes suitable
// for indexing query profiles.
package alphabet

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// MaxSize is the largest number of symbols an Alphabet may hold.  Profile
// rows are indexed by code, so codes are kept small.
const MaxSize = 16

// invalidCode marks bytes that are not part of the alphabet in the lookup
// table.
const invalidCode = 0xff

// Alphabet maps the symbols of a small fixed alphabet to the codes
// 0..Size()-1, ignoring case.
type Alphabet struct {
	symbols string
	table   [256]byte
}

// ACGT is the nucleotide alphabet: 'A'/'a' -> 0, 'C'/'c' -> 1, 'G'/'g' -> 2,
// 'T'/'t' -> 3.
var ACGT *Alphabet

func init() {
	var err error
	if ACGT, err = New("ACGT"); err != nil {
		panic(err)
	}
}

// New returns an Alphabet in which symbols[i] encodes to i.  Symbols must be
// distinct ASCII letters (case is ignored when checking for duplicates), and
// there may be at most MaxSize of them.
func New(symbols string) (*Alphabet, error) {
	if len(symbols) == 0 || len(symbols) > MaxSize {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("alphabet.New: need 1 to %d symbols, got %d", MaxSize, len(symbols)))
	}
	a := &Alphabet{symbols: symbols}
	for i := range a.table {
		a.table[i] = invalidCode
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if !isLetter(c) {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("alphabet.New: symbol %q is not an ASCII letter", c))
		}
		upper, lower := toUpper(c), toLower(c)
		if a.table[upper] != invalidCode {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("alphabet.New: duplicate symbol %q", c))
		}
		a.table[upper] = byte(i)
		a.table[lower] = byte(i)
	}
	return a, nil
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Symbols returns the symbols in code order.
func (a *Alphabet) Symbols() string {
	return a.symbols
}

// InvalidSymbolError describes a byte that is not part of an alphabet.  It is
// returned wrapped in an errors.Invalid error; use IsInvalidSymbol to detect
// it.
type InvalidSymbolError struct {
	// Symbol is the offending byte and Pos its index in the input.
	Symbol byte
	Pos    int
	// Alphabet holds the symbols of the alphabet that rejected it.
	Alphabet string
}

// Error implements error.
func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d (alphabet %s)", e.Symbol, e.Pos, e.Alphabet)
}

// Encode returns a newly allocated slice with the code of every byte of seq.
// It returns an errors.Invalid error wrapping an *InvalidSymbolError for the
// first byte that is not in the alphabet.
func (a *Alphabet) Encode(seq []byte) ([]byte, error) {
	dst := make([]byte, len(seq))
	if err := a.EncodeTo(dst, seq); err != nil {
		return nil, err
	}
	return dst, nil
}

// EncodeTo sets dst[pos] to the code of src[pos].  It panics if
// len(dst) != len(src).  dst and src may be the same slice.  On error, the
// contents of dst are unspecified.
func (a *Alphabet) EncodeTo(dst, src []byte) error {
	if len(dst) != len(src) {
		panic("EncodeTo() requires len(dst) == len(src).")
	}
	for pos, c := range src {
		code := a.table[c]
		if code == invalidCode {
			return errors.E(errors.Invalid, &InvalidSymbolError{Symbol: c, Pos: pos, Alphabet: a.symbols})
		}
		dst[pos] = code
	}
	return nil
}

// Encode encodes seq with the ACGT alphabet.
func Encode(seq []byte) ([]byte, error) {
	return ACGT.Encode(seq)
}

// IsInvalidSymbol reports whether err was caused by a byte outside the
// alphabet, possibly behind further errors.E wrapping.  Other errors.Invalid
// errors, such as bad options, do not count.
func IsInvalidSymbol(err error) bool {
	return AsInvalidSymbol(err) != nil
}

// AsInvalidSymbol returns the *InvalidSymbolError behind err, or nil.
func AsInvalidSymbol(err error) *InvalidSymbolError {
	for err != nil {
		switch e := err.(type) {
		case *InvalidSymbolError:
			return e
		case *errors.Error:
			err = e.Err
		default:
			return nil
		}
	}
	return nil
}

func isLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
