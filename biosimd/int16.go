// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd

import (
	"math"
)

// Int16x8 is a 128-bit register of 8 signed 16-bit lanes.
type Int16x8 [8]int16

// Int16x16 is a 256-bit register of 16 signed 16-bit lanes.
type Int16x16 [16]int16

var (
	_ Lanes[Int16x8]  = Int16x8{}
	_ Lanes[Int16x16] = Int16x16{}
)

// Len implements Lanes.
func (Int16x8) Len() int { return 8 }

// Limits implements Lanes.
func (Int16x8) Limits() (lo, hi int) { return math.MinInt16, math.MaxInt16 }

// Splat implements Lanes.
func (Int16x8) Splat(x int) (r Int16x8) {
	splat(r[:], x, sat16)
	return
}

// SetLane implements Lanes.
func (v Int16x8) SetLane(k, x int) Int16x8 {
	v[k] = sat16(x)
	return v
}

// Lane implements Lanes.
func (v Int16x8) Lane(k int) int { return int(v[k]) }

// AddSat implements Lanes.
func (v Int16x8) AddSat(w Int16x8) (r Int16x8) {
	addSat(r[:], v[:], w[:], sat16)
	return
}

// SubSat implements Lanes.
func (v Int16x8) SubSat(w Int16x8) (r Int16x8) {
	subSat(r[:], v[:], w[:], sat16)
	return
}

// Max implements Lanes.
func (v Int16x8) Max(w Int16x8) (r Int16x8) {
	maxLanes(r[:], v[:], w[:])
	return
}

// ShiftUp implements Lanes.
func (v Int16x8) ShiftUp(fill int) (r Int16x8) {
	shiftUp(r[:], v[:], fill, sat16)
	return
}

// AnyGreater implements Lanes.
func (v Int16x8) AnyGreater(w Int16x8) bool { return anyGreater(v[:], w[:]) }

// HMax implements Lanes.
func (v Int16x8) HMax() int { return hmax(v[:]) }

// Len implements Lanes.
func (Int16x16) Len() int { return 16 }

// Limits implements Lanes.
func (Int16x16) Limits() (lo, hi int) { return math.MinInt16, math.MaxInt16 }

// Splat implements Lanes.
func (Int16x16) Splat(x int) (r Int16x16) {
	splat(r[:], x, sat16)
	return
}

// SetLane implements Lanes.
func (v Int16x16) SetLane(k, x int) Int16x16 {
	v[k] = sat16(x)
	return v
}

// Lane implements Lanes.
func (v Int16x16) Lane(k int) int { return int(v[k]) }

// AddSat implements Lanes.
func (v Int16x16) AddSat(w Int16x16) (r Int16x16) {
	addSat(r[:], v[:], w[:], sat16)
	return
}

// SubSat implements Lanes.
func (v Int16x16) SubSat(w Int16x16) (r Int16x16) {
	subSat(r[:], v[:], w[:], sat16)
	return
}

// Max implements Lanes.
func (v Int16x16) Max(w Int16x16) (r Int16x16) {
	maxLanes(r[:], v[:], w[:])
	return
}

// ShiftUp implements Lanes.
func (v Int16x16) ShiftUp(fill int) (r Int16x16) {
	shiftUp(r[:], v[:], fill, sat16)
	return
}

// AnyGreater implements Lanes.
func (v Int16x16) AnyGreater(w Int16x16) bool { return anyGreater(v[:], w[:]) }

// HMax implements Lanes.
func (v Int16x16) HMax() int { return hmax(v[:]) }
