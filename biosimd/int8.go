// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd

import (
	"math"
)

// Int8x16 is a 128-bit register of 16 signed 8-bit lanes.
type Int8x16 [16]int8

// Int8x32 is a 256-bit register of 32 signed 8-bit lanes.
type Int8x32 [32]int8

var (
	_ Lanes[Int8x16] = Int8x16{}
	_ Lanes[Int8x32] = Int8x32{}
)

// Len implements Lanes.
func (Int8x16) Len() int { return 16 }

// Limits implements Lanes.
func (Int8x16) Limits() (lo, hi int) { return math.MinInt8, math.MaxInt8 }

// Splat implements Lanes.
func (Int8x16) Splat(x int) (r Int8x16) {
	splat(r[:], x, sat8)
	return
}

// SetLane implements Lanes.
func (v Int8x16) SetLane(k, x int) Int8x16 {
	v[k] = sat8(x)
	return v
}

// Lane implements Lanes.
func (v Int8x16) Lane(k int) int { return int(v[k]) }

// AddSat implements Lanes.
func (v Int8x16) AddSat(w Int8x16) (r Int8x16) {
	addSat(r[:], v[:], w[:], sat8)
	return
}

// SubSat implements Lanes.
func (v Int8x16) SubSat(w Int8x16) (r Int8x16) {
	subSat(r[:], v[:], w[:], sat8)
	return
}

// Max implements Lanes.
func (v Int8x16) Max(w Int8x16) (r Int8x16) {
	maxLanes(r[:], v[:], w[:])
	return
}

// ShiftUp implements Lanes.
func (v Int8x16) ShiftUp(fill int) (r Int8x16) {
	shiftUp(r[:], v[:], fill, sat8)
	return
}

// AnyGreater implements Lanes.
func (v Int8x16) AnyGreater(w Int8x16) bool { return anyGreater(v[:], w[:]) }

// HMax implements Lanes.
func (v Int8x16) HMax() int { return hmax(v[:]) }

// Len implements Lanes.
func (Int8x32) Len() int { return 32 }

// Limits implements Lanes.
func (Int8x32) Limits() (lo, hi int) { return math.MinInt8, math.MaxInt8 }

// Splat implements Lanes.
func (Int8x32) Splat(x int) (r Int8x32) {
	splat(r[:], x, sat8)
	return
}

// SetLane implements Lanes.
func (v Int8x32) SetLane(k, x int) Int8x32 {
	v[k] = sat8(x)
	return v
}

// Lane implements Lanes.
func (v Int8x32) Lane(k int) int { return int(v[k]) }

// AddSat implements Lanes.
func (v Int8x32) AddSat(w Int8x32) (r Int8x32) {
	addSat(r[:], v[:], w[:], sat8)
	return
}

// SubSat implements Lanes.
func (v Int8x32) SubSat(w Int8x32) (r Int8x32) {
	subSat(r[:], v[:], w[:], sat8)
	return
}

// Max implements Lanes.
func (v Int8x32) Max(w Int8x32) (r Int8x32) {
	maxLanes(r[:], v[:], w[:])
	return
}

// ShiftUp implements Lanes.
func (v Int8x32) ShiftUp(fill int) (r Int8x32) {
	shiftUp(r[:], v[:], fill, sat8)
	return
}

// AnyGreater implements Lanes.
func (v Int8x32) AnyGreater(w Int8x32) bool { return anyGreater(v[:], w[:]) }

// HMax implements Lanes.
func (v Int8x32) HMax() int { return hmax(v[:]) }
