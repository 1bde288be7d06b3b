// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd

import (
	"fmt"
	"math"
)

// bytesPerVec is the size of the widest vector register the striped kernels
// should model.  It is set in init() from CPU feature detection.
var bytesPerVec int

// BytesPerVec returns the vector register width, in bytes, that callers
// should pick lane vectors for.
func BytesPerVec() int {
	return bytesPerVec
}

// SetBytesPerVec overrides the detected register width.  n must be 16 or 32.
// It is intended for tests and benchmarks that pin a width, and is not safe
// to call concurrently with kernels that read BytesPerVec.
func SetBytesPerVec(n int) {
	if n != 16 && n != 32 {
		panic(fmt.Sprintf("SetBytesPerVec() requires n == 16 or n == 32, got %d", n))
	}
	bytesPerVec = n
}

// Lanes is implemented by the fixed-width vector types of this package.  V is
// the implementing type itself, so generic code can be written as
//
//   func kernel[V Lanes[V]](...) { var zero V; ones := zero.Splat(1); ... }
//
// Methods never modify the receiver; they return a new vector.
type Lanes[V any] interface {
	// Len returns the number of lanes.
	Len() int
	// Limits returns the smallest and largest values a lane can hold.
	Limits() (lo, hi int)
	// Splat returns a vector with every lane set to x, clamped to Limits().
	Splat(x int) V
	// SetLane returns a copy of the receiver with lane k set to x, clamped.
	SetLane(k, x int) V
	// Lane returns the value of lane k.
	Lane(k int) int
	// AddSat returns the lane-wise saturating sum.
	AddSat(w V) V
	// SubSat returns the lane-wise saturating difference.
	SubSat(w V) V
	// Max returns the lane-wise maximum.
	Max(w V) V
	// ShiftUp moves lane k to lane k+1, drops the top lane, and sets lane 0
	// to fill (clamped).
	ShiftUp(fill int) V
	// AnyGreater reports whether any lane of the receiver is greater than the
	// same lane of w.
	AnyGreater(w V) bool
	// HMax returns the maximum over all lanes.
	HMax() int
}

// lane is the element type of a vector register.
type lane interface {
	~int8 | ~int16
}

// The per-lane loops below are shared by every vector type.  r, v and w
// always have the same length, and sat clamps to the range of T.

func splat[T lane](r []T, x int, sat func(int) T) {
	s := sat(x)
	for k := range r {
		r[k] = s
	}
}

func addSat[T lane](r, v, w []T, sat func(int) T) {
	for k := range r {
		r[k] = sat(int(v[k]) + int(w[k]))
	}
}

func subSat[T lane](r, v, w []T, sat func(int) T) {
	for k := range r {
		r[k] = sat(int(v[k]) - int(w[k]))
	}
}

func maxLanes[T lane](r, v, w []T) {
	for k := range r {
		if v[k] > w[k] {
			r[k] = v[k]
		} else {
			r[k] = w[k]
		}
	}
}

func shiftUp[T lane](r, v []T, fill int, sat func(int) T) {
	copy(r[1:], v[:len(v)-1])
	r[0] = sat(fill)
}

func anyGreater[T lane](v, w []T) bool {
	for k := range v {
		if v[k] > w[k] {
			return true
		}
	}
	return false
}

func hmax[T lane](v []T) int {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return int(m)
}

func sat8(x int) int8 {
	if x > math.MaxInt8 {
		return math.MaxInt8
	}
	if x < math.MinInt8 {
		return math.MinInt8
	}
	return int8(x)
}

func sat16(x int) int16 {
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	if x < math.MinInt16 {
		return math.MinInt16
	}
	return int16(x)
}
