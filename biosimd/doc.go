// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package biosimd provides fixed-width lane vectors for striped dynamic
// programming kernels.
//
// Each vector type (Int8x16, Int8x32, Int16x8, Int16x16) models one hardware
// register split into signed lanes, and implements Lanes so that DP code can
// be written once against the interface and instantiated per register shape.
// All lane arithmetic saturates at the lane range instead of wrapping.
//
// BytesPerVec reports the register width the striped kernels should assume on
// this machine.  It is 16 everywhere, and 32 on amd64 machines with AVX2.
package biosimd
