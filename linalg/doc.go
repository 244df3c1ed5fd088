// Copyright 2025 The Ricci Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides fixed-capacity vectors, matrices and rank-3/4
// tensors over dimensions 2 through 4.
//
// # Overview
//
// All containers are value types with inline backing arrays; constructing
// and operating on them never touches the heap. They are generic over
// scalar.Algebraic, so the same Matrix type holds float64 values, complex
// values, exact rationals or forward-mode dual numbers.
//
// Determinants and inverses are closed-form per dimension. Eigenvalue and
// QR routines for real matrices delegate to gonum.
//
// # Basic Usage
//
//	m := linalg.MatrixOf[scalar.Real](2,
//	    4, 7,
//	    2, 6,
//	)
//	inv := m.Inverse()
//	det := m.Det() // 10
//
// # NaM
//
// Inverting a singular matrix returns NaM, the all-NaN matrix. NaM is
// absorbing: any arithmetic involving it yields NaN entries, so a
// degenerate inversion deep inside a computation surfaces in the final
// result instead of panicking. Test for it with IsNaM.
package linalg
