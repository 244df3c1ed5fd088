// Copyright 2025 The Ricci Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar defines the numeric types the ricci library is generic over.
//
// # Overview
//
// Every container and differential operator in ricci is generic over a scalar
// type constrained by one of two interfaces:
//   - Algebraic: field arithmetic (Add, Sub, Mul, Div, Neg) plus identity and
//     NaN constructors. Enough for vectors, matrices and tensors.
//   - Number: Algebraic plus the transcendental functions (Sqrt, Exp, Ln,
//     Sin and friends) and FromReal conversion. Differentiation requires
//     Number.
//
// Concrete scalars:
//   - Real: float64 with method-form arithmetic. Satisfies Number.
//   - Complex: complex128. Satisfies Number.
//   - Rational: exact rational backed by math/big. Satisfies Algebraic only.
//
// The forward-mode types autodiff.Dual and autodiff.HyperDual also satisfy
// Number, so dual numbers nest inside every generic container.
//
// # Basic Usage
//
//	x := scalar.Real(2.5)
//	y := x.Mul(x).Add(scalar.One[scalar.Real]())   // x*x + 1
//
//	z := scalar.NewComplex(3, -4)
//	r := z.Magnitude()                             // 5
//
// The zero value of every scalar is its additive identity.
//
// # Invalid Values
//
// Numeric degeneracy never panics. Each scalar carries a NaN sentinel that is
// absorbing under arithmetic, so a division by zero deep inside a computation
// surfaces as NaN in the result rather than as a crash.
package scalar
