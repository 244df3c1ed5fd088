// Copyright 2025 The Ricci Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package scalar

import (
	"github.com/ricci-go/ricci/internal/scalar"
)

// Type aliases for the public API.

// Algebraic is the constraint for scalars supporting field arithmetic.
type Algebraic[T any] = scalar.Algebraic[T]

// Number is the constraint for scalars that additionally support the
// transcendental functions. Differentiation requires Number.
type Number[T any] = scalar.Number[T]

// Real is a float64 scalar with method-form arithmetic.
type Real = scalar.Real

// Complex is a complex128 scalar with method-form arithmetic.
type Complex = scalar.Complex

// Rational is an exact rational scalar backed by math/big.
type Rational = scalar.Rational

// Zero returns the additive identity of T.
func Zero[T Algebraic[T]]() T { return scalar.Zero[T]() }

// One returns the multiplicative identity of T.
func One[T Algebraic[T]]() T { return scalar.One[T]() }

// NaN returns the invalid-value sentinel of T.
func NaN[T Algebraic[T]]() T { return scalar.NaN[T]() }

// FromReal converts a float64 into T.
func FromReal[T Number[T]](v float64) T { return scalar.FromReal[T](v) }

// NewComplex returns the complex scalar re + i*im.
func NewComplex(re, im float64) Complex { return scalar.NewComplex(re, im) }

// FromPolar returns the complex scalar with the given magnitude and phase.
func FromPolar(magnitude, phase float64) Complex { return scalar.FromPolar(magnitude, phase) }

// NewRational returns the rational p/q. A zero denominator yields the
// not-a-number sentinel.
func NewRational(p, q int64) Rational { return scalar.NewRational(p, q) }

// RationalFromInt returns the rational n/1.
func RationalFromInt(n int64) Rational { return scalar.RationalFromInt(n) }

// RationalFromFloat returns the exact rational value of the float64 v.
// NaN and infinities map to the sentinel.
func RationalFromFloat(v float64) Rational { return scalar.RationalFromFloat(v) }
