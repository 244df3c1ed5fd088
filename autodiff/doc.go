// Copyright 2025 The Ricci Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff computes exact derivatives of user-supplied functions.
//
// # Overview
//
// Three differentiation strategies are provided:
//
//   - Reverse mode. A GradientTape records every arithmetic operation as it
//     happens; a single backward walk then yields all partial derivatives at
//     once. A HessianTape additionally carries second-order local
//     derivatives and yields the full Hessian.
//   - Forward mode. Dual numbers propagate one first derivative through
//     ordinary arithmetic. HyperDual numbers carry two seed directions and
//     the mixed second derivative, giving exact Hessian entries.
//   - Drivers. Gradient, Jacobian, Hessian, Divergence, Curl, Laplacian and
//     related helpers wrap seeding and accumulation so callers never touch
//     tape or dual plumbing directly.
//
// # Basic Usage
//
// Reverse mode, for f(x, y) = x²y + sin(y) at (2, 0):
//
//	tape := autodiff.NewGradientTape[scalar.Real]()
//	v := tape.CreateVariables(2, 0)
//	x, y := v[0], v[1]
//	f := tape.Add(tape.Mul(tape.Mul(x, x), y), tape.Sin(y))
//	grad := tape.ReverseAccumulateFrom(f) // [0, 5]
//
// Forward mode, for d(x·sin x)/dx at 1.2:
//
//	d := autodiff.Derivative(func(x autodiff.Dual[scalar.Real]) autodiff.Dual[scalar.Real] {
//	    return x.Mul(x.Sin())
//	}, scalar.Real(1.2))
//
// # Tapes and Goroutines
//
// A tape is owned by one goroutine and carries no internal locking. The
// parallel drivers fan independent function evaluations out across workers;
// each evaluation gets its own tape or its own dual seed, so nothing is
// shared. Reverse mode pays one function evaluation for the whole gradient
// and is the right choice for n inputs and one output; forward mode costs
// one evaluation per seed direction and wins for very few inputs or when a
// directional derivative is all that is needed.
package autodiff
