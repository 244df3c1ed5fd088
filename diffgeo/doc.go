// Copyright 2025 The Ricci Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package diffgeo provides differential geometry on metric manifolds of
// dimension 2 through 4.
//
// # Overview
//
// A MetricField describes the metric tensor componentwise, each component a
// coordinate function written against the autodiff recorder interface. All
// derivatives of the metric are computed by automatic differentiation,
// never by finite differences, so Christoffel symbols and curvature come
// out exact to machine precision.
//
// On top of the metric field:
//   - Christoffel symbols of the first and second kind
//   - Riemann and Ricci tensors and the scalar curvature
//   - the Laplace-Beltrami operator on scalar fields
//   - geodesic integration with a fixed-step fourth-order Runge-Kutta
//
// Scalar and vector fields get exact gradients, Hessians and Jacobians via
// the same machinery.
//
// # Basic Usage
//
//	sphere := diffgeo.SphereMetric[scalar.Real](1)
//	x := []scalar.Real{math.Pi / 3, 0} // (θ, φ)
//	R := diffgeo.ScalarCurvature(sphere, x) // 2 on the unit sphere
//
// A custom metric assigns components one at a time; unset components are
// zero and assignment mirrors the symmetric slot:
//
//	g := diffgeo.NewMetricField[scalar.Real](2)
//	g.SetComponent(0, 0, diffgeo.Constant[scalar.Real](1))
//	g.SetComponent(1, 1, func(rec autodiff.Recorder[scalar.Real], x []autodiff.Variable[scalar.Real]) autodiff.Variable[scalar.Real] {
//	    return rec.Mul(x[0], x[0]) // g_θθ = r²
//	})
//
// # Degeneracy
//
// Where the metric fails to be invertible (a coordinate singularity or a
// genuinely degenerate point) its inverse is the NaM sentinel and every
// quantity derived from it carries NaN. Nothing panics on numeric
// degeneracy; callers test with Metric.IsDegenerate.
package diffgeo
