// Copyright 2025 The Ricci Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package diffgeo

import (
	"github.com/ricci-go/ricci/internal/diffgeo"
	"github.com/ricci-go/ricci/internal/linalg"
	"github.com/ricci-go/ricci/internal/scalar"
)

// Type aliases for the public API.

// Metric is the metric tensor evaluated at a point.
type Metric[T scalar.Number[T]] = diffgeo.Metric[T]

// Component is one recorded coordinate function g_ij of a metric field.
type Component[T scalar.Number[T]] = diffgeo.Component[T]

// MetricField describes the metric tensor as recorded functions of the
// coordinates.
type MetricField[T scalar.Number[T]] = diffgeo.MetricField[T]

// ScalarField is a recorded function from coordinates to one value.
type ScalarField[T scalar.Number[T]] = diffgeo.ScalarField[T]

// VectorField is a recorded function from n coordinates to n components.
type VectorField[T scalar.Number[T]] = diffgeo.VectorField[T]

// GeodesicConfig holds the step size and step count for geodesic
// integration.
type GeodesicConfig = diffgeo.GeodesicConfig

// GeodesicState is a position and velocity pair along a geodesic.
type GeodesicState[T scalar.Number[T]] = diffgeo.GeodesicState[T]

// NewMetric wraps an evaluated component matrix as a metric.
func NewMetric[T scalar.Number[T]](g linalg.Matrix[T]) Metric[T] { return diffgeo.NewMetric(g) }

// Constant returns a component with the fixed value v at every point.
func Constant[T scalar.Number[T]](v float64) Component[T] { return diffgeo.Constant[T](v) }

// NewMetricField returns a metric field of dimension n with every component
// zero. Panics for dimensions outside 2 to 4.
func NewMetricField[T scalar.Number[T]](n int) *MetricField[T] { return diffgeo.NewMetricField[T](n) }

// ChristoffelFirstKind returns Γ_kij of the field at x.
func ChristoffelFirstKind[T scalar.Number[T]](f *MetricField[T], x []T) linalg.Tensor3[T] {
	return diffgeo.ChristoffelFirstKind(f, x)
}

// ChristoffelSecondKind returns Γ^k_ij of the field at x.
func ChristoffelSecondKind[T scalar.Number[T]](f *MetricField[T], x []T) linalg.Tensor3[T] {
	return diffgeo.ChristoffelSecondKind(f, x)
}

// RiemannTensor returns R^ρ_σμν of the field at x, first index
// contravariant.
func RiemannTensor[T scalar.Number[T]](f *MetricField[T], x []T) linalg.Tensor4[T] {
	return diffgeo.RiemannTensor(f, x)
}

// RicciTensor returns R_ij of the field at x.
func RicciTensor[T scalar.Number[T]](f *MetricField[T], x []T) linalg.Matrix[T] {
	return diffgeo.RicciTensor(f, x)
}

// ScalarCurvature returns the Ricci scalar of the field at x.
func ScalarCurvature[T scalar.Number[T]](f *MetricField[T], x []T) T {
	return diffgeo.ScalarCurvature(f, x)
}

// LaplaceBeltrami returns Δf at x with respect to the metric.
func LaplaceBeltrami[T scalar.Number[T]](metric *MetricField[T], f ScalarField[T], x []T) T {
	return diffgeo.LaplaceBeltrami(metric, f, x)
}

// LeviCivita3 returns the rank-3 Levi-Civita symbol with ε₀₁₂ = 1.
func LeviCivita3[T scalar.Algebraic[T]]() linalg.Tensor3[T] { return diffgeo.LeviCivita3[T]() }

// LeviCivita4 returns the rank-4 Levi-Civita symbol with ε₀₁₂₃ = 1.
func LeviCivita4[T scalar.Algebraic[T]]() linalg.Tensor4[T] { return diffgeo.LeviCivita4[T]() }

// DefaultGeodesicConfig returns the default integration parameters.
func DefaultGeodesicConfig() GeodesicConfig { return diffgeo.DefaultGeodesicConfig() }

// Geodesic integrates the geodesic equation from the initial state and
// returns the trajectory, initial state first.
func Geodesic[T scalar.Number[T]](f *MetricField[T], initial GeodesicState[T], cfg GeodesicConfig) []GeodesicState[T] {
	return diffgeo.Geodesic(f, initial, cfg)
}

// Built-in metric fields.

// EuclideanMetric returns the flat metric of dimension n in Cartesian
// coordinates.
func EuclideanMetric[T scalar.Number[T]](n int) *MetricField[T] { return diffgeo.EuclideanMetric[T](n) }

// PolarMetric returns the flat plane metric in polar coordinates (r, θ).
func PolarMetric[T scalar.Number[T]]() *MetricField[T] { return diffgeo.PolarMetric[T]() }

// SphericalMetric returns the flat space metric in spherical coordinates
// (r, θ, φ).
func SphericalMetric[T scalar.Number[T]]() *MetricField[T] { return diffgeo.SphericalMetric[T]() }

// SphereMetric returns the metric of the two-sphere of the given radius in
// angular coordinates (θ, φ).
func SphereMetric[T scalar.Number[T]](radius float64) *MetricField[T] {
	return diffgeo.SphereMetric[T](radius)
}

// SchwarzschildMetric returns the Schwarzschild metric with the given
// Schwarzschild radius in coordinates (t, r, θ, φ).
func SchwarzschildMetric[T scalar.Number[T]](rs float64) *MetricField[T] {
	return diffgeo.SchwarzschildMetric[T](rs)
}
