package diffgeo

import (
	"github.com/ricci-go/ricci/internal/autodiff"
	"github.com/ricci-go/ricci/internal/scalar"
)

// Canonical metric fields, used by the tests and the demo command.

// EuclideanMetric returns the flat metric δᵢⱼ in Cartesian coordinates.
func EuclideanMetric[T scalar.Number[T]](n int) *MetricField[T] {
	f := NewMetricField[T](n)
	for i := 0; i < n; i++ {
		f.SetComponent(i, i, Constant[T](1))
	}
	return f
}

// PolarMetric returns the plane metric in polar coordinates (r, θ):
// ds² = dr² + r²dθ².
func PolarMetric[T scalar.Number[T]]() *MetricField[T] {
	f := NewMetricField[T](2)
	f.SetComponent(0, 0, Constant[T](1))
	f.SetComponent(1, 1, func(rec autodiff.Recorder[T], x []autodiff.Variable[T]) autodiff.Variable[T] {
		return rec.Mul(x[0], x[0])
	})
	return f
}

// SphericalMetric returns the space metric in spherical coordinates
// (r, θ, φ): ds² = dr² + r²dθ² + r²sin²θdφ².
func SphericalMetric[T scalar.Number[T]]() *MetricField[T] {
	f := NewMetricField[T](3)
	f.SetComponent(0, 0, Constant[T](1))
	f.SetComponent(1, 1, func(rec autodiff.Recorder[T], x []autodiff.Variable[T]) autodiff.Variable[T] {
		return rec.Mul(x[0], x[0])
	})
	f.SetComponent(2, 2, func(rec autodiff.Recorder[T], x []autodiff.Variable[T]) autodiff.Variable[T] {
		rsin := rec.Mul(x[0], rec.Sin(x[1]))
		return rec.Mul(rsin, rsin)
	})
	return f
}

// SphereMetric returns the induced metric on a sphere of the given
// radius in angular coordinates (θ, φ): ds² = R²dθ² + R²sin²θdφ². Its
// scalar curvature is the constant 2/R².
func SphereMetric[T scalar.Number[T]](radius float64) *MetricField[T] {
	r2 := radius * radius
	f := NewMetricField[T](2)
	f.SetComponent(0, 0, Constant[T](r2))
	f.SetComponent(1, 1, func(rec autodiff.Recorder[T], x []autodiff.Variable[T]) autodiff.Variable[T] {
		s := rec.Sin(x[0])
		return rec.MulConstant(rec.Mul(s, s), scalar.FromReal[T](r2))
	})
	return f
}

// SchwarzschildMetric returns the Schwarzschild vacuum metric with the
// given Schwarzschild radius in coordinates (t, r, θ, φ), signature
// (− + + +): g_tt = −(1 − rs/r), g_rr = 1/(1 − rs/r), g_θθ = r²,
// g_φφ = r²sin²θ. The metric degenerates at the horizon r = rs and on
// the axis sin θ = 0.
func SchwarzschildMetric[T scalar.Number[T]](rs float64) *MetricField[T] {
	f := NewMetricField[T](4)
	f.SetComponent(0, 0, func(rec autodiff.Recorder[T], x []autodiff.Variable[T]) autodiff.Variable[T] {
		return rec.SubConstant(rec.ConstantDiv(scalar.FromReal[T](rs), x[1]), scalar.One[T]())
	})
	f.SetComponent(1, 1, func(rec autodiff.Recorder[T], x []autodiff.Variable[T]) autodiff.Variable[T] {
		schw := rec.ConstantSub(scalar.One[T](), rec.ConstantDiv(scalar.FromReal[T](rs), x[1]))
		return rec.ConstantDiv(scalar.One[T](), schw)
	})
	f.SetComponent(2, 2, func(rec autodiff.Recorder[T], x []autodiff.Variable[T]) autodiff.Variable[T] {
		return rec.Mul(x[1], x[1])
	})
	f.SetComponent(3, 3, func(rec autodiff.Recorder[T], x []autodiff.Variable[T]) autodiff.Variable[T] {
		rsin := rec.Mul(x[1], rec.Sin(x[2]))
		return rec.Mul(rsin, rsin)
	})
	return f
}
