// Package diffgeo computes differential-geometric objects on
// low-dimensional coordinate patches: metric tensors and their
// derivatives, Christoffel symbols, curvature tensors, field operators,
// and geodesic flow.
//
// Every quantity is built by driving the automatic differentiation
// engine componentwise. Metric and field components are functions
// written against autodiff.Recorder, so the same component serves plain
// evaluation, gradient tapes, and Hessian tapes. The package never
// inspects tape internals; it only records and accumulates.
package diffgeo

import (
	"fmt"

	"github.com/ricci-go/ricci/internal/autodiff"
	"github.com/ricci-go/ricci/internal/linalg"
	"github.com/ricci-go/ricci/internal/scalar"
)

// Metric is a metric tensor evaluated at a point: a symmetric matrix of
// components g_ij together with the index gymnastics it induces.
type Metric[T scalar.Number[T]] struct {
	g linalg.Matrix[T]
}

// NewMetric wraps evaluated metric components. The matrix is taken as
// given; symmetry is the caller's responsibility.
func NewMetric[T scalar.Number[T]](g linalg.Matrix[T]) Metric[T] {
	return Metric[T]{g: g}
}

// Dim returns the coordinate dimension.
func (m Metric[T]) Dim() int {
	return m.g.Dim()
}

// At returns the component g_ij.
func (m Metric[T]) At(i, j int) T {
	return m.g.At(i, j)
}

// Components returns the component matrix g_ij.
func (m Metric[T]) Components() linalg.Matrix[T] {
	return m.g
}

// Det returns the metric determinant.
func (m Metric[T]) Det() T {
	return m.g.Det()
}

// Inverse returns the inverse components g^ij, or the all-NaN sentinel
// when the metric is degenerate.
func (m Metric[T]) Inverse() linalg.Matrix[T] {
	return m.g.Inverse()
}

// IsDegenerate reports whether the metric cannot be inverted.
func (m Metric[T]) IsDegenerate() bool {
	return m.g.Inverse().IsNaM()
}

// Lower maps a contravariant vector to its covariant image, vᵢ = g_ij vʲ.
func (m Metric[T]) Lower(v linalg.Vector[T]) linalg.Vector[T] {
	return m.g.MatVec(v)
}

// Raise maps a covariant vector to its contravariant image, vⁱ = gⁱʲ vⱼ.
// A degenerate metric yields all-NaN components.
func (m Metric[T]) Raise(v linalg.Vector[T]) linalg.Vector[T] {
	return m.g.Inverse().MatVec(v)
}

// Component is one metric or field component as a recorded function of
// the coordinates. Components must be pure and must not create their
// own variables; all inputs arrive as the coordinate variables.
type Component[T scalar.Number[T]] func(rec autodiff.Recorder[T], x []autodiff.Variable[T]) autodiff.Variable[T]

// Constant returns a component with a fixed value, recorded so that all
// of its derivatives vanish.
func Constant[T scalar.Number[T]](v float64) Component[T] {
	var zero T
	return func(rec autodiff.Recorder[T], x []autodiff.Variable[T]) autodiff.Variable[T] {
		return rec.AddConstant(rec.MulConstant(x[0], zero), scalar.FromReal[T](v))
	}
}

// MetricField is a metric tensor field: an n×n grid of symmetric
// component functions over the coordinates. Unset components are
// identically zero.
type MetricField[T scalar.Number[T]] struct {
	n    int
	comp [linalg.MaxDim][linalg.MaxDim]Component[T]
}

// NewMetricField returns a metric field of the given dimension with all
// components zero.
func NewMetricField[T scalar.Number[T]](n int) *MetricField[T] {
	if n < linalg.MinDim || n > linalg.MaxDim {
		panic(fmt.Sprintf("dimension %d out of range [%d, %d]", n, linalg.MinDim, linalg.MaxDim))
	}
	return &MetricField[T]{n: n}
}

// Dim returns the coordinate dimension.
func (f *MetricField[T]) Dim() int {
	return f.n
}

// SetComponent assigns g_ij = g_ji = c. The metric is symmetric, so the
// mirrored component is assigned as well.
func (f *MetricField[T]) SetComponent(i, j int, c Component[T]) {
	if i < 0 || i >= f.n || j < 0 || j >= f.n {
		panic(fmt.Sprintf("metric component (%d, %d) out of range for dimension %d", i, j, f.n))
	}
	f.comp[i][j] = c
	f.comp[j][i] = c
}

// checkPoint validates that a point has one value per coordinate.
func (f *MetricField[T]) checkPoint(x []T) {
	if len(x) != f.n {
		panic(fmt.Sprintf("point has %d coordinates, metric field has %d", len(x), f.n))
	}
}

// Evaluate returns the metric at x. Components run on a suspended tape,
// so nothing is recorded.
func (f *MetricField[T]) Evaluate(x []T) Metric[T] {
	f.checkPoint(x)
	tape := autodiff.NewGradientTape[T]()
	defer tape.Suspend()()
	vars := tape.CreateVariables(x...)

	g := linalg.NewMatrix[T](f.n)
	for i := 0; i < f.n; i++ {
		for j := i; j < f.n; j++ {
			if c := f.comp[i][j]; c != nil {
				v := c(tape, vars).Value()
				g.Set(i, j, v)
				g.Set(j, i, v)
			}
		}
	}
	return NewMetric(g)
}

// Derivatives returns the coordinate derivatives of the metric as a
// rank-3 tensor with the derivative index first: At(k, i, j) = ∂ₖg_ij.
// Each independent component is recorded once on a fresh gradient tape
// and reverse accumulated.
func (f *MetricField[T]) Derivatives(x []T) linalg.Tensor3[T] {
	f.checkPoint(x)
	out := linalg.NewTensor3[T](f.n)
	for i := 0; i < f.n; i++ {
		for j := i; j < f.n; j++ {
			c := f.comp[i][j]
			if c == nil {
				continue
			}
			tape := autodiff.NewGradientTape[T]()
			y := c(tape, tape.CreateVariables(x...))
			grad := tape.ReverseAccumulateFrom(y)
			for k := 0; k < f.n; k++ {
				out.Set(k, i, j, grad[k])
				out.Set(k, j, i, grad[k])
			}
		}
	}
	return out
}

// SecondDerivatives returns the second coordinate derivatives of the
// metric as a rank-4 tensor with the derivative indices first:
// At(k, l, i, j) = ∂ₖ∂ₗg_ij. Each independent component is recorded on
// a fresh Hessian tape.
func (f *MetricField[T]) SecondDerivatives(x []T) linalg.Tensor4[T] {
	f.checkPoint(x)
	out := linalg.NewTensor4[T](f.n)
	for i := 0; i < f.n; i++ {
		for j := i; j < f.n; j++ {
			c := f.comp[i][j]
			if c == nil {
				continue
			}
			tape := autodiff.NewHessianTape[T]()
			y := c(tape, tape.CreateVariables(x...))
			hess := tape.ReverseAccumulateHessianFrom(y)
			for k := 0; k < f.n; k++ {
				for l := 0; l < f.n; l++ {
					out.Set(k, l, i, j, hess[k][l])
					out.Set(k, l, j, i, hess[k][l])
				}
			}
		}
	}
	return out
}
