package diffgeo

import (
	"fmt"

	"github.com/ricci-go/ricci/internal/autodiff"
	"github.com/ricci-go/ricci/internal/linalg"
	"github.com/ricci-go/ricci/internal/scalar"
)

// ScalarField is a recorded scalar function of the coordinates. Like
// metric components, a field must be pure and must not create its own
// variables.
type ScalarField[T scalar.Number[T]] func(rec autodiff.Recorder[T], x []autodiff.Variable[T]) autodiff.Variable[T]

// Evaluate returns the field value at x without recording anything.
func (f ScalarField[T]) Evaluate(x []T) T {
	tape := autodiff.NewGradientTape[T]()
	defer tape.Suspend()()
	return f(tape, tape.CreateVariables(x...)).Value()
}

// Gradient returns the coordinate gradient ∂ᵢf at x.
func (f ScalarField[T]) Gradient(x []T) linalg.Vector[T] {
	return linalg.VectorOf(autodiff.Gradient(f, x)...)
}

// Hessian returns the coordinate Hessian ∂ᵢ∂ⱼf at x.
func (f ScalarField[T]) Hessian(x []T) linalg.Matrix[T] {
	rows := autodiff.Hessian(f, x)
	out := linalg.NewMatrix[T](len(x))
	for i, row := range rows {
		for j, v := range row {
			out.Set(i, j, v)
		}
	}
	return out
}

// VectorField is a recorded vector-valued function of the coordinates
// with one component per coordinate.
type VectorField[T scalar.Number[T]] func(rec autodiff.Recorder[T], x []autodiff.Variable[T]) []autodiff.Variable[T]

// Evaluate returns the field components at x without recording.
func (f VectorField[T]) Evaluate(x []T) linalg.Vector[T] {
	tape := autodiff.NewGradientTape[T]()
	defer tape.Suspend()()
	ys := f(tape, tape.CreateVariables(x...))
	f.checkComponents(len(ys), len(x))
	out := linalg.NewVector[T](len(x))
	for i, y := range ys {
		out.Set(i, y.Value())
	}
	return out
}

// Jacobian returns Jᵢⱼ = ∂ⱼfᵢ at x, rows indexed by component.
func (f VectorField[T]) Jacobian(x []T) linalg.Matrix[T] {
	rows := autodiff.Jacobian(f, x)
	f.checkComponents(len(rows), len(x))
	out := linalg.NewMatrix[T](len(x))
	for i, row := range rows {
		for j, v := range row {
			out.Set(i, j, v)
		}
	}
	return out
}

func (VectorField[T]) checkComponents(got, want int) {
	if got != want {
		panic(fmt.Sprintf("vector field has %d components at a %d-dimensional point", got, want))
	}
}

// LaplaceBeltrami returns the Laplace-Beltrami operator applied to f at
// x, Δf = g^ij(∂ᵢ∂ⱼf − Γ^k_ij ∂ₖf). On a Euclidean metric this reduces
// to the trace of the coordinate Hessian.
func LaplaceBeltrami[T scalar.Number[T]](metric *MetricField[T], f ScalarField[T], x []T) T {
	ginv := metric.Evaluate(x).Inverse()
	gamma := ChristoffelSecondKind(metric, x)
	grad := f.Gradient(x)
	hess := f.Hessian(x)

	n := len(x)
	var sum T
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			term := hess.At(i, j)
			for k := 0; k < n; k++ {
				term = term.Sub(gamma.At(k, i, j).Mul(grad.At(k)))
			}
			sum = sum.Add(ginv.At(i, j).Mul(term))
		}
	}
	return sum
}
