package autodiff

import (
	"fmt"

	"github.com/ricci-go/ricci/internal/parallel"
	"github.com/ricci-go/ricci/internal/scalar"
)

// Drivers for the common derivative shapes. Forward-mode drivers
// construct seeded Dual or HyperDual arguments, evaluate the supplied
// function once per seed, and collect derivative components; reverse-mode
// drivers record the function once on a fresh tape and accumulate.
// Functions passed to forward-mode drivers must be pure: the parallel
// variants evaluate them concurrently.

// Derivative computes f'(x) from a single dual evaluation.
func Derivative[T scalar.Number[T]](f func(Dual[T]) Dual[T], x T) T {
	return f(NewDual(x).WithSeed(scalar.One[T]())).D1()
}

// SecondDerivative computes f''(x) from a single hyper-dual evaluation
// with both seed slots on the same direction.
func SecondDerivative[T scalar.Number[T]](f func(HyperDual[T]) HyperDual[T], x T) T {
	one := scalar.One[T]()
	return f(NewHyperDual(x).WithSeed(one, one)).D3()
}

// dualArgs lifts a point into dual arguments with direction seed seeded
// to one. A negative seed leaves every derivative component zero.
func dualArgs[T scalar.Number[T]](x []T, seed int) []Dual[T] {
	args := make([]Dual[T], len(x))
	for i, v := range x {
		args[i] = NewDual(v)
	}
	if seed >= 0 {
		args[seed] = args[seed].WithSeed(scalar.One[T]())
	}
	return args
}

// hyperArgs lifts a point into hyper-dual arguments with the first seed
// slot on direction i and the second on direction j.
func hyperArgs[T scalar.Number[T]](x []T, i, j int) []HyperDual[T] {
	one := scalar.One[T]()
	var zero T
	args := make([]HyperDual[T], len(x))
	for k, v := range x {
		var s1, s2 T
		if k == i {
			s1 = one
		} else {
			s1 = zero
		}
		if k == j {
			s2 = one
		} else {
			s2 = zero
		}
		args[k] = NewHyperDual(v).WithSeed(s1, s2)
	}
	return args
}

// ForwardGradient computes ∇f at x with one dual evaluation per
// coordinate direction.
func ForwardGradient[T scalar.Number[T]](f func([]Dual[T]) Dual[T], x []T) []T {
	grad := make([]T, len(x))
	for i := range x {
		grad[i] = f(dualArgs(x, i)).D1()
	}
	return grad
}

// ParallelForwardGradient is ForwardGradient with seed directions fanned
// out across goroutines.
func ParallelForwardGradient[T scalar.Number[T]](f func([]Dual[T]) Dual[T], x []T, cfg parallel.Config) []T {
	grad := make([]T, len(x))
	parallel.For(len(x), func(i int) {
		grad[i] = f(dualArgs(x, i)).D1()
	}, cfg)
	return grad
}

// DirectionalDerivative computes ∇f·v at x from a single dual
// evaluation seeded with the direction v.
func DirectionalDerivative[T scalar.Number[T]](f func([]Dual[T]) Dual[T], x, v []T) T {
	if len(v) != len(x) {
		panic(fmt.Sprintf("autodiff: direction has %d components, point has %d", len(v), len(x)))
	}
	args := make([]Dual[T], len(x))
	for i := range x {
		args[i] = NewDual(x[i]).WithSeed(v[i])
	}
	return f(args).D1()
}

// ForwardHessian computes the Hessian of f at x from one hyper-dual
// evaluation per unordered direction pair, n(n+1)/2 in total. The lower
// triangle is mirrored from the computed upper triangle.
func ForwardHessian[T scalar.Number[T]](f func([]HyperDual[T]) HyperDual[T], x []T) [][]T {
	hess := newSquare[T](len(x))
	for i := 0; i < len(x); i++ {
		for j := i; j < len(x); j++ {
			hess[i][j] = f(hyperArgs(x, i, j)).D3()
		}
	}
	mirrorLower(hess)
	return hess
}

// ParallelForwardHessian is ForwardHessian with the direction pairs
// fanned out across goroutines.
func ParallelForwardHessian[T scalar.Number[T]](f func([]HyperDual[T]) HyperDual[T], x []T, cfg parallel.Config) [][]T {
	hess := newSquare[T](len(x))
	parallel.ForPairs(len(x), func(i, j int) {
		hess[i][j] = f(hyperArgs(x, i, j)).D3()
	}, cfg)
	mirrorLower(hess)
	return hess
}

// ForwardHessianDiagonal computes only the diagonal second derivatives,
// one hyper-dual evaluation per coordinate.
func ForwardHessianDiagonal[T scalar.Number[T]](f func([]HyperDual[T]) HyperDual[T], x []T) []T {
	diag := make([]T, len(x))
	for i := range x {
		diag[i] = f(hyperArgs(x, i, i)).D3()
	}
	return diag
}

func newSquare[T scalar.Number[T]](n int) [][]T {
	m := make([][]T, n)
	for i := range m {
		m[i] = make([]T, n)
	}
	return m
}

func mirrorLower[T scalar.Number[T]](m [][]T) {
	for i := range m {
		for j := 0; j < i; j++ {
			m[i][j] = m[j][i]
		}
	}
}

// Gradient computes ∇f at x by recording f once on a fresh gradient
// tape and reverse accumulating.
func Gradient[T scalar.Number[T]](f func(Recorder[T], []Variable[T]) Variable[T], x []T) []T {
	tape := NewGradientTape[T]()
	y := f(tape, tape.CreateVariables(x...))
	return tape.ReverseAccumulateFrom(y)
}

// Hessian computes the full Hessian of f at x by recording f once on a
// fresh Hessian tape and reverse accumulating.
func Hessian[T scalar.Number[T]](f func(Recorder[T], []Variable[T]) Variable[T], x []T) [][]T {
	tape := NewHessianTape[T]()
	y := f(tape, tape.CreateVariables(x...))
	return tape.ReverseAccumulateHessianFrom(y)
}

// Jacobian computes J[i][j] = ∂fᵢ/∂xⱼ for a vector-valued f by
// recording once and accumulating from each output in turn.
func Jacobian[T scalar.Number[T]](f func(Recorder[T], []Variable[T]) []Variable[T], x []T) [][]T {
	tape := NewGradientTape[T]()
	ys := f(tape, tape.CreateVariables(x...))
	jac := make([][]T, len(ys))
	for i, y := range ys {
		jac[i] = tape.ReverseAccumulateFrom(y)
	}
	return jac
}

// JacobianTranspose computes the transpose of Jacobian, Jᵀ[i][j] = ∂fⱼ/∂xᵢ.
func JacobianTranspose[T scalar.Number[T]](f func(Recorder[T], []Variable[T]) []Variable[T], x []T) [][]T {
	jac := Jacobian(f, x)
	if len(jac) == 0 {
		return nil
	}
	jt := make([][]T, len(jac[0]))
	for i := range jt {
		jt[i] = make([]T, len(jac))
		for j := range jac {
			jt[i][j] = jac[j][i]
		}
	}
	return jt
}

// VectorJacobianProduct computes vᵀJ, the gradient of v·f, by seeding
// each output's accumulation with its weight and summing the rows.
func VectorJacobianProduct[T scalar.Number[T]](f func(Recorder[T], []Variable[T]) []Variable[T], x, v []T) []T {
	tape := NewGradientTape[T]()
	ys := f(tape, tape.CreateVariables(x...))
	if len(v) != len(ys) {
		panic(fmt.Sprintf("autodiff: weight vector has %d components, function has %d outputs", len(v), len(ys)))
	}
	out := make([]T, len(x))
	for i, y := range ys {
		row := tape.ReverseAccumulateSeeded(y, v[i])
		for j := range out {
			out[j] = out[j].Add(row[j])
		}
	}
	return out
}

// JacobianVectorProduct computes Jv from a single dual evaluation
// seeded with the direction v, one derivative component per output.
func JacobianVectorProduct[T scalar.Number[T]](f func([]Dual[T]) []Dual[T], x, v []T) []T {
	if len(v) != len(x) {
		panic(fmt.Sprintf("autodiff: direction has %d components, point has %d", len(v), len(x)))
	}
	args := make([]Dual[T], len(x))
	for i := range x {
		args[i] = NewDual(x[i]).WithSeed(v[i])
	}
	ys := f(args)
	out := make([]T, len(ys))
	for i, y := range ys {
		out[i] = y.D1()
	}
	return out
}

// Divergence computes ∇·f = Σᵢ ∂fᵢ/∂xᵢ with one dual evaluation per
// coordinate. The field must have as many components as the point.
func Divergence[T scalar.Number[T]](f func([]Dual[T]) []Dual[T], x []T) T {
	var div T
	for i := range x {
		ys := f(dualArgs(x, i))
		if len(ys) != len(x) {
			panic(fmt.Sprintf("autodiff: divergence of a field with %d components at a %d-dimensional point", len(ys), len(x)))
		}
		div = div.Add(ys[i].D1())
	}
	return div
}

// Curl computes ∇×f for a three-dimensional vector field from three
// dual evaluations, one per coordinate direction.
func Curl[T scalar.Number[T]](f func([]Dual[T]) []Dual[T], x []T) []T {
	if len(x) != 3 {
		panic(fmt.Sprintf("autodiff: curl requires a 3-dimensional point, got %d", len(x)))
	}
	// cols[j][i] = ∂fᵢ/∂xⱼ.
	var cols [3][]Dual[T]
	for j := 0; j < 3; j++ {
		cols[j] = f(dualArgs(x, j))
		if len(cols[j]) != 3 {
			panic(fmt.Sprintf("autodiff: curl of a field with %d components", len(cols[j])))
		}
	}
	return []T{
		cols[1][2].D1().Sub(cols[2][1].D1()),
		cols[2][0].D1().Sub(cols[0][2].D1()),
		cols[0][1].D1().Sub(cols[1][0].D1()),
	}
}

// Laplacian computes ∇²f = Σᵢ ∂²f/∂xᵢ², the trace of the Hessian, with
// one hyper-dual evaluation per coordinate.
func Laplacian[T scalar.Number[T]](f func([]HyperDual[T]) HyperDual[T], x []T) T {
	var lap T
	for i := range x {
		lap = lap.Add(f(hyperArgs(x, i, i)).D3())
	}
	return lap
}
