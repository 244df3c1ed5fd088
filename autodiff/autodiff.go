// Copyright 2025 The Ricci Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff

import (
	"github.com/ricci-go/ricci/internal/autodiff"
	"github.com/ricci-go/ricci/internal/parallel"
	"github.com/ricci-go/ricci/internal/scalar"
)

// Type aliases for the public API.

// Variable is a value recorded on a tape, identified by its node index.
type Variable[T scalar.Number[T]] = autodiff.Variable[T]

// Recorder is the operation surface shared by GradientTape and HessianTape.
// Functions written against Recorder differentiate to first order on either
// tape and to second order on a HessianTape.
type Recorder[T scalar.Number[T]] = autodiff.Recorder[T]

// GradientTape records first-order operations for reverse-mode
// differentiation.
type GradientTape[T scalar.Number[T]] = autodiff.GradientTape[T]

// HessianTape records first- and second-order operations for reverse-mode
// differentiation up to the full Hessian.
type HessianTape[T scalar.Number[T]] = autodiff.HessianTape[T]

// Dual is a forward-mode number carrying a value and one first derivative.
type Dual[T scalar.Number[T]] = autodiff.Dual[T]

// HyperDual is a forward-mode number carrying a value, two first-derivative
// seeds and the mixed second derivative.
type HyperDual[T scalar.Number[T]] = autodiff.HyperDual[T]

// ParallelConfig controls worker fan-out for the parallel drivers.
type ParallelConfig = parallel.Config

// NewGradientTape creates an empty gradient tape with tracking enabled.
//
// Example:
//
//	tape := autodiff.NewGradientTape[scalar.Real]()
//	x := tape.CreateVariable(1.5)
//	y := tape.Mul(x, tape.Sin(x))
//	grad := tape.ReverseAccumulateFrom(y)
func NewGradientTape[T scalar.Number[T]]() *GradientTape[T] {
	return autodiff.NewGradientTape[T]()
}

// NewHessianTape creates an empty Hessian tape with tracking enabled.
func NewHessianTape[T scalar.Number[T]]() *HessianTape[T] {
	return autodiff.NewHessianTape[T]()
}

// NewDual returns a dual number with the given value and a zero derivative
// part. Use WithSeed to mark it as a differentiation variable.
func NewDual[T scalar.Number[T]](value T) Dual[T] {
	return autodiff.NewDual(value)
}

// NewHyperDual returns a hyper-dual number with the given value and zero
// seed parts. Use WithSeed to mark it as a differentiation variable.
func NewHyperDual[T scalar.Number[T]](value T) HyperDual[T] {
	return autodiff.NewHyperDual(value)
}

// DefaultParallelConfig returns a fan-out configuration sized to the CPU
// count.
func DefaultParallelConfig() ParallelConfig { return parallel.DefaultConfig() }

// SequentialConfig returns a configuration that disables goroutine fan-out.
func SequentialConfig() ParallelConfig { return parallel.Sequential() }

// Derivative returns df/dx at x using a dual number.
func Derivative[T scalar.Number[T]](f func(Dual[T]) Dual[T], x T) T {
	return autodiff.Derivative(f, x)
}

// SecondDerivative returns d²f/dx² at x using a hyper-dual number.
func SecondDerivative[T scalar.Number[T]](f func(HyperDual[T]) HyperDual[T], x T) T {
	return autodiff.SecondDerivative(f, x)
}

// ForwardGradient returns ∇f at x, one dual evaluation per coordinate.
func ForwardGradient[T scalar.Number[T]](f func([]Dual[T]) Dual[T], x []T) []T {
	return autodiff.ForwardGradient(f, x)
}

// ParallelForwardGradient is ForwardGradient with the seed directions spread
// across worker goroutines.
func ParallelForwardGradient[T scalar.Number[T]](f func([]Dual[T]) Dual[T], x []T, cfg ParallelConfig) []T {
	return autodiff.ParallelForwardGradient(f, x, cfg)
}

// DirectionalDerivative returns ∇f·v at x in a single dual evaluation.
// Panics if x and v differ in length.
func DirectionalDerivative[T scalar.Number[T]](f func([]Dual[T]) Dual[T], x, v []T) T {
	return autodiff.DirectionalDerivative(f, x, v)
}

// ForwardHessian returns the full Hessian of f at x, one hyper-dual
// evaluation per unordered index pair. The result is exactly symmetric.
func ForwardHessian[T scalar.Number[T]](f func([]HyperDual[T]) HyperDual[T], x []T) [][]T {
	return autodiff.ForwardHessian(f, x)
}

// ParallelForwardHessian is ForwardHessian with the index pairs spread
// across worker goroutines.
func ParallelForwardHessian[T scalar.Number[T]](f func([]HyperDual[T]) HyperDual[T], x []T, cfg ParallelConfig) [][]T {
	return autodiff.ParallelForwardHessian(f, x, cfg)
}

// ForwardHessianDiagonal returns only the diagonal of the Hessian of f at x.
func ForwardHessianDiagonal[T scalar.Number[T]](f func([]HyperDual[T]) HyperDual[T], x []T) []T {
	return autodiff.ForwardHessianDiagonal(f, x)
}

// Gradient returns ∇f at x using a gradient tape and a single reverse pass.
func Gradient[T scalar.Number[T]](f func(Recorder[T], []Variable[T]) Variable[T], x []T) []T {
	return autodiff.Gradient(f, x)
}

// Hessian returns the Hessian of f at x using a Hessian tape.
func Hessian[T scalar.Number[T]](f func(Recorder[T], []Variable[T]) Variable[T], x []T) [][]T {
	return autodiff.Hessian(f, x)
}

// Jacobian returns Jᵢⱼ = ∂fᵢ/∂xⱼ at x, one reverse pass per output.
func Jacobian[T scalar.Number[T]](f func(Recorder[T], []Variable[T]) []Variable[T], x []T) [][]T {
	return autodiff.Jacobian(f, x)
}

// JacobianTranspose returns the transpose of the Jacobian of f at x.
func JacobianTranspose[T scalar.Number[T]](f func(Recorder[T], []Variable[T]) []Variable[T], x []T) [][]T {
	return autodiff.JacobianTranspose(f, x)
}

// VectorJacobianProduct returns vᵀJ at x without materializing the Jacobian.
// Panics if v and the output of f differ in length.
func VectorJacobianProduct[T scalar.Number[T]](f func(Recorder[T], []Variable[T]) []Variable[T], x, v []T) []T {
	return autodiff.VectorJacobianProduct(f, x, v)
}

// JacobianVectorProduct returns Jv at x in a single dual evaluation.
// Panics if x and v differ in length.
func JacobianVectorProduct[T scalar.Number[T]](f func([]Dual[T]) []Dual[T], x, v []T) []T {
	return autodiff.JacobianVectorProduct(f, x, v)
}

// Divergence returns ∇·f at x. Panics if f does not map n inputs to n
// outputs.
func Divergence[T scalar.Number[T]](f func([]Dual[T]) []Dual[T], x []T) T {
	return autodiff.Divergence(f, x)
}

// Curl returns ∇×f at x for a three-dimensional vector field.
func Curl[T scalar.Number[T]](f func([]Dual[T]) []Dual[T], x []T) []T {
	return autodiff.Curl(f, x)
}

// Laplacian returns ∇²f at x, the trace of the Hessian.
func Laplacian[T scalar.Number[T]](f func([]HyperDual[T]) HyperDual[T], x []T) T {
	return autodiff.Laplacian(f, x)
}
