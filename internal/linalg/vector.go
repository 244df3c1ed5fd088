// Package linalg provides small dense containers for the coordinate
// dimensions the library works in, two through four. Vectors, matrices,
// and rank-3/4 tensors are value types over fixed backing arrays; no
// operation allocates on the heap.
//
// Numeric degeneracy (singular inversion, NaN operands) propagates as
// all-NaN results rather than panicking. Index misuse and dimension
// mismatches are programmer errors and panic.
package linalg

import (
	"fmt"
	"strings"

	"github.com/ricci-go/ricci/internal/scalar"
)

// Supported coordinate dimensions.
const (
	MinDim = 2
	MaxDim = 4
)

func checkDim(n int) {
	if n < MinDim || n > MaxDim {
		panic(fmt.Sprintf("dimension %d out of range [%d, %d]", n, MinDim, MaxDim))
	}
}

func checkSameDim(a, b int) {
	if a != b {
		panic(fmt.Sprintf("dimension mismatch: %d vs %d", a, b))
	}
}

// Vector is a dense coordinate vector of dimension 2 to 4.
type Vector[T scalar.Algebraic[T]] struct {
	n int
	e [MaxDim]T
}

// NewVector returns a zero vector of the given dimension.
func NewVector[T scalar.Algebraic[T]](n int) Vector[T] {
	checkDim(n)
	return Vector[T]{n: n}
}

// VectorOf builds a vector from its components.
func VectorOf[T scalar.Algebraic[T]](elems ...T) Vector[T] {
	v := NewVector[T](len(elems))
	copy(v.e[:], elems)
	return v
}

// Dim returns the vector's dimension.
func (v Vector[T]) Dim() int {
	return v.n
}

// At returns component i.
func (v Vector[T]) At(i int) T {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("vector index %d out of range for dimension %d", i, v.n))
	}
	return v.e[i]
}

// Set assigns component i.
func (v *Vector[T]) Set(i int, x T) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("vector index %d out of range for dimension %d", i, v.n))
	}
	v.e[i] = x
}

// Add returns v + w.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	checkSameDim(v.n, w.n)
	out := Vector[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.e[i] = v.e[i].Add(w.e[i])
	}
	return out
}

// Sub returns v - w.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	checkSameDim(v.n, w.n)
	out := Vector[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.e[i] = v.e[i].Sub(w.e[i])
	}
	return out
}

// Scale returns c·v.
func (v Vector[T]) Scale(c T) Vector[T] {
	out := Vector[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.e[i] = v.e[i].Mul(c)
	}
	return out
}

// Neg returns -v.
func (v Vector[T]) Neg() Vector[T] {
	out := Vector[T]{n: v.n}
	for i := 0; i < v.n; i++ {
		out.e[i] = v.e[i].Neg()
	}
	return out
}

// InnerProduct returns Σᵢ vᵢwᵢ. The product is bilinear; complex
// components are not conjugated, so it contracts indices rather than
// defining a Hermitian norm.
func (v Vector[T]) InnerProduct(w Vector[T]) T {
	checkSameDim(v.n, w.n)
	var sum T
	for i := 0; i < v.n; i++ {
		sum = sum.Add(v.e[i].Mul(w.e[i]))
	}
	return sum
}

// Cross returns the cross product v × w. Both vectors must be
// three-dimensional.
func (v Vector[T]) Cross(w Vector[T]) Vector[T] {
	if v.n != 3 || w.n != 3 {
		panic(fmt.Sprintf("cross product requires dimension 3, got %d and %d", v.n, w.n))
	}
	return VectorOf(
		v.e[1].Mul(w.e[2]).Sub(v.e[2].Mul(w.e[1])),
		v.e[2].Mul(w.e[0]).Sub(v.e[0].Mul(w.e[2])),
		v.e[0].Mul(w.e[1]).Sub(v.e[1].Mul(w.e[0])),
	)
}

// Equal reports componentwise equality. Dimensions must match; NaN
// components compare unequal.
func (v Vector[T]) Equal(w Vector[T]) bool {
	if v.n != w.n {
		return false
	}
	for i := 0; i < v.n; i++ {
		if !v.e[i].Eq(w.e[i]) {
			return false
		}
	}
	return true
}

// String formats the vector as (v₀, v₁, ...).
func (v Vector[T]) String() string {
	parts := make([]string, v.n)
	for i := 0; i < v.n; i++ {
		parts[i] = v.e[i].String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
