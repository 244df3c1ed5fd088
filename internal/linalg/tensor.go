package linalg

import (
	"fmt"

	"github.com/ricci-go/ricci/internal/scalar"
)

// Tensor3 is a dense rank-3 tensor with n components per index, n from
// 2 to 4. Components are stored with the last index fastest.
type Tensor3[T scalar.Algebraic[T]] struct {
	n int
	e [MaxDim * MaxDim * MaxDim]T
}

// NewTensor3 returns a zero rank-3 tensor of the given dimension.
func NewTensor3[T scalar.Algebraic[T]](n int) Tensor3[T] {
	checkDim(n)
	return Tensor3[T]{n: n}
}

// Dim returns the number of components per index.
func (t Tensor3[T]) Dim() int {
	return t.n
}

func (t Tensor3[T]) index(i, j, k int) int {
	if i < 0 || i >= t.n || j < 0 || j >= t.n || k < 0 || k >= t.n {
		panic(fmt.Sprintf("tensor index (%d, %d, %d) out of range for dimension %d", i, j, k, t.n))
	}
	return (i*t.n+j)*t.n + k
}

// At returns the component at (i, j, k).
func (t Tensor3[T]) At(i, j, k int) T {
	return t.e[t.index(i, j, k)]
}

// Set assigns the component at (i, j, k).
func (t *Tensor3[T]) Set(i, j, k int, x T) {
	t.e[t.index(i, j, k)] = x
}

// Add returns t + b.
func (t Tensor3[T]) Add(b Tensor3[T]) Tensor3[T] {
	checkSameDim(t.n, b.n)
	out := Tensor3[T]{n: t.n}
	for i := 0; i < t.n*t.n*t.n; i++ {
		out.e[i] = t.e[i].Add(b.e[i])
	}
	return out
}

// Sub returns t - b.
func (t Tensor3[T]) Sub(b Tensor3[T]) Tensor3[T] {
	checkSameDim(t.n, b.n)
	out := Tensor3[T]{n: t.n}
	for i := 0; i < t.n*t.n*t.n; i++ {
		out.e[i] = t.e[i].Sub(b.e[i])
	}
	return out
}

// Scale returns c·t.
func (t Tensor3[T]) Scale(c T) Tensor3[T] {
	out := Tensor3[T]{n: t.n}
	for i := 0; i < t.n*t.n*t.n; i++ {
		out.e[i] = t.e[i].Mul(c)
	}
	return out
}

// Equal reports componentwise equality.
func (t Tensor3[T]) Equal(b Tensor3[T]) bool {
	if t.n != b.n {
		return false
	}
	for i := 0; i < t.n*t.n*t.n; i++ {
		if !t.e[i].Eq(b.e[i]) {
			return false
		}
	}
	return true
}

// Tensor4 is a dense rank-4 tensor with n components per index, n from
// 2 to 4. Components are stored with the last index fastest.
type Tensor4[T scalar.Algebraic[T]] struct {
	n int
	e [MaxDim * MaxDim * MaxDim * MaxDim]T
}

// NewTensor4 returns a zero rank-4 tensor of the given dimension.
func NewTensor4[T scalar.Algebraic[T]](n int) Tensor4[T] {
	checkDim(n)
	return Tensor4[T]{n: n}
}

// Dim returns the number of components per index.
func (t Tensor4[T]) Dim() int {
	return t.n
}

func (t Tensor4[T]) index(i, j, k, l int) int {
	if i < 0 || i >= t.n || j < 0 || j >= t.n || k < 0 || k >= t.n || l < 0 || l >= t.n {
		panic(fmt.Sprintf("tensor index (%d, %d, %d, %d) out of range for dimension %d", i, j, k, l, t.n))
	}
	return ((i*t.n+j)*t.n+k)*t.n + l
}

// At returns the component at (i, j, k, l).
func (t Tensor4[T]) At(i, j, k, l int) T {
	return t.e[t.index(i, j, k, l)]
}

// Set assigns the component at (i, j, k, l).
func (t *Tensor4[T]) Set(i, j, k, l int, x T) {
	t.e[t.index(i, j, k, l)] = x
}

// Add returns t + b.
func (t Tensor4[T]) Add(b Tensor4[T]) Tensor4[T] {
	checkSameDim(t.n, b.n)
	out := Tensor4[T]{n: t.n}
	for i := 0; i < t.n*t.n*t.n*t.n; i++ {
		out.e[i] = t.e[i].Add(b.e[i])
	}
	return out
}

// Sub returns t - b.
func (t Tensor4[T]) Sub(b Tensor4[T]) Tensor4[T] {
	checkSameDim(t.n, b.n)
	out := Tensor4[T]{n: t.n}
	for i := 0; i < t.n*t.n*t.n*t.n; i++ {
		out.e[i] = t.e[i].Sub(b.e[i])
	}
	return out
}

// Scale returns c·t.
func (t Tensor4[T]) Scale(c T) Tensor4[T] {
	out := Tensor4[T]{n: t.n}
	for i := 0; i < t.n*t.n*t.n*t.n; i++ {
		out.e[i] = t.e[i].Mul(c)
	}
	return out
}

// Equal reports componentwise equality.
func (t Tensor4[T]) Equal(b Tensor4[T]) bool {
	if t.n != b.n {
		return false
	}
	for i := 0; i < t.n*t.n*t.n*t.n; i++ {
		if !t.e[i].Eq(b.e[i]) {
			return false
		}
	}
	return true
}
