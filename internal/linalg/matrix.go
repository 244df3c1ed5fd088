package linalg

import (
	"fmt"
	"strings"

	"github.com/ricci-go/ricci/internal/scalar"
)

// singularTol is the determinant magnitude below which inversion is
// treated as singular and yields the all-NaN sentinel.
const singularTol = 1e-12

// Matrix is a dense square matrix of dimension 2 to 4, stored row-major.
type Matrix[T scalar.Algebraic[T]] struct {
	n int
	e [MaxDim * MaxDim]T
}

// NewMatrix returns a zero n×n matrix.
func NewMatrix[T scalar.Algebraic[T]](n int) Matrix[T] {
	checkDim(n)
	return Matrix[T]{n: n}
}

// MatrixOf builds an n×n matrix from row-major components. The number
// of components must be n².
func MatrixOf[T scalar.Algebraic[T]](n int, elems ...T) Matrix[T] {
	m := NewMatrix[T](n)
	if len(elems) != n*n {
		panic(fmt.Sprintf("%d components cannot fill a %d×%d matrix", len(elems), n, n))
	}
	copy(m.e[:], elems)
	return m
}

// Identity returns the n×n identity matrix.
func Identity[T scalar.Algebraic[T]](n int) Matrix[T] {
	m := NewMatrix[T](n)
	one := scalar.One[T]()
	for i := 0; i < n; i++ {
		m.e[i*n+i] = one
	}
	return m
}

// NaM returns the n×n all-NaN matrix, the sentinel for degenerate
// results such as inverting a singular matrix.
func NaM[T scalar.Algebraic[T]](n int) Matrix[T] {
	m := NewMatrix[T](n)
	nan := scalar.NaN[T]()
	for i := 0; i < n*n; i++ {
		m.e[i] = nan
	}
	return m
}

// Dim returns the matrix dimension.
func (m Matrix[T]) Dim() int {
	return m.n
}

// At returns the element at row i, column j.
func (m Matrix[T]) At(i, j int) T {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("matrix index (%d, %d) out of range for dimension %d", i, j, m.n))
	}
	return m.e[i*m.n+j]
}

// Set assigns the element at row i, column j.
func (m *Matrix[T]) Set(i, j int, x T) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("matrix index (%d, %d) out of range for dimension %d", i, j, m.n))
	}
	m.e[i*m.n+j] = x
}

// IsNaM reports whether every element is NaN, the degenerate-result
// sentinel.
func (m Matrix[T]) IsNaM() bool {
	for i := 0; i < m.n*m.n; i++ {
		if !m.e[i].IsNaN() {
			return false
		}
	}
	return true
}

// Add returns m + b.
func (m Matrix[T]) Add(b Matrix[T]) Matrix[T] {
	checkSameDim(m.n, b.n)
	out := Matrix[T]{n: m.n}
	for i := 0; i < m.n*m.n; i++ {
		out.e[i] = m.e[i].Add(b.e[i])
	}
	return out
}

// Sub returns m - b.
func (m Matrix[T]) Sub(b Matrix[T]) Matrix[T] {
	checkSameDim(m.n, b.n)
	out := Matrix[T]{n: m.n}
	for i := 0; i < m.n*m.n; i++ {
		out.e[i] = m.e[i].Sub(b.e[i])
	}
	return out
}

// Scale returns c·m.
func (m Matrix[T]) Scale(c T) Matrix[T] {
	out := Matrix[T]{n: m.n}
	for i := 0; i < m.n*m.n; i++ {
		out.e[i] = m.e[i].Mul(c)
	}
	return out
}

// MatVec returns the matrix-vector product m·v.
func (m Matrix[T]) MatVec(v Vector[T]) Vector[T] {
	checkSameDim(m.n, v.n)
	out := Vector[T]{n: m.n}
	for i := 0; i < m.n; i++ {
		var sum T
		for j := 0; j < m.n; j++ {
			sum = sum.Add(m.e[i*m.n+j].Mul(v.e[j]))
		}
		out.e[i] = sum
	}
	return out
}

// MatMul returns the matrix product m·b.
func (m Matrix[T]) MatMul(b Matrix[T]) Matrix[T] {
	checkSameDim(m.n, b.n)
	out := Matrix[T]{n: m.n}
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			var sum T
			for k := 0; k < m.n; k++ {
				sum = sum.Add(m.e[i*m.n+k].Mul(b.e[k*m.n+j]))
			}
			out.e[i*m.n+j] = sum
		}
	}
	return out
}

// Transpose returns mᵀ.
func (m Matrix[T]) Transpose() Matrix[T] {
	out := Matrix[T]{n: m.n}
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			out.e[j*m.n+i] = m.e[i*m.n+j]
		}
	}
	return out
}

// Trace returns Σᵢ mᵢᵢ.
func (m Matrix[T]) Trace() T {
	var sum T
	for i := 0; i < m.n; i++ {
		sum = sum.Add(m.e[i*m.n+i])
	}
	return sum
}

// Equal reports componentwise equality. NaN components compare unequal,
// so NaM matrices are never Equal; use IsNaM for the sentinel.
func (m Matrix[T]) Equal(b Matrix[T]) bool {
	if m.n != b.n {
		return false
	}
	for i := 0; i < m.n*m.n; i++ {
		if !m.e[i].Eq(b.e[i]) {
			return false
		}
	}
	return true
}

// det2 computes the 2×2 determinant ad - bc.
func det2[T scalar.Algebraic[T]](a, b, c, d T) T {
	return a.Mul(d).Sub(b.Mul(c))
}

// Det returns the determinant, expanded in closed form per dimension.
func (m Matrix[T]) Det() T {
	switch m.n {
	case 2:
		return det2(m.e[0], m.e[1], m.e[2], m.e[3])
	case 3:
		return m.det3()
	default:
		det, _, _ := m.det4()
		return det
	}
}

func (m Matrix[T]) det3() T {
	a := m.e[0].Mul(det2(m.e[4], m.e[5], m.e[7], m.e[8]))
	b := m.e[1].Mul(det2(m.e[3], m.e[5], m.e[6], m.e[8]))
	c := m.e[2].Mul(det2(m.e[3], m.e[4], m.e[6], m.e[7]))
	return a.Sub(b).Add(c)
}

// det4 expands the determinant by complementary 2×2 minors: s from the
// top two rows, c from the bottom two. The minors are returned for
// reuse by the inverse.
func (m Matrix[T]) det4() (det T, s, c [6]T) {
	s[0] = det2(m.e[0], m.e[1], m.e[4], m.e[5])
	s[1] = det2(m.e[0], m.e[2], m.e[4], m.e[6])
	s[2] = det2(m.e[0], m.e[3], m.e[4], m.e[7])
	s[3] = det2(m.e[1], m.e[2], m.e[5], m.e[6])
	s[4] = det2(m.e[1], m.e[3], m.e[5], m.e[7])
	s[5] = det2(m.e[2], m.e[3], m.e[6], m.e[7])

	c[5] = det2(m.e[10], m.e[11], m.e[14], m.e[15])
	c[4] = det2(m.e[9], m.e[11], m.e[13], m.e[15])
	c[3] = det2(m.e[9], m.e[10], m.e[13], m.e[14])
	c[2] = det2(m.e[8], m.e[11], m.e[12], m.e[15])
	c[1] = det2(m.e[8], m.e[10], m.e[12], m.e[14])
	c[0] = det2(m.e[8], m.e[9], m.e[12], m.e[13])

	det = s[0].Mul(c[5]).
		Sub(s[1].Mul(c[4])).
		Add(s[2].Mul(c[3])).
		Add(s[3].Mul(c[2])).
		Sub(s[4].Mul(c[1])).
		Add(s[5].Mul(c[0]))
	return det, s, c
}

// Inverse returns m⁻¹, or the all-NaN sentinel when the determinant is
// NaN or its magnitude is at most the singularity tolerance. The
// sentinel is absorbing: inverting NaM yields NaM.
func (m Matrix[T]) Inverse() Matrix[T] {
	switch m.n {
	case 2:
		return m.inverse2()
	case 3:
		return m.inverse3()
	default:
		return m.inverse4()
	}
}

func singular[T scalar.Algebraic[T]](det T) bool {
	return det.IsNaN() || det.Magnitude() <= singularTol
}

func (m Matrix[T]) inverse2() Matrix[T] {
	det := m.Det()
	if singular(det) {
		return NaM[T](m.n)
	}
	return MatrixOf(2,
		m.e[3].Div(det), m.e[1].Neg().Div(det),
		m.e[2].Neg().Div(det), m.e[0].Div(det),
	)
}

func (m Matrix[T]) inverse3() Matrix[T] {
	det := m.det3()
	if singular(det) {
		return NaM[T](m.n)
	}
	return MatrixOf(3,
		det2(m.e[4], m.e[5], m.e[7], m.e[8]).Div(det),
		det2(m.e[2], m.e[1], m.e[8], m.e[7]).Div(det),
		det2(m.e[1], m.e[2], m.e[4], m.e[5]).Div(det),

		det2(m.e[5], m.e[3], m.e[8], m.e[6]).Div(det),
		det2(m.e[0], m.e[2], m.e[6], m.e[8]).Div(det),
		det2(m.e[2], m.e[0], m.e[5], m.e[3]).Div(det),

		det2(m.e[3], m.e[4], m.e[6], m.e[7]).Div(det),
		det2(m.e[1], m.e[0], m.e[7], m.e[6]).Div(det),
		det2(m.e[0], m.e[1], m.e[3], m.e[4]).Div(det),
	)
}

func (m Matrix[T]) inverse4() Matrix[T] {
	det, s, c := m.det4()
	if singular(det) {
		return NaM[T](m.n)
	}

	out := Matrix[T]{n: 4}
	out.e[0] = m.e[5].Mul(c[5]).Sub(m.e[6].Mul(c[4])).Add(m.e[7].Mul(c[3])).Div(det)
	out.e[1] = m.e[2].Mul(c[4]).Sub(m.e[1].Mul(c[5])).Sub(m.e[3].Mul(c[3])).Div(det)
	out.e[2] = m.e[13].Mul(s[5]).Sub(m.e[14].Mul(s[4])).Add(m.e[15].Mul(s[3])).Div(det)
	out.e[3] = m.e[10].Mul(s[4]).Sub(m.e[9].Mul(s[5])).Sub(m.e[11].Mul(s[3])).Div(det)

	out.e[4] = m.e[6].Mul(c[2]).Sub(m.e[4].Mul(c[5])).Sub(m.e[7].Mul(c[1])).Div(det)
	out.e[5] = m.e[0].Mul(c[5]).Sub(m.e[2].Mul(c[2])).Add(m.e[3].Mul(c[1])).Div(det)
	out.e[6] = m.e[14].Mul(s[2]).Sub(m.e[12].Mul(s[5])).Sub(m.e[15].Mul(s[1])).Div(det)
	out.e[7] = m.e[8].Mul(s[5]).Sub(m.e[10].Mul(s[2])).Add(m.e[11].Mul(s[1])).Div(det)

	out.e[8] = m.e[4].Mul(c[4]).Sub(m.e[5].Mul(c[2])).Add(m.e[7].Mul(c[0])).Div(det)
	out.e[9] = m.e[1].Mul(c[2]).Sub(m.e[0].Mul(c[4])).Sub(m.e[3].Mul(c[0])).Div(det)
	out.e[10] = m.e[12].Mul(s[4]).Sub(m.e[13].Mul(s[2])).Add(m.e[15].Mul(s[0])).Div(det)
	out.e[11] = m.e[9].Mul(s[2]).Sub(m.e[8].Mul(s[4])).Sub(m.e[11].Mul(s[0])).Div(det)

	out.e[12] = m.e[5].Mul(c[1]).Sub(m.e[4].Mul(c[3])).Sub(m.e[6].Mul(c[0])).Div(det)
	out.e[13] = m.e[0].Mul(c[3]).Sub(m.e[1].Mul(c[1])).Add(m.e[2].Mul(c[0])).Div(det)
	out.e[14] = m.e[13].Mul(s[1]).Sub(m.e[12].Mul(s[3])).Sub(m.e[14].Mul(s[0])).Div(det)
	out.e[15] = m.e[8].Mul(s[3]).Sub(m.e[9].Mul(s[1])).Add(m.e[10].Mul(s[0])).Div(det)
	return out
}

// String formats the matrix one row per line.
func (m Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		parts := make([]string, m.n)
		for j := 0; j < m.n; j++ {
			parts[j] = m.e[i*m.n+j].String()
		}
		sb.WriteString("[" + strings.Join(parts, ", ") + "]")
		if i < m.n-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
