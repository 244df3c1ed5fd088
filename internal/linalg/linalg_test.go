package linalg

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricci-go/ricci/internal/scalar"
)

// Test helpers

func realVec(vs ...float64) Vector[scalar.Real] {
	elems := make([]scalar.Real, len(vs))
	for i, v := range vs {
		elems[i] = scalar.Real(v)
	}
	return VectorOf(elems...)
}

func realMat(n int, vs ...float64) Matrix[scalar.Real] {
	elems := make([]scalar.Real, len(vs))
	for i, v := range vs {
		elems[i] = scalar.Real(v)
	}
	return MatrixOf(n, elems...)
}

// assertMatInDelta checks every element of got against want.
func assertMatInDelta(t *testing.T, want, got Matrix[scalar.Real], tol float64) {
	t.Helper()
	require.Equal(t, want.Dim(), got.Dim())
	for i := 0; i < want.Dim(); i++ {
		for j := 0; j < want.Dim(); j++ {
			assert.InDeltaf(t, want.At(i, j).Float64(), got.At(i, j).Float64(), tol,
				"element (%d, %d)", i, j)
		}
	}
}

// TestVectorAccess tests At/Set round trips and bounds panics.
func TestVectorAccess(t *testing.T) {
	v := NewVector[scalar.Real](3)
	v.Set(0, 1)
	v.Set(2, 5)
	assert.InDelta(t, 1, v.At(0).Float64(), 0)
	assert.InDelta(t, 0, v.At(1).Float64(), 0)
	assert.InDelta(t, 5, v.At(2).Float64(), 0)
	assert.Equal(t, 3, v.Dim())

	assert.Panics(t, func() { v.At(3) })
	assert.Panics(t, func() { v.At(-1) })
	assert.Panics(t, func() { v.Set(3, 0) })
	assert.Panics(t, func() { NewVector[scalar.Real](1) })
	assert.Panics(t, func() { NewVector[scalar.Real](5) })
}

// TestVectorArithmetic tests Add, Sub, Scale, Neg, and InnerProduct.
func TestVectorArithmetic(t *testing.T) {
	v := realVec(1, 2, 3)
	w := realVec(4, -1, 0.5)

	assert.True(t, v.Add(w).Equal(realVec(5, 1, 3.5)))
	assert.True(t, v.Sub(w).Equal(realVec(-3, 3, 2.5)))
	assert.True(t, v.Scale(2).Equal(realVec(2, 4, 6)))
	assert.True(t, v.Neg().Equal(realVec(-1, -2, -3)))
	assert.InDelta(t, 4-2+1.5, v.InnerProduct(w).Float64(), 1e-15)

	assert.Panics(t, func() { v.Add(realVec(1, 2)) })
}

// TestVectorCross tests the 3-dimensional cross product.
func TestVectorCross(t *testing.T) {
	x := realVec(1, 0, 0)
	y := realVec(0, 1, 0)
	assert.True(t, x.Cross(y).Equal(realVec(0, 0, 1)))
	assert.True(t, y.Cross(x).Equal(realVec(0, 0, -1)))

	v := realVec(1, 2, 3)
	w := realVec(4, 5, 6)
	got := v.Cross(w)
	assert.True(t, got.Equal(realVec(-3, 6, -3)))
	assert.InDelta(t, 0, got.InnerProduct(v).Float64(), 1e-15, "cross product is orthogonal")

	assert.Panics(t, func() { realVec(1, 2).Cross(realVec(3, 4)) })
}

// TestMatrixAccess tests At/Set and bounds panics.
func TestMatrixAccess(t *testing.T) {
	m := NewMatrix[scalar.Real](2)
	m.Set(0, 1, 7)
	m.Set(1, 0, -2)
	assert.InDelta(t, 7, m.At(0, 1).Float64(), 0)
	assert.InDelta(t, -2, m.At(1, 0).Float64(), 0)

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.At(0, 2) })
	assert.Panics(t, func() { m.Set(-1, 0, 0) })
	assert.Panics(t, func() { MatrixOf(2, scalar.Real(1)) })
}

// TestMatrixArithmetic tests Add, Sub, Scale, Transpose, and Trace.
func TestMatrixArithmetic(t *testing.T) {
	a := realMat(2, 1, 2, 3, 4)
	b := realMat(2, 5, 6, 7, 8)

	assert.True(t, a.Add(b).Equal(realMat(2, 6, 8, 10, 12)))
	assert.True(t, b.Sub(a).Equal(realMat(2, 4, 4, 4, 4)))
	assert.True(t, a.Scale(3).Equal(realMat(2, 3, 6, 9, 12)))
	assert.True(t, a.Transpose().Equal(realMat(2, 1, 3, 2, 4)))
	assert.InDelta(t, 5, a.Trace().Float64(), 0)
}

// TestMatVec tests the matrix-vector product.
func TestMatVec(t *testing.T) {
	m := realMat(3,
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	v := realVec(1, 0, -1)
	assert.True(t, m.MatVec(v).Equal(realVec(-2, -2, -2)))

	id := Identity[scalar.Real](3)
	assert.True(t, id.MatVec(v).Equal(v))
}

// TestMatMul tests the matrix product against hand-computed values and
// the identity.
func TestMatMul(t *testing.T) {
	a := realMat(2, 1, 2, 3, 4)
	b := realMat(2, 0, 1, 1, 0)
	assert.True(t, a.MatMul(b).Equal(realMat(2, 2, 1, 4, 3)))
	assert.True(t, b.MatMul(a).Equal(realMat(2, 3, 4, 1, 2)))
	assert.True(t, a.MatMul(Identity[scalar.Real](2)).Equal(a))
}

// TestDet tests the closed-form determinants for each dimension.
func TestDet(t *testing.T) {
	assert.InDelta(t, -2, realMat(2, 1, 2, 3, 4).Det().Float64(), 1e-15)

	assert.InDelta(t, 1, Identity[scalar.Real](3).Det().Float64(), 1e-15)
	assert.InDelta(t, -30, realMat(3,
		2, 0, 0,
		0, 3, 0,
		0, 0, -5,
	).Det().Float64(), 1e-15)
	assert.InDelta(t, 7, realMat(3,
		2, -1, 0,
		3, 5, 2,
		1, 1, 1,
	).Det().Float64(), 1e-12)

	assert.InDelta(t, 1, Identity[scalar.Real](4).Det().Float64(), 1e-15)
	// Block diagonal: det = (1·4 - 2·3)·(5·8 - 6·7) = (-2)·(-2).
	assert.InDelta(t, 4, realMat(4,
		1, 2, 0, 0,
		3, 4, 0, 0,
		0, 0, 5, 6,
		0, 0, 7, 8,
	).Det().Float64(), 1e-12)
}

// TestInverse tests A·A⁻¹ ≈ I for each dimension and a known 2×2
// inverse.
func TestInverse(t *testing.T) {
	a2 := realMat(2, 4, 7, 2, 6)
	inv2 := a2.Inverse()
	assertMatInDelta(t, realMat(2, 0.6, -0.7, -0.2, 0.4), inv2, 1e-12)

	tests := []Matrix[scalar.Real]{
		a2,
		realMat(3,
			2, -1, 0,
			3, 5, 2,
			1, 1, 1,
		),
		realMat(4,
			4, 1, 0, 2,
			1, 5, 1, 0,
			0, 1, 6, 1,
			2, 0, 1, 7,
		),
	}
	for _, m := range tests {
		prod := m.MatMul(m.Inverse())
		assertMatInDelta(t, Identity[scalar.Real](m.Dim()), prod, 1e-10)

		back := m.Inverse().Inverse()
		assertMatInDelta(t, m, back, 1e-9)
	}
}

// TestInverseSingular tests that singular matrices invert to the
// all-NaN sentinel and that the sentinel is absorbing.
func TestInverseSingular(t *testing.T) {
	sing := realMat(2, 1, 2, 2, 4)
	inv := sing.Inverse()
	assert.True(t, inv.IsNaM())

	assert.True(t, inv.Inverse().IsNaM(), "inverting NaM yields NaM")
	assert.True(t, NaM[scalar.Real](3).Inverse().IsNaM())
	assert.True(t, NaM[scalar.Real](4).Inverse().IsNaM())

	assert.False(t, Identity[scalar.Real](2).IsNaM())
	assert.False(t, sing.IsNaM())

	// Rank-deficient 3×3 and 4×4.
	assert.True(t, realMat(3,
		1, 2, 3,
		2, 4, 6,
		0, 1, 1,
	).Inverse().IsNaM())
	assert.True(t, realMat(4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		1, 1, 1, 0,
	).Inverse().IsNaM())
}

// TestComplexInverse tests the generic inversion path over complex
// scalars: A·A⁻¹ ≈ I.
func TestComplexInverse(t *testing.T) {
	a := MatrixOf(2,
		scalar.NewComplex(1, 1), scalar.NewComplex(2, 0),
		scalar.NewComplex(0, -1), scalar.NewComplex(3, 2),
	)
	prod := a.MatMul(a.Inverse())
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, prod.At(i, j).Re().Float64(), 1e-12)
			assert.InDelta(t, 0, prod.At(i, j).Im().Float64(), 1e-12)
		}
	}
}

// TestEigenvalues tests generally complex eigenvalues: the rotation
// generator has ±i, a diagonal matrix its entries.
func TestEigenvalues(t *testing.T) {
	vals := Eigenvalues(realMat(2, 0, -1, 1, 0))
	require.Len(t, vals, 2)
	assert.InDelta(t, 0, vals[0].Re().Float64(), 1e-12)
	assert.InDelta(t, 0, vals[1].Re().Float64(), 1e-12)
	assert.InDelta(t, 1, math.Abs(vals[0].Im().Float64()), 1e-12)
	assert.InDelta(t, 1, math.Abs(vals[1].Im().Float64()), 1e-12)
	assert.InDelta(t, 0, vals[0].Im().Float64()+vals[1].Im().Float64(), 1e-12,
		"conjugate pair")

	vals = Eigenvalues(realMat(3,
		2, 0, 0,
		0, -1, 0,
		0, 0, 5,
	))
	got := make([]float64, len(vals))
	for i, v := range vals {
		got[i] = v.Re().Float64()
		assert.InDelta(t, 0, v.Im().Float64(), 1e-12)
	}
	sort.Float64s(got)
	for i, want := range []float64{-1, 2, 5} {
		assert.InDelta(t, want, got[i], 1e-12)
	}
}

// TestEigenSym tests ascending eigenvalues and the eigenvector
// equation A·v = λv for a symmetric matrix.
func TestEigenSym(t *testing.T) {
	a := realMat(2, 2, 1, 1, 2)
	vals, vecs := EigenSym(a)
	require.Len(t, vals, 2)
	assert.InDelta(t, 1, vals[0].Float64(), 1e-12)
	assert.InDelta(t, 3, vals[1].Float64(), 1e-12)

	for k := 0; k < 2; k++ {
		v := NewVector[scalar.Real](2)
		for i := 0; i < 2; i++ {
			v.Set(i, vecs.At(i, k))
		}
		av := a.MatVec(v)
		lv := v.Scale(vals[k])
		for i := 0; i < 2; i++ {
			assert.InDelta(t, lv.At(i).Float64(), av.At(i).Float64(), 1e-12)
		}
		assert.InDelta(t, 1, v.InnerProduct(v).Float64(), 1e-12, "eigenvector is normalized")
	}
}

// TestQRDecompose tests Q·R ≈ A, orthonormality of Q, and upper
// triangularity of R.
func TestQRDecompose(t *testing.T) {
	a := realMat(3,
		2, -1, 0,
		3, 5, 2,
		1, 1, 1,
	)
	q, r := QRDecompose(a)

	assertMatInDelta(t, a, q.MatMul(r), 1e-12)
	assertMatInDelta(t, Identity[scalar.Real](3), q.Transpose().MatMul(q), 1e-12)
	for i := 1; i < 3; i++ {
		for j := 0; j < i; j++ {
			assert.InDelta(t, 0, r.At(i, j).Float64(), 1e-12)
		}
	}
}

// TestTensor3 tests indexing, bounds panics, and arithmetic.
func TestTensor3(t *testing.T) {
	a := NewTensor3[scalar.Real](2)
	a.Set(0, 1, 0, 3)
	a.Set(1, 1, 1, -2)
	assert.InDelta(t, 3, a.At(0, 1, 0).Float64(), 0)
	assert.InDelta(t, -2, a.At(1, 1, 1).Float64(), 0)
	assert.InDelta(t, 0, a.At(0, 0, 0).Float64(), 0)
	assert.Equal(t, 2, a.Dim())

	b := a.Add(a)
	assert.InDelta(t, 6, b.At(0, 1, 0).Float64(), 0)
	assert.True(t, a.Scale(2).Equal(b))
	assert.True(t, b.Sub(a).Equal(a))

	assert.Panics(t, func() { a.At(0, 2, 0) })
	assert.Panics(t, func() { a.Set(2, 0, 0, 0) })
	assert.Panics(t, func() { NewTensor3[scalar.Real](5) })
}

// TestTensor4 tests indexing, bounds panics, and arithmetic.
func TestTensor4(t *testing.T) {
	a := NewTensor4[scalar.Real](3)
	a.Set(0, 1, 2, 1, 4)
	a.Set(2, 2, 2, 2, 9)
	assert.InDelta(t, 4, a.At(0, 1, 2, 1).Float64(), 0)
	assert.InDelta(t, 9, a.At(2, 2, 2, 2).Float64(), 0)
	assert.Equal(t, 3, a.Dim())

	b := a.Scale(0.5)
	assert.InDelta(t, 2, b.At(0, 1, 2, 1).Float64(), 0)
	assert.True(t, b.Add(b).Equal(a))

	assert.Panics(t, func() { a.At(0, 0, 3, 0) })
	assert.Panics(t, func() { a.Set(0, 0, 0, -1, 0) })
}

// TestMatrixString tests the row-per-line format.
func TestMatrixString(t *testing.T) {
	m := realMat(2, 1, 2, 3, 4)
	assert.Equal(t, "[1, 2]\n[3, 4]", m.String())
	assert.Equal(t, "(1, 2)", realVec(1, 2).String())
}
