package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ricci-go/ricci/internal/scalar"
)

// Decompositions are delegated to gonum and are available for real
// matrices only; the closed-form paths above stay generic.

func toDense(m Matrix[scalar.Real]) *mat.Dense {
	data := make([]float64, m.n*m.n)
	for i := range data {
		data[i] = m.e[i].Float64()
	}
	return mat.NewDense(m.n, m.n, data)
}

func fromDense(n int, d *mat.Dense) Matrix[scalar.Real] {
	out := Matrix[scalar.Real]{n: n}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.e[i*n+j] = scalar.Real(d.At(i, j))
		}
	}
	return out
}

// Eigenvalues returns the eigenvalues of m, complex in general. If the
// factorization fails every returned value is NaN.
func Eigenvalues(m Matrix[scalar.Real]) []scalar.Complex {
	out := make([]scalar.Complex, m.n)
	var eig mat.Eigen
	if !eig.Factorize(toDense(m), mat.EigenNone) {
		for i := range out {
			out[i] = scalar.NaN[scalar.Complex]()
		}
		return out
	}
	for i, v := range eig.Values(nil) {
		out[i] = scalar.NewComplex(real(v), imag(v))
	}
	return out
}

// EigenSym returns the eigenvalues, in ascending order, and the matrix
// of column eigenvectors of a symmetric matrix. Only the upper triangle
// of m is read. If the factorization fails the values are NaN and the
// vectors are NaM.
func EigenSym(m Matrix[scalar.Real]) ([]scalar.Real, Matrix[scalar.Real]) {
	data := make([]float64, m.n*m.n)
	for i := range data {
		data[i] = m.e[i].Float64()
	}

	var es mat.EigenSym
	if !es.Factorize(mat.NewSymDense(m.n, data), true) {
		vals := make([]scalar.Real, m.n)
		for i := range vals {
			vals[i] = scalar.NaN[scalar.Real]()
		}
		return vals, NaM[scalar.Real](m.n)
	}

	raw := es.Values(nil)
	vals := make([]scalar.Real, m.n)
	for i, v := range raw {
		vals[i] = scalar.Real(v)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	return vals, fromDense(m.n, &vecs)
}

// QRDecompose returns the factorization m = q·r with q orthonormal and
// r upper triangular.
func QRDecompose(m Matrix[scalar.Real]) (q, r Matrix[scalar.Real]) {
	var qr mat.QR
	qr.Factorize(toDense(m))

	var qd, rd mat.Dense
	qr.QTo(&qd)
	qr.RTo(&rd)
	return fromDense(m.n, &qd), fromDense(m.n, &rd)
}
