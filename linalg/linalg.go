// Copyright 2025 The Ricci Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/ricci-go/ricci/internal/linalg"
	"github.com/ricci-go/ricci/internal/scalar"
)

// Supported container dimensions.
const (
	MinDim = linalg.MinDim
	MaxDim = linalg.MaxDim
)

// Type aliases for the public API.

// Vector is a fixed-capacity vector of dimension 2 to 4.
type Vector[T scalar.Algebraic[T]] = linalg.Vector[T]

// Matrix is a fixed-capacity square matrix of dimension 2 to 4.
type Matrix[T scalar.Algebraic[T]] = linalg.Matrix[T]

// Tensor3 is a fixed-capacity rank-3 tensor with all indices of equal range.
type Tensor3[T scalar.Algebraic[T]] = linalg.Tensor3[T]

// Tensor4 is a fixed-capacity rank-4 tensor with all indices of equal range.
type Tensor4[T scalar.Algebraic[T]] = linalg.Tensor4[T]

// NewVector returns the zero vector of dimension n.
func NewVector[T scalar.Algebraic[T]](n int) Vector[T] { return linalg.NewVector[T](n) }

// VectorOf returns the vector with the given elements. The dimension is the
// element count.
func VectorOf[T scalar.Algebraic[T]](elems ...T) Vector[T] { return linalg.VectorOf(elems...) }

// NewMatrix returns the zero matrix of dimension n.
func NewMatrix[T scalar.Algebraic[T]](n int) Matrix[T] { return linalg.NewMatrix[T](n) }

// MatrixOf returns the n by n matrix with the given elements in row-major
// order. Panics unless exactly n*n elements are supplied.
func MatrixOf[T scalar.Algebraic[T]](n int, elems ...T) Matrix[T] {
	return linalg.MatrixOf(n, elems...)
}

// Identity returns the identity matrix of dimension n.
func Identity[T scalar.Algebraic[T]](n int) Matrix[T] { return linalg.Identity[T](n) }

// NaM returns the not-a-matrix sentinel of dimension n, with every element
// NaN.
func NaM[T scalar.Algebraic[T]](n int) Matrix[T] { return linalg.NaM[T](n) }

// NewTensor3 returns the zero rank-3 tensor of dimension n.
func NewTensor3[T scalar.Algebraic[T]](n int) Tensor3[T] { return linalg.NewTensor3[T](n) }

// NewTensor4 returns the zero rank-4 tensor of dimension n.
func NewTensor4[T scalar.Algebraic[T]](n int) Tensor4[T] { return linalg.NewTensor4[T](n) }

// Eigenvalues returns the eigenvalues of a real matrix, which may be
// complex. A failed factorization yields all-NaN values.
func Eigenvalues(m Matrix[scalar.Real]) []scalar.Complex { return linalg.Eigenvalues(m) }

// EigenSym returns the eigenvalues in ascending order and the matrix of
// column eigenvectors of a symmetric real matrix.
func EigenSym(m Matrix[scalar.Real]) ([]scalar.Real, Matrix[scalar.Real]) {
	return linalg.EigenSym(m)
}

// QRDecompose returns the QR factorization of a real matrix.
func QRDecompose(m Matrix[scalar.Real]) (q, r Matrix[scalar.Real]) {
	return linalg.QRDecompose(m)
}
