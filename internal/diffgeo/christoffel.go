package diffgeo

import (
	"github.com/ricci-go/ricci/internal/linalg"
	"github.com/ricci-go/ricci/internal/scalar"
)

// ChristoffelFirstKind returns the Christoffel symbols of the first
// kind at x, Γ_kij = ½(∂ᵢg_jk + ∂ⱼg_ik − ∂ₖg_ij), as a rank-3 tensor
// with At(k, i, j) = Γ_kij. The symbols are symmetric in the last two
// indices.
func ChristoffelFirstKind[T scalar.Number[T]](f *MetricField[T], x []T) linalg.Tensor3[T] {
	return christoffelFirst(f.Derivatives(x))
}

// ChristoffelSecondKind returns the Christoffel symbols of the second
// kind at x, Γ^k_ij = g^kl Γ_lij, with At(k, i, j) = Γ^k_ij. A
// degenerate metric propagates NaN into every component.
func ChristoffelSecondKind[T scalar.Number[T]](f *MetricField[T], x []T) linalg.Tensor3[T] {
	return christoffelSecond(f.Evaluate(x).Inverse(), christoffelFirst(f.Derivatives(x)))
}

func christoffelFirst[T scalar.Number[T]](dg linalg.Tensor3[T]) linalg.Tensor3[T] {
	n := dg.Dim()
	half := scalar.FromReal[T](0.5)
	out := linalg.NewTensor3[T](n)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				v := dg.At(i, j, k).Add(dg.At(j, i, k)).Sub(dg.At(k, i, j)).Mul(half)
				out.Set(k, i, j, v)
				out.Set(k, j, i, v)
			}
		}
	}
	return out
}

func christoffelSecond[T scalar.Number[T]](ginv linalg.Matrix[T], first linalg.Tensor3[T]) linalg.Tensor3[T] {
	n := first.Dim()
	out := linalg.NewTensor3[T](n)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				var sum T
				for l := 0; l < n; l++ {
					sum = sum.Add(ginv.At(k, l).Mul(first.At(l, i, j)))
				}
				out.Set(k, i, j, sum)
				out.Set(k, j, i, sum)
			}
		}
	}
	return out
}
