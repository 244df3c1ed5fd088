package diffgeo

import (
	"github.com/ricci-go/ricci/internal/linalg"
	"github.com/ricci-go/ricci/internal/scalar"
)

// RiemannTensor returns the Riemann curvature tensor at x,
//
//	R^ρ_σμν = ∂_μΓ^ρ_νσ − ∂_νΓ^ρ_μσ + Γ^ρ_μλΓ^λ_νσ − Γ^ρ_νλΓ^λ_μσ,
//
// with At(ρ, σ, μ, ν) = R^ρ_σμν. The Christoffel derivatives come from
// the metric's second derivatives, so the metric components are
// recorded on Hessian tapes once per independent component.
func RiemannTensor[T scalar.Number[T]](f *MetricField[T], x []T) linalg.Tensor4[T] {
	n := f.Dim()
	ginv := f.Evaluate(x).Inverse()
	dg := f.Derivatives(x)
	d2g := f.SecondDerivatives(x)

	first := christoffelFirst(dg)
	second := christoffelSecond(ginv, first)
	dsecond := christoffelSecondDerivatives(ginv, dg, d2g, first)

	out := linalg.NewTensor4[T](n)
	for rho := 0; rho < n; rho++ {
		for sig := 0; sig < n; sig++ {
			for mu := 0; mu < n; mu++ {
				for nu := 0; nu < n; nu++ {
					v := dsecond.At(mu, rho, nu, sig).Sub(dsecond.At(nu, rho, mu, sig))
					for lam := 0; lam < n; lam++ {
						v = v.Add(second.At(rho, mu, lam).Mul(second.At(lam, nu, sig)))
						v = v.Sub(second.At(rho, nu, lam).Mul(second.At(lam, mu, sig)))
					}
					out.Set(rho, sig, mu, nu, v)
				}
			}
		}
	}
	return out
}

// christoffelSecondDerivatives computes ∂_mΓ^k_ij, At(m, k, i, j). The
// inverse-metric derivatives use ∂_m g^kl = −g^ka(∂_m g_ab)g^bl.
func christoffelSecondDerivatives[T scalar.Number[T]](
	ginv linalg.Matrix[T],
	dg linalg.Tensor3[T],
	d2g linalg.Tensor4[T],
	first linalg.Tensor3[T],
) linalg.Tensor4[T] {
	n := first.Dim()
	half := scalar.FromReal[T](0.5)

	dginv := linalg.NewTensor3[T](n)
	for m := 0; m < n; m++ {
		for k := 0; k < n; k++ {
			for l := k; l < n; l++ {
				var sum T
				for a := 0; a < n; a++ {
					for b := 0; b < n; b++ {
						sum = sum.Add(ginv.At(k, a).Mul(dg.At(m, a, b)).Mul(ginv.At(b, l)))
					}
				}
				dginv.Set(m, k, l, sum.Neg())
				dginv.Set(m, l, k, sum.Neg())
			}
		}
	}

	out := linalg.NewTensor4[T](n)
	for m := 0; m < n; m++ {
		for k := 0; k < n; k++ {
			for i := 0; i < n; i++ {
				for j := i; j < n; j++ {
					var sum T
					for l := 0; l < n; l++ {
						dfirst := d2g.At(m, i, j, l).
							Add(d2g.At(m, j, i, l)).
							Sub(d2g.At(m, l, i, j)).
							Mul(half)
						sum = sum.Add(dginv.At(m, k, l).Mul(first.At(l, i, j)))
						sum = sum.Add(ginv.At(k, l).Mul(dfirst))
					}
					out.Set(m, k, i, j, sum)
					out.Set(m, k, j, i, sum)
				}
			}
		}
	}
	return out
}

// RicciTensor returns the Ricci tensor R_ij = R^k_ikj at x.
func RicciTensor[T scalar.Number[T]](f *MetricField[T], x []T) linalg.Matrix[T] {
	riem := RiemannTensor(f, x)
	n := riem.Dim()
	out := linalg.NewMatrix[T](n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for k := 0; k < n; k++ {
				sum = sum.Add(riem.At(k, i, k, j))
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

// ScalarCurvature returns the Ricci scalar R = g^ij R_ij at x.
func ScalarCurvature[T scalar.Number[T]](f *MetricField[T], x []T) T {
	ricci := RicciTensor(f, x)
	ginv := f.Evaluate(x).Inverse()
	n := ricci.Dim()
	var sum T
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum = sum.Add(ginv.At(i, j).Mul(ricci.At(i, j)))
		}
	}
	return sum
}
