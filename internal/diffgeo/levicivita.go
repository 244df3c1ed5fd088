package diffgeo

import (
	"github.com/ricci-go/ricci/internal/linalg"
	"github.com/ricci-go/ricci/internal/scalar"
)

// permutationSign returns +1 for even permutations, -1 for odd, and 0
// when any index repeats.
func permutationSign(idx ...int) int {
	sign := 1
	for i := 0; i < len(idx); i++ {
		for j := i + 1; j < len(idx); j++ {
			switch {
			case idx[i] == idx[j]:
				return 0
			case idx[i] > idx[j]:
				sign = -sign
			}
		}
	}
	return sign
}

func signValue[T scalar.Algebraic[T]](sign int) T {
	one := scalar.One[T]()
	switch sign {
	case 1:
		return one
	case -1:
		return one.Neg()
	default:
		return scalar.Zero[T]()
	}
}

// LeviCivita3 returns the totally antisymmetric rank-3 symbol with
// ε₀₁₂ = 1.
func LeviCivita3[T scalar.Algebraic[T]]() linalg.Tensor3[T] {
	out := linalg.NewTensor3[T](3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out.Set(i, j, k, signValue[T](permutationSign(i, j, k)))
			}
		}
	}
	return out
}

// LeviCivita4 returns the totally antisymmetric rank-4 symbol with
// ε₀₁₂₃ = 1.
func LeviCivita4[T scalar.Algebraic[T]]() linalg.Tensor4[T] {
	out := linalg.NewTensor4[T](4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				for l := 0; l < 4; l++ {
					out.Set(i, j, k, l, signValue[T](permutationSign(i, j, k, l)))
				}
			}
		}
	}
	return out
}
