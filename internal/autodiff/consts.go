package autodiff

import (
	"math"

	"github.com/ricci-go/ricci/internal/scalar"
)

// Logarithm bases lifted into the scalar type, shared by the base-2 and
// base-10 exponential and logarithm derivatives.

func ln2[T scalar.Number[T]]() T { return scalar.FromReal[T](math.Ln2) }

func ln10[T scalar.Number[T]]() T { return scalar.FromReal[T](math.Ln10) }
