package scalar

import (
	"math"
	"math/big"
)

// Rational is an exact rational number backed by math/big.Rat. It implements
// the Algebraic surface only: rationals participate in vector and matrix
// arithmetic but not in differentiation, which needs transcendentals.
//
// Division by an exact zero produces the rational not-a-number sentinel,
// which is absorbing under all four operations.
type Rational struct {
	r   *big.Rat
	nan bool
}

// NewRational returns the rational p/q. A zero denominator yields the
// not-a-number sentinel.
func NewRational(p, q int64) Rational {
	if q == 0 {
		return Rational{nan: true}
	}
	return Rational{r: big.NewRat(p, q)}
}

// RationalFromInt returns the rational n/1.
func RationalFromInt(n int64) Rational {
	return Rational{r: new(big.Rat).SetInt64(n)}
}

// RationalFromFloat returns the exact rational value of the float64 v.
// NaN and infinities map to the sentinel.
func RationalFromFloat(v float64) Rational {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		return Rational{nan: true}
	}
	return Rational{r: r}
}

// rat returns the backing value, treating the zero Rational as exact zero.
func (x Rational) rat() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

func (x Rational) Add(y Rational) Rational {
	if x.nan || y.nan {
		return Rational{nan: true}
	}
	return Rational{r: new(big.Rat).Add(x.rat(), y.rat())}
}

func (x Rational) Sub(y Rational) Rational {
	if x.nan || y.nan {
		return Rational{nan: true}
	}
	return Rational{r: new(big.Rat).Sub(x.rat(), y.rat())}
}

func (x Rational) Mul(y Rational) Rational {
	if x.nan || y.nan {
		return Rational{nan: true}
	}
	return Rational{r: new(big.Rat).Mul(x.rat(), y.rat())}
}

func (x Rational) Div(y Rational) Rational {
	if x.nan || y.nan || y.rat().Sign() == 0 {
		return Rational{nan: true}
	}
	return Rational{r: new(big.Rat).Quo(x.rat(), y.rat())}
}

func (x Rational) Neg() Rational {
	if x.nan {
		return x
	}
	return Rational{r: new(big.Rat).Neg(x.rat())}
}

func (Rational) Zero() Rational { return Rational{} }
func (Rational) One() Rational  { return Rational{r: big.NewRat(1, 1)} }
func (Rational) NaN() Rational  { return Rational{nan: true} }

func (x Rational) Eq(y Rational) bool {
	if x.nan || y.nan {
		return false
	}
	return x.rat().Cmp(y.rat()) == 0
}

func (x Rational) IsNaN() bool { return x.nan }

func (x Rational) Magnitude() float64 {
	if x.nan {
		return math.NaN()
	}
	f, _ := new(big.Rat).Abs(x.rat()).Float64()
	return f
}

// Less reports whether x < y. The sentinel is not ordered; it compares
// false against everything.
func (x Rational) Less(y Rational) bool {
	if x.nan || y.nan {
		return false
	}
	return x.rat().Cmp(y.rat()) < 0
}

// Float64 returns the nearest float64 to x.
func (x Rational) Float64() float64 {
	if x.nan {
		return math.NaN()
	}
	f, _ := x.rat().Float64()
	return f
}

func (x Rational) String() string {
	if x.nan {
		return "NaN"
	}
	return x.rat().RatString()
}
