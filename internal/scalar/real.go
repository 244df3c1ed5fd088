package scalar

import (
	"math"
	"strconv"
)

// Real is a double-precision real number. It is the workhorse scalar kind:
// tapes, duals and tensor containers are typically instantiated with it.
type Real float64

// Arithmetic.

func (x Real) Add(y Real) Real { return x + y }
func (x Real) Sub(y Real) Real { return x - y }
func (x Real) Mul(y Real) Real { return x * y }
func (x Real) Div(y Real) Real { return x / y }
func (x Real) Neg() Real       { return -x }

// Identities and sentinels.

func (Real) Zero() Real { return 0 }
func (Real) One() Real  { return 1 }
func (Real) NaN() Real  { return Real(math.NaN()) }

func (x Real) Eq(y Real) bool { return x == y }
func (x Real) IsNaN() bool    { return math.IsNaN(float64(x)) }

// IsInf reports whether x is an infinity of either sign.
func (x Real) IsInf() bool { return math.IsInf(float64(x), 0) }

func (x Real) Magnitude() float64 { return math.Abs(float64(x)) }

// FromReal converts a float64 into a Real. The receiver is ignored.
func (Real) FromReal(v float64) Real { return Real(v) }

// Float64 returns x as a plain float64.
func (x Real) Float64() float64 { return float64(x) }

// Ordering. Real is the only fully ordered scalar kind.

func (x Real) Less(y Real) bool      { return x < y }
func (x Real) LessEq(y Real) bool    { return x <= y }
func (x Real) Greater(y Real) bool   { return x > y }
func (x Real) GreaterEq(y Real) bool { return x >= y }

// Transcendentals delegate to package math.

func (x Real) Abs() Real   { return Real(math.Abs(float64(x))) }
func (x Real) Sqrt() Real  { return Real(math.Sqrt(float64(x))) }
func (x Real) Cbrt() Real  { return Real(math.Cbrt(float64(x))) }
func (x Real) Exp() Real   { return Real(math.Exp(float64(x))) }
func (x Real) Exp2() Real  { return Real(math.Exp2(float64(x))) }
func (x Real) Exp10() Real { return Real(math.Pow(10, float64(x))) }
func (x Real) Ln() Real    { return Real(math.Log(float64(x))) }
func (x Real) Log2() Real  { return Real(math.Log2(float64(x))) }
func (x Real) Log10() Real { return Real(math.Log10(float64(x))) }

func (x Real) Pow(y Real) Real        { return Real(math.Pow(float64(x), float64(y))) }
func (x Real) PowReal(p float64) Real { return Real(math.Pow(float64(x), p)) }

func (x Real) Sin() Real  { return Real(math.Sin(float64(x))) }
func (x Real) Cos() Real  { return Real(math.Cos(float64(x))) }
func (x Real) Tan() Real  { return Real(math.Tan(float64(x))) }
func (x Real) Asin() Real { return Real(math.Asin(float64(x))) }
func (x Real) Acos() Real { return Real(math.Acos(float64(x))) }
func (x Real) Atan() Real { return Real(math.Atan(float64(x))) }
func (x Real) Sinh() Real { return Real(math.Sinh(float64(x))) }
func (x Real) Cosh() Real { return Real(math.Cosh(float64(x))) }
func (x Real) Tanh() Real { return Real(math.Tanh(float64(x))) }

func (x Real) String() string { return strconv.FormatFloat(float64(x), 'g', -1, 64) }
