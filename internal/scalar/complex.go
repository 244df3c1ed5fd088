package scalar

import (
	"math"
	"math/cmplx"
	"strconv"
)

// Complex is a double-precision complex number. It implements the full
// Number surface, so tapes and duals can be instantiated with it to
// differentiate holomorphic functions.
type Complex complex128

// NewComplex builds a complex scalar from its rectangular components.
func NewComplex(re, im float64) Complex { return Complex(complex(re, im)) }

// FromPolar builds a complex scalar from a magnitude and a phase angle.
func FromPolar(magnitude, phase float64) Complex {
	return Complex(complex(magnitude*math.Cos(phase), magnitude*math.Sin(phase)))
}

// Re returns the real component.
func (z Complex) Re() Real { return Real(real(z)) }

// Im returns the imaginary component.
func (z Complex) Im() Real { return Real(imag(z)) }

// Arithmetic.

func (z Complex) Add(w Complex) Complex { return z + w }
func (z Complex) Sub(w Complex) Complex { return z - w }
func (z Complex) Mul(w Complex) Complex { return z * w }

// Div divides z by w using Smith's algorithm, which scales by the smaller
// of |Re w| and |Im w| to avoid premature overflow and underflow.
func (z Complex) Div(w Complex) Complex {
	a, b := real(z), imag(z)
	c, d := real(w), imag(w)
	if math.Abs(d) < math.Abs(c) {
		u := d / c
		den := c + d*u
		return NewComplex((a+b*u)/den, (b-a*u)/den)
	}
	u := c / d
	den := d + c*u
	return NewComplex((b+a*u)/den, (b*u-a)/den)
}

func (z Complex) Neg() Complex { return -z }

// Conjugate returns the complex conjugate of z.
func (z Complex) Conjugate() Complex { return Complex(cmplx.Conj(complex128(z))) }

// Reciprocate returns 1/z without forming an intermediate quotient.
func (z Complex) Reciprocate() Complex {
	if real(z) == 0 && imag(z) == 0 {
		return Complex(cmplx.Inf())
	}
	u := real(z)*real(z) + imag(z)*imag(z)
	return NewComplex(real(z)/u, -imag(z)/u)
}

// Identities and sentinels.

func (Complex) Zero() Complex { return 0 }
func (Complex) One() Complex  { return 1 }
func (Complex) NaN() Complex  { return Complex(cmplx.NaN()) }

func (z Complex) Eq(w Complex) bool { return z == w }
func (z Complex) IsNaN() bool       { return cmplx.IsNaN(complex128(z)) }

// Magnitude returns |z|.
func (z Complex) Magnitude() float64 { return cmplx.Abs(complex128(z)) }

// Phase returns the argument of z in (-Pi, Pi].
func (z Complex) Phase() float64 { return cmplx.Phase(complex128(z)) }

// FromReal embeds a float64 on the real axis. The receiver is ignored.
func (Complex) FromReal(v float64) Complex { return Complex(complex(v, 0)) }

// Transcendentals delegate to math/cmplx.

// Abs returns |z| embedded on the real axis, keeping the closed T -> T
// signature required by the Number constraint.
func (z Complex) Abs() Complex   { return Complex(complex(cmplx.Abs(complex128(z)), 0)) }
func (z Complex) Sqrt() Complex  { return Complex(cmplx.Sqrt(complex128(z))) }
func (z Complex) Cbrt() Complex  { return Complex(cmplx.Pow(complex128(z), complex(1.0/3.0, 0))) }
func (z Complex) Exp() Complex   { return Complex(cmplx.Exp(complex128(z))) }
func (z Complex) Exp2() Complex  { return Complex(cmplx.Pow(complex(2, 0), complex128(z))) }
func (z Complex) Exp10() Complex { return Complex(cmplx.Pow(complex(10, 0), complex128(z))) }
func (z Complex) Ln() Complex    { return Complex(cmplx.Log(complex128(z))) }
func (z Complex) Log2() Complex {
	return Complex(cmplx.Log(complex128(z)) / complex(math.Ln2, 0))
}
func (z Complex) Log10() Complex { return Complex(cmplx.Log10(complex128(z))) }

func (z Complex) Pow(w Complex) Complex {
	return Complex(cmplx.Pow(complex128(z), complex128(w)))
}
func (z Complex) PowReal(p float64) Complex {
	return Complex(cmplx.Pow(complex128(z), complex(p, 0)))
}

func (z Complex) Sin() Complex  { return Complex(cmplx.Sin(complex128(z))) }
func (z Complex) Cos() Complex  { return Complex(cmplx.Cos(complex128(z))) }
func (z Complex) Tan() Complex  { return Complex(cmplx.Tan(complex128(z))) }
func (z Complex) Asin() Complex { return Complex(cmplx.Asin(complex128(z))) }
func (z Complex) Acos() Complex { return Complex(cmplx.Acos(complex128(z))) }
func (z Complex) Atan() Complex { return Complex(cmplx.Atan(complex128(z))) }
func (z Complex) Sinh() Complex { return Complex(cmplx.Sinh(complex128(z))) }
func (z Complex) Cosh() Complex { return Complex(cmplx.Cosh(complex128(z))) }
func (z Complex) Tanh() Complex { return Complex(cmplx.Tanh(complex128(z))) }

func (z Complex) String() string {
	return strconv.FormatComplex(complex128(z), 'g', -1, 128)
}
