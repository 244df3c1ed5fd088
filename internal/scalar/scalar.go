// Package scalar defines the closed numeric abstraction the ricci library is
// built over, together with its concrete scalar kinds.
//
// Every scalar kind is a small immutable value type. The zero value of each
// kind is its additive identity, which keeps freshly allocated buffers
// directly usable as accumulators.
package scalar

// Algebraic is the field surface shared by every scalar kind: the four
// arithmetic operations, negation, identities, equality, and the
// not-a-number sentinel used to propagate degenerate results without
// panicking.
//
// Zero, One and NaN ignore their receiver; it only selects the kind.
type Algebraic[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T

	Zero() T
	One() T

	Eq(T) bool
	IsNaN() bool
	NaN() T

	// Magnitude returns the absolute size of the scalar as a float64,
	// regardless of kind. Used for tolerance checks and singularity tests.
	Magnitude() float64

	String() string
}

// Number extends Algebraic with the elementary transcendental surface the
// automatic differentiation engine propagates derivatives through. Dual and
// hyper-dual numbers implement Number over themselves, so a function written
// against this constraint evaluates unchanged on plain scalars and on seeded
// forward-mode values.
type Number[T any] interface {
	Algebraic[T]

	// FromReal embeds a float64 constant into the scalar kind. The receiver
	// only selects the kind.
	FromReal(float64) T

	Abs() T
	Sqrt() T
	Cbrt() T
	Exp() T
	Exp2() T
	Exp10() T
	Ln() T
	Log2() T
	Log10() T
	Pow(T) T
	PowReal(float64) T
	Sin() T
	Cos() T
	Tan() T
	Asin() T
	Acos() T
	Atan() T
	Sinh() T
	Cosh() T
	Tanh() T
}

// Zero returns the additive identity of T.
func Zero[T Algebraic[T]]() T {
	var z T
	return z
}

// One returns the multiplicative identity of T.
func One[T Algebraic[T]]() T {
	var z T
	return z.One()
}

// NaN returns the not-a-number sentinel of T.
func NaN[T Algebraic[T]]() T {
	var z T
	return z.NaN()
}

// FromReal embeds a float64 constant into T.
func FromReal[T Number[T]](v float64) T {
	var z T
	return z.FromReal(v)
}
