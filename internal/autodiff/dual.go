package autodiff

import (
	"fmt"

	"github.com/ricci-go/ricci/internal/scalar"
)

// Dual is a forward-mode first-order number: a value paired with one
// derivative component that propagates through every operation by the
// chain rule. Seeding the derivative of exactly one input with 1 and
// evaluating f yields ∂f along that direction in D1, with no tape.
//
// Dual is immutable and implements scalar.Number over itself, so any
// function written against the constraint evaluates unchanged on plain
// scalars and on duals. Nesting (Dual over Dual) composes derivative
// orders.
type Dual[T scalar.Number[T]] struct {
	d0, d1 T
}

// NewDual returns a dual holding value with a zero derivative component.
func NewDual[T scalar.Number[T]](value T) Dual[T] {
	return Dual[T]{d0: value}
}

// WithSeed returns a copy of x with the derivative component set to s.
func (x Dual[T]) WithSeed(s T) Dual[T] {
	return Dual[T]{d0: x.d0, d1: s}
}

// D0 returns the value component.
func (x Dual[T]) D0() T { return x.d0 }

// D1 returns the derivative component.
func (x Dual[T]) D1() T { return x.d1 }

func (x Dual[T]) Add(y Dual[T]) Dual[T] {
	return Dual[T]{d0: x.d0.Add(y.d0), d1: x.d1.Add(y.d1)}
}

func (x Dual[T]) Sub(y Dual[T]) Dual[T] {
	return Dual[T]{d0: x.d0.Sub(y.d0), d1: x.d1.Sub(y.d1)}
}

func (x Dual[T]) Mul(y Dual[T]) Dual[T] {
	return Dual[T]{
		d0: x.d0.Mul(y.d0),
		d1: x.d0.Mul(y.d1).Add(x.d1.Mul(y.d0)),
	}
}

func (x Dual[T]) Div(y Dual[T]) Dual[T] {
	q := x.d0.Div(y.d0)
	return Dual[T]{
		d0: q,
		d1: x.d1.Sub(q.Mul(y.d1)).Div(y.d0),
	}
}

func (x Dual[T]) Neg() Dual[T] {
	return Dual[T]{d0: x.d0.Neg(), d1: x.d1.Neg()}
}

func (Dual[T]) Zero() Dual[T] { return Dual[T]{} }

func (Dual[T]) One() Dual[T] { return Dual[T]{d0: scalar.One[T]()} }

func (Dual[T]) NaN() Dual[T] {
	return Dual[T]{d0: scalar.NaN[T](), d1: scalar.NaN[T]()}
}

func (Dual[T]) FromReal(v float64) Dual[T] {
	return Dual[T]{d0: scalar.FromReal[T](v)}
}

// Eq reports componentwise equality.
func (x Dual[T]) Eq(y Dual[T]) bool {
	return x.d0.Eq(y.d0) && x.d1.Eq(y.d1)
}

// IsNaN reports whether either component is NaN.
func (x Dual[T]) IsNaN() bool {
	return x.d0.IsNaN() || x.d1.IsNaN()
}

// Magnitude returns the magnitude of the value component.
func (x Dual[T]) Magnitude() float64 { return x.d0.Magnitude() }

func (x Dual[T]) String() string {
	return fmt.Sprintf("(%s, %s)", x.d0.String(), x.d1.String())
}

// Abs propagates |x| with the sign of the value scaling the derivative.
func (x Dual[T]) Abs() Dual[T] {
	sign := x.d0.Div(x.d0.Abs())
	return Dual[T]{d0: x.d0.Abs(), d1: x.d1.Mul(sign)}
}

func (x Dual[T]) Sqrt() Dual[T] {
	v := x.d0.Sqrt()
	return Dual[T]{d0: v, d1: x.d1.Div(v.Add(v))}
}

func (x Dual[T]) Cbrt() Dual[T] {
	v := x.d0.Cbrt()
	return Dual[T]{d0: v, d1: x.d1.Div(scalar.FromReal[T](3).Mul(v).Mul(v))}
}

func (x Dual[T]) Exp() Dual[T] {
	v := x.d0.Exp()
	return Dual[T]{d0: v, d1: x.d1.Mul(v)}
}

func (x Dual[T]) Exp2() Dual[T] {
	v := x.d0.Exp2()
	return Dual[T]{d0: v, d1: x.d1.Mul(v).Mul(ln2[T]())}
}

func (x Dual[T]) Exp10() Dual[T] {
	v := x.d0.Exp10()
	return Dual[T]{d0: v, d1: x.d1.Mul(v).Mul(ln10[T]())}
}

func (x Dual[T]) Ln() Dual[T] {
	return Dual[T]{d0: x.d0.Ln(), d1: x.d1.Div(x.d0)}
}

func (x Dual[T]) Log2() Dual[T] {
	return Dual[T]{d0: x.d0.Log2(), d1: x.d1.Div(x.d0.Mul(ln2[T]()))}
}

func (x Dual[T]) Log10() Dual[T] {
	return Dual[T]{d0: x.d0.Log10(), d1: x.d1.Div(x.d0.Mul(ln10[T]()))}
}

// Pow propagates x^y through d/dt x^y = x^y·(ẏ·ln x + y·ẋ/x).
func (x Dual[T]) Pow(y Dual[T]) Dual[T] {
	v := x.d0.Pow(y.d0)
	d := y.d1.Mul(x.d0.Ln()).Add(y.d0.Mul(x.d1).Div(x.d0))
	return Dual[T]{d0: v, d1: v.Mul(d)}
}

func (x Dual[T]) PowReal(p float64) Dual[T] {
	v := x.d0.PowReal(p)
	d1 := scalar.FromReal[T](p).Mul(x.d0.PowReal(p - 1)).Mul(x.d1)
	return Dual[T]{d0: v, d1: d1}
}

func (x Dual[T]) Sin() Dual[T] {
	return Dual[T]{d0: x.d0.Sin(), d1: x.d1.Mul(x.d0.Cos())}
}

func (x Dual[T]) Cos() Dual[T] {
	return Dual[T]{d0: x.d0.Cos(), d1: x.d1.Mul(x.d0.Sin()).Neg()}
}

func (x Dual[T]) Tan() Dual[T] {
	v := x.d0.Tan()
	return Dual[T]{d0: v, d1: x.d1.Mul(scalar.One[T]().Add(v.Mul(v)))}
}

func (x Dual[T]) Asin() Dual[T] {
	one := scalar.One[T]()
	r := one.Sub(x.d0.Mul(x.d0)).Sqrt()
	return Dual[T]{d0: x.d0.Asin(), d1: x.d1.Div(r)}
}

func (x Dual[T]) Acos() Dual[T] {
	one := scalar.One[T]()
	r := one.Sub(x.d0.Mul(x.d0)).Sqrt()
	return Dual[T]{d0: x.d0.Acos(), d1: x.d1.Div(r).Neg()}
}

func (x Dual[T]) Atan() Dual[T] {
	one := scalar.One[T]()
	w := one.Add(x.d0.Mul(x.d0))
	return Dual[T]{d0: x.d0.Atan(), d1: x.d1.Div(w)}
}

func (x Dual[T]) Sinh() Dual[T] {
	return Dual[T]{d0: x.d0.Sinh(), d1: x.d1.Mul(x.d0.Cosh())}
}

func (x Dual[T]) Cosh() Dual[T] {
	return Dual[T]{d0: x.d0.Cosh(), d1: x.d1.Mul(x.d0.Sinh())}
}

func (x Dual[T]) Tanh() Dual[T] {
	v := x.d0.Tanh()
	return Dual[T]{d0: v, d1: x.d1.Mul(scalar.One[T]().Sub(v.Mul(v)))}
}

var _ scalar.Number[Dual[scalar.Real]] = Dual[scalar.Real]{}
