package autodiff

import (
	"fmt"

	"github.com/ricci-go/ricci/internal/scalar"
)

// HyperDual is a forward-mode second-order number: a value, two
// independent first-derivative components, and one mixed
// second-derivative component. Seeding the two derivative slots with
// basis directions i and j and evaluating f yields ∂²f/∂xᵢ∂xⱼ in D3
// from that single pass, with no tape. Seeding both slots with the same
// direction yields a diagonal Hessian entry.
//
// HyperDual is immutable and implements scalar.Number over itself.
type HyperDual[T scalar.Number[T]] struct {
	d0, e1, e2, e12 T
}

// NewHyperDual returns a hyper-dual holding value with zero derivative
// components.
func NewHyperDual[T scalar.Number[T]](value T) HyperDual[T] {
	return HyperDual[T]{d0: value}
}

// WithSeed returns a copy of x with the two first-derivative components
// set to s1 and s2. The mixed component is reset to zero.
func (x HyperDual[T]) WithSeed(s1, s2 T) HyperDual[T] {
	return HyperDual[T]{d0: x.d0, e1: s1, e2: s2}
}

// D0 returns the value component.
func (x HyperDual[T]) D0() T { return x.d0 }

// D1 returns the first derivative component along the first seed.
func (x HyperDual[T]) D1() T { return x.e1 }

// D2 returns the first derivative component along the second seed.
func (x HyperDual[T]) D2() T { return x.e2 }

// D3 returns the mixed second-derivative component.
func (x HyperDual[T]) D3() T { return x.e12 }

// apply lifts a scalar function through the hyper-dual structure given
// its value and first and second derivatives at the value component:
// both first-order slots scale by d1, and the mixed slot picks up
// d1·e12 + d11·e1·e2.
func (x HyperDual[T]) apply(v, d1, d11 T) HyperDual[T] {
	return HyperDual[T]{
		d0:  v,
		e1:  d1.Mul(x.e1),
		e2:  d1.Mul(x.e2),
		e12: d1.Mul(x.e12).Add(d11.Mul(x.e1).Mul(x.e2)),
	}
}

func (x HyperDual[T]) Add(y HyperDual[T]) HyperDual[T] {
	return HyperDual[T]{
		d0:  x.d0.Add(y.d0),
		e1:  x.e1.Add(y.e1),
		e2:  x.e2.Add(y.e2),
		e12: x.e12.Add(y.e12),
	}
}

func (x HyperDual[T]) Sub(y HyperDual[T]) HyperDual[T] {
	return HyperDual[T]{
		d0:  x.d0.Sub(y.d0),
		e1:  x.e1.Sub(y.e1),
		e2:  x.e2.Sub(y.e2),
		e12: x.e12.Sub(y.e12),
	}
}

func (x HyperDual[T]) Mul(y HyperDual[T]) HyperDual[T] {
	return HyperDual[T]{
		d0: x.d0.Mul(y.d0),
		e1: x.d0.Mul(y.e1).Add(x.e1.Mul(y.d0)),
		e2: x.d0.Mul(y.e2).Add(x.e2.Mul(y.d0)),
		e12: x.d0.Mul(y.e12).
			Add(x.e1.Mul(y.e2)).
			Add(x.e2.Mul(y.e1)).
			Add(x.e12.Mul(y.d0)),
	}
}

// inv is the hyper-dual reciprocal, 1/v with derivatives -1/v², 2/v³.
func (x HyperDual[T]) inv() HyperDual[T] {
	vinv := scalar.One[T]().Div(x.d0)
	vinv2 := vinv.Mul(vinv)
	return x.apply(vinv, vinv2.Neg(), scalar.FromReal[T](2).Mul(vinv2).Mul(vinv))
}

func (x HyperDual[T]) Div(y HyperDual[T]) HyperDual[T] {
	return x.Mul(y.inv())
}

func (x HyperDual[T]) Neg() HyperDual[T] {
	return HyperDual[T]{d0: x.d0.Neg(), e1: x.e1.Neg(), e2: x.e2.Neg(), e12: x.e12.Neg()}
}

func (HyperDual[T]) Zero() HyperDual[T] { return HyperDual[T]{} }

func (HyperDual[T]) One() HyperDual[T] { return HyperDual[T]{d0: scalar.One[T]()} }

func (HyperDual[T]) NaN() HyperDual[T] {
	nan := scalar.NaN[T]()
	return HyperDual[T]{d0: nan, e1: nan, e2: nan, e12: nan}
}

func (HyperDual[T]) FromReal(v float64) HyperDual[T] {
	return HyperDual[T]{d0: scalar.FromReal[T](v)}
}

// Eq reports componentwise equality.
func (x HyperDual[T]) Eq(y HyperDual[T]) bool {
	return x.d0.Eq(y.d0) && x.e1.Eq(y.e1) && x.e2.Eq(y.e2) && x.e12.Eq(y.e12)
}

// IsNaN reports whether any component is NaN.
func (x HyperDual[T]) IsNaN() bool {
	return x.d0.IsNaN() || x.e1.IsNaN() || x.e2.IsNaN() || x.e12.IsNaN()
}

// Magnitude returns the magnitude of the value component.
func (x HyperDual[T]) Magnitude() float64 { return x.d0.Magnitude() }

func (x HyperDual[T]) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", x.d0.String(), x.e1.String(), x.e2.String(), x.e12.String())
}

func (x HyperDual[T]) Abs() HyperDual[T] {
	v := x.d0.Abs()
	var zero T
	return x.apply(v, x.d0.Div(v), zero)
}

func (x HyperDual[T]) Sqrt() HyperDual[T] {
	v := x.d0.Sqrt()
	one := scalar.One[T]()
	d1 := one.Div(v.Add(v))
	d11 := one.Neg().Div(scalar.FromReal[T](4).Mul(v).Mul(v).Mul(v))
	return x.apply(v, d1, d11)
}

func (x HyperDual[T]) Cbrt() HyperDual[T] {
	v := x.d0.Cbrt()
	v2 := v.Mul(v)
	d1 := scalar.One[T]().Div(scalar.FromReal[T](3).Mul(v2))
	d11 := scalar.FromReal[T](2).Neg().Div(scalar.FromReal[T](9).Mul(v2).Mul(v2).Mul(v))
	return x.apply(v, d1, d11)
}

func (x HyperDual[T]) Exp() HyperDual[T] {
	v := x.d0.Exp()
	return x.apply(v, v, v)
}

func (x HyperDual[T]) Exp2() HyperDual[T] {
	v := x.d0.Exp2()
	k := ln2[T]()
	d1 := v.Mul(k)
	return x.apply(v, d1, d1.Mul(k))
}

func (x HyperDual[T]) Exp10() HyperDual[T] {
	v := x.d0.Exp10()
	k := ln10[T]()
	d1 := v.Mul(k)
	return x.apply(v, d1, d1.Mul(k))
}

func (x HyperDual[T]) Ln() HyperDual[T] {
	d1 := scalar.One[T]().Div(x.d0)
	return x.apply(x.d0.Ln(), d1, d1.Mul(d1).Neg())
}

func (x HyperDual[T]) Log2() HyperDual[T] {
	xinv := scalar.One[T]().Div(x.d0)
	d1 := xinv.Div(ln2[T]())
	return x.apply(x.d0.Log2(), d1, d1.Mul(xinv).Neg())
}

func (x HyperDual[T]) Log10() HyperDual[T] {
	xinv := scalar.One[T]().Div(x.d0)
	d1 := xinv.Div(ln10[T]())
	return x.apply(x.d0.Log10(), d1, d1.Mul(xinv).Neg())
}

// Pow computes x^y as exp(y·ln x), which propagates all second-order
// cross terms through the existing Mul, Ln and Exp kernels.
func (x HyperDual[T]) Pow(y HyperDual[T]) HyperDual[T] {
	return y.Mul(x.Ln()).Exp()
}

func (x HyperDual[T]) PowReal(p float64) HyperDual[T] {
	v := x.d0.PowReal(p)
	pc := scalar.FromReal[T](p)
	d1 := pc.Mul(x.d0.PowReal(p - 1))
	d11 := pc.Mul(scalar.FromReal[T](p - 1)).Mul(x.d0.PowReal(p - 2))
	return x.apply(v, d1, d11)
}

func (x HyperDual[T]) Sin() HyperDual[T] {
	v := x.d0.Sin()
	return x.apply(v, x.d0.Cos(), v.Neg())
}

func (x HyperDual[T]) Cos() HyperDual[T] {
	v := x.d0.Cos()
	return x.apply(v, x.d0.Sin().Neg(), v.Neg())
}

func (x HyperDual[T]) Tan() HyperDual[T] {
	v := x.d0.Tan()
	s := scalar.One[T]().Add(v.Mul(v))
	return x.apply(v, s, scalar.FromReal[T](2).Mul(v).Mul(s))
}

func (x HyperDual[T]) Asin() HyperDual[T] {
	one := scalar.One[T]()
	r := one.Div(one.Sub(x.d0.Mul(x.d0)).Sqrt())
	return x.apply(x.d0.Asin(), r, x.d0.Mul(r).Mul(r).Mul(r))
}

func (x HyperDual[T]) Acos() HyperDual[T] {
	one := scalar.One[T]()
	r := one.Div(one.Sub(x.d0.Mul(x.d0)).Sqrt())
	return x.apply(x.d0.Acos(), r.Neg(), x.d0.Mul(r).Mul(r).Mul(r).Neg())
}

func (x HyperDual[T]) Atan() HyperDual[T] {
	one := scalar.One[T]()
	w := one.Add(x.d0.Mul(x.d0))
	d1 := one.Div(w)
	d11 := scalar.FromReal[T](2).Neg().Mul(x.d0).Div(w.Mul(w))
	return x.apply(x.d0.Atan(), d1, d11)
}

func (x HyperDual[T]) Sinh() HyperDual[T] {
	v := x.d0.Sinh()
	return x.apply(v, x.d0.Cosh(), v)
}

func (x HyperDual[T]) Cosh() HyperDual[T] {
	v := x.d0.Cosh()
	return x.apply(v, x.d0.Sinh(), v)
}

func (x HyperDual[T]) Tanh() HyperDual[T] {
	v := x.d0.Tanh()
	s := scalar.One[T]().Sub(v.Mul(v))
	return x.apply(v, s, scalar.FromReal[T](2).Neg().Mul(v).Mul(s))
}

var _ scalar.Number[HyperDual[scalar.Real]] = HyperDual[scalar.Real]{}
