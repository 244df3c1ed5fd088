package autodiff

import (
	"github.com/ricci-go/ricci/internal/scalar"
)

// Operation methods mirror GradientTape, additionally evaluating and
// recording the second-order local partials.

// Add computes x + y.
func (t *HessianTape[T]) Add(x, y Variable[T]) Variable[T] {
	one := scalar.One[T]()
	var zero T
	return t.push2(x.value.Add(y.value), x.index, one, zero, y.index, one, zero, zero)
}

// AddConstant computes x + c.
func (t *HessianTape[T]) AddConstant(x Variable[T], c T) Variable[T] {
	var zero T
	return t.push1(x.value.Add(c), x.index, scalar.One[T](), zero)
}

// Sub computes x - y.
func (t *HessianTape[T]) Sub(x, y Variable[T]) Variable[T] {
	one := scalar.One[T]()
	var zero T
	return t.push2(x.value.Sub(y.value), x.index, one, zero, y.index, one.Neg(), zero, zero)
}

// SubConstant computes x - c.
func (t *HessianTape[T]) SubConstant(x Variable[T], c T) Variable[T] {
	var zero T
	return t.push1(x.value.Sub(c), x.index, scalar.One[T](), zero)
}

// ConstantSub computes c - x.
func (t *HessianTape[T]) ConstantSub(c T, x Variable[T]) Variable[T] {
	var zero T
	return t.push1(c.Sub(x.value), x.index, scalar.One[T]().Neg(), zero)
}

// Mul computes x * y. The only surviving second partial is the cross
// term ∂²(xy)/∂x∂y = 1.
func (t *HessianTape[T]) Mul(x, y Variable[T]) Variable[T] {
	var zero T
	return t.push2(x.value.Mul(y.value), x.index, y.value, zero, y.index, x.value, zero, scalar.One[T]())
}

// MulConstant computes x * c.
func (t *HessianTape[T]) MulConstant(x Variable[T], c T) Variable[T] {
	var zero T
	return t.push1(x.value.Mul(c), x.index, c, zero)
}

// Div computes x / y with partials 1/y, -x/y² and second partials
// ∂²/∂x∂y = -1/y², ∂²/∂y² = 2x/y³.
func (t *HessianTape[T]) Div(x, y Variable[T]) Variable[T] {
	v := x.value.Div(y.value)
	yinv := scalar.One[T]().Div(y.value)
	yinv2 := yinv.Mul(yinv)
	var zero T
	return t.push2(v,
		x.index, yinv, zero,
		y.index, v.Neg().Mul(yinv), scalar.FromReal[T](2).Mul(v).Mul(yinv2),
		yinv2.Neg())
}

// DivConstant computes x / c.
func (t *HessianTape[T]) DivConstant(x Variable[T], c T) Variable[T] {
	var zero T
	return t.push1(x.value.Div(c), x.index, scalar.One[T]().Div(c), zero)
}

// ConstantDiv computes c / x with partial -c/x² and second partial 2c/x³.
func (t *HessianTape[T]) ConstantDiv(c T, x Variable[T]) Variable[T] {
	v := c.Div(x.value)
	d1 := v.Neg().Div(x.value)
	d11 := scalar.FromReal[T](2).Mul(v).Div(x.value.Mul(x.value))
	return t.push1(v, x.index, d1, d11)
}

// Negate computes -x.
func (t *HessianTape[T]) Negate(x Variable[T]) Variable[T] {
	var zero T
	return t.push1(x.value.Neg(), x.index, scalar.One[T]().Neg(), zero)
}

// Abs computes |x| with partial x/|x| and zero second partial away from
// the origin.
func (t *HessianTape[T]) Abs(x Variable[T]) Variable[T] {
	v := x.value.Abs()
	var zero T
	return t.push1(v, x.index, x.value.Div(v), zero)
}

// Sqrt computes √x with partials 1/(2√x) and -1/(4x√x).
func (t *HessianTape[T]) Sqrt(x Variable[T]) Variable[T] {
	v := x.value.Sqrt()
	one := scalar.One[T]()
	d1 := one.Div(v.Add(v))
	d11 := one.Neg().Div(scalar.FromReal[T](4).Mul(v).Mul(v).Mul(v))
	return t.push1(v, x.index, d1, d11)
}

// Cbrt computes ∛x with partials 1/(3∛x²) and -2/(9x∛x²).
func (t *HessianTape[T]) Cbrt(x Variable[T]) Variable[T] {
	v := x.value.Cbrt()
	v2 := v.Mul(v)
	d1 := scalar.One[T]().Div(scalar.FromReal[T](3).Mul(v2))
	d11 := scalar.FromReal[T](2).Neg().Div(scalar.FromReal[T](9).Mul(v2).Mul(v2).Mul(v))
	return t.push1(v, x.index, d1, d11)
}

// Exp computes eˣ; all derivatives equal the value.
func (t *HessianTape[T]) Exp(x Variable[T]) Variable[T] {
	v := x.value.Exp()
	return t.push1(v, x.index, v, v)
}

// Exp2 computes 2ˣ with partials scaling by powers of ln 2.
func (t *HessianTape[T]) Exp2(x Variable[T]) Variable[T] {
	v := x.value.Exp2()
	k := ln2[T]()
	d1 := v.Mul(k)
	return t.push1(v, x.index, d1, d1.Mul(k))
}

// Exp10 computes 10ˣ with partials scaling by powers of ln 10.
func (t *HessianTape[T]) Exp10(x Variable[T]) Variable[T] {
	v := x.value.Exp10()
	k := ln10[T]()
	d1 := v.Mul(k)
	return t.push1(v, x.index, d1, d1.Mul(k))
}

// Ln computes the natural logarithm with partials 1/x and -1/x².
func (t *HessianTape[T]) Ln(x Variable[T]) Variable[T] {
	d1 := scalar.One[T]().Div(x.value)
	return t.push1(x.value.Ln(), x.index, d1, d1.Mul(d1).Neg())
}

// Log2 computes the base-2 logarithm.
func (t *HessianTape[T]) Log2(x Variable[T]) Variable[T] {
	xinv := scalar.One[T]().Div(x.value)
	d1 := xinv.Div(ln2[T]())
	return t.push1(x.value.Log2(), x.index, d1, d1.Mul(xinv).Neg())
}

// Log10 computes the base-10 logarithm.
func (t *HessianTape[T]) Log10(x Variable[T]) Variable[T] {
	xinv := scalar.One[T]().Div(x.value)
	d1 := xinv.Div(ln10[T]())
	return t.push1(x.value.Log10(), x.index, d1, d1.Mul(xinv).Neg())
}

// Pow computes x^y with the full second-order partial set:
// ∂²/∂x² = y(y-1)x^(y-2), ∂²/∂x∂y = x^(y-1)(1 + y·ln x),
// ∂²/∂y² = x^y·ln²x.
func (t *HessianTape[T]) Pow(x, y Variable[T]) Variable[T] {
	one := scalar.One[T]()
	xv, yv := x.value, y.value
	v := xv.Pow(yv)
	lnx := xv.Ln()
	xym1 := xv.Pow(yv.Sub(one))
	d1 := yv.Mul(xym1)
	d2 := v.Mul(lnx)
	d11 := yv.Mul(yv.Sub(one)).Mul(xv.Pow(yv.Sub(scalar.FromReal[T](2))))
	d12 := xym1.Mul(one.Add(yv.Mul(lnx)))
	d22 := d2.Mul(lnx)
	return t.push2(v, x.index, d1, d11, y.index, d2, d22, d12)
}

// PowConstant computes x^c with partials c·x^(c-1) and c(c-1)·x^(c-2).
func (t *HessianTape[T]) PowConstant(x Variable[T], c T) Variable[T] {
	one := scalar.One[T]()
	v := x.value.Pow(c)
	d1 := c.Mul(x.value.Pow(c.Sub(one)))
	d11 := c.Mul(c.Sub(one)).Mul(x.value.Pow(c.Sub(scalar.FromReal[T](2))))
	return t.push1(v, x.index, d1, d11)
}

// Sin computes sin x.
func (t *HessianTape[T]) Sin(x Variable[T]) Variable[T] {
	v := x.value.Sin()
	return t.push1(v, x.index, x.value.Cos(), v.Neg())
}

// Cos computes cos x.
func (t *HessianTape[T]) Cos(x Variable[T]) Variable[T] {
	v := x.value.Cos()
	return t.push1(v, x.index, x.value.Sin().Neg(), v.Neg())
}

// Tan computes tan x with partials sec²x and 2·tan x·sec²x.
func (t *HessianTape[T]) Tan(x Variable[T]) Variable[T] {
	v := x.value.Tan()
	s := scalar.One[T]().Add(v.Mul(v))
	return t.push1(v, x.index, s, scalar.FromReal[T](2).Mul(v).Mul(s))
}

// Asin computes arcsin x with partials (1-x²)^(-1/2) and x(1-x²)^(-3/2).
func (t *HessianTape[T]) Asin(x Variable[T]) Variable[T] {
	one := scalar.One[T]()
	r := one.Div(one.Sub(x.value.Mul(x.value)).Sqrt())
	return t.push1(x.value.Asin(), x.index, r, x.value.Mul(r).Mul(r).Mul(r))
}

// Acos computes arccos x; partials are the negation of Asin's.
func (t *HessianTape[T]) Acos(x Variable[T]) Variable[T] {
	one := scalar.One[T]()
	r := one.Div(one.Sub(x.value.Mul(x.value)).Sqrt())
	return t.push1(x.value.Acos(), x.index, r.Neg(), x.value.Mul(r).Mul(r).Mul(r).Neg())
}

// Atan computes arctan x with partials 1/(1+x²) and -2x/(1+x²)².
func (t *HessianTape[T]) Atan(x Variable[T]) Variable[T] {
	one := scalar.One[T]()
	w := one.Add(x.value.Mul(x.value))
	d1 := one.Div(w)
	d11 := scalar.FromReal[T](2).Neg().Mul(x.value).Div(w.Mul(w))
	return t.push1(x.value.Atan(), x.index, d1, d11)
}

// Sinh computes sinh x.
func (t *HessianTape[T]) Sinh(x Variable[T]) Variable[T] {
	v := x.value.Sinh()
	return t.push1(v, x.index, x.value.Cosh(), v)
}

// Cosh computes cosh x.
func (t *HessianTape[T]) Cosh(x Variable[T]) Variable[T] {
	v := x.value.Cosh()
	return t.push1(v, x.index, x.value.Sinh(), v)
}

// Tanh computes tanh x with partials sech²x and -2·tanh x·sech²x.
func (t *HessianTape[T]) Tanh(x Variable[T]) Variable[T] {
	v := x.value.Tanh()
	s := scalar.One[T]().Sub(v.Mul(v))
	return t.push1(v, x.index, s, scalar.FromReal[T](2).Neg().Mul(v).Mul(s))
}

// CustomUnary records f(x) with caller-supplied value, first and second
// derivative functions, each receiving the operand value.
func (t *HessianTape[T]) CustomUnary(x Variable[T], f, df, d2f func(T) T) Variable[T] {
	if !t.tracking {
		return Variable[T]{value: f(x.value), index: untracked}
	}
	return t.push1(f(x.value), x.index, df(x.value), d2f(x.value))
}

// CustomBinary records f(x, y) with caller-supplied value, first partial
// and second partial functions, each receiving both operand values.
func (t *HessianTape[T]) CustomBinary(x, y Variable[T], f, dfx, dfy, dfxx, dfxy, dfyy func(T, T) T) Variable[T] {
	if !t.tracking {
		return Variable[T]{value: f(x.value, y.value), index: untracked}
	}
	xv, yv := x.value, y.value
	return t.push2(f(xv, yv), x.index, dfx(xv, yv), dfxx(xv, yv), y.index, dfy(xv, yv), dfyy(xv, yv), dfxy(xv, yv))
}
