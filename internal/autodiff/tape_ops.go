package autodiff

import (
	"github.com/ricci-go/ricci/internal/scalar"
)

// Operation methods compute the result value, evaluate the local partial
// derivatives at the operand values, and append a node recording both.
// Every method works on untracked operands and suspended tapes, where it
// degrades to plain evaluation.

// Add computes x + y.
func (t *GradientTape[T]) Add(x, y Variable[T]) Variable[T] {
	one := scalar.One[T]()
	return t.push2(x.value.Add(y.value), x.index, one, y.index, one)
}

// AddConstant computes x + c.
func (t *GradientTape[T]) AddConstant(x Variable[T], c T) Variable[T] {
	return t.push1(x.value.Add(c), x.index, scalar.One[T]())
}

// Sub computes x - y.
func (t *GradientTape[T]) Sub(x, y Variable[T]) Variable[T] {
	one := scalar.One[T]()
	return t.push2(x.value.Sub(y.value), x.index, one, y.index, one.Neg())
}

// SubConstant computes x - c.
func (t *GradientTape[T]) SubConstant(x Variable[T], c T) Variable[T] {
	return t.push1(x.value.Sub(c), x.index, scalar.One[T]())
}

// ConstantSub computes c - x.
func (t *GradientTape[T]) ConstantSub(c T, x Variable[T]) Variable[T] {
	return t.push1(c.Sub(x.value), x.index, scalar.One[T]().Neg())
}

// Mul computes x * y.
func (t *GradientTape[T]) Mul(x, y Variable[T]) Variable[T] {
	return t.push2(x.value.Mul(y.value), x.index, y.value, y.index, x.value)
}

// MulConstant computes x * c.
func (t *GradientTape[T]) MulConstant(x Variable[T], c T) Variable[T] {
	return t.push1(x.value.Mul(c), x.index, c)
}

// Div computes x / y. The partials are 1/y and -x/y²; division by zero
// propagates through them unchecked.
func (t *GradientTape[T]) Div(x, y Variable[T]) Variable[T] {
	v := x.value.Div(y.value)
	yinv := scalar.One[T]().Div(y.value)
	return t.push2(v, x.index, yinv, y.index, v.Neg().Mul(yinv))
}

// DivConstant computes x / c.
func (t *GradientTape[T]) DivConstant(x Variable[T], c T) Variable[T] {
	return t.push1(x.value.Div(c), x.index, scalar.One[T]().Div(c))
}

// ConstantDiv computes c / x with partial -c/x².
func (t *GradientTape[T]) ConstantDiv(c T, x Variable[T]) Variable[T] {
	v := c.Div(x.value)
	return t.push1(v, x.index, v.Neg().Div(x.value))
}

// Negate computes -x.
func (t *GradientTape[T]) Negate(x Variable[T]) Variable[T] {
	return t.push1(x.value.Neg(), x.index, scalar.One[T]().Neg())
}

// Abs computes |x| with partial x/|x|, the sign of x. The partial is
// undefined at zero and yields NaN there.
func (t *GradientTape[T]) Abs(x Variable[T]) Variable[T] {
	v := x.value.Abs()
	return t.push1(v, x.index, x.value.Div(v))
}

// Sqrt computes √x with partial 1/(2√x).
func (t *GradientTape[T]) Sqrt(x Variable[T]) Variable[T] {
	v := x.value.Sqrt()
	return t.push1(v, x.index, scalar.One[T]().Div(v.Add(v)))
}

// Cbrt computes ∛x with partial 1/(3∛x²).
func (t *GradientTape[T]) Cbrt(x Variable[T]) Variable[T] {
	v := x.value.Cbrt()
	three := scalar.FromReal[T](3)
	return t.push1(v, x.index, scalar.One[T]().Div(three.Mul(v.Mul(v))))
}

// Exp computes eˣ.
func (t *GradientTape[T]) Exp(x Variable[T]) Variable[T] {
	v := x.value.Exp()
	return t.push1(v, x.index, v)
}

// Exp2 computes 2ˣ with partial 2ˣ·ln 2.
func (t *GradientTape[T]) Exp2(x Variable[T]) Variable[T] {
	v := x.value.Exp2()
	return t.push1(v, x.index, v.Mul(ln2[T]()))
}

// Exp10 computes 10ˣ with partial 10ˣ·ln 10.
func (t *GradientTape[T]) Exp10(x Variable[T]) Variable[T] {
	v := x.value.Exp10()
	return t.push1(v, x.index, v.Mul(ln10[T]()))
}

// Ln computes the natural logarithm with partial 1/x.
func (t *GradientTape[T]) Ln(x Variable[T]) Variable[T] {
	return t.push1(x.value.Ln(), x.index, scalar.One[T]().Div(x.value))
}

// Log2 computes the base-2 logarithm with partial 1/(x·ln 2).
func (t *GradientTape[T]) Log2(x Variable[T]) Variable[T] {
	return t.push1(x.value.Log2(), x.index,
		scalar.One[T]().Div(x.value.Mul(ln2[T]())))
}

// Log10 computes the base-10 logarithm with partial 1/(x·ln 10).
func (t *GradientTape[T]) Log10(x Variable[T]) Variable[T] {
	return t.push1(x.value.Log10(), x.index,
		scalar.One[T]().Div(x.value.Mul(ln10[T]())))
}

// Pow computes x^y with partials y·x^(y-1) and x^y·ln x.
func (t *GradientTape[T]) Pow(x, y Variable[T]) Variable[T] {
	v := x.value.Pow(y.value)
	one := scalar.One[T]()
	dx := y.value.Mul(x.value.Pow(y.value.Sub(one)))
	dy := v.Mul(x.value.Ln())
	return t.push2(v, x.index, dx, y.index, dy)
}

// PowConstant computes x^c with partial c·x^(c-1).
func (t *GradientTape[T]) PowConstant(x Variable[T], c T) Variable[T] {
	v := x.value.Pow(c)
	return t.push1(v, x.index, c.Mul(x.value.Pow(c.Sub(scalar.One[T]()))))
}

// Sin computes sin x.
func (t *GradientTape[T]) Sin(x Variable[T]) Variable[T] {
	return t.push1(x.value.Sin(), x.index, x.value.Cos())
}

// Cos computes cos x.
func (t *GradientTape[T]) Cos(x Variable[T]) Variable[T] {
	return t.push1(x.value.Cos(), x.index, x.value.Sin().Neg())
}

// Tan computes tan x with partial sec²x = 1 + tan²x.
func (t *GradientTape[T]) Tan(x Variable[T]) Variable[T] {
	v := x.value.Tan()
	return t.push1(v, x.index, scalar.One[T]().Add(v.Mul(v)))
}

// Asin computes arcsin x with partial 1/√(1-x²).
func (t *GradientTape[T]) Asin(x Variable[T]) Variable[T] {
	one := scalar.One[T]()
	d := one.Div(one.Sub(x.value.Mul(x.value)).Sqrt())
	return t.push1(x.value.Asin(), x.index, d)
}

// Acos computes arccos x with partial -1/√(1-x²).
func (t *GradientTape[T]) Acos(x Variable[T]) Variable[T] {
	one := scalar.One[T]()
	d := one.Div(one.Sub(x.value.Mul(x.value)).Sqrt()).Neg()
	return t.push1(x.value.Acos(), x.index, d)
}

// Atan computes arctan x with partial 1/(1+x²).
func (t *GradientTape[T]) Atan(x Variable[T]) Variable[T] {
	one := scalar.One[T]()
	return t.push1(x.value.Atan(), x.index, one.Div(one.Add(x.value.Mul(x.value))))
}

// Sinh computes sinh x.
func (t *GradientTape[T]) Sinh(x Variable[T]) Variable[T] {
	return t.push1(x.value.Sinh(), x.index, x.value.Cosh())
}

// Cosh computes cosh x.
func (t *GradientTape[T]) Cosh(x Variable[T]) Variable[T] {
	return t.push1(x.value.Cosh(), x.index, x.value.Sinh())
}

// Tanh computes tanh x with partial sech²x = 1 - tanh²x.
func (t *GradientTape[T]) Tanh(x Variable[T]) Variable[T] {
	v := x.value.Tanh()
	return t.push1(v, x.index, scalar.One[T]().Sub(v.Mul(v)))
}

// CustomUnary records f(x) with caller-supplied value and derivative
// functions. df receives the operand value.
func (t *GradientTape[T]) CustomUnary(x Variable[T], f func(T) T, df func(T) T) Variable[T] {
	if !t.tracking {
		return Variable[T]{value: f(x.value), index: untracked}
	}
	return t.push1(f(x.value), x.index, df(x.value))
}

// CustomBinary records f(x, y) with caller-supplied value and partial
// derivative functions. dfx and dfy receive both operand values.
func (t *GradientTape[T]) CustomBinary(x, y Variable[T], f func(T, T) T, dfx, dfy func(T, T) T) Variable[T] {
	if !t.tracking {
		return Variable[T]{value: f(x.value, y.value), index: untracked}
	}
	return t.push2(f(x.value, y.value), x.index, dfx(x.value, y.value), y.index, dfy(x.value, y.value))
}
