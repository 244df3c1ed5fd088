package autodiff

import "github.com/ricci-go/ricci/internal/scalar"

// Recorder is the recording surface shared by GradientTape and
// HessianTape. Code that evaluates differentiable functions generically
// over the tape kind, such as the differential-geometry layer, accepts
// a Recorder and lets the caller decide which derivative order to pay
// for. Accumulation stays on the concrete tape types because its result
// shape differs.
//
// The custom-operation hooks are excluded: the derivative order a
// caller must supply differs per tape.
type Recorder[T scalar.Number[T]] interface {
	CreateVariable(value T) Variable[T]
	CreateVariables(values ...T) []Variable[T]
	IsTracking() bool
	StartTracking()
	StopTracking()
	Suspend() func()
	Reset()
	NodeCount() int
	VariableCount() int

	Add(x, y Variable[T]) Variable[T]
	AddConstant(x Variable[T], c T) Variable[T]
	Sub(x, y Variable[T]) Variable[T]
	SubConstant(x Variable[T], c T) Variable[T]
	ConstantSub(c T, x Variable[T]) Variable[T]
	Mul(x, y Variable[T]) Variable[T]
	MulConstant(x Variable[T], c T) Variable[T]
	Div(x, y Variable[T]) Variable[T]
	DivConstant(x Variable[T], c T) Variable[T]
	ConstantDiv(c T, x Variable[T]) Variable[T]
	Negate(x Variable[T]) Variable[T]
	Abs(x Variable[T]) Variable[T]
	Sqrt(x Variable[T]) Variable[T]
	Cbrt(x Variable[T]) Variable[T]
	Exp(x Variable[T]) Variable[T]
	Exp2(x Variable[T]) Variable[T]
	Exp10(x Variable[T]) Variable[T]
	Ln(x Variable[T]) Variable[T]
	Log2(x Variable[T]) Variable[T]
	Log10(x Variable[T]) Variable[T]
	Pow(x, y Variable[T]) Variable[T]
	PowConstant(x Variable[T], c T) Variable[T]
	Sin(x Variable[T]) Variable[T]
	Cos(x Variable[T]) Variable[T]
	Tan(x Variable[T]) Variable[T]
	Asin(x Variable[T]) Variable[T]
	Acos(x Variable[T]) Variable[T]
	Atan(x Variable[T]) Variable[T]
	Sinh(x Variable[T]) Variable[T]
	Cosh(x Variable[T]) Variable[T]
	Tanh(x Variable[T]) Variable[T]
}

var (
	_ Recorder[scalar.Real]    = (*GradientTape[scalar.Real])(nil)
	_ Recorder[scalar.Real]    = (*HessianTape[scalar.Real])(nil)
	_ Recorder[scalar.Complex] = (*GradientTape[scalar.Complex])(nil)
)
