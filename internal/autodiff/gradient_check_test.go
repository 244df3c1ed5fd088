package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricci-go/ricci/internal/autodiff"
	"github.com/ricci-go/ricci/internal/scalar"
)

// Finite-difference checks. The same function is written once over
// plain floats, once over tape variables, and once over dual numbers,
// and every derivative path is compared against central differences.

const (
	fdStep    = 1e-5
	fdTol     = 1e-4
	hessStep  = 1e-4
	hessTol   = 1e-3
	crossTol  = 1e-12
	checkDim  = 3
	checkFnAt = "f(x,y,z) = eˣ·sin(y) + z²·ln(x+2) + tanh(xyz)"
)

func checkFn(v []float64) float64 {
	x, y, z := v[0], v[1], v[2]
	return math.Exp(x)*math.Sin(y) + z*z*math.Log(x+2) + math.Tanh(x*y*z)
}

func recordCheckFn(t autodiff.Recorder[scalar.Real], v []autodiff.Variable[scalar.Real]) autodiff.Variable[scalar.Real] {
	x, y, z := v[0], v[1], v[2]
	a := t.Mul(t.Exp(x), t.Sin(y))
	b := t.Mul(t.Mul(z, z), t.Ln(t.AddConstant(x, 2)))
	c := t.Tanh(t.Mul(t.Mul(x, y), z))
	return t.Add(t.Add(a, b), c)
}

func dualCheckFn(v []autodiff.Dual[scalar.Real]) autodiff.Dual[scalar.Real] {
	x, y, z := v[0], v[1], v[2]
	a := x.Exp().Mul(y.Sin())
	b := z.Mul(z).Mul(x.Add(x.FromReal(2)).Ln())
	c := x.Mul(y).Mul(z).Tanh()
	return a.Add(b).Add(c)
}

func hyperCheckFn(v []autodiff.HyperDual[scalar.Real]) autodiff.HyperDual[scalar.Real] {
	x, y, z := v[0], v[1], v[2]
	a := x.Exp().Mul(y.Sin())
	b := z.Mul(z).Mul(x.Add(x.FromReal(2)).Ln())
	c := x.Mul(y).Mul(z).Tanh()
	return a.Add(b).Add(c)
}

// numericalGradient approximates ∇f with central differences.
func numericalGradient(f func([]float64) float64, x []float64) []float64 {
	grad := make([]float64, len(x))
	p := make([]float64, len(x))
	for i := range x {
		copy(p, x)
		p[i] = x[i] + fdStep
		fp := f(p)
		p[i] = x[i] - fdStep
		fm := f(p)
		grad[i] = (fp - fm) / (2 * fdStep)
	}
	return grad
}

// numericalHessian approximates the Hessian with second-order central
// differences.
func numericalHessian(f func([]float64) float64, x []float64) [][]float64 {
	n := len(x)
	hess := make([][]float64, n)
	p := make([]float64, n)
	f0 := f(x)
	for i := range hess {
		hess[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		copy(p, x)
		p[i] = x[i] + hessStep
		fp := f(p)
		p[i] = x[i] - hessStep
		fm := f(p)
		hess[i][i] = (fp - 2*f0 + fm) / (hessStep * hessStep)
		for j := i + 1; j < n; j++ {
			copy(p, x)
			p[i], p[j] = x[i]+hessStep, x[j]+hessStep
			fpp := f(p)
			p[j] = x[j] - hessStep
			fpm := f(p)
			p[i] = x[i] - hessStep
			fmm := f(p)
			p[j] = x[j] + hessStep
			fmp := f(p)
			hess[i][j] = (fpp - fpm - fmp + fmm) / (4 * hessStep * hessStep)
			hess[j][i] = hess[i][j]
		}
	}
	return hess
}

func floats(x []scalar.Real) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v.Float64()
	}
	return out
}

// TestReverseGradientAgainstFiniteDifferences tests the gradient tape
// on a composite of exponential, trigonometric, logarithmic, and
// hyperbolic terms against central differences.
func TestReverseGradientAgainstFiniteDifferences(t *testing.T) {
	x := point(0.5, 1.2, -0.8)
	grad := autodiff.Gradient(recordCheckFn, x)
	want := numericalGradient(checkFn, floats(x))

	require.Len(t, grad, checkDim, checkFnAt)
	for i := range want {
		assert.InDelta(t, want[i], grad[i].Float64(), fdTol)
	}
}

// TestForwardGradientAgainstFiniteDifferences tests the dual-number
// gradient on the same composite.
func TestForwardGradientAgainstFiniteDifferences(t *testing.T) {
	x := point(0.5, 1.2, -0.8)
	grad := autodiff.ForwardGradient(dualCheckFn, x)
	want := numericalGradient(checkFn, floats(x))

	require.Len(t, grad, checkDim)
	for i := range want {
		assert.InDelta(t, want[i], grad[i].Float64(), fdTol)
	}
}

// TestForwardMatchesReverse tests that forward and reverse mode agree
// to machine precision on the same composite.
func TestForwardMatchesReverse(t *testing.T) {
	x := point(0.5, 1.2, -0.8)
	fwd := autodiff.ForwardGradient(dualCheckFn, x)
	rev := autodiff.Gradient(recordCheckFn, x)
	require.Len(t, fwd, len(rev))
	for i := range fwd {
		assert.InDelta(t, rev[i].Float64(), fwd[i].Float64(), crossTol)
	}
}

// TestHessianTapeAgainstFiniteDifferences tests the Hessian tape
// against second-order central differences.
func TestHessianTapeAgainstFiniteDifferences(t *testing.T) {
	x := point(0.5, 1.2, -0.8)
	hess := autodiff.Hessian(recordCheckFn, x)
	want := numericalHessian(checkFn, floats(x))

	require.Len(t, hess, checkDim)
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j], hess[i][j].Float64(), hessTol)
		}
	}
}

// TestForwardHessianAgainstReverse tests that hyper-dual and tape
// Hessians agree to machine precision.
func TestForwardHessianAgainstReverse(t *testing.T) {
	x := point(0.5, 1.2, -0.8)
	fwd := autodiff.ForwardHessian(hyperCheckFn, x)
	rev := autodiff.Hessian(recordCheckFn, x)
	for i := range fwd {
		for j := range fwd[i] {
			assert.InDelta(t, rev[i][j].Float64(), fwd[i][j].Float64(), crossTol)
		}
	}
}

// TestGradientTapeDerivativeAgainstFiniteDifferences sweeps each unary
// operation over a range of points and compares against central
// differences.
func TestGradientTapeDerivativeAgainstFiniteDifferences(t *testing.T) {
	ops := []struct {
		name string
		op   func(*autodiff.GradientTape[scalar.Real], autodiff.Variable[scalar.Real]) autodiff.Variable[scalar.Real]
		fn   func(float64) float64
		xs   []float64
	}{
		{"Sqrt", (*autodiff.GradientTape[scalar.Real]).Sqrt, math.Sqrt, []float64{0.25, 1, 2.5, 9}},
		{"Cbrt", (*autodiff.GradientTape[scalar.Real]).Cbrt, math.Cbrt, []float64{0.5, 1, 8}},
		{"Exp", (*autodiff.GradientTape[scalar.Real]).Exp, math.Exp, []float64{-2, 0, 1.5}},
		{"Ln", (*autodiff.GradientTape[scalar.Real]).Ln, math.Log, []float64{0.1, 1, 7}},
		{"Sin", (*autodiff.GradientTape[scalar.Real]).Sin, math.Sin, []float64{-1.2, 0, 2}},
		{"Tan", (*autodiff.GradientTape[scalar.Real]).Tan, math.Tan, []float64{-0.6, 0.4, 1}},
		{"Asin", (*autodiff.GradientTape[scalar.Real]).Asin, math.Asin, []float64{-0.5, 0, 0.5}},
		{"Atan", (*autodiff.GradientTape[scalar.Real]).Atan, math.Atan, []float64{-2, 0, 3}},
		{"Sinh", (*autodiff.GradientTape[scalar.Real]).Sinh, math.Sinh, []float64{-1, 0.5, 2}},
		{"Tanh", (*autodiff.GradientTape[scalar.Real]).Tanh, math.Tanh, []float64{-1.5, 0, 1.5}},
	}

	for _, tt := range ops {
		t.Run(tt.name, func(t *testing.T) {
			for _, xv := range tt.xs {
				tape := autodiff.NewGradientTape[scalar.Real]()
				x := tape.CreateVariable(scalar.Real(xv))
				tt.op(tape, x)
				grad := tape.ReverseAccumulate()

				want := (tt.fn(xv+fdStep) - tt.fn(xv-fdStep)) / (2 * fdStep)
				require.Len(t, grad, 1)
				assert.InDeltaf(t, want, grad[0].Float64(), fdTol, "at x = %v", xv)
			}
		})
	}
}
