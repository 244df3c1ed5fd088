package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricci-go/ricci/internal/autodiff"
	"github.com/ricci-go/ricci/internal/parallel"
	"github.com/ricci-go/ricci/internal/scalar"
)

// scalarField is f(x, y, z) = x·y + sin(z) over dual arguments.
func scalarField(v []autodiff.Dual[scalar.Real]) autodiff.Dual[scalar.Real] {
	return v[0].Mul(v[1]).Add(v[2].Sin())
}

// bowl is f(x, y) = x²y + y³ over hyper-dual arguments, with Hessian
// [[2y, 2x], [2x, 6y]].
func bowl(v []autodiff.HyperDual[scalar.Real]) autodiff.HyperDual[scalar.Real] {
	x, y := v[0], v[1]
	return x.Mul(x).Mul(y).Add(y.Mul(y).Mul(y))
}

// rosenbrock records f(x, y) = (1-x)² + 100(y-x²)² on a tape.
func rosenbrock(t autodiff.Recorder[scalar.Real], v []autodiff.Variable[scalar.Real]) autodiff.Variable[scalar.Real] {
	x, y := v[0], v[1]
	a := t.ConstantSub(1, x)
	b := t.Sub(y, t.Mul(x, x))
	return t.Add(t.Mul(a, a), t.MulConstant(t.Mul(b, b), 100))
}

func point(vs ...float64) []scalar.Real {
	x := make([]scalar.Real, len(vs))
	for i, v := range vs {
		x[i] = scalar.Real(v)
	}
	return x
}

// TestDerivative tests f(x) = x·sin(x), f'(x) = sin(x) + x·cos(x).
func TestDerivative(t *testing.T) {
	const x = 1.2
	d := autodiff.Derivative(func(x autodiff.Dual[scalar.Real]) autodiff.Dual[scalar.Real] {
		return x.Mul(x.Sin())
	}, scalar.Real(x))
	assert.InDelta(t, math.Sin(x)+x*math.Cos(x), d.Float64(), 1e-12)
}

// TestSecondDerivative tests f(x) = x·sin(x), f''(x) = 2cos(x) - x·sin(x).
func TestSecondDerivative(t *testing.T) {
	const x = 1.2
	d := autodiff.SecondDerivative(func(x autodiff.HyperDual[scalar.Real]) autodiff.HyperDual[scalar.Real] {
		return x.Mul(x.Sin())
	}, scalar.Real(x))
	assert.InDelta(t, 2*math.Cos(x)-x*math.Sin(x), d.Float64(), 1e-12)
}

// TestForwardGradient tests ∇(xy + sin z) = (y, x, cos z).
func TestForwardGradient(t *testing.T) {
	const x, y, z = 1.1, 2.3, 0.4
	grad := autodiff.ForwardGradient(scalarField, point(x, y, z))
	require.Len(t, grad, 3)
	assert.InDelta(t, y, grad[0].Float64(), 1e-12)
	assert.InDelta(t, x, grad[1].Float64(), 1e-12)
	assert.InDelta(t, math.Cos(z), grad[2].Float64(), 1e-12)
}

// TestGradientBothModes tests ∇(x²y + sin y) = (0, 5) at (2, 0) in forward
// and in reverse mode.
func TestGradientBothModes(t *testing.T) {
	x := point(2, 0)

	fwd := autodiff.ForwardGradient(func(v []autodiff.Dual[scalar.Real]) autodiff.Dual[scalar.Real] {
		return v[0].Mul(v[0]).Mul(v[1]).Add(v[1].Sin())
	}, x)
	rev := autodiff.Gradient(func(rec autodiff.Recorder[scalar.Real], v []autodiff.Variable[scalar.Real]) autodiff.Variable[scalar.Real] {
		return rec.Add(rec.Mul(rec.Mul(v[0], v[0]), v[1]), rec.Sin(v[1]))
	}, x)

	for _, grad := range [][]scalar.Real{fwd, rev} {
		require.Len(t, grad, 2)
		assert.InDelta(t, 0, grad[0].Float64(), 1e-12)
		assert.InDelta(t, 5, grad[1].Float64(), 1e-12)
	}
}

// TestParallelForwardGradient tests that the fan-out variant matches the
// sequential one.
func TestParallelForwardGradient(t *testing.T) {
	x := point(1.1, 2.3, 0.4)
	want := autodiff.ForwardGradient(scalarField, x)
	got := autodiff.ParallelForwardGradient(scalarField, x, parallel.Config{
		Enabled: true, NumWorkers: 4, MinUnits: 1,
	})
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].Float64(), got[i].Float64(), 0)
	}
}

// TestDirectionalDerivative tests that a seeded evaluation equals ∇f·v.
func TestDirectionalDerivative(t *testing.T) {
	x := point(1.1, 2.3, 0.4)
	v := point(0.5, -1, 2)

	got := autodiff.DirectionalDerivative(scalarField, x, v)

	grad := autodiff.ForwardGradient(scalarField, x)
	var want scalar.Real
	for i := range grad {
		want = want.Add(grad[i].Mul(v[i]))
	}
	assert.InDelta(t, want.Float64(), got.Float64(), 1e-12)

	assert.Panics(t, func() {
		autodiff.DirectionalDerivative(scalarField, x, point(1, 2))
	})
}

// TestForwardHessian tests the Hessian of x²y + y³ and its symmetry.
func TestForwardHessian(t *testing.T) {
	const x, y = 1.3, 0.8
	hess := autodiff.ForwardHessian(bowl, point(x, y))
	require.Len(t, hess, 2)
	assert.InDelta(t, 2*y, hess[0][0].Float64(), 1e-12)
	assert.InDelta(t, 2*x, hess[0][1].Float64(), 1e-12)
	assert.InDelta(t, 2*x, hess[1][0].Float64(), 1e-12)
	assert.InDelta(t, 6*y, hess[1][1].Float64(), 1e-12)
}

// TestParallelForwardHessian tests that the pair fan-out matches the
// sequential Hessian.
func TestParallelForwardHessian(t *testing.T) {
	x := point(1.3, 0.8)
	want := autodiff.ForwardHessian(bowl, x)
	got := autodiff.ParallelForwardHessian(bowl, x, parallel.Config{
		Enabled: true, NumWorkers: 3, MinUnits: 1,
	})
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j].Float64(), got[i][j].Float64(), 0)
		}
	}
}

// TestForwardHessianDiagonal tests the diagonal-only driver against the
// full Hessian.
func TestForwardHessianDiagonal(t *testing.T) {
	x := point(1.3, 0.8)
	hess := autodiff.ForwardHessian(bowl, x)
	diag := autodiff.ForwardHessianDiagonal(bowl, x)
	require.Len(t, diag, 2)
	assert.InDelta(t, hess[0][0].Float64(), diag[0].Float64(), 1e-12)
	assert.InDelta(t, hess[1][1].Float64(), diag[1].Float64(), 1e-12)
}

// TestGradient tests the reverse-mode driver on the Rosenbrock function:
// ∂f/∂x = -2(1-x) - 400x(y-x²), ∂f/∂y = 200(y-x²).
func TestGradient(t *testing.T) {
	const x, y = 1.2, 1.2
	grad := autodiff.Gradient(rosenbrock, point(x, y))
	require.Len(t, grad, 2)
	assert.InDelta(t, -2*(1-x)-400*x*(y-x*x), grad[0].Float64(), 1e-10)
	assert.InDelta(t, 200*(y-x*x), grad[1].Float64(), 1e-10)
}

// TestHessian tests the reverse-mode Hessian driver on Rosenbrock:
// ∂²f/∂x² = 2 - 400(y-x²) + 800x², ∂²f/∂x∂y = -400x, ∂²f/∂y² = 200.
func TestHessian(t *testing.T) {
	const x, y = 1.2, 1.2
	hess := autodiff.Hessian(rosenbrock, point(x, y))
	require.Len(t, hess, 2)
	assert.InDelta(t, 2-400*(y-x*x)+800*x*x, hess[0][0].Float64(), 1e-9)
	assert.InDelta(t, -400*x, hess[0][1].Float64(), 1e-10)
	assert.InDelta(t, -400*x, hess[1][0].Float64(), 1e-10)
	assert.InDelta(t, 200, hess[1][1].Float64(), 1e-10)
}

// vectorMap records f(x, y) = (xy, x+y, sin x) on a tape.
func vectorMap(t autodiff.Recorder[scalar.Real], v []autodiff.Variable[scalar.Real]) []autodiff.Variable[scalar.Real] {
	x, y := v[0], v[1]
	return []autodiff.Variable[scalar.Real]{
		t.Mul(x, y),
		t.Add(x, y),
		t.Sin(x),
	}
}

// TestJacobian tests J of (xy, x+y, sin x), rows indexed by output.
func TestJacobian(t *testing.T) {
	const x, y = 1.7, -0.3
	jac := autodiff.Jacobian(vectorMap, point(x, y))
	require.Len(t, jac, 3)

	want := [3][2]float64{
		{y, x},
		{1, 1},
		{math.Cos(x), 0},
	}
	for i := range want {
		for j := range want[i] {
			assert.InDelta(t, want[i][j], jac[i][j].Float64(), 1e-12)
		}
	}
}

// TestJacobianTranspose tests Jᵀ[i][j] == J[j][i].
func TestJacobianTranspose(t *testing.T) {
	x := point(1.7, -0.3)
	jac := autodiff.Jacobian(vectorMap, x)
	jt := autodiff.JacobianTranspose(vectorMap, x)
	require.Len(t, jt, 2)
	for i := range jt {
		require.Len(t, jt[i], 3)
		for j := range jt[i] {
			assert.InDelta(t, jac[j][i].Float64(), jt[i][j].Float64(), 0)
		}
	}
}

// TestVectorJacobianProduct tests vᵀJ against the explicit Jacobian.
func TestVectorJacobianProduct(t *testing.T) {
	x := point(1.7, -0.3)
	v := point(0.5, 2, -1)

	got := autodiff.VectorJacobianProduct(vectorMap, x, v)

	jac := autodiff.Jacobian(vectorMap, x)
	require.Len(t, got, 2)
	for j := range got {
		var want scalar.Real
		for i := range v {
			want = want.Add(v[i].Mul(jac[i][j]))
		}
		assert.InDelta(t, want.Float64(), got[j].Float64(), 1e-12)
	}

	assert.Panics(t, func() {
		autodiff.VectorJacobianProduct(vectorMap, x, point(1, 2))
	})
}

// dualVectorMap is (xy, x+y, sin x) over dual arguments.
func dualVectorMap(v []autodiff.Dual[scalar.Real]) []autodiff.Dual[scalar.Real] {
	x, y := v[0], v[1]
	return []autodiff.Dual[scalar.Real]{x.Mul(y), x.Add(y), x.Sin()}
}

// TestJacobianVectorProduct tests Jv against the explicit Jacobian.
func TestJacobianVectorProduct(t *testing.T) {
	x := point(1.7, -0.3)
	v := point(0.5, 2)

	got := autodiff.JacobianVectorProduct(dualVectorMap, x, v)

	jac := autodiff.Jacobian(vectorMap, x)
	require.Len(t, got, 3)
	for i := range got {
		var want scalar.Real
		for j := range v {
			want = want.Add(jac[i][j].Mul(v[j]))
		}
		assert.InDelta(t, want.Float64(), got[i].Float64(), 1e-12)
	}

	assert.Panics(t, func() {
		autodiff.JacobianVectorProduct(dualVectorMap, x, point(1))
	})
}

// TestDivergence tests ∇·(x², y², z²) = 2(x + y + z).
func TestDivergence(t *testing.T) {
	const x, y, z = 0.3, -1.2, 2.5
	div := autodiff.Divergence(func(v []autodiff.Dual[scalar.Real]) []autodiff.Dual[scalar.Real] {
		return []autodiff.Dual[scalar.Real]{
			v[0].Mul(v[0]), v[1].Mul(v[1]), v[2].Mul(v[2]),
		}
	}, point(x, y, z))
	assert.InDelta(t, 2*(x+y+z), div.Float64(), 1e-12)

	assert.Panics(t, func() {
		autodiff.Divergence(func(v []autodiff.Dual[scalar.Real]) []autodiff.Dual[scalar.Real] {
			return v[:2]
		}, point(x, y, z))
	})
}

// TestCurl tests ∇×(-y, x, 0) = (0, 0, 2) and ∇×∇φ = 0.
func TestCurl(t *testing.T) {
	rot := func(v []autodiff.Dual[scalar.Real]) []autodiff.Dual[scalar.Real] {
		return []autodiff.Dual[scalar.Real]{v[1].Neg(), v[0], {}}
	}
	curl := autodiff.Curl(rot, point(0.7, -0.2, 1.9))
	require.Len(t, curl, 3)
	assert.InDelta(t, 0, curl[0].Float64(), 1e-12)
	assert.InDelta(t, 0, curl[1].Float64(), 1e-12)
	assert.InDelta(t, 2, curl[2].Float64(), 1e-12)

	// A gradient field has zero curl.
	grad := func(v []autodiff.Dual[scalar.Real]) []autodiff.Dual[scalar.Real] {
		// ∇(xyz) = (yz, xz, xy).
		return []autodiff.Dual[scalar.Real]{
			v[1].Mul(v[2]), v[0].Mul(v[2]), v[0].Mul(v[1]),
		}
	}
	curl = autodiff.Curl(grad, point(0.7, -0.2, 1.9))
	for i := range curl {
		assert.InDelta(t, 0, curl[i].Float64(), 1e-12)
	}

	assert.Panics(t, func() { autodiff.Curl(rot, point(1, 2)) })
}

// TestLaplacian tests ∇²(x² + y² + z²) = 6 and ∇²(1/r) = 0 away from
// the origin.
func TestLaplacian(t *testing.T) {
	lap := autodiff.Laplacian(func(v []autodiff.HyperDual[scalar.Real]) autodiff.HyperDual[scalar.Real] {
		return v[0].Mul(v[0]).Add(v[1].Mul(v[1])).Add(v[2].Mul(v[2]))
	}, point(0.3, -1.2, 2.5))
	assert.InDelta(t, 6, lap.Float64(), 1e-12)

	harmonic := func(v []autodiff.HyperDual[scalar.Real]) autodiff.HyperDual[scalar.Real] {
		r2 := v[0].Mul(v[0]).Add(v[1].Mul(v[1])).Add(v[2].Mul(v[2]))
		return r2.Sqrt().One().Div(r2.Sqrt())
	}
	lap = autodiff.Laplacian(harmonic, point(0.7, -0.2, 1.9))
	assert.InDelta(t, 0, lap.Float64(), 1e-10)
}
