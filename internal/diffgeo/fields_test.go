package diffgeo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricci-go/ricci/internal/autodiff"
	"github.com/ricci-go/ricci/internal/diffgeo"
	"github.com/ricci-go/ricci/internal/scalar"
)

// saddle is f(x, y) = x²y + sin(y).
func saddle(rec autodiff.Recorder[scalar.Real], v []autodiff.Variable[scalar.Real]) autodiff.Variable[scalar.Real] {
	x, y := v[0], v[1]
	return rec.Add(rec.Mul(rec.Mul(x, x), y), rec.Sin(y))
}

// TestScalarFieldEvaluate tests plain evaluation without recording.
func TestScalarFieldEvaluate(t *testing.T) {
	f := diffgeo.ScalarField[scalar.Real](saddle)
	got := f.Evaluate(point(2, 0.5))
	assert.InDelta(t, 4*0.5+math.Sin(0.5), got.Float64(), 1e-12)
}

// TestScalarFieldGradient tests ∇(x²y + sin y) = (2xy, x² + cos y),
// which is (0, 5) at (2, 0).
func TestScalarFieldGradient(t *testing.T) {
	f := diffgeo.ScalarField[scalar.Real](saddle)
	grad := f.Gradient(point(2, 0))
	require.Equal(t, 2, grad.Dim())
	assert.InDelta(t, 0, grad.At(0).Float64(), 1e-12)
	assert.InDelta(t, 5, grad.At(1).Float64(), 1e-12)
}

// TestScalarFieldHessian tests the Hessian [[2y, 2x], [2x, -sin y]] at
// (2, 0).
func TestScalarFieldHessian(t *testing.T) {
	f := diffgeo.ScalarField[scalar.Real](saddle)
	hess := f.Hessian(point(2, 0))
	assert.InDelta(t, 0, hess.At(0, 0).Float64(), 1e-12)
	assert.InDelta(t, 4, hess.At(0, 1).Float64(), 1e-12)
	assert.InDelta(t, 4, hess.At(1, 0).Float64(), 1e-12)
	assert.InDelta(t, 0, hess.At(1, 1).Float64(), 1e-12)
}

// TestVectorField tests evaluation and the Jacobian of (xy, x + y).
func TestVectorField(t *testing.T) {
	f := diffgeo.VectorField[scalar.Real](func(rec autodiff.Recorder[scalar.Real], v []autodiff.Variable[scalar.Real]) []autodiff.Variable[scalar.Real] {
		return []autodiff.Variable[scalar.Real]{
			rec.Mul(v[0], v[1]),
			rec.Add(v[0], v[1]),
		}
	})

	val := f.Evaluate(point(1.7, -0.3))
	assert.InDelta(t, 1.7*-0.3, val.At(0).Float64(), 1e-12)
	assert.InDelta(t, 1.4, val.At(1).Float64(), 1e-12)

	jac := f.Jacobian(point(1.7, -0.3))
	assert.InDelta(t, -0.3, jac.At(0, 0).Float64(), 1e-12)
	assert.InDelta(t, 1.7, jac.At(0, 1).Float64(), 1e-12)
	assert.InDelta(t, 1, jac.At(1, 0).Float64(), 1e-12)
	assert.InDelta(t, 1, jac.At(1, 1).Float64(), 1e-12)
}

// TestVectorFieldComponentMismatch tests the panic when a field's
// component count does not match the point dimension.
func TestVectorFieldComponentMismatch(t *testing.T) {
	f := diffgeo.VectorField[scalar.Real](func(rec autodiff.Recorder[scalar.Real], v []autodiff.Variable[scalar.Real]) []autodiff.Variable[scalar.Real] {
		return v[:1]
	})
	assert.Panics(t, func() { f.Evaluate(point(1, 2)) })
	assert.Panics(t, func() { f.Jacobian(point(1, 2)) })
}

// TestLaplaceBeltramiEuclidean tests that on the flat metric the
// operator reduces to the coordinate Laplacian: Δ(x² + y² + z²) = 6.
func TestLaplaceBeltramiEuclidean(t *testing.T) {
	eu := diffgeo.EuclideanMetric[scalar.Real](3)
	f := diffgeo.ScalarField[scalar.Real](func(rec autodiff.Recorder[scalar.Real], v []autodiff.Variable[scalar.Real]) autodiff.Variable[scalar.Real] {
		sum := rec.Mul(v[0], v[0])
		sum = rec.Add(sum, rec.Mul(v[1], v[1]))
		return rec.Add(sum, rec.Mul(v[2], v[2]))
	})

	got := diffgeo.LaplaceBeltrami(eu, f, point(0.3, -1.2, 2.5))
	assert.InDelta(t, 6, got.Float64(), 1e-10)
}

// TestLaplaceBeltramiPolar tests Δ in polar coordinates: r² has
// Laplacian 4, ln r is harmonic.
func TestLaplaceBeltramiPolar(t *testing.T) {
	polar := diffgeo.PolarMetric[scalar.Real]()

	rsq := diffgeo.ScalarField[scalar.Real](func(rec autodiff.Recorder[scalar.Real], v []autodiff.Variable[scalar.Real]) autodiff.Variable[scalar.Real] {
		return rec.Mul(v[0], v[0])
	})
	got := diffgeo.LaplaceBeltrami(polar, rsq, point(1.7, 0.4))
	assert.InDelta(t, 4, got.Float64(), 1e-10)

	lnr := diffgeo.ScalarField[scalar.Real](func(rec autodiff.Recorder[scalar.Real], v []autodiff.Variable[scalar.Real]) autodiff.Variable[scalar.Real] {
		return rec.Ln(v[0])
	})
	got = diffgeo.LaplaceBeltrami(polar, lnr, point(1.7, 0.4))
	assert.InDelta(t, 0, got.Float64(), 1e-10, "ln r is harmonic in the plane")
}

// TestLaplaceBeltramiSpherical tests Δ(r²) = 6 in spherical
// coordinates, matching the Cartesian result for the same function.
func TestLaplaceBeltramiSpherical(t *testing.T) {
	sph := diffgeo.SphericalMetric[scalar.Real]()
	rsq := diffgeo.ScalarField[scalar.Real](func(rec autodiff.Recorder[scalar.Real], v []autodiff.Variable[scalar.Real]) autodiff.Variable[scalar.Real] {
		return rec.Mul(v[0], v[0])
	})
	got := diffgeo.LaplaceBeltrami(sph, rsq, point(2, math.Pi/3, 1.1))
	assert.InDelta(t, 6, got.Float64(), 1e-9)
}

// TestLeviCivita3 tests the rank-3 antisymmetric symbol.
func TestLeviCivita3(t *testing.T) {
	eps := diffgeo.LeviCivita3[scalar.Real]()
	assert.InDelta(t, 1, eps.At(0, 1, 2).Float64(), 0)
	assert.InDelta(t, 1, eps.At(1, 2, 0).Float64(), 0)
	assert.InDelta(t, 1, eps.At(2, 0, 1).Float64(), 0)
	assert.InDelta(t, -1, eps.At(0, 2, 1).Float64(), 0)
	assert.InDelta(t, -1, eps.At(2, 1, 0).Float64(), 0)
	assert.InDelta(t, -1, eps.At(1, 0, 2).Float64(), 0)
	assert.InDelta(t, 0, eps.At(0, 0, 1).Float64(), 0)
	assert.InDelta(t, 0, eps.At(2, 2, 2).Float64(), 0)

	nonzero := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				if eps.At(i, j, k).Magnitude() != 0 {
					nonzero++
				}
			}
		}
	}
	assert.Equal(t, 6, nonzero)
}

// TestLeviCivita4 tests the rank-4 antisymmetric symbol.
func TestLeviCivita4(t *testing.T) {
	eps := diffgeo.LeviCivita4[scalar.Real]()
	assert.InDelta(t, 1, eps.At(0, 1, 2, 3).Float64(), 0)
	assert.InDelta(t, -1, eps.At(1, 0, 2, 3).Float64(), 0)
	assert.InDelta(t, 1, eps.At(1, 0, 3, 2).Float64(), 0)
	assert.InDelta(t, -1, eps.At(0, 1, 3, 2).Float64(), 0)
	assert.InDelta(t, 0, eps.At(0, 1, 2, 2).Float64(), 0)

	nonzero := 0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				for l := 0; l < 4; l++ {
					if eps.At(i, j, k, l).Magnitude() != 0 {
						nonzero++
					}
				}
			}
		}
	}
	assert.Equal(t, 24, nonzero)
}
