package diffgeo

import (
	"fmt"

	"github.com/ricci-go/ricci/internal/linalg"
	"github.com/ricci-go/ricci/internal/scalar"
)

// GeodesicConfig holds the fixed-step integration parameters.
type GeodesicConfig struct {
	// StepSize is the affine-parameter increment per step.
	StepSize float64
	// Steps is the number of integration steps.
	Steps int
}

// DefaultGeodesicConfig returns a configuration integrating one unit of
// affine parameter in one hundred steps.
func DefaultGeodesicConfig() GeodesicConfig {
	return GeodesicConfig{StepSize: 1e-2, Steps: 100}
}

// GeodesicState is one point of the geodesic flow: coordinate position
// and velocity.
type GeodesicState[T scalar.Number[T]] struct {
	Position linalg.Vector[T]
	Velocity linalg.Vector[T]
}

// Geodesic integrates the geodesic equation ẍᵏ + Γᵏᵢⱼẋⁱẋʲ = 0 from the
// initial state with classical fixed-step fourth-order Runge-Kutta. The
// returned trajectory holds Steps+1 states, the initial state first.
// Along an exact geodesic g(ẋ, ẋ) is conserved; the integrator
// preserves it to the scheme's order.
func Geodesic[T scalar.Number[T]](f *MetricField[T], initial GeodesicState[T], cfg GeodesicConfig) []GeodesicState[T] {
	if cfg.Steps < 0 {
		panic(fmt.Sprintf("negative step count %d", cfg.Steps))
	}
	if initial.Position.Dim() != f.Dim() || initial.Velocity.Dim() != f.Dim() {
		panic(fmt.Sprintf("state dimension (%d, %d) does not match metric dimension %d",
			initial.Position.Dim(), initial.Velocity.Dim(), f.Dim()))
	}

	h := scalar.FromReal[T](cfg.StepSize)
	half := scalar.FromReal[T](0.5)
	sixth := scalar.FromReal[T](1.0 / 6.0)
	two := scalar.FromReal[T](2)

	traj := make([]GeodesicState[T], 0, cfg.Steps+1)
	traj = append(traj, initial)
	s := initial
	for step := 0; step < cfg.Steps; step++ {
		k1p, k1v := geodesicDeriv(f, s)
		k2p, k2v := geodesicDeriv(f, advance(s, k1p, k1v, h.Mul(half)))
		k3p, k3v := geodesicDeriv(f, advance(s, k2p, k2v, h.Mul(half)))
		k4p, k4v := geodesicDeriv(f, advance(s, k3p, k3v, h))

		dp := k1p.Add(k2p.Scale(two)).Add(k3p.Scale(two)).Add(k4p).Scale(h.Mul(sixth))
		dv := k1v.Add(k2v.Scale(two)).Add(k3v.Scale(two)).Add(k4v).Scale(h.Mul(sixth))
		s = GeodesicState[T]{Position: s.Position.Add(dp), Velocity: s.Velocity.Add(dv)}
		traj = append(traj, s)
	}
	return traj
}

// geodesicDeriv returns the flow derivative (ẋ, v̇) at the state:
// ẋ = v and v̇ᵏ = −Γᵏᵢⱼvⁱvʲ with the symbols evaluated at the position.
func geodesicDeriv[T scalar.Number[T]](f *MetricField[T], s GeodesicState[T]) (linalg.Vector[T], linalg.Vector[T]) {
	n := f.Dim()
	x := make([]T, n)
	for i := 0; i < n; i++ {
		x[i] = s.Position.At(i)
	}
	gamma := ChristoffelSecondKind(f, x)

	acc := linalg.NewVector[T](n)
	for k := 0; k < n; k++ {
		var sum T
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				sum = sum.Add(gamma.At(k, i, j).Mul(s.Velocity.At(i)).Mul(s.Velocity.At(j)))
			}
		}
		acc.Set(k, sum.Neg())
	}
	return s.Velocity, acc
}

func advance[T scalar.Number[T]](s GeodesicState[T], dp, dv linalg.Vector[T], h T) GeodesicState[T] {
	return GeodesicState[T]{
		Position: s.Position.Add(dp.Scale(h)),
		Velocity: s.Velocity.Add(dv.Scale(h)),
	}
}
