package autodiff

import (
	"fmt"

	"github.com/ricci-go/ricci/internal/scalar"
)

// hessianNode extends node with the second-order local partials of the
// operation, evaluated at recording time: d11 = ∂²v/∂x₁², d12 = ∂²v/∂x₁∂x₂,
// d22 = ∂²v/∂x₂². Self-referencing conventions match node.
type hessianNode[T scalar.Number[T]] struct {
	i1, i2        int
	d1, d2        T
	d11, d12, d22 T
}

// HessianTape records elementary operations together with their
// second-order local partials and computes full Hessians by reverse
// accumulation. The operation surface mirrors GradientTape; recording
// costs a few extra derivative evaluations per node.
//
// One recording suffices for the gradient and the whole Hessian; the
// user function is never re-evaluated.
type HessianTape[T scalar.Number[T]] struct {
	nodes    []hessianNode[T]
	leaves   []int
	tracking bool
}

// NewHessianTape creates an empty tape with tracking enabled.
func NewHessianTape[T scalar.Number[T]]() *HessianTape[T] {
	return &HessianTape[T]{
		nodes:    make([]hessianNode[T], 0, 64),
		tracking: true,
	}
}

// CreateVariable appends a leaf node holding value and returns its
// handle. While tracking is suspended the value is wrapped untracked.
func (t *HessianTape[T]) CreateVariable(value T) Variable[T] {
	if !t.tracking {
		return Variable[T]{value: value, index: untracked}
	}
	idx := len(t.nodes)
	t.nodes = append(t.nodes, hessianNode[T]{i1: idx, i2: idx})
	t.leaves = append(t.leaves, idx)
	return Variable[T]{value: value, index: idx}
}

// CreateVariables appends one leaf per value, in argument order.
func (t *HessianTape[T]) CreateVariables(values ...T) []Variable[T] {
	vars := make([]Variable[T], len(values))
	for i, v := range values {
		vars[i] = t.CreateVariable(v)
	}
	return vars
}

// IsTracking reports whether operations are currently being recorded.
func (t *HessianTape[T]) IsTracking() bool { return t.tracking }

// StartTracking enables operation recording.
func (t *HessianTape[T]) StartTracking() { t.tracking = true }

// StopTracking disables operation recording.
func (t *HessianTape[T]) StopTracking() { t.tracking = false }

// Suspend disables tracking and returns a function restoring the prior
// state. Meant for defer, as on GradientTape.
func (t *HessianTape[T]) Suspend() func() {
	prev := t.tracking
	t.tracking = false
	return func() { t.tracking = prev }
}

// Reset clears all recorded nodes and leaves. Tracking state is
// preserved.
func (t *HessianTape[T]) Reset() {
	t.nodes = t.nodes[:0]
	t.leaves = t.leaves[:0]
}

// NodeCount returns the number of recorded nodes, leaves included.
func (t *HessianTape[T]) NodeCount() int { return len(t.nodes) }

// VariableCount returns the number of leaves created by CreateVariable.
func (t *HessianTape[T]) VariableCount() int { return len(t.leaves) }

// ReverseAccumulateGradient computes the first-order gradient of the
// most recently recorded node, exactly as GradientTape.ReverseAccumulate
// does. The tape is not mutated.
func (t *HessianTape[T]) ReverseAccumulateGradient() []T {
	if len(t.nodes) == 0 {
		return nil
	}
	adj := t.adjoints(len(t.nodes) - 1)
	return t.atLeaves(adj)
}

// ReverseAccumulateGradientFrom computes the gradient of the given
// recorded output with respect to every leaf.
func (t *HessianTape[T]) ReverseAccumulateGradientFrom(output Variable[T]) []T {
	t.checkOutput(output)
	return t.atLeaves(t.adjoints(output.index))
}

// ReverseAccumulateHessian computes the full Hessian of the most
// recently recorded node with respect to the leaves, H[i][j] = ∂²f/∂xᵢ∂xⱼ
// in leaf creation order.
//
// The adjoint pass runs once. Then, for each leaf direction, a forward
// sweep propagates tangents ẋ through the stored first-order partials,
// and a reverse sweep propagates adjoint-tangent pairs using the stored
// second-order partials: each operand slot receives ḋ·v̄ + d·v̄̇, where ḋ
// is the directional derivative of the local partial. One recording, no
// re-evaluation, O(leaves × nodes) total.
func (t *HessianTape[T]) ReverseAccumulateHessian() [][]T {
	if len(t.nodes) == 0 {
		return nil
	}
	return t.hessian(len(t.nodes) - 1)
}

// ReverseAccumulateHessianFrom computes the Hessian of the given
// recorded output.
func (t *HessianTape[T]) ReverseAccumulateHessianFrom(output Variable[T]) [][]T {
	t.checkOutput(output)
	return t.hessian(output.index)
}

func (t *HessianTape[T]) checkOutput(output Variable[T]) {
	if !output.Tracked() {
		panic("autodiff: cannot accumulate from an untracked variable")
	}
	if output.index >= len(t.nodes) {
		panic(fmt.Sprintf("autodiff: variable index %d out of range for tape with %d nodes (foreign or reset tape)",
			output.index, len(t.nodes)))
	}
}

// adjoints runs the first-order backward pass and returns the full
// adjoint buffer, one slot per node.
func (t *HessianTape[T]) adjoints(root int) []T {
	adj := make([]T, len(t.nodes))
	adj[root] = scalar.One[T]()
	for i := root; i >= 0; i-- {
		n := &t.nodes[i]
		a := adj[i]
		if n.i1 != i {
			adj[n.i1] = adj[n.i1].Add(n.d1.Mul(a))
		}
		if n.i2 != i {
			adj[n.i2] = adj[n.i2].Add(n.d2.Mul(a))
		}
	}
	return adj
}

func (t *HessianTape[T]) atLeaves(adj []T) []T {
	out := make([]T, len(t.leaves))
	for k, leaf := range t.leaves {
		out[k] = adj[leaf]
	}
	return out
}

func (t *HessianTape[T]) hessian(root int) [][]T {
	adj := t.adjoints(root)
	n := len(t.nodes)
	hess := make([][]T, len(t.leaves))
	tan := make([]T, n)
	adjDot := make([]T, n)

	var zero T
	for k, seed := range t.leaves {
		for i := range tan {
			tan[i] = zero
			adjDot[i] = zero
		}

		// Forward sweep: directional derivative of every node value
		// along leaf direction k. Nodes before the seed cannot depend
		// on it and keep a zero tangent. Each operand slot contributes
		// independently; self-referencing slots contribute nothing.
		tan[seed] = scalar.One[T]()
		for i := seed + 1; i <= root; i++ {
			nd := &t.nodes[i]
			v := zero
			if nd.i1 != i {
				v = nd.d1.Mul(tan[nd.i1])
			}
			if nd.i2 != i {
				v = v.Add(nd.d2.Mul(tan[nd.i2]))
			}
			tan[i] = v
		}

		// Reverse sweep: how each adjoint varies along direction k.
		// ḋ is the tangent of the stored local partial, assembled from
		// the second-order partials.
		for i := root; i >= 0; i-- {
			nd := &t.nodes[i]
			a, aDot := adj[i], adjDot[i]
			if nd.i1 != i {
				d1Dot := nd.d11.Mul(tan[nd.i1])
				if nd.i2 != i {
					d1Dot = d1Dot.Add(nd.d12.Mul(tan[nd.i2]))
				}
				adjDot[nd.i1] = adjDot[nd.i1].Add(d1Dot.Mul(a)).Add(nd.d1.Mul(aDot))
			}
			if nd.i2 != i {
				d2Dot := nd.d22.Mul(tan[nd.i2])
				if nd.i1 != i {
					d2Dot = d2Dot.Add(nd.d12.Mul(tan[nd.i1]))
				}
				adjDot[nd.i2] = adjDot[nd.i2].Add(d2Dot.Mul(a)).Add(nd.d2.Mul(aDot))
			}
		}

		row := make([]T, len(t.leaves))
		for j, leaf := range t.leaves {
			row[j] = adjDot[leaf]
		}
		hess[k] = row
	}
	return hess
}

// push2 records a binary node with first- and second-order partials.
// Untracked operands enter as constants: their first and second partials
// and the cross term are zeroed.
func (t *HessianTape[T]) push2(value T, i1 int, d1, d11 T, i2 int, d2, d22 T, d12 T) Variable[T] {
	if !t.tracking {
		return Variable[T]{value: value, index: untracked}
	}
	idx := len(t.nodes)
	if i1 >= idx || i2 >= idx {
		panic(fmt.Sprintf("autodiff: operand index %d out of range for tape with %d nodes (foreign or reset tape)",
			max(i1, i2), idx))
	}
	var zero T
	if i1 < 0 {
		i1, d1, d11, d12 = idx, zero, zero, zero
	}
	if i2 < 0 {
		i2, d2, d22, d12 = idx, zero, zero, zero
	}
	t.nodes = append(t.nodes, hessianNode[T]{i1: i1, i2: i2, d1: d1, d2: d2, d11: d11, d12: d12, d22: d22})
	return Variable[T]{value: value, index: idx}
}

// push1 records a unary node. The unused second operand slot goes
// through the constant substitution in push2 and ends up
// self-referencing, so accumulation never touches it.
func (t *HessianTape[T]) push1(value T, i1 int, d1, d11 T) Variable[T] {
	var zero T
	return t.push2(value, i1, d1, d11, untracked, zero, zero, zero)
}
