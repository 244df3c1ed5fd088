package autodiff

import (
	"fmt"

	"github.com/ricci-go/ricci/internal/scalar"
)

// node is one entry of the reverse-mode operation log. It stores the
// indices of its one or two operands and the local partial derivative of
// the node's output with respect to each, evaluated at recording time.
//
// Operand indices always refer to strictly earlier entries, so the log
// is a DAG in insertion order. Leaves and constant operands reference
// the node itself with zero partials; the backward walk recognizes the
// self-reference and propagates nothing through it.
type node[T scalar.Number[T]] struct {
	i1, i2 int
	d1, d2 T
}

// GradientTape records elementary operations during evaluation and
// computes first-order gradients by reverse accumulation.
//
// Usage:
//
//	tape := NewGradientTape[scalar.Real]()
//	x := tape.CreateVariable(2)
//	y := tape.CreateVariable(0)
//	f := tape.Add(tape.Mul(tape.Mul(x, x), y), tape.Sin(y))
//	grad := tape.ReverseAccumulate() // df/dx, df/dy
//
// A tape is not safe for concurrent use. Accumulation reads the tape but
// never mutates it, so accumulating twice yields identical results.
type GradientTape[T scalar.Number[T]] struct {
	nodes    []node[T] // Recorded operations (in execution order)
	leaves   []int     // Node indices of CreateVariable calls (in creation order)
	tracking bool      // Whether operations append nodes
}

// NewGradientTape creates an empty tape with tracking enabled.
func NewGradientTape[T scalar.Number[T]]() *GradientTape[T] {
	return &GradientTape[T]{
		nodes:    make([]node[T], 0, 64), // Pre-allocate for common case
		tracking: true,
	}
}

// CreateVariable appends a leaf node holding value and returns its
// handle. Leaves accumulate the gradient components, in creation order.
// While tracking is suspended the value is wrapped untracked instead.
func (t *GradientTape[T]) CreateVariable(value T) Variable[T] {
	if !t.tracking {
		return Variable[T]{value: value, index: untracked}
	}
	idx := len(t.nodes)
	var zero T
	t.nodes = append(t.nodes, node[T]{i1: idx, i2: idx, d1: zero, d2: zero})
	t.leaves = append(t.leaves, idx)
	return Variable[T]{value: value, index: idx}
}

// CreateVariables appends one leaf per value, in argument order.
func (t *GradientTape[T]) CreateVariables(values ...T) []Variable[T] {
	vars := make([]Variable[T], len(values))
	for i, v := range values {
		vars[i] = t.CreateVariable(v)
	}
	return vars
}

// IsTracking reports whether operations are currently being recorded.
func (t *GradientTape[T]) IsTracking() bool { return t.tracking }

// StartTracking enables operation recording.
func (t *GradientTape[T]) StartTracking() { t.tracking = true }

// StopTracking disables operation recording. Subsequent operations
// compute values only and return untracked variables.
func (t *GradientTape[T]) StopTracking() { t.tracking = false }

// Suspend disables tracking and returns a function restoring the prior
// state, guaranteeing restoration on every exit path:
//
//	defer tape.Suspend()()
//
// Used around auxiliary numeric work, such as inverting a just-computed
// metric, that must not appear in the derivative graph.
func (t *GradientTape[T]) Suspend() func() {
	prev := t.tracking
	t.tracking = false
	return func() { t.tracking = prev }
}

// Reset clears all recorded nodes and leaves so the tape can be reused
// for an independent evaluation. Tracking state is preserved.
func (t *GradientTape[T]) Reset() {
	t.nodes = t.nodes[:0]
	t.leaves = t.leaves[:0]
}

// NodeCount returns the number of recorded nodes, leaves included.
func (t *GradientTape[T]) NodeCount() int { return len(t.nodes) }

// VariableCount returns the number of leaves created by CreateVariable.
func (t *GradientTape[T]) VariableCount() int { return len(t.leaves) }

// ReverseAccumulate computes the gradient of the most recently recorded
// node with respect to every leaf, in leaf creation order.
//
// It seeds the output adjoint with one and walks the tape backward once,
// in O(nodes) time and space. The tape itself is never mutated, so the
// call is idempotent; with two function recordings on one tape it
// differentiates the most recent output (leaves of the earlier segment
// receive zero). Accumulating an empty tape returns an empty gradient.
func (t *GradientTape[T]) ReverseAccumulate() []T {
	if len(t.nodes) == 0 {
		return nil
	}
	return t.accumulate(len(t.nodes)-1, scalar.One[T]())
}

// ReverseAccumulateFrom computes the gradient of the given recorded
// output with respect to every leaf. Used for vector-valued functions,
// one call per output row.
func (t *GradientTape[T]) ReverseAccumulateFrom(output Variable[T]) []T {
	return t.accumulateFrom(output, scalar.One[T]())
}

// ReverseAccumulateSeeded is ReverseAccumulateFrom with a caller-chosen
// output adjoint in place of one.
func (t *GradientTape[T]) ReverseAccumulateSeeded(output Variable[T], seed T) []T {
	return t.accumulateFrom(output, seed)
}

func (t *GradientTape[T]) accumulateFrom(output Variable[T], seed T) []T {
	if !output.Tracked() {
		panic("autodiff: cannot accumulate from an untracked variable")
	}
	if output.index >= len(t.nodes) {
		panic(fmt.Sprintf("autodiff: variable index %d out of range for tape with %d nodes (foreign or reset tape)",
			output.index, len(t.nodes)))
	}
	return t.accumulate(output.index, seed)
}

// accumulate performs the single backward pass. The adjoint buffer has
// one slot per node; the zero value of T is the additive identity, so no
// explicit clearing is needed. Self-referencing slots (leaves, constant
// operands) are skipped rather than multiplied through: their partials
// are zero, and 0*Inf would turn an infinite adjoint into NaN.
func (t *GradientTape[T]) accumulate(root int, seed T) []T {
	adj := make([]T, len(t.nodes))
	adj[root] = seed
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
	grad := make([]T, len(t.leaves))
	for k, leaf := range t.leaves {
		grad[k] = adj[leaf]
	}
	return grad
}

// push2 records a binary node and returns its variable. While tracking
// is suspended only the value is wrapped. An untracked operand enters as
// a constant: its slot self-references with a zero partial so no adjoint
// flows to it.
func (t *GradientTape[T]) push2(value T, i1 int, d1 T, i2 int, d2 T) Variable[T] {
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
		i1, d1 = idx, zero
	}
	if i2 < 0 {
		i2, d2 = idx, zero
	}
	t.nodes = append(t.nodes, node[T]{i1: i1, i2: i2, d1: d1, d2: d2})
	return Variable[T]{value: value, index: idx}
}

// push1 records a unary node. The unused second operand slot goes
// through the constant substitution in push2 and ends up
// self-referencing, so accumulation never touches it.
func (t *GradientTape[T]) push1(value T, i1 int, d1 T) Variable[T] {
	var zero T
	return t.push2(value, i1, d1, untracked, zero)
}
