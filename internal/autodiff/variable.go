// Package autodiff implements forward- and reverse-mode automatic
// differentiation over the scalar types in internal/scalar.
//
// Reverse mode records elementary operations on an append-only tape
// (GradientTape for first derivatives, HessianTape for second) and
// recovers all partial derivatives of one output in a single backward
// walk. Forward mode propagates derivative components alongside values
// through Dual (first order) and HyperDual (second order) numbers, one
// seed direction per evaluation.
//
// A tape must not be shared across goroutines: recording mutates it and
// carries no internal synchronization. Use one tape per goroutine, or
// forward mode, whose values are immutable and trivially parallel.
package autodiff

import (
	"fmt"

	"github.com/ricci-go/ricci/internal/scalar"
)

// untracked is the node index carried by variables produced while
// tracking is suspended. Accumulation never dereferences it; operations
// that receive an untracked operand treat it as a constant.
const untracked = -1

// Variable is a scalar value bound to a node on the tape that produced
// it. Copies are cheap value types, but a Variable is only meaningful
// against its own tape: using it with a different or reset tape is a
// contract violation and fails fast during recording or accumulation.
type Variable[T scalar.Number[T]] struct {
	value T
	index int
}

// Value returns the numeric value of the variable.
func (v Variable[T]) Value() T { return v.value }

// Index returns the tape node index backing this variable, or -1 if the
// variable was produced while tracking was suspended.
func (v Variable[T]) Index() int { return v.index }

// Tracked reports whether the variable is backed by a tape node and can
// therefore participate in reverse accumulation.
func (v Variable[T]) Tracked() bool { return v.index != untracked }

func (v Variable[T]) String() string {
	if !v.Tracked() {
		return fmt.Sprintf("%s (untracked)", v.value.String())
	}
	return fmt.Sprintf("%s @%d", v.value.String(), v.index)
}
