// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

// Erased represents a type-erased value in the defunctionalized frame chain.
// Concrete types are recovered via type assertions at frame boundaries.
type Erased = any

// Frame is the interface for defunctionalized continuation frames.
// Dispatch uses type switches, not tags — Frame is a pure marker interface.
type Frame interface {
	frame() // unexported marker method
}

// ReturnFrame signals computation completion.
// The evaluator returns the current value as the final result.
type ReturnFrame struct{}

func (ReturnFrame) frame() {}

// BindFrame represents monadic bind: ExprBind(m, f).
type BindFrame[A, B any] struct {
	// F is the continuation function to apply to the input value.
	F func(A) Expr[B]

	// Next is the continuation frame after F completes.
	Next Frame
}

func (*BindFrame[A, B]) frame() {}

// MapFrame represents functor mapping: ExprMap(m, f).
type MapFrame[A, B any] struct {
	// F is the transformation function.
	F func(A) B

	// Next is the continuation frame after transformation.
	Next Frame
}

func (*MapFrame[A, B]) frame() {}

// Expr is a defunctionalized computation. Derived folds that recurse over a
// structure build an Expr instead of recursing on the Go stack, so their depth
// is bounded by the heap.
type Expr[A any] struct {
	// Value holds the current value if this is a completed computation.
	// Valid when Frame is ReturnFrame.
	Value A

	// Frame holds the next continuation frame.
	Frame Frame
}

// ExprReturn creates a completed computation with the given value.
func ExprReturn[A any](a A) Expr[A] {
	return Expr[A]{
		Value: a,
		Frame: ReturnFrame{},
	}
}

// ExprDefer creates a computation whose construction is postponed until the
// evaluator reaches it. Recursive definitions use ExprDefer to unfold one
// level per evaluation step.
func ExprDefer[A any](f func() Expr[A]) Expr[A] {
	var zero A
	return Expr[A]{
		Value: zero,
		Frame: &BindFrame[Erased, Erased]{
			F: func(Erased) Expr[Erased] {
				next := f()
				return Expr[Erased]{Value: Erased(next.Value), Frame: next.Frame}
			},
			Next: ReturnFrame{},
		},
	}
}
