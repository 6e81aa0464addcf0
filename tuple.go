// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import "slices"

// TupleTag is the tag of [Tuple].
type TupleTag struct{}

var tupleTag = TagOf[TupleTag]()

// Tuple is an immutable heterogeneous sequence. It models Sequence.
type Tuple struct {
	elems []any
}

// MakeTuple returns the tuple of xs.
func MakeTuple(xs ...any) Tuple {
	return Tuple{elems: slices.Clone(xs)}
}

func (Tuple) Datatype() Tag { return tupleTag }

// Len returns the number of elements.
func (t Tuple) Len() int { return len(t.elems) }

// Get returns the i-th element.
func (t Tuple) Get(i int) any { return t.elems[i] }

func asTuple(xs any) []any { return xs.(Tuple).elems }

func declareTuple(r *Registry) {
	Declare(r, OpUnpack, tupleTag, func(xs any) Cont[any, []any] {
		return Return[any](slices.Clip(asTuple(xs)))
	})
	Declare(r, OpLength, tupleTag, func(xs any) int {
		return len(asTuple(xs))
	})
	Declare(r, OpHead, tupleTag, func(xs any) any {
		e := asTuple(xs)
		if len(e) == 0 {
			emptyStructure(OpHead.Name(), tupleTag)
		}
		return e[0]
	})
	Declare(r, OpTail, tupleTag, func(xs any) any {
		e := asTuple(xs)
		if len(e) == 0 {
			emptyStructure(OpTail.Name(), tupleTag)
		}
		return Tuple{elems: e[1:]}
	})
	Declare(r, OpIsEmpty, tupleTag, func(xs any) bool {
		return len(asTuple(xs)) == 0
	})
	Declare(r, OpLift, tupleTag, func(x any) any {
		return Tuple{elems: []any{x}}
	})
	Declare(r, OpEmpty, tupleTag, func() any {
		return Tuple{}
	})
	Declare(r, OpPrepend, tupleTag, func(x, xs any) any {
		e := asTuple(xs)
		out := make([]any, 0, len(e)+1)
		return Tuple{elems: append(append(out, x), e...)}
	})
	Declare(r, OpShow, tupleTag, func(xs any) string {
		return r.sealedTable().showElems("(", asTuple(xs), ")")
	})
	Model(r, Sequence, tupleTag)
}
