// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

type (
	HeadFunc    func(xs any) any
	TailFunc    func(xs any) any
	IsEmptyFunc func(xs any) bool
	AtFunc      func(n int, xs any) any
	DropFunc    func(n int, xs any) any
	FindFunc    func(xs any, pred func(any) bool) Maybe
)

var (
	OpHead    = NewOperation[HeadFunc]("head")
	OpTail    = NewOperation[TailFunc]("tail")
	OpIsEmpty = NewOperation[IsEmptyFunc]("is_empty")
	OpAt      = NewOperation[AtFunc]("at")
	OpLast    = NewOperation[HeadFunc]("last")
	OpDrop    = NewOperation[DropFunc]("drop")
	OpFind    = NewOperation[FindFunc]("find")
)

// Iterable is the structure of data types traversed one element at a time.
// Its minimal complete definition is head, tail and is_empty. head and tail
// of an empty structure panic with ErrEmptyStructure.
var Iterable = &Structure{
	Name: "Iterable",
	Alternatives: []Alternative{
		{Name: "iterable", Ops: []string{OpHead.Name(), OpTail.Name(), OpIsEmpty.Name()}},
	},
	Derived: []Derivation{
		Derive(OpDrop, []string{OpTail.Name(), OpIsEmpty.Name()}, deriveDrop),
		Derive(OpAt, []string{OpDrop.Name(), OpHead.Name(), OpIsEmpty.Name()}, deriveAt),
		Derive(OpLast, iterableOps, deriveLast),
		Derive(OpFind, iterableOps, deriveFind),
	},
}

// deriveDrop drops at most n elements; dropping past the end is empty.
func deriveDrop(t *Table, tag Tag) DropFunc {
	return func(n int, xs any) any {
		tail, isEmpty := dispatchTag(t, OpTail, tag), dispatchTag(t, OpIsEmpty, tag)
		for ; n > 0 && !isEmpty(xs); n-- {
			xs = tail(xs)
		}
		return xs
	}
}

func deriveAt(t *Table, tag Tag) AtFunc {
	return func(n int, xs any) any {
		if n < 0 {
			emptyStructure(OpAt.Name(), tag)
		}
		rest := dispatchTag(t, OpDrop, tag)(n, xs)
		if dispatchTag(t, OpIsEmpty, tag)(rest) {
			emptyStructure(OpAt.Name(), tag)
		}
		return dispatchTag(t, OpHead, tag)(rest)
	}
}

func deriveLast(t *Table, tag Tag) HeadFunc {
	return func(xs any) any {
		head, tail, isEmpty := iterableOf(t, tag)
		if isEmpty(xs) {
			emptyStructure(OpLast.Name(), tag)
		}
		for {
			rest := tail(xs)
			if isEmpty(rest) {
				return head(xs)
			}
			xs = rest
		}
	}
}

// deriveFind stops at the first match without traversing the rest.
func deriveFind(t *Table, tag Tag) FindFunc {
	return func(xs any, pred func(any) bool) Maybe {
		head, tail, isEmpty := iterableOf(t, tag)
		for !isEmpty(xs) {
			if x := head(xs); pred(x) {
				return Just(x)
			}
			xs = tail(xs)
		}
		return Nothing()
	}
}

// Head returns the first element of xs.
func (t *Table) Head(xs any) any {
	return dispatch(t, OpHead, xs)(xs)
}

// Tail returns xs without its first element.
func (t *Table) Tail(xs any) any {
	return dispatch(t, OpTail, xs)(xs)
}

// IsEmpty reports whether xs has no elements.
func (t *Table) IsEmpty(xs any) bool {
	return dispatch(t, OpIsEmpty, xs)(xs)
}

// At returns the n-th element of xs, counting from zero.
func (t *Table) At(n int, xs any) any {
	return dispatch(t, OpAt, xs)(n, xs)
}

// Last returns the last element of xs.
func (t *Table) Last(xs any) any {
	return dispatch(t, OpLast, xs)(xs)
}

// Drop returns xs without its first n elements.
func (t *Table) Drop(n int, xs any) any {
	return dispatch(t, OpDrop, xs)(n, xs)
}

// Find returns the first element satisfying pred.
func (t *Table) Find(xs any, pred func(any) bool) Maybe {
	return dispatch(t, OpFind, xs)(xs, pred)
}
