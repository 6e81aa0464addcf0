// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

type (
	// LiftFunc wraps a single value in the data type.
	LiftFunc    func(x any) any
	EmptyFunc   func() any
	ConcatFunc  func(xs, ys any) any
	PrependFunc func(x, xs any) any
	AppendFunc  func(xs, x any) any
)

var (
	OpLift    = NewOperation[LiftFunc]("lift")
	OpEmpty   = NewOperation[EmptyFunc]("empty")
	OpConcat  = NewBinaryOperation[ConcatFunc]("concat")
	OpPrepend = NewOperation[PrependFunc]("prepend")
	OpAppend  = NewOperation[AppendFunc]("append")
)

// Applicative is reduced to lift, the only part of it MonadPlus needs.
var Applicative = &Structure{
	Name: "Applicative",
	Alternatives: []Alternative{
		{Name: "lift", Ops: []string{OpLift.Name()}},
	},
}

// MonadPlus is the structure of data types with an empty value and an
// associative concatenation. Its minimal complete definitions are concat
// with empty, or prepend with empty for tags that also model Foldable.
var MonadPlus = &Structure{
	Name:     "MonadPlus",
	Requires: []*Structure{Applicative},
	Alternatives: []Alternative{
		{
			Name: "concat",
			Ops:  []string{OpConcat.Name(), OpEmpty.Name()},
			Derive: []Derivation{
				Derive(OpPrepend, []string{OpConcat.Name(), OpLift.Name()}, prependFromConcat),
			},
		},
		{
			Name:  "prepend",
			Ops:   []string{OpPrepend.Name(), OpEmpty.Name()},
			Needs: []*Structure{Foldable},
			Derive: []Derivation{
				Derive(OpConcat, []string{OpFoldr.Name(), OpPrepend.Name()}, concatFromPrepend),
			},
		},
	},
	Derived: []Derivation{
		Derive(OpAppend, []string{OpConcat.Name(), OpLift.Name()}, deriveAppend),
	},
}

func prependFromConcat(t *Table, tag Tag) PrependFunc {
	return func(x, xs any) any {
		return dispatchTag(t, OpConcat, tag)(dispatchTag(t, OpLift, tag)(x), xs)
	}
}

// concatFromPrepend prepends the elements of xs onto ys from the right.
func concatFromPrepend(t *Table, tag Tag) ConcatFunc {
	return func(xs, ys any) any {
		prepend := dispatchTag(t, OpPrepend, tag)
		return dispatchTag(t, OpFoldr, tag)(xs, ys, prepend)
	}
}

func deriveAppend(t *Table, tag Tag) AppendFunc {
	return func(xs, x any) any {
		return dispatchTag(t, OpConcat, tag)(xs, dispatchTag(t, OpLift, tag)(x))
	}
}

// Lift wraps x in the data type named by tag.
func (t *Table) Lift(tag Tag, x any) any {
	return dispatchTag(t, OpLift, tag)(x)
}

// Empty returns the empty value of the data type named by tag.
func (t *Table) Empty(tag Tag) any {
	return dispatchTag(t, OpEmpty, tag)()
}

// Concat concatenates xs and ys.
func (t *Table) Concat(xs, ys any) any {
	return dispatchPair(t, OpConcat, xs, ys)(xs, ys)
}

// Prepend returns xs with x added at the front.
func (t *Table) Prepend(x, xs any) any {
	return dispatch(t, OpPrepend, xs)(x, xs)
}

// Append returns xs with x added at the back.
func (t *Table) Append(xs, x any) any {
	return dispatch(t, OpAppend, xs)(xs, x)
}
