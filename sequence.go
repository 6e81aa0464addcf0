// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

type (
	TransformFunc func(xs any, f func(any) any) any
	FilterFunc    func(xs any, pred func(any) bool) any
	UnaryFunc     func(xs any) any
	MakeFunc      func(xs ...any) any
)

var (
	OpTransform = NewOperation[TransformFunc]("transform")
	OpFlatten   = NewOperation[UnaryFunc]("flatten")
	OpFilter    = NewOperation[FilterFunc]("filter")
	OpReverse   = NewOperation[UnaryFunc]("reverse")
	OpMake      = NewOperation[MakeFunc]("make")
)

// Sequence is the structure of finite ordered collections. It has no
// operations of its own to supply: a tag models Sequence by modeling
// Foldable, Iterable and MonadPlus, and gets the rest, including element-wise
// equal and lexicographic less.
var Sequence = &Structure{
	Name:     "Sequence",
	Requires: []*Structure{Foldable, Iterable, MonadPlus},
	Alternatives: []Alternative{
		{Name: "sequence"},
	},
	Derived: []Derivation{
		Derive(OpTransform, []string{OpFoldr.Name(), OpEmpty.Name(), OpPrepend.Name()}, deriveTransform),
		Derive(OpFlatten, []string{OpFoldl.Name(), OpEmpty.Name(), OpConcat.Name()}, deriveFlatten),
		Derive(OpFilter, []string{OpFoldr.Name(), OpEmpty.Name(), OpPrepend.Name()}, deriveFilter),
		Derive(OpReverse, []string{OpFoldl.Name(), OpEmpty.Name(), OpPrepend.Name()}, deriveReverse),
		Derive(OpMake, []string{OpEmpty.Name(), OpPrepend.Name()}, deriveMake),
		Derive(OpEqual, []string{OpUnpack.Name()}, deriveSequenceEqual),
		Derive(OpLess, []string{OpUnpack.Name()}, deriveSequenceLess),
	},
}

func deriveTransform(t *Table, tag Tag) TransformFunc {
	return func(xs any, f func(any) any) any {
		prepend := dispatchTag(t, OpPrepend, tag)
		return dispatchTag(t, OpFoldr, tag)(xs, dispatchTag(t, OpEmpty, tag)(), func(x, acc any) any {
			return prepend(f(x), acc)
		})
	}
}

// deriveFlatten concatenates the inner sequences in order. The inner
// sequences must have the tag of the outer one.
func deriveFlatten(t *Table, tag Tag) UnaryFunc {
	return func(xss any) any {
		concat := dispatchTag(t, OpConcat, tag)
		return dispatchTag(t, OpFoldl, tag)(xss, dispatchTag(t, OpEmpty, tag)(), func(acc, xs any) any {
			return concat(acc, xs)
		})
	}
}

func deriveFilter(t *Table, tag Tag) FilterFunc {
	return func(xs any, pred func(any) bool) any {
		prepend := dispatchTag(t, OpPrepend, tag)
		return dispatchTag(t, OpFoldr, tag)(xs, dispatchTag(t, OpEmpty, tag)(), func(x, acc any) any {
			if pred(x) {
				return prepend(x, acc)
			}
			return acc
		})
	}
}

func deriveReverse(t *Table, tag Tag) UnaryFunc {
	return func(xs any) any {
		prepend := dispatchTag(t, OpPrepend, tag)
		return dispatchTag(t, OpFoldl, tag)(xs, dispatchTag(t, OpEmpty, tag)(), func(acc, x any) any {
			return prepend(x, acc)
		})
	}
}

func deriveMake(t *Table, tag Tag) MakeFunc {
	return func(xs ...any) any {
		prepend := dispatchTag(t, OpPrepend, tag)
		acc := dispatchTag(t, OpEmpty, tag)()
		for i := len(xs) - 1; i >= 0; i-- {
			acc = prepend(xs[i], acc)
		}
		return acc
	}
}

func deriveSequenceEqual(t *Table, tag Tag) EqualFunc {
	return func(xs, ys any) bool {
		unpack := dispatchTag(t, OpUnpack, tag)
		return RunWith(Bind(unpack(xs), func(a []any) Cont[any, bool] {
			return Map(unpack(ys), func(b []any) bool {
				if len(a) != len(b) {
					return false
				}
				for i := range a {
					if !t.Equal(a[i], b[i]) {
						return false
					}
				}
				return true
			})
		}), box[bool]).(bool)
	}
}

// deriveSequenceLess orders sequences lexicographically; a proper prefix is
// less than the sequence it prefixes.
func deriveSequenceLess(t *Table, tag Tag) LessFunc {
	return func(xs, ys any) bool {
		unpack := dispatchTag(t, OpUnpack, tag)
		return RunWith(Bind(unpack(xs), func(a []any) Cont[any, bool] {
			return Map(unpack(ys), func(b []any) bool {
				for i := 0; i < len(a) && i < len(b); i++ {
					switch {
					case t.Less(a[i], b[i]):
						return true
					case t.Less(b[i], a[i]):
						return false
					}
				}
				return len(a) < len(b)
			})
		}), box[bool]).(bool)
	}
}

func box[A any](a A) any { return a }

// Transform applies f to every element of xs.
func (t *Table) Transform(xs any, f func(any) any) any {
	return dispatch(t, OpTransform, xs)(xs, f)
}

// Flatten concatenates a sequence of sequences.
func (t *Table) Flatten(xss any) any {
	return dispatch(t, OpFlatten, xss)(xss)
}

// Filter keeps the elements of xs satisfying pred, in order.
func (t *Table) Filter(xs any, pred func(any) bool) any {
	return dispatch(t, OpFilter, xs)(xs, pred)
}

// Reverse returns the elements of xs in reverse order.
func (t *Table) Reverse(xs any) any {
	return dispatch(t, OpReverse, xs)(xs)
}

// Make builds a sequence of the data type named by tag.
func (t *Table) Make(tag Tag, xs ...any) any {
	return dispatchTag(t, OpMake, tag)(xs...)
}
