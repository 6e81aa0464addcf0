// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

// Foldable operations.
//
// Minimal complete definitions, in priority order:
//   - folds: foldl and foldr
//   - unpack: unpack
//   - iterable: head, tail and is_empty (the tag must model Iterable)
//
// Every other operation is derived from foldl, foldr or unpack and agrees
// with a direct fold over the same elements.

type (
	// UnpackFunc returns a continuation receiving all elements at once.
	// The continuation must not modify the slice it receives.
	UnpackFunc func(xs any) Cont[any, []any]
	// FoldFunc folds with a seed. foldl calls f(state, x), foldr f(x, state).
	FoldFunc func(xs, state any, f func(any, any) any) any
	// Fold1Func folds seeded with the first (foldl1) or last (foldr1) element.
	Fold1Func      func(xs any, f func(any, any) any) any
	LengthFunc     func(xs any) int
	ForEachFunc    func(xs any, f func(any))
	CountFunc      func(xs any, pred func(any) bool) int
	ReduceFunc     func(xs any) any
	ExtremumByFunc func(less func(x, y any) bool, xs any) any
	QuantifierFunc func(xs any, pred func(any) bool) bool
)

var (
	OpUnpack    = NewOperation[UnpackFunc]("unpack")
	OpFoldl     = NewOperation[FoldFunc]("foldl")
	OpFoldr     = NewOperation[FoldFunc]("foldr")
	OpFoldl1    = NewOperation[Fold1Func]("foldl1")
	OpFoldr1    = NewOperation[Fold1Func]("foldr1")
	OpLength    = NewOperation[LengthFunc]("length")
	OpForEach   = NewOperation[ForEachFunc]("for_each")
	OpCount     = NewOperation[CountFunc]("count")
	OpSum       = NewOperation[ReduceFunc]("sum")
	OpProduct   = NewOperation[ReduceFunc]("product")
	OpMaximum   = NewOperation[ReduceFunc]("maximum")
	OpMinimum   = NewOperation[ReduceFunc]("minimum")
	OpMaximumBy = NewOperation[ExtremumByFunc]("maximum_by")
	OpMinimumBy = NewOperation[ExtremumByFunc]("minimum_by")
	OpAll       = NewOperation[QuantifierFunc]("all")
	OpAny       = NewOperation[QuantifierFunc]("any")
	OpNone      = NewOperation[QuantifierFunc]("none")
)

// Foldable is the structure of data types that can be reduced to a value.
var Foldable = &Structure{
	Name: "Foldable",
	Alternatives: []Alternative{
		{
			Name: "folds",
			Ops:  []string{OpFoldl.Name(), OpFoldr.Name()},
			Derive: []Derivation{
				Derive(OpUnpack, []string{OpFoldl.Name()}, unpackFromFoldl),
			},
		},
		{
			Name: "unpack",
			Ops:  []string{OpUnpack.Name()},
			Derive: []Derivation{
				Derive(OpFoldl, []string{OpUnpack.Name()}, foldlFromUnpack),
				Derive(OpFoldr, []string{OpUnpack.Name()}, foldrFromUnpack),
			},
		},
		{
			Name:  "iterable",
			Ops:   []string{OpHead.Name(), OpTail.Name(), OpIsEmpty.Name()},
			Needs: []*Structure{Iterable},
			Derive: []Derivation{
				Derive(OpFoldl, iterableOps, foldlFromIterable),
				Derive(OpFoldr, iterableOps, foldrFromIterable),
				Derive(OpUnpack, iterableOps, unpackFromIterable),
			},
		},
	},
	Derived: []Derivation{
		Derive(OpFoldl1, []string{OpFoldl.Name()}, deriveFoldl1),
		Derive(OpFoldr1, []string{OpFoldr.Name()}, deriveFoldr1),
		Derive(OpLength, []string{OpFoldl.Name()}, deriveLength),
		Derive(OpForEach, []string{OpFoldl.Name()}, deriveForEach),
		Derive(OpCount, []string{OpFoldl.Name()}, deriveCount),
		Derive(OpSum, []string{OpFoldl.Name()}, deriveSum),
		Derive(OpProduct, []string{OpFoldl.Name()}, deriveProduct),
		Derive(OpMaximumBy, []string{OpFoldl1.Name()}, deriveMaximumBy),
		Derive(OpMinimumBy, []string{OpFoldl1.Name()}, deriveMinimumBy),
		Derive(OpMaximum, []string{OpFoldl1.Name()}, deriveMaximum),
		Derive(OpMinimum, []string{OpFoldl1.Name()}, deriveMinimum),
		Derive(OpAll, []string{OpFoldl.Name()}, deriveAll),
		Derive(OpAny, []string{OpFoldl.Name()}, deriveAny),
		Derive(OpNone, []string{OpAny.Name()}, deriveNone),
	},
}

var iterableOps = []string{OpHead.Name(), OpTail.Name(), OpIsEmpty.Name()}

func appendElem(acc, x any) any { return append(acc.([]any), x) }

func unpackFromFoldl(t *Table, tag Tag) UnpackFunc {
	return func(xs any) Cont[any, []any] {
		return Suspend(func(k func([]any) any) any {
			elems := dispatchTag(t, OpFoldl, tag)(xs, []any(nil), appendElem).([]any)
			return k(elems)
		})
	}
}

func foldlFromUnpack(t *Table, tag Tag) FoldFunc {
	return func(xs, state any, f func(any, any) any) any {
		return dispatchTag(t, OpUnpack, tag)(xs)(func(elems []any) any {
			s := state
			for _, x := range elems {
				s = f(s, x)
			}
			return s
		})
	}
}

func foldrFromUnpack(t *Table, tag Tag) FoldFunc {
	return func(xs, state any, f func(any, any) any) any {
		return dispatchTag(t, OpUnpack, tag)(xs)(func(elems []any) any {
			s := state
			for i := len(elems) - 1; i >= 0; i-- {
				s = f(elems[i], s)
			}
			return s
		})
	}
}

func foldlFromIterable(t *Table, tag Tag) FoldFunc {
	return func(xs, state any, f func(any, any) any) any {
		head, tail, isEmpty := iterableOf(t, tag)
		s := state
		for !isEmpty(xs) {
			s = f(s, head(xs))
			xs = tail(xs)
		}
		return s
	}
}

// foldrFromIterable recurses structurally on head and tail. The recursion is
// built as an Expr and run on the trampoline.
func foldrFromIterable(t *Table, tag Tag) FoldFunc {
	return func(xs, state any, f func(any, any) any) any {
		head, tail, isEmpty := iterableOf(t, tag)
		var step func(xs any) Expr[any]
		step = func(xs any) Expr[any] {
			if isEmpty(xs) {
				return ExprReturn(state)
			}
			x, rest := head(xs), tail(xs)
			return ExprMap(ExprDefer(func() Expr[any] { return step(rest) }), func(acc any) any {
				return f(x, acc)
			})
		}
		return RunPure(step(xs))
	}
}

func unpackFromIterable(t *Table, tag Tag) UnpackFunc {
	return func(xs any) Cont[any, []any] {
		return Suspend(func(k func([]any) any) any {
			head, tail, isEmpty := iterableOf(t, tag)
			var elems []any
			for !isEmpty(xs) {
				elems = append(elems, head(xs))
				xs = tail(xs)
			}
			return k(elems)
		})
	}
}

func iterableOf(t *Table, tag Tag) (HeadFunc, TailFunc, IsEmptyFunc) {
	return dispatchTag(t, OpHead, tag), dispatchTag(t, OpTail, tag), dispatchTag(t, OpIsEmpty, tag)
}

// noSeed is the state of a seedless fold before its first element.
type noSeed struct{}

func deriveFoldl1(t *Table, tag Tag) Fold1Func {
	return func(xs any, f func(any, any) any) any {
		r := dispatchTag(t, OpFoldl, tag)(xs, noSeed{}, func(acc, x any) any {
			if _, ok := acc.(noSeed); ok {
				return x
			}
			return f(acc, x)
		})
		if _, ok := r.(noSeed); ok {
			emptyStructure(OpFoldl1.Name(), tag)
		}
		return r
	}
}

func deriveFoldr1(t *Table, tag Tag) Fold1Func {
	return func(xs any, f func(any, any) any) any {
		r := dispatchTag(t, OpFoldr, tag)(xs, noSeed{}, func(x, acc any) any {
			if _, ok := acc.(noSeed); ok {
				return x
			}
			return f(x, acc)
		})
		if _, ok := r.(noSeed); ok {
			emptyStructure(OpFoldr1.Name(), tag)
		}
		return r
	}
}

func deriveLength(t *Table, tag Tag) LengthFunc {
	return func(xs any) int {
		return dispatchTag(t, OpFoldl, tag)(xs, 0, func(n, _ any) any {
			return n.(int) + 1
		}).(int)
	}
}

func deriveForEach(t *Table, tag Tag) ForEachFunc {
	return func(xs any, f func(any)) {
		dispatchTag(t, OpFoldl, tag)(xs, nil, func(_, x any) any {
			f(x)
			return nil
		})
	}
}

func deriveCount(t *Table, tag Tag) CountFunc {
	return func(xs any, pred func(any) bool) int {
		return dispatchTag(t, OpFoldl, tag)(xs, 0, func(n, x any) any {
			if pred(x) {
				return n.(int) + 1
			}
			return n
		}).(int)
	}
}

// deriveSum folds with the Monoid of the elements, seeded with zero of int.
func deriveSum(t *Table, tag Tag) ReduceFunc {
	return func(xs any) any {
		return dispatchTag(t, OpFoldl, tag)(xs, t.Zero(intTag), t.Plus)
	}
}

// deriveProduct folds with the Ring of the elements, seeded with one of int.
func deriveProduct(t *Table, tag Tag) ReduceFunc {
	return func(xs any) any {
		return dispatchTag(t, OpFoldl, tag)(xs, t.One(intTag), t.Mult)
	}
}

// deriveMaximumBy keeps the accumulated element unless it is strictly less
// than the next one, so ties resolve to the first occurrence.
func deriveMaximumBy(t *Table, tag Tag) ExtremumByFunc {
	return func(less func(x, y any) bool, xs any) any {
		return dispatchTag(t, OpFoldl1, tag)(xs, func(acc, x any) any {
			if less(acc, x) {
				return x
			}
			return acc
		})
	}
}

func deriveMinimumBy(t *Table, tag Tag) ExtremumByFunc {
	return func(less func(x, y any) bool, xs any) any {
		return dispatchTag(t, OpFoldl1, tag)(xs, func(acc, x any) any {
			if less(x, acc) {
				return x
			}
			return acc
		})
	}
}

func deriveMaximum(t *Table, tag Tag) ReduceFunc {
	return func(xs any) any {
		return deriveMaximumBy(t, tag)(t.Less, xs)
	}
}

func deriveMinimum(t *Table, tag Tag) ReduceFunc {
	return func(xs any) any {
		return deriveMinimumBy(t, tag)(t.Less, xs)
	}
}

func deriveAll(t *Table, tag Tag) QuantifierFunc {
	return func(xs any, pred func(any) bool) bool {
		return dispatchTag(t, OpFoldl, tag)(xs, true, func(acc, x any) any {
			return acc.(bool) && pred(x)
		}).(bool)
	}
}

func deriveAny(t *Table, tag Tag) QuantifierFunc {
	return func(xs any, pred func(any) bool) bool {
		return dispatchTag(t, OpFoldl, tag)(xs, false, func(acc, x any) any {
			return acc.(bool) || pred(x)
		}).(bool)
	}
}

func deriveNone(t *Table, tag Tag) QuantifierFunc {
	return func(xs any, pred func(any) bool) bool {
		return !dispatchTag(t, OpAny, tag)(xs, pred)
	}
}

// Unpack returns the continuation over the elements of xs.
func (t *Table) Unpack(xs any) Cont[any, []any] {
	return dispatch(t, OpUnpack, xs)(xs)
}

// UnpackWith calls f with every element of xs as arguments.
func (t *Table) UnpackWith(xs any, f func(...any) any) any {
	return t.Unpack(xs)(func(elems []any) any { return f(elems...) })
}

// Fuse turns a variadic function into one taking a Foldable.
func (t *Table) Fuse(f func(...any) any) func(xs any) any {
	return func(xs any) any { return t.UnpackWith(xs, f) }
}

// ToSlice returns a fresh slice with the elements of xs.
func (t *Table) ToSlice(xs any) []any {
	return RunWith(Map(t.Unpack(xs), cloneElems), identity[any]).([]any)
}

func cloneElems(elems []any) any {
	return append([]any{}, elems...)
}

// Foldl folds xs from the left: f(...f(f(state, x1), x2)..., xn).
func (t *Table) Foldl(xs, state any, f func(any, any) any) any {
	return dispatch(t, OpFoldl, xs)(xs, state, f)
}

// Foldr folds xs from the right: f(x1, f(x2, ...f(xn, state)...)).
func (t *Table) Foldr(xs, state any, f func(any, any) any) any {
	return dispatch(t, OpFoldr, xs)(xs, state, f)
}

// Foldl1 is Foldl seeded with the first element. It panics with
// ErrEmptyStructure on an empty structure.
func (t *Table) Foldl1(xs any, f func(any, any) any) any {
	return dispatch(t, OpFoldl1, xs)(xs, f)
}

// Foldr1 is Foldr seeded with the last element. It panics with
// ErrEmptyStructure on an empty structure.
func (t *Table) Foldr1(xs any, f func(any, any) any) any {
	return dispatch(t, OpFoldr1, xs)(xs, f)
}

// Length returns the number of elements of xs.
func (t *Table) Length(xs any) int {
	return dispatch(t, OpLength, xs)(xs)
}

// ForEach calls f on every element of xs in order.
func (t *Table) ForEach(xs any, f func(any)) {
	dispatch(t, OpForEach, xs)(xs, f)
}

// Count returns the number of elements satisfying pred.
func (t *Table) Count(xs any, pred func(any) bool) int {
	return dispatch(t, OpCount, xs)(xs, pred)
}

// Sum adds the elements of xs with the plus operation.
func (t *Table) Sum(xs any) any {
	return dispatch(t, OpSum, xs)(xs)
}

// Product multiplies the elements of xs with the mult operation.
func (t *Table) Product(xs any) any {
	return dispatch(t, OpProduct, xs)(xs)
}

// Maximum returns the greatest element of xs under the less operation.
func (t *Table) Maximum(xs any) any {
	return dispatch(t, OpMaximum, xs)(xs)
}

// Minimum returns the least element of xs under the less operation.
func (t *Table) Minimum(xs any) any {
	return dispatch(t, OpMinimum, xs)(xs)
}

// MaximumBy returns the first element that no other element exceeds under
// the strict weak ordering less.
func (t *Table) MaximumBy(less func(x, y any) bool, xs any) any {
	return dispatch(t, OpMaximumBy, xs)(less, xs)
}

// MinimumBy returns the first element that is not greater than any other
// under the strict weak ordering less.
func (t *Table) MinimumBy(less func(x, y any) bool, xs any) any {
	return dispatch(t, OpMinimumBy, xs)(less, xs)
}

// All reports whether every element satisfies pred.
func (t *Table) All(xs any, pred func(any) bool) bool {
	return dispatch(t, OpAll, xs)(xs, pred)
}

// Any reports whether some element satisfies pred.
func (t *Table) Any(xs any, pred func(any) bool) bool {
	return dispatch(t, OpAny, xs)(xs, pred)
}

// None reports whether no element satisfies pred.
func (t *Table) None(xs any, pred func(any) bool) bool {
	return dispatch(t, OpNone, xs)(xs, pred)
}
