// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import (
	"errors"
	"sync"
)

// RegisterBuiltins declares the built-in candidates and data types in r:
// equality, ordering, numeric and string monoids, show, Tuple, Maybe,
// IntRange, and the slices []any, []int, []float64 and []string.
func RegisterBuiltins(r *Registry) {
	declareComparable(r)
	declareMonoid(r)
	declareShow(r)
	declareTuple(r)
	declareMaybe(r)
	declareRange(r)
	DeclareSlice[any](r)
	DeclareSlice[int](r)
	DeclareSlice[float64](r)
	DeclareSlice[string](r)
}

var (
	global = newGlobal()

	stdOnce  sync.Once
	stdTable *Table
)

func newGlobal() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}

// Global returns the process-wide registry. Packages declare their data
// types in it from init functions.
func Global() *Registry { return global }

// Std seals the process-wide registry on first use and returns its table.
// A registry already sealed through [Global] is reused. Std panics if the
// declarations are inconsistent.
func Std() *Table {
	stdOnce.Do(func() {
		t, err := global.Seal()
		if errors.Is(err, ErrSealed) {
			t, err = global.sealedResult()
		}
		if err != nil {
			panic(err)
		}
		stdTable = t
	})
	return stdTable
}

// The functions below dispatch through [Std].

func Unpack(xs any) Cont[any, []any] { return Std().Unpack(xs) }
func UnpackWith(xs any, f func(...any) any) any { return Std().UnpackWith(xs, f) }
func Fuse(f func(...any) any) func(xs any) any { return Std().Fuse(f) }
func ToSlice(xs any) []any { return Std().ToSlice(xs) }
func Foldl(xs, state any, f func(any, any) any) any { return Std().Foldl(xs, state, f) }
func Foldr(xs, state any, f func(any, any) any) any { return Std().Foldr(xs, state, f) }
func Foldl1(xs any, f func(any, any) any) any { return Std().Foldl1(xs, f) }
func Foldr1(xs any, f func(any, any) any) any { return Std().Foldr1(xs, f) }
func Length(xs any) int { return Std().Length(xs) }
func ForEach(xs any, f func(any)) { Std().ForEach(xs, f) }
func Count(xs any, pred func(any) bool) int { return Std().Count(xs, pred) }
func Sum(xs any) any { return Std().Sum(xs) }
func Product(xs any) any { return Std().Product(xs) }
func Maximum(xs any) any { return Std().Maximum(xs) }
func Minimum(xs any) any { return Std().Minimum(xs) }
func MaximumBy(less func(x, y any) bool, xs any) any { return Std().MaximumBy(less, xs) }
func MinimumBy(less func(x, y any) bool, xs any) any { return Std().MinimumBy(less, xs) }
func All(xs any, pred func(any) bool) bool { return Std().All(xs, pred) }
func Any(xs any, pred func(any) bool) bool { return Std().Any(xs, pred) }
func None(xs any, pred func(any) bool) bool { return Std().None(xs, pred) }
func Head(xs any) any { return Std().Head(xs) }
func Tail(xs any) any { return Std().Tail(xs) }
func IsEmpty(xs any) bool { return Std().IsEmpty(xs) }
func At(n int, xs any) any { return Std().At(n, xs) }
func Last(xs any) any { return Std().Last(xs) }
func Drop(n int, xs any) any { return Std().Drop(n, xs) }
func Find(xs any, pred func(any) bool) Maybe { return Std().Find(xs, pred) }
func Lift(tag Tag, x any) any { return Std().Lift(tag, x) }
func Empty(tag Tag) any { return Std().Empty(tag) }
func Concat(xs, ys any) any { return Std().Concat(xs, ys) }
func Prepend(x, xs any) any { return Std().Prepend(x, xs) }
func Append(xs, x any) any { return Std().Append(xs, x) }
func Transform(xs any, f func(any) any) any { return Std().Transform(xs, f) }
func Flatten(xss any) any { return Std().Flatten(xss) }
func Filter(xs any, pred func(any) bool) any { return Std().Filter(xs, pred) }
func Reverse(xs any) any { return Std().Reverse(xs) }
func Make(tag Tag, xs ...any) any { return Std().Make(tag, xs...) }
func Equal(x, y any) bool { return Std().Equal(x, y) }
func NotEqual(x, y any) bool { return Std().NotEqual(x, y) }
func Less(x, y any) bool { return Std().Less(x, y) }
func LessEqual(x, y any) bool { return Std().LessEqual(x, y) }
func Greater(x, y any) bool { return Std().Greater(x, y) }
func GreaterEqual(x, y any) bool { return Std().GreaterEqual(x, y) }
func Zero(tag Tag) any { return Std().Zero(tag) }
func One(tag Tag) any { return Std().One(tag) }
func Plus(x, y any) any { return Std().Plus(x, y) }
func Mult(x, y any) any { return Std().Mult(x, y) }
func Show(x any) string { return Std().Show(x) }
func To(tag Tag, x any) any { return Std().To(tag, x) }
func IsConvertible(to, from Tag) bool { return Std().IsConvertible(to, from) }
func IsEmbedded(to, from Tag) bool { return Std().IsEmbedded(to, from) }
