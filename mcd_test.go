// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana_test

import (
	"testing"

	"code.hybscloud.com/hana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

type seqTag struct{}

// seq is a test sequence of ints declared with each Foldable MCD in turn.
type seq struct{ elems []int }

func (seq) Datatype() hana.Tag { return hana.TagOf[seqTag]() }

func seqOf(xs ...int) seq { return seq{elems: xs} }

var seqVariants = []struct {
	name    string
	declare func(r *hana.Registry)
}{
	{"folds", func(r *hana.Registry) {
		tag := hana.TagOf[seqTag]()
		hana.Declare(r, hana.OpFoldl, tag, func(xs, state any, f func(any, any) any) any {
			for _, x := range xs.(seq).elems {
				state = f(state, x)
			}
			return state
		})
		hana.Declare(r, hana.OpFoldr, tag, func(xs, state any, f func(any, any) any) any {
			e := xs.(seq).elems
			for i := len(e) - 1; i >= 0; i-- {
				state = f(e[i], state)
			}
			return state
		})
		hana.Model(r, hana.Foldable, tag)
	}},
	{"unpack", func(r *hana.Registry) {
		tag := hana.TagOf[seqTag]()
		hana.Declare(r, hana.OpUnpack, tag, func(xs any) hana.Cont[any, []any] {
			return hana.Suspend(func(k func([]any) any) any {
				e := xs.(seq).elems
				out := make([]any, len(e))
				for i, x := range e {
					out[i] = x
				}
				return k(out)
			})
		})
		hana.Model(r, hana.Foldable, tag)
	}},
	{"iterable", func(r *hana.Registry) {
		tag := hana.TagOf[seqTag]()
		hana.Declare(r, hana.OpHead, tag, func(xs any) any { return xs.(seq).elems[0] })
		hana.Declare(r, hana.OpTail, tag, func(xs any) any { return seq{elems: xs.(seq).elems[1:]} })
		hana.Declare(r, hana.OpIsEmpty, tag, func(xs any) bool { return len(xs.(seq).elems) == 0 })
		hana.Model(r, hana.Foldable, tag)
		hana.Model(r, hana.Iterable, tag)
	}},
}

func sealVariant(t *testing.T, declare func(r *hana.Registry)) *hana.Table {
	t.Helper()
	r := hana.NewRegistry()
	hana.RegisterBuiltins(r)
	declare(r)
	tb, err := r.Seal()
	require.NoError(t, err)
	return tb
}

func showAcc(tb *hana.Table) func(x, y any) any {
	return func(x, y any) any {
		return "f(" + tb.Show(x) + ", " + tb.Show(y) + ")"
	}
}

func TestFoldableVariantsAgree(t *testing.T) {
	for _, v := range seqVariants {
		t.Run(v.name, func(t *testing.T) {
			tb := sealVariant(t, v.declare)
			xs := seqOf(1, 2, 3)
			empty := seqOf()

			alt, ok := tb.Alternative("Foldable", hana.TagOf[seqTag]())
			require.True(t, ok)
			assert.Equal(t, v.name, alt)

			assert.Equal(t, "f(f(f(s, 1), 2), 3)", tb.Foldl(xs, "s", showAcc(tb)))
			assert.Equal(t, "f(1, f(2, f(3, s)))", tb.Foldr(xs, "s", showAcc(tb)))
			assert.Equal(t, "f(f(1, 2), 3)", tb.Foldl1(xs, showAcc(tb)))
			assert.Equal(t, "f(1, f(2, 3))", tb.Foldr1(xs, showAcc(tb)))
			assert.Equal(t, []any{1, 2, 3}, tb.ToSlice(xs))
			assert.Empty(t, tb.ToSlice(empty))

			assert.Equal(t, 3, tb.Length(xs))
			assert.Equal(t, 0, tb.Length(empty))
			assert.Equal(t, 6, tb.Sum(xs))
			assert.Equal(t, 0, tb.Sum(empty))
			assert.Equal(t, 6, tb.Product(xs))
			assert.Equal(t, 1, tb.Product(empty))
			assert.Equal(t, 3, tb.Maximum(xs))
			assert.Equal(t, 1, tb.Minimum(xs))

			odd := func(x any) bool { return x.(int)%2 == 1 }
			assert.Equal(t, 2, tb.Count(xs, odd))
			assert.False(t, tb.All(xs, odd))
			assert.True(t, tb.Any(xs, odd))
			assert.False(t, tb.None(xs, odd))
			assert.True(t, tb.All(empty, odd))
			assert.False(t, tb.Any(empty, odd))

			var seen []any
			tb.ForEach(xs, func(x any) { seen = append(seen, x) })
			assert.Equal(t, []any{1, 2, 3}, seen)

			assert.Equal(t, 6, tb.UnpackWith(xs, func(elems ...any) any {
				return elems[0].(int) + elems[1].(int) + elems[2].(int)
			}))
			assert.PanicsWithError(t, "hana: operation requires a non-empty structure: foldl1 [hana_test.seqTag]", func() {
				tb.Foldl1(empty, showAcc(tb))
			})
		})
	}
}

func TestFoldableSynthesizesOnlyMissingOperations(t *testing.T) {
	tb := sealVariant(t, seqVariants[1].declare)
	models := tb.Models(hana.TagOf[seqTag]())
	require.Len(t, models, 1)
	assert.Equal(t, "Foldable", models[0].Structure)
	assert.Equal(t, "unpack", models[0].Alternative)
	assert.Contains(t, models[0].Synthesized, "foldl")
	assert.Contains(t, models[0].Synthesized, "foldr")
	assert.NotContains(t, models[0].Synthesized, "unpack")

	_, res, err := hana.Lookup(tb, hana.OpFoldl, hana.TagOf[seqTag]())
	require.NoError(t, err)
	assert.Equal(t, hana.RuleSynthesized, res.Rule)
	assert.Equal(t, hana.Default, res.Marker)
	assert.Equal(t, "Foldable.unpack/foldl", res.Candidate)
}

func TestFoldableCustomOverridesDerived(t *testing.T) {
	tb := sealVariant(t, func(r *hana.Registry) {
		seqVariants[0].declare(r)
		hana.Declare(r, hana.OpLength, hana.TagOf[seqTag](), func(xs any) int { return -1 })
	})
	assert.Equal(t, -1, tb.Length(seqOf(1, 2)))
	assert.False(t, hana.IsDefault(tb, hana.OpLength, hana.TagOf[seqTag]()))
}

func TestIterableMCDWithoutIterableModelIsIncomplete(t *testing.T) {
	r := hana.NewRegistry()
	tag := hana.TagOf[seqTag]()
	hana.Declare(r, hana.OpHead, tag, func(xs any) any { return nil })
	hana.Declare(r, hana.OpTail, tag, func(xs any) any { return xs })
	hana.Declare(r, hana.OpIsEmpty, tag, func(xs any) bool { return true })
	hana.Model(r, hana.Foldable, tag)

	_, err := r.Seal()
	require.ErrorIs(t, err, hana.ErrIncompleteMCD)
}

func TestIterableFoldrIsStackSafe(t *testing.T) {
	tb := sealVariant(t, seqVariants[2].declare)
	const n = 200_000
	e := make([]int, n)
	for i := range e {
		e[i] = 1
	}
	got := tb.Foldr(seq{elems: e}, 0, func(x, acc any) any { return x.(int) + acc.(int) })
	assert.Equal(t, n, got)
}

func TestMonoidModel(t *testing.T) {
	tag := hana.DatatypeOf[vec2]()
	r := hana.NewRegistry()
	hana.Declare(r, hana.OpZero, tag, func(hana.Tag) any { return vec2{} })
	hana.Declare(r, hana.OpPlus, tag, func(x, y any) any {
		a, b := x.(vec2), y.(vec2)
		return vec2{a.x + b.x, a.y + b.y}
	})
	hana.Model(r, hana.Monoid, tag)
	tb, err := r.Seal()
	require.NoError(t, err)

	assert.Equal(t, vec2{4, 6}, tb.Plus(vec2{1, 2}, vec2{3, 4}))
	assert.Equal(t, vec2{}, tb.Zero(tag))

	r = hana.NewRegistry()
	hana.Declare(r, hana.OpZero, tag, func(hana.Tag) any { return vec2{} })
	hana.Model(r, hana.Ring, tag)
	_, err = r.Seal()
	require.ErrorIs(t, err, hana.ErrIncompleteMCD)
	assert.Len(t, multierr.Errors(err), 2)
}
