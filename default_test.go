// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana_test

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"code.hybscloud.com/hana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type printFunc func(w io.Writer, x any)

var opPrint = hana.NewOperation[printFunc]("print")

type point struct{ x, y int }

func newPrintRegistry() *hana.Registry {
	r := hana.NewRegistry()
	hana.DeclareFallback(r, opPrint, func(w io.Writer, x any) {
		fmt.Fprint(w, x)
	}, hana.AsDefault())
	hana.Declare(r, opPrint, hana.TagOf[[]int](), func(w io.Writer, x any) {
		fmt.Fprint(w, "{")
		for i, v := range x.([]int) {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprint(w, v)
		}
		fmt.Fprint(w, "}")
	})
	return r
}

func TestIsDefaultPrint(t *testing.T) {
	tb, err := newPrintRegistry().Seal()
	require.NoError(t, err)

	assert.True(t, hana.IsDefault(tb, opPrint, hana.TagOf[int]()))
	assert.False(t, hana.IsDefault(tb, opPrint, hana.TagOf[[]int]()))

	var buf bytes.Buffer
	f, _, err := hana.Lookup(tb, opPrint, hana.TagOf[[]int]())
	require.NoError(t, err)
	f(&buf, []int{1, 2, 3})
	assert.Equal(t, "{1, 2, 3}", buf.String())
}

func TestIsDefaultUnresolved(t *testing.T) {
	r := hana.NewRegistry()
	hana.Declare(r, opPrint, hana.TagOf[point](), func(w io.Writer, x any) {})
	tb, err := r.Seal()
	require.NoError(t, err)

	// Nothing supplied for int, not even a fallback.
	assert.True(t, hana.IsDefault(tb, opPrint, hana.TagOf[int]()))
	assert.False(t, hana.IsDefault(tb, opPrint, hana.TagOf[point]()))

	_, res, err := hana.Lookup(tb, opPrint, hana.TagOf[int]())
	require.ErrorIs(t, err, hana.ErrUnresolved)
	assert.Equal(t, hana.RuleImplicit, res.Rule)
	assert.Equal(t, hana.Default, res.Marker)
}

func TestIsDefaultAmbiguousIsNotDefault(t *testing.T) {
	tb, err := newGateRegistry().Seal()
	require.NoError(t, err)
	assert.False(t, hana.IsDefault(tb, opBase, hana.TagOf[both]()))
}

func TestSynthesizedCandidatesAreDefault(t *testing.T) {
	tb := hana.Std()
	tuple := hana.DatatypeOf[hana.Tuple]()

	assert.False(t, hana.IsDefault(tb, hana.OpUnpack, tuple))
	assert.False(t, hana.IsDefault(tb, hana.OpLength, tuple))
	assert.True(t, hana.IsDefault(tb, hana.OpFoldl, tuple))
	assert.True(t, hana.IsDefault(tb, hana.OpConcat, tuple))
	assert.True(t, hana.IsDefault(tb, hana.OpShow, hana.TagOf[int]()))
	assert.False(t, hana.IsDefault(tb, hana.OpShow, tuple))
}

func TestMarkerString(t *testing.T) {
	assert.Equal(t, "custom", hana.Custom.String())
	assert.Equal(t, "default", hana.Default.String())
	assert.Equal(t, "invalid", hana.Marker(0).String())
}

type fullFoldable struct{}

// newFullFoldableRegistry declares every Foldable operation for fullFoldable,
// leaving nothing to synthesize.
func newFullFoldableRegistry() *hana.Registry {
	tag := hana.TagOf[fullFoldable]()
	fold := func(xs, state any, f func(any, any) any) any { return state }
	fold1 := func(xs any, f func(any, any) any) any { return nil }
	reduce := func(xs any) any { return 0 }
	by := func(less func(x, y any) bool, xs any) any { return nil }
	quant := func(xs any, pred func(any) bool) bool { return false }

	r := hana.NewRegistry()
	hana.Declare(r, hana.OpUnpack, tag, func(xs any) hana.Cont[any, []any] {
		return hana.Return[any, []any](nil)
	})
	hana.Declare(r, hana.OpFoldl, tag, fold)
	hana.Declare(r, hana.OpFoldr, tag, fold)
	hana.Declare(r, hana.OpFoldl1, tag, fold1)
	hana.Declare(r, hana.OpFoldr1, tag, fold1)
	hana.Declare(r, hana.OpLength, tag, func(xs any) int { return 0 })
	hana.Declare(r, hana.OpForEach, tag, func(xs any, f func(any)) {})
	hana.Declare(r, hana.OpCount, tag, func(xs any, pred func(any) bool) int { return 0 })
	hana.Declare(r, hana.OpSum, tag, reduce)
	hana.Declare(r, hana.OpProduct, tag, reduce)
	hana.Declare(r, hana.OpMaximum, tag, reduce)
	hana.Declare(r, hana.OpMinimum, tag, reduce)
	hana.Declare(r, hana.OpMaximumBy, tag, by)
	hana.Declare(r, hana.OpMinimumBy, tag, by)
	hana.Declare(r, hana.OpAll, tag, quant)
	hana.Declare(r, hana.OpAny, tag, quant)
	hana.Declare(r, hana.OpNone, tag, quant)
	hana.Model(r, hana.Foldable, tag)
	return r
}

func TestIsDefaultWhenEverythingIsSupplied(t *testing.T) {
	tb, err := newFullFoldableRegistry().Seal()
	require.NoError(t, err)
	tag := hana.TagOf[fullFoldable]()

	tests := []struct {
		op        string
		isDefault func() bool
	}{
		{"unpack", func() bool { return hana.IsDefault(tb, hana.OpUnpack, tag) }},
		{"foldl", func() bool { return hana.IsDefault(tb, hana.OpFoldl, tag) }},
		{"foldr", func() bool { return hana.IsDefault(tb, hana.OpFoldr, tag) }},
		{"foldl1", func() bool { return hana.IsDefault(tb, hana.OpFoldl1, tag) }},
		{"foldr1", func() bool { return hana.IsDefault(tb, hana.OpFoldr1, tag) }},
		{"length", func() bool { return hana.IsDefault(tb, hana.OpLength, tag) }},
		{"for_each", func() bool { return hana.IsDefault(tb, hana.OpForEach, tag) }},
		{"count", func() bool { return hana.IsDefault(tb, hana.OpCount, tag) }},
		{"sum", func() bool { return hana.IsDefault(tb, hana.OpSum, tag) }},
		{"product", func() bool { return hana.IsDefault(tb, hana.OpProduct, tag) }},
		{"maximum", func() bool { return hana.IsDefault(tb, hana.OpMaximum, tag) }},
		{"minimum", func() bool { return hana.IsDefault(tb, hana.OpMinimum, tag) }},
		{"maximum_by", func() bool { return hana.IsDefault(tb, hana.OpMaximumBy, tag) }},
		{"minimum_by", func() bool { return hana.IsDefault(tb, hana.OpMinimumBy, tag) }},
		{"all", func() bool { return hana.IsDefault(tb, hana.OpAll, tag) }},
		{"any", func() bool { return hana.IsDefault(tb, hana.OpAny, tag) }},
		{"none", func() bool { return hana.IsDefault(tb, hana.OpNone, tag) }},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			assert.False(t, tt.isDefault())
		})
	}

	alt, ok := tb.Alternative("Foldable", tag)
	require.True(t, ok)
	assert.Equal(t, "folds", alt)
	for _, m := range tb.Models(tag) {
		assert.Empty(t, m.Synthesized, m.Structure)
	}
}
