// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana_test

import (
	"testing"

	"code.hybscloud.com/hana"
)

// BenchmarkLookupSealed measures dispatch on a key resolved at seal time.
func BenchmarkLookupSealed(b *testing.B) {
	tb := hana.Std()
	tag := hana.DatatypeOf[hana.Tuple]()
	for b.Loop() {
		_, _, _ = hana.Lookup(tb, hana.OpLength, tag)
	}
}

// BenchmarkLookupLazy measures dispatch on a key resolved on first use and
// served from the cache afterwards.
func BenchmarkLookupLazy(b *testing.B) {
	tb := hana.Std()
	tag := hana.TagOf[uint16]()
	for b.Loop() {
		_, _, _ = hana.Lookup(tb, hana.OpPlus, tag)
	}
}

// BenchmarkLookupPairMixed measures binary dispatch on two distinct tags.
func BenchmarkLookupPairMixed(b *testing.B) {
	tb := hana.Std()
	l, r := hana.TagOf[int](), hana.TagOf[float64]()
	for b.Loop() {
		_, _, _ = hana.LookupPair(tb, hana.OpLess, l, r)
	}
}

// BenchmarkFoldlTupleSynthesized measures foldl derived from unpack.
func BenchmarkFoldlTupleSynthesized(b *testing.B) {
	xs := hana.MakeTuple(1, 2, 3, 4, 5, 6, 7, 8)
	for b.Loop() {
		_ = hana.Foldl(xs, 0, addInts)
	}
}

// BenchmarkFoldlSliceCustom measures foldl supplied directly.
func BenchmarkFoldlSliceCustom(b *testing.B) {
	xs := []int{1, 2, 3, 4, 5, 6, 7, 8}
	for b.Loop() {
		_ = hana.Foldl(xs, 0, addInts)
	}
}

// BenchmarkFoldrIterable measures the trampolined foldr derived from head,
// tail and is_empty.
func BenchmarkFoldrIterable(b *testing.B) {
	r := hana.NewRegistry()
	hana.RegisterBuiltins(r)
	seqVariants[2].declare(r)
	tb := r.MustSeal()
	xs := seqOf(1, 2, 3, 4, 5, 6, 7, 8)
	for b.Loop() {
		_ = tb.Foldr(xs, 0, addInts)
	}
}

// BenchmarkSeal measures sealing the built-in declarations.
func BenchmarkSeal(b *testing.B) {
	for b.Loop() {
		r := hana.NewRegistry()
		hana.RegisterBuiltins(r)
		_ = r.MustSeal()
	}
}
