// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"code.hybscloud.com/hana"
)

const propertyN = 500

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randInts returns a random slice of length [0, 12].
func randInts(rng *rand.Rand) []int {
	xs := make([]int, rng.IntN(13))
	for i := range xs {
		xs[i] = randInt(rng)
	}
	return xs
}

func tupleOf(xs []int) hana.Tuple {
	elems := make([]any, len(xs))
	for i, x := range xs {
		elems[i] = x
	}
	return hana.MakeTuple(elems...)
}

func addInts(x, y any) any { return x.(int) + y.(int) }

// --- Group 1: Foldable ---

// TestPropertyFoldsAgreeAcrossDataTypes: folding a tuple, a slice and a
// plain loop over the same elements gives the same result.
func TestPropertyFoldsAgreeAcrossDataTypes(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		xs := randInts(rng)
		want := 0
		for _, x := range xs {
			want = want*31 + x
		}
		hash := func(acc, x any) any { return acc.(int)*31 + x.(int) }
		if got := hana.Foldl(tupleOf(xs), 0, hash); got != want {
			t.Fatalf("foldl tuple: %v != %d (xs=%v)", got, want, xs)
		}
		if got := hana.Foldl(xs, 0, hash); got != want {
			t.Fatalf("foldl slice: %v != %d (xs=%v)", got, want, xs)
		}
	}
}

// TestPropertyFoldrIsFoldlOfReverse: foldr(xs, s, f) ≡ foldl(reverse(xs), s, flip(f))
func TestPropertyFoldrIsFoldlOfReverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	for range propertyN {
		xs := tupleOf(randInts(rng))
		f := func(x, acc any) any { return acc.(int)*7 - x.(int) }
		left := hana.Foldr(xs, 1, f)
		right := hana.Foldl(hana.Reverse(xs), 1, hana.Flip(f))
		if left != right {
			t.Fatalf("foldr/foldl: %v != %v (xs=%v)", left, right, hana.Show(xs))
		}
	}
}

// TestPropertyMCDVariantsAgree: every minimal complete definition of
// Foldable yields the same derived operations.
func TestPropertyMCDVariantsAgree(t *testing.T) {
	tables := make([]*hana.Table, len(seqVariants))
	for i, v := range seqVariants {
		tables[i] = sealVariant(t, v.declare)
	}
	rng := rand.New(rand.NewPCG(42, 2))
	for range propertyN {
		xs := seqOf(randInts(rng)...)
		pos := func(x any) bool { return x.(int) > 0 }
		ref := tables[0]
		for i, tb := range tables[1:] {
			name := seqVariants[i+1].name
			if a, b := ref.Foldl(xs, 0, addInts), tb.Foldl(xs, 0, addInts); a != b {
				t.Fatalf("%s foldl: %v != %v", name, a, b)
			}
			if a, b := ref.ToSlice(xs), tb.ToSlice(xs); !slices.Equal(a, b) {
				t.Fatalf("%s unpack: %v != %v", name, a, b)
			}
			if a, b := ref.Count(xs, pos), tb.Count(xs, pos); a != b {
				t.Fatalf("%s count: %d != %d", name, a, b)
			}
			if a, b := ref.Length(xs), tb.Length(xs); a != b {
				t.Fatalf("%s length: %d != %d", name, a, b)
			}
			if len(xs.elems) > 0 {
				if a, b := ref.Maximum(xs), tb.Maximum(xs); a != b {
					t.Fatalf("%s maximum: %v != %v", name, a, b)
				}
			}
		}
	}
}

// TestPropertyMaximumBounds: maximum(xs) is an element no element exceeds.
func TestPropertyMaximumBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 3))
	for range propertyN {
		xs := randInts(rng)
		if len(xs) == 0 {
			continue
		}
		if got, want := hana.Maximum(xs), slices.Max(xs); got != want {
			t.Fatalf("maximum: %v != %d (xs=%v)", got, want, xs)
		}
		if got, want := hana.Minimum(tupleOf(xs)), slices.Min(xs); got != want {
			t.Fatalf("minimum: %v != %d (xs=%v)", got, want, xs)
		}
	}
}

// --- Group 2: Sequence ---

// TestPropertyReverseInvolution: reverse(reverse(xs)) ≡ xs
func TestPropertyReverseInvolution(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 4))
	for range propertyN {
		xs := randInts(rng)
		if got := hana.Reverse(hana.Reverse(xs)).([]int); !slices.Equal(got, xs) {
			t.Fatalf("reverse slice: %v != %v", got, xs)
		}
		tup := tupleOf(xs)
		if !hana.Equal(hana.Reverse(hana.Reverse(tup)), tup) {
			t.Fatalf("reverse tuple: %s", hana.Show(tup))
		}
	}
}

// TestPropertyConcatLength: length(concat(a, b)) ≡ length(a) + length(b)
func TestPropertyConcatLength(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 5))
	for range propertyN {
		a, b := tupleOf(randInts(rng)), tupleOf(randInts(rng))
		if got, want := hana.Length(hana.Concat(a, b)), a.Len()+b.Len(); got != want {
			t.Fatalf("concat length: %d != %d", got, want)
		}
	}
}

// TestPropertyConcatAssociative: concat(concat(a, b), c) ≡ concat(a, concat(b, c))
func TestPropertyConcatAssociative(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 6))
	for range propertyN {
		a, b, c := tupleOf(randInts(rng)), tupleOf(randInts(rng)), tupleOf(randInts(rng))
		left := hana.Concat(hana.Concat(a, b), c)
		right := hana.Concat(a, hana.Concat(b, c))
		if !hana.Equal(left, right) {
			t.Fatalf("concat associativity: %s != %s", hana.Show(left), hana.Show(right))
		}
		if !hana.Equal(hana.Concat(hana.Empty(hana.DatatypeOf[hana.Tuple]()), a), a) {
			t.Fatalf("concat identity: %s", hana.Show(a))
		}
	}
}

// TestPropertyFilterCount: length(filter(xs, p)) ≡ count(xs, p)
func TestPropertyFilterCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for range propertyN {
		xs := randInts(rng)
		even := func(x any) bool { return x.(int)%2 == 0 }
		kept := hana.Filter(xs, even)
		if got, want := hana.Length(kept), hana.Count(xs, even); got != want {
			t.Fatalf("filter/count: %d != %d (xs=%v)", got, want, xs)
		}
		if !hana.All(kept, even) {
			t.Fatalf("filter kept an odd element: %v", kept)
		}
	}
}

// TestPropertyLessIsStrict: less is irreflexive and asymmetric on tuples.
func TestPropertyLessIsStrict(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 8))
	for range propertyN {
		a, b := tupleOf(randInts(rng)), tupleOf(randInts(rng))
		if hana.Less(a, a) {
			t.Fatalf("irreflexive: %s", hana.Show(a))
		}
		if hana.Less(a, b) && hana.Less(b, a) {
			t.Fatalf("asymmetric: %s, %s", hana.Show(a), hana.Show(b))
		}
		if hana.Equal(a, b) != (!hana.Less(a, b) && !hana.Less(b, a)) {
			t.Fatalf("equivalence: %s, %s", hana.Show(a), hana.Show(b))
		}
	}
}
