// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana_test

import (
	"strconv"
	"strings"
	"testing"

	"code.hybscloud.com/hana"
	"github.com/stretchr/testify/assert"
)

func TestFunctionalCombinators(t *testing.T) {
	inc := func(x int) int { return x + 1 }
	double := func(x int) int { return x * 2 }
	sub := func(a, b int) int { return a - b }

	assert.Equal(t, 3, hana.Id(3))
	assert.Equal(t, "k", hana.Const[string, int]("k")(99))
	assert.Equal(t, 8, hana.Compose(double, inc)(3))
	assert.Equal(t, 7, hana.Compose(inc, double)(3))
	assert.Equal(t, 3, hana.Flip(sub)(2, 5))
	assert.Equal(t, 7, hana.Partial(sub, 10)(3))
	assert.Equal(t, 7, hana.Curry2(sub)(10)(3))
	assert.Equal(t, "abc", hana.Curry3(func(a, b, c string) string { return a + b + c })("a")("b")("c"))
	assert.Equal(t, 16, hana.Apply(double, 8))

	byLen := hana.On(func(a, b int) bool { return a < b }, func(s string) int { return len(s) })
	assert.True(t, byLen("ab", "abc"))
	assert.False(t, byLen("abc", "xyz"))

	pair := hana.Demux(func(a string, b int) string { return a + "/" + strconv.Itoa(b) }, strings.ToUpper, func(s string) int { return len(s) })
	assert.Equal(t, "HANA/4", pair("hana"))

	both := hana.Lockstep(func(a, b int) int { return a + b }, inc, double)
	assert.Equal(t, 11, both(2, 4))
}

func TestCombinatorsWithDispatch(t *testing.T) {
	// Composition with dispatched operations over a tuple of tuples.
	lengths := func(xs any) any { return hana.Transform(xs, func(x any) any { return hana.Length(x) }) }
	total := hana.Compose(hana.Sum, lengths)
	xs := hana.MakeTuple(hana.MakeTuple(1, 2), hana.MakeTuple(), hana.MakeTuple("a"))
	assert.Equal(t, 3, total(xs))

	// Flip turns foldr's element-first accumulator into foldl's.
	cons := func(x, acc any) any { return hana.Prepend(x, acc) }
	got := hana.Foldl(hana.Range(1, 4), hana.MakeTuple(), hana.Flip(cons))
	assert.Equal(t, hana.MakeTuple(3, 2, 1), got)
}
