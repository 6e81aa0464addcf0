// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import "strconv"

// RangeTag is the tag of [IntRange].
type RangeTag struct{}

var rangeTag = TagOf[RangeTag]()

// IntRange is the half-open range of integers [From, To).
// It models Foldable and Iterable without materializing its elements.
type IntRange struct {
	From, To int
}

// Range returns [from, to). A range with to < from is empty.
func Range(from, to int) IntRange {
	if to < from {
		to = from
	}
	return IntRange{From: from, To: to}
}

func (IntRange) Datatype() Tag { return rangeTag }

func declareRange(r *Registry) {
	Declare(r, OpFoldl, rangeTag, func(xs, state any, f func(any, any) any) any {
		rg := xs.(IntRange)
		for i := rg.From; i < rg.To; i++ {
			state = f(state, i)
		}
		return state
	})
	Declare(r, OpFoldr, rangeTag, func(xs, state any, f func(any, any) any) any {
		rg := xs.(IntRange)
		for i := rg.To - 1; i >= rg.From; i-- {
			state = f(i, state)
		}
		return state
	})
	Declare(r, OpHead, rangeTag, func(xs any) any {
		rg := xs.(IntRange)
		if rg.From >= rg.To {
			emptyStructure(OpHead.Name(), rangeTag)
		}
		return rg.From
	})
	Declare(r, OpTail, rangeTag, func(xs any) any {
		rg := xs.(IntRange)
		if rg.From >= rg.To {
			emptyStructure(OpTail.Name(), rangeTag)
		}
		return IntRange{From: rg.From + 1, To: rg.To}
	})
	Declare(r, OpIsEmpty, rangeTag, func(xs any) bool {
		rg := xs.(IntRange)
		return rg.From >= rg.To
	})
	Declare(r, OpLength, rangeTag, func(xs any) int {
		rg := xs.(IntRange)
		return max(rg.To-rg.From, 0)
	})
	Declare(r, OpShow, rangeTag, func(xs any) string {
		rg := xs.(IntRange)
		return "range(" + strconv.Itoa(rg.From) + ", " + strconv.Itoa(rg.To) + ")"
	})
	Model(r, Foldable, rangeTag)
	Model(r, Iterable, rangeTag)
}
