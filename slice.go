// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import "slices"

// DeclareSlice makes []T a Sequence in r. Elements produced by transform or
// lifted into the slice must be of type T.
func DeclareSlice[T any](r *Registry) {
	tag := TagOf[[]T]()
	Declare(r, OpFoldl, tag, func(xs, state any, f func(any, any) any) any {
		for _, x := range xs.([]T) {
			state = f(state, x)
		}
		return state
	})
	Declare(r, OpFoldr, tag, func(xs, state any, f func(any, any) any) any {
		s := xs.([]T)
		for i := len(s) - 1; i >= 0; i-- {
			state = f(s[i], state)
		}
		return state
	})
	Declare(r, OpHead, tag, func(xs any) any {
		s := xs.([]T)
		if len(s) == 0 {
			emptyStructure(OpHead.Name(), tag)
		}
		return s[0]
	})
	Declare(r, OpTail, tag, func(xs any) any {
		s := xs.([]T)
		if len(s) == 0 {
			emptyStructure(OpTail.Name(), tag)
		}
		return s[1:]
	})
	Declare(r, OpIsEmpty, tag, func(xs any) bool {
		return len(xs.([]T)) == 0
	})
	Declare(r, OpLength, tag, func(xs any) int {
		return len(xs.([]T))
	})
	Declare(r, OpLift, tag, func(x any) any {
		return []T{erasedAs[T](x)}
	})
	Declare(r, OpEmpty, tag, func() any {
		return []T{}
	})
	Declare(r, OpConcat, tag, func(xs, ys any) any {
		return slices.Concat(xs.([]T), ys.([]T))
	})
	Model(r, Sequence, tag)
}
