// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

// MaybeTag is the tag of [Maybe].
type MaybeTag struct{}

var maybeTag = TagOf[MaybeTag]()

// Maybe holds an optional value. It is Foldable with zero or one element.
type Maybe struct {
	ok bool
	v  any
}

// Just returns the Maybe holding x.
func Just(x any) Maybe { return Maybe{ok: true, v: x} }

// Nothing returns the empty Maybe.
func Nothing() Maybe { return Maybe{} }

func (Maybe) Datatype() Tag { return maybeTag }

// IsJust reports whether m holds a value.
func (m Maybe) IsJust() bool { return m.ok }

// IsNothing reports whether m is empty.
func (m Maybe) IsNothing() bool { return !m.ok }

// FromJust returns the value of m and panics with ErrEmptyStructure when m
// is empty.
func (m Maybe) FromJust() any {
	if !m.ok {
		emptyStructure("from_just", maybeTag)
	}
	return m.v
}

// FromMaybe returns the value of m, or def when m is empty.
func (m Maybe) FromMaybe(def any) any {
	if !m.ok {
		return def
	}
	return m.v
}

func declareMaybe(r *Registry) {
	Declare(r, OpUnpack, maybeTag, func(xs any) Cont[any, []any] {
		if m := xs.(Maybe); m.ok {
			return Return[any]([]any{m.v})
		}
		return Return[any, []any](nil)
	})
	Declare(r, OpLift, maybeTag, func(x any) any { return Just(x) })
	Declare(r, OpShow, maybeTag, func(xs any) string {
		if m := xs.(Maybe); m.ok {
			return "just(" + r.sealedTable().Show(m.v) + ")"
		}
		return "nothing"
	})
	Model(r, Foldable, maybeTag)
	Model(r, Applicative, maybeTag)
}
