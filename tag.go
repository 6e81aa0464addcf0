// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import "reflect"

// Tag identifies the data type of a value and is the dispatch key of every
// operation. Two values share a tag exactly when their types map to the same
// data type, so a family of concrete types may share one tag.
//
// The zero Tag is the tag of an untyped nil.
type Tag struct {
	rt reflect.Type
}

// TagOf returns the identity tag of T.
// Tag types are usually empty structs:
//
//	type Seq struct{}
//	var SeqTag = hana.TagOf[Seq]()
func TagOf[T any]() Tag {
	return Tag{rt: reflect.TypeFor[T]()}
}

// Type returns the Go type backing the tag, or nil for the zero Tag.
func (t Tag) Type() reflect.Type { return t.rt }

// IsZero reports whether t is the tag of an untyped nil.
func (t Tag) IsZero() bool { return t.rt == nil }

// String returns the Go type name of the tag.
func (t Tag) String() string {
	if t.rt == nil {
		return "<nil>"
	}
	return t.rt.String()
}

// Tagged is implemented by types that opt into an explicit data type.
// Datatype is called on the zero value of the type, so it must return the
// same tag regardless of the receiver's contents.
//
// Example:
//
//	type seqValue struct{ elems []any }
//	func (seqValue) Datatype() hana.Tag { return SeqTag }
type Tagged interface {
	Datatype() Tag
}

// DatatypeOf returns the tag of the static type T.
// Types implementing [Tagged] use their declared tag; every other type is its
// own tag, which lets built-in and foreign types participate unmodified.
func DatatypeOf[T any]() Tag {
	var zero T
	if tg, ok := any(zero).(Tagged); ok {
		return tg.Datatype()
	}
	return TagOf[T]()
}

// Datatype returns the tag of v's dynamic type under the rule of [DatatypeOf].
func Datatype(v any) Tag {
	if v == nil {
		return Tag{}
	}
	if tg, ok := v.(Tagged); ok {
		return tg.Datatype()
	}
	return Tag{rt: reflect.TypeOf(v)}
}
