// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import "reflect"

// Operation is a named polymorphic operation whose implementations have the
// function type F. Candidates are declared per tag in a [Registry] and
// resolved once, when the registry is sealed.
//
// Operations are package-level values:
//
//	type PrintFunc func(w io.Writer, x any)
//	var PrintOp = hana.NewOperation[PrintFunc]("print")
type Operation[F any] struct {
	name   string
	binary bool
}

// NewOperation returns an operation dispatched on the tag of one argument.
func NewOperation[F any](name string) Operation[F] {
	return Operation[F]{name: name}
}

// NewBinaryOperation returns an operation dispatched jointly on two tags.
// Same-tag calls use the unary candidates of that tag; mixed-tag calls need a
// pairwise candidate or agreement between both tags' candidates.
func NewBinaryOperation[F any](name string) Operation[F] {
	return Operation[F]{name: name, binary: true}
}

// Name returns the operation name.
func (o Operation[F]) Name() string { return o.name }

// Binary reports whether the operation dispatches on two tags.
func (o Operation[F]) Binary() bool { return o.binary }

func (o Operation[F]) key() string { return o.name }

func (o Operation[F]) info() *opInfo {
	return &opInfo{name: o.name, binary: o.binary, fn: reflect.TypeFor[F]()}
}

// opInfo is what a registry remembers about an operation: one name maps to
// exactly one implementation type.
type opInfo struct {
	name   string
	binary bool
	fn     reflect.Type
}
