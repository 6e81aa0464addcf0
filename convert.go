// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import (
	"reflect"
	"slices"
)

// Conversions between data types.
//
// to(target, x) is dispatched on the pair (target, Datatype(x)). A conversion
// declared for that pair wins. Otherwise, in order:
//   - x already has the target data type and is returned unchanged;
//   - both data types are numbers and x is converted as by a Go conversion;
//   - the target models Sequence and x models Foldable, and the elements of x
//     are made into a target sequence.
//
// An embedding is a conversion that loses nothing. Identity is an embedding,
// as are number conversions to a wider type of the same class, and declared
// conversions marked with [Embedding].

// ConvertFunc converts x to the target data type of its conversion.
type ConvertFunc func(x any) any

var OpTo = NewBinaryOperation[ConvertFunc]("to")

// DeclareConversion declares f as the conversion from the data type from to
// the data type to.
func DeclareConversion(r *Registry, to, from Tag, f ConvertFunc, opts ...DeclOption) {
	DeclarePair(r, OpTo, to, from, f, opts...)
}

// Embedding marks a declared conversion as an embedding.
func Embedding() DeclOption {
	return func(c *candidate) { c.embedding = true }
}

type conversion struct {
	res       Resolution
	fn        ConvertFunc
	embedding bool
}

func (t *Table) conversion(to, from Tag) (conversion, error) {
	tags := []Tag{to, from}
	if c, ok := t.pairs[pairKey{op: OpTo.Name(), left: to, right: from}]; ok {
		return conversion{res: c.resolution(to), fn: c.impl.(ConvertFunc), embedding: c.embedding}, nil
	}
	builtin := func(name string, rule Rule, fn ConvertFunc, embedding bool) conversion {
		return conversion{
			res:       Resolution{Operation: OpTo.Name(), Tags: tags, Candidate: name, Rule: rule, Marker: Default},
			fn:        fn,
			embedding: embedding,
		}
	}
	switch {
	case to == from:
		return builtin("to.identity", RuleSynthesized, identity[any], true), nil
	case isNumber(to) && isNumber(from):
		rt := to.rt
		return builtin("to.number", RuleConditional, func(x any) any {
			return reflect.ValueOf(x).Convert(rt).Interface()
		}, numberEmbeds(from.rt, rt)), nil
	}
	if _, ok := t.Alternative(Sequence.Name, to); ok {
		if _, ok := t.Alternative(Foldable.Name, from); ok {
			c := builtin(Sequence.Name+".make/to", RuleSynthesized, func(x any) any {
				return t.Make(to, t.ToSlice(x)...)
			}, false)
			c.res.Structure = Sequence.Name
			return c, nil
		}
	}
	return conversion{res: Resolution{Operation: OpTo.Name(), Tags: tags}},
		&Error{Kind: KindUnresolved, Operation: OpTo.Name(), Tags: tags}
}

func isNumber(tag Tag) bool {
	return tag.rt != nil && slices.Contains(numericKinds, tag.rt.Kind())
}

// numberEmbeds reports whether every value of from is exactly representable
// in to.
func numberEmbeds(from, to reflect.Type) bool {
	return classOf(from.Kind()) == classOf(to.Kind()) && to.Size() >= from.Size()
}

// Conversion returns the resolution of to(to, x) for a value x of the data
// type from, without converting anything.
func (t *Table) Conversion(to, from Tag) (Resolution, error) {
	c, err := t.conversion(to, from)
	return c.res, err
}

// To converts x to the data type to. It panics if there is no conversion.
func (t *Table) To(to Tag, x any) any {
	c, err := t.conversion(to, Datatype(x))
	if err != nil {
		panic(err)
	}
	return c.fn(x)
}

// IsConvertible reports whether values of the data type from convert to to.
func (t *Table) IsConvertible(to, from Tag) bool {
	_, err := t.conversion(to, from)
	return err == nil
}

// IsEmbedded reports whether the conversion from from to to is an embedding.
func (t *Table) IsEmbedded(to, from Tag) bool {
	c, err := t.conversion(to, from)
	return err == nil && c.embedding
}
