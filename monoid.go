// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import (
	"reflect"
)

type (
	// IdentityFunc returns the identity element of the data type named by tag.
	IdentityFunc func(tag Tag) any
	BinaryFunc   func(x, y any) any
)

var (
	OpZero = NewOperation[IdentityFunc]("zero")
	OpPlus = NewBinaryOperation[BinaryFunc]("plus")
	OpOne  = NewOperation[IdentityFunc]("one")
	OpMult = NewBinaryOperation[BinaryFunc]("mult")
)

// Monoid is the structure of data types with plus and its identity zero.
var Monoid = &Structure{
	Name: "Monoid",
	Alternatives: []Alternative{
		{Name: "monoid", Ops: []string{OpZero.Name(), OpPlus.Name()}},
	},
}

// Ring adds mult and its identity one to a Monoid.
var Ring = &Structure{
	Name:     "Ring",
	Requires: []*Structure{Monoid},
	Alternatives: []Alternative{
		{Name: "ring", Ops: []string{OpOne.Name(), OpMult.Name()}},
	},
}

func declareMonoid(r *Registry) {
	DeclareWhen(r, OpZero, Numeric(), func(tag Tag) any {
		return numericOf(tag, 0)
	}, Named("zero.numeric"), AsDefault())
	DeclareWhen(r, OpOne, Numeric(), func(tag Tag) any {
		return numericOf(tag, 1)
	}, Named("one.numeric"), AsDefault())
	DeclareWhen(r, OpPlus, Numeric(), func(x, y any) any {
		return arith(x, y,
			func(a, b int64) int64 { return a + b },
			func(a, b uint64) uint64 { return a + b },
			func(a, b float64) float64 { return a + b })
	}, Named("plus.numeric"), AsDefault())
	DeclareWhen(r, OpMult, Numeric(), func(x, y any) any {
		return arith(x, y,
			func(a, b int64) int64 { return a * b },
			func(a, b uint64) uint64 { return a * b },
			func(a, b float64) float64 { return a * b })
	}, Named("mult.numeric"), AsDefault())

	str := WhenValid(KindOf(reflect.String))
	DeclareWhen(r, OpZero, str, func(tag Tag) any {
		return reflect.New(tag.Type()).Elem().Interface()
	}, Named("zero.string"), AsDefault())
	DeclareWhen(r, OpPlus, str, func(x, y any) any {
		a, b := reflect.ValueOf(x), reflect.ValueOf(y)
		if a.Type() != b.Type() {
			return a.String() + b.String()
		}
		out := reflect.New(a.Type()).Elem()
		out.SetString(a.String() + b.String())
		return out.Interface()
	}, Named("plus.string"), AsDefault())
}

// Zero returns the additive identity of the data type named by tag.
func (t *Table) Zero(tag Tag) any {
	return dispatchTag(t, OpZero, tag)(tag)
}

// One returns the multiplicative identity of the data type named by tag.
func (t *Table) One(tag Tag) any {
	return dispatchTag(t, OpOne, tag)(tag)
}

// Plus adds x and y.
func (t *Table) Plus(x, y any) any {
	return dispatchPair(t, OpPlus, x, y)(x, y)
}

// Mult multiplies x and y.
func (t *Table) Mult(x, y any) any {
	return dispatchPair(t, OpMult, x, y)(x, y)
}
