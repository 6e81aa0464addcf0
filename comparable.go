// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import (
	"reflect"
	"strings"
)

type (
	EqualFunc func(x, y any) bool
	// LessFunc must be a strict weak ordering.
	LessFunc func(x, y any) bool
)

var (
	OpEqual = NewBinaryOperation[EqualFunc]("equal")
	OpLess  = NewBinaryOperation[LessFunc]("less")
)

func declareComparable(r *Registry) {
	DeclareWhen(r, OpEqual, Numeric(), func(x, y any) bool {
		return compareNumbers(x, y) == 0
	}, Named("equal.numeric"), AsDefault())
	DeclareWhen(r, OpEqual, WhenValid(ComparableType()), func(x, y any) bool {
		return x == y
	}, Named("equal.comparable"), AsDefault())
	DeclareFallback(r, OpEqual, func(x, y any) bool {
		return false
	}, Named("equal.never"), AsDefault())

	DeclareWhen(r, OpLess, Numeric(), func(x, y any) bool {
		return compareNumbers(x, y) < 0
	}, Named("less.numeric"), AsDefault())
	DeclareWhen(r, OpLess, WhenValid(KindOf(reflect.String)), func(x, y any) bool {
		return strings.Compare(reflect.ValueOf(x).String(), reflect.ValueOf(y).String()) < 0
	}, Named("less.string"), AsDefault())
}

// Equal reports whether x and y are equal. Numbers of different types are
// compared by value; values of types with no notion of equality are never
// equal.
func (t *Table) Equal(x, y any) bool {
	return dispatchPair(t, OpEqual, x, y)(x, y)
}

// NotEqual is the negation of Equal.
func (t *Table) NotEqual(x, y any) bool { return !t.Equal(x, y) }

// Less reports whether x orders before y.
func (t *Table) Less(x, y any) bool {
	return dispatchPair(t, OpLess, x, y)(x, y)
}

func (t *Table) LessEqual(x, y any) bool    { return !t.Less(y, x) }
func (t *Table) Greater(x, y any) bool      { return t.Less(y, x) }
func (t *Table) GreaterEqual(x, y any) bool { return !t.Less(x, y) }
