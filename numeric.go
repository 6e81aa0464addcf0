// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import (
	"cmp"
	"reflect"
)

var intTag = TagOf[int]()

var numericKinds = []reflect.Kind{
	reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
	reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
	reflect.Float32, reflect.Float64,
}

// Numeric applies to every type whose kind is an integer or floating point
// kind, named types included.
func Numeric() Condition {
	return WhenValid(ComparableType(), KindOf(numericKinds...))
}

type numClass uint8

const (
	classInt numClass = iota
	classUint
	classFloat
)

func classOf(k reflect.Kind) numClass {
	switch k {
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	default:
		return classInt
	}
}

// numeric is a number of any kind together with its dynamic type.
type numeric struct {
	rv    reflect.Value
	class numClass
}

func numberOf(x any) numeric {
	rv := reflect.ValueOf(x)
	return numeric{rv: rv, class: classOf(rv.Kind())}
}

func (n numeric) float() float64 {
	switch n.class {
	case classFloat:
		return n.rv.Float()
	case classUint:
		return float64(n.rv.Uint())
	default:
		return float64(n.rv.Int())
	}
}

func (n numeric) int() int64 {
	if n.class == classUint {
		return int64(n.rv.Uint())
	}
	return n.rv.Int()
}

// arith combines two numbers. Operands of the same type keep it; mixed
// operands are promoted to float64 when either is floating point, else to
// int64.
func arith(x, y any, ints func(a, b int64) int64, uints func(a, b uint64) uint64, floats func(a, b float64) float64) any {
	a, b := numberOf(x), numberOf(y)
	if a.rv.Type() == b.rv.Type() {
		out := reflect.New(a.rv.Type()).Elem()
		switch a.class {
		case classFloat:
			out.SetFloat(floats(a.rv.Float(), b.rv.Float()))
		case classUint:
			out.SetUint(uints(a.rv.Uint(), b.rv.Uint()))
		default:
			out.SetInt(ints(a.rv.Int(), b.rv.Int()))
		}
		return out.Interface()
	}
	if a.class == classFloat || b.class == classFloat {
		return floats(a.float(), b.float())
	}
	return ints(a.int(), b.int())
}

func compareNumbers(x, y any) int {
	a, b := numberOf(x), numberOf(y)
	switch {
	case a.class == classFloat || b.class == classFloat:
		return cmp.Compare(a.float(), b.float())
	case a.class == classUint && b.class == classUint:
		return cmp.Compare(a.rv.Uint(), b.rv.Uint())
	case a.class == classUint && a.rv.Uint() > uint64(1<<63-1):
		return 1
	case b.class == classUint && b.rv.Uint() > uint64(1<<63-1):
		return -1
	default:
		return cmp.Compare(a.int(), b.int())
	}
}

func numericOf(tag Tag, v int64) any {
	out := reflect.New(tag.Type()).Elem()
	switch classOf(out.Kind()) {
	case classFloat:
		out.SetFloat(float64(v))
	case classUint:
		out.SetUint(uint64(v))
	default:
		out.SetInt(v)
	}
	return out.Interface()
}
