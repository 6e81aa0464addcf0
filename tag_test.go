// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana_test

import (
	"testing"

	"code.hybscloud.com/hana"
	"github.com/stretchr/testify/assert"
)

type celsius float64

type vecTag struct{}

// vec2 and vec3 share one explicit tag.
type vec2 struct{ x, y float64 }
type vec3 struct{ x, y, z float64 }

func (vec2) Datatype() hana.Tag { return hana.TagOf[vecTag]() }
func (vec3) Datatype() hana.Tag { return hana.TagOf[vecTag]() }

func TestTagOfIsTypeIdentity(t *testing.T) {
	assert.Equal(t, hana.TagOf[int](), hana.TagOf[int]())
	assert.NotEqual(t, hana.TagOf[int](), hana.TagOf[int64]())
	assert.NotEqual(t, hana.TagOf[float64](), hana.TagOf[celsius]())
	assert.Equal(t, "int", hana.TagOf[int]().String())
	assert.Equal(t, "hana_test.celsius", hana.TagOf[celsius]().String())
}

func TestDatatypeSelfTag(t *testing.T) {
	assert.Equal(t, hana.TagOf[int](), hana.Datatype(3))
	assert.Equal(t, hana.TagOf[[]string](), hana.Datatype([]string{"a"}))
	assert.Equal(t, hana.TagOf[celsius](), hana.DatatypeOf[celsius]())
}

func TestDatatypeExplicitTag(t *testing.T) {
	want := hana.TagOf[vecTag]()
	assert.Equal(t, want, hana.Datatype(vec2{1, 2}))
	assert.Equal(t, want, hana.Datatype(vec3{1, 2, 3}))
	assert.Equal(t, want, hana.DatatypeOf[vec2]())
	assert.Equal(t, hana.DatatypeOf[vec2](), hana.DatatypeOf[vec3]())
	assert.NotEqual(t, hana.TagOf[vec2](), hana.DatatypeOf[vec2]())
}

func TestDatatypeBuiltins(t *testing.T) {
	assert.Equal(t, hana.TagOf[hana.TupleTag](), hana.Datatype(hana.MakeTuple(1, 2)))
	assert.Equal(t, hana.TagOf[hana.MaybeTag](), hana.Datatype(hana.Just(1)))
	assert.Equal(t, hana.TagOf[hana.RangeTag](), hana.Datatype(hana.Range(0, 3)))
}

func TestZeroTag(t *testing.T) {
	tag := hana.Datatype(nil)
	assert.True(t, tag.IsZero())
	assert.Nil(t, tag.Type())
	assert.Equal(t, "<nil>", tag.String())
	assert.False(t, hana.TagOf[int]().IsZero())
}
