// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import (
	"fmt"
	"strings"
)

// ShowFunc renders a value for humans.
type ShowFunc func(x any) string

var OpShow = NewOperation[ShowFunc]("show")

func declareShow(r *Registry) {
	DeclareWhen(r, OpShow, WhenValid(Implements[fmt.Stringer]()), func(x any) string {
		return x.(fmt.Stringer).String()
	}, Named("show.stringer"), AsDefault())
	DeclareFallback(r, OpShow, func(x any) string {
		return fmt.Sprint(x)
	}, Named("show.any"), AsDefault())
}

// Show renders x.
func (t *Table) Show(x any) string {
	return dispatch(t, OpShow, x)(x)
}

// showElems renders elements with open, separator and close.
func (t *Table) showElems(open string, elems []any, close string) string {
	var b strings.Builder
	b.WriteString(open)
	for i, x := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.Show(x))
	}
	b.WriteString(close)
	return b.String()
}
