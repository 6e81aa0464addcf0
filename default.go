// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import "errors"

// Marker labels a candidate as a replaceable default or as a customization.
// It is carried as data on every candidate and resolution, so asking whether
// a tag customized an operation is a plain query.
type Marker uint8

const (
	// Custom marks a candidate supplied for a tag by its author.
	Custom Marker = iota + 1
	// Default marks a built-in fallback that a Custom candidate may replace.
	Default
)

func (m Marker) String() string {
	switch m {
	case Custom:
		return "custom"
	case Default:
		return "default"
	default:
		return "invalid"
	}
}

// AsDefault marks the declared candidate as [Default].
//
// Example:
//
//	hana.DeclareFallback(r, PrintOp, printAny, hana.AsDefault())
func AsDefault() DeclOption {
	return func(c *candidate) { c.marker = Default }
}

// IsDefault reports whether the candidate that t resolves for (op, tag) is a
// default one. Operations a tag never supplied report true, including those
// with no candidate at all.
func IsDefault[F any](t *Table, op Operation[F], tag Tag) bool {
	res, err := t.resolve(op.key(), tag)
	if err != nil {
		return errors.Is(err, ErrUnresolved)
	}
	return res.Marker == Default
}
