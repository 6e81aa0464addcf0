// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import (
	"errors"
	"strings"
)

// Sentinel errors matched by [Error] through errors.Is.
var (
	ErrUnresolved      = errors.New("hana: operation not implemented for this tag")
	ErrAmbiguous       = errors.New("hana: ambiguous dispatch")
	ErrIncompleteMCD   = errors.New("hana: incomplete minimal complete definition")
	ErrConflict        = errors.New("hana: conflicting declarations")
	ErrDerivationCycle = errors.New("hana: derivation cycle")
	ErrEmptyStructure  = errors.New("hana: operation requires a non-empty structure")
	ErrSealed          = errors.New("hana: registry is sealed")
)

// ErrorKind classifies a resolution diagnostic.
type ErrorKind uint8

const (
	// KindUnresolved: no candidate and no applicable fallback.
	KindUnresolved ErrorKind = iota + 1
	// KindAmbiguous: two equally specific candidates apply.
	KindAmbiguous
	// KindIncompleteMCD: a model supplies none of the minimal sets.
	KindIncompleteMCD
	// KindConflict: two declarations for one (operation, tag) key.
	KindConflict
	// KindDerivationCycle: synthesized candidates depend on each other.
	KindDerivationCycle
	// KindEmptyStructure: a seedless fold or accessor on an empty structure.
	KindEmptyStructure
)

var errorKindSentinels = [...]error{
	KindUnresolved:      ErrUnresolved,
	KindAmbiguous:       ErrAmbiguous,
	KindIncompleteMCD:   ErrIncompleteMCD,
	KindConflict:        ErrConflict,
	KindDerivationCycle: ErrDerivationCycle,
	KindEmptyStructure:  ErrEmptyStructure,
}

// Error is a resolution diagnostic. It names the operation, the tags and the
// candidates involved so that the failure can be traced to declarations.
type Error struct {
	Kind       ErrorKind
	Operation  string
	Tags       []Tag
	Candidates []string
	Structure  string
	// Missing lists the alternative minimal sets of an incomplete model.
	Missing [][]string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(errorKindSentinels[e.Kind].Error())
	if e.Structure != "" {
		b.WriteString(": ")
		b.WriteString(e.Structure)
	}
	if e.Operation != "" {
		b.WriteString(": ")
		b.WriteString(e.Operation)
	}
	if len(e.Tags) > 0 {
		b.WriteString(" [")
		for i, t := range e.Tags {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(t.String())
		}
		b.WriteString("]")
	}
	if len(e.Candidates) > 0 {
		b.WriteString(": candidates ")
		b.WriteString(strings.Join(e.Candidates, " and "))
	}
	if len(e.Missing) > 0 {
		b.WriteString(": missing one of: {")
		for i, set := range e.Missing {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(strings.Join(set, ", "))
		}
		b.WriteString("}")
	}
	return b.String()
}

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	return target == errorKindSentinels[e.Kind]
}

// emptyStructure panics with a KindEmptyStructure diagnostic.
// Extracted as a noinline function so that callers remain inlineable.
//
//go:noinline
func emptyStructure(op string, tag Tag) {
	panic(&Error{Kind: KindEmptyStructure, Operation: op, Tags: []Tag{tag}})
}
