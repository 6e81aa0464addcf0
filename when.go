// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Condition gates a candidate on a property of the dispatched tag.
//
// Eval returns Right(true) when the candidate applies, Right(false) when it
// does not, and Left(err) when the condition itself cannot be evaluated for
// the tag. Left is treated as "does not apply" at the gate boundary only.
//
// Rank orders satisfied candidates: a higher rank is more specific.
type Condition interface {
	Eval(tag Tag) Either[error, bool]
	Rank() int
	String() string
}

// Rank of the universal fallback and of a boolean gate. Validity gates rank
// above boolean gates by the weight of their requirements.
const (
	RankFallback = 0
	RankBool     = 1
)

type always struct{}

// Always returns the unconditional gate of the universal fallback.
func Always() Condition { return always{} }

func (always) Eval(Tag) Either[error, bool] { return Right[error](true) }
func (always) Rank() int                    { return RankFallback }
func (always) String() string               { return "always" }

type whenPred struct {
	name string
	pred func(Tag) bool
}

// When returns a boolean gate that applies when pred reports true.
// A panic inside pred is a malformed condition and makes the gate closed.
func When(name string, pred func(Tag) bool) Condition {
	return whenPred{name: name, pred: pred}
}

func (w whenPred) Eval(tag Tag) Either[error, bool] {
	return tryEval(func() Either[error, bool] {
		return MapEither(Right[error](tag), w.pred)
	})
}

func (w whenPred) Rank() int      { return RankBool }
func (w whenPred) String() string { return "when(" + w.name + ")" }

// Requirement is a structural property of a Go type, the analogue of a type
// expression that must be well-formed. Check returns an error when the
// property cannot even be asked of t, for example a field of a non-struct.
type Requirement interface {
	Check(t reflect.Type) (bool, error)
	// Weight counts the structural constraints the requirement encodes.
	Weight() int
	String() string
}

type whenValid struct {
	reqs []Requirement
}

// WhenValid returns a validity gate that applies when every requirement holds
// for the tag's type. It ranks above [When] and grows with the total weight
// of its requirements.
func WhenValid(reqs ...Requirement) Condition {
	return whenValid{reqs: reqs}
}

func (w whenValid) Eval(tag Tag) Either[error, bool] {
	return tryEval(func() Either[error, bool] {
		return checkAll(w.reqs, tag.rt)
	})
}

func (w whenValid) Rank() int {
	return RankBool + totalWeight(w.reqs)
}

func (w whenValid) String() string {
	return "when_valid(" + joinRequirements(w.reqs) + ")"
}

func checkAll(reqs []Requirement, t reflect.Type) Either[error, bool] {
	if t == nil {
		return Left[error, bool](errNilType)
	}
	out := Right[error](true)
	for _, r := range reqs {
		out = FlatMapEither(out, func(ok bool) Either[error, bool] {
			if !ok {
				return Right[error](false)
			}
			return check(r, t)
		})
	}
	return out
}

func check(r Requirement, t reflect.Type) Either[error, bool] {
	ok, err := r.Check(t)
	if err != nil {
		return Left[error, bool](fmt.Errorf("%s: %w", r, err))
	}
	return Right[error](ok)
}

func totalWeight(reqs []Requirement) int {
	n := 0
	for _, r := range reqs {
		n += r.Weight()
	}
	return n
}

func joinRequirements(reqs []Requirement) string {
	parts := make([]string, len(reqs))
	for i, r := range reqs {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

var (
	errNilType   = errors.New("untyped nil has no structure")
	errNotStruct = errors.New("type is not a struct")
	errNotIface  = errors.New("requirement type is not an interface")
)

// gateOpen evaluates cond at the gate boundary. An evaluation error closes
// the gate and is returned alongside for diagnostics.
func gateOpen(cond Condition, tag Tag) (open bool, err error) {
	err = MatchEither(cond.Eval(tag),
		func(err error) error { return err },
		func(ok bool) error {
			open = ok
			return nil
		},
	)
	return open, err
}

type hasMethod string

// HasMethod requires a method named name in the type's method set.
func HasMethod(name string) Requirement { return hasMethod(name) }

func (h hasMethod) Check(t reflect.Type) (bool, error) {
	_, ok := t.MethodByName(string(h))
	return ok, nil
}

func (h hasMethod) Weight() int    { return 1 }
func (h hasMethod) String() string { return "method " + string(h) }

type hasField string

// HasField requires a struct field named name. On non-struct types the
// requirement is malformed.
func HasField(name string) Requirement { return hasField(name) }

func (h hasField) Check(t reflect.Type) (bool, error) {
	if t.Kind() != reflect.Struct {
		return false, errNotStruct
	}
	_, ok := t.FieldByName(string(h))
	return ok, nil
}

func (h hasField) Weight() int    { return 1 }
func (h hasField) String() string { return "field " + string(h) }

type implements struct {
	iface reflect.Type
}

// Implements requires the type to implement the interface I.
// Naming a non-interface I is a malformed requirement.
func Implements[I any]() Requirement {
	return implements{iface: reflect.TypeFor[I]()}
}

func (i implements) Check(t reflect.Type) (bool, error) {
	if i.iface.Kind() != reflect.Interface {
		return false, errNotIface
	}
	return t.Implements(i.iface), nil
}

func (i implements) Weight() int    { return 1 }
func (i implements) String() string { return "implements " + i.iface.String() }

type kindOf []reflect.Kind

// KindOf requires the type's kind to be one of kinds.
func KindOf(kinds ...reflect.Kind) Requirement { return kindOf(kinds) }

func (k kindOf) Check(t reflect.Type) (bool, error) {
	for _, kind := range k {
		if t.Kind() == kind {
			return true, nil
		}
	}
	return false, nil
}

func (k kindOf) Weight() int { return 1 }

func (k kindOf) String() string {
	parts := make([]string, len(k))
	for i, kind := range k {
		parts[i] = kind.String()
	}
	return "kind " + strings.Join(parts, "|")
}

type comparableType struct{}

// ComparableType requires values of the type to support ==.
func ComparableType() Requirement { return comparableType{} }

func (comparableType) Check(t reflect.Type) (bool, error) { return t.Comparable(), nil }
func (comparableType) Weight() int                        { return 1 }
func (comparableType) String() string                     { return "comparable" }

type allOf []Requirement

// AllOf nests requirements. Its weight is one more than the sum of its
// children, so nested requirements rank above the same requirements listed
// flat in a sibling gate.
func AllOf(reqs ...Requirement) Requirement { return allOf(reqs) }

func (a allOf) Check(t reflect.Type) (bool, error) {
	for _, r := range a {
		ok, err := r.Check(t)
		if err != nil || !ok {
			return ok, err
		}
	}
	return true, nil
}

func (a allOf) Weight() int    { return 1 + totalWeight(a) }
func (a allOf) String() string { return "all(" + joinRequirements(a) + ")" }
