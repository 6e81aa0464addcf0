// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hana provides tag dispatch, default candidates and minimal complete
// definitions for generic operations over heterogeneous data in Go.
//
// Every value has a [Tag], the identity of its data type. An [Operation] is a
// named polymorphic function whose implementations, called candidates, are
// declared per tag in a [Registry]. Sealing the registry resolves every
// operation for every declared tag once, reports all inconsistencies at
// once, and produces an immutable [Table]. After sealing, an operation call
// is a map lookup followed by a direct call.
//
// # Design Philosophy
//
// hana provides:
//   - Resolution decided before any operation runs, never guessed at a call site
//   - Ambiguity rejected with a diagnostic naming every competing candidate
//   - Defaults marked as data, so "did this type customize op?" is a query
//
// # Tags
//
//   - [TagOf]: The identity tag of a Go type
//   - [Tagged]: Explicit opt-in; several Go types may share one tag
//   - [Datatype]: The tag of a value
//
// # Candidates
//
// Candidates are declared during package initialization:
//
//   - [Declare]: For exactly one tag
//   - [DeclareWhen]: For every tag whose [Condition] holds
//   - [DeclarePair]: For exactly one pair of tags of a binary operation
//   - [DeclareFallback]: For every tag, when nothing more specific applies
//
// Precedence, most specific first: exact or synthesized candidate, the open
// conditional candidate of highest rank, the fallback, and finally the
// implicit "not implemented" candidate. Invoking an operation that resolves
// to the implicit candidate panics with [ErrUnresolved].
//
// Conditions:
//
//   - [Always]: Rank 0, used by fallbacks
//   - [When]: A boolean predicate on the tag, rank 1
//   - [WhenValid]: Structural requirements of the tag's type, ranked by
//     the weight of the requirements
//
// A condition that cannot be evaluated for a tag, such as [HasField] on a
// non-struct type or a panicking predicate, is closed for that tag. Panics
// raised by candidate bodies always propagate.
//
// # Default Candidates
//
// [AsDefault] marks a candidate as a replaceable default. Candidates
// synthesized from a minimal complete definition are defaults, and so is the
// implicit one. [IsDefault] reports whether a tag customized an operation:
//
//	hana.IsDefault(t, hana.OpShow, hana.TagOf[int]())             // true
//	hana.IsDefault(t, hana.OpShow, hana.DatatypeOf[hana.Tuple]()) // false
//
// # Minimal Complete Definitions
//
// A [Structure] groups operations defined in terms of each other. [Model]
// declares that a tag models a structure. When sealing, the first
// [Alternative] whose operations the tag supplies is selected, and every
// other operation of the structure is synthesized. A tag supplying none of
// the alternatives fails with [ErrIncompleteMCD]:
//
//   - [Foldable]: folds {foldl, foldr} | unpack {unpack} | iterable {head, tail, is_empty}
//   - [Iterable]: {head, tail, is_empty}
//   - [MonadPlus]: concat {concat, empty} | prepend {prepend, empty}
//   - [Sequence]: Foldable, Iterable and MonadPlus together
//   - [Monoid], [Ring]: {zero, plus}, {one, mult}
//
// # Built-in Data Types
//
//   - [Tuple]: Immutable heterogeneous sequence
//   - [Maybe]: Zero or one element
//   - [IntRange]: Half-open integer range, never materialized
//   - Slices adapted with [DeclareSlice]
//
// # Conversions
//
// [To] converts a value to another data type. Conversions declared with
// [DeclareConversion] win; numbers convert to numbers, and any Foldable
// converts to any Sequence:
//
//	hana.To(hana.DatatypeOf[hana.Tuple](), []int{1, 2}) // (1, 2)
//
// # Process-wide Table
//
// [Global] is the registry packages declare into from init functions. [Std]
// seals it on first use; the package-level functions such as [Foldl],
// [Equal] and [Show] dispatch through it.
//
// # Continuations
//
// [Unpack] passes the elements of a Foldable to a continuation ([Cont]).
// Recursive derivations run on the [Expr] trampoline ([RunPure]) so they do
// not grow the Go stack with the length of the data.
package hana
