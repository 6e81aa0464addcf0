// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import (
	"errors"
	"slices"

	"go.uber.org/zap"
)

// Structure is an algebraic structure whose operations are defined in terms
// of each other. A tag that models the structure supplies one of its minimal
// complete definitions; the remaining operations are synthesized.
type Structure struct {
	Name string

	// Requires lists structures implied by a model of this one.
	Requires []*Structure

	// Alternatives are the minimal complete definitions, in priority order.
	Alternatives []Alternative

	// Derived operations are defined over the structure's core operations
	// whichever alternative is selected.
	Derived []Derivation
}

// Alternative is one minimal complete definition of a structure.
type Alternative struct {
	Name string

	// Ops must all be supplied as custom candidates for the alternative to
	// be selected.
	Ops []string

	// Needs lists structures the tag must also model; derivations of this
	// alternative call their operations.
	Needs []*Structure

	// Derive synthesizes the structure's core operations outside Ops.
	Derive []Derivation
}

// Derivation synthesizes one operation for a tag.
type Derivation struct {
	Op    string
	Uses  []string
	info  *opInfo
	build func(t *Table, tag Tag) any
}

// Derive returns the derivation of op. build receives the table being sealed
// and the tag of the model; the returned implementation must only call the
// operations named in uses for that tag.
func Derive[F any](op Operation[F], uses []string, build func(t *Table, tag Tag) F) Derivation {
	return Derivation{
		Op:   op.key(),
		Uses: uses,
		info: op.info(),
		build: func(t *Table, tag Tag) any {
			return build(t, tag)
		},
	}
}

// Ops returns the names of all operations of the minimal complete
// definitions, deduplicated in declaration order.
func (s *Structure) Ops() []string {
	var out []string
	for _, alt := range s.Alternatives {
		for _, op := range alt.Ops {
			if !slices.Contains(out, op) {
				out = append(out, op)
			}
		}
	}
	return out
}

// closure appends s after everything it requires, once.
func (s *Structure) closure(out []*Structure) []*Structure {
	for _, req := range s.Requires {
		out = req.closure(out)
	}
	if !slices.Contains(out, s) {
		out = append(out, s)
	}
	return out
}

type modelKey struct {
	structure *Structure
	tag       Tag
}

// expandModels returns the declared models plus everything they require,
// dependencies first, each (structure, tag) once.
func expandModels(decls []modelDecl) []modelKey {
	var out []modelKey
	seen := make(map[modelKey]bool)
	for _, d := range decls {
		for _, s := range d.structure.closure(nil) {
			k := modelKey{structure: s, tag: d.tag}
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// supplied reports whether op resolves to a custom candidate for tag.
// An ambiguous resolution is returned as is: it supplies nothing and must
// not be shadowed by a synthesized candidate.
func (t *Table) supplied(op string, tag Tag) (bool, error) {
	res, err := t.selectCandidate(op, tag)
	if errors.Is(err, ErrAmbiguous) {
		return false, err
	}
	return err == nil && res.Marker == Custom, nil
}

// resolveModel selects the first fully supplied alternative of s for tag and
// synthesizes default candidates for every operation the tag left out.
func (t *Table) resolveModel(s *Structure, tag Tag, declared map[modelKey]bool, seq *int) error {
	var chosen *Alternative
	for i := range s.Alternatives {
		alt := &s.Alternatives[i]
		if !t.altUsable(alt, tag, declared) {
			continue
		}
		covered := true
		for _, op := range alt.Ops {
			if ok, _ := t.supplied(op, tag); !ok {
				covered = false
				break
			}
		}
		if covered {
			chosen = alt
			break
		}
	}
	if chosen == nil {
		missing := make([][]string, len(s.Alternatives))
		for i, alt := range s.Alternatives {
			missing[i] = slices.Clone(alt.Ops)
		}
		return &Error{Kind: KindIncompleteMCD, Structure: s.Name, Tags: []Tag{tag}, Missing: missing}
	}

	choice := ModelChoice{Structure: s.Name, Alternative: chosen.Name}
	for _, group := range [][]Derivation{chosen.Derive, s.Derived} {
		for _, d := range group {
			if _, ok := t.ops[d.Op]; !ok {
				t.ops[d.Op] = d.info
			}
			// An ambiguous key is left unsynthesized; Seal reports it
			// with the other resolutions of declared tags.
			if ok, err := t.supplied(d.Op, tag); ok || err != nil {
				continue
			}
			k := exactKey{op: d.Op, tag: tag}
			if _, ok := t.exact[k]; ok {
				continue
			}
			*seq++
			t.exact[k] = &candidate{
				op:          d.Op,
				name:        s.Name + "." + chosen.Name + "/" + d.Op,
				rule:        RuleSynthesized,
				marker:      Default,
				tag:         tag,
				impl:        d.build(t, tag),
				structure:   s.Name,
				alternative: chosen.Name,
				uses:        d.Uses,
				seq:         *seq,
			}
			choice.Synthesized = append(choice.Synthesized, d.Op)
			t.logger.Debug("synthesized candidate",
				zap.String("op", d.Op),
				zap.Stringer("tag", tag),
				zap.String("structure", s.Name),
				zap.String("alternative", chosen.Name),
				zap.Strings("uses", d.Uses),
			)
		}
	}
	t.models[tag] = append(t.models[tag], choice)
	return nil
}

func (t *Table) altUsable(alt *Alternative, tag Tag, declared map[modelKey]bool) bool {
	for _, need := range alt.Needs {
		if !declared[modelKey{structure: need, tag: tag}] {
			return false
		}
	}
	return true
}

// checkCycles walks the use graph of synthesized candidates. Every derivation
// is fixed before the walk, so a cycle here is a defect in the structure
// definitions rather than something resolution could recover from.
func (t *Table) checkCycles() []error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[exactKey]int)
	var errs []error
	var visit func(k exactKey, path []string) bool
	visit = func(k exactKey, path []string) bool {
		c, ok := t.exact[k]
		if !ok || c.rule != RuleSynthesized {
			return false
		}
		switch state[k] {
		case visiting:
			errs = append(errs, &Error{
				Kind:       KindDerivationCycle,
				Operation:  k.op,
				Tags:       []Tag{k.tag},
				Candidates: append(slices.Clone(path), c.name),
			})
			return true
		case done:
			return false
		}
		state[k] = visiting
		for _, use := range c.uses {
			if visit(exactKey{op: use, tag: k.tag}, append(slices.Clone(path), c.name)) {
				break
			}
		}
		state[k] = done
		return false
	}
	keys := make([]exactKey, 0, len(t.exact))
	for k, c := range t.exact {
		if c.rule == RuleSynthesized {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b exactKey) int {
		return t.exact[a].seq - t.exact[b].seq
	})
	for _, k := range keys {
		visit(k, nil)
	}
	return errs
}
