// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import (
	"cmp"
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Resolution describes the candidate selected for a dispatch key.
type Resolution struct {
	Operation   string
	Tags        []Tag
	Candidate   string
	Rule        Rule
	Marker      Marker
	Structure   string
	Alternative string

	impl any
	seq  int
}

// ModelChoice records the minimal complete definition a tag uses for a
// structure.
type ModelChoice struct {
	Structure   string
	Alternative string
	Synthesized []string
}

type dispatchKey struct {
	op          string
	pair        bool
	left, right Tag
}

func (k dispatchKey) String() string {
	if k.pair {
		return k.op + "[" + k.left.String() + ", " + k.right.String() + "]"
	}
	return k.op + "[" + k.left.String() + "]"
}

// flight names k for the singleflight group. Type names are not unique
// across packages or function scopes, so the tags are keyed by identity.
func (k dispatchKey) flight() string {
	return fmt.Sprintf("%s/%t/%p/%p", k.op, k.pair, k.left.rt, k.right.rt)
}

type outcome struct {
	res Resolution
	err error
}

// Table is a sealed dispatch table. It is immutable and safe for concurrent
// use. Keys for tags named by a declaration are resolved when the table is
// sealed; any other tag is resolved on first use against gated candidates and
// fallbacks, then memoized.
type Table struct {
	logger *zap.Logger

	ops         map[string]*opInfo
	exact       map[exactKey]*candidate
	pairs       map[pairKey]*candidate
	conditional map[string][]*candidate
	fallback    map[string]*candidate
	tags        []Tag

	models   map[Tag][]ModelChoice
	resolved map[dispatchKey]outcome

	lazy  *lru.Cache[dispatchKey, outcome]
	group singleflight.Group
}

// Lookup resolves op for tag and returns its implementation.
func Lookup[F any](t *Table, op Operation[F], tag Tag) (F, Resolution, error) {
	res, err := t.resolve(op.key(), tag)
	if err != nil {
		var zero F
		return zero, res, err
	}
	return res.impl.(F), res, nil
}

// LookupPair resolves the binary op for the pair (left, right).
func LookupPair[F any](t *Table, op Operation[F], left, right Tag) (F, Resolution, error) {
	res, err := t.resolvePair(op.key(), left, right)
	if err != nil {
		var zero F
		return zero, res, err
	}
	return res.impl.(F), res, nil
}

// dispatch resolves op for the tag of x and panics with the diagnostic when
// no single candidate applies.
func dispatch[F any](t *Table, op Operation[F], x any) F {
	return dispatchTag(t, op, Datatype(x))
}

func dispatchTag[F any](t *Table, op Operation[F], tag Tag) F {
	f, _, err := Lookup(t, op, tag)
	if err != nil {
		panic(err)
	}
	return f
}

func dispatchPair[F any](t *Table, op Operation[F], x, y any) F {
	f, _, err := LookupPair(t, op, Datatype(x), Datatype(y))
	if err != nil {
		panic(err)
	}
	return f
}

func (t *Table) resolve(op string, tag Tag) (Resolution, error) {
	return t.memo(dispatchKey{op: op, left: tag}, func() outcome {
		res, err := t.selectCandidate(op, tag)
		return outcome{res: res, err: err}
	})
}

func (t *Table) resolvePair(op string, left, right Tag) (Resolution, error) {
	if c, ok := t.pairs[pairKey{op: op, left: left, right: right}]; ok {
		return c.resolution(left), nil
	}
	if left == right {
		res, err := t.resolve(op, left)
		if err == nil {
			res.Tags = []Tag{left, right}
		}
		return res, err
	}
	return t.memo(dispatchKey{op: op, pair: true, left: left, right: right}, func() outcome {
		res, err := t.selectPair(op, left, right)
		return outcome{res: res, err: err}
	})
}

// memo returns the eager resolution of k, or resolves it once and caches it.
func (t *Table) memo(k dispatchKey, compute func() outcome) (Resolution, error) {
	if o, ok := t.resolved[k]; ok {
		return o.res, o.err
	}
	if o, ok := t.lazy.Get(k); ok {
		return o.res, o.err
	}
	v, _, _ := t.group.Do(k.flight(), func() (any, error) {
		o := compute()
		t.lazy.Add(k, o)
		t.logger.Debug("lazy resolution",
			zap.Stringer("key", k),
			zap.String("candidate", o.res.Candidate),
			zap.Error(o.err),
		)
		return o, nil
	})
	o := v.(outcome)
	return o.res, o.err
}

// selectCandidate applies the precedence rules for a single tag:
// exact or synthesized, then the most specific open gate, then the fallback.
func (t *Table) selectCandidate(op string, tag Tag) (Resolution, error) {
	if c, ok := t.exact[exactKey{op: op, tag: tag}]; ok {
		return c.resolution(tag), nil
	}

	var best []*candidate
	bestRank := -1
	for _, c := range t.conditional[op] {
		open, err := gateOpen(c.cond, tag)
		if err != nil {
			t.logger.Debug("gate suppressed",
				zap.String("op", op),
				zap.Stringer("tag", tag),
				zap.String("candidate", c.name),
				zap.Error(err),
			)
			continue
		}
		if !open {
			continue
		}
		switch rank := c.cond.Rank(); {
		case rank > bestRank:
			best, bestRank = []*candidate{c}, rank
		case rank == bestRank:
			best = append(best, c)
		}
	}
	if len(best) > 0 {
		return pickRanked(op, tag, best)
	}

	if c, ok := t.fallback[op]; ok {
		return c.resolution(tag), nil
	}
	res := Resolution{
		Operation: op,
		Tags:      []Tag{tag},
		Candidate: op + "[not implemented]",
		Rule:      RuleImplicit,
		Marker:    Default,
	}
	return res, &Error{Kind: KindUnresolved, Operation: op, Tags: []Tag{tag}}
}

// pickRanked selects among equally ranked open candidates. A single custom
// candidate wins over defaults; otherwise more than one is ambiguous.
func pickRanked(op string, tag Tag, best []*candidate) (Resolution, error) {
	var custom, defaults []*candidate
	for _, c := range best {
		if c.marker == Custom {
			custom = append(custom, c)
		} else {
			defaults = append(defaults, c)
		}
	}
	pool := custom
	if len(pool) == 0 {
		pool = defaults
	}
	if len(pool) == 1 {
		return pool[0].resolution(tag), nil
	}
	names := make([]string, len(pool))
	for i, c := range pool {
		names[i] = c.name
	}
	return Resolution{Operation: op, Tags: []Tag{tag}}, &Error{
		Kind:       KindAmbiguous,
		Operation:  op,
		Tags:       []Tag{tag},
		Candidates: names,
	}
}

// selectPair resolves a binary operation on two distinct tags.
func (t *Table) selectPair(op string, left, right Tag) (Resolution, error) {
	tags := []Tag{left, right}
	l, lerr := t.resolve(op, left)
	r, rerr := t.resolve(op, right)
	if lerr != nil || rerr != nil {
		for _, err := range []error{lerr, rerr} {
			if e, ok := err.(*Error); ok && e.Kind == KindAmbiguous {
				return Resolution{Operation: op, Tags: tags}, err
			}
		}
		return Resolution{Operation: op, Tags: tags}, &Error{Kind: KindUnresolved, Operation: op, Tags: tags}
	}
	if l.seq != r.seq {
		return Resolution{Operation: op, Tags: tags}, &Error{
			Kind:       KindAmbiguous,
			Operation:  op,
			Tags:       tags,
			Candidates: []string{l.Candidate, r.Candidate},
		}
	}
	l.Tags = tags
	return l, nil
}

func (c *candidate) resolution(tag Tag) Resolution {
	tags := []Tag{tag}
	if c.rule == RulePair {
		tags = []Tag{c.tag, c.right}
	}
	return Resolution{
		Operation:   c.op,
		Tags:        tags,
		Candidate:   c.name,
		Rule:        c.rule,
		Marker:      c.marker,
		Structure:   c.structure,
		Alternative: c.alternative,
		impl:        c.impl,
		seq:         c.seq,
	}
}

// Entry is a sealed resolution together with its diagnostic, if any.
type Entry struct {
	Resolution
	Err error
}

// Entries returns the resolutions computed when the table was sealed,
// ordered by operation then tag.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.resolved))
	for k, o := range t.resolved {
		if k.pair {
			continue
		}
		out = append(out, Entry{Resolution: o.res, Err: o.err})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(a.Operation, b.Operation); c != 0 {
			return c
		}
		return cmp.Compare(a.Tags[0].String(), b.Tags[0].String())
	})
	return out
}

// Models returns the structures tag models with the minimal complete
// definition chosen for each.
func (t *Table) Models(tag Tag) []ModelChoice {
	return slices.Clone(t.models[tag])
}

// Alternative returns the name of the minimal complete definition tag uses
// for the structure named structure.
func (t *Table) Alternative(structure string, tag Tag) (string, bool) {
	for _, m := range t.models[tag] {
		if m.Structure == structure {
			return m.Alternative, true
		}
	}
	return "", false
}

// Tags returns the tags named by declarations, in declaration order.
func (t *Table) Tags() []Tag {
	return slices.Clone(t.tags)
}

// Operations returns the names of all declared operations, sorted.
func (t *Table) Operations() []string {
	out := make([]string, 0, len(t.ops))
	for name := range t.ops {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
