// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Rule records which precedence level produced a resolution.
type Rule uint8

const (
	// RuleExact: a candidate declared for exactly this tag.
	RuleExact Rule = iota + 1
	// RuleSynthesized: a default candidate derived from a minimal complete definition.
	RuleSynthesized
	// RulePair: a candidate declared for exactly this pair of tags.
	RulePair
	// RuleConditional: a gated candidate whose condition held.
	RuleConditional
	// RuleFallback: the universal fallback of the operation.
	RuleFallback
	// RuleImplicit: no candidate at all; invoking the operation fails.
	RuleImplicit
)

var ruleNames = [...]string{
	RuleExact:       "exact",
	RuleSynthesized: "synthesized",
	RulePair:        "pair",
	RuleConditional: "conditional",
	RuleFallback:    "fallback",
	RuleImplicit:    "implicit",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) && ruleNames[r] != "" {
		return ruleNames[r]
	}
	return "invalid"
}

// candidate is one implementation of an operation.
type candidate struct {
	op          string
	name        string
	rule        Rule
	marker      Marker
	tag         Tag
	right       Tag
	cond        Condition
	impl        any
	structure   string
	alternative string
	uses        []string
	seq         int
	embedding   bool
}

// DeclOption configures a declared candidate.
type DeclOption func(*candidate)

// Named sets the identity used for the candidate in diagnostics.
func Named(name string) DeclOption {
	return func(c *candidate) { c.name = name }
}

type exactKey struct {
	op  string
	tag Tag
}

type pairKey struct {
	op          string
	left, right Tag
}

type modelDecl struct {
	structure *Structure
	tag       Tag
}

// Registry collects tag, candidate and model declarations.
// Declarations are made during package initialization; [Registry.Seal]
// verifies them and produces the immutable dispatch [Table]. Each
// (operation, tag) key accepts a single declaration.
type Registry struct {
	mu        sync.Mutex
	sealed    bool
	logger    *zap.Logger
	cacheSize int
	seq       int

	ops         map[string]*opInfo
	exact       map[exactKey]*candidate
	pairs       map[pairKey]*candidate
	conditional map[string][]*candidate
	fallback    map[string]*candidate
	models      []modelDecl
	tags        map[Tag]struct{}
	tagOrder    []Tag
	diags       []error

	// table is set once sealed; candidates that call back into dispatch
	// capture the registry and reach the table through it.
	table   *Table
	sealErr error
}

// Option configures a [Registry].
type Option func(*Registry)

// WithLogger sets the logger used while sealing and resolving.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithCacheSize bounds the number of lazily resolved dispatch keys kept by
// the sealed table.
func WithCacheSize(n int) Option {
	return func(r *Registry) { r.cacheSize = n }
}

// DefaultCacheSize is the lazy resolution cache bound used when none is set.
const DefaultCacheSize = 1024

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger:      zap.NewNop(),
		cacheSize:   DefaultCacheSize,
		ops:         make(map[string]*opInfo),
		exact:       make(map[exactKey]*candidate),
		pairs:       make(map[pairKey]*candidate),
		conditional: make(map[string][]*candidate),
		fallback:    make(map[string]*candidate),
		tags:        make(map[Tag]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Configure applies opts to a registry that has not been sealed yet.
func (r *Registry) Configure(opts ...Option) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mustBeOpen("configure")
	for _, opt := range opts {
		opt(r)
	}
}

// Declare declares impl as the candidate of op for exactly tag.
func Declare[F any](r *Registry, op Operation[F], tag Tag, impl F, opts ...DeclOption) {
	c := &candidate{op: op.key(), rule: RuleExact, tag: tag, impl: impl}
	r.add(op.info(), c, opts, func() {
		k := exactKey{op: c.op, tag: tag}
		if prev, ok := r.exact[k]; ok {
			r.conflict(c.op, []Tag{tag}, prev, c)
			return
		}
		r.exact[k] = c
		r.noteTag(tag)
	})
}

// DeclareWhen declares impl as a candidate of op for every tag whose
// condition holds.
func DeclareWhen[F any](r *Registry, op Operation[F], cond Condition, impl F, opts ...DeclOption) {
	if cond.Rank() == RankFallback {
		DeclareFallback(r, op, impl, opts...)
		return
	}
	c := &candidate{op: op.key(), rule: RuleConditional, cond: cond, impl: impl}
	r.add(op.info(), c, opts, func() {
		r.conditional[c.op] = append(r.conditional[c.op], c)
	})
}

// DeclareFallback declares impl as the universal fallback of op.
func DeclareFallback[F any](r *Registry, op Operation[F], impl F, opts ...DeclOption) {
	c := &candidate{op: op.key(), rule: RuleFallback, cond: Always(), impl: impl}
	r.add(op.info(), c, opts, func() {
		if prev, ok := r.fallback[c.op]; ok {
			r.conflict(c.op, nil, prev, c)
			return
		}
		r.fallback[c.op] = c
	})
}

// DeclarePair declares impl as the candidate of the binary op for exactly
// the ordered pair (left, right).
func DeclarePair[F any](r *Registry, op Operation[F], left, right Tag, impl F, opts ...DeclOption) {
	c := &candidate{op: op.key(), rule: RulePair, tag: left, right: right, impl: impl}
	info := op.info()
	r.add(info, c, opts, func() {
		if !info.binary {
			r.diags = append(r.diags, fmt.Errorf("hana: pair candidate %s for unary operation %s", c.name, c.op))
			return
		}
		k := pairKey{op: c.op, left: left, right: right}
		if prev, ok := r.pairs[k]; ok {
			r.conflict(c.op, []Tag{left, right}, prev, c)
			return
		}
		r.pairs[k] = c
		r.noteTag(left)
		r.noteTag(right)
	})
}

// Model declares that tag models s and every structure s requires.
func Model(r *Registry, s *Structure, tag Tag) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mustBeOpen("model " + s.Name)
	r.models = append(r.models, modelDecl{structure: s, tag: tag})
	r.noteTag(tag)
}

func (r *Registry) add(info *opInfo, c *candidate, opts []DeclOption, insert func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mustBeOpen("declare " + c.op)
	c.marker = Custom
	for _, opt := range opts {
		opt(c)
	}
	if c.name == "" {
		c.name = defaultCandidateName(c)
	}
	r.seq++
	c.seq = r.seq
	if prev, ok := r.ops[info.name]; ok {
		if prev.fn != info.fn || prev.binary != info.binary {
			r.diags = append(r.diags, &Error{
				Kind:       KindConflict,
				Operation:  info.name,
				Candidates: []string{prev.fn.String(), info.fn.String()},
			})
			return
		}
	} else {
		r.ops[info.name] = info
	}
	insert()
}

// sealedTable returns the table produced by Seal. Calling it from a candidate
// body is safe because candidates only run after sealing.
func (r *Registry) sealedTable() *Table {
	return r.table
}

func (r *Registry) mustBeOpen(what string) {
	if r.sealed {
		panic(fmt.Errorf("%w: %s", ErrSealed, what))
	}
}

func (r *Registry) conflict(op string, tags []Tag, prev, next *candidate) {
	r.diags = append(r.diags, &Error{
		Kind:       KindConflict,
		Operation:  op,
		Tags:       tags,
		Candidates: []string{prev.name, next.name},
	})
}

func (r *Registry) noteTag(t Tag) {
	if _, ok := r.tags[t]; ok {
		return
	}
	r.tags[t] = struct{}{}
	r.tagOrder = append(r.tagOrder, t)
}

func defaultCandidateName(c *candidate) string {
	switch c.rule {
	case RuleExact:
		return c.op + "[" + c.tag.String() + "]"
	case RulePair:
		return c.op + "[" + c.tag.String() + ", " + c.right.String() + "]"
	default:
		return c.op + "[" + c.cond.String() + "]"
	}
}
