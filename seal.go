// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hana

import (
	"errors"
	"maps"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Seal verifies every declaration and returns the dispatch table.
//
// Sealing reports, all at once: conflicting declarations, incomplete minimal
// complete definitions, derivation cycles, and ambiguous resolutions for the
// tags named by declarations. Unresolved operations are not errors until
// they are invoked. A registry can be sealed once; later declarations panic.
func (r *Registry) Seal() (*Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return nil, ErrSealed
	}

	size := r.cacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[dispatchKey, outcome](size)
	if err != nil {
		return nil, err
	}
	r.sealed = true

	t := &Table{
		logger:      r.logger,
		ops:         maps.Clone(r.ops),
		exact:       maps.Clone(r.exact),
		pairs:       maps.Clone(r.pairs),
		conditional: maps.Clone(r.conditional),
		fallback:    maps.Clone(r.fallback),
		tags:        slices.Clone(r.tagOrder),
		models:      make(map[Tag][]ModelChoice),
		resolved:    make(map[dispatchKey]outcome),
		lazy:        cache,
	}
	r.table = t

	var errs error
	for _, d := range r.diags {
		errs = multierr.Append(errs, d)
	}

	models := expandModels(r.models)
	declared := make(map[modelKey]bool, len(models))
	for _, m := range models {
		declared[m] = true
	}
	for _, m := range models {
		errs = multierr.Append(errs, t.resolveModel(m.structure, m.tag, declared, &r.seq))
	}
	for _, err := range t.checkCycles() {
		errs = multierr.Append(errs, err)
	}

	for _, op := range t.Operations() {
		for _, tag := range t.tags {
			res, err := t.selectCandidate(op, tag)
			t.resolved[dispatchKey{op: op, left: tag}] = outcome{res: res, err: err}
			if errors.Is(err, ErrAmbiguous) {
				errs = multierr.Append(errs, err)
			}
		}
	}
	for k := range t.pairs {
		res, err := t.resolvePair(k.op, k.left, k.right)
		t.resolved[dispatchKey{op: k.op, pair: true, left: k.left, right: k.right}] = outcome{res: res, err: err}
	}

	r.sealErr = errs
	if errs != nil {
		r.logger.Error("seal failed", zap.Error(errs))
		return nil, errs
	}
	r.logger.Debug("sealed",
		zap.Int("operations", len(t.ops)),
		zap.Int("tags", len(t.tags)),
		zap.Int("resolutions", len(t.resolved)),
	)
	return t, nil
}

// sealedResult returns the outcome of the earlier call to Seal.
func (r *Registry) sealedResult() (*Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.sealed {
		return nil, nil
	}
	if r.sealErr != nil {
		return nil, r.sealErr
	}
	return r.table, nil
}

// MustSeal is like Seal but panics on failure. It is meant for package
// initialization, where a failed seal must stop the program before any
// operation runs.
func (r *Registry) MustSeal() *Table {
	t, err := r.Seal()
	if err != nil {
		panic(err)
	}
	return t
}
