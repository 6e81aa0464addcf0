// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vet

import (
	"bytes"
	"testing"

	"code.hybscloud.com/hana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tag := hana.TagOf[hana.TupleTag]()
	assert.True(t, matches(tag, nil))
	assert.True(t, matches(tag, []string{"Range", "Tuple"}))
	assert.False(t, matches(tag, []string{"Range"}))
	assert.False(t, matches(tag, []string{""}))
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, useColor(&buf, "auto"))
	assert.True(t, useColor(&buf, "always"))
	assert.False(t, useColor(&buf, "never"))
}

func TestBuildReportSkipsUnresolved(t *testing.T) {
	r := hana.NewRegistry()
	hana.RegisterBuiltins(r)
	tb, err := r.Seal()
	require.NoError(t, err)

	rep := buildReport(tb, []string{"MaybeTag"})
	require.Len(t, rep.Tags, 1)
	for _, op := range rep.Tags[0].Operations {
		assert.Empty(t, op.Error, op.Operation)
		assert.NotEqual(t, "head", op.Operation)
	}
	assert.Empty(t, checkRequired(tb, Config{Require: []string{"length"}, Tags: []string{"MaybeTag"}}))
	assert.Len(t, checkRequired(tb, Config{Require: []string{"length"}, Tags: []string{"MaybeTag"}, Strict: true}), 1)
}

func TestValidateDefaults(t *testing.T) {
	cfg, err := loadConfig(newViper(), "")
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "auto", cfg.Color)
	assert.Zero(t, cfg.CacheSize)
}
