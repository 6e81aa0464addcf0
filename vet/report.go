// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vet

import (
	"errors"
	"slices"
	"strings"

	"code.hybscloud.com/hana"
)

// Report is the resolution table of a sealed registry grouped by tag.
type Report struct {
	Tags []TagReport `yaml:"tags"`
}

type TagReport struct {
	Tag        string             `yaml:"tag"`
	Models     []hana.ModelChoice `yaml:"models,omitempty"`
	Operations []OpReport         `yaml:"operations"`
}

// OpReport is one resolved (operation, tag) key.
type OpReport struct {
	Operation   string `yaml:"operation"`
	Candidate   string `yaml:"candidate"`
	Rule        string `yaml:"rule"`
	Marker      string `yaml:"marker"`
	Structure   string `yaml:"structure,omitempty"`
	Alternative string `yaml:"alternative,omitempty"`
	Error       string `yaml:"error,omitempty"`
}

// buildReport collects the entries of t for the tags matching filter.
// Keys resolving to nothing are left out.
func buildReport(t *hana.Table, filter []string) Report {
	byTag := make(map[hana.Tag][]OpReport)
	for _, e := range t.Entries() {
		tag := e.Tags[0]
		if !matches(tag, filter) {
			continue
		}
		op := OpReport{
			Operation:   e.Operation,
			Candidate:   e.Candidate,
			Rule:        e.Rule.String(),
			Marker:      e.Marker.String(),
			Structure:   e.Structure,
			Alternative: e.Alternative,
		}
		if e.Err != nil {
			if errors.Is(e.Err, hana.ErrUnresolved) {
				continue
			}
			op.Error = e.Err.Error()
		}
		byTag[tag] = append(byTag[tag], op)
	}

	var rep Report
	for _, tag := range t.Tags() {
		ops, ok := byTag[tag]
		if !ok {
			continue
		}
		rep.Tags = append(rep.Tags, TagReport{
			Tag:        tag.String(),
			Models:     t.Models(tag),
			Operations: ops,
		})
	}
	return rep
}

// checkRequired returns a diagnostic for every reported tag that does not
// resolve one of the required operations. With strict set, resolving to a
// default candidate is a failure too.
func checkRequired(t *hana.Table, cfg Config) []string {
	var out []string
	for _, e := range t.Entries() {
		tag := e.Tags[0]
		if !slices.Contains(cfg.Require, e.Operation) || !matches(tag, cfg.Tags) {
			continue
		}
		switch {
		case e.Err != nil:
			out = append(out, e.Err.Error())
		case cfg.Strict && e.Marker == hana.Default:
			out = append(out, e.Operation+" ["+tag.String()+"]: resolves to default candidate "+e.Candidate)
		}
	}
	return out
}

func matches(tag hana.Tag, filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	name := tag.String()
	for _, f := range filter {
		if f != "" && strings.Contains(name, f) {
			return true
		}
	}
	return false
}
