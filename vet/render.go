// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vet

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiRed   = "\x1b[31m"
)

// render writes rep in the configured format.
func render(w io.Writer, rep Report, cfg Config) error {
	switch cfg.Format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderText(w, rep, useColor(w, cfg.Color))
	}
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func renderText(w io.Writer, rep Report, color bool) error {
	paint := func(code, s string) string {
		if !color || s == "" {
			return s
		}
		return code + s + ansiReset
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, tr := range rep.Tags {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintln(tw, paint(ansiBold, tr.Tag))
		for _, m := range tr.Models {
			fmt.Fprintf(tw, "  models %s via %s\n", m.Structure, m.Alternative)
		}
		for _, op := range tr.Operations {
			origin := op.Rule
			if op.Structure != "" {
				origin += " " + op.Structure + "." + op.Alternative
			}
			marker := op.Marker
			if op.Marker == "default" {
				marker = paint(ansiDim, marker)
			}
			line := strings.Join([]string{"  " + op.Operation, op.Candidate, origin, marker}, "\t")
			if op.Error != "" {
				line += "\t" + paint(ansiRed, op.Error)
			}
			fmt.Fprintln(tw, line)
		}
	}
	return tw.Flush()
}
