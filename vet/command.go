// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package vet seals a hana registry and reports its dispatch table.
//
// A program vets its own declarations by importing the packages that declare
// into [hana.Global] and handing the registry to [Main]:
//
//	func main() { vet.Main(hana.Global()) }
package vet

import (
	"fmt"
	"os"
	"slices"

	"code.hybscloud.com/hana"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Main runs the hanavet command line against r and exits on failure.
func Main(r *hana.Registry) {
	if err := NewCommand(r).Execute(); err != nil {
		os.Exit(1)
	}
}

type runner struct {
	reg     *hana.Registry
	v       *viper.Viper
	cfgPath string
	cfg     Config
	log     *zap.Logger
}

// NewCommand returns the hanavet root command with its table and check
// subcommands. The registry is sealed by whichever subcommand runs.
func NewCommand(r *hana.Registry) *cobra.Command {
	rn := &runner{reg: r, v: newViper()}

	root := &cobra.Command{
		Use:          "hanavet",
		Short:        "Seal a hana registry and report its dispatch table",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			defer errRecover(&err)
			rn.cfg, err = loadConfig(rn.v, rn.cfgPath)
			if err != nil {
				return err
			}
			rn.log, err = newLogger(rn.cfg.Log)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if rn.log == nil {
				return nil
			}
			// Sync fails on terminals; the logger has nothing buffered worth reporting.
			_ = rn.log.Sync()
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&rn.cfgPath, "config", "", "config file (default ./hanavet.yaml)")
	flags.String("format", FormatText, "output format: text or yaml")
	flags.String("log-level", "warn", "log level")
	flags.Bool("log-development", false, "human readable logs")
	flags.Int("cache-size", 0, "lazy resolution cache size (0 keeps the registry default)")
	flags.StringSlice("tags", nil, "only report tags whose name contains one of these")
	flags.StringSlice("require", nil, "operations every reported tag must resolve")
	flags.Bool("strict", false, "reject required operations resolved by a default")
	flags.String("color", "auto", "colorize text output: auto, always or never")
	for key, flag := range map[string]string{
		"format":          "format",
		"log.level":       "log-level",
		"log.development": "log-development",
		"cache_size":      "cache-size",
		"tags":            "tags",
		"require":         "require",
		"strict":          "strict",
		"color":           "color",
	} {
		// BindPFlag only fails on a nil flag.
		_ = rn.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(rn.tableCmd(), rn.checkCmd())
	return root
}

func (rn *runner) seal() (*hana.Table, error) {
	opts := []hana.Option{hana.WithLogger(rn.log)}
	if rn.cfg.CacheSize > 0 {
		opts = append(opts, hana.WithCacheSize(rn.cfg.CacheSize))
	}
	rn.reg.Configure(opts...)
	return rn.reg.Seal()
}

func (rn *runner) tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the resolution of every declared operation for every declared tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer errRecover(&err)
			t, err := rn.seal()
			if err != nil {
				return reportSealErrors(cmd, err)
			}
			return render(cmd.OutOrStdout(), buildReport(t, rn.cfg.Tags), rn.cfg)
		},
	}
}

func (rn *runner) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Seal the registry and fail on any diagnostic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer errRecover(&err)
			t, err := rn.seal()
			if err != nil {
				return reportSealErrors(cmd, err)
			}
			var problems []string
			ops := t.Operations()
			for _, op := range rn.cfg.Require {
				if !slices.Contains(ops, op) {
					problems = append(problems, "unknown operation "+op)
				}
			}
			problems = append(problems, checkRequired(t, rn.cfg)...)
			for _, p := range problems {
				fmt.Fprintln(cmd.ErrOrStderr(), p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("hanavet: %d problem(s)", len(problems))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d operations, %d tags\n", len(ops), len(t.Tags()))
			return nil
		},
	}
}

// reportSealErrors prints every diagnostic of a failed seal on its own line.
func reportSealErrors(cmd *cobra.Command, err error) error {
	errs := multierr.Errors(err)
	for _, e := range errs {
		fmt.Fprintln(cmd.ErrOrStderr(), e)
	}
	return fmt.Errorf("hanavet: seal failed with %d diagnostic(s)", len(errs))
}

type panicError struct {
	v any
}

func (e panicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.v)
}

func errRecover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	rerr, ok := r.(error)
	if !ok {
		*err = panicError{v: r}
		return
	}
	*err = rerr
}
