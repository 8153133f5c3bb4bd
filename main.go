//go:build !js && !wasm

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/neok-m4700/f18/colors"
	"github.com/neok-m4700/f18/internal/compiler"
	"github.com/neok-m4700/f18/internal/config"
)

const version = "0.1.0"

// errFailed is returned when diagnostics already explain the failure.
var errFailed = errors.New("evaluation failed")

type flags struct {
	configPath    string
	debug         bool
	format        string
	color         string
	noDiagnostics bool
	noFold        bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			colors.RED.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:           "f18expr",
		Short:         "Dump, fold and measure typed expression trees",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("f18expr version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "settings file (YAML)")
	pf.BoolVarP(&f.debug, "debug", "d", false, "enable debug logging")
	pf.StringVar(&f.format, "format", "", "diagnostics format: ansi or html")
	pf.StringVar(&f.color, "color", "", "colored output: auto, always or never")
	pf.BoolVar(&f.noDiagnostics, "no-diagnostics", false, "fold without reporting overflows")

	root.AddCommand(
		newCommand(&f, "dump", "Print every tree as read", compiler.Compile, false),
		newCommand(&f, "fold", "Fold integer trees and print them", compiler.Compile, true),
		newCommand(&f, "len", "Print LEN of every character tree", compiler.Length, true),
		newCommand(&f, "describe", "Fold every tree and print its type and exact value", compiler.Describe, true),
	)
	return root
}

func newCommand(f *flags, name, short string, run func(*compiler.Options) compiler.Result, folds bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " FILE|-",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd.Flags(), f)
			if err != nil {
				return err
			}
			opts, err := options(cfg, args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			opts.Fold = folds && cfg.Fold.Enabled && !f.noFold
			if opts.Logger, err = cfg.Logger(); err != nil {
				return err
			}
			colors.Configure(cfg.Output.Color, os.Stderr)

			result := run(opts)
			fmt.Fprint(cmd.OutOrStdout(), result.Output)
			fmt.Fprint(cmd.ErrOrStderr(), result.Diagnostics)
			if !result.Success {
				return errFailed
			}
			return nil
		},
	}
	if folds {
		cmd.Flags().BoolVar(&f.noFold, "no-fold", false, "skip folding")
	}
	return cmd
}

// settings loads the config file, then applies the flags given on the
// command line.
func settings(fs *pflag.FlagSet, f *flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}
	if fs.Changed("format") {
		cfg.Output.Format = f.format
	}
	if fs.Changed("color") {
		cfg.Output.Color = f.color
	}
	if fs.Changed("no-diagnostics") {
		cfg.Fold.Diagnostics = !f.noDiagnostics
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}
	return cfg, cfg.Validate()
}

func options(cfg *config.Config, input string, stdin io.Reader) (*compiler.Options, error) {
	opts := &compiler.Options{
		Debug:       cfg.Debug(),
		Diagnostics: cfg.Fold.Diagnostics,
	}
	if cfg.Output.Format == config.FormatHTML {
		opts.LogFormat = compiler.HTML
	}
	if input != "-" {
		opts.EntryFile = input
		return opts, nil
	}
	code, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.Wrap(err, "reading standard input")
	}
	opts.Code = string(code)
	return opts, nil
}
