// Command trimmodels reduces a list of climate-model dataset paths to one
// file per model/experiment/realization/grid, keeping the newest version.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/durack1/durolib/internal/config"
	"github.com/durack1/durolib/internal/display"
	"github.com/durack1/durolib/internal/logging"
	"github.com/durack1/durolib/internal/term"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "0.3.0"
	commit  = "unknown"
)

// errReported marks failures that were already logged.
var errReported = errors.New("command failed")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "trimmodels: %v\n", err)
		}
		return 1
	}
	return 0
}

// app carries what every subcommand needs after flag parsing.
type app struct {
	stdout, stderr io.Writer
	configFile     string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "trimmodels",
		Short:         "Keep one dataset per model identity",
		Long:          "trimmodels groups CMIP dataset paths by model, experiment, realization and grid, and keeps the newest file of each group.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	def := config.DefaultConfig()
	pf.StringVar(&a.configFile, "config", "", "Config file (yaml, toml or json)")
	pf.String(config.FlagName(config.KeyNcdumpPath), def.NcdumpPath, "ncdump binary used for netCDF headers")
	pf.String(config.FlagName(config.KeyCatalog), "", "SQLite run catalog (empty disables recording)")
	pf.String(config.FlagName(config.KeyLogFile), "", "Append plain-text log lines to this file")
	pf.String(config.FlagName(config.KeyLogFormat), string(def.LogFormat), "Console log format: text | json")
	pf.String(config.FlagName(config.KeyLogLevel), def.LogLevel, "Log level: debug | info | warn | error")
	pf.BoolP(config.FlagName(config.KeyVerbose), "v", false, "Debug logging (per-group decisions)")
	pf.String(config.FlagName(config.KeyColor), string(def.ColorMode), "Color output: auto | always | never")

	root.AddCommand(
		newTrimCmd(a),
		newCheckCmd(a),
		newHistoryCmd(a),
		newShowCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads configuration and builds the logger for cmd.
func (a *app) setup(cmd *cobra.Command) (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load(cmd.Flags(), a.configFile)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.NewWithOutput(cfg, a.stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func (a *app) banner(cfg *config.Config) {
	if cfg.LogFormat != config.LogText {
		return
	}
	display.PrintBanner(a.stderr, term.NewPalette(term.Resolve(cfg.ColorMode, a.stderr)), version)
}
