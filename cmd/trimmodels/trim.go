package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/durack1/durolib/internal/config"
	"github.com/durack1/durolib/internal/pipeline"
)

func newTrimCmd(a *app) *cobra.Command {
	var fromJSON string

	cmd := &cobra.Command{
		Use:   "trim [paths...]",
		Short: "Resolve dataset paths to one file per identity",
		Long: `Resolve dataset paths to one file per identity.

Paths come from the arguments, from --from-json (a JSON array of strings),
or from a walk of --dir. Within each identity group the file with the
latest creation_date wins; ties fall back to the version token.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := a.setup(cmd)
			if err != nil {
				return err
			}
			defer log.Close()
			a.banner(cfg)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, err = pipeline.Run(ctx, cfg, log, pipeline.Options{
				Input:  pipeline.Input{Paths: args, FromJSON: fromJSON},
				Stdout: a.stdout,
			})
			if err != nil {
				log.Error("%v", err)
				return errReported
			}
			return nil
		},
	}

	def := config.DefaultConfig()
	f := cmd.Flags()
	f.StringVar(&fromJSON, "from-json", "", "Read the path list from a JSON array file")
	f.String(config.FlagName(config.KeyInputDir), "", "Discover datasets under this directory")
	f.StringSlice(config.FlagName(config.KeyExtensions), def.Extensions, "Dataset extensions considered by --dir")
	f.Bool(config.FlagName(config.KeyRecursive), def.Recursive, "Descend into subdirectories of --dir")
	f.Bool(config.FlagName(config.KeyMemoize), def.Memoize, "Reuse creation dates read earlier in the run")
	f.StringP(config.FlagName(config.KeyOutput), "o", "", "Report file (default stdout; .zst compresses)")
	f.String(config.FlagName(config.KeyOutputFormat), string(def.OutputFormat), "Report format: text | json | yaml | toml")
	return cmd
}
