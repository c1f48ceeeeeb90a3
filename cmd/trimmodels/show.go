package main

import (
	"github.com/spf13/cobra"

	"github.com/durack1/durolib/internal/config"
	"github.com/durack1/durolib/internal/report"
)

func newShowCmd(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "show <report>",
		Short: "Print a saved report, optionally in another format",
		Long: `Print a report written by trim -o. The input format follows the file
extension unless --from is given; a .zst suffix is decompressed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := a.setup(cmd)
			if err != nil {
				return err
			}
			defer log.Close()

			in := config.OutputFormat(from)
			if in == "" {
				in = report.FormatFromPath(args[0])
			}
			doc, err := report.ReadFile(args[0], in)
			if err != nil {
				return err
			}
			log.Debug("Read %s report %s (%d files)", in, args[0], len(doc.Files))
			return report.Write(a.stdout, cfg.OutputFormat, doc)
		},
	}

	def := config.DefaultConfig()
	cmd.Flags().StringVar(&from, "from", "", "Input format (default: from the file extension)")
	cmd.Flags().String(config.FlagName(config.KeyOutputFormat), string(def.OutputFormat), "Output format: text | json | yaml | toml")
	return cmd
}
