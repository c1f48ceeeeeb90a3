package main

import (
	"github.com/spf13/cobra"

	"github.com/durack1/durolib/internal/check"
	"github.com/durack1/durolib/internal/config"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report ncdump availability and catalog writability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := a.setup(cmd)
			if err != nil {
				return err
			}
			defer log.Close()
			a.banner(cfg)

			if failed := check.RunCheck(cmd.Context(), cfg, log); failed > 0 {
				log.Error("%d check(s) failed", failed)
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().String(config.FlagName(config.KeyInputDir), "", "Also verify this input directory")
	return cmd
}
