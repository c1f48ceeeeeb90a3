package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/durack1/durolib/internal/catalog"
	"github.com/durack1/durolib/internal/display"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	var runID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List trim runs recorded in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := a.setup(cmd)
			if err != nil {
				return err
			}
			defer log.Close()

			if cfg.Catalog == "" {
				return errors.New("no catalog configured (use --catalog)")
			}
			c, err := catalog.Open(cfg.Catalog)
			if err != nil {
				return err
			}
			defer c.Close()

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			if runID != "" {
				sels, err := c.Selections(cmd.Context(), runID)
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, "PATH\tREASON\tCANDIDATES")
				for _, s := range sels {
					fmt.Fprintf(tw, "%s\t%s\t%d\n", s.Path, s.Reason, s.Candidates)
				}
				return tw.Flush()
			}

			runs, err := c.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(tw, "RUN\tSTARTED\tSOURCE\tKEPT")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d (%s dropped)\n",
					r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Source,
					r.Kept, r.Inputs, display.FormatPercent(r.Inputs-r.Kept, r.Inputs))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list (0 for all)")
	cmd.Flags().StringVar(&runID, "run", "", "Show the files kept by one run")
	return cmd
}
