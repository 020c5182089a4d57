package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalnine/artbench/internal/report"
	"github.com/signalnine/artbench/internal/selection"
	"github.com/signalnine/artbench/internal/style"
)

var flagExport string

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [best|latest|all]",
		Short: "Compare stored runs across models",
		Long: `Compare stored runs across models.

Modes:
  best    highest-quality run of each model (default)
  latest  most recent run of each model
  all     every run, plus per-model evolution`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usageError(cmd, fmt.Errorf("%w: expected at most one mode, got %d arguments", selection.ErrInvalidMode, len(args)))
			}
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			mode, err := selection.ParseMode(arg)
			if err != nil {
				return usageError(cmd, err)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			st, err := style.ForWriter(out, colorMode)
			if err != nil {
				return err
			}
			opts := report.Options{
				Mode:          mode,
				BarWidth:      cfg.Charts.BarWidth,
				ScatterHeight: cfg.Charts.ScatterHeight,
				ScatterWidth:  cfg.Charts.ScatterWidth,
				Glyphs:        cfg.Rules(),
				ExportPath:    cfg.Export.Path,
				Style:         st,
			}
			if flagExport != "" {
				opts.ExportPath = flagExport
			}
			return report.Generate(cfg.Results.Dir, out, opts)
		},
	}
	cmd.Flags().StringVar(&flagExport, "export", "", "CSV summary path (overrides config)")
	return cmd
}
