package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/signalnine/artbench/internal/result"
	"github.com/signalnine/artbench/internal/selection"
	"github.com/signalnine/artbench/internal/style"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List models with stored runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			records, err := result.LoadAll(cfg.Results.Dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			st, err := style.ForWriter(out, colorMode)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintf(out, "No run records in %s\n", cfg.Results.Dir)
				return nil
			}
			fmt.Fprintln(out, st.Heading(fmt.Sprintf("Models in %s:", cfg.Results.Dir)))
			for _, g := range selection.GroupByModel(records) {
				best := selection.Select(g.Runs, selection.ModeBest)[0]
				latest := g.Runs[len(g.Runs)-1]
				fmt.Fprintf(out, "  - %s runs: %-3d best quality: %.2f  latest: %s\n",
					style.Cell(g.Model, 20), len(g.Runs), best.Evaluation.AverageLLMJudgement,
					latest.Timestamp.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}
