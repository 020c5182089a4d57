package report

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"

	"github.com/signalnine/artbench/internal/result"
)

// Score is a record's metrics on a common 0-10 scale. Overall is their
// unweighted sum, so it ranges 0-40.
type Score struct {
	Model        string
	Quality      float64
	Speed        float64
	Accuracy     float64
	Completeness float64
	Overall      float64
}

// PerformanceMatrix normalizes each record's metrics and orders the result
// by overall score, highest first. Speed is relative to the fastest record.
func PerformanceMatrix(records []*result.RunRecord) []Score {
	var fastest float64
	for _, r := range records {
		fastest = max(fastest, r.Evaluation.RecordsPerSecond)
	}

	scores := make([]Score, 0, len(records))
	for _, r := range records {
		ev := r.Evaluation
		s := Score{
			Model:        r.Model,
			Quality:      ev.AverageLLMJudgement / result.MaxJudgement * 10,
			Accuracy:     ev.ValidRecordPercentage / 10,
			Completeness: ev.ParsedPercentage / 10,
		}
		if fastest > 0 {
			s.Speed = ev.RecordsPerSecond / fastest * 10
		}
		s.Overall = s.Quality + s.Speed + s.Accuracy + s.Completeness
		scores = append(scores, s)
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Overall > scores[j].Overall
	})
	return scores
}

func (r *renderer) matrix(selected []*result.RunRecord) {
	r.section("PERFORMANCE MATRIX (0-10 per metric)", wideBanner)
	scores := PerformanceMatrix(selected)
	if len(scores) == 0 {
		r.empty()
		return
	}
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODEL\tQUALITY\tSPEED\tACCURACY\tCOMPLETE\tOVERALL")
	fmt.Fprintln(tw, strings.Repeat("-", wideBanner))
	for _, s := range scores {
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			runewidth.Truncate(s.Model, modelColumnWidth, ""), s.Quality, s.Speed, s.Accuracy, s.Completeness, s.Overall)
	}
	tw.Flush()
	fmt.Fprintln(r.w)
}
