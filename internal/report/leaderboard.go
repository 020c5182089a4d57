package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/signalnine/artbench/internal/result"
	"github.com/signalnine/artbench/internal/selection"
	"github.com/signalnine/artbench/internal/style"
)

const modelColumnWidth = 20

// Row is one leaderboard line.
type Row struct {
	Model        string
	Quality      float64
	Accuracy     float64
	Completeness float64
	Speed        float64
	Errors       int
	Runs         int
}

// Rank orders records by quality, then accuracy, both descending. Records
// equal on both keep their relative order.
func Rank(records []*result.RunRecord) []*result.RunRecord {
	ranked := make([]*result.RunRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Evaluation, ranked[j].Evaluation
		if a.AverageLLMJudgement != b.AverageLLMJudgement {
			return a.AverageLLMJudgement > b.AverageLLMJudgement
		}
		return a.ValidRecordPercentage > b.ValidRecordPercentage
	})
	return ranked
}

// Leaderboard ranks selected and attaches each model's run count over the
// whole history.
func Leaderboard(selected, all []*result.RunRecord) []Row {
	counts := selection.RunCounts(all)
	ranked := Rank(selected)
	rows := make([]Row, 0, len(ranked))
	for _, r := range ranked {
		ev := r.Evaluation
		rows = append(rows, Row{
			Model:        r.Model,
			Quality:      ev.AverageLLMJudgement,
			Accuracy:     ev.ValidRecordPercentage,
			Completeness: ev.ParsedPercentage,
			Speed:        ev.RecordsPerSecond,
			Errors:       ev.ValidationErrorCount,
			Runs:         counts[r.Model],
		})
	}
	return rows
}

func (r *renderer) leaderboard(selected, all []*result.RunRecord) {
	r.section(fmt.Sprintf("MODEL PERFORMANCE LEADERBOARD (%s)", r.opts.Mode.Label()), wideBanner)
	rows := Leaderboard(selected, all)
	if len(rows) == 0 {
		r.empty()
		return
	}
	fmt.Fprintln(r.w, leaderboardLine("MODEL", "QUALITY", "ACCURACY", "COMPLETE", "SPEED", "ERRORS", "RUNS"))
	fmt.Fprintln(r.w, strings.Repeat("-", wideBanner))
	for i, row := range rows {
		line := leaderboardLine(
			row.Model,
			fmt.Sprintf("%.2f", row.Quality),
			fmt.Sprintf("%.1f%%", row.Accuracy),
			fmt.Sprintf("%.1f%%", row.Completeness),
			fmt.Sprintf("%.2f/s", row.Speed),
			fmt.Sprintf("%d", row.Errors),
			fmt.Sprintf("%d", row.Runs),
		)
		fmt.Fprintln(r.w, r.st.Rank(i, line))
	}
	fmt.Fprintln(r.w)
}

func leaderboardLine(model, quality, accuracy, complete, speed, errors, runs string) string {
	line := fmt.Sprintf("%s %-8s %-8s %-8s %-10s %-8s %s",
		style.Cell(model, modelColumnWidth), quality, accuracy, complete, speed, errors, runs)
	return strings.TrimRight(line, " ")
}
