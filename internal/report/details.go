package report

import (
	"fmt"

	"github.com/signalnine/artbench/internal/result"
)

func (r *renderer) details(selected []*result.RunRecord) {
	r.section("DETAILED METRICS", wideBanner)
	if len(selected) == 0 {
		r.empty()
		return
	}
	for _, rec := range selected {
		ev := rec.Evaluation
		fmt.Fprintln(r.w, r.st.Bold(rec.Model))
		fmt.Fprintf(r.w, "  Source: %s\n", rec.Filename)
		fmt.Fprintf(r.w, "  JSON Valid: %s\n", r.st.Check(ev.ValidJSON))
		fmt.Fprintf(r.w, "  Golden Match: %s\n", r.st.Check(ev.Golden))
		fmt.Fprintf(r.w, "  Golden Match (case-insensitive): %s\n", r.st.Check(ev.GoldenCaseInsensitive))
		fmt.Fprintf(r.w, "  Records: %d/%d (%.1f%%)\n", ev.RecordCount, ev.RowCount, ev.ParsedPercentage)
		fmt.Fprintf(r.w, "  Valid Records: %d (%.1f%%)\n", ev.ValidRecordCount, ev.ValidRecordPercentage)
		fmt.Fprintf(r.w, "  LLM Judgment: %.3f/%.1f\n", ev.AverageLLMJudgement, result.MaxJudgement)
		fmt.Fprintf(r.w, "  Duration: %ss\n", result.FormatSeconds(ev.DurationSeconds))
		fmt.Fprintf(r.w, "  Speed: %.2f records/sec\n", ev.RecordsPerSecond)
		fmt.Fprintf(r.w, "  Time per Record: %.2fs\n", ev.SecondsPerRecord)
		fmt.Fprintf(r.w, "  Errors: %d\n", ev.ValidationErrorCount)
		fmt.Fprintln(r.w)
	}
}
