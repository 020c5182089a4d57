package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/signalnine/artbench/internal/result"
)

// DefaultPath is where the summary is written when none is configured.
const DefaultPath = "results_summary.csv"

// Header is the fixed column order of the summary file.
var Header = []string{
	"model", "quality_score", "accuracy_pct", "completeness_pct",
	"speed_rps", "errors", "duration_sec", "filename",
}

// WriteFile writes the summary to path, replacing any existing file.
func WriteFile(path string, records []*result.RunRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// Write emits the header row and one row per record.
func Write(w io.Writer, records []*result.RunRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(Row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func Row(r *result.RunRecord) []string {
	ev := r.Evaluation
	return []string{
		r.Model,
		fmt.Sprintf("%.3f", ev.AverageLLMJudgement),
		fmt.Sprintf("%.1f", ev.ValidRecordPercentage),
		fmt.Sprintf("%.1f", ev.ParsedPercentage),
		fmt.Sprintf("%.2f", ev.RecordsPerSecond),
		strconv.Itoa(ev.ValidationErrorCount),
		result.FormatSeconds(ev.DurationSeconds),
		r.Filename,
	}
}
