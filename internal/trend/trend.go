package trend

import (
	"fmt"
	"io"

	"github.com/signalnine/artbench/internal/result"
	"github.com/signalnine/artbench/internal/selection"
	"github.com/signalnine/artbench/internal/style"
)

// Direction is the quality change of a run relative to the previous run of
// the same model.
type Direction int

const (
	First Direction = iota
	Improved
	Regressed
	Unchanged
)

func (d Direction) String() string {
	switch d {
	case Improved:
		return "improved"
	case Regressed:
		return "regressed"
	case Unchanged:
		return "unchanged"
	default:
		return "first"
	}
}

// Marker is the arrow drawn next to the run, coloured by direction.
func (d Direction) Marker(st *style.Styler) string {
	switch d {
	case Improved:
		return st.Good("↗")
	case Regressed:
		return st.Bad("↘")
	case Unchanged:
		return st.Warn("→")
	default:
		return " "
	}
}

type Step struct {
	Run       *result.RunRecord
	Direction Direction
}

// Series is the run history of one model with at least two runs.
type Series struct {
	Model string
	Steps []Step
}

// Track walks every model's runs in timestamp order and classifies each
// run after the first by its quality against the run before it. Models
// with a single run are skipped.
func Track(records []*result.RunRecord) []Series {
	var out []Series
	for _, g := range selection.GroupByModel(records) {
		if len(g.Runs) < 2 {
			continue
		}
		s := Series{Model: g.Model, Steps: make([]Step, len(g.Runs))}
		for i, run := range g.Runs {
			s.Steps[i] = Step{Run: run, Direction: First}
			if i > 0 {
				s.Steps[i].Direction = compare(g.Runs[i-1], run)
			}
		}
		out = append(out, s)
	}
	return out
}

func compare(prev, curr *result.RunRecord) Direction {
	p := prev.Evaluation.AverageLLMJudgement
	c := curr.Evaluation.AverageLLMJudgement
	switch {
	case c > p:
		return Improved
	case c < p:
		return Regressed
	default:
		return Unchanged
	}
}

func Render(w io.Writer, st *style.Styler, series []Series) {
	for _, s := range series {
		fmt.Fprintln(w, st.Bold(s.Model))
		for _, step := range s.Steps {
			ev := step.Run.Evaluation
			fmt.Fprintf(w, "  %s %s Quality: %.2f Speed: %.2f/s Records: %d/%d\n",
				step.Run.Timestamp.Format("01/02 15:04"), step.Direction.Marker(st),
				ev.AverageLLMJudgement, ev.RecordsPerSecond, ev.RecordCount, ev.RowCount)
		}
		fmt.Fprintln(w)
	}
}
