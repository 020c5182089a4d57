package selection

import (
	"errors"
	"fmt"

	"github.com/signalnine/artbench/internal/result"
)

// Mode is the view applied to the run history before rendering.
type Mode string

const (
	ModeBest   Mode = "best"
	ModeLatest Mode = "latest"
	ModeAll    Mode = "all"
)

var ErrInvalidMode = errors.New("invalid mode")

// Modes lists the accepted modes, default first.
var Modes = []Mode{ModeBest, ModeLatest, ModeAll}

func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeBest, nil
	}
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of best, latest, all", ErrInvalidMode, s)
}

// Label is the heading used for the mode in the leaderboard title.
func (m Mode) Label() string {
	switch m {
	case ModeLatest:
		return "LATEST RUNS"
	case ModeAll:
		return "ALL RUNS"
	default:
		return "BEST RUNS"
	}
}

// Group is every run of one model, in input order.
type Group struct {
	Model string
	Runs  []*result.RunRecord
}

// GroupByModel groups records by exact model name in one pass. Groups are
// ordered by first appearance.
func GroupByModel(records []*result.RunRecord) []Group {
	index := map[string]int{}
	var groups []Group
	for _, r := range records {
		i, ok := index[r.Model]
		if !ok {
			i = len(groups)
			index[r.Model] = i
			groups = append(groups, Group{Model: r.Model})
		}
		groups[i].Runs = append(groups[i].Runs, r)
	}
	return groups
}

// Select reduces the chronologically sorted history to the records shown
// for mode. In best and latest mode each model keeps one record; when
// several share the maximum the one appearing last (the most recent) wins.
func Select(records []*result.RunRecord, mode Mode) []*result.RunRecord {
	switch mode {
	case ModeAll:
		return records
	case ModeLatest:
		return reduce(records, func(a, b *result.RunRecord) bool {
			return a.Timestamp.Before(b.Timestamp)
		})
	default:
		return reduce(records, func(a, b *result.RunRecord) bool {
			return a.Evaluation.AverageLLMJudgement < b.Evaluation.AverageLLMJudgement
		})
	}
}

func reduce(records []*result.RunRecord, less func(a, b *result.RunRecord) bool) []*result.RunRecord {
	groups := GroupByModel(records)
	selected := make([]*result.RunRecord, 0, len(groups))
	for _, g := range groups {
		selected = append(selected, maxBy(g.Runs, less))
	}
	return selected
}

func maxBy(runs []*result.RunRecord, less func(a, b *result.RunRecord) bool) *result.RunRecord {
	best := runs[0]
	for _, r := range runs[1:] {
		if !less(r, best) {
			best = r
		}
	}
	return best
}

// RunCounts is the number of historical runs per model.
func RunCounts(records []*result.RunRecord) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Model]++
	}
	return counts
}
