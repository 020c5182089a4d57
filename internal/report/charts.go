package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/signalnine/artbench/internal/result"
	"github.com/signalnine/artbench/internal/style"
)

const (
	barFill       = "█"
	barEmpty      = "░"
	barLabelWidth = 25
)

// Bar is one chart line: the metric value and its filled length.
type Bar struct {
	Model  string
	Value  float64
	Length int
}

// BarLength scales value against scaleMax onto [0,width], rounding to the
// nearest cell. A non-positive scaleMax yields an empty bar.
func BarLength(value, scaleMax float64, width int) int {
	if scaleMax <= 0 || width <= 0 {
		return 0
	}
	n := int(math.Round(value / scaleMax * float64(width)))
	return max(0, min(n, width))
}

// SpeedBars charts records/sec, normalized to the fastest selected run.
func SpeedBars(records []*result.RunRecord, width int) []Bar {
	bars := sortedBars(records, result.MetricSpeed)
	if len(bars) == 0 {
		return bars
	}
	scaleMax := bars[0].Value
	for i := range bars {
		bars[i].Length = BarLength(bars[i].Value, scaleMax, width)
	}
	return bars
}

// QualityBars charts judgement scores against the fixed top of the scale,
// not the best observed score.
func QualityBars(records []*result.RunRecord, width int) []Bar {
	bars := sortedBars(records, result.MetricQuality)
	for i := range bars {
		bars[i].Length = BarLength(bars[i].Value, result.MaxJudgement, width)
	}
	return bars
}

func sortedBars(records []*result.RunRecord, m result.Metric) []Bar {
	bars := make([]Bar, 0, len(records))
	for _, r := range records {
		bars = append(bars, Bar{Model: r.Model, Value: r.Evaluation.Value(m)})
	}
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Value > bars[j].Value
	})
	return bars
}

func renderBar(length, width int) string {
	return strings.Repeat(barFill, length) + strings.Repeat(barEmpty, width-length)
}

func (r *renderer) speedChart(selected []*result.RunRecord) {
	r.section("SPEED ANALYSIS", narrowBanner)
	bars := SpeedBars(selected, r.opts.BarWidth)
	if len(bars) == 0 {
		r.empty()
		return
	}
	fastest := bars[0].Value
	for _, b := range bars {
		line := fmt.Sprintf("%s %s %.2f/s", style.Pad(b.Model, barLabelWidth), renderBar(b.Length, r.opts.BarWidth), b.Value)
		switch {
		case b.Value > fastest*0.7:
			line = r.st.Good(line)
		case b.Value > fastest*0.4:
			line = r.st.Warn(line)
		default:
			line = r.st.Bad(line)
		}
		fmt.Fprintln(r.w, line)
	}
	fmt.Fprintln(r.w)
}

func (r *renderer) qualityChart(selected []*result.RunRecord) {
	r.section("QUALITY ANALYSIS", narrowBanner)
	bars := QualityBars(selected, r.opts.BarWidth)
	if len(bars) == 0 {
		r.empty()
		return
	}
	for _, b := range bars {
		line := fmt.Sprintf("%s %s %.2f/%.1f", style.Pad(b.Model, barLabelWidth), renderBar(b.Length, r.opts.BarWidth), b.Value, result.MaxJudgement)
		switch {
		case b.Value > 2.5:
			line = r.st.Good(line)
		case b.Value > 2.0:
			line = r.st.Warn(line)
		default:
			line = r.st.Bad(line)
		}
		fmt.Fprintln(r.w, line)
	}
	fmt.Fprintln(r.w)
}
