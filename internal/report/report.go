package report

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/signalnine/artbench/internal/export"
	"github.com/signalnine/artbench/internal/plot"
	"github.com/signalnine/artbench/internal/result"
	"github.com/signalnine/artbench/internal/selection"
	"github.com/signalnine/artbench/internal/style"
	"github.com/signalnine/artbench/internal/trend"
)

const (
	wideBanner   = 80
	narrowBanner = 50
)

type Options struct {
	Mode          selection.Mode
	BarWidth      int
	ScatterHeight int
	ScatterWidth  int
	Glyphs        []plot.Rule
	// ExportPath receives the CSV summary of the selected runs.
	ExportPath string
	Style      *style.Styler
}

// Generate loads every run record in resultsDir and writes the report.
func Generate(resultsDir string, w io.Writer, opts Options) error {
	records, err := result.LoadAll(resultsDir)
	if err != nil {
		return err
	}
	return Render(w, records, opts)
}

// Render writes the report for the chronologically sorted history all.
// Sections print in a fixed order; the export is written last and its
// failure is returned after everything else has been printed.
func Render(w io.Writer, all []*result.RunRecord, opts Options) error {
	selected := selection.Select(all, opts.Mode)
	slog.Debug("rendering report", "mode", opts.Mode, "runs", len(all), "selected", len(selected))

	r := &renderer{w: w, st: opts.Style, opts: opts}
	r.summary(all)
	r.leaderboard(selected, all)
	r.speedChart(selected)
	r.qualityChart(selected)
	r.scatter(selected, result.MetricSpeed, result.MetricQuality)
	r.scatter(selected, result.MetricCompleteness, result.MetricAccuracy)
	r.matrix(selected)
	if opts.Mode == selection.ModeAll {
		r.evolution(all)
	}
	r.details(selected)
	return r.export(selected)
}

type renderer struct {
	w    io.Writer
	st   *style.Styler
	opts Options
}

func (r *renderer) section(title string, width int) {
	fmt.Fprintln(r.w, r.st.Heading(title))
	fmt.Fprintln(r.w, strings.Repeat("=", width))
}

func (r *renderer) empty() {
	fmt.Fprintln(r.w, "  no runs selected")
	fmt.Fprintln(r.w)
}

func (r *renderer) summary(all []*result.RunRecord) {
	models := len(selection.GroupByModel(all))
	fmt.Fprintln(r.w, r.st.Banner(fmt.Sprintf("ANALYZING %d RUNS ACROSS %d MODELS", len(all), models)))
	fmt.Fprintln(r.w)
}

func (r *renderer) scatter(selected []*result.RunRecord, x, y result.Metric) {
	r.section(fmt.Sprintf("%s VS %s", strings.ToUpper(string(x)), strings.ToUpper(string(y))), narrowBanner)
	if len(selected) == 0 {
		r.empty()
		return
	}
	s, ok := plot.NewScatter(selected, x, y, r.opts.ScatterHeight, r.opts.ScatterWidth, r.opts.Glyphs)
	if !ok {
		fmt.Fprintf(r.w, "  not enough spread in %s or %s to plot\n\n", x.Label(), y.Label())
		return
	}
	s.Render(r.w, r.st)
	fmt.Fprintln(r.w)
}

func (r *renderer) evolution(all []*result.RunRecord) {
	r.section("MODEL EVOLUTION", wideBanner)
	series := trend.Track(all)
	if len(series) == 0 {
		fmt.Fprintln(r.w, "  no model has more than one run")
		fmt.Fprintln(r.w)
		return
	}
	trend.Render(r.w, r.st, series)
}

func (r *renderer) export(selected []*result.RunRecord) error {
	if err := export.WriteFile(r.opts.ExportPath, selected); err != nil {
		return err
	}
	fmt.Fprintln(r.w, r.st.Good(fmt.Sprintf("Exported summary to %s", r.opts.ExportPath)))
	return nil
}
