package plot

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/signalnine/artbench/internal/result"
	"github.com/signalnine/artbench/internal/style"
)

const (
	xLabelCount = 5
	yLabelWidth = 7
	// gutter is the text offset of grid column 0: "%7.2f |".
	gutter = yLabelWidth + 2
)

// Point is one record placed on the grid. Row 0 is the top row.
type Point struct {
	Model string
	Glyph string
	X, Y  float64
	Row   int
	Col   int
}

// Scatter is a character grid with one marker per record. Records landing
// in the same cell share it; their glyphs are concatenated.
type Scatter struct {
	XMetric, YMetric result.Metric
	Height, Width    int
	XMin, XMax       float64
	YMin, YMax       float64
	Points           []Point
	Cells            [][]string
}

// NewScatter places records on a height×width grid with x and y scaled
// min-max over the records' observed range. It returns false when there is
// nothing to plot or either axis has no spread.
func NewScatter(records []*result.RunRecord, x, y result.Metric, height, width int, rules []Rule) (*Scatter, bool) {
	if len(records) == 0 || height < 2 || width < 2 {
		return nil, false
	}
	s := &Scatter{XMetric: x, YMetric: y, Height: height, Width: width}
	s.XMin, s.XMax = bounds(records, x)
	s.YMin, s.YMax = bounds(records, y)
	if s.XMax == s.XMin || s.YMax == s.YMin {
		return nil, false
	}

	s.Cells = make([][]string, height)
	for i := range s.Cells {
		s.Cells[i] = make([]string, width)
	}
	for _, r := range records {
		p := Point{
			Model: r.Model,
			Glyph: GlyphFor(r.Model, rules),
			X:     r.Evaluation.Value(x),
			Y:     r.Evaluation.Value(y),
		}
		p.Col = Scale(p.X, s.XMin, s.XMax, width)
		p.Row = height - 1 - Scale(p.Y, s.YMin, s.YMax, height)
		s.Cells[p.Row][p.Col] += p.Glyph
		s.Points = append(s.Points, p)
	}
	return s, true
}

// Scale maps v in [lo,hi] onto a cell index in [0,dim-1].
func Scale(v, lo, hi float64, dim int) int {
	pos := int(math.Round((v - lo) / (hi - lo) * float64(dim-1)))
	if pos < 0 {
		return 0
	}
	if pos > dim-1 {
		return dim - 1
	}
	return pos
}

func bounds(records []*result.RunRecord, m result.Metric) (float64, float64) {
	lo := records[0].Evaluation.Value(m)
	hi := lo
	for _, r := range records[1:] {
		v := r.Evaluation.Value(m)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Render writes the grid top row first, then the x axis, then a legend
// line per record.
func (s *Scatter) Render(w io.Writer, st *style.Styler) {
	fmt.Fprintf(w, "%s ↑\n", s.YMetric.Label())
	for row := 0; row < s.Height; row++ {
		value := s.YMax - float64(row)*(s.YMax-s.YMin)/float64(s.Height-1)
		var line strings.Builder
		fmt.Fprintf(&line, "%*.2f |", yLabelWidth, value)
		for _, cell := range s.Cells[row] {
			if cell == "" {
				line.WriteByte(' ')
				continue
			}
			line.WriteString(st.Bold(cell))
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
	fmt.Fprintf(w, "%s+%s\n", strings.Repeat(" ", gutter-1), strings.Repeat("-", s.Width))
	fmt.Fprintln(w, strings.TrimRight(s.xLabels(), " "))
	fmt.Fprintf(w, "%s%s →\n", strings.Repeat(" ", gutter), s.XMetric.Label())
	fmt.Fprintln(w)
	for _, p := range s.Points {
		fmt.Fprintf(w, "  %s %s: %s=%.2f, %s=%.2f\n",
			st.Bold(p.Glyph), p.Model, s.XMetric.Label(), p.X, s.YMetric.Label(), p.Y)
	}
}

func (s *Scatter) xLabels() string {
	line := []byte(strings.Repeat(" ", gutter+s.Width+yLabelWidth))
	next := 0
	for i := 0; i < xLabelCount; i++ {
		col := int(math.Round(float64(i) * float64(s.Width-1) / float64(xLabelCount-1)))
		label := fmt.Sprintf("%.2f", s.XMin+float64(i)*(s.XMax-s.XMin)/float64(xLabelCount-1))
		start := gutter + col
		if start < next {
			start = next
		}
		for len(line) < start+len(label) {
			line = append(line, ' ')
		}
		copy(line[start:], label)
		next = start + len(label) + 1
	}
	return string(line)
}
