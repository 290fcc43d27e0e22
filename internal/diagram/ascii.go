package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Series is one named curve of a chart
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Chart holds the series and labels shared by the ASCII and image renderers
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Orange,
	asciigraph.Green,
	asciigraph.Red,
	asciigraph.Purple,
}

// DrawASCIIChart renders the chart for a terminal. All series are assumed to
// share the same X samples; non-finite values are drawn as gaps.
func DrawASCIIChart(c Chart, width, height int, color bool) string {
	if len(c.Series) == 0 {
		return ""
	}

	data := make([][]float64, len(c.Series))
	legends := make([]string, len(c.Series))
	gaps := 0
	for i, s := range c.Series {
		data[i], gaps = finiteOrNaN(s.Y, gaps)
		legends[i] = s.Name
	}
	if allNaN(data) {
		return fmt.Sprintf("\n  %s: no finite values to plot\n", c.Title)
	}

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption(caption(c)),
		asciigraph.Offset(4),
	}
	// legends index SeriesColors, so both are always set together
	if len(c.Series) > 1 || color {
		opts = append(opts, asciigraph.SeriesColors(palette(len(c.Series), color)...))
	}
	if len(c.Series) > 1 {
		opts = append(opts, asciigraph.SeriesLegends(legends...))
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.PlotMany(data, opts...))
	sb.WriteString("\n")
	if gaps > 0 {
		sb.WriteString(fmt.Sprintf("  (%d non-finite points not drawn)\n", gaps))
	}
	return sb.String()
}

func palette(n int, color bool) []asciigraph.AnsiColor {
	colors := make([]asciigraph.AnsiColor, n)
	for i := range colors {
		if color {
			colors[i] = seriesColors[i%len(seriesColors)]
		} else {
			colors[i] = asciigraph.Default
		}
	}
	return colors
}

func caption(c Chart) string {
	s := c.Title
	if len(c.Series) > 0 && len(c.Series[0].X) > 0 {
		xs := c.Series[0].X
		s += fmt.Sprintf("  [%s: %.3g .. %.3g]", c.XLabel, xs[0], xs[len(xs)-1])
	}
	return s
}

func finiteOrNaN(ys []float64, gaps int) ([]float64, int) {
	out := make([]float64, len(ys))
	for i, y := range ys {
		if math.IsInf(y, 0) || math.IsNaN(y) {
			out[i] = math.NaN()
			gaps++
			continue
		}
		out[i] = y
	}
	return out, gaps
}

func allNaN(data [][]float64) bool {
	for _, ys := range data {
		for _, y := range ys {
			if !math.IsNaN(y) {
				return false
			}
		}
	}
	return true
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
