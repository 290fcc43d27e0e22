package diagram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleChart() Chart {
	xs := []float64{-0.5, -0.25, 0, 0.25, 0.5}
	return Chart{
		Title:  "Young's modulus through the thickness",
		XLabel: "z/h",
		YLabel: "E (GPa)",
		Series: []Series{
			{Name: "FU", X: xs, Y: []float64{20, 20, 20, 20, 20}},
			{Name: "FGV", X: xs, Y: []float64{4.6, 10, 18, 30, math.Inf(1)}},
		},
	}
}

func TestDrawASCIIChart(t *testing.T) {
	out := DrawASCIIChart(sampleChart(), 40, 10, false)
	assert.Contains(t, out, "Young's modulus through the thickness")
	assert.Contains(t, out, "FGV")
	assert.Contains(t, out, "1 non-finite points not drawn")

	colored := DrawASCIIChart(sampleChart(), 40, 10, true)
	assert.Contains(t, colored, "FGV")
	assert.NotEqual(t, out, colored)

	assert.Empty(t, DrawASCIIChart(Chart{}, 40, 10, false))

	empty := Chart{Title: "nothing", Series: []Series{{Name: "x", X: []float64{0}, Y: []float64{math.NaN()}}}}
	assert.Contains(t, DrawASCIIChart(empty, 40, 10, false), "no finite values")
}

func TestDrawASCIIChartManySeriesWithoutColor(t *testing.T) {
	xs := []float64{0, 1, 2}
	c := Chart{Title: "porosity models"}
	for _, name := range []string{"none", "P-1", "P-2"} {
		c.Series = append(c.Series, Series{Name: name, X: xs, Y: []float64{1, 2, 3}})
	}

	var out string
	require.NotPanics(t, func() { out = DrawASCIIChart(c, 20, 5, false) })
	for _, name := range []string{"none", "P-1", "P-2"} {
		assert.Contains(t, out, name)
	}
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("RESULT", []string{"V_net = 0.0638", "ρ = 1435.51 kg/m³"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 6)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
}

func TestExportChart(t *testing.T) {
	dir := t.TempDir()

	name, err := ExportChart(sampleChart(), filepath.Join(dir, "nested", "profile.svg"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "profile.svg"), name)
	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	name, err = ExportChart(sampleChart(), filepath.Join(dir, "profile"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "profile.png"), name)
	_, err = os.Stat(name)
	assert.NoError(t, err)
}

func TestExportChartRejectsRaggedSeries(t *testing.T) {
	c := Chart{Series: []Series{{Name: "bad", X: []float64{0, 1}, Y: []float64{1}}}}
	_, err := ExportChart(c, filepath.Join(t.TempDir(), "bad.png"))
	assert.Error(t, err)
}
