package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocomposite/internal/diagram"
	"github.com/alexiusacademia/gocomposite/internal/material"
	"github.com/alexiusacademia/gocomposite/internal/micromech"
	"github.com/alexiusacademia/gocomposite/internal/sweep"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Material
	plateEm   float64
	plateRhoM float64
	plateEr   float64
	plateRhoR float64
	plateDr   float64
	plateHr   float64

	// Loading
	plateWr        float64
	plateThickness float64
	plateFactor    float64
	platePoints    int

	// Selections
	plateDistribution string
	platePorosity     string
)

func addPlateFlags(c *cobra.Command) {
	d := material.DefaultConfig()
	f := c.PersistentFlags()

	// Material flags
	f.Float64Var(&plateEm, "e-m", d.Material.Em, "Matrix Young's modulus E_m (GPa)")
	f.Float64Var(&plateRhoM, "rho-m", d.Material.RhoM, "Matrix density ρ_m (kg/m³)")
	f.Float64Var(&plateEr, "e-r", d.Material.Er, "Reinforcement Young's modulus E_r (GPa)")
	f.Float64Var(&plateRhoR, "rho-r", d.Material.RhoR, "Reinforcement density ρ_r (kg/m³)")
	f.Float64Var(&plateDr, "d-r", d.Material.Dr, "Reinforcement mean lateral size d_r (m)")
	f.Float64Var(&plateHr, "h-r", d.Material.Hr, "Reinforcement mean thickness h_r (m)")

	// Loading flags
	f.Float64VarP(&plateWr, "wr", "w", d.MassFraction, "Reinforcement mass fraction w_r (0-1)")
	f.Float64Var(&plateThickness, "thickness", d.Thickness, "Plate thickness h (m)")
	f.Float64VarP(&plateFactor, "factor", "p", d.PorosityFactor, "Porosity factor p (0-1)")
	f.IntVarP(&platePoints, "points", "n", d.GridPoints, "Number of through-thickness points")

	// Selection flags
	f.StringVarP(&plateDistribution, "distribution", "d", d.Distribution, "Distribution law: FU, FGV, FGA, FGO, FGX or all")
	f.StringVar(&platePorosity, "porosity", d.Porosity, "Porosity model: none, P-1, P-2")
}

// loadPlate merges defaults, the config file and explicitly set flags
func loadPlate(c *cobra.Command) (*material.Config, error) {
	cfg := material.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = material.LoadFromFile(configFile); err != nil {
			return nil, err
		}
		log.WithField("file", configFile).Debug("plate definition loaded")
	}

	flags := c.Flags()
	overrides := []struct {
		name string
		set  func()
	}{
		{"e-m", func() { cfg.Material.Em = plateEm }},
		{"rho-m", func() { cfg.Material.RhoM = plateRhoM }},
		{"e-r", func() { cfg.Material.Er = plateEr }},
		{"rho-r", func() { cfg.Material.RhoR = plateRhoR }},
		{"d-r", func() { cfg.Material.Dr = plateDr }},
		{"h-r", func() { cfg.Material.Hr = plateHr }},
		{"wr", func() { cfg.MassFraction = plateWr }},
		{"thickness", func() { cfg.Thickness = plateThickness }},
		{"factor", func() { cfg.PorosityFactor = plateFactor }},
		{"points", func() { cfg.GridPoints = platePoints }},
		{"distribution", func() { cfg.Distribution = plateDistribution }},
		{"porosity", func() { cfg.Porosity = platePorosity }},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			o.set()
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"E_m":          cfg.Material.Em,
		"rho_m":        cfg.Material.RhoM,
		"E_r":          cfg.Material.Er,
		"rho_r":        cfg.Material.RhoR,
		"w_r":          cfg.MassFraction,
		"h":            cfg.Thickness,
		"p":            cfg.PorosityFactor,
		"distribution": cfg.Distribution,
		"porosity":     cfg.Porosity,
	}).Debug("plate inputs")

	return cfg, nil
}

// sweepInput converts a plate definition into the shared input of a sweep
func sweepInput(cfg *material.Config) (sweep.Input, error) {
	grid, err := cfg.Grid()
	if err != nil {
		return sweep.Input{}, err
	}
	vNet, err := cfg.NetVolumeFraction()
	if err != nil {
		return sweep.Input{}, err
	}
	return sweep.Input{
		Material:    cfg.Material,
		Thickness:   cfg.Thickness,
		NetFraction: vNet,
		Grid:        grid,
	}, nil
}

func printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printSection(title string) {
	fmt.Println(title)
	fmt.Println("───────────────────────────────────────────────────────────────")
}

func printPlateInputs(cfg *material.Config, vNet float64) {
	printSection("INPUT DATA:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if cfg.Name != "" {
		fmt.Fprintf(w, "  Plate:\t%s\n", cfg.Name)
	}
	fmt.Fprintf(w, "  Matrix modulus (E_m):\t%.4g GPa\n", cfg.Material.Em)
	fmt.Fprintf(w, "  Matrix density (ρ_m):\t%.1f kg/m³\n", cfg.Material.RhoM)
	fmt.Fprintf(w, "  Reinforcement modulus (E_r):\t%.4g GPa\n", cfg.Material.Er)
	fmt.Fprintf(w, "  Reinforcement density (ρ_r):\t%.1f kg/m³\n", cfg.Material.RhoR)
	fmt.Fprintf(w, "  Reinforcement size (d_r):\t%.3g m\n", cfg.Material.Dr)
	fmt.Fprintf(w, "  Reinforcement thickness (h_r):\t%.3g m\n", cfg.Material.Hr)
	fmt.Fprintf(w, "  Mass fraction (w_r):\t%.4f\n", cfg.MassFraction)
	fmt.Fprintf(w, "  Net volume fraction (V_net):\t%.4f\n", vNet)
	fmt.Fprintf(w, "  Plate thickness (h):\t%.4g m\n", cfg.Thickness)
	w.Flush()
	fmt.Println()
}

// output options shared by the charting commands
type chartOptions struct {
	table  bool
	plot   bool
	color  bool
	width  int
	height int
	output string
}

func addChartFlags(c *cobra.Command, o *chartOptions) {
	c.Flags().BoolVar(&o.table, "table", false, "Print the sampled values as a table")
	c.Flags().BoolVar(&o.plot, "plot", true, "Show an ASCII chart")
	c.Flags().BoolVar(&o.color, "color", false, "Color the ASCII chart series")
	c.Flags().IntVar(&o.width, "width", 60, "ASCII chart width (columns)")
	c.Flags().IntVar(&o.height, "height", 15, "ASCII chart height (rows)")
	c.Flags().StringVarP(&o.output, "output", "o", "", "Export chart to file (png, svg, pdf)")
}

func renderChart(chart diagram.Chart, o *chartOptions) error {
	if o.table {
		printChartTable(chart, 11)
	}
	if o.plot {
		fmt.Println(diagram.DrawASCIIChart(chart, o.width, o.height, o.color))
	}
	if o.output != "" {
		name, err := diagram.ExportChart(chart, o.output)
		if err != nil {
			return fmt.Errorf("exporting chart: %w", err)
		}
		fmt.Printf("Chart exported to: %s\n", name)
	}
	return nil
}

// printChartTable prints about rows samples of every series, sharing the X of the first
func printChartTable(chart diagram.Chart, rows int) {
	if len(chart.Series) == 0 {
		return
	}
	xs := chart.Series[0].X
	step := 1
	if len(xs) > rows {
		step = (len(xs) - 1) / (rows - 1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  %s\t", chart.XLabel)
	for _, s := range chart.Series {
		fmt.Fprintf(w, "%s\t", s.Name)
	}
	fmt.Fprintln(w)
	for i := 0; i < len(xs); i += step {
		printTableRow(w, chart, i)
	}
	if (len(xs)-1)%step != 0 {
		printTableRow(w, chart, len(xs)-1)
	}
	w.Flush()
	fmt.Println()
}

func printTableRow(w *tabwriter.Writer, chart diagram.Chart, i int) {
	fmt.Fprintf(w, "  %.3f\t", chart.Series[0].X[i])
	for _, s := range chart.Series {
		fmt.Fprintf(w, "%.4f\t", s.Y[i])
	}
	fmt.Fprintln(w)
}

// profileSeries maps a sweep outcome to a chart series against z/h
func profileSeries(name string, res *micromech.Result, h float64, y []float64) diagram.Series {
	xs := make([]float64, len(res.Z))
	for i, z := range res.Z {
		xs[i] = z / h
	}
	return diagram.Series{Name: name, X: xs, Y: y}
}
