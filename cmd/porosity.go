package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocomposite/internal/diagram"
	"github.com/alexiusacademia/gocomposite/internal/sweep"
	"github.com/spf13/cobra"
)

var porosityChart chartOptions

var porosityCmd = &cobra.Command{
	Use:   "porosity",
	Short: "Compare porosity models for one distribution law",
	Long: `Compare the Young's modulus through the thickness under every
porosity model, for a single distribution law (FU by default).

Porosity models:
  none  no attenuation
  P-1   E_p = E (1 - p cos(πz/h))        voids concentrated at the midplane
  P-2   E_p = E (1 - p (1 - cos(πz/h)))  voids concentrated at the surfaces

Examples:
  gocomposite porosity --factor 0.3
  gocomposite porosity -d FGO --factor 0.5 -o porosity.pdf`,
	RunE: runPorosity,
}

func init() {
	rootCmd.AddCommand(porosityCmd)
	addChartFlags(porosityCmd, &porosityChart)
}

func runPorosity(cmd *cobra.Command, args []string) error {
	cfg, err := loadPlate(cmd)
	if err != nil {
		return err
	}
	ds, _, err := cfg.Selections()
	if err != nil {
		return err
	}
	if len(ds) != 1 {
		return fmt.Errorf("porosity comparison needs a single distribution law, got %q", cfg.Distribution)
	}
	in, err := sweepInput(cfg)
	if err != nil {
		return err
	}

	outcomes, err := sweep.PorosityModels(in, ds[0], cfg.PorosityFactor)
	if err != nil {
		return err
	}

	printHeader("POROSITY MODEL COMPARISON")
	printPlateInputs(cfg, in.NetFraction)

	printSection(fmt.Sprintf("POROUS MODULUS, %s, p = %.3f (GPa):", ds[0].Name(), cfg.PorosityFactor))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Model\tMidplane\tSurface\tMean\n")
	fmt.Fprintf(w, "  ─────\t────────\t───────\t────\n")
	for _, o := range outcomes {
		mid, err := o.Porosity.EffectAt(0, cfg.Thickness, o.Factor)
		if err != nil {
			return err
		}
		surf, err := o.Porosity.EffectAt(cfg.Thickness/2, cfg.Thickness, o.Factor)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s\t×%.3f\t×%.3f\t%.3f\n", o.Porosity, mid, surf, o.MeanModulus)
	}
	w.Flush()
	fmt.Println()

	chart := diagram.Chart{
		Title:  "Porosity model comparison",
		XLabel: "z/h",
		YLabel: "Young's modulus (GPa)",
	}
	for _, o := range outcomes {
		chart.Series = append(chart.Series, profileSeries("Porosity: "+o.Porosity.String(), o.Result, cfg.Thickness, o.Result.PorousModulus))
	}
	return renderChart(chart, &porosityChart)
}

