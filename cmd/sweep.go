package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gocomposite/internal/diagram"
	"github.com/alexiusacademia/gocomposite/internal/material"
	"github.com/alexiusacademia/gocomposite/internal/micromech"
	"github.com/alexiusacademia/gocomposite/internal/sweep"
	"github.com/spf13/cobra"
)

var (
	sweepPoints  int
	sweepShowAll bool
	sweepChart   chartOptions
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Mean modulus as a function of the porosity factor",
	Long: `Calculate the through-thickness mean of the porous Young's modulus
for porosity factors from 0 to 1, and find the stiffest combination of
distribution law and porosity model at the selected porosity factor.

Examples:
  # FU law, P-1 model, 50 factors
  gocomposite sweep --porosity P-1

  # Show every combination
  gocomposite sweep --porosity P-2 --all

  # Export the curve
  gocomposite sweep --porosity P-1 -o sweep.png`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().IntVar(&sweepPoints, "factors", material.FactorSweepPoints, "Number of porosity factors sampled on [0, 1]")
	sweepCmd.Flags().BoolVarP(&sweepShowAll, "all", "a", false, "Show all distribution/porosity combinations")
	addChartFlags(sweepCmd, &sweepChart)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadPlate(cmd)
	if err != nil {
		return err
	}
	ds, pm, err := cfg.Selections()
	if err != nil {
		return err
	}
	in, err := sweepInput(cfg)
	if err != nil {
		return err
	}

	cases := sweep.Combinations(micromech.Distributions(), micromech.PorosityModels(), []float64{cfg.PorosityFactor})
	outcomes, err := sweep.Run(in, cases)
	if err != nil {
		return err
	}
	governing, ok := sweep.Governing(outcomes)

	printHeader("POROSITY FACTOR SWEEP")
	printPlateInputs(cfg, in.NetFraction)

	if sweepShowAll {
		printSection(fmt.Sprintf("COMBINATIONS AT p = %.3f:", cfg.PorosityFactor))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tLaw\tModel\tMean E (GPa)\n")
		fmt.Fprintf(w, "  ─\t───\t─────\t────────────\n")
		for _, o := range outcomes {
			marker := ""
			if ok && o.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%.3f%s\n", o.ID, o.Distribution, o.Porosity, o.MeanModulus, marker)
		}
		w.Flush()
		fmt.Println()
	}

	printSection("RESULT:")
	if ok {
		fmt.Printf("  Stiffest combination: %s with %s\n", governing.Distribution.Name(), governing.Porosity)
		fmt.Println()
		fmt.Printf("  ╔═══════════════════════════════════════╗\n")
		fmt.Printf("  ║  MEAN MODULUS = %.3f GPa  \n", governing.MeanModulus)
		fmt.Printf("  ╚═══════════════════════════════════════╝\n")
	} else {
		fmt.Println("  No combination has a finite mean modulus.")
	}
	fmt.Println()

	chart := diagram.Chart{
		Title:  "Impact of the porosity factor on the global Young's modulus",
		XLabel: "Porosity factor",
		YLabel: "Global Young's modulus (GPa)",
	}
	for _, d := range ds {
		curve, err := sweep.PorosityFactors(in, d, pm, sweepPoints)
		if err != nil {
			return err
		}
		chart.Series = append(chart.Series, diagram.Series{
			Name: fmt.Sprintf("%s / %s", d, pm),
			X:    curve.X,
			Y:    curve.Y,
		})
	}
	return renderChart(chart, &sweepChart)
}
