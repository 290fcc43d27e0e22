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
	fractionSweep bool
	fractionMaxV  float64
	fractionChart chartOptions
)

var fractionCmd = &cobra.Command{
	Use:   "fraction",
	Short: "Convert mass fraction to volume fraction and effective density",
	Long: `Calculate the net and average reinforcement volume fractions from the
mass fraction, and the effective density of the composite.

  V_net = w_r / (w_r + (ρ_r/ρ_m)(1 - w_r))
  V_avg = V_net / (V_net + (ρ_r/ρ_m)(1 - V_net))
  ρ     = V_net ρ_r + (1 - V_net) ρ_m

V_avg is the amplitude used by the through-thickness distribution laws.
The density is not corrected for porosity.

Examples:
  # Reference epoxy/graphene-oxide plate
  gocomposite fraction

  # 25% mass fraction, density curve up to V = 0.6
  gocomposite fraction --wr 0.25 --sweep

  # Export the density curve
  gocomposite fraction --sweep -o density.png`,
	RunE: runFraction,
}

func init() {
	rootCmd.AddCommand(fractionCmd)

	fractionCmd.Flags().BoolVar(&fractionSweep, "sweep", false, "Show effective density as a function of volume fraction")
	fractionCmd.Flags().Float64Var(&fractionMaxV, "v-max", material.MaxSweepFraction, "Upper volume fraction of the density curve")
	addChartFlags(fractionCmd, &fractionChart)
}

func runFraction(cmd *cobra.Command, args []string) error {
	cfg, err := loadPlate(cmd)
	if err != nil {
		return err
	}

	rhoR, rhoM := cfg.Material.RhoR, cfg.Material.RhoM
	vNet, err := micromech.NetVolumeFraction(cfg.MassFraction, rhoR, rhoM)
	if err != nil {
		return err
	}
	vAvg, err := micromech.AverageVolumeFraction(vNet, rhoR, rhoM)
	if err != nil {
		return err
	}
	rho, err := micromech.EffectiveDensity(vNet, rhoR, rhoM)
	if err != nil {
		return err
	}

	printHeader("VOLUME FRACTION AND EFFECTIVE DENSITY")

	printSection("INPUT DATA:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Mass fraction (w_r):\t%.4f\n", cfg.MassFraction)
	fmt.Fprintf(w, "  Reinforcement density (ρ_r):\t%.1f kg/m³\n", rhoR)
	fmt.Fprintf(w, "  Matrix density (ρ_m):\t%.1f kg/m³\n", rhoM)
	fmt.Fprintf(w, "  Density ratio (ρ_r/ρ_m):\t%.4f\n", rhoR/rhoM)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("RESULTS", []string{
		fmt.Sprintf("Net volume fraction      V_net = %.4f", vNet),
		fmt.Sprintf("Average volume fraction  V_avg = %.4f", vAvg),
		fmt.Sprintf("Effective density        ρ     = %.2f kg/m³", rho),
	}))
	fmt.Println()

	if !fractionSweep {
		return nil
	}

	curve, err := sweep.Density(rhoR, rhoM, fractionMaxV, cfg.GridPoints)
	if err != nil {
		return err
	}
	return renderChart(diagram.Chart{
		Title:  "Effective density vs volume fraction",
		XLabel: "Volume fraction",
		YLabel: "Effective density (kg/m³)",
		Series: []diagram.Series{{Name: "Effective density", X: curve.X, Y: curve.Y}},
	}, &fractionChart)
}
