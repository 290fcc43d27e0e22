package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gocomposite/internal/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gocomposite",
	Short: "Functionally graded composite plate property calculator",
	Long: `gocomposite - Go Functionally Graded Composite Calculator

A CLI tool for the effective properties of fiber-reinforced composite
plates whose reinforcement content varies through the thickness.

This tool computes:
  - Net and average reinforcement volume fraction from the mass fraction
  - Effective density (rule of mixtures)
  - Young's modulus through the thickness (Halpin-Tsai mixing rule)
    for the FU, FGV, FGA, FGO and FGX distribution laws
  - Porosity attenuation with the P-1 and P-2 cosine models

Inputs come from flags, an optional --config file (.ini or .json),
and built-in reference values for an epoxy/graphene-oxide plate.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocomposite v%-43s║\n", version.Version)
		fmt.Println("  ║   Go Functionally Graded Composite Calculator             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Effective modulus and density of fiber-reinforced plates")
		fmt.Println("  with graded reinforcement and porosity.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Mass to volume fraction conversion and effective density")
		fmt.Println("    • Through-thickness modulus for five distribution laws")
		fmt.Println("    • Porosity model comparison (P-1, P-2)")
		fmt.Println("    • Porosity factor sweeps and governing combination")
		fmt.Println("    • ASCII charts and png/svg/pdf export")
		fmt.Println()
		fmt.Println("  Use 'gocomposite --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Plate definition file (.ini or .json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	addPlateFlags(rootCmd)
}

func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.WarnLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}
