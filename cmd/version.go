package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocomposite/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocomposite",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gocomposite v%s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
		fmt.Println("Functionally Graded Composite Calculator")
		fmt.Println("Halpin-Tsai mixing rule with cosine porosity models")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
