package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "smith",
	Short: "Transmission line calculator and Smith chart renderer",
	Long: `OpenTraceSmith (smith) computes the electrical behavior of a uniform
transmission line segment from its characteristic impedance, complex load,
and electrical length, and plots the result on the reflection-coefficient
plane.

Examples:
  smith compute --z0 50 --zl 3+4j --bl 0          # Derived line quantities
  smith chart --z0 50 --zl "(25-j10)" --bl pi/4 -o chart.svg
  smith parse "3-j4"                              # Check a complex literal`,
	Version: "0.9.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
