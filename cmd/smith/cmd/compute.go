package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSmith/pkg/cxparse"
	"github.com/OpenTraceLab/OpenTraceSmith/pkg/txline"
)

var (
	computeZ0 string
	computeZL string
	computeBL string
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute line quantities for a terminated transmission line",
	Long: `Compute the reflection coefficients, standing wave ratio, input
impedance, and admittances of an ideal transmission line segment.

The load impedance accepts rectangular complex forms with i or j as the
imaginary unit (3+4i, 3-j4, (25-j10)); the electrical length accepts
radians as a decimal or a pi expression (1.5708, pi/4, 3*pi/8).

Examples:
  smith compute --zl 3+4j
  smith compute --z0 75 --zl "(25-j10)" --bl pi/4
  smith compute --zl 0 --bl pi/2            # Short at a quarter-wave point`,
	RunE: runCompute,
}

func init() {
	rootCmd.AddCommand(computeCmd)

	computeCmd.Flags().StringVar(&computeZ0, "z0", "50",
		"characteristic impedance in ohms (positive real)")
	computeCmd.Flags().StringVar(&computeZL, "zl", "",
		"load impedance, e.g. 3+4j or (25-j10)")
	computeCmd.Flags().StringVar(&computeBL, "bl", "0",
		"electrical length in radians, e.g. 0.7854 or pi/4")
	computeCmd.MarkFlagRequired("zl")
}

func runCompute(cmd *cobra.Command, args []string) error {
	in, err := parseLineFlags(computeZ0, computeZL, computeBL)
	if err != nil {
		return err
	}
	printResult(in, txline.Analyze(in))
	return nil
}

// parseLineFlags turns the three raw flag strings into a validated Input.
func parseLineFlags(z0Flag, zlFlag, blFlag string) (txline.Input, error) {
	z0, err := cxparse.ParseReal(z0Flag)
	if err != nil {
		return txline.Input{}, fmt.Errorf("invalid --z0: %w", err)
	}
	zl, err := cxparse.ParseComplex(zlFlag)
	if err != nil {
		return txline.Input{}, fmt.Errorf("invalid --zl: %w", err)
	}
	bl, err := cxparse.ParseReal(blFlag)
	if err != nil {
		return txline.Input{}, fmt.Errorf("invalid --bl: %w", err)
	}
	in := txline.Input{Z0: complex(z0, 0), ZL: zl, BetaL: bl}
	if err := in.Validate(); err != nil {
		return txline.Input{}, err
	}
	return in, nil
}

func printResult(in txline.Input, res txline.Result) {
	if verbose {
		fmt.Printf("Z0 = %s ohm, ZL = %s ohm, betaL = %g rad\n\n",
			txline.FormatRect(in.Z0), txline.FormatRect(in.ZL), in.BetaL)
	}
	printQuantity("Gamma_L ", res.GammaLoad, txline.FormatPolar)
	if res.GammaLoad.Defined() {
		fmt.Printf("SWR      = %s\n", txline.FormatSWR(res.SWR))
	} else {
		fmt.Printf("SWR      = undefined (%v)\n", res.GammaLoad.Err)
	}
	printQuantity("Zin     ", res.Zin, txline.FormatRect)
	printQuantity("Gamma_in", res.GammaIn, txline.FormatPolar)
	printQuantity("Y_L     ", res.YLoad, txline.FormatRect)
	printQuantity("Y_in    ", res.YIn, txline.FormatRect)
}

func printQuantity(label string, q txline.Quantity, format func(complex128) string) {
	if q.Defined() {
		fmt.Printf("%s = %s\n", label, format(q.Value))
	} else {
		fmt.Printf("%s = undefined (%v)\n", label, q.Err)
	}
}
