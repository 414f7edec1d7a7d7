package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSmith/pkg/smithchart"
	"github.com/OpenTraceLab/OpenTraceSmith/pkg/smithchart/render"
	"github.com/OpenTraceLab/OpenTraceSmith/pkg/txline"
)

var (
	chartZ0         string
	chartZL         string
	chartBL         string
	chartOut        string
	chartTitle      string
	chartResolution int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the line state on a Smith chart",
	Long: `Render the unit circle, the SWR circle, and the impedance and
admittance points of a terminated transmission line to an image file.
The format follows the output extension (.svg, .png, .pdf).

Examples:
  smith chart --zl 3+4j -o chart.svg
  smith chart --z0 75 --zl "(25-j10)" --bl pi/4 -o chart.png --resolution 360`,
	RunE: runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().StringVar(&chartZ0, "z0", "50",
		"characteristic impedance in ohms (positive real)")
	chartCmd.Flags().StringVar(&chartZL, "zl", "",
		"load impedance, e.g. 3+4j or (25-j10)")
	chartCmd.Flags().StringVar(&chartBL, "bl", "0",
		"electrical length in radians, e.g. 0.7854 or pi/4")
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "smith.svg",
		"output file; extension selects the format")
	chartCmd.Flags().StringVar(&chartTitle, "title", "",
		"chart title (default: derived from the inputs)")
	chartCmd.Flags().IntVar(&chartResolution, "resolution", smithchart.DefaultResolution,
		"number of samples per circle")
	chartCmd.MarkFlagRequired("zl")
}

func runChart(cmd *cobra.Command, args []string) error {
	in, err := parseLineFlags(chartZ0, chartZL, chartBL)
	if err != nil {
		return err
	}
	res := txline.Analyze(in)
	scene := smithchart.BuildScene(res, chartResolution)

	title := chartTitle
	if title == "" {
		title = fmt.Sprintf("Z0=%s  ZL=%s  betaL=%g rad",
			txline.FormatRect(in.Z0), txline.FormatRect(in.ZL), in.BetaL)
	}
	if err := render.Save(scene, chartOut, render.Options{Title: title}); err != nil {
		return err
	}
	if verbose {
		fmt.Printf("Wrote %d primitives to %s\n", len(scene), chartOut)
		printResult(in, res)
	}
	return nil
}
