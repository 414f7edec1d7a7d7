package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSmith/pkg/cxparse"
	"github.com/OpenTraceLab/OpenTraceSmith/pkg/txline"
)

var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Parse a complex literal or radian expression",
	Long: `Parse one expression the way the compute and chart commands read
their flags, and print the value in rectangular and polar form. Useful for
checking how an input will be interpreted.

Examples:
  smith parse "3-j4"
  smith parse "(25-j10)"
  smith parse "3*pi/8"`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	c, err := cxparse.ParseComplex(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("rectangular: %s\n", txline.FormatRect(c))
	fmt.Printf("polar:       %s\n", txline.FormatPolar(c))
	return nil
}
