package cmd

import (
	"github.com/spf13/cobra"
)

func newRatioCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ratio <target> <actual>",
		Short: "Grade an actual runtime against its target",
		Long: `Compute actual/target and grade it:
  EXCELLENT        ratio <= 0.8
  GOOD             ratio <= 1.0
  ACCEPTABLE       ratio <= 1.5
  NEEDS ATTENTION  ratio > 1.5

A zero target is reported as NO TARGET.

Examples:
  timespan ratio 30s 25s
  timespan ratio 5m "7m 30s"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := g.table.Parse(args[0])
			if err != nil {
				return err
			}
			actual, err := g.table.Parse(args[1])
			if err != nil {
				return err
			}
			g.out.Rating(target, actual)
			return nil
		},
	}
}
