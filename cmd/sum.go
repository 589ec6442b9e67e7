package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jparise/timespan/internal/report"
)

func newSumCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sum <[name=]duration>...",
		Short: "Add up durations",
		Long: `Add up durations and report the total, average, longest and shortest.

Each argument is a duration, optionally prefixed with a name and "=".
When several items share the longest or shortest duration, the first one
is reported.

Examples:
  timespan sum 45m "1h 20m" 30m
  timespan sum backup=45m analysis="1h 20m" cleanup=30m`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := g.parseItems(args)
			if err != nil {
				return err
			}
			summary := report.Summarize(items)
			return g.out.Items(items, &summary)
		},
	}
}
