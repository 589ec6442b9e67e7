package cmd

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/jparise/timespan/internal/report"
	"github.com/jparise/timespan/internal/timeparse"
)

func newSortCmd(g *globalOptions) *cobra.Command {
	var reverse bool

	cmd := &cobra.Command{
		Use:   "sort [<[name=]duration>...]",
		Short: "Sort durations from shortest to longest",
		Long: `Sort durations from shortest to longest. Items with equal durations keep
their input order.

Durations are read one per line from standard input when no arguments are
given.

Examples:
  timespan sort 1h 45m 2h 30m
  timespan sort --reverse build=12m test=4m deploy=1m30s
  grep -o 'took .*' build.log | cut -d' ' -f2- | timespan sort`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				args = lines
			}

			items, err := g.parseItems(args)
			if err != nil {
				return err
			}
			sortItems(items, reverse)
			return g.out.Items(items, nil)
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false,
		"sort from longest to shortest")

	return cmd
}

func sortItems(items []report.Item, reverse bool) {
	slices.SortStableFunc(items, func(a, b report.Item) int {
		if reverse {
			return timeparse.Compare(b.Period, a.Period)
		}
		return timeparse.Compare(a.Period, b.Period)
	})
}
