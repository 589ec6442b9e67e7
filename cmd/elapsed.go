package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jparise/timespan/internal/report"
	"github.com/jparise/timespan/internal/timeparse"
)

// now is replaced in tests.
var now = time.Now

func newElapsedCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "elapsed <start> [<end>]",
		Short: "Show the duration between two timestamps",
		Long: `Show the whole seconds elapsed between two timestamps. <end> defaults to
the current time.

Timestamps can be:
  YYYY-MM-DD            midnight UTC
  YYYY-MM-DD HH:MM:SS   UTC
  RFC3339               e.g. 2018-10-27T10:00:00-07:00

Examples:
  timespan elapsed 2024-01-01
  timespan elapsed "2024-03-01 08:00:00" "2024-03-01 17:30:00"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := timeparse.ParseTime(args[0])
			if err != nil {
				return err
			}
			end := now().UTC()
			if len(args) == 2 {
				end, err = timeparse.ParseTime(args[1])
				if err != nil {
					return err
				}
			}

			p, err := timeparse.Between(start, end)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("%s..%s", start.Format(time.RFC3339), end.Format(time.RFC3339))
			return g.out.Periods([]report.Item{{Name: name, Period: p}})
		},
	}
}
