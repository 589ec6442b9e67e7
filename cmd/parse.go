package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/xhit/go-str2duration/v2"

	"github.com/jparise/timespan/internal/report"
	"github.com/jparise/timespan/internal/timeparse"
)

// parsed is the JSON form of one parse result.
type parsed struct {
	Input    string           `json:"input"`
	Seconds  int64            `json:"seconds"`
	Days     int64            `json:"days"`
	Hours    int64            `json:"hours"`
	Minutes  int64            `json:"minutes"`
	Secs     int64            `json:"secs"`
	Duration timeparse.Period `json:"duration"`
	Interval string           `json:"interval"`
}

func newParseCmd(g *globalOptions) *cobra.Command {
	var (
		format string
		goStd  bool
	)

	cmd := &cobra.Command{
		Use:   "parse <duration>...",
		Short: "Show the seconds and breakdown of durations",
		Long: `Parse each duration and show its total seconds, its day/hour/minute/second
breakdown and its canonical text.

Output formats:
  text      a table (default)
  seconds   total seconds, one per line
  sql       "interval <N> second", one per line
  json      an array of objects

With --go, durations use Go syntax instead ("1h30m", "2w3d", "1.5h").
Sub-second precision is dropped.

Examples:
  timespan parse "2h 30m 15s" "1y 6mo 15d"
  timespan parse --format seconds 90
  timespan parse --go 1h30m45s`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "text", "seconds", "sql", "json":
				return nil
			default:
				return fmt.Errorf("invalid format %q: must be one of text, seconds, sql, or json", format)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]report.Item, 0, len(args))
			for _, arg := range args {
				p, err := parseArg(g.table, arg, goStd)
				if err != nil {
					return err
				}
				items = append(items, report.Item{Name: arg, Period: p})
			}
			return writeParsed(g.out, cmd.OutOrStdout(), format, items)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text",
		"output format: text, seconds, sql, json")
	cmd.Flags().BoolVar(&goStd, "go", false,
		"parse Go-style durations (e.g., 1h30m, 2w)")

	return cmd
}

func parseArg(table timeparse.UnitTable, arg string, goStd bool) (timeparse.Period, error) {
	if !goStd {
		return table.Parse(arg)
	}
	d, err := str2duration.ParseDuration(arg)
	if err != nil {
		return timeparse.Period{}, fmt.Errorf("invalid Go duration %q: %w", arg, err)
	}
	if d < 0 {
		return timeparse.Period{}, fmt.Errorf("invalid Go duration %q: negative durations are not supported", arg)
	}
	return timeparse.FromStd(d), nil
}

func writeParsed(out *report.Output, w io.Writer, format string, items []report.Item) error {
	switch format {
	case "seconds":
		for _, item := range items {
			out.Println(fmt.Sprint(item.Period.TotalSeconds()))
		}
	case "sql":
		for _, item := range items {
			out.Println(item.Period.SQLInterval())
		}
	case "json":
		results := make([]parsed, 0, len(items))
		for _, item := range items {
			b := item.Period.Breakdown()
			results = append(results, parsed{
				Input:    item.Name,
				Seconds:  item.Period.TotalSeconds(),
				Days:     b.Days,
				Hours:    b.Hours,
				Minutes:  b.Minutes,
				Secs:     b.Seconds,
				Duration: item.Period,
				Interval: item.Period.SQLInterval(),
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	default:
		return out.Periods(items)
	}
	return nil
}
