package cmd

import (
	"github.com/spf13/cobra"
)

func newSQLCmd(g *globalOptions) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "sql <duration>...",
		Short: "Render durations as SQL interval expressions",
		Long: `Render each duration as "interval <N> second".

With --query, the interval is appended to the given statement prefix and the
statement is terminated with a semicolon.

Examples:
  timespan sql 1h
  timespan sql --query "SELECT * FROM logs WHERE created_at > NOW() - " 24h`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				p, err := g.table.Parse(arg)
				if err != nil {
					return err
				}
				if query == "" {
					g.out.Println(p.SQLInterval())
				} else {
					g.out.Println(query + p.SQLInterval() + ";")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "",
		"statement prefix the interval is appended to")

	return cmd
}
