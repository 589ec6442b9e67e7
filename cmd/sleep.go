package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jparise/timespan/internal/logging"
	"github.com/jparise/timespan/internal/timeparse"
)

func newSleepCmd(g *globalOptions) *cobra.Command {
	var limit timeparse.Period

	cmd := &cobra.Command{
		Use:   "sleep <duration>",
		Short: "Wait for a duration",
		Long: `Wait for a duration, like sleep(1) with human-readable units.

Durations above the sleep limit (the sleep_limit setting, one day unless
configured) are refused. Interrupting the command stops the wait.

Examples:
  timespan sleep "1m 30s"
  timespan sleep --limit 1mo 14d`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			p, err := g.table.Parse(args[0])
			if err != nil {
				return err
			}

			ceiling := g.settings.SleepLimit
			if cmd.Flags().Changed("limit") {
				ceiling = limit
			}
			if p.Greater(ceiling) {
				return fmt.Errorf("duration %s exceeds the sleep limit of %s", p, ceiling)
			}

			logging.FromContext(ctx).Debug("sleeping", "duration", p.String(), "seconds", p.TotalSeconds())

			timer := time.NewTimer(p.Std())
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
				return nil
			}
		},
	}

	// The flag parses with the default units; custom units are only known
	// once the root command has loaded its settings.
	cmd.Flags().Var(timeparse.Value{Target: &limit}, "limit",
		"maximum duration to sleep (default: sleep_limit setting)")

	return cmd
}
