package cmd

import (
	"fmt"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jparise/timespan/internal/scan"
)

func newScanCmd(g *globalOptions) *cobra.Command {
	var (
		excludes   []string
		keys       []string
		ignoreCase bool
		jobs       int
		check      bool
	)

	cmd := &cobra.Command{
		Use:   "scan [<pattern>] [<dir>]",
		Short: "Find duration settings in configuration files",
		Long: `Find duration settings in configuration files and show their values.

<pattern> is a glob pattern matched against paths relative to <dir>:
  *              Match any characters (e.g., "*.conf")
  **             Match across directories (e.g., "**/*.yaml")
  ?              Match single character (e.g., "app?.env")
  [...]          Match character class (e.g., "app[0-9].conf")
  {...}          Match alternatives (e.g., "*.{yaml,yml}")

<pattern> defaults to every .conf, .cfg, .env, .ini, .properties, .yaml and
.yml file. <dir> defaults to the current directory.

key=value files and YAML files are understood. Nested YAML keys are joined
with "." (e.g., "server.timeouts.read"). Without --keys, any value that
starts with a digit is treated as a duration.

Examples:
  timespan scan
  timespan scan "**/*.yaml" ./deploy
  timespan scan -k "*timeout*" -k "*interval*" -E "vendor/**"
  timespan scan --check "*.conf" /etc/myapp`,
		Args: cobra.MaximumNArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("jobs") {
				jobs = g.settings.Jobs
			}
			if jobs < 1 || jobs > 100 {
				return fmt.Errorf("--jobs must be between 1 and 100, got %d", jobs)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pattern, dir := scan.DefaultPattern, "."
			if len(args) > 0 && args[0] != "" {
				pattern = args[0]
			}
			if len(args) > 1 {
				dir = args[1]
			}

			info, err := os.Stat(dir)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}

			opts := &scan.Options{
				Pattern:    pattern,
				Excludes:   excludes,
				Keys:       keys,
				IgnoreCase: ignoreCase,
				Table:      g.table,
				Jobs:       jobs,
			}
			result, err := scan.Run(ctx, os.DirFS(dir), opts)
			if result != nil {
				for _, name := range slices.Sorted(maps.Keys(result.Errors)) {
					g.out.Warningf("%s: %v", name, result.Errors[name])
				}
			}
			if err != nil {
				return err
			}

			if len(result.Files) == 0 {
				g.out.Infof("no files match %q in %s", pattern, dir)
				return nil
			}
			if err := g.out.Entries(result.Entries); err != nil {
				return err
			}

			if invalid := result.Invalid(); check && len(invalid) > 0 {
				return fmt.Errorf("found %d invalid duration(s)", len(invalid))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&excludes, "exclude", "E", []string{},
		"exclude patterns (can be specified multiple times)")
	cmd.Flags().StringSliceVarP(&keys, "keys", "k", []string{},
		"only report keys matching these patterns (can be specified multiple times)")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false,
		"case-insensitive key matching")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0,
		"maximum concurrent file reads (default: jobs setting)")
	cmd.Flags().BoolVar(&check, "check", false,
		"exit with an error if any value fails to parse")

	return cmd
}
