package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/spf13/cobra"

	"github.com/jparise/timespan/internal/config"
	"github.com/jparise/timespan/internal/logging"
	"github.com/jparise/timespan/internal/report"
	"github.com/jparise/timespan/internal/timeparse"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var version = "dev"

// globalOptions holds the persistent flags and the state every subcommand
// shares once the root command has loaded its configuration.
type globalOptions struct {
	configFile  string
	color       colorMode
	unitsFile   string
	defaultUnit string
	logLevel    string
	logFormat   string

	// searchDirs is where config.yaml is looked up when --config is empty.
	searchDirs []string

	settings *config.Settings
	table    timeparse.UnitTable
	out      *report.Output
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{
		color:      colorAuto,
		searchDirs: config.DefaultSearchDirs(),
	}

	cmd := &cobra.Command{
		Use:   "timespan",
		Short: "Parse, format and compare human-readable durations",
		Long: `timespan converts human-readable durations such as "2h 30m 15s" or
"1y 6mo 15d" into exact seconds and back.

A duration is a sequence of <number><unit> terms, optionally separated by
whitespace. Repeated units add up and a number without a unit is measured in
the default unit (minutes unless configured otherwise):
  s, seconds     1 second
  m, minutes     60 seconds
  h, hours       60 minutes
  d, days        24 hours
  mo, months     28 days
  y, years       365 days

Settings are read from config.yaml in the user config directory, from
TIMESPAN_* environment variables, and from a .env file.

Examples:
  timespan parse "2h 30m 15s"
  timespan parse --format sql 1h
  timespan sum backup=45m analysis="1h 20m" cleanup=30m
  timespan ratio 5m "7m 30s"
  timespan scan "**/*.yaml" ./deploy`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&g.configFile, "config", "",
		"config file (default: <user config dir>/timespan/config.yaml)")
	flags.Var(&g.color, "color",
		"colorize output: auto, always, never")
	flags.StringVar(&g.unitsFile, "units", "",
		"YAML file with additional or replacement units")
	flags.StringVar(&g.defaultUnit, "default-unit", "",
		"unit for numbers without one (e.g., s, h)")
	flags.StringVar(&g.logLevel, "log-level", "",
		"log level: debug, info, warn, error")
	flags.StringVar(&g.logFormat, "log-format", "",
		"log format: text, json")

	cmd.AddCommand(
		newParseCmd(g),
		newSumCmd(g),
		newSortCmd(g),
		newSQLCmd(g),
		newRatioCmd(g),
		newElapsedCmd(g),
		newSleepCmd(g),
		newScanCmd(g),
	)

	return cmd
}

// setup loads settings, applies flag overrides and builds the shared unit
// table, logger and output.
func (g *globalOptions) setup(cmd *cobra.Command) error {
	overrides := make(map[string]string)
	flags := cmd.Flags()
	for flag, key := range map[string]string{
		"color":        "color",
		"units":        "units_file",
		"default-unit": "default_unit",
		"log-level":    "log_level",
		"log-format":   "log_format",
	} {
		if flags.Changed(flag) {
			overrides[key] = flags.Lookup(flag).Value.String()
		}
	}

	settings, err := config.Load(config.LoadOptions{
		ConfigFile: g.configFile,
		SearchDirs: g.searchDirs,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}

	var color colorMode
	if err := color.Set(settings.Color); err != nil {
		return fmt.Errorf("invalid color setting %q: %w", settings.Color, err)
	}

	log, err := logging.New(cmd.ErrOrStderr(), settings.LogLevel, settings.LogFormat)
	if err != nil {
		return fmt.Errorf("invalid log settings: %w", err)
	}

	table, err := settings.UnitTable()
	if err != nil {
		return err
	}
	log.Debug("unit table loaded", "units", strings.Join(table.Tokens(), ","), "default", table.DefaultMultiplier())

	stdout := cmd.OutOrStdout()
	terminal := term.FromEnv()

	// Only treat output as a terminal when it is really going to stdout.
	isTTY := stdout == os.Stdout && terminal.IsTerminalOutput()
	width := 0
	if isTTY {
		width, _, _ = terminal.Size()
	}

	var colorize bool
	switch color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		colorize = isTTY && terminal.IsColorEnabled()
	}

	g.settings = settings
	g.table = table
	g.log = log
	g.out = report.NewOutput(stdout, cmd.ErrOrStderr(), colorize, isTTY, width)
	cmd.SetContext(logging.WithContext(cmd.Context(), log))

	return nil
}

// parseItem parses a "[name=]duration" argument. Without a name, the input
// text names the item.
func (g *globalOptions) parseItem(arg string) (report.Item, error) {
	name, value, found := strings.Cut(arg, "=")
	if !found {
		name, value = arg, arg
	}
	p, err := g.table.Parse(value)
	if err != nil {
		return report.Item{}, err
	}
	return report.Item{Name: strings.TrimSpace(name), Period: p}, nil
}

func (g *globalOptions) parseItems(args []string) ([]report.Item, error) {
	items := make([]report.Item, 0, len(args))
	for _, arg := range args {
		item, err := g.parseItem(arg)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func Execute() error {
	return newRootCmd().Execute()
}
