// Package report renders periods, summaries and scan results for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/dustin/go-humanize"
	"github.com/mgutz/ansi"

	"github.com/jparise/timespan/internal/scan"
	"github.com/jparise/timespan/internal/timeparse"
)

// Output handles all output formatting with optional color support.
// Tables are aligned on a terminal and tab-separated otherwise.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	isTTY  bool
	width  int

	cyan   func(string) string
	green  func(string) string
	bold   func(string) string
	yellow func(string) string
	red    func(string) string
}

// NewOutput creates a new Output. width is the terminal width used to
// truncate table columns when isTTY is set.
func NewOutput(stdout, stderr io.Writer, colorize, isTTY bool, width int) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		isTTY:  isTTY,
		width:  width,
		cyan:   color("cyan"),
		green:  color("green+b"),
		bold:   color("white+b"),
		yellow: color("yellow"),
		red:    color("red+b"),
	}
}

func (o *Output) table() tableprinter.TablePrinter {
	return tableprinter.New(o.stdout, o.isTTY, o.width)
}

// Println writes a plain line to stdout.
func (o *Output) Println(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintln(o.stdout, s)
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// Infof writes a formatted informational message to stderr.
func (o *Output) Infof(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, format+"\n", args...)
}

// Seconds formats a seconds count with thousands separators.
func Seconds(p timeparse.Period) string {
	return humanize.Comma(p.TotalSeconds())
}

// Periods writes one row per item with its breakdown.
func (o *Output) Periods(items []Item) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	t := o.table()
	t.AddHeader([]string{"INPUT", "SECONDS", "DAYS", "HOURS", "MINUTES", "SECS", "DURATION"})
	for _, item := range items {
		b := item.Period.Breakdown()
		t.AddField(item.Name, tableprinter.WithColor(o.cyan))
		t.AddField(Seconds(item.Period))
		t.AddField(strconv.FormatInt(b.Days, 10))
		t.AddField(strconv.FormatInt(b.Hours, 10))
		t.AddField(strconv.FormatInt(b.Minutes, 10))
		t.AddField(strconv.FormatInt(b.Seconds, 10))
		t.AddField(item.Period.String(), tableprinter.WithColor(o.green))
		t.EndRow()
	}
	return t.Render()
}

// Items writes items with their seconds and text, followed by summary rows
// when summary is non-nil.
func (o *Output) Items(items []Item, summary *Summary) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	t := o.table()
	t.AddHeader([]string{"NAME", "SECONDS", "DURATION"})
	for _, item := range items {
		t.AddField(item.Name, tableprinter.WithColor(o.cyan))
		t.AddField(Seconds(item.Period))
		t.AddField(item.Period.String(), tableprinter.WithColor(o.green))
		t.EndRow()
	}
	if err := t.Render(); err != nil {
		return err
	}
	if summary == nil || summary.Count == 0 {
		return nil
	}

	fmt.Fprintln(o.stdout)
	t = o.table()
	rows := [][2]string{
		{"Total", fmt.Sprintf("%s (%s seconds)", summary.Total, Seconds(summary.Total))},
		{"Average", summary.Average.String()},
		{"Longest", fmt.Sprintf("%s (%s)", summary.Longest.Name, summary.Longest.Period)},
		{"Shortest", fmt.Sprintf("%s (%s)", summary.Shortest.Name, summary.Shortest.Period)},
	}
	for _, row := range rows {
		t.AddField(row[0], tableprinter.WithColor(o.bold))
		t.AddField(row[1])
		t.EndRow()
	}
	return t.Render()
}

// Rating writes the result of Rate for a target and actual period.
func (o *Output) Rating(target, actual timeparse.Period) {
	ratio, status := Rate(target, actual)

	color := o.green
	switch status {
	case StatusAcceptable:
		color = o.yellow
	case StatusNeedsAttention, StatusNoTarget:
		color = o.red
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stdout, "target %s, actual %s: ratio %.2f %s\n", target, actual, ratio, color(string(status)))
}

// Entries writes scan results as file:line key value rows. Entries that
// failed to parse are shown with their error.
func (o *Output) Entries(entries []scan.Entry) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	t := o.table()
	t.AddHeader([]string{"LOCATION", "KEY", "VALUE", "SECONDS", "DURATION"})
	for _, e := range entries {
		t.AddField(fmt.Sprintf("%s:%d", e.File, e.Line), tableprinter.WithColor(o.cyan))
		t.AddField(e.Key)
		t.AddField(e.Value)
		if e.Err != nil {
			t.AddField("-")
			t.AddField(e.Err.Error(), tableprinter.WithColor(o.red))
		} else {
			t.AddField(Seconds(e.Period))
			t.AddField(e.Period.String(), tableprinter.WithColor(o.green))
		}
		t.EndRow()
	}
	return t.Render()
}
