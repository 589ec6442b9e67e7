package scan

import "github.com/jparise/timespan/internal/timeparse"

// DefaultPattern matches the configuration files scanned when no pattern is
// given.
const DefaultPattern = "**/*.{conf,cfg,env,ini,properties,yaml,yml}"

// Options contains all scan parameters.
type Options struct {
	Pattern    string
	Excludes   []string // Exclude patterns
	Keys       []string // Key patterns; empty means any key whose value starts with a digit
	IgnoreCase bool     // Case-insensitive key matching
	Table      timeparse.UnitTable
	Jobs       int // Maximum concurrent file reads
}

// Entry is one duration setting found in a file.
type Entry struct {
	File   string
	Line   int
	Key    string
	Value  string
	Period timeparse.Period
	Err    error // Parse failure; Period is zero when set
}
