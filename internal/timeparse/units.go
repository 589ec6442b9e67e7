// Package timeparse parses human-readable durations into whole-second periods
// and renders them back as text.
package timeparse

import (
	"fmt"
	"maps"
	"slices"
	"unicode"
)

// Unit multipliers in seconds. Months and years are fixed-length
// approximations (28 and 365 days).
const (
	Second int64 = 1
	Minute       = 60 * Second
	Hour         = 60 * Minute
	Day          = 24 * Hour
	Month        = 28 * Day
	Year         = 365 * Day
)

var defaultUnits = map[string]int64{
	"s":       Second,
	"seconds": Second,
	"m":       Minute,
	"minutes": Minute,
	"h":       Hour,
	"hours":   Hour,
	"d":       Day,
	"days":    Day,
	"mo":      Month,
	"months":  Month,
	"y":       Year,
	"years":   Year,
}

// UnitTable maps unit tokens to their length in seconds. A bare number with
// no unit uses the table's default multiplier.
//
// A UnitTable is immutable. The zero value behaves like DefaultUnits.
type UnitTable struct {
	units    map[string]int64
	fallback int64
}

// DefaultUnits returns the standard table: s, m, h, d, mo, y and their long
// forms, with minutes as the default unit.
func DefaultUnits() UnitTable {
	return UnitTable{units: defaultUnits, fallback: Minute}
}

// NewUnitTable builds a table from units and a default multiplier. Tokens must
// be non-empty runs of letters and every multiplier must be positive. An
// empty units map yields a table that only accepts unitless numbers.
func NewUnitTable(units map[string]int64, defaultMultiplier int64) (UnitTable, error) {
	for token, m := range units {
		if err := validateUnit(token, m); err != nil {
			return UnitTable{}, err
		}
	}
	if defaultMultiplier <= 0 {
		return UnitTable{}, fmt.Errorf("default multiplier must be positive, got %d", defaultMultiplier)
	}
	table := make(map[string]int64, len(units))
	maps.Copy(table, units)
	return UnitTable{units: table, fallback: defaultMultiplier}, nil
}

func validateUnit(token string, multiplier int64) error {
	if token == "" {
		return fmt.Errorf("unit token must not be empty")
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("unit token %q must contain only letters", token)
		}
	}
	if multiplier <= 0 {
		return fmt.Errorf("unit %q: multiplier must be positive, got %d", token, multiplier)
	}
	return nil
}

func (t UnitTable) table() map[string]int64 {
	if t.units == nil {
		return defaultUnits
	}
	return t.units
}

// Multiplier returns the number of seconds per token.
func (t UnitTable) Multiplier(token string) (int64, bool) {
	m, ok := t.table()[token]
	return m, ok
}

// DefaultMultiplier returns the multiplier applied to unitless numbers.
func (t UnitTable) DefaultMultiplier() int64 {
	if t.fallback == 0 {
		return Minute
	}
	return t.fallback
}

// Tokens returns the recognized tokens in sorted order.
func (t UnitTable) Tokens() []string {
	return slices.Sorted(maps.Keys(t.table()))
}

// Units returns a copy of the token to multiplier mapping.
func (t UnitTable) Units() map[string]int64 {
	return maps.Clone(t.table())
}

// WithDefault returns a copy of t whose unitless numbers use multiplier.
func (t UnitTable) WithDefault(multiplier int64) (UnitTable, error) {
	return NewUnitTable(t.table(), multiplier)
}

// Merge returns a copy of t with overrides added. Overrides replace existing
// tokens of the same spelling.
func (t UnitTable) Merge(overrides map[string]int64) (UnitTable, error) {
	merged := maps.Clone(t.table())
	maps.Copy(merged, overrides)
	return NewUnitTable(merged, t.DefaultMultiplier())
}

// Parse parses s using this table.
func (t UnitTable) Parse(s string) (Period, error) {
	return ParseWith(s, t)
}
