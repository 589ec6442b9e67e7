package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jparise/timespan/internal/timeparse"
)

// UnitsFile is the YAML layout of a custom unit table:
//
//	default: h          # token used for unitless numbers
//	replace: false      # start from an empty table instead of the defaults
//	units:
//	  w: 7d             # durations in the default syntax...
//	  fortnight: 1209600 # ...or plain seconds
type UnitsFile struct {
	Default string            `yaml:"default"`
	Replace bool              `yaml:"replace"`
	Units   map[string]string `yaml:"units"`
}

// LoadUnitTable reads a unit table file and applies it on top of base.
func LoadUnitTable(path string, base timeparse.UnitTable) (timeparse.UnitTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return timeparse.UnitTable{}, fmt.Errorf("read units file: %w", err)
	}

	var f UnitsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return timeparse.UnitTable{}, fmt.Errorf("parse units file %s: %w", path, err)
	}

	units := make(map[string]int64, len(f.Units))
	for token, value := range f.Units {
		seconds, err := unitSeconds(value)
		if err != nil {
			return timeparse.UnitTable{}, fmt.Errorf("units file %s: unit %q: %w", path, token, err)
		}
		units[token] = seconds
	}

	var table timeparse.UnitTable
	if f.Replace {
		table, err = timeparse.NewUnitTable(units, base.DefaultMultiplier())
	} else {
		table, err = base.Merge(units)
	}
	if err != nil {
		return timeparse.UnitTable{}, fmt.Errorf("units file %s: %w", path, err)
	}

	if f.Default != "" {
		table, err = WithDefaultUnit(table, f.Default)
		if err != nil {
			return timeparse.UnitTable{}, fmt.Errorf("units file %s: %w", path, err)
		}
	}
	return table, nil
}

func unitSeconds(value string) (int64, error) {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n, nil
	}
	p, err := timeparse.Parse(value)
	if err != nil {
		return 0, err
	}
	return p.TotalSeconds(), nil
}

// WithDefaultUnit returns table with unitless numbers measured in token.
func WithDefaultUnit(table timeparse.UnitTable, token string) (timeparse.UnitTable, error) {
	m, ok := table.Multiplier(token)
	if !ok {
		return timeparse.UnitTable{}, fmt.Errorf("default unit %q is not in the unit table", token)
	}
	return table.WithDefault(m)
}

// UnitTable builds the unit table described by s.
func (s *Settings) UnitTable() (timeparse.UnitTable, error) {
	table := timeparse.DefaultUnits()
	if s.UnitsFile != "" {
		var err error
		table, err = LoadUnitTable(s.UnitsFile, table)
		if err != nil {
			return timeparse.UnitTable{}, err
		}
	}
	if s.DefaultUnit != "" {
		return WithDefaultUnit(table, s.DefaultUnit)
	}
	return table, nil
}
