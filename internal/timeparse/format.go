package timeparse

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// String renders p as space-separated segments such as "1d 2h 3m 4s".
// Zero day, hour and minute segments are omitted and the seconds segment is
// always present, so a zero Period renders as "0s" and one day and five
// hours as "1d 5h 0s".
func (p Period) String() string {
	b := p.Breakdown()

	var sb strings.Builder
	segment := func(n int64, unit byte) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(n, 10))
		sb.WriteByte(unit)
	}
	if b.Days > 0 {
		segment(b.Days, 'd')
	}
	if b.Hours > 0 {
		segment(b.Hours, 'h')
	}
	if b.Minutes > 0 {
		segment(b.Minutes, 'm')
	}
	segment(b.Seconds, 's')
	return sb.String()
}

// SQLInterval renders p as "interval <N> second", suitable for appending to
// a date arithmetic expression such as "NOW() - ".
func (p Period) SQLInterval() string {
	return fmt.Sprintf("interval %d second", p.seconds)
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using DefaultUnits.
func (p *Period) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Period) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Both strings and plain integers
// are accepted; an integer is a unitless number in the default unit.
func (p *Period) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", node.Line)
	}
	parsed, err := Parse(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = parsed
	return nil
}

// Value adapts a Period to the pflag.Value interface so it can be used with
// cobra flags.
type Value struct {
	Target *Period
	Table  UnitTable
}

// String returns the current value in canonical form.
func (v Value) String() string {
	if v.Target == nil {
		return Period{}.String()
	}
	return v.Target.String()
}

// Set parses s with the Value's unit table.
func (v Value) Set(s string) error {
	p, err := ParseWith(s, v.Table)
	if err != nil {
		return err
	}
	*v.Target = p
	return nil
}

// Type is only used in help text.
func (v Value) Type() string {
	return "duration"
}
