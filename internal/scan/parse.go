package scan

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/jparise/timespan/internal/timeparse"
)

// matcher decides which settings are treated as durations.
type matcher struct {
	keys       []string
	ignoreCase bool
	table      timeparse.UnitTable
}

func newMatcher(opts *Options) *matcher {
	keys := opts.Keys
	if opts.IgnoreCase {
		keys = make([]string, len(opts.Keys))
		for i, k := range opts.Keys {
			keys[i] = strings.ToLower(k)
		}
	}
	return &matcher{keys: keys, ignoreCase: opts.IgnoreCase, table: opts.Table}
}

func (m *matcher) wants(key, value string) (bool, error) {
	if len(m.keys) == 0 {
		return value != "" && value[0] >= '0' && value[0] <= '9', nil
	}

	if m.ignoreCase {
		key = strings.ToLower(key)
	}
	for _, pattern := range m.keys {
		matched, err := doublestar.Match(pattern, key)
		if err != nil {
			return false, fmt.Errorf("key pattern %q failed to match key %q: %w", pattern, key, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

func (m *matcher) entry(file string, line int, key, value string) Entry {
	e := Entry{File: file, Line: line, Key: key, Value: value}
	e.Period, e.Err = m.table.Parse(value)
	return e
}

// parseProperties reads key=value lines. Blank lines and lines starting
// with '#' or ';' are skipped, as are lines without '='.
func (m *matcher) parseProperties(file string, data []byte) ([]Entry, error) {
	var entries []Entry
	s := bufio.NewScanner(bytes.NewReader(data))
	for lineNo := 1; s.Scan(); lineNo++ {
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))

		want, err := m.wants(key, value)
		if err != nil {
			return nil, err
		}
		if want {
			entries = append(entries, m.entry(file, lineNo, key, value))
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return entries, nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// parseYAML walks a YAML document. Nested keys are joined with '.' and
// sequence items use their index, so "db.replicas.0.timeout" names a value
// inside a list.
func (m *matcher) parseYAML(file string, data []byte) ([]Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}

	var entries []Entry
	var walk func(node *yaml.Node, path []string) error
	walk = func(node *yaml.Node, path []string) error {
		switch node.Kind {
		case yaml.DocumentNode:
			for _, child := range node.Content {
				if err := walk(child, path); err != nil {
					return err
				}
			}
		case yaml.MappingNode:
			for i := 0; i+1 < len(node.Content); i += 2 {
				key := node.Content[i].Value
				if err := walk(node.Content[i+1], append(path, key)); err != nil {
					return err
				}
			}
		case yaml.SequenceNode:
			for i, child := range node.Content {
				if err := walk(child, append(path, strconv.Itoa(i))); err != nil {
					return err
				}
			}
		case yaml.ScalarNode:
			if node.Tag != "!!str" && node.Tag != "!!int" {
				return nil
			}
			key := strings.Join(path, ".")
			want, err := m.wants(key, node.Value)
			if err != nil {
				return err
			}
			if want {
				entries = append(entries, m.entry(file, node.Line, key, node.Value))
			}
		}
		return nil
	}

	if err := walk(&doc, nil); err != nil {
		return nil, err
	}
	return entries, nil
}
