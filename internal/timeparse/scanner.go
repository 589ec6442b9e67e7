package timeparse

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Counts accumulates parsed quantities keyed by unit multiplier, so "s" and
// "seconds" land in the same bucket.
type Counts map[int64]int64

// Total returns the weighted sum of c in seconds.
func (c Counts) Total() (int64, error) {
	var total int64
	for multiplier, n := range c {
		if n != 0 && multiplier > math.MaxInt64/n {
			return 0, ErrOverflow
		}
		seconds := multiplier * n
		if total > math.MaxInt64-seconds {
			return 0, ErrOverflow
		}
		total += seconds
	}
	return total, nil
}

// Scan tokenizes s against table. Each number may be followed by optional
// whitespace and a unit token; a number without a token uses the table's
// default multiplier. Empty input yields an empty Counts.
func Scan(s string, table UnitTable) (Counts, error) {
	sc := &scanner{src: s, table: table, counts: make(Counts)}
	for {
		sc.skipSpace()
		if sc.atEnd() {
			return sc.counts, nil
		}
		if err := sc.scanTerm(); err != nil {
			return nil, err
		}
	}
}

type scanner struct {
	src    string
	pos    int
	table  UnitTable
	counts Counts
}

func (sc *scanner) atEnd() bool {
	return sc.pos >= len(sc.src)
}

func (sc *scanner) peek() (rune, int) {
	if sc.atEnd() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(sc.src[sc.pos:])
}

func (sc *scanner) skipSpace() {
	for r, size := sc.peek(); size > 0 && unicode.IsSpace(r); r, size = sc.peek() {
		sc.pos += size
	}
}

// digits consumes a run of ASCII digits.
func (sc *scanner) digits() string {
	start := sc.pos
	for sc.pos < len(sc.src) && sc.src[sc.pos] >= '0' && sc.src[sc.pos] <= '9' {
		sc.pos++
	}
	return sc.src[start:sc.pos]
}

func (sc *scanner) letters() string {
	start := sc.pos
	for r, size := sc.peek(); size > 0 && unicode.IsLetter(r); r, size = sc.peek() {
		sc.pos += size
	}
	return sc.src[start:sc.pos]
}

func (sc *scanner) scanTerm() error {
	start := sc.pos
	r, size := sc.peek()
	switch {
	case r >= '0' && r <= '9':
	case unicode.IsLetter(r):
		return sc.fail(ErrMissingNumber, sc.letters(), start)
	default:
		return sc.fail(ErrInvalidCharacter, sc.src[start:start+size], start)
	}

	digits := sc.digits()
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return sc.fail(ErrOverflow, digits, start)
		}
		return sc.fail(ErrInvalidCharacter, digits, start)
	}

	sc.skipSpace()
	multiplier := sc.table.DefaultMultiplier()
	if r, _ := sc.peek(); unicode.IsLetter(r) {
		unitStart := sc.pos
		token := sc.letters()
		m, ok := sc.table.Multiplier(token)
		if !ok {
			return sc.fail(ErrUnknownUnit, token, unitStart)
		}
		multiplier = m
	}

	if sc.counts[multiplier] > math.MaxInt64-n {
		return sc.fail(ErrOverflow, strings.TrimSpace(sc.src[start:sc.pos]), start)
	}
	sc.counts[multiplier] += n
	return nil
}

func (sc *scanner) fail(err error, token string, offset int) error {
	return &ParseError{Input: sc.src, Token: token, Offset: offset, Err: err}
}
