package timeparse

import (
	"math"
	"time"
)

// Period is a non-negative elapsed time in whole seconds. The zero value is
// a zero-length period. Periods are immutable; arithmetic returns new values.
type Period struct {
	seconds int64
}

// Breakdown is the canonical day, hour, minute and second split of a Period.
// Hours, Minutes and Seconds are always within their clock ranges.
type Breakdown struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Parse parses s using DefaultUnits.
func Parse(s string) (Period, error) {
	return ParseWith(s, DefaultUnits())
}

// ParseWith parses s using table.
func ParseWith(s string, table UnitTable) (Period, error) {
	counts, err := Scan(s, table)
	if err != nil {
		return Period{}, err
	}
	total, err := counts.Total()
	if err != nil {
		return Period{}, &ParseError{Input: s, Err: err}
	}
	return Period{seconds: total}, nil
}

// MustParse is like Parse but panics on error. It is intended for
// package-level values.
func MustParse(s string) Period {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// New builds a Period from independent components. Components need not be in
// their clock ranges: New(0, 0, 25, 0) is one day and one hour. Negative
// components count as zero and totals saturate at math.MaxInt64 seconds.
func New(seconds, minutes, hours, days int64) Period {
	total := clamp(seconds)
	total = addSat(total, mulSat(clamp(minutes), Minute))
	total = addSat(total, mulSat(clamp(hours), Hour))
	total = addSat(total, mulSat(clamp(days), Day))
	return Period{seconds: total}
}

// FromSeconds wraps a raw seconds count. Negative counts become zero.
func FromSeconds(n int64) Period {
	return Period{seconds: clamp(n)}
}

// FromStd converts a time.Duration, dropping any sub-second remainder.
func FromStd(d time.Duration) Period {
	return FromSeconds(int64(d / time.Second))
}

// Std returns p as a time.Duration, saturating at the largest representable
// duration.
func (p Period) Std() time.Duration {
	if p.seconds > int64(math.MaxInt64/time.Second) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(p.seconds) * time.Second
}

// TotalSeconds returns the length of p in seconds.
func (p Period) TotalSeconds() int64 {
	return p.seconds
}

// IsZero reports whether p has zero length.
func (p Period) IsZero() bool {
	return p.seconds == 0
}

// Breakdown splits p into days, hours, minutes and seconds.
func (p Period) Breakdown() Breakdown {
	rest := p.seconds
	b := Breakdown{Days: rest / Day}
	rest %= Day
	b.Hours = rest / Hour
	rest %= Hour
	b.Minutes = rest / Minute
	b.Seconds = rest % Minute
	return b
}

// Add returns p+q, saturating on overflow.
func (p Period) Add(q Period) Period {
	return Period{seconds: addSat(p.seconds, q.seconds)}
}

// Div returns p divided by n, rounding down. Division by a non-positive n
// returns the zero Period.
func (p Period) Div(n int) Period {
	if n <= 0 {
		return Period{}
	}
	return Period{seconds: p.seconds / int64(n)}
}

// Sum adds periods together.
func Sum(periods ...Period) Period {
	var total Period
	for _, p := range periods {
		total = total.Add(p)
	}
	return total
}

func clamp(n int64) int64 {
	return max(n, 0)
}

// addSat and mulSat expect non-negative operands.
func addSat(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func mulSat(a, b int64) int64 {
	if a != 0 && b > math.MaxInt64/a {
		return math.MaxInt64
	}
	return a * b
}
