package report

import "github.com/jparise/timespan/internal/timeparse"

// Item is a named period, such as a task and its runtime.
type Item struct {
	Name   string
	Period timeparse.Period
}

// Summary aggregates a list of items.
type Summary struct {
	Count    int
	Total    timeparse.Period
	Average  timeparse.Period // Total divided by Count, rounded down
	Longest  Item             // First longest item
	Shortest Item             // First shortest item
}

// Summarize computes totals over items. An empty list yields a zero Summary.
func Summarize(items []Item) Summary {
	if len(items) == 0 {
		return Summary{}
	}

	s := Summary{Count: len(items), Longest: items[0], Shortest: items[0]}
	for _, item := range items {
		s.Total = s.Total.Add(item.Period)
		if item.Period.Greater(s.Longest.Period) {
			s.Longest = item
		}
		if item.Period.Less(s.Shortest.Period) {
			s.Shortest = item
		}
	}
	s.Average = s.Total.Div(s.Count)
	return s
}

// Status grades an actual runtime against its target.
type Status string

const (
	StatusExcellent      Status = "EXCELLENT"
	StatusGood           Status = "GOOD"
	StatusAcceptable     Status = "ACCEPTABLE"
	StatusNeedsAttention Status = "NEEDS ATTENTION"
	StatusNoTarget       Status = "NO TARGET"
)

// Rate returns actual/target and its grade: at most 0.8 is excellent, 1.0
// good and 1.5 acceptable. A zero target has no meaningful ratio.
func Rate(target, actual timeparse.Period) (float64, Status) {
	if target.IsZero() {
		return 0, StatusNoTarget
	}

	ratio := float64(actual.TotalSeconds()) / float64(target.TotalSeconds())
	switch {
	case ratio <= 0.8:
		return ratio, StatusExcellent
	case ratio <= 1.0:
		return ratio, StatusGood
	case ratio <= 1.5:
		return ratio, StatusAcceptable
	default:
		return ratio, StatusNeedsAttention
	}
}
