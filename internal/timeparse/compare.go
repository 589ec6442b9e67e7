package timeparse

import "cmp"

// Compare returns -1, 0 or +1 depending on whether a is shorter than, equal
// to, or longer than b. It can be passed directly to slices.SortFunc.
func Compare(a, b Period) int {
	return cmp.Compare(a.seconds, b.seconds)
}

// Compare compares p with q. See the package-level Compare.
func (p Period) Compare(q Period) int { return Compare(p, q) }

// Equal reports whether p and q have the same length.
func (p Period) Equal(q Period) bool { return Compare(p, q) == 0 }

// Less reports whether p is shorter than q.
func (p Period) Less(q Period) bool { return Compare(p, q) < 0 }

// LessEqual reports whether p is no longer than q.
func (p Period) LessEqual(q Period) bool { return Compare(p, q) <= 0 }

// Greater reports whether p is longer than q.
func (p Period) Greater(q Period) bool { return Compare(p, q) > 0 }

// GreaterEqual reports whether p is at least as long as q.
func (p Period) GreaterEqual(q Period) bool { return Compare(p, q) >= 0 }
