package order

import "github.com/wellywell/fulfillment-audit/internal/types"

// EnrollmentIndex is a multiset of enrollments keyed by username, course and mode.
type EnrollmentIndex struct {
	remaining map[types.MatchKey]int
}

func NewEnrollmentIndex(enrollments []types.Enrollment) *EnrollmentIndex {
	idx := &EnrollmentIndex{remaining: make(map[types.MatchKey]int, len(enrollments))}
	for _, e := range enrollments {
		idx.remaining[e.MatchKey()]++
	}
	return idx
}

// Claim consumes one enrollment for key. It returns false when none is left.
func (idx *EnrollmentIndex) Claim(key types.MatchKey) bool {
	n := idx.remaining[key]
	if n == 0 {
		return false
	}
	if n == 1 {
		delete(idx.remaining, key)
	} else {
		idx.remaining[key] = n - 1
	}
	return true
}

func (idx *EnrollmentIndex) Len() int {
	total := 0
	for _, n := range idx.remaining {
		total += n
	}
	return total
}

// Match returns the orders, in their original order, that could not claim an enrollment.
// Each enrollment fulfills at most one order; earlier orders claim first.
func Match(orders []types.Order, enrollments []types.Enrollment) []types.Order {
	idx := NewEnrollmentIndex(enrollments)

	var unfulfilled []types.Order
	for _, o := range orders {
		if !idx.Claim(o.MatchKey()) {
			unfulfilled = append(unfulfilled, o)
		}
	}
	return unfulfilled
}
