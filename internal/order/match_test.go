package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wellywell/fulfillment-audit/internal/types"
)

func TestMatch(t *testing.T) {

	testCases := []struct {
		name            string
		orders          []types.Order
		enrollments     []types.Enrollment
		wantUnfulfilled []types.Order
	}{
		{
			name:            "no orders",
			orders:          nil,
			enrollments:     []types.Enrollment{{Username: "alice", CourseID: "CS101", Mode: types.VerifiedMode, IsActive: true}},
			wantUnfulfilled: nil,
		},
		{
			name:            "exact match",
			orders:          []types.Order{newOrder("alice", "CS101", types.VerifiedMode, "EDX-1", day)},
			enrollments:     []types.Enrollment{{Username: "alice", CourseID: "CS101", Mode: types.VerifiedMode, IsActive: true}},
			wantUnfulfilled: nil,
		},
		{
			name:            "inactive enrollment still fulfills",
			orders:          []types.Order{newOrder("bob", "CS101", types.AuditMode, "EDX-2", day)},
			enrollments:     []types.Enrollment{{Username: "bob", CourseID: "CS101", Mode: types.AuditMode, IsActive: false}},
			wantUnfulfilled: nil,
		},
		{
			name:            "mode mismatch",
			orders:          []types.Order{newOrder("alice", "CS101", types.VerifiedMode, "EDX-1", day)},
			enrollments:     []types.Enrollment{{Username: "alice", CourseID: "CS101", Mode: types.AuditMode, IsActive: true}},
			wantUnfulfilled: []types.Order{newOrder("alice", "CS101", types.VerifiedMode, "EDX-1", day)},
		},
		{
			name:   "cross filtered enrollment does not match",
			orders: []types.Order{newOrder("alice", "CS101", types.VerifiedMode, "EDX-1", day), newOrder("bob", "MATH200", types.VerifiedMode, "EDX-2", day)},
			enrollments: []types.Enrollment{
				{Username: "alice", CourseID: "MATH200", Mode: types.VerifiedMode, IsActive: true},
				{Username: "bob", CourseID: "MATH200", Mode: types.VerifiedMode, IsActive: true},
			},
			wantUnfulfilled: []types.Order{newOrder("alice", "CS101", types.VerifiedMode, "EDX-1", day)},
		},
		{
			name: "one enrollment claimed by the first order only",
			orders: []types.Order{
				newOrder("carol", "CS101", types.VerifiedMode, "EDX-3", day),
				newOrder("carol", "CS101", types.VerifiedMode, "EDX-4", day.Add(time.Hour)),
			},
			enrollments:     []types.Enrollment{{Username: "carol", CourseID: "CS101", Mode: types.VerifiedMode, IsActive: true}},
			wantUnfulfilled: []types.Order{newOrder("carol", "CS101", types.VerifiedMode, "EDX-4", day.Add(time.Hour))},
		},
		{
			name: "duplicate enrollment rows fulfill duplicate orders",
			orders: []types.Order{
				newOrder("carol", "CS101", types.VerifiedMode, "EDX-3", day),
				newOrder("carol", "CS101", types.VerifiedMode, "EDX-4", day.Add(time.Hour)),
			},
			enrollments: []types.Enrollment{
				{Username: "carol", CourseID: "CS101", Mode: types.VerifiedMode, IsActive: true},
				{Username: "carol", CourseID: "CS101", Mode: types.VerifiedMode, IsActive: true},
			},
			wantUnfulfilled: nil,
		},
		{
			name: "unfulfilled keep original order",
			orders: []types.Order{
				newOrder("zed", "CS101", types.VerifiedMode, "EDX-9", day),
				newOrder("alice", "CS101", types.VerifiedMode, "EDX-1", day),
				newOrder("mike", "CS101", types.HonorMode, "EDX-5", day),
			},
			enrollments: []types.Enrollment{{Username: "alice", CourseID: "CS101", Mode: types.VerifiedMode, IsActive: true}},
			wantUnfulfilled: []types.Order{
				newOrder("zed", "CS101", types.VerifiedMode, "EDX-9", day),
				newOrder("mike", "CS101", types.HonorMode, "EDX-5", day),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantUnfulfilled, Match(tc.orders, tc.enrollments))
		})
	}
}

func TestEnrollmentIndexClaim(t *testing.T) {
	key := types.MatchKey{Username: "alice", CourseID: "CS101", Mode: types.VerifiedMode}
	idx := NewEnrollmentIndex([]types.Enrollment{
		{Username: "alice", CourseID: "CS101", Mode: types.VerifiedMode},
		{Username: "alice", CourseID: "CS101", Mode: types.VerifiedMode},
		{Username: "alice", CourseID: "CS101", Mode: types.HonorMode},
	})
	assert.Equal(t, 3, idx.Len())

	assert.True(t, idx.Claim(key))
	assert.True(t, idx.Claim(key))
	assert.False(t, idx.Claim(key))
	assert.Equal(t, 1, idx.Len())

	assert.False(t, idx.Claim(types.MatchKey{Username: "bob", CourseID: "CS101", Mode: types.HonorMode}))
}
