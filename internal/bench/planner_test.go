package bench

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlanner() *Planner {
	return NewPlanner(rand.New(rand.NewSource(1)))
}

func TestPlanReturnsOneTargetPerUser(t *testing.T) {
	p := newTestPlanner()
	for _, users := range []int{0, 1, 5, 30} {
		targets := p.Plan([]int{1, 2, 3, 4, 5}, users, 30, 5)
		assert.Len(t, targets, users)
	}
}

func TestPlanZeroConflictAssignsUniqueSeats(t *testing.T) {
	available := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	targets := newTestPlanner().Plan(available, 5, 0, 10)
	require.Len(t, targets, 5)

	seen := make(map[int]struct{})
	for _, seat := range targets {
		_, dup := seen[seat]
		assert.False(t, dup, "seat %d assigned twice with 0%% conflict", seat)
		seen[seat] = struct{}{}
		assert.Contains(t, available, seat)
	}
}

func TestPlanFullConflictDrawsWithoutRemoval(t *testing.T) {
	available := []int{3, 7, 9}
	targets := newTestPlanner().Plan(available, 20, 100, 9)
	require.Len(t, targets, 20)

	// The pool is never consumed at 100% conflict, so every target
	// comes from it and duplicates show up well before 20 draws.
	counts := make(map[int]int)
	for _, seat := range targets {
		assert.Contains(t, available, seat)
		counts[seat]++
	}
	dup := false
	for _, n := range counts {
		if n > 1 {
			dup = true
		}
	}
	assert.True(t, dup, "expected duplicate targets from a pool of 3 across 20 users")
}

func TestPlanEmptyPoolFallsBackToBoundedGuess(t *testing.T) {
	targets := newTestPlanner().Plan(nil, 10, 0, 20)
	require.Len(t, targets, 10)
	for _, seat := range targets {
		assert.GreaterOrEqual(t, seat, 1)
		assert.LessOrEqual(t, seat, 20)
	}
}

func TestPlanEmptyPoolUnknownMaxUsesDefaultBound(t *testing.T) {
	targets := newTestPlanner().Plan(nil, 25, 50, 0)
	require.Len(t, targets, 25)
	for _, seat := range targets {
		assert.GreaterOrEqual(t, seat, 1)
		assert.LessOrEqual(t, seat, defaultMaxSeat)
	}
}

func TestPlanDoesNotMutateAvailableSlice(t *testing.T) {
	available := []int{1, 2, 3, 4, 5}
	newTestPlanner().Plan(available, 5, 0, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, available)
}
