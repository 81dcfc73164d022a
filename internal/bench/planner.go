package bench

import "math/rand"

// defaultMaxSeat bounds fallback guesses when the event's real maximum
// seat number is unknown.
const defaultMaxSeat = 50

// Planner assigns a target seat to each simulated user so that a
// configurable fraction of attempts collide with another concurrent
// attempt on the same seat.  The resulting collision rate is
// probabilistic, not exact.
type Planner struct {
	rng *rand.Rand
}

// NewPlanner constructs a Planner drawing from the given source.  The
// source is used from a single goroutine only.
func NewPlanner(rng *rand.Rand) *Planner {
	return &Planner{rng: rng}
}

// Plan returns one target seat number per user, in launch order.
//
// For each position the planner draws r in [0,1).  While the position
// index is still within the bounds of the shrinking pool and r clears
// the conflict threshold, a seat is picked uniformly and removed from
// the pool (a clean assignment).  Otherwise a seat is picked without
// removal, so several users may receive the same target.  Once the
// pool is empty the planner guesses uniformly in [1, maxSeat]; the
// guess may name a seat that does not exist or is already reserved,
// which forces extra not-found and conflict outcomes by design.
func (p *Planner) Plan(available []int, userCount, conflictPercent, maxSeat int) []int {
	pool := append([]int(nil), available...)
	threshold := float64(conflictPercent) / 100

	targets := make([]int, 0, userCount)
	for i := 0; i < userCount; i++ {
		var seat int
		switch {
		case i < len(pool) && p.rng.Float64() > threshold:
			j := p.rng.Intn(len(pool))
			seat = pool[j]
			pool = append(pool[:j], pool[j+1:]...)
		case len(pool) > 0:
			seat = pool[p.rng.Intn(len(pool))]
		default:
			bound := maxSeat
			if bound <= 0 {
				bound = defaultMaxSeat
			}
			seat = p.rng.Intn(bound) + 1
		}
		targets = append(targets, seat)
	}
	return targets
}
