package bench

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/iliyamo/reservation-bench/internal/repository"
)

// Simulated user ids are drawn from [1, userIDRange] regardless of how
// many users a run launches.  Identity collisions between concurrent
// "different" users are part of the contention model (repeat
// customers), not an error.
const userIDRange = 10

// defaultStagger is the pause between goroutine launches.  It only
// shapes the observed interleaving; correctness never depends on it.
const defaultStagger = 50 * time.Millisecond

// SeatSource is the read-only view of seat state the orchestrator
// needs before launching a run.
type SeatSource interface {
	ListAvailableNumbers(ctx context.Context, eventID uint64) ([]int, error)
	MaxSeatNumber(ctx context.Context, eventID uint64) (int, error)
}

// EventSource resolves event display names.
type EventSource interface {
	GetName(ctx context.Context, eventID uint64) (string, error)
}

// AttemptFunc runs one reservation attempt and always returns an
// Outcome, never an error.
type AttemptFunc func(ctx context.Context, userID int, eventID uint64, seatNumber int, level IsolationLevel) Outcome

// Orchestrator runs one concurrent batch of reservation attempts and
// folds their outcomes into a Summary.  It holds no lock over seat
// state; the "at most one success per seat" property rests entirely on
// the database's isolation guarantees, which is the subject under test.
type Orchestrator struct {
	seats   SeatSource
	events  EventSource
	attempt AttemptFunc
	planner *Planner
	rng     *rand.Rand
	now     func() time.Time

	// Stagger is the delay between attempt launches.  Zero disables it.
	Stagger time.Duration
}

// NewOrchestrator constructs an Orchestrator.  seats, events and
// attempt must be non-nil.  rng may be nil, in which case a
// time-seeded source is used; tests pass a fixed seed.
func NewOrchestrator(seats SeatSource, events EventSource, attempt AttemptFunc, rng *rand.Rand) *Orchestrator {
	if seats == nil || events == nil || attempt == nil {
		panic("nil dependency passed to NewOrchestrator")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Orchestrator{
		seats:   seats,
		events:  events,
		attempt: attempt,
		planner: NewPlanner(rng),
		rng:     rng,
		now:     time.Now,
		Stagger: defaultStagger,
	}
}

// Run launches userCount concurrent reservation attempts against the
// event at the given isolation level and waits for every one of them
// to finish before aggregating.  When the event has no available seats
// the run short-circuits: the Summary reports every attempt as failed
// and nothing is launched.
func (o *Orchestrator) Run(ctx context.Context, userCount int, level IsolationLevel, eventID uint64, conflictPercent int) (Summary, error) {
	name, err := o.events.GetName(ctx, eventID)
	if err != nil {
		if !errors.Is(err, repository.ErrEventNotFound) {
			return Summary{}, err
		}
		// An unknown event still gets a run under a placeholder name;
		// it has no seats, so the zero-seat short-circuit reports every
		// attempt as failed.
		name = fmt.Sprintf("event %d", eventID)
	}
	available, err := o.seats.ListAvailableNumbers(ctx, eventID)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		EventID:     eventID,
		EventName:   name,
		Users:       userCount,
		Isolation:   level,
		ConflictPct: conflictPercent,
		StartedAt:   o.now().UTC(),
	}

	log.Printf("run: event %d %q | %d seats available | %d users | %s | %d%% conflict",
		eventID, name, len(available), userCount, level, conflictPercent)

	if len(available) == 0 {
		log.Printf("run: no available seats, skipping attempts")
		summary.Failures = userCount
		return summary, nil
	}
	if len(available) < userCount {
		log.Printf("run: only %d seats available for %d users", len(available), userCount)
	}

	maxSeat, err := o.seats.MaxSeatNumber(ctx, eventID)
	if err != nil {
		log.Printf("run: max seat lookup failed: %v", err)
		maxSeat = 0
	}
	targets := o.planner.Plan(available, userCount, conflictPercent, maxSeat)

	start := o.now()
	outcomes := make(chan Outcome, userCount)
	var wg sync.WaitGroup
	for _, seat := range targets {
		userID := o.rng.Intn(userIDRange) + 1
		log.Printf("[user %d] will try seat %d", userID, seat)
		wg.Add(1)
		go func(userID, seat int) {
			defer wg.Done()
			outcomes <- o.attempt(ctx, userID, eventID, seat, level)
		}(userID, seat)
		if o.Stagger > 0 {
			time.Sleep(o.Stagger)
		}
	}
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	// Single collector goroutine-free loop: every attempt sends exactly
	// one Outcome, so the channel drains once all workers are done.
	// Order reflects completion, and nothing below depends on it.
	collected := make([]Outcome, 0, userCount)
	for out := range outcomes {
		if out.Success {
			log.Printf("[user %d] reserved seat %d in %s", out.UserID, out.SeatNumber, out.Elapsed.Round(time.Millisecond))
		} else {
			log.Printf("[user %d] seat %d: %v (%s)", out.UserID, out.SeatNumber, out.Err, out.Elapsed.Round(time.Millisecond))
		}
		collected = append(collected, out)
	}

	summary = summarize(summary, collected)
	summary.Elapsed = o.now().Sub(start)
	log.Printf("run: %d succeeded, %d failed, mean latency %s, total %s",
		summary.Successes, summary.Failures,
		summary.MeanLatency.Round(time.Millisecond), summary.Elapsed.Round(time.Millisecond))
	return summary, nil
}
