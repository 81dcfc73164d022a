package bench

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/iliyamo/reservation-bench/internal/model"
	"github.com/iliyamo/reservation-bench/internal/queue"
	"github.com/iliyamo/reservation-bench/internal/repository"
)

// PublishFunc delivers a confirmation event after a successful claim.
// Publishing is best effort; implementations must never fail the
// attempt that triggered them.
type PublishFunc func(ctx context.Context, ev queue.ReservationConfirmedEvent)

// Attempter executes single reservation attempts.  Each call to Do is
// one self-contained transaction; the Attempter itself is stateless
// and safe for concurrent use.
type Attempter struct {
	db           *sql.DB
	seats        *repository.SeatRepo
	reservations *repository.ReservationRepo
	publish      PublishFunc      // optional
	now          func() time.Time // swappable for tests
}

// NewAttempter constructs an Attempter.  db, seats and reservations
// must be non-nil; publish may be nil to disable event publishing.
func NewAttempter(db *sql.DB, seats *repository.SeatRepo, reservations *repository.ReservationRepo, publish PublishFunc) *Attempter {
	if db == nil || seats == nil || reservations == nil {
		panic("nil dependency passed to NewAttempter")
	}
	return &Attempter{
		db:           db,
		seats:        seats,
		reservations: reservations,
		publish:      publish,
		now:          time.Now,
	}
}

// Do executes the full claim protocol for one simulated user and
// converts every error into a classified Outcome.  No error escapes to
// the caller; elapsed time is recorded on success and failure alike,
// spanning transaction acquisition through resolution.
func (a *Attempter) Do(ctx context.Context, userID int, eventID uint64, seatNumber int, level IsolationLevel) Outcome {
	start := a.now()
	resID, err := a.claim(ctx, eventID, seatNumber, uint64(userID), level)
	elapsed := a.now().Sub(start)

	out := Outcome{UserID: userID, SeatNumber: seatNumber, Elapsed: elapsed}
	if err != nil {
		out.Err = err
		return out
	}
	out.Success = true

	if a.publish != nil {
		a.publish(ctx, queue.ReservationConfirmedEvent{
			ReservationID: resID,
			EventID:       eventID,
			SeatNumber:    seatNumber,
			UserID:        userID,
			Isolation:     level.String(),
			ElapsedMS:     float64(elapsed.Microseconds()) / 1000,
			ReservedAt:    a.now().UTC().Format(time.RFC3339),
		})
	}
	return out
}

// claim opens one transaction at the requested isolation level and
// runs the protocol: lock-and-read the seat row, check its state, mark
// it reserved, insert the reservation, commit.  The deferred rollback
// covers every non-commit exit, including panics in the repositories;
// a rollback failure is logged but never masks the primary error.
func (a *Attempter) claim(ctx context.Context, eventID uint64, seatNumber int, userID uint64, level IsolationLevel) (uint64, error) {
	tx, err := a.db.BeginTx(ctx, &sql.TxOptions{Isolation: level.SQL()})
	if err != nil {
		return 0, classify(err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Printf("[user %d] rollback failed: %v", userID, rbErr)
		}
	}()

	seatID, state, err := a.seats.LockAndReadTx(ctx, tx, eventID, seatNumber)
	if err != nil {
		return 0, classify(err)
	}
	if state == model.SeatReserved {
		return 0, ErrSeatReserved
	}

	if err := a.seats.MarkReservedTx(ctx, tx, seatID); err != nil {
		return 0, classify(err)
	}
	resID, err := a.reservations.CreateTx(ctx, tx, eventID, seatID, userID, a.now().UTC())
	if err != nil {
		return 0, classify(err)
	}

	if err := tx.Commit(); err != nil {
		return 0, classify(err)
	}
	committed = true
	return resID, nil
}
