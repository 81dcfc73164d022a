package repository // repository defines data access for seats

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel comparisons

	"github.com/iliyamo/reservation-bench/internal/model"
)

// SeatRepo provides methods to work with seats in the database.  The
// ...Tx methods run inside a caller-owned transaction so that one
// reservation attempt maps to exactly one transaction; everything else
// runs on the shared pool outside of any simulated transaction.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// ListAvailableNumbers returns the seat numbers of all seats of the
// event that are still in the available state, ordered by number.
func (r *SeatRepo) ListAvailableNumbers(ctx context.Context, eventID uint64) ([]int, error) {
	const q = `SELECT seat_number FROM seats
	           WHERE event_id = ? AND state = ?
	           ORDER BY seat_number`
	rows, err := r.db.QueryContext(ctx, q, eventID, model.SeatAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return numbers, nil
}

// MaxSeatNumber returns the highest seat number that exists for the
// event, or 0 when the event has no seats at all.  The planner uses it
// to bound its fallback guesses once the available pool runs dry.
func (r *SeatRepo) MaxSeatNumber(ctx context.Context, eventID uint64) (int, error) {
	const q = `SELECT MAX(seat_number) FROM seats WHERE event_id = ?`
	var max sql.NullInt64
	if err := r.db.QueryRowContext(ctx, q, eventID).Scan(&max); err != nil {
		return 0, err
	}
	if !max.Valid {
		return 0, nil
	}
	return int(max.Int64), nil
}

// LockAndReadTx takes a write-intent lock on the seat row identified by
// (eventID, seatNumber) and returns its id and current state.  The lock
// is held until the surrounding transaction commits or rolls back.
// ErrSeatNotFound is returned when no such seat exists.
func (r *SeatRepo) LockAndReadTx(ctx context.Context, tx *sql.Tx, eventID uint64, seatNumber int) (uint64, string, error) {
	const q = `SELECT id, state FROM seats
	           WHERE event_id = ? AND seat_number = ?
	           FOR UPDATE`
	var id uint64
	var state string
	err := tx.QueryRowContext(ctx, q, eventID, seatNumber).Scan(&id, &state)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", ErrSeatNotFound
		}
		return 0, "", err
	}
	return id, state, nil
}

// MarkReservedTx transitions a seat to the reserved state within the
// provided transaction.
func (r *SeatRepo) MarkReservedTx(ctx context.Context, tx *sql.Tx, seatID uint64) error {
	const q = `UPDATE seats SET state = ? WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, model.SeatReserved, seatID)
	return err
}

// ResetAndCreate deletes every reservation and seat of the event and
// recreates count seats in the available state.  Destructive; used only
// at bootstrap before a run.  The whole reset happens in one
// transaction so a failed bootstrap never leaves a half-built seat map.
// ErrEventNotFound is returned when the event does not exist.
func (r *SeatRepo) ResetAndCreate(ctx context.Context, eventID uint64, count int) error {
	const check = `SELECT id FROM events WHERE id = ?`
	var id uint64
	if err := r.db.QueryRowContext(ctx, check, eventID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrEventNotFound
		}
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM reservations WHERE event_id = ?`, eventID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM seats WHERE event_id = ?`, eventID); err != nil {
		return err
	}

	// Bulk insert all seats in a single statement.
	if count > 0 {
		query := `INSERT INTO seats (event_id, seat_number, state) VALUES `
		args := make([]interface{}, 0, count*3)
		for i := 0; i < count; i++ {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?)"
			args = append(args, eventID, i+1, model.SeatAvailable)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
