package repository

import (
	"context"
	"database/sql"
	"time"
)

// ReservationRepo provides insert and verification access to the
// reservations table.  A reservation row is only ever written from
// inside a reservation-attempt transaction; CountBySeat exists so the
// uniqueness property can be checked after a run.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// CreateTx inserts a reservation row within the scope of an existing
// transaction and returns the generated id.  The caller must commit or
// rollback the transaction.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, eventID, seatID, userID uint64, at time.Time) (uint64, error) {
	const q = `INSERT INTO reservations (event_id, seat_id, user_id, reserved_at) VALUES (?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q, eventID, seatID, userID, at)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// CountBySeat returns how many committed reservations exist for one
// seat.  After any run the answer must be 0 or 1 regardless of how
// many concurrent attempts targeted the seat.
func (r *ReservationRepo) CountBySeat(ctx context.Context, seatID uint64) (int, error) {
	const q = `SELECT COUNT(*) FROM reservations WHERE seat_id = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, seatID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
