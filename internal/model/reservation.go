package model

import "time"

// Reservation records a successful claim of one seat by one simulated
// user.  At most one reservation ever exists per seat; that property
// is exactly what the benchmark exercises under concurrent writers.
//
// Fields:
//  ID         – primary key identifier.
//  EventID    – event the seat belongs to.
//  SeatID     – the claimed seat.
//  UserID     – simulated user who claimed it.
//  ReservedAt – commit-side timestamp of the claim.
type Reservation struct {
	ID         uint64    // reservations.id
	EventID    uint64    // reservations.event_id
	SeatID     uint64    // reservations.seat_id
	UserID     uint64    // reservations.user_id
	ReservedAt time.Time // reservations.reserved_at
}
