// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationConfirmedEvent is published when a simulated user's seat
// claim commits.  It carries enough information for downstream
// consumers to log or analyze contention behavior without querying the
// benchmark database.
type ReservationConfirmedEvent struct {
	ReservationID uint64  `json:"reservation_id"`
	EventID       uint64  `json:"event_id"`
	SeatNumber    int     `json:"seat_number"`
	UserID        int     `json:"user_id"`
	Isolation     string  `json:"isolation"`
	ElapsedMS     float64 `json:"elapsed_ms"`
	ReservedAt    string  `json:"reserved_at"`
}
