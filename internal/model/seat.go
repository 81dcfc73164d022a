package model

// Seat states as stored in the seats.state column.  A seat moves from
// available to reserved at most once during a run; the transition is
// guarded solely by the database's own transaction isolation.
const (
	SeatAvailable = "available"
	SeatReserved  = "reserved"
)

// Seat belongs to exactly one event and is identified within it by its
// seat number.  Seats are created in bulk at bootstrap and never
// deleted while a run is in flight.
//
// Fields:
//  ID         – primary key identifier.
//  EventID    – the event this seat belongs to.
//  SeatNumber – position unique within the event (1-based).
//  State      – SeatAvailable or SeatReserved.
type Seat struct {
	ID         uint64 // seats.id
	EventID    uint64 // seats.event_id
	SeatNumber int    // seats.seat_number
	State      string // seats.state
}
