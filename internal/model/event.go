package model

import "time"

// Event is a bookable happening for which seats are created and
// reserved.  Events are owned by the external schema and treated as
// immutable for the duration of a benchmark run.
//
// Fields:
//  ID   – primary key identifier.
//  Name – display name shown in reports and the interactive menu.
//  Date – when the event takes place.
type Event struct {
	ID   uint64    // events.id
	Name string    // events.name
	Date time.Time // events.event_date
}
