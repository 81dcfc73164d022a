// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the
// benchmark driver to distinguish between different failure scenarios
// without inspecting SQL error strings. ErrEventNotFound and
// ErrSeatNotFound map sql.ErrNoRows onto domain lookups.
package repository

import "errors"

// ErrEventNotFound is returned when an event lookup yields no rows.
var ErrEventNotFound = errors.New("event not found")

// ErrSeatNotFound is returned when a seat lookup yields no rows.
// During a contention run this usually means the planner handed out a
// seat number beyond what was bootstrapped, which the fallback path
// does on purpose.
var ErrSeatNotFound = errors.New("seat not found")
