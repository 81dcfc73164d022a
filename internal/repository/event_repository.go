package repository // repository defines data access for events

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel comparisons

	"github.com/iliyamo/reservation-bench/internal/model"
)

// EventRepo provides read access to the events table.  Events are
// created outside of this tool; the benchmark only lists them and
// resolves display names.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// GetName returns the display name of an event.  ErrEventNotFound is
// returned when no event with that id exists.
func (r *EventRepo) GetName(ctx context.Context, eventID uint64) (string, error) {
	const q = `SELECT name FROM events WHERE id = ?`
	var name string
	err := r.db.QueryRowContext(ctx, q, eventID).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrEventNotFound
		}
		return "", err
	}
	return name, nil
}

// List returns all events ordered by id.  It is used by the
// interactive menu to let the operator pick a target event.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	const q = `SELECT id, name, event_date FROM events ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
