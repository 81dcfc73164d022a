// Package bench drives concurrent seat-reservation attempts against a
// relational database and aggregates their outcomes so transaction
// isolation levels can be compared under engineered contention.
package bench

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"

	"github.com/iliyamo/reservation-bench/internal/repository"
)

// Failure classes surfaced by a reservation attempt.  Every failed
// Outcome wraps exactly one of these so reports can tell an expected
// logical collision from an isolation-level abort or a dead connection.
var (
	// ErrSeatNotFound means the targeted seat number does not exist
	// for the event.  The planner's pool-exhaustion fallback produces
	// these on purpose.
	ErrSeatNotFound = errors.New("seat does not exist")

	// ErrSeatReserved is the logical conflict: the row was read and
	// its state was already reserved.  Common and expected under
	// intentional contention; never retried.
	ErrSeatReserved = errors.New("seat already reserved")

	// ErrConflict is a conflict detected by the isolation mechanism
	// itself: deadlock victim, lock wait timeout or serialization
	// failure, including on commit.
	ErrConflict = errors.New("concurrency conflict")

	// ErrConnection is a transport or session failure.  Fatal to the
	// one attempt only; other in-flight attempts keep running.
	ErrConnection = errors.New("database connection failure")
)

// MySQL server error numbers that signal a concurrency conflict.
const (
	mysqlErrLockDeadlock    = 1213 // ER_LOCK_DEADLOCK
	mysqlErrLockWaitTimeout = 1205 // ER_LOCK_WAIT_TIMEOUT
)

// classify maps a raw error from the claim protocol onto the attempt
// failure taxonomy, preserving the original error in the wrap.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrSeatNotFound) {
		return ErrSeatNotFound
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrLockDeadlock, mysqlErrLockWaitTimeout:
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return err
}
