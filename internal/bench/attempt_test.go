package bench

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/reservation-bench/internal/model"
	"github.com/iliyamo/reservation-bench/internal/queue"
	"github.com/iliyamo/reservation-bench/internal/repository"
)

// Statement prefixes matched against the claim protocol's queries.
const (
	lockSeatSQL          = `SELECT id, state FROM seats`
	markReservedSQL      = `UPDATE seats SET state`
	insertReservationSQL = `INSERT INTO reservations`
)

// newMockAttempter wires an Attempter to a stub driver and replaces its
// clock with one that advances 10ms per reading, so elapsed times are
// exact on every path.
func newMockAttempter(t *testing.T, publish PublishFunc) (*Attempter, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	a := NewAttempter(db, repository.NewSeatRepo(db), repository.NewReservationRepo(db), publish)
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	var readings int
	a.now = func() time.Time {
		readings++
		return base.Add(time.Duration(readings-1) * 10 * time.Millisecond)
	}
	return a, mock
}

func TestDoReservedSeatYieldsSeatReserved(t *testing.T) {
	a, mock := newMockAttempter(t, nil)
	mock.ExpectBegin()
	mock.ExpectQuery(lockSeatSQL).
		WithArgs(1, 7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "state"}).AddRow(7, model.SeatReserved))
	mock.ExpectRollback()

	out := a.Do(context.Background(), 3, 1, 7, RepeatableRead)

	assert.False(t, out.Success)
	assert.ErrorIs(t, out.Err, ErrSeatReserved)
	assert.Equal(t, 10*time.Millisecond, out.Elapsed, "elapsed spans start through resolution")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoMissingSeatYieldsSeatNotFound(t *testing.T) {
	a, mock := newMockAttempter(t, nil)
	mock.ExpectBegin()
	mock.ExpectQuery(lockSeatSQL).
		WithArgs(1, 99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "state"}))
	mock.ExpectRollback()

	out := a.Do(context.Background(), 3, 1, 99, ReadCommitted)

	assert.False(t, out.Success)
	assert.ErrorIs(t, out.Err, ErrSeatNotFound)
	assert.Equal(t, 10*time.Millisecond, out.Elapsed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoDeadlockOnCommitYieldsConflict(t *testing.T) {
	a, mock := newMockAttempter(t, nil)
	mock.ExpectBegin()
	mock.ExpectQuery(lockSeatSQL).
		WithArgs(1, 7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "state"}).AddRow(7, model.SeatAvailable))
	mock.ExpectExec(markReservedSQL).
		WithArgs(model.SeatReserved, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertReservationSQL).
		WithArgs(1, 7, 3, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit().
		WillReturnError(&mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"})

	out := a.Do(context.Background(), 3, 1, 7, Serializable)

	assert.False(t, out.Success)
	assert.ErrorIs(t, out.Err, ErrConflict)
	assert.Equal(t, 20*time.Millisecond, out.Elapsed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSuccessCommitsAndPublishes(t *testing.T) {
	var published []queue.ReservationConfirmedEvent
	publish := func(ctx context.Context, ev queue.ReservationConfirmedEvent) {
		published = append(published, ev)
	}
	a, mock := newMockAttempter(t, publish)
	mock.ExpectBegin()
	mock.ExpectQuery(lockSeatSQL).
		WithArgs(1, 7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "state"}).AddRow(7, model.SeatAvailable))
	mock.ExpectExec(markReservedSQL).
		WithArgs(model.SeatReserved, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertReservationSQL).
		WithArgs(1, 7, 3, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	out := a.Do(context.Background(), 3, 1, 7, Serializable)

	require.True(t, out.Success)
	assert.NoError(t, out.Err)
	assert.Equal(t, 20*time.Millisecond, out.Elapsed)
	assert.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, published, 1)
	ev := published[0]
	assert.EqualValues(t, 42, ev.ReservationID)
	assert.EqualValues(t, 1, ev.EventID)
	assert.Equal(t, 7, ev.SeatNumber)
	assert.Equal(t, 3, ev.UserID)
	assert.Equal(t, "SERIALIZABLE", ev.Isolation)
	assert.Equal(t, 20.0, ev.ElapsedMS)
	assert.Equal(t, "2026-08-30T12:00:00Z", ev.ReservedAt)
}
