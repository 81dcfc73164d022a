package bench

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/reservation-bench/internal/repository"
)

func TestClassifySeatNotFound(t *testing.T) {
	err := classify(repository.ErrSeatNotFound)
	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestClassifyDeadlockAsConflict(t *testing.T) {
	deadlock := &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}
	err := classify(fmt.Errorf("commit: %w", deadlock))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestClassifyLockWaitTimeoutAsConflict(t *testing.T) {
	timeout := &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}
	assert.ErrorIs(t, classify(timeout), ErrConflict)
}

func TestClassifyConnectionFailures(t *testing.T) {
	assert.ErrorIs(t, classify(driver.ErrBadConn), ErrConnection)
	assert.ErrorIs(t, classify(mysql.ErrInvalidConn), ErrConnection)
}

func TestClassifyLeavesOtherErrorsAlone(t *testing.T) {
	duplicate := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	err := classify(duplicate)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrConnection)

	plain := errors.New("boom")
	assert.Equal(t, plain, classify(plain))
}

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, classify(nil))
}
