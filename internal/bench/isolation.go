package bench

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// IsolationLevel is the closed set of transaction isolation levels the
// benchmark knows how to drive.  Anything else is rejected at
// configuration time; there is deliberately no string-keyed lookup that
// silently accepts arbitrary level names.
type IsolationLevel int

const (
	ReadCommitted IsolationLevel = iota
	RepeatableRead
	Serializable
)

// Levels lists all supported isolation levels in ascending strictness.
var Levels = []IsolationLevel{ReadCommitted, RepeatableRead, Serializable}

// String returns the SQL spelling of the level.
func (l IsolationLevel) String() string {
	switch l {
	case ReadCommitted:
		return "READ COMMITTED"
	case RepeatableRead:
		return "REPEATABLE READ"
	case Serializable:
		return "SERIALIZABLE"
	default:
		return fmt.Sprintf("IsolationLevel(%d)", int(l))
	}
}

// SQL maps the level onto database/sql's isolation constant for use in
// sql.TxOptions.
func (l IsolationLevel) SQL() sql.IsolationLevel {
	switch l {
	case ReadCommitted:
		return sql.LevelReadCommitted
	case RepeatableRead:
		return sql.LevelRepeatableRead
	case Serializable:
		return sql.LevelSerializable
	default:
		return sql.LevelDefault
	}
}

// ParseIsolation converts a user-supplied name into an IsolationLevel.
// Matching is case-insensitive and tolerates underscores or dashes in
// place of spaces.  Unknown names yield an error listing the valid set.
func ParseIsolation(s string) (IsolationLevel, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "_", " ")
	norm = strings.ReplaceAll(norm, "-", " ")
	for _, l := range Levels {
		if norm == l.String() {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown isolation level %q (valid: READ COMMITTED, REPEATABLE READ, SERIALIZABLE)", s)
}

// MarshalJSON encodes the level as its SQL spelling so stored
// summaries stay readable.
func (l IsolationLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts the same spellings ParseIsolation does.
func (l *IsolationLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseIsolation(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
