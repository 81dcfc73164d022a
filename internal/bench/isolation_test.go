package bench

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIsolationAcceptsKnownLevels(t *testing.T) {
	cases := map[string]IsolationLevel{
		"READ COMMITTED":  ReadCommitted,
		"read committed":  ReadCommitted,
		"repeatable_read": RepeatableRead,
		"Repeatable-Read": RepeatableRead,
		" SERIALIZABLE ":  Serializable,
	}
	for input, want := range cases {
		got, err := ParseIsolation(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseIsolationRejectsUnknownLevels(t *testing.T) {
	for _, input := range []string{"", "SNAPSHOT", "READ UNCOMMITTED", "default"} {
		_, err := ParseIsolation(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestIsolationLevelSQLMapping(t *testing.T) {
	assert.Equal(t, sql.LevelReadCommitted, ReadCommitted.SQL())
	assert.Equal(t, sql.LevelRepeatableRead, RepeatableRead.SQL())
	assert.Equal(t, sql.LevelSerializable, Serializable.SQL())
}

func TestIsolationLevelJSONRoundTrip(t *testing.T) {
	for _, level := range Levels {
		body, err := json.Marshal(level)
		require.NoError(t, err)

		var back IsolationLevel
		require.NoError(t, json.Unmarshal(body, &back))
		assert.Equal(t, level, back)
	}
}
