package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/reservation-bench/internal/bench"
)

func TestWriteTableRendersOneRowPerSummary(t *testing.T) {
	summaries := []bench.Summary{
		{Users: 5, Isolation: bench.ReadCommitted, Successes: 5, Failures: 0, MeanLatency: 12400 * time.Microsecond},
		{Users: 30, Isolation: bench.Serializable, Successes: 12, Failures: 18, MeanLatency: 31550 * time.Microsecond},
	}

	var sb strings.Builder
	WriteTable(&sb, summaries)
	out := sb.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2+len(summaries), "header, separator and one row per summary")
	assert.Contains(t, out, "READ COMMITTED")
	assert.Contains(t, out, "SERIALIZABLE")
	assert.Contains(t, out, "12.40 ms")
	assert.Contains(t, out, "31.55 ms")
}

func TestDisabledStoreIsANoOp(t *testing.T) {
	s := NewStore(nil)
	assert.False(t, s.Enabled())

	assert.NoError(t, s.Save(context.Background(), bench.Summary{Users: 5}))
	items, err := s.Recent(context.Background(), 10)
	assert.NoError(t, err)
	assert.Empty(t, items)
}
