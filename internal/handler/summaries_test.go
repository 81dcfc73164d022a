package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/reservation-bench/internal/report"
)

func TestParseLimit(t *testing.T) {
	n, err := parseLimit("")
	require.NoError(t, err)
	assert.Equal(t, defaultLimit, n)

	n, err = parseLimit("5")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = parseLimit("100000")
	require.NoError(t, err)
	assert.Equal(t, report.MaxStored, n, "limit is clamped to the history cap")

	for _, raw := range []string{"0", "-3", "abc"} {
		_, err := parseLimit(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestListSummariesUnavailableWithoutStore(t *testing.T) {
	h := NewReportHandler(report.NewStore(nil))
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/summaries", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListSummaries(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
