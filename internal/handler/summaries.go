package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/reservation-bench/internal/bench"
	"github.com/iliyamo/reservation-bench/internal/report"
)

// ReportHandler serves stored run summaries over HTTP so results can
// be inspected while (or after) campaigns run elsewhere.
type ReportHandler struct {
	Store *report.Store
}

// NewReportHandler constructs a ReportHandler.  The store must be
// non-nil (a disabled store is fine).
func NewReportHandler(store *report.Store) *ReportHandler {
	if store == nil {
		panic("nil store passed to NewReportHandler")
	}
	return &ReportHandler{Store: store}
}

// defaultLimit is how many summaries a request gets without ?limit.
const defaultLimit = 20

// ListSummaries handles GET /v1/summaries.  It returns the most recent
// run summaries, newest first.  The optional ?limit query parameter
// caps the count (default 20, never more than the stored history).
// When summary persistence is disabled because Redis is unreachable,
// it responds with 503.
func (h *ReportHandler) ListSummaries(c echo.Context) error {
	if !h.Store.Enabled() {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "summary store unavailable"})
	}
	limit, err := parseLimit(c.QueryParam("limit"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
	}
	items, err := h.Store.Recent(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load summaries"})
	}
	if items == nil {
		items = []bench.Summary{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// parseLimit interprets the ?limit query parameter.  Empty means the
// default; values above the history cap are clamped so a client cannot
// force an arbitrarily large range read.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	if n > report.MaxStored {
		n = report.MaxStored
	}
	return n, nil
}
