// Package router wires HTTP routes for the report server.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/reservation-bench/internal/handler"
)

// RegisterRoutes registers the report server's routes on the provided
// Echo instance: a health check for monitoring and the read-only
// summary listing.
func RegisterRoutes(e *echo.Echo, r *handler.ReportHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/v1/summaries", r.ListSummaries)
}
