package handler // declare the package name; contains HTTP handlers for the report server

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for the report server
)

// Health is a simple health-check endpoint used by monitoring systems
// to verify that the report server is running.  It returns a plain
// text "ok" message with an HTTP 200 status code.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
