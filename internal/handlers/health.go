package handlers

import (
	"context"
	"net/http"
	"time"

	"outreach/internal/models"
	"outreach/internal/store"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles basic health check requests
func HealthHandler(version string) echo.HandlerFunc {
	return func(c echo.Context) error {
		response := models.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC(),
			Version:   version,
		}

		return c.JSON(http.StatusOK, response)
	}
}

// StoreHealthHandler handles persistence health check requests
func StoreHealthHandler(st store.Store, backend string) echo.HandlerFunc {
	return func(c echo.Context) error {
		response := models.StoreHealthResponse{
			Status:    "unknown",
			Timestamp: time.Now().UTC(),
			Backend:   backend,
		}

		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		err := st.Ping(ctx)
		response.Latency = time.Since(start)

		if err != nil {
			response.Status = "unhealthy"
			response.Error = err.Error()
			return c.JSON(http.StatusServiceUnavailable, response)
		}

		response.Status = "healthy"
		return c.JSON(http.StatusOK, response)
	}
}

// RootHandler handles requests to the root endpoint
func RootHandler(version string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Outreach API",
			"version": version,
			"status":  "running",
		})
	}
}
