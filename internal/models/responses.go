package models

import "time"

// HealthResponse represents a basic health check response
// @Description Health check response
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`                 // Health status
	Timestamp time.Time `json:"timestamp" example:"2026-01-01T00:00:00Z"` // Timestamp of the check
	Version   string    `json:"version" example:"1.0.0"`                  // Application version
}

// StoreHealthResponse represents a persistence health check response
// @Description Store health check response
type StoreHealthResponse struct {
	Status    string        `json:"status" example:"healthy"`                   // Health status
	Timestamp time.Time     `json:"timestamp" example:"2026-01-01T00:00:00Z"`   // Timestamp of the check
	Backend   string        `json:"backend" example:"memory"`                   // Configured store backend
	Latency   time.Duration `json:"latency" swaggertype:"string" example:"1ms"` // Store ping latency
	Error     string        `json:"error,omitempty" example:""`                 // Error message if any
}

// DeleteResponse reports the outcome of a delete by id.
// @Description Delete outcome
type DeleteResponse struct {
	Deleted bool   `json:"deleted" example:"true"`
	ID      string `json:"id" example:"7f6b1e0a-3a70-4f0e-9c2d-1df3a8b0c9e4"`
}
