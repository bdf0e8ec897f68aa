package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"outreach/internal/generate"
	"outreach/internal/models"
	"outreach/internal/schema"

	"github.com/labstack/echo/v4"
)

// GenerateHandler runs the batch for every contact in the request and
// returns the full result once done
func GenerateHandler(orch *generate.Orchestrator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.GenerateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if fe := schema.CheckGenerationRequest(req); !fe.Ok() {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:  "request validation failed",
				Fields: fe,
			})
		}

		var cfg models.GenerationConfig
		if req.Config != nil {
			cfg = *req.Config
		}
		result := orch.Run(c.Request().Context(), req.Account, req.Contacts, cfg, nil)
		return c.JSON(http.StatusOK, result)
	}
}

// GenerateStreamHandler runs the same batch but pushes per-contact status
// updates over SSE while the run is in flight. The final result arrives as
// a terminating "result" event.
func GenerateStreamHandler(orch *generate.Orchestrator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.GenerateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if fe := schema.CheckGenerationRequest(req); !fe.Ok() {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:  "request validation failed",
				Fields: fe,
			})
		}

		resp := c.Response()
		resp.Header().Set(echo.HeaderContentType, "text/event-stream")
		resp.Header().Set("Cache-Control", "no-cache")
		resp.Header().Set("Connection", "keep-alive")
		resp.WriteHeader(http.StatusOK)

		flusher, _ := resp.Writer.(http.Flusher)
		emit := func(event string, payload any) {
			body, err := json.Marshal(payload)
			if err != nil {
				return
			}
			fmt.Fprintf(resp, "event: %s\ndata: %s\n\n", event, body)
			if flusher != nil {
				flusher.Flush()
			}
		}

		var cfg models.GenerationConfig
		if req.Config != nil {
			cfg = *req.Config
		}
		result := orch.Run(c.Request().Context(), req.Account, req.Contacts, cfg, func(s generate.ContactStatus) {
			emit("status", s)
		})
		emit("result", result)
		return nil
	}
}
