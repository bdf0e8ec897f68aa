package handlers

import (
	"fmt"
	"net/http"

	"outreach/internal/models"
	"outreach/internal/rules"

	"github.com/labstack/echo/v4"
)

// ValidateRequest is the request body for standalone sequence validation.
// @Description Validation request payload
type ValidateRequest struct {
	Emails models.EmailSequence `json:"emails"`
}

// ValidateHandler runs the copy rulebook over an edited sequence without
// persisting anything
func ValidateHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req ValidateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if len(req.Emails) == 0 {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "emails must not be empty",
			})
		}

		return c.JSON(http.StatusOK, rules.ValidateSequence(req.Emails))
	}
}
