package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"outreach/internal/export"
	"outreach/internal/models"
	"outreach/internal/schema"

	"github.com/labstack/echo/v4"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ExportHandler renders a sequence as a .docx attachment
func ExportHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ExportRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if fe := schema.CheckSequence(req.Emails); !fe.Ok() {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:  "sequence validation failed",
				Fields: fe,
			})
		}

		var buf bytes.Buffer
		if err := export.Document(&buf, req.AccountName, req.ContactName, req.Emails); err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to render document: %v", err),
			})
		}

		filename := export.Filename(req.ContactName)
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename=%q`, filename))
		return c.Blob(http.StatusOK, docxMIME, buf.Bytes())
	}
}
