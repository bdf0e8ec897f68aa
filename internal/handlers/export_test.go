package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"outreach/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHandler(t *testing.T) {
	t.Run("returns a docx attachment", func(t *testing.T) {
		e := echo.New()
		req := models.ExportRequest{
			AccountName: "Mercy General Health",
			ContactName: "Dana Whitfield",
			Emails:      testSequence(),
		}
		c, rec := postJSON(t, e, "/api/export", req)

		require.NoError(t, ExportHandler()(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, docxMIME, rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "dana-whitfield.docx")

		body := rec.Body.Bytes()
		require.Greater(t, len(body), 4)
		assert.Equal(t, []byte("PK"), body[:2])
	})

	t.Run("rejects malformed sequence", func(t *testing.T) {
		e := echo.New()
		req := models.ExportRequest{
			AccountName: "Mercy General Health",
			ContactName: "Dana Whitfield",
			Emails:      testSequence()[:2],
		}
		c, rec := postJSON(t, e, "/api/export", req)

		require.NoError(t, ExportHandler()(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Fields, "emails")
	})
}
