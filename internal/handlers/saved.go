package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"outreach/internal/models"
	"outreach/internal/schema"
	"outreach/internal/store"

	"github.com/labstack/echo/v4"
)

// SaveHandler persists an accepted sequence and returns the stored record
func SaveHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.SaveRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if fe := schema.CheckSaveRequest(req); !fe.Ok() {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:  "request validation failed",
				Fields: fe,
			})
		}

		saved, err := st.Save(c.Request().Context(), req)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to save sequence: %v", err),
			})
		}
		return c.JSON(http.StatusCreated, saved)
	}
}

// ListSavedHandler lists saved sequence metadata, newest first. An optional
// ?account= query narrows the listing to one account.
func ListSavedHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		accountIndex := 0
		if raw := c.QueryParam("account"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				return c.JSON(http.StatusBadRequest, models.ErrorResponse{
					Error: "account filter must be a positive integer",
				})
			}
			accountIndex = n
		}

		metas, err := st.List(c.Request().Context(), accountIndex)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to list saved sequences: %v", err),
			})
		}
		return c.JSON(http.StatusOK, metas)
	}
}

// GetSavedHandler returns one saved sequence with its full email bodies
func GetSavedHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		saved, err := st.Get(c.Request().Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: fmt.Sprintf("saved sequence %s not found", id),
			})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to load saved sequence: %v", err),
			})
		}
		return c.JSON(http.StatusOK, saved)
	}
}

// DeleteSavedHandler removes one saved sequence by id
func DeleteSavedHandler(st store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		deleted, err := st.Delete(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to delete saved sequence: %v", err),
			})
		}
		if !deleted {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: fmt.Sprintf("saved sequence %s not found", id),
			})
		}
		return c.JSON(http.StatusOK, models.DeleteResponse{Deleted: true, ID: id})
	}
}
