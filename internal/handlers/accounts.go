package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"outreach/internal/data"
	"outreach/internal/models"
	"outreach/internal/ranking"

	"github.com/labstack/echo/v4"
)

// ContactsResponse carries the ranked contacts for one account plus the
// default selection.
// @Description Ranked contact list for an account
type ContactsResponse struct {
	AccountIndex int                     `json:"account_index" example:"42"`
	Contacts     []ranking.RankedContact `json:"contacts"`
	AutoSelected []string                `json:"auto_selected" example:"c-104"`
}

// AccountsHandler lists all accounts as selection projections
func AccountsHandler(provider *data.Provider) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := provider.AccountList()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to load accounts: %v", err),
			})
		}
		return c.JSON(http.StatusOK, items)
	}
}

// AccountHandler returns one full account by index
func AccountHandler(provider *data.Provider) echo.HandlerFunc {
	return func(c echo.Context) error {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil || index < 1 {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "account index must be a positive integer",
			})
		}

		acct, err := provider.Account(index)
		if errors.Is(err, data.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: fmt.Sprintf("account %d not found", index),
			})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to load account: %v", err),
			})
		}
		return c.JSON(http.StatusOK, acct)
	}
}

// ContactsHandler returns an account's contacts, ranked and annotated with
// the auto-selection
func ContactsHandler(provider *data.Provider) echo.HandlerFunc {
	return func(c echo.Context) error {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil || index < 1 {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "account index must be a positive integer",
			})
		}

		contacts, err := provider.Contacts(index)
		if errors.Is(err, data.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: fmt.Sprintf("no contacts for account %d", index),
			})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: fmt.Sprintf("Failed to load contacts: %v", err),
			})
		}

		ranked := ranking.Rank(contacts)
		return c.JSON(http.StatusOK, ContactsResponse{
			AccountIndex: index,
			Contacts:     ranked,
			AutoSelected: ranking.AutoSelected(ranked),
		})
	}
}
