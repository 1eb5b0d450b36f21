package v1

import (
	"errors"
	"net/http"

	"github.com/hearthbudget/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Report errors
var (
	errYearUnsupported     = errors.New("years before 1900 are not supported")
	errMonthNotSetInQuery  = errors.New("the month query parameter must be set in YYYY-MM format")
	errScopeNotSetInQuery  = errors.New("the scope query parameter must be set")
	errCategoryUnresolved  = errors.New("no category was specified and no match rule matched the transaction note")
	errTransactionBadType  = errors.New("the specified transaction type is invalid")
)
