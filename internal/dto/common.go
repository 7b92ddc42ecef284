package dto

import (
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
)

// ParseDate parses a calendar date in domain.DateLayout.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationFailedError(field + " must be a date formatted as YYYY-MM-DD")
	}
	return t, nil
}

// IDResponse is returned by endpoints that only need to echo an identifier.
type IDResponse struct {
	ID string `json:"id"`
}

// ErrorResponse is the error body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
