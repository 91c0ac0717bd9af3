// Package server provides the HTTP REST API for the matching engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/LAWSA07/ProFel/internal/schemas"
	"github.com/LAWSA07/ProFel/internal/sources"
	"github.com/LAWSA07/ProFel/internal/store"
)

// ErrValidation indicates a request body failed validation.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrBadRequest indicates a malformed request body.
type ErrBadRequest struct {
	Message string
}

func (e *ErrBadRequest) Error() string {
	return e.Message
}

// HTTPStatus maps an error to the HTTP status code it should produce.
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var badRequestErr *ErrBadRequest
	var schemaErr *schemas.ValidationError

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &badRequestErr),
		errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.Is(err, sources.ErrUnsupportedPlatform):
		return http.StatusBadRequest
	case errors.Is(err, sources.ErrProfileNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
