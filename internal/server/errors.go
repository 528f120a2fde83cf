// Package server provides the HTTP REST API for the life grid builder.
package server

import (
	"fmt"
	"net/http"
)

// ErrInvalidCredentials indicates a failed admin login
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid password"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrRender indicates the grid could not be built from the request
type ErrRender struct {
	Message string
}

func (e *ErrRender) Error() string {
	return fmt.Sprintf("grid construction failed: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrRender:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
