// Package types provides type definitions for structured data used throughout the lifegrid system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// GridRequest represents a request to build a life grid, either from the CLI
// (after loading event files) or from the HTTP API request body.
type GridRequest struct {
	BirthDate         string       `json:"birth_date" validate:"required,datetime=2006-01-02"`
	StartYear         int          `json:"start_year,omitempty" validate:"omitempty,min=1"`
	EndYear           int          `json:"end_year,omitempty" validate:"omitempty,min=1"`
	Personal          EventMapping `json:"personal,omitempty"`
	World             EventMapping `json:"world,omitempty"`
	President         EventMapping `json:"president,omitempty"`
	IncludeWorld      bool         `json:"include_world,omitempty"`
	IncludePresident  bool         `json:"include_president,omitempty"`
	ShowPersonalDates bool         `json:"show_personal_dates,omitempty"`
	Compact           bool         `json:"compact,omitempty"`
	MeasuredWidth     float64      `json:"measured_width,omitempty"`
	ViewportWidth     float64      `json:"viewport_width,omitempty"`
	Palette           []string     `json:"palette,omitempty"`
}

// LoginRequest represents the login request for the HTTP API.
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// Validate validates the GridRequest using the validator.
func (r *GridRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
