package tui

import "errors"

// ErrMissingCatalogService is returned when the catalogue service is not provided.
var ErrMissingCatalogService = errors.New("tui: catalog service is required")

// ErrMissingActionService is returned when the action service is not provided.
var ErrMissingActionService = errors.New("tui: action service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
