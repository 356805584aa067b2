package tui

import "errors"

// ErrMissingNewsService is returned when the news service is not provided.
var ErrMissingNewsService = errors.New("tui: news service is required")

// ErrInvalidPorts is returned when no ports are provided.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
