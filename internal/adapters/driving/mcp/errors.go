// Package mcp provides an MCP (Model Context Protocol) server adapter for Stony News.
// It lets AI assistants request grounded news dossiers on a topic.
package mcp

import "errors"

// ErrMissingNewsService is returned when the news service is not provided.
var ErrMissingNewsService = errors.New("mcp: news service is required")
