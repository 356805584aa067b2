package news

import "errors"

// Error definitions for the news view.
var (
	// ErrNoNewsService indicates that no news service was provided.
	ErrNoNewsService = errors.New("news service is required")
)
