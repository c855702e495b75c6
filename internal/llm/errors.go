package llm

import "errors"

// ErrRateLimited marks quota exhaustion on the generation or embedding API.
// Callers check for it with errors.Is and degrade instead of retrying.
var ErrRateLimited = errors.New("llm: rate limited")

// ErrNotConfigured is returned when no API key was provided.
var ErrNotConfigured = errors.New("llm: api key not configured")
