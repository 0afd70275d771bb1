package quickchart

import "fmt"

// APIError represents a non-2xx response from the QuickChart API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("quickchart API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("quickchart API error: status %d: %s", e.StatusCode, e.Message)
}

// Retryable reports whether the request may succeed on retry
func (e *APIError) Retryable() bool {
	return e.StatusCode >= 500
}

// URLTooLongError indicates that a GET render URL exceeds the API's limit,
// and the caller should fall back to a short URL.
type URLTooLongError struct {
	Length int
	Limit  int
}

func (e *URLTooLongError) Error() string {
	return fmt.Sprintf("chart URL is %d bytes, exceeds the %d byte GET limit", e.Length, e.Limit)
}
