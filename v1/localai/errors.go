package localai

import "errors"

// Common configuration errors
var (
	// ErrMissingBaseURL is returned when no server base URL is configured.
	ErrMissingBaseURL = errors.New("localai: missing OPENAI_API_BASE")

	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("localai: missing OPENAI_API_KEY")

	// ErrInvalidProxy is returned when the configured proxy URL cannot be parsed.
	ErrInvalidProxy = errors.New("localai: invalid OPENAI_PROXY url")
)

// IsMissingBaseURLError checks if the error is a missing base URL error.
func IsMissingBaseURLError(err error) bool {
	return errors.Is(err, ErrMissingBaseURL)
}

// IsMissingAPIKeyError checks if the error is a missing API key error.
func IsMissingAPIKeyError(err error) bool {
	return errors.Is(err, ErrMissingAPIKey)
}

// IsInvalidProxyError checks if the error is an invalid proxy URL error.
func IsInvalidProxyError(err error) bool {
	return errors.Is(err, ErrInvalidProxy)
}
