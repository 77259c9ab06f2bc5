package rerank

import "errors"

// Common rerank errors
var (
	// ErrMissingConnection is returned when a client is constructed without a connection.
	ErrMissingConnection = errors.New("rerank: missing connection client")

	// ErrInvalidTopN is returned when the configured top_n is negative.
	ErrInvalidTopN = errors.New("rerank: top_n must be at least 1")

	// ErrMalformedResponse is returned when the server response carries no
	// results field or refers to documents that were never sent.
	ErrMalformedResponse = errors.New("rerank: malformed response")
)

// IsMissingConnectionError checks if the error is a missing connection error.
func IsMissingConnectionError(err error) bool {
	return errors.Is(err, ErrMissingConnection)
}

// IsInvalidTopNError checks if the error is an invalid top_n error.
func IsInvalidTopNError(err error) bool {
	return errors.Is(err, ErrInvalidTopN)
}

// IsMalformedResponseError checks if the error is a malformed response error.
func IsMalformedResponseError(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}
