package embeddings

import "errors"

// Common embeddings errors
var (
	// ErrInvalidChunkSize is returned when the configured chunk size is negative.
	ErrInvalidChunkSize = errors.New("embeddings: chunk size must not be negative")

	// ErrInvalidMaxParallel is returned when the configured parallelism bound is negative.
	ErrInvalidMaxParallel = errors.New("embeddings: max parallel must not be negative")

	// ErrMissingConnection is returned when a client is constructed without a connection.
	ErrMissingConnection = errors.New("embeddings: missing connection client")

	// ErrVectorCountMismatch is returned when the server responds with a
	// different number of vectors than texts sent.
	ErrVectorCountMismatch = errors.New("embeddings: vector count does not match input count")
)

// IsInvalidChunkSizeError checks if the error is an invalid chunk size error.
func IsInvalidChunkSizeError(err error) bool {
	return errors.Is(err, ErrInvalidChunkSize)
}

// IsInvalidMaxParallelError checks if the error is an invalid parallelism error.
func IsInvalidMaxParallelError(err error) bool {
	return errors.Is(err, ErrInvalidMaxParallel)
}

// IsMissingConnectionError checks if the error is a missing connection error.
func IsMissingConnectionError(err error) bool {
	return errors.Is(err, ErrMissingConnection)
}

// IsVectorCountMismatchError checks if the error is a vector count mismatch error.
func IsVectorCountMismatchError(err error) bool {
	return errors.Is(err, ErrVectorCountMismatch)
}
