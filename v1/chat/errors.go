package chat

import "errors"

// Common chat errors
var (
	// ErrMissingConnection is returned when a client is constructed without a connection.
	ErrMissingConnection = errors.New("chat: missing connection client")

	// ErrInvalidTemperature is returned when the configured temperature is
	// outside the [0, 2] range.
	ErrInvalidTemperature = errors.New("chat: temperature must be between 0 and 2")

	// ErrInvalidMaxTokens is returned when the configured completion limit
	// is negative.
	ErrInvalidMaxTokens = errors.New("chat: max tokens must not be negative")

	// ErrEmptyMessages is returned when a completion is requested without
	// any input messages.
	ErrEmptyMessages = errors.New("chat: no input messages")

	// ErrEmptyResponse is returned when the server reply carries no choices.
	ErrEmptyResponse = errors.New("chat: response contains no choices")

	// ErrMissingTools is returned when a tool binding or a forced tool
	// choice is requested without any tools.
	ErrMissingTools = errors.New("chat: no tools provided")
)

// IsMissingConnectionError checks if the error is a missing connection error.
func IsMissingConnectionError(err error) bool {
	return errors.Is(err, ErrMissingConnection)
}

// IsInvalidTemperatureError checks if the error is an invalid temperature error.
func IsInvalidTemperatureError(err error) bool {
	return errors.Is(err, ErrInvalidTemperature)
}

// IsInvalidMaxTokensError checks if the error is an invalid max tokens error.
func IsInvalidMaxTokensError(err error) bool {
	return errors.Is(err, ErrInvalidMaxTokens)
}

// IsEmptyMessagesError checks if the error is an empty input error.
func IsEmptyMessagesError(err error) bool {
	return errors.Is(err, ErrEmptyMessages)
}

// IsEmptyResponseError checks if the error is an empty response error.
func IsEmptyResponseError(err error) bool {
	return errors.Is(err, ErrEmptyResponse)
}

// IsMissingToolsError checks if the error is a missing tools error.
func IsMissingToolsError(err error) bool {
	return errors.Is(err, ErrMissingTools)
}
