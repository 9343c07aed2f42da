package types

import "errors"

var (
	// ErrMissingAPIKey is returned when a provider is constructed without a key
	ErrMissingAPIKey = errors.New("missing api key")

	// ErrInvalidMessage is returned when a message is invalid
	ErrInvalidMessage = errors.New("invalid message")

	// ErrEmptyResponse is returned when the provider returns an empty response
	ErrEmptyResponse = errors.New("empty response from provider")
)
