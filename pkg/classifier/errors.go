package classifier

import "errors"

var (
	// ErrCredentialMissing marks a provider skipped for lack of a key. It is a
	// skip signal, never surfaced as a failure.
	ErrCredentialMissing = errors.New("credential missing")

	// ErrProviderTransport wraps network and API errors from a provider call
	ErrProviderTransport = errors.New("provider transport failure")

	// ErrMalformedOutput is returned when provider output is not the expected two-key object
	ErrMalformedOutput = errors.New("malformed provider output")

	// ErrProviderLogic covers any other failure during a provider attempt
	ErrProviderLogic = errors.New("provider logic failure")
)
