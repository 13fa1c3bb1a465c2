package llm

import "errors"

var (
	// ErrUnavailable indicates the provider endpoint is unreachable.
	ErrUnavailable = errors.New("llm provider unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrMissingCredential indicates the provider needs an API key that is not configured.
	ErrMissingCredential = errors.New("llm api key not configured")

	// ErrUpstreamStatus indicates the provider answered with a non-2xx status.
	ErrUpstreamStatus = errors.New("llm provider returned error status")

	// ErrInvalidOutput indicates the provider response could not be decoded.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
