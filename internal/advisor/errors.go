package advisor

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/folio/internal/llm"
)

// GenericErrorMessage is the only failure text shown to users.
const GenericErrorMessage = "Advice could not be generated right now. Please try again."

// EmptyAdvice replaces a blank model reply.
const EmptyAdvice = "No advice could be generated."

// ErrMissingData indicates a request without project, team or results.
var ErrMissingData = errors.New("missing required data in request body")

// FailureKind groups provider failures by how callers react to them.
type FailureKind int

const (
	FailureTransport FailureKind = iota
	FailureUpstream
	FailureCredential
	FailureCanceled
)

func (k FailureKind) String() string {
	switch k {
	case FailureUpstream:
		return "upstream"
	case FailureCredential:
		return "credential"
	case FailureCanceled:
		return "canceled"
	default:
		return "transport"
	}
}

// Error is a classified advice failure. The wrapped error is for logs only.
type Error struct {
	Kind FailureKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("advice %s failure: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Classify maps a provider error to its failure kind.
func Classify(err error) FailureKind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	switch {
	case errors.Is(err, context.Canceled):
		return FailureCanceled
	case errors.Is(err, llm.ErrMissingCredential):
		return FailureCredential
	case errors.Is(err, llm.ErrUpstreamStatus), errors.Is(err, llm.ErrInvalidOutput):
		return FailureUpstream
	default:
		return FailureTransport
	}
}

// UserMessage returns the text to show for err. Provider detail never leaks.
func UserMessage(err error) string {
	if errors.Is(err, ErrMissingData) {
		return "Missing required data in request body."
	}
	return GenericErrorMessage
}
