package content

import (
	"fmt"
	"net/http"
)

// Kind classifies a request failure so the HTTP boundary can pick a status
// code. Every failure is terminal for its request; nothing is retried.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindBackend       Kind = "backend"
	KindSerialization Kind = "serialization"
)

// Error is the tagged failure produced anywhere between decoding a request
// body and receiving generated text.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the failure kind to a response status. Validation problems
// are the caller's fault, backend problems are the provider's.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindBackend:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError reports a malformed or incomplete request body.
func ValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// BackendError wraps a generation-backend failure. All provider failure
// modes (network, auth, quota, malformed response) collapse into this one
// kind.
func BackendError(err error) *Error {
	return &Error{Kind: KindBackend, Message: "generation backend failed", Err: err}
}

// SerializationError reports a response that could not be encoded.
func SerializationError(err error) *Error {
	return &Error{Kind: KindSerialization, Message: "failed to encode response", Err: err}
}
