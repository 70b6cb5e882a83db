package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "ValidationError"
	KindAuth       Kind = "AuthError"
	KindNotFound   Kind = "NotFoundError"
	KindConflict   Kind = "ConflictError"
	KindServer     Kind = "ServerError"
	KindNetwork    Kind = "NetworkError"
	KindParse      Kind = "ParseError"
)

const genericFailureMessage = "Something went wrong on the server, please try again later"

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrAuth       = &Error{Kind: KindAuth}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrConflict   = &Error{Kind: KindConflict}
	ErrServer     = &Error{Kind: KindServer}
	ErrNetwork    = &Error{Kind: KindNetwork}
	ErrParse      = &Error{Kind: KindParse}
)

// Error is the only error type produced by the gateway.
type Error struct {
	Kind       Kind
	Message    string
	HTTPStatus int // zero when no response was received
	cause      error
}

func (e *Error) Error() string {
	if e.HTTPStatus > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// UserMessage is the text shown to an end user. Conflict and server
// failures are reported generically, everything else verbatim.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindConflict, KindServer:
		return genericFailureMessage
	default:
		return e.Message
	}
}

// KindForStatus maps a non-2xx HTTP status to an error kind.
func KindForStatus(status int) Kind {
	switch {
	case status == http.StatusBadRequest:
		return KindValidation
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindServer
	}
}

// KindOf returns the kind of a gateway error anywhere in err's chain, or
// an empty kind.
func KindOf(err error) Kind {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Kind
	}
	return ""
}

// MessageOf returns the message a caller records for err.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Message
	}
	return err.Error()
}

func newStatusError(status int, message string) *Error {
	if len(message) == 0 {
		message = fmt.Sprintf("HTTP error! status: %d", status)
	}
	return &Error{
		Kind:       KindForStatus(status),
		Message:    message,
		HTTPStatus: status,
	}
}

func newParseError(status int, cause error) *Error {
	return &Error{
		Kind:       KindParse,
		Message:    fmt.Sprintf("failed to parse response: %v", cause),
		HTTPStatus: status,
		cause:      cause,
	}
}

func newNetworkError(message string, cause error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: message,
		cause:   cause,
	}
}
