package gateway

import (
	"net/url"
)

// RequestDescriptor describes one outbound API call. Path is relative to
// the configured endpoint.
type RequestDescriptor struct {
	Method       string
	Path         string
	Query        url.Values
	RequiresAuth bool
	Body         any
}

// TokenSource supplies the bearer token at call time.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource for a fixed token.
type StaticToken string

func (s StaticToken) Token() string {
	return string(s)
}
