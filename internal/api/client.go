// Package api holds the resource clients. Each client is a fixed catalog of
// request descriptors dispatched through the gateway with the token read
// from a TokenSource at call time.
package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
	"github.com/stayhub/stayctl/internal/gateway"
)

// Sender is implemented by *gateway.Gateway.
type Sender interface {
	Send(ctx context.Context, desc gateway.RequestDescriptor, token string, out any) error
}

type base struct {
	sender Sender
	tokens gateway.TokenSource
}

func (b base) send(ctx context.Context, desc gateway.RequestDescriptor, out any) error {
	token := ""
	if desc.RequiresAuth && b.tokens != nil {
		token = b.tokens.Token()
	}
	return b.sender.Send(ctx, desc, token, out)
}

// resourcePath joins a collection path with escaped id segments.
func resourcePath(collection string, segments ...string) string {
	path := collection
	for _, segment := range segments {
		path += "/" + url.PathEscape(segment)
	}
	return path
}

// encodeQuery drops every zero valued filter so absent keys are never sent.
func encodeQuery(filters any) (url.Values, error) {
	values, err := query.Values(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}
	return values, nil
}

// Clients bundles every resource client for one token source.
type Clients struct {
	Auth     *AuthClient
	Hotels   *HotelsClient
	Bookings *BookingsClient
	Health   *HealthClient
}

func NewClients(sender Sender, tokens gateway.TokenSource) *Clients {
	return &Clients{
		Auth:     NewAuthClient(sender, tokens),
		Hotels:   NewHotelsClient(sender, tokens),
		Bookings: NewBookingsClient(sender, tokens),
		Health:   NewHealthClient(sender),
	}
}
