package api

import (
	"context"
	"net/http"

	"github.com/stayhub/stayctl/internal/gateway"
	"github.com/stayhub/stayctl/internal/models"
)

type HealthClient struct {
	base
}

func NewHealthClient(sender Sender) *HealthClient {
	return &HealthClient{base{sender: sender}}
}

func (c *HealthClient) Check(ctx context.Context) (*models.Health, error) {
	var health models.Health
	err := c.send(ctx, gateway.RequestDescriptor{
		Method: http.MethodGet,
		Path:   "/health",
	}, &health)
	if err != nil {
		return nil, err
	}
	return &health, nil
}
