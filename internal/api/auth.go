package api

import (
	"context"
	"net/http"

	"github.com/stayhub/stayctl/internal/gateway"
	"github.com/stayhub/stayctl/internal/models"
)

type AuthClient struct {
	base
}

func NewAuthClient(sender Sender, tokens gateway.TokenSource) *AuthClient {
	return &AuthClient{base{sender: sender, tokens: tokens}}
}

func (c *AuthClient) Register(ctx context.Context, registration models.Registration) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.send(ctx, gateway.RequestDescriptor{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   registration,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *AuthClient) Login(ctx context.Context, credentials models.Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.send(ctx, gateway.RequestDescriptor{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   credentials,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *AuthClient) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := c.send(ctx, gateway.RequestDescriptor{
		Method:       http.MethodGet,
		Path:         "/auth/profile",
		RequiresAuth: true,
	}, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *AuthClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.ProfileUpdateResponse, error) {
	var resp models.ProfileUpdateResponse
	err := c.send(ctx, gateway.RequestDescriptor{
		Method:       http.MethodPut,
		Path:         "/auth/profile",
		RequiresAuth: true,
		Body:         update,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
