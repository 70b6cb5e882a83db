package api

import (
	"context"
	"net/http"

	"github.com/stayhub/stayctl/internal/gateway"
	"github.com/stayhub/stayctl/internal/models"
)

type BookingsClient struct {
	base
}

func NewBookingsClient(sender Sender, tokens gateway.TokenSource) *BookingsClient {
	return &BookingsClient{base{sender: sender, tokens: tokens}}
}

func (c *BookingsClient) Create(ctx context.Context, request models.BookingRequest) (*models.Booking, error) {
	var envelope models.BookingEnvelope
	err := c.send(ctx, gateway.RequestDescriptor{
		Method:       http.MethodPost,
		Path:         "/bookings",
		RequiresAuth: true,
		Body:         request,
	}, &envelope)
	if err != nil {
		return nil, err
	}
	return envelope.Booking, nil
}

func (c *BookingsClient) List(ctx context.Context, filters models.BookingFilters) (*models.BookingList, error) {
	values, err := encodeQuery(filters)
	if err != nil {
		return nil, err
	}

	var list models.BookingList
	err = c.send(ctx, gateway.RequestDescriptor{
		Method:       http.MethodGet,
		Path:         "/bookings",
		Query:        values,
		RequiresAuth: true,
	}, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *BookingsClient) Get(ctx context.Context, bookingID models.ID) (*models.Booking, error) {
	var booking models.Booking
	err := c.send(ctx, gateway.RequestDescriptor{
		Method:       http.MethodGet,
		Path:         resourcePath("/bookings", bookingID.String()),
		RequiresAuth: true,
	}, &booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *BookingsClient) Update(ctx context.Context, bookingID models.ID, update models.BookingUpdate) (*models.Booking, error) {
	var envelope models.BookingEnvelope
	err := c.send(ctx, gateway.RequestDescriptor{
		Method:       http.MethodPut,
		Path:         resourcePath("/bookings", bookingID.String()),
		RequiresAuth: true,
		Body:         update,
	}, &envelope)
	if err != nil {
		return nil, err
	}
	return envelope.Booking, nil
}

func (c *BookingsClient) Cancel(ctx context.Context, bookingID models.ID) (*models.CancelResponse, error) {
	var resp models.CancelResponse
	err := c.send(ctx, gateway.RequestDescriptor{
		Method:       http.MethodPost,
		Path:         resourcePath("/bookings", bookingID.String(), "cancel"),
		RequiresAuth: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
