package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stayhub/stayctl/internal/gateway"
	"github.com/stayhub/stayctl/internal/models"
)

type HotelsClient struct {
	base
}

func NewHotelsClient(sender Sender, tokens gateway.TokenSource) *HotelsClient {
	return &HotelsClient{base{sender: sender, tokens: tokens}}
}

func (c *HotelsClient) List(ctx context.Context, filters models.HotelFilters) (*models.HotelList, error) {
	values, err := encodeQuery(filters)
	if err != nil {
		return nil, err
	}

	var list models.HotelList
	err = c.send(ctx, gateway.RequestDescriptor{
		Method: http.MethodGet,
		Path:   "/hotels",
		Query:  values,
	}, &list)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *HotelsClient) Get(ctx context.Context, hotelID models.ID) (*models.Hotel, error) {
	var hotel models.Hotel
	err := c.send(ctx, gateway.RequestDescriptor{
		Method: http.MethodGet,
		Path:   resourcePath("/hotels", hotelID.String()),
	}, &hotel)
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

// Search always sends q, even when empty; the server rejects empty queries.
func (c *HotelsClient) Search(ctx context.Context, q string) (*models.HotelSearchResult, error) {
	var result models.HotelSearchResult
	err := c.send(ctx, gateway.RequestDescriptor{
		Method: http.MethodGet,
		Path:   "/hotels/search",
		Query:  url.Values{"q": {q}},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HotelsClient) CheckAvailability(ctx context.Context, hotelID models.ID, checkIn string, checkOut string) (*models.Availability, error) {
	values, err := encodeQuery(struct {
		CheckIn  string `url:"check_in,omitempty"`
		CheckOut string `url:"check_out,omitempty"`
	}{checkIn, checkOut})
	if err != nil {
		return nil, err
	}

	var availability models.Availability
	err = c.send(ctx, gateway.RequestDescriptor{
		Method: http.MethodGet,
		Path:   resourcePath("/hotels", hotelID.String(), "availability"),
		Query:  values,
	}, &availability)
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

func (c *HotelsClient) Create(ctx context.Context, input models.HotelInput) (*models.MutationResponse, error) {
	var resp models.MutationResponse
	err := c.send(ctx, gateway.RequestDescriptor{
		Method:       http.MethodPost,
		Path:         "/hotels",
		RequiresAuth: true,
		Body:         input,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HotelsClient) Update(ctx context.Context, hotelID models.ID, input models.HotelInput) (*models.MutationResponse, error) {
	var resp models.MutationResponse
	err := c.send(ctx, gateway.RequestDescriptor{
		Method:       http.MethodPut,
		Path:         resourcePath("/hotels", hotelID.String()),
		RequiresAuth: true,
		Body:         input,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HotelsClient) Delete(ctx context.Context, hotelID models.ID) (*models.MutationResponse, error) {
	var resp models.MutationResponse
	err := c.send(ctx, gateway.RequestDescriptor{
		Method:       http.MethodDelete,
		Path:         resourcePath("/hotels", hotelID.String()),
		RequiresAuth: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
