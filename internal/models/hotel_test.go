package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotel_Location(t *testing.T) {
	tests := []struct {
		hotel    Hotel
		expected string
	}{
		{Hotel{City: "Miami", State: "FL", Country: "USA"}, "Miami, FL"},
		{Hotel{City: "Paris", Country: "France"}, "Paris, France"},
		{Hotel{City: "Lisbon"}, "Lisbon"},
		{Hotel{Address: "1 Main St"}, "1 Main St"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.hotel.Location())
	}
}

func TestBooking_HotelName(t *testing.T) {
	assert.Equal(t, "Inn", (&Booking{Hotel: &BookingHotel{ID: "h1", Name: "Inn"}}).HotelName())
	assert.Equal(t, "h1", (&Booking{Hotel: &BookingHotel{ID: "h1"}}).HotelName())
	assert.Equal(t, "h2", (&Booking{HotelID: "h2"}).HotelName())
}

func TestHotelInput_OmitsUnsetNumbers(t *testing.T) {
	price := 0.0
	data, err := json.Marshal(HotelInput{Name: "Inn", PricePerNight: &price})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Inn", "price_per_night": 0}`, string(data))
}
