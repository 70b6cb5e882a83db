package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRequest_Validate(t *testing.T) {
	valid := BookingRequest{
		HotelID:      "h1",
		CheckInDate:  "2030-01-01",
		CheckOutDate: "2030-01-03",
		NumGuests:    2,
		RoomType:     "standard",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *BookingRequest)
	}{
		{"missing hotel", func(r *BookingRequest) { r.HotelID = "" }},
		{"bad check in", func(r *BookingRequest) { r.CheckInDate = "01/01/2030" }},
		{"no guests", func(r *BookingRequest) { r.NumGuests = 0 }},
		{"no room type", func(r *BookingRequest) { r.RoomType = "" }},
		{"same day", func(r *BookingRequest) { r.CheckOutDate = r.CheckInDate }},
		{"check out first", func(r *BookingRequest) { r.CheckOutDate = "2029-12-31" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := valid
			tt.mutate(&request)
			assert.Error(t, request.Validate())
		})
	}
}

func TestBookingUpdate_Validate(t *testing.T) {
	assert.True(t, BookingUpdate{}.IsEmpty())
	assert.NoError(t, BookingUpdate{NumGuests: 3}.Validate())
	assert.NoError(t, BookingUpdate{CheckInDate: "2030-01-01"}.Validate())
	assert.Error(t, BookingUpdate{CheckInDate: "tomorrow"}.Validate())

	err := BookingUpdate{CheckInDate: "2030-01-05", CheckOutDate: "2030-01-01"}.Validate()
	assert.True(t, errors.Is(err, ErrStayTooShort))
}

func TestNights(t *testing.T) {
	nights, err := Nights("2030-02-27", "2030-03-02")
	require.NoError(t, err)
	assert.Equal(t, 3, nights)

	_, err = Nights("2030-02-30", "2030-03-02")
	assert.Error(t, err)
}

func TestRegistration_ValidateForm(t *testing.T) {
	valid := Registration{
		Username:  "jane",
		Email:     "jane@x.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Password:  "secret1",
	}
	require.NoError(t, valid.ValidateForm("secret1"))

	tests := []struct {
		name     string
		mutate   func(r *Registration)
		confirm  string
		expected string
	}{
		{"passwords differ", func(r *Registration) {}, "other", "passwords do not match"},
		{"short password", func(r *Registration) { r.Password = "abc" }, "abc", "password must be at least 6 characters long"},
		{"missing first name", func(r *Registration) { r.FirstName = "" }, "secret1", "first name is required"},
		{"bad email", func(r *Registration) { r.Email = "jane" }, "secret1", "please enter a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registration := valid
			tt.mutate(&registration)
			err := registration.ValidateForm(tt.confirm)
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}
