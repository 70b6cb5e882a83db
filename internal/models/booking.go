package models

import (
	"errors"
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// BookingHotel is the hotel summary embedded in booking listings.
type BookingHotel struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

type Booking struct {
	ID              ID            `json:"id" validate:"required"`
	HotelID         ID            `json:"hotel_id,omitempty"`
	Hotel           *BookingHotel `json:"hotel,omitempty"`
	CheckInDate     string        `json:"check_in_date"`
	CheckOutDate    string        `json:"check_out_date"`
	NumGuests       int           `json:"num_guests"`
	RoomType        string        `json:"room_type"`
	TotalPrice      float64       `json:"total_price"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	CreatedAt       string        `json:"created_at,omitempty"`
}

// HotelName returns the embedded hotel name, or the hotel id when the
// listing did not include one.
func (b *Booking) HotelName() string {
	if b.Hotel != nil && len(b.Hotel.Name) > 0 {
		return b.Hotel.Name
	}
	if b.Hotel != nil {
		return b.Hotel.ID.String()
	}
	return b.HotelID.String()
}

// BookingRequest is the create body. Dates use YYYY-MM-DD.
type BookingRequest struct {
	HotelID         ID     `json:"hotel_id" validate:"required"`
	CheckInDate     string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate    string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	NumGuests       int    `json:"num_guests" validate:"required,min=1"`
	RoomType        string `json:"room_type" validate:"required"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

// BookingUpdate only sends the fields that were set.
type BookingUpdate struct {
	CheckInDate     string `json:"check_in_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate    string `json:"check_out_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	NumGuests       int    `json:"num_guests,omitempty" validate:"omitempty,min=1"`
	RoomType        string `json:"room_type,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type BookingFilters struct {
	Page    int    `url:"page,omitempty"`
	PerPage int    `url:"per_page,omitempty"`
	Status  string `url:"status,omitempty"`
}

type BookingList struct {
	Bookings   []Booking  `json:"bookings" validate:"dive"`
	Pagination Pagination `json:"pagination"`
}

// BookingEnvelope wraps create and update responses.
type BookingEnvelope struct {
	Message string   `json:"message,omitempty"`
	Booking *Booking `json:"booking" validate:"required"`
}

type CancelResponse struct {
	Message   string `json:"message"`
	BookingID ID     `json:"booking_id" validate:"required"`
}

var ErrStayTooShort = errors.New("check out date must be after check in date")

// Validate checks the request fields and that the stay covers at least
// one night.
func (b BookingRequest) Validate() error {
	if err := formValidator.Struct(b); err != nil {
		return fmt.Errorf("invalid booking: %w", err)
	}
	return checkStay(b.CheckInDate, b.CheckOutDate)
}

func (b BookingUpdate) Validate() error {
	if err := formValidator.Struct(b); err != nil {
		return fmt.Errorf("invalid booking update: %w", err)
	}
	if len(b.CheckInDate) > 0 && len(b.CheckOutDate) > 0 {
		return checkStay(b.CheckInDate, b.CheckOutDate)
	}
	return nil
}

func (b BookingUpdate) IsEmpty() bool {
	return len(b.CheckInDate) == 0 &&
		len(b.CheckOutDate) == 0 &&
		b.NumGuests == 0 &&
		len(b.RoomType) == 0 &&
		len(b.SpecialRequests) == 0
}

// Nights is the number of nights between two YYYY-MM-DD dates.
func Nights(checkIn string, checkOut string) (int, error) {
	in, err := time.Parse(time.DateOnly, checkIn)
	if err != nil {
		return 0, fmt.Errorf("invalid check in date %q: %w", checkIn, err)
	}
	out, err := time.Parse(time.DateOnly, checkOut)
	if err != nil {
		return 0, fmt.Errorf("invalid check out date %q: %w", checkOut, err)
	}
	return int(out.Sub(in).Hours() / 24), nil
}

func checkStay(checkIn string, checkOut string) error {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return err
	}
	if nights < 1 {
		return ErrStayTooShort
	}
	return nil
}
