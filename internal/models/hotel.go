package models

// Hotel as returned by the list, detail and search endpoints. The list and
// search endpoints return a subset of the fields.
type Hotel struct {
	ID             ID       `json:"id" yaml:"id" validate:"required"`
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	Address        string   `json:"address,omitempty" yaml:"address,omitempty"`
	City           string   `json:"city,omitempty" yaml:"city,omitempty"`
	State          string   `json:"state,omitempty" yaml:"state,omitempty"`
	Country        string   `json:"country,omitempty" yaml:"country,omitempty"`
	ZipCode        string   `json:"zip_code,omitempty" yaml:"zip_code,omitempty"`
	Phone          string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email          string   `json:"email,omitempty" yaml:"email,omitempty"`
	Website        string   `json:"website,omitempty" yaml:"website,omitempty"`
	Rating         float64  `json:"rating" yaml:"rating"`
	PricePerNight  float64  `json:"price_per_night" yaml:"price_per_night"`
	TotalRooms     int      `json:"total_rooms,omitempty" yaml:"total_rooms,omitempty"`
	AvailableRooms int      `json:"available_rooms" yaml:"available_rooms"`
	Amenities      []string `json:"amenities,omitempty" yaml:"amenities,omitempty"`
	Images         []string `json:"images,omitempty" yaml:"images,omitempty"`
	CreatedAt      string   `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Location is the display location used by the client side filter.
func (h *Hotel) Location() string {
	switch {
	case len(h.City) > 0 && len(h.State) > 0:
		return h.City + ", " + h.State
	case len(h.City) > 0 && len(h.Country) > 0:
		return h.City + ", " + h.Country
	case len(h.City) > 0:
		return h.City
	default:
		return h.Address
	}
}

// HotelFilters are the server side list filters. Zero values are omitted
// from the query string.
type HotelFilters struct {
	Page     int     `url:"page,omitempty"`
	PerPage  int     `url:"per_page,omitempty"`
	City     string  `url:"city,omitempty"`
	MinPrice float64 `url:"min_price,omitempty"`
	MaxPrice float64 `url:"max_price,omitempty"`
	Rating   float64 `url:"rating,omitempty"`
}

type Pagination struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

type HotelList struct {
	Hotels     []Hotel    `json:"hotels" validate:"dive"`
	Pagination Pagination `json:"pagination"`
}

type HotelSearchResult struct {
	Query   string  `json:"query"`
	Results []Hotel `json:"results" validate:"dive"`
	Total   int     `json:"total"`
}

type Availability struct {
	HotelID        ID      `json:"hotel_id" validate:"required"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	AvailableRooms int     `json:"available_rooms"`
	TotalRooms     int     `json:"total_rooms"`
	PricePerNight  float64 `json:"price_per_night"`
	IsAvailable    bool    `json:"is_available"`
}

// HotelInput is the admin create and update body.
type HotelInput struct {
	Name           string   `json:"name,omitempty" yaml:"name"`
	Description    string   `json:"description,omitempty" yaml:"description"`
	Address        string   `json:"address,omitempty" yaml:"address"`
	City           string   `json:"city,omitempty" yaml:"city"`
	State          string   `json:"state,omitempty" yaml:"state"`
	Country        string   `json:"country,omitempty" yaml:"country"`
	ZipCode        string   `json:"zip_code,omitempty" yaml:"zip_code"`
	Phone          string   `json:"phone,omitempty" yaml:"phone"`
	Email          string   `json:"email,omitempty" yaml:"email"`
	Website        string   `json:"website,omitempty" yaml:"website"`
	Rating         *float64 `json:"rating,omitempty" yaml:"rating"`
	PricePerNight  *float64 `json:"price_per_night,omitempty" yaml:"price_per_night"`
	TotalRooms     *int     `json:"total_rooms,omitempty" yaml:"total_rooms"`
	AvailableRooms *int     `json:"available_rooms,omitempty" yaml:"available_rooms"`
	Amenities      []string `json:"amenities,omitempty" yaml:"amenities"`
	Images         []string `json:"images,omitempty" yaml:"images"`
}

// MutationResponse is returned by the admin hotel endpoints.
type MutationResponse struct {
	Message string `json:"message"`
	ID      ID     `json:"id,omitempty"`
}
