// Package hotels narrows a page of hotels on the client, the way the
// listing screen does before anything is sent back to the server.
package hotels

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/stayhub/stayctl/internal/common"
	"github.com/stayhub/stayctl/internal/models"
)

// Criteria combines the filter predicates. Zero values disable a
// predicate; MaxPrice of zero means no upper bound.
type Criteria struct {
	Search    string   `json:"search,omitempty"`
	MinPrice  float64  `json:"min_price,omitempty" validate:"gte=0"`
	MaxPrice  float64  `json:"max_price,omitempty" validate:"gte=0"`
	MinRating float64  `json:"min_rating,omitempty" validate:"gte=0,lte=5"`
	Location  string   `json:"location,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

func (c Criteria) IsEmpty() bool {
	return len(strings.TrimSpace(c.Search)) == 0 &&
		c.MinPrice == 0 &&
		c.MaxPrice == 0 &&
		c.MinRating == 0 &&
		len(strings.TrimSpace(c.Location)) == 0 &&
		len(c.Amenities) == 0
}

var criteriaValidator = newCriteriaValidator()

// newCriteriaValidator reports fields by their json names.
func newCriteriaValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var boundWords = map[string]string{
	"gte": "at least",
	"lte": "at most",
}

func (c Criteria) Validate() error {
	if err := criteriaValidator.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			if words, ok := boundWords[first.Tag()]; ok {
				return fmt.Errorf("%s must be %s %s", first.Field(), words, first.Param())
			}
			return fmt.Errorf("%s is invalid", first.Field())
		}
		return err
	}

	if c.MaxPrice > 0 && c.MinPrice > c.MaxPrice {
		return fmt.Errorf("minimum price %.2f is above maximum price %.2f", c.MinPrice, c.MaxPrice)
	}
	return nil
}

// Matches reports whether a hotel passes every enabled predicate.
func (c Criteria) Matches(hotel *models.Hotel) bool {

	location := hotel.Location()

	if search := strings.TrimSpace(c.Search); len(search) > 0 {
		if !common.ContainsInsensitive(hotel.Name, search) &&
			!common.ContainsInsensitive(location, search) {
			return false
		}
	}

	if hotel.PricePerNight < c.MinPrice {
		return false
	}

	if c.MaxPrice > 0 && hotel.PricePerNight > c.MaxPrice {
		return false
	}

	if c.MinRating > 0 && hotel.Rating < c.MinRating {
		return false
	}

	if loc := strings.TrimSpace(c.Location); len(loc) > 0 {
		if !common.ContainsInsensitive(location, loc) {
			return false
		}
	}

	for _, amenity := range c.Amenities {
		if !hasAmenity(hotel.Amenities, amenity) {
			return false
		}
	}

	return true
}

// Apply returns the hotels matching c, in their original order.
func Apply(list []models.Hotel, c Criteria) []models.Hotel {
	filtered := []models.Hotel{}
	for i := range list {
		if c.Matches(&list[i]) {
			filtered = append(filtered, list[i])
		}
	}
	return filtered
}

func hasAmenity(amenities []string, wanted string) bool {
	wanted = strings.TrimSpace(wanted)
	if len(wanted) == 0 {
		return true
	}
	return slices.ContainsFunc(amenities, func(a string) bool {
		return strings.EqualFold(strings.TrimSpace(a), wanted)
	})
}
