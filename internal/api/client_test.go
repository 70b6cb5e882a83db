package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stayhub/stayctl/internal/gateway"
	"github.com/stayhub/stayctl/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSender captures descriptors and answers with a canned body.
type recordingSender struct {
	calls    []gateway.RequestDescriptor
	tokens   []string
	response string
	err      error
}

func (r *recordingSender) Send(_ context.Context, desc gateway.RequestDescriptor, token string, out any) error {
	r.calls = append(r.calls, desc)
	r.tokens = append(r.tokens, token)
	if r.err != nil {
		return r.err
	}
	if out == nil || len(r.response) == 0 {
		return nil
	}
	return json.Unmarshal([]byte(r.response), out)
}

func (r *recordingSender) last() gateway.RequestDescriptor {
	return r.calls[len(r.calls)-1]
}

// countingTokens counts reads so tests can check the token is not cached.
type countingTokens struct {
	token string
	reads int
}

func (c *countingTokens) Token() string {
	c.reads++
	return c.token
}

func TestCatalog(t *testing.T) {
	ctx := context.Background()

	price := 120.0
	tests := []struct {
		name         string
		call         func(c *Clients) error
		method       string
		path         string
		query        url.Values
		requiresAuth bool
		hasBody      bool
	}{
		{
			name: "auth register",
			call: func(c *Clients) error {
				_, err := c.Auth.Register(ctx, models.Registration{Username: "john_doe"})
				return err
			},
			method: http.MethodPost, path: "/auth/register", hasBody: true,
		},
		{
			name: "auth login",
			call: func(c *Clients) error {
				_, err := c.Auth.Login(ctx, models.Credentials{Username: "john_doe", Password: "password123"})
				return err
			},
			method: http.MethodPost, path: "/auth/login", hasBody: true,
		},
		{
			name: "auth get profile",
			call: func(c *Clients) error {
				_, err := c.Auth.GetProfile(ctx)
				return err
			},
			method: http.MethodGet, path: "/auth/profile", requiresAuth: true,
		},
		{
			name: "auth update profile",
			call: func(c *Clients) error {
				_, err := c.Auth.UpdateProfile(ctx, models.ProfileUpdate{Email: "b@x.com"})
				return err
			},
			method: http.MethodPut, path: "/auth/profile", requiresAuth: true, hasBody: true,
		},
		{
			name: "hotels list without filters",
			call: func(c *Clients) error {
				_, err := c.Hotels.List(ctx, models.HotelFilters{})
				return err
			},
			method: http.MethodGet, path: "/hotels", query: url.Values{},
		},
		{
			name: "hotels list omits absent filters",
			call: func(c *Clients) error {
				_, err := c.Hotels.List(ctx, models.HotelFilters{Page: 2, City: "Miami", MaxPrice: 250.5})
				return err
			},
			method: http.MethodGet, path: "/hotels",
			query: url.Values{"page": {"2"}, "city": {"Miami"}, "max_price": {"250.5"}},
		},
		{
			name: "hotels get escapes id",
			call: func(c *Clients) error {
				_, err := c.Hotels.Get(ctx, models.ID("a/b"))
				return err
			},
			method: http.MethodGet, path: "/hotels/a%2Fb",
		},
		{
			name: "hotels search",
			call: func(c *Clients) error {
				_, err := c.Hotels.Search(ctx, "sea view")
				return err
			},
			method: http.MethodGet, path: "/hotels/search", query: url.Values{"q": {"sea view"}},
		},
		{
			name: "hotels availability",
			call: func(c *Clients) error {
				_, err := c.Hotels.CheckAvailability(ctx, "h1", "2030-01-01", "2030-01-03")
				return err
			},
			method: http.MethodGet, path: "/hotels/h1/availability",
			query: url.Values{"check_in": {"2030-01-01"}, "check_out": {"2030-01-03"}},
		},
		{
			name: "hotels create",
			call: func(c *Clients) error {
				_, err := c.Hotels.Create(ctx, models.HotelInput{Name: "Inn", PricePerNight: &price})
				return err
			},
			method: http.MethodPost, path: "/hotels", requiresAuth: true, hasBody: true,
		},
		{
			name: "hotels update",
			call: func(c *Clients) error {
				_, err := c.Hotels.Update(ctx, "h1", models.HotelInput{Name: "Inn"})
				return err
			},
			method: http.MethodPut, path: "/hotels/h1", requiresAuth: true, hasBody: true,
		},
		{
			name: "hotels delete",
			call: func(c *Clients) error {
				_, err := c.Hotels.Delete(ctx, "h1")
				return err
			},
			method: http.MethodDelete, path: "/hotels/h1", requiresAuth: true,
		},
		{
			name: "bookings create",
			call: func(c *Clients) error {
				_, err := c.Bookings.Create(ctx, models.BookingRequest{HotelID: "h1"})
				return err
			},
			method: http.MethodPost, path: "/bookings", requiresAuth: true, hasBody: true,
		},
		{
			name: "bookings list",
			call: func(c *Clients) error {
				_, err := c.Bookings.List(ctx, models.BookingFilters{Status: "confirmed"})
				return err
			},
			method: http.MethodGet, path: "/bookings", requiresAuth: true,
			query: url.Values{"status": {"confirmed"}},
		},
		{
			name: "bookings get",
			call: func(c *Clients) error {
				_, err := c.Bookings.Get(ctx, "b1")
				return err
			},
			method: http.MethodGet, path: "/bookings/b1", requiresAuth: true,
		},
		{
			name: "bookings update",
			call: func(c *Clients) error {
				_, err := c.Bookings.Update(ctx, "b1", models.BookingUpdate{NumGuests: 3})
				return err
			},
			method: http.MethodPut, path: "/bookings/b1", requiresAuth: true, hasBody: true,
		},
		{
			name: "bookings cancel",
			call: func(c *Clients) error {
				_, err := c.Bookings.Cancel(ctx, "b1")
				return err
			},
			method: http.MethodPost, path: "/bookings/b1/cancel", requiresAuth: true,
		},
		{
			name: "health check",
			call: func(c *Clients) error {
				_, err := c.Health.Check(ctx)
				return err
			},
			method: http.MethodGet, path: "/health",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &recordingSender{}
			clients := NewClients(sender, gateway.StaticToken("t1"))

			require.NoError(t, tt.call(clients))
			require.Len(t, sender.calls, 1)

			desc := sender.last()
			assert.Equal(t, tt.method, desc.Method)
			assert.Equal(t, tt.path, desc.Path)
			assert.Equal(t, tt.requiresAuth, desc.RequiresAuth)
			assert.Equal(t, tt.hasBody, desc.Body != nil)

			if tt.query != nil {
				assert.Equal(t, tt.query, desc.Query)
			}

			if tt.requiresAuth {
				assert.Equal(t, "t1", sender.tokens[0])
			} else {
				assert.Empty(t, sender.tokens[0])
			}
		})
	}
}

func TestTokenReadOnEveryCall(t *testing.T) {
	sender := &recordingSender{}
	tokens := &countingTokens{token: "first"}
	bookings := NewBookingsClient(sender, tokens)

	_, err := bookings.Get(context.Background(), "b1")
	require.NoError(t, err)

	tokens.token = "second"
	_, err = bookings.Get(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, sender.tokens)
	assert.Equal(t, 2, tokens.reads)
}

func TestErrorsArePassedThrough(t *testing.T) {
	gwErr := &gateway.Error{Kind: gateway.KindNotFound, Message: "Hotel not found", HTTPStatus: 404}
	sender := &recordingSender{err: gwErr}
	hotels := NewHotelsClient(sender, nil)

	hotel, err := hotels.Get(context.Background(), "missing")

	assert.Nil(t, hotel)
	assert.True(t, errors.Is(err, gateway.ErrNotFound))
}

func TestBookingEnvelopeIsUnwrapped(t *testing.T) {
	sender := &recordingSender{
		response: `{"message": "Booking created successfully", "booking": {"id": "b9", "status": "confirmed", "num_guests": 2}}`,
	}
	bookings := NewBookingsClient(sender, gateway.StaticToken("t1"))

	booking, err := bookings.Create(context.Background(), models.BookingRequest{HotelID: "h1"})

	require.NoError(t, err)
	assert.Equal(t, models.ID("b9"), booking.ID)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.Equal(t, 2, booking.NumGuests)
}

func TestAgainstBackend(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/api/hotels", func(c *gin.Context) {
		if _, ok := c.GetQuery("rating"); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unexpected rating"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"hotels": []gin.H{
				{"id": "h1", "name": "Seaside Resort & Spa", "city": c.Query("city"), "price_per_night": 199, "rating": 4.6},
			},
			"pagination": gin.H{"page": 1, "per_page": 10, "total": 1, "pages": 1},
		})
	})
	router.POST("/api/bookings", func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Missing Authorization Header"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"booking": gin.H{"id": "b1", "status": "confirmed"}})
	})

	server := httptest.NewServer(router)
	defer server.Close()

	gw := gateway.New(gateway.Config{Endpoint: server.URL + "/api", Timeout: time.Second})

	t.Run("list with filters", func(t *testing.T) {
		clients := NewClients(gw, gateway.StaticToken(""))

		list, err := clients.Hotels.List(context.Background(), models.HotelFilters{City: "Miami"})

		require.NoError(t, err)
		require.Len(t, list.Hotels, 1)
		assert.Equal(t, "Miami", list.Hotels[0].City)
		assert.Equal(t, 199.0, list.Hotels[0].PricePerNight)
	})

	t.Run("authorized call without token surfaces the server rejection", func(t *testing.T) {
		clients := NewClients(gw, gateway.StaticToken(""))

		_, err := clients.Bookings.Create(context.Background(), models.BookingRequest{HotelID: "h1"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, gateway.ErrAuth))
		assert.Equal(t, "Missing Authorization Header", gateway.MessageOf(err))
	})

	t.Run("authorized call with token", func(t *testing.T) {
		clients := NewClients(gw, gateway.StaticToken("t1"))

		booking, err := clients.Bookings.Create(context.Background(), models.BookingRequest{HotelID: "h1"})

		require.NoError(t, err)
		assert.Equal(t, models.ID("b1"), booking.ID)
	})
}
