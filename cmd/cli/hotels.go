package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stayhub/stayctl/internal/common"
	"github.com/stayhub/stayctl/internal/hotels"
	"github.com/stayhub/stayctl/internal/models"
)

var hotelsCmd = &cobra.Command{
	Use:     "hotels",
	Aliases: []string{"hotel"},
	Short:   "Browse and manage hotels",
}

func hotelFiltersFromFlags(cmd *cobra.Command) models.HotelFilters {
	filters := models.HotelFilters{}
	filters.Page, _ = cmd.Flags().GetInt("page")
	filters.PerPage, _ = cmd.Flags().GetInt("per-page")
	filters.City, _ = cmd.Flags().GetString("city")
	filters.MinPrice, _ = cmd.Flags().GetFloat64("min-price")
	filters.MaxPrice, _ = cmd.Flags().GetFloat64("max-price")
	filters.Rating, _ = cmd.Flags().GetFloat64("rating")
	return filters
}

func addHotelFilterFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 0, "Page number")
	cmd.Flags().Int("per-page", 0, "Hotels per page")
	cmd.Flags().String("city", "", "Only hotels in this city")
	cmd.Flags().Float64("min-price", 0, "Minimum price per night")
	cmd.Flags().Float64("max-price", 0, "Maximum price per night")
	cmd.Flags().Float64("rating", 0, "Minimum rating")
}

var hotelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List hotels",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cleanup := common.WithInterrupt(context.Background())
		defer cleanup()

		list, err := clients.Hotels.List(ctx, hotelFiltersFromFlags(cmd))
		if err != nil {
			return failed("Failed to list hotels", err)
		}

		if wantsJSON(cmd) {
			return printJSON(list)
		}

		printHotelTable(list.Hotels)
		printPagination(list.Pagination)
		return nil
	},
}

var hotelsGetCmd = &cobra.Command{
	Use:   "get <hotel-id>",
	Short: "Show a hotel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cleanup := common.WithInterrupt(context.Background())
		defer cleanup()

		hotel, err := clients.Hotels.Get(ctx, models.ID(args[0]))
		if err != nil {
			return failed("Failed to get hotel", err)
		}

		if wantsJSON(cmd) {
			return printJSON(hotel)
		}

		printHotel(hotel)
		return nil
	},
}

func printHotel(hotel *models.Hotel) {
	fmt.Println(titleStyle.Render(hotel.Name))
	if len(hotel.Description) > 0 {
		fmt.Println(hotel.Description)
		fmt.Println()
	}
	fmt.Printf("  Address:    %s\n", valueOrDash(strings.Join(nonEmpty(hotel.Address, hotel.City, hotel.State, hotel.ZipCode, hotel.Country), ", ")))
	fmt.Printf("  Rating:     %s\n", formatRating(hotel.Rating))
	fmt.Printf("  Per night:  %s\n", formatPrice(hotel.PricePerNight))
	fmt.Printf("  Rooms:      %d of %d available\n", hotel.AvailableRooms, hotel.TotalRooms)
	if len(hotel.Amenities) > 0 {
		fmt.Printf("  Amenities:  %s\n", strings.Join(hotel.Amenities, ", "))
	}
	if len(hotel.Phone) > 0 {
		fmt.Printf("  Phone:      %s\n", hotel.Phone)
	}
	if len(hotel.Email) > 0 {
		fmt.Printf("  Email:      %s\n", hotel.Email)
	}
	if len(hotel.Website) > 0 {
		fmt.Printf("  Website:    %s\n", hotel.Website)
	}
	fmt.Println(mutedStyle.Render(fmt.Sprintf("  id: %s", hotel.ID)))
}

func nonEmpty(values ...string) []string {
	result := []string{}
	for _, v := range values {
		if len(strings.TrimSpace(v)) > 0 {
			result = append(result, v)
		}
	}
	return result
}

var hotelsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search hotels by name, city or description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cleanup := common.WithInterrupt(context.Background())
		defer cleanup()

		result, err := clients.Hotels.Search(ctx, strings.Join(args, " "))
		if err != nil {
			return failed("Search failed", err)
		}

		if wantsJSON(cmd) {
			return printJSON(result)
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("%d results for %q", result.Total, result.Query)))
		printHotelTable(result.Results)
		return nil
	},
}

var hotelsAvailabilityCmd = &cobra.Command{
	Use:   "availability <hotel-id>",
	Short: "Check room availability for a stay",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checkIn, _ := cmd.Flags().GetString("check-in")
		checkOut, _ := cmd.Flags().GetString("check-out")

		for _, date := range nonEmpty(checkIn, checkOut) {
			if !common.IsValidDate(date) {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
			}
		}

		ctx, cleanup := common.WithInterrupt(context.Background())
		defer cleanup()

		availability, err := clients.Hotels.CheckAvailability(ctx, models.ID(args[0]), checkIn, checkOut)
		if err != nil {
			return failed("Availability check failed", err)
		}

		if wantsJSON(cmd) {
			return printJSON(availability)
		}

		badge := renderBadge("AVAILABLE", colorGreen)
		if !availability.IsAvailable {
			badge = renderBadge("SOLD OUT", colorRed)
		}

		fmt.Printf("%s %s to %s\n", badge, valueOrDash(availability.CheckIn), valueOrDash(availability.CheckOut))
		fmt.Printf("  Rooms:      %d of %d available\n", availability.AvailableRooms, availability.TotalRooms)
		fmt.Printf("  Per night:  %s\n", formatPrice(availability.PricePerNight))

		if nights, err := models.Nights(availability.CheckIn, availability.CheckOut); err == nil && nights > 0 {
			fmt.Printf("  Estimate:   %s for %d nights\n", formatPrice(float64(nights)*availability.PricePerNight), nights)
		}

		return nil
	},
}

var hotelsFilterCmd = &cobra.Command{
	Use:   "filter",
	Short: "List hotels and narrow the page locally",
	Long: `Fetches a page of hotels and filters it on this machine by free text,
price range, minimum rating, location and amenities. Every amenity given must
be offered by the hotel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria := hotels.Criteria{}
		criteria.Search, _ = cmd.Flags().GetString("search")
		criteria.Location, _ = cmd.Flags().GetString("location")
		criteria.MinPrice, _ = cmd.Flags().GetFloat64("from-price")
		criteria.MaxPrice, _ = cmd.Flags().GetFloat64("to-price")
		criteria.MinRating, _ = cmd.Flags().GetFloat64("min-rating")
		criteria.Amenities, _ = cmd.Flags().GetStringSlice("amenity")

		if err := criteria.Validate(); err != nil {
			return err
		}

		ctx, cleanup := common.WithInterrupt(context.Background())
		defer cleanup()

		list, err := clients.Hotels.List(ctx, hotelFiltersFromFlags(cmd))
		if err != nil {
			return failed("Failed to list hotels", err)
		}

		filtered := hotels.Apply(list.Hotels, criteria)

		if wantsJSON(cmd) {
			return printJSON(filtered)
		}

		if !criteria.IsEmpty() {
			fmt.Println(mutedStyle.Render(fmt.Sprintf("%d of %d hotels on this page match", len(filtered), len(list.Hotels))))
		}
		printHotelTable(filtered)
		printPagination(list.Pagination)
		return nil
	},
}

func init() {
	addHotelFilterFlags(hotelsListCmd)
	addHotelFilterFlags(hotelsFilterCmd)

	hotelsFilterCmd.Flags().String("search", "", "Text to find in the hotel name or location")
	hotelsFilterCmd.Flags().String("location", "", "Text to find in the hotel location")
	hotelsFilterCmd.Flags().Float64("from-price", 0, "Lowest price per night")
	hotelsFilterCmd.Flags().Float64("to-price", 0, "Highest price per night")
	hotelsFilterCmd.Flags().Float64("min-rating", 0, "Minimum rating")
	hotelsFilterCmd.Flags().StringSlice("amenity", nil, "Required amenity, may be repeated")

	hotelsAvailabilityCmd.Flags().String("check-in", "", "Check in date (YYYY-MM-DD)")
	hotelsAvailabilityCmd.Flags().String("check-out", "", "Check out date (YYYY-MM-DD)")

	hotelsCmd.AddCommand(hotelsListCmd)
	hotelsCmd.AddCommand(hotelsGetCmd)
	hotelsCmd.AddCommand(hotelsSearchCmd)
	hotelsCmd.AddCommand(hotelsAvailabilityCmd)
	hotelsCmd.AddCommand(hotelsFilterCmd)

	rootCmd.AddCommand(hotelsCmd)
}
