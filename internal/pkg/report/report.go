// Package report renders search responses as the plain text returned to tool
// callers.
package report

import (
	"fmt"
	"strings"

	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/geocode"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/utils"
)

// Flights renders a numbered list of flight offers.
func Flights(resp dto.FlightSearchResponse) string {
	if len(resp.Offers) == 0 {
		return "No flights found for the specified criteria."
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Found %d flight offers:\n\n", resp.TotalResults)

	for i, offer := range resp.Offers {
		fmt.Fprintf(&b, "%d. %s %s - %s %s\n", i+1, offer.Airline, offer.FlightNumber, offer.Price, offer.Currency)
		fmt.Fprintf(&b, "   Departure: %s\n", offer.DepartureTime)
		fmt.Fprintf(&b, "   Arrival: %s\n", offer.ArrivalTime)
		fmt.Fprintf(&b, "   Duration: %s\n", utils.FormatISODuration(offer.Duration))

		if offer.Stops > 0 {
			fmt.Fprintf(&b, "   Stops: %d\n", offer.Stops)
		} else {
			b.WriteString("   Direct flight\n")
		}

		if offer.Aircraft != nil {
			fmt.Fprintf(&b, "   Aircraft: %s\n", *offer.Aircraft)
		}

		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Search ID: %s", resp.SearchID)

	return b.String()
}

// Stays renders a numbered list of accommodation offers.
func Stays(resp dto.StaySearchResponse) string {
	if len(resp.Offers) == 0 {
		return fmt.Sprintf("No hotels found in %s for the specified dates.", resp.LocationSearched)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Found %d hotel offers in %s:\n", resp.TotalResults, resp.LocationSearched)
	if resp.LocationApproximated {
		fmt.Fprintf(&b, "Note: %q is not a known city, results are for %s.\n",
			resp.LocationSearched, geocode.FallbackCity)
	}
	b.WriteString("\n")

	for i, offer := range resp.Offers {
		fmt.Fprintf(&b, "%d. %s - %s %s\n", i+1, offer.HotelName, offer.TotalAmount, offer.Currency)

		if offer.HotelRating != nil {
			fmt.Fprintf(&b, "   Rating: %.1f/5.0 stars\n", *offer.HotelRating)
		}

		fmt.Fprintf(&b, "   Location: %s\n", offer.Location)
		fmt.Fprintf(&b, "   Check-in: %s | Check-out: %s\n", offer.CheckInDate, offer.CheckOutDate)

		if offer.RoomType != nil {
			fmt.Fprintf(&b, "   Room: %s\n", *offer.RoomType)
		}

		if len(offer.Amenities) > 0 {
			fmt.Fprintf(&b, "   Amenities: %s\n", strings.Join(offer.Amenities, ", "))
		}

		if offer.CancellationPolicy != nil {
			fmt.Fprintf(&b, "   Cancellation: %s\n", *offer.CancellationPolicy)
		}

		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Search ID: %s", resp.SearchID)

	return b.String()
}
