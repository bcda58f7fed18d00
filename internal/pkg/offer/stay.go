package offer

import (
	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/tidwall/gjson"
)

const (
	defaultAmount   = "0.00"
	defaultCurrency = "USD"
	defaultAmenity  = "WiFi"
)

// Stays maps the results array of a stays search.
func Stays(results gjson.Result, requestID string, req dto.StaySearchRequest) dto.StaySearchResponse {
	items, total := head(results)

	resp := dto.StaySearchResponse{
		Offers:           make([]dto.StayOffer, 0, len(items)),
		TotalResults:     total,
		SearchID:         requestID,
		LocationSearched: req.Location,
	}

	for _, item := range items {
		if stay, ok := Stay(item, req); ok {
			resp.Offers = append(resp.Offers, stay)
		}
	}

	return resp
}

// Stay maps one search result. Dates come from the request; location, price
// and amenities fall back to defaults when the provider leaves them out.
func Stay(item gjson.Result, req dto.StaySearchRequest) (dto.StayOffer, bool) {
	l := newLookup(item)

	id := l.str("id")
	name := l.str("accommodation.name")

	if !l.ok {
		return dto.StayOffer{}, false
	}

	accommodation := item.Get("accommodation")
	rate := accommodation.Get("rooms.0.rates.0")

	return dto.StayOffer{
		ID:                 id,
		HotelName:          name,
		HotelRating:        optionalNumber(accommodation.Get("rating")),
		Location:           stringOr(accommodation.Get("location.address.city_name"), req.Location),
		TotalAmount:        stringOr(item.Get("cheapest_rate_total_amount"), defaultAmount),
		Currency:           stringOr(item.Get("cheapest_rate_currency"), defaultCurrency),
		CheckInDate:        req.CheckInDate,
		CheckOutDate:       req.CheckOutDate,
		RoomType:           optionalString(accommodation.Get("rooms.0.name")),
		Amenities:          amenities(accommodation.Get("amenities")),
		CancellationPolicy: stringf("Free cancellation until %s", rate.Get("cancellation_timeline.0.before")),
	}, true
}

func amenities(v gjson.Result) []string {
	var descriptions []string

	if v.IsArray() {
		for _, amenity := range v.Array() {
			if d := amenity.Get("description"); d.Type == gjson.String {
				descriptions = append(descriptions, d.Str)
			}
		}
	}

	if len(descriptions) == 0 {
		return []string{defaultAmenity}
	}

	return descriptions
}
