package offer

import (
	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/tidwall/gjson"
)

// Flights maps the offers array of an offer request.
func Flights(offers gjson.Result, searchID string) dto.FlightSearchResponse {
	items, total := head(offers)

	resp := dto.FlightSearchResponse{
		Offers:       make([]dto.FlightOffer, 0, len(items)),
		TotalResults: total,
		SearchID:     searchID,
	}

	for _, item := range items {
		if flight, ok := Flight(item); ok {
			resp.Offers = append(resp.Offers, flight)
		}
	}

	return resp
}

// Flight maps one offer. Only the first slice is described; stops count the
// connections inside it.
func Flight(item gjson.Result) (dto.FlightOffer, bool) {
	l := newLookup(item)

	id := l.str("id")
	price := l.str("total_amount")
	currency := l.str("total_currency")
	segments := l.array("slices.0.segments")
	duration := l.str("slices.0.duration")

	if !l.ok {
		return dto.FlightOffer{}, false
	}

	segment := newLookup(segments[0])
	departure := segment.str("departing_at")
	arrival := segment.str("arriving_at")
	airline := segment.str("marketing_carrier.name")
	flightNumber := segment.str("marketing_carrier_flight_number")

	if !segment.ok {
		return dto.FlightOffer{}, false
	}

	return dto.FlightOffer{
		ID:            id,
		Price:         price,
		Currency:      currency,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Duration:      duration,
		Airline:       airline,
		FlightNumber:  flightNumber,
		Aircraft:      optionalString(segments[0].Get("aircraft.name")),
		Stops:         len(segments) - 1,
	}, true
}
