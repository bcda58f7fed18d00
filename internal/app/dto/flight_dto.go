package dto

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	FlightToolName    = "search_flights"
	DefaultPassengers = 1
	DefaultCabinClass = "economy"
)

// FlightSearchRequest is the typed form of the search_flights arguments.
type FlightSearchRequest struct {
	Origin        string  `json:"origin" validate:"required"`
	Destination   string  `json:"destination" validate:"required"`
	DepartureDate string  `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    *string `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Passengers    *int    `json:"passengers,omitempty" validate:"omitempty,min=1,max=9"`
	CabinClass    *string `json:"cabin_class,omitempty" validate:"omitempty,oneof=economy premium_economy business first"`
}

// DecodeFlightSearchRequest turns raw tool arguments into a validated request.
func DecodeFlightSearchRequest(arguments json.RawMessage) (FlightSearchRequest, error) {
	var req FlightSearchRequest

	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, &req); err != nil {
			return FlightSearchRequest{}, fmt.Errorf("decode arguments: %w", err)
		}
	}

	if err := ValidateSingleError(req); err != nil {
		return FlightSearchRequest{}, err
	}

	return req, nil
}

func (r FlightSearchRequest) PassengerCount() int {
	if r.Passengers == nil {
		return DefaultPassengers
	}

	return *r.Passengers
}

func (r FlightSearchRequest) Cabin() string {
	if r.CabinClass == nil {
		return DefaultCabinClass
	}

	return *r.CabinClass
}

// FlightOffer is one normalized flight result.
type FlightOffer struct {
	ID            string  `json:"id"`
	Price         string  `json:"price"`
	Currency      string  `json:"currency"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Duration      string  `json:"duration"`
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flight_number"`
	Aircraft      *string `json:"aircraft"`
	Stops         int     `json:"stops"`
}

// FlightSearchResponse holds at most ten offers in provider order. TotalResults
// is the provider's full count.
type FlightSearchResponse struct {
	Offers       []FlightOffer `json:"offers"`
	TotalResults int           `json:"total_results"`
	SearchID     string        `json:"search_id"`
}

// FlightTool is the descriptor of search_flights.
func FlightTool() Tool {
	return Tool{
		Name:        FlightToolName,
		Description: "Search for flights using the Duffel API",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"origin":         Property("string", "Origin airport code (e.g., 'JFK', 'LAX')"),
				"destination":    Property("string", "Destination airport code (e.g., 'LHR', 'CDG')"),
				"departure_date": Property("string", "Departure date in YYYY-MM-DD format"),
				"return_date":    Property("string", "Return date in YYYY-MM-DD format (optional, for round-trip)"),
				"passengers":     Property("integer", "Number of passengers (default: 1)"),
				"cabin_class": Property("string",
					"Cabin class: economy, premium_economy, business, first (default: economy)"),
			},
			Required: []string{"origin", "destination", "departure_date"},
		},
	}
}
