package dto

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	StayToolName    = "search_stays"
	DefaultAdults   = 1
	DefaultChildren = 0
	DefaultRooms    = 1
)

// StaySearchRequest is the typed form of the search_stays arguments.
type StaySearchRequest struct {
	Location     string `json:"location" validate:"required"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Adults       *int   `json:"adults,omitempty" validate:"omitempty,min=1"`
	Children     *int   `json:"children,omitempty" validate:"omitempty,min=0"`
	Rooms        *int   `json:"rooms,omitempty" validate:"omitempty,min=1"`
}

// DecodeStaySearchRequest turns raw tool arguments into a validated request.
func DecodeStaySearchRequest(arguments json.RawMessage) (StaySearchRequest, error) {
	var req StaySearchRequest

	if len(arguments) > 0 {
		if err := json.Unmarshal(arguments, &req); err != nil {
			return StaySearchRequest{}, fmt.Errorf("decode arguments: %w", err)
		}
	}

	if err := ValidateSingleError(req); err != nil {
		return StaySearchRequest{}, err
	}

	return req, nil
}

func (r StaySearchRequest) AdultCount() int {
	if r.Adults == nil {
		return DefaultAdults
	}

	return *r.Adults
}

func (r StaySearchRequest) ChildCount() int {
	if r.Children == nil {
		return DefaultChildren
	}

	return *r.Children
}

func (r StaySearchRequest) RoomCount() int {
	if r.Rooms == nil {
		return DefaultRooms
	}

	return *r.Rooms
}

// StayOffer is one normalized accommodation result.
type StayOffer struct {
	ID                 string   `json:"id"`
	HotelName          string   `json:"hotel_name"`
	HotelRating        *float64 `json:"hotel_rating"`
	Location           string   `json:"location"`
	TotalAmount        string   `json:"total_amount"`
	Currency           string   `json:"currency"`
	CheckInDate        string   `json:"check_in_date"`
	CheckOutDate       string   `json:"check_out_date"`
	RoomType           *string  `json:"room_type"`
	Amenities          []string `json:"amenities"`
	CancellationPolicy *string  `json:"cancellation_policy"`
}

// StaySearchResponse holds at most ten offers in provider order.
// LocationApproximated is set when the location was not a known city and the
// search ran around the fallback coordinates instead.
type StaySearchResponse struct {
	Offers               []StayOffer `json:"offers"`
	TotalResults         int         `json:"total_results"`
	SearchID             string      `json:"search_id"`
	LocationSearched     string      `json:"location_searched"`
	LocationApproximated bool        `json:"location_approximated"`
}

// StayTool is the descriptor of search_stays.
func StayTool() Tool {
	return Tool{
		Name:        StayToolName,
		Description: "Search for hotels and accommodations using the Duffel API",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"location": Property("string",
					"Location/city to search for hotels (e.g., 'New York', 'Paris', 'Tokyo')"),
				"check_in_date":  Property("string", "Check-in date in YYYY-MM-DD format"),
				"check_out_date": Property("string", "Check-out date in YYYY-MM-DD format"),
				"adults":         Property("integer", "Number of adult guests (default: 1)"),
				"children":       Property("integer", "Number of child guests (default: 0)"),
				"rooms":          Property("integer", "Number of rooms needed (default: 1)"),
			},
			Required: []string{"location", "check_in_date", "check_out_date"},
		},
	}
}
