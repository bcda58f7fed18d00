package duffel

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/geocode"
	"github.com/tidwall/gjson"
)

const (
	staysAPI       = "Duffel Stays API"
	staysPath      = "/stays/search"
	SearchRadiusKm = 10

	unknownRequestID = "unknown"
)

type StaySearchBody struct {
	Data StaySearchData `json:"data"`
}

type StaySearchData struct {
	Location     StayLocation `json:"location"`
	CheckInDate  string       `json:"check_in_date"`
	CheckOutDate string       `json:"check_out_date"`
	Guests       []Guest      `json:"guests"`
	Rooms        int          `json:"rooms"`
}

type StayLocation struct {
	Radius                int                 `json:"radius"`
	GeographicCoordinates geocode.Coordinates `json:"geographic_coordinates"`
}

type Guest struct {
	Type string `json:"type"`
}

// StaySearchResult is the part of a stays search response the caller maps.
type StaySearchResult struct {
	Results   gjson.Result
	RequestID string
}

// NewStaySearch builds the stays search payload around coords. Adults come
// first in the guest list, then children.
func NewStaySearch(req dto.StaySearchRequest, coords geocode.Coordinates) StaySearchBody {
	guests := make([]Guest, 0, req.AdultCount()+req.ChildCount())
	for range req.AdultCount() {
		guests = append(guests, Guest{Type: "adult"})
	}
	for range req.ChildCount() {
		guests = append(guests, Guest{Type: "child"})
	}

	return StaySearchBody{
		Data: StaySearchData{
			Location: StayLocation{
				Radius:                SearchRadiusKm,
				GeographicCoordinates: coords,
			},
			CheckInDate:  req.CheckInDate,
			CheckOutDate: req.CheckOutDate,
			Guests:       guests,
			Rooms:        req.RoomCount(),
		},
	}
}

// SearchStays runs a single stays search.
func (c *Client) SearchStays(ctx context.Context, body StaySearchBody) (StaySearchResult, error) {
	resp, err := c.do(ctx, staysAPI, http.MethodPost, staysPath, nil, body)
	if err != nil {
		return StaySearchResult{}, err
	}

	results := resp.Get("data.results")
	if !results.IsArray() {
		return StaySearchResult{}, fmt.Errorf("%s: %w", staysAPI, ErrNoSearchResults)
	}

	requestID := unknownRequestID
	if id := resp.Get("meta.request_id"); id.Type == gjson.String {
		requestID = id.Str
	}

	return StaySearchResult{
		Results:   results,
		RequestID: requestID,
	}, nil
}
