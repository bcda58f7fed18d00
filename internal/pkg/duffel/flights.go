package duffel

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/tidwall/gjson"
)

const (
	offerRequestsAPI = "Duffel API"
	offersAPI        = "Duffel offers API"

	offerRequestsPath = "/air/offer_requests"
	offersPath        = "/air/offers"
)

type OfferRequestBody struct {
	Data OfferRequestData `json:"data"`
}

type OfferRequestData struct {
	Slices     []Slice     `json:"slices"`
	Passengers []Passenger `json:"passengers"`
	CabinClass string      `json:"cabin_class"`
}

type Slice struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
}

type Passenger struct {
	Type string `json:"type"`
}

// NewOfferRequest builds the offer request payload: one adult entry per
// passenger, an outbound slice, and an inbound slice when a return date is set.
func NewOfferRequest(req dto.FlightSearchRequest) OfferRequestBody {
	passengers := make([]Passenger, req.PassengerCount())
	for i := range passengers {
		passengers[i] = Passenger{Type: "adult"}
	}

	slices := []Slice{{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
	}}

	if req.ReturnDate != nil {
		slices = append(slices, Slice{
			Origin:        req.Destination,
			Destination:   req.Origin,
			DepartureDate: *req.ReturnDate,
		})
	}

	return OfferRequestBody{
		Data: OfferRequestData{
			Slices:     slices,
			Passengers: passengers,
			CabinClass: req.Cabin(),
		},
	}
}

// CreateOfferRequest posts the search and returns the offer request id.
func (c *Client) CreateOfferRequest(ctx context.Context, body OfferRequestBody) (string, error) {
	resp, err := c.do(ctx, offerRequestsAPI, http.MethodPost, offerRequestsPath, nil, body)
	if err != nil {
		return "", err
	}

	id := resp.Get("data.id")
	if id.Type != gjson.String || id.Str == "" {
		return "", fmt.Errorf("%s: %w", offerRequestsAPI, ErrNoOfferRequestID)
	}

	return id.Str, nil
}

// ListOffers fetches the offers of an offer request and returns the raw data array.
func (c *Client) ListOffers(ctx context.Context, offerRequestID string) (gjson.Result, error) {
	query := url.Values{}
	query.Set("offer_request_id", offerRequestID)

	resp, err := c.do(ctx, offersAPI, http.MethodGet, offersPath, query, nil)
	if err != nil {
		return gjson.Result{}, err
	}

	offers := resp.Get("data")
	if !offers.IsArray() {
		return gjson.Result{}, fmt.Errorf("%s: %w", offersAPI, ErrNoOffersData)
	}

	return offers, nil
}
