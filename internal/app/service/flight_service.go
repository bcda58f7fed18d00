package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/duffel"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/offer"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/report"
	"github.com/tidwall/gjson"
)

type FlightProvider interface {
	CreateOfferRequest(ctx context.Context, body duffel.OfferRequestBody) (string, error)
	ListOffers(ctx context.Context, offerRequestID string) (gjson.Result, error)
}

// FlightService implements the search_flights tool.
type FlightService struct {
	Provider FlightProvider
}

func NewFlightService(provider FlightProvider) *FlightService {
	return &FlightService{
		Provider: provider,
	}
}

func (s *FlightService) Descriptor() dto.Tool {
	return dto.FlightTool()
}

func (s *FlightService) Call(ctx context.Context, arguments json.RawMessage) (string, error) {
	req, err := dto.DecodeFlightSearchRequest(arguments)
	if err != nil {
		return "", ErrInvalidParams.WithCause(err)
	}

	resp, err := s.SearchFlights(ctx, req)
	if err != nil {
		return "", ErrFlightSearchFailed.WithCause(err)
	}

	return report.Flights(resp), nil
}

// SearchFlights creates an offer request and lists its offers. Provider calls
// are not aborted when the caller goes away.
func (s *FlightService) SearchFlights(
	ctx context.Context,
	req dto.FlightSearchRequest,
) (dto.FlightSearchResponse, error) {
	ctx = context.WithoutCancel(ctx)

	slog.InfoContext(ctx, "searching flights",
		slog.String("origin", req.Origin),
		slog.String("destination", req.Destination),
		slog.String("departure_date", req.DepartureDate),
		slog.Int("passengers", req.PassengerCount()),
		slog.String("cabin_class", req.Cabin()),
	)

	offerRequestID, err := s.Provider.CreateOfferRequest(ctx, duffel.NewOfferRequest(req))
	if err != nil {
		return dto.FlightSearchResponse{}, err
	}

	offers, err := s.Provider.ListOffers(ctx, offerRequestID)
	if err != nil {
		return dto.FlightSearchResponse{}, err
	}

	resp := offer.Flights(offers, offerRequestID)

	slog.InfoContext(ctx, "flight search completed",
		slog.String("search_id", resp.SearchID),
		slog.Int("total_results", resp.TotalResults),
		slog.Int("offers", len(resp.Offers)),
	)

	return resp, nil
}
