package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/duffel"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/geocode"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/offer"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/report"
)

type StayProvider interface {
	SearchStays(ctx context.Context, body duffel.StaySearchBody) (duffel.StaySearchResult, error)
}

// StayService implements the search_stays tool.
type StayService struct {
	Provider StayProvider
}

func NewStayService(provider StayProvider) *StayService {
	return &StayService{
		Provider: provider,
	}
}

func (s *StayService) Descriptor() dto.Tool {
	return dto.StayTool()
}

func (s *StayService) Call(ctx context.Context, arguments json.RawMessage) (string, error) {
	req, err := dto.DecodeStaySearchRequest(arguments)
	if err != nil {
		return "", ErrInvalidParams.WithCause(err)
	}

	resp, err := s.SearchStays(ctx, req)
	if err != nil {
		return "", ErrStaySearchFailed.WithCause(err)
	}

	return report.Stays(resp), nil
}

// SearchStays geocodes the location and runs a radius search around it.
// Unknown locations are searched around the fallback city.
func (s *StayService) SearchStays(
	ctx context.Context,
	req dto.StaySearchRequest,
) (dto.StaySearchResponse, error) {
	ctx = context.WithoutCancel(ctx)

	coords, known := geocode.Lookup(req.Location)
	if !known {
		slog.WarnContext(ctx, "unknown location, searching around fallback city",
			slog.String("location", req.Location),
			slog.String("fallback", geocode.FallbackCity),
		)
	}

	slog.InfoContext(ctx, "searching stays",
		slog.String("location", req.Location),
		slog.Float64("latitude", coords.Latitude),
		slog.Float64("longitude", coords.Longitude),
		slog.String("check_in_date", req.CheckInDate),
		slog.String("check_out_date", req.CheckOutDate),
	)

	result, err := s.Provider.SearchStays(ctx, duffel.NewStaySearch(req, coords))
	if err != nil {
		return dto.StaySearchResponse{}, err
	}

	resp := offer.Stays(result.Results, result.RequestID, req)
	resp.LocationApproximated = !known

	slog.InfoContext(ctx, "stay search completed",
		slog.String("search_id", resp.SearchID),
		slog.Int("total_results", resp.TotalResults),
		slog.Int("offers", len(resp.Offers)),
	)

	return resp, nil
}
