//go:build unit

package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/duffel"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/geocode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const stayResults = `[{
	"id": "srr_1",
	"cheapest_rate_total_amount": "420.00",
	"cheapest_rate_currency": "EUR",
	"accommodation": {"name": "Hotel Lutetia", "rating": 5}
}]`

func coordinatesMatch(want geocode.Coordinates) any {
	return mock.MatchedBy(func(body duffel.StaySearchBody) bool {
		return body.Data.Location.GeographicCoordinates == want
	})
}

func TestStayService_Call(t *testing.T) {
	require.NoError(t, dto.InitValidator())

	callRequest := func(
		args string,
		setupMock func(m *MockStayProvider),
		wantText []string,
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockStayProvider(t)
			if setupMock != nil {
				setupMock(m)
			}

			got, err := NewStayService(m).Call(context.Background(), json.RawMessage(args))
			if wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, wantErr)
				return
			}

			require.NoError(t, err)
			for _, want := range wantText {
				assert.Contains(t, got, want)
			}
		}
	}

	t.Run("missing_location", callRequest(
		`{"check_in_date":"2025-06-01","check_out_date":"2025-06-04"}`, nil, nil, ErrInvalidParams))

	t.Run("known_city", callRequest(
		`{"location":"paris","check_in_date":"2025-06-01","check_out_date":"2025-06-04","adults":2}`,
		func(m *MockStayProvider) {
			paris, _ := geocode.Lookup("Paris")
			m.On("SearchStays", mock.Anything, coordinatesMatch(paris)).Return(duffel.StaySearchResult{
				Results:   gjson.Parse(stayResults),
				RequestID: "req_1",
			}, nil).Once()
		},
		[]string{
			"Found 1 hotel offers in paris:\n\n",
			"1. Hotel Lutetia - 420.00 EUR",
			"Rating: 5.0/5.0 stars",
			"Location: paris",
			"Amenities: WiFi",
			"Search ID: req_1",
		}, nil))

	t.Run("unknown_city_falls_back", callRequest(
		`{"location":"Atlantis","check_in_date":"2025-06-01","check_out_date":"2025-06-04"}`,
		func(m *MockStayProvider) {
			m.On("SearchStays", mock.Anything, coordinatesMatch(geocode.Fallback)).Return(duffel.StaySearchResult{
				Results:   gjson.Parse(stayResults),
				RequestID: "req_2",
			}, nil).Once()
		},
		[]string{
			"Found 1 hotel offers in Atlantis:\n",
			`Note: "Atlantis" is not a known city, results are for London.`,
		}, nil))

	t.Run("no_results", callRequest(
		`{"location":"Tokyo","check_in_date":"2025-06-01","check_out_date":"2025-06-04"}`,
		func(m *MockStayProvider) {
			m.On("SearchStays", mock.Anything, mock.Anything).Return(duffel.StaySearchResult{
				Results:   gjson.Parse(`[]`),
				RequestID: "unknown",
			}, nil).Once()
		},
		[]string{"No hotels found in Tokyo for the specified dates."}, nil))

	t.Run("provider_failure", callRequest(
		`{"location":"Tokyo","check_in_date":"2025-06-01","check_out_date":"2025-06-04"}`,
		func(m *MockStayProvider) {
			m.On("SearchStays", mock.Anything, mock.Anything).
				Return(duffel.StaySearchResult{}, duffel.ErrNoSearchResults).Once()
		},
		nil, ErrStaySearchFailed))
}

func TestStayService_SearchStays(t *testing.T) {
	m := NewMockStayProvider(t)
	m.On("SearchStays", mock.Anything, mock.MatchedBy(func(body duffel.StaySearchBody) bool {
		return len(body.Data.Guests) == 3 &&
			body.Data.Guests[2].Type == "child" &&
			body.Data.Rooms == 2 &&
			body.Data.Location.Radius == duffel.SearchRadiusKm
	})).Return(duffel.StaySearchResult{
		Results:   gjson.Parse(stayResults),
		RequestID: "req_3",
	}, nil).Once()

	adults, children, rooms := 2, 1, 2
	got, err := NewStayService(m).SearchStays(context.Background(), dto.StaySearchRequest{
		Location:     "Nowhere",
		CheckInDate:  "2025-06-01",
		CheckOutDate: "2025-06-04",
		Adults:       &adults,
		Children:     &children,
		Rooms:        &rooms,
	})

	require.NoError(t, err)
	assert.True(t, got.LocationApproximated)
	assert.Equal(t, "Nowhere", got.LocationSearched)
	assert.Equal(t, 1, got.TotalResults)
	assert.Equal(t, "req_3", got.SearchID)

	_, err = NewStayService(m).Call(context.Background(), json.RawMessage(`{"location":"x"}`))
	assert.ErrorIs(t, err, ErrInvalidParams)
}
