//go:build unit

package service

import (
	"context"
	"encoding/json"

	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/duffel"
	"github.com/stretchr/testify/mock"
	"github.com/tidwall/gjson"
)

type mockT interface {
	mock.TestingT
	Cleanup(func())
}

// MockFlightProvider is a mock type for the FlightProvider type
type MockFlightProvider struct {
	mock.Mock
}

func (_m *MockFlightProvider) CreateOfferRequest(ctx context.Context, body duffel.OfferRequestBody) (string, error) {
	ret := _m.Called(ctx, body)

	if rf, ok := ret.Get(0).(func(context.Context, duffel.OfferRequestBody) (string, error)); ok {
		return rf(ctx, body)
	}

	return ret.String(0), ret.Error(1)
}

func (_m *MockFlightProvider) ListOffers(ctx context.Context, offerRequestID string) (gjson.Result, error) {
	ret := _m.Called(ctx, offerRequestID)

	var r0 gjson.Result
	if v, ok := ret.Get(0).(gjson.Result); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

// NewMockFlightProvider creates a new instance of MockFlightProvider. It also registers a cleanup function to assert the mocks expectations.
func NewMockFlightProvider(t mockT) *MockFlightProvider {
	m := &MockFlightProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockStayProvider is a mock type for the StayProvider type
type MockStayProvider struct {
	mock.Mock
}

func (_m *MockStayProvider) SearchStays(ctx context.Context, body duffel.StaySearchBody) (duffel.StaySearchResult, error) {
	ret := _m.Called(ctx, body)

	var r0 duffel.StaySearchResult
	if v, ok := ret.Get(0).(duffel.StaySearchResult); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

// NewMockStayProvider creates a new instance of MockStayProvider. It also registers a cleanup function to assert the mocks expectations.
func NewMockStayProvider(t mockT) *MockStayProvider {
	m := &MockStayProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTool is a mock type for the Tool type
type MockTool struct {
	mock.Mock
}

func (_m *MockTool) Descriptor() dto.Tool {
	ret := _m.Called()

	return ret.Get(0).(dto.Tool)
}

func (_m *MockTool) Call(ctx context.Context, arguments json.RawMessage) (string, error) {
	ret := _m.Called(ctx, arguments)

	return ret.String(0), ret.Error(1)
}

// NewMockTool creates a new instance of MockTool. It also registers a cleanup function to assert the mocks expectations.
func NewMockTool(t mockT) *MockTool {
	m := &MockTool{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
