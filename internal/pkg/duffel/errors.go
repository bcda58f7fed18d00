package duffel

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	ErrMalformedResponse = errors.New("malformed JSON in response")
	ErrNoOfferRequestID  = errors.New("no offer request ID in response")
	ErrNoOffersData      = errors.New("no offers data in response")
	ErrNoSearchResults   = errors.New("no search results found in API response")
)

// ProviderError is a non-success HTTP status from Duffel. Body is the raw
// response text and is surfaced to the caller unchanged.
type ProviderError struct {
	API        string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s error: %s", e.API, e.Body)
}

// Message extracts the first structured error message Duffel sent, if any.
func (e *ProviderError) Message() string {
	first := gjson.Get(e.Body, "errors.0")
	for _, field := range []string{"message", "title", "detail"} {
		if v := first.Get(field); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}

	return fmt.Sprintf("HTTP %d", e.StatusCode)
}
