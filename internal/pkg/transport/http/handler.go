package http

import (
	"net/http"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
)

// MakeHandlerFunc wires an endpoint with its codec into an http.HandlerFunc.
func MakeHandlerFunc(
	ep endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(
		ep,
		dec,
		enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}
