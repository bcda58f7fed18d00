package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-mcp-service/internal/pkg/exception"
)

// DecodeRequest binds the JSON body into a new T and returns a pointer to it.
// Bodies that cannot be read as JSON are reported as parse errors.
func DecodeRequest[T any, PT interface {
	*T
	render.Binder
}](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := render.Bind(r, req); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, appErr
		}

		return nil, dto.ErrParse.WithCause(err)
	}

	return req, nil
}

// NoRequest is the decoder for endpoints that take no input.
func NoRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}
