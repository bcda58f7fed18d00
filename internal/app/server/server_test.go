//go:build unit

package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/config"
	"github.com/stretchr/testify/assert"
)

func TestNewHTTPServer(t *testing.T) {
	var cfg config.Config
	cfg.HTTP.Port = 3002
	cfg.HTTP.Timeout = 45 * time.Second

	handler := http.NotFoundHandler()

	got := NewHTTPServer(cfg, handler)

	assert.Equal(t, ":3002", got.Addr)
	assert.Equal(t, 45*time.Second, got.ReadTimeout)
	assert.Equal(t, 45*time.Second, got.WriteTimeout)
	assert.NotNil(t, got.Handler)
}
