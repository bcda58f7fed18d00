// Package duffel talks to the Duffel travel-booking API. It builds request
// payloads, performs the calls and hands back the raw result arrays; mapping
// individual items is left to the caller.
package duffel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Config for the Duffel client.
type Config struct {
	BaseURL    string
	APIToken   string
	APIVersion string
	Timeout    time.Duration
}

// Client is safe for concurrent use; it holds no per-request state.
type Client struct {
	baseURL    string
	apiToken   string
	apiVersion string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiToken:   cfg.APIToken,
		apiVersion: cfg.APIVersion,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (c *Client) do(ctx context.Context,
	api, method, path string,
	query url.Values,
	payload any,
) (gjson.Result, error) {
	var body io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("marshal %s payload: %w", api, err)
		}

		slog.DebugContext(ctx, "calling duffel", slog.String("api", api), slog.String("payload", string(data)))
		body = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("create %s request: %w", api, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Duffel-Version", c.apiVersion)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%s request failed: %w", api, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read %s response: %w", api, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		providerErr := &ProviderError{
			API:        api,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}

		slog.WarnContext(ctx, "duffel returned non-success status",
			slog.String("api", api),
			slog.Int("status", resp.StatusCode),
			slog.String("message", providerErr.Message()))

		return gjson.Result{}, providerErr
	}

	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fmt.Errorf("%s: %w", api, ErrMalformedResponse)
	}

	return gjson.ParseBytes(raw), nil
}
