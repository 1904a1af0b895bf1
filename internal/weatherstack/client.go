package weatherstack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL = "https://api.weatherstack.com"

	// PlaceholderAccessKey is the value shipped in .env.example. It is treated as unset.
	PlaceholderAccessKey = "PASTE_YOUR_WEATHERSTACK_KEY_HERE"

	ParamAccessKey = "access_key"
)

type Endpoint string

const (
	EndpointCurrent    Endpoint = "/current"
	EndpointHistorical Endpoint = "/historical"
	EndpointMarine     Endpoint = "/marine"
)

var ErrMissingAccessKey = errors.New("weatherstack access key is not configured")

// ValidAccessKey trims key and rejects blank and placeholder values.
func ValidAccessKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" || trimmed == PlaceholderAccessKey {
		return "", ErrMissingAccessKey
	}
	return trimmed, nil
}

// Response is the upstream reply as received. Body is never re-encoded.
type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type Client interface {
	Fetch(ctx context.Context, endpoint Endpoint, params url.Values) (*Response, error)
	GetHTTPClient() *http.Client
}

type client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a Client for baseURL. An empty baseURL means DefaultBaseURL.
// The HTTP client has no timeout; the network stack defaults apply.
func NewClient(baseURL string) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

func (c *client) Fetch(ctx context.Context, endpoint Endpoint, params url.Values) (*Response, error) {
	target := c.baseURL + string(endpoint) + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("building weatherstack request: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("url", redactAccessKey(c.baseURL+string(endpoint), params)).
		Str("query", params.Get("query")).
		Str("units", params.Get("units")).
		Msg("weatherstack request")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weatherstack request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading weatherstack response: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

func (c *client) GetHTTPClient() *http.Client {
	return c.client
}

func redactAccessKey(base string, params url.Values) string {
	masked := url.Values{}
	for k, v := range params {
		masked[k] = v
	}
	if masked.Has(ParamAccessKey) {
		masked.Set(ParamAccessKey, "***")
	}
	return base + "?" + masked.Encode()
}
