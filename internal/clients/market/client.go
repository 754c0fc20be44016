package market

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/0niSec/cephalon-seraph/internal/errors"
	"github.com/0niSec/cephalon-seraph/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

const (
	provider       = "warframe.market"
	DefaultBaseURL = "https://api.warframe.market/v1"
)

type ordersResponse struct {
	Payload struct {
		Orders []Order `json:"orders"`
	} `json:"payload"`
}

type client struct {
	baseURL    string
	platform   string
	httpClient *http.Client
}

// Config holds the client settings
type Config struct {
	BaseURL    string
	Platform   string
	HTTPClient *http.Client
}

// New creates a warframe.market client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperrors.InvalidArgument("market config is required")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	platform := cfg.Platform
	if platform == "" {
		platform = "pc"
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &client{baseURL: baseURL, platform: platform, httpClient: httpClient}, nil
}

func (c *client) GetOrders(ctx context.Context, urlName string) (orders []Order, err error) {
	ctx, span := telemetry.StartSpan(ctx, "market.GetOrders", attribute.String("market.url_name", urlName))
	defer func() { telemetry.EndSpan(span, err) }()

	endpoint := c.baseURL + "/items/" + url.PathEscape(urlName) + "/orders"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to build market request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Platform", c.platform)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "market request failed").
			WithMeta("status_code", 0)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, apperrors.NotFoundf("no market listing for %s", urlName).WithMeta("url_name", urlName)
	case resp.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, apperrors.Unavailable(provider, resp.StatusCode)
	}

	var body ordersResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to decode market response").
			WithMeta("status_code", resp.StatusCode)
	}
	return body.Payload.Orders, nil
}
