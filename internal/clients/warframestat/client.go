package warframestat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	apperrors "github.com/0niSec/cephalon-seraph/internal/errors"
	"github.com/0niSec/cephalon-seraph/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

const (
	provider       = "warframestat"
	DefaultBaseURL = "https://api.warframestat.us"
)

type client struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds the client settings
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a WarframeStat.us client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperrors.InvalidArgument("warframestat config is required")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInvalidArgument, "invalid warframestat base URL")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &client{baseURL: baseURL, httpClient: httpClient}, nil
}

func (c *client) GetItem(ctx context.Context, name string) (rec *item.Record, err error) {
	ctx, span := telemetry.StartSpan(ctx, "warframestat.GetItem", attribute.String("item.query", name))
	defer func() { telemetry.EndSpan(span, err) }()

	rec = &item.Record{}
	if err = c.get(ctx, "/items/"+url.PathEscape(name), rec); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("item %q not found", name).WithMeta("query", name)
		}
		return nil, err
	}
	if rec.Name == "" {
		return nil, apperrors.NotFoundf("item %q not found", name).WithMeta("query", name)
	}
	span.SetAttributes(attribute.String("item.category", rec.Category))
	return rec, nil
}

func (c *client) Search(ctx context.Context, query string) (results []item.Summary, err error) {
	ctx, span := telemetry.StartSpan(ctx, "warframestat.Search", attribute.String("item.query", query))
	defer func() { telemetry.EndSpan(span, err) }()

	path := "/items/search/" + url.PathEscape(query) + "?" + url.Values{"only": {"name,category"}}.Encode()
	if err = c.get(ctx, path, &results); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	span.SetAttributes(attribute.Int("item.results", len(results)))
	return results, nil
}

// get issues a GET and decodes a 200 response into out. A 404 maps to
// not_found; any other failure maps to unavailable with the status code.
func (c *client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to build warframestat request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "warframestat request failed").
			WithMeta("status_code", 0)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return apperrors.NotFoundf("warframestat returned 404 for %s", path)
	case resp.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, resp.Body)
		return apperrors.Unavailable(provider, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeUnavailable, "failed to decode warframestat response").
			WithMeta("status_code", resp.StatusCode)
	}
	return nil
}
