package artic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Searcher runs collection searches. SearchView depends on this rather than
// on *Client so tests can substitute a fake.
type Searcher interface {
	Search(ctx context.Context, query string) ([]SearchResultItem, error)
}

// ArtworkFetcher loads a single artwork record.
type ArtworkFetcher interface {
	Artwork(ctx context.Context, id string) (*ArtworkDetail, error)
}

// Ensure Client implements both interfaces at compile time.
var (
	_ Searcher       = (*Client)(nil)
	_ ArtworkFetcher = (*Client)(nil)
)

// Observer receives the outcome of every completed API request.
type Observer interface {
	RecordRequest(url string, took time.Duration, err error)
}

// Client talks to the collection API.
type Client struct {
	baseURL   string
	imageBase string
	http      *http.Client
	userAgent string
	observer  Observer
}

const (
	DefaultBaseURL   = "https://api.artic.edu/api/v1"
	DefaultImageBase = "https://www.artic.edu/iiif/2"
	defaultUserAgent = "artsearch/0.1"

	// SearchLimit caps the number of results requested per search.
	SearchLimit = 20
)

var (
	searchFields = []string{"id", "title", "artist_title", "date_display", "image_id"}
	detailFields = []string{
		"id",
		"title",
		"artist_title",
		"date_display",
		"image_id",
		"medium_display",
		"dimensions",
		"credit_line",
		"department_title",
	}
)

// Options tune a Client. Zero values select the public API defaults.
type Options struct {
	BaseURL   string
	ImageBase string
	// Timeout bounds a whole request. Zero leaves the transport default.
	Timeout  time.Duration
	Observer Observer
}

// NewClient builds a Client for the given options.
func NewClient(opts Options) (*Client, error) {
	base, err := normalizeBase(opts.BaseURL, DefaultBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base: %w", err)
	}
	imageBase, err := normalizeBase(opts.ImageBase, DefaultImageBase)
	if err != nil {
		return nil, fmt.Errorf("parse image base: %w", err)
	}
	return &Client{
		baseURL:   base,
		imageBase: imageBase,
		http:      &http.Client{Timeout: opts.Timeout},
		userAgent: defaultUserAgent,
		observer:  opts.Observer,
	}, nil
}

// BaseURL returns the normalized API base.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SearchURL builds the search endpoint URL for query. The query is trimmed
// and percent-encoded once; the field projection keeps literal commas.
func (c *Client) SearchURL(query string) string {
	return fmt.Sprintf("%s/artworks/search?q=%s&limit=%d&fields=%s",
		c.baseURL,
		EncodeComponent(strings.TrimSpace(query)),
		SearchLimit,
		strings.Join(searchFields, ","))
}

// ArtworkURL builds the single-item endpoint URL for id.
func (c *Client) ArtworkURL(id string) string {
	return fmt.Sprintf("%s/artworks/%s?fields=%s",
		c.baseURL,
		EncodeComponent(id),
		strings.Join(detailFields, ","))
}

// ImageURL returns the IIIF rendition URL for imageID at width pixels using
// the client's image service.
func (c *Client) ImageURL(imageID string, width int) (string, bool) {
	return ImageURL(c.imageBase, imageID, width)
}

// Search runs a collection search. A response whose data member is missing
// or is not an array yields zero items.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResultItem, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload SearchResponse
	if err := c.GetJSON(ctx, c.SearchURL(query), &payload); err != nil {
		return nil, err
	}
	items, err := payload.Items()
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return items, nil
}

// Artwork fetches one artwork. A nil detail with a nil error means the
// response carried no record.
func (c *Client) Artwork(ctx context.Context, id string) (*ArtworkDetail, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload ArtworkResponse
	if err := c.GetJSON(ctx, c.ArtworkURL(id), &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// GetJSON performs one GET against rawURL and decodes the body into dest.
// Statuses >= 400 fail with *HTTPError. There are no retries.
func (c *Client) GetJSON(ctx context.Context, rawURL string, dest any) (err error) {
	start := time.Now()
	requestID := uuid.NewString()
	defer func() {
		took := time.Since(start)
		entry := log.WithFields(log.Fields{
			"url":         rawURL,
			"request_id":  requestID,
			"duration_ms": took.Milliseconds(),
		})
		if err != nil {
			entry.WithError(err).Warn("api request failed")
		} else {
			entry.Debug("api request completed")
		}
		if c.observer != nil {
			c.observer.RecordRequest(rawURL, took, err)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode, URL: rawURL}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// HTTPError reports a response received with a failing status.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// StatusCode extracts the HTTP status from err, or 0 when err is not an
// *HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// EncodeComponent percent-encodes s the way a URI component is encoded:
// spaces become %20, reserved characters are escaped exactly once and
// !'()* stay literal.
func EncodeComponent(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}

var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func normalizeBase(raw, fallback string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = fallback
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%q is not an absolute URL", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimRight(u.String(), "/"), nil
}
