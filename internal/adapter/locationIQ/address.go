package locationIQ

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
)

var ErrLocationNotFound = errors.New("location not found")

const DefaultBaseURL = "https://us1.locationiq.com"

type LocationIQClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type Option func(*LocationIQClient)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *LocationIQClient) { c.baseURL = u }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *LocationIQClient) { c.client = hc }
}

func New(apiKey string, opts ...Option) *LocationIQClient {
	c := &LocationIQClient{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Search resolves a free-text map focus query to the coordinates of the best match.
func (c *LocationIQClient) Search(ctx context.Context, query string) (models.Coordinates, error) {
	const op = "LocationIQClient.Search"
	ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/search?"+q.Encode(), nil)
	if err != nil {
		return models.Coordinates{}, wrap.Error(ctx, fmt.Errorf("%s: build request: %w", op, err))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return models.Coordinates{}, wrap.Error(ctx, fmt.Errorf("%s: failed to make request to LocationIQ: %w", op, err))
	}
	defer resp.Body.Close()

	// LocationIQ answers 404 for queries with no match
	if resp.StatusCode == http.StatusNotFound {
		return models.Coordinates{}, wrap.Error(ctx, fmt.Errorf("%s: %w", op, ErrLocationNotFound))
	}
	if resp.StatusCode != http.StatusOK {
		return models.Coordinates{}, wrap.Error(ctx, fmt.Errorf("%s: unexpected response status %d", op, resp.StatusCode))
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return models.Coordinates{}, wrap.Error(ctx, fmt.Errorf("%s: failed to decode LocationIQ response: %w", op, err))
	}
	if len(results) == 0 {
		return models.Coordinates{}, wrap.Error(ctx, fmt.Errorf("%s: %w", op, ErrLocationNotFound))
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return models.Coordinates{}, wrap.Error(ctx, fmt.Errorf("%s: failed to parse latitude: %w", op, err))
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return models.Coordinates{}, wrap.Error(ctx, fmt.Errorf("%s: failed to parse longitude: %w", op, err))
	}

	return models.Coordinates{Latitude: lat, Longitude: lon}, nil
}
