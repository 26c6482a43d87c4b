package rss2json

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
)

const DefaultBaseURL = "https://api.rss2json.com"

// Fetcher loads a podcast RSS feed through the rss2json conversion API.
type Fetcher struct {
	rssURL  string
	baseURL string
	client  *http.Client
}

type Option func(*Fetcher)

func WithBaseURL(u string) Option {
	return func(f *Fetcher) { f.baseURL = u }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(f *Fetcher) { f.client = hc }
}

func New(rssURL string, opts ...Option) *Fetcher {
	f := &Fetcher{
		rssURL:  rssURL,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type feedPayload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Feed    struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		Author      string `json:"author"`
		Description string `json:"description"`
		Image       string `json:"image"`
	} `json:"feed"`
	Items []struct {
		Title       string `json:"title"`
		PubDate     string `json:"pubDate"`
		Link        string `json:"link"`
		GUID        string `json:"guid"`
		Thumbnail   string `json:"thumbnail"`
		Description string `json:"description"`
		Enclosure   struct {
			Link     string `json:"link"`
			Duration int    `json:"duration"`
		} `json:"enclosure"`
	} `json:"items"`
}

// Fetch returns the converted feed. A payload whose status is not "ok" is an error.
func (f *Fetcher) Fetch(ctx context.Context) (models.PodcastFeed, error) {
	const op = "rss2json.Fetch"
	ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)

	endpoint := f.baseURL + "/v1/api.json?rss_url=" + url.QueryEscape(f.rssURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.PodcastFeed{}, wrap.Error(ctx, fmt.Errorf("%s: build request: %w", op, err))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return models.PodcastFeed{}, wrap.Error(ctx, fmt.Errorf("%s: failed to connect to podcast service: %w", op, err))
	}
	defer resp.Body.Close()

	var payload feedPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.PodcastFeed{}, wrap.Error(ctx, fmt.Errorf("%s: decode response (status %d): %w", op, resp.StatusCode, err))
	}
	if payload.Status != "ok" {
		return models.PodcastFeed{}, wrap.Error(ctx, fmt.Errorf("%s: could not load podcast feed: %s", op, payload.Message))
	}

	feed := models.PodcastFeed{
		Title:       payload.Feed.Title,
		Author:      payload.Feed.Author,
		Description: payload.Feed.Description,
		Image:       payload.Feed.Image,
		Link:        payload.Feed.Link,
		Episodes:    make([]models.PodcastEpisode, 0, len(payload.Items)),
	}
	for i, it := range payload.Items {
		id := it.GUID
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		feed.Episodes = append(feed.Episodes, models.PodcastEpisode{
			ID:          id,
			Title:       it.Title,
			Duration:    formatDuration(it.Enclosure.Duration),
			PubDate:     it.PubDate,
			Link:        it.Link,
			AudioURL:    it.Enclosure.Link,
			Thumbnail:   it.Thumbnail,
			Description: it.Description,
		})
	}
	return feed, nil
}

// formatDuration renders seconds as "45 min"; zero means unknown.
func formatDuration(sec int) string {
	if sec <= 0 {
		return ""
	}
	return fmt.Sprintf("%d min", (sec+59)/60)
}
