package content

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
)

// PassSortSafelist are the sort keys accepted by ListPasses.
var PassSortSafelist = []string{"title", "-title", "price", "-price", "popular", "-popular"}

const FallbackFeedTitle = "U BAR Radio"

// FeedFetcher loads the podcast feed.
type FeedFetcher interface {
	Fetch(ctx context.Context) (models.PodcastFeed, error)
}

// Service serves the marketing content: passes, events and the podcast.
type Service struct {
	passes   []models.Pass
	events   []models.Event
	episodes []models.PodcastEpisode
	fetcher  FeedFetcher
	l        logger.Logger
}

// New returns a content service. fetcher may be nil, in which case the podcast is the fallback list.
func New(passes []models.Pass, events []models.Event, fallback []models.PodcastEpisode, fetcher FeedFetcher, l logger.Logger) *Service {
	return &Service{
		passes:   passes,
		events:   events,
		episodes: fallback,
		fetcher:  fetcher,
		l:        l,
	}
}

// ListPasses returns one page of the catalogue in the requested order.
func (s *Service) ListPasses(_ context.Context, f models.Filters) ([]models.Pass, models.Metadata) {
	passes := slices.Clone(s.passes)

	slices.SortStableFunc(passes, func(a, b models.Pass) int {
		var c int
		switch f.SortKey() {
		case "price":
			c = cmp.Compare(a.PriceCents, b.PriceCents)
		case "popular":
			c = boolCompare(a.IsPopular, b.IsPopular)
		default:
			c = strings.Compare(a.Title, b.Title)
		}
		if f.Descending() {
			c = -c
		}
		return c
	})

	start, end := f.Window(len(passes))
	return passes[start:end], models.CalculateMetadata(len(passes), f.Page, f.PageSize)
}

func (s *Service) GetPass(ctx context.Context, id string) (models.Pass, error) {
	for _, p := range s.passes {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Pass{}, wrap.Error(ctx, types.ErrPassNotFound)
}

func (s *Service) Events(context.Context) []models.Event {
	return slices.Clone(s.events)
}

// Podcast returns the live feed. When the feed cannot be loaded the fallback
// episodes are returned together with the error.
func (s *Service) Podcast(ctx context.Context) (models.PodcastFeed, error) {
	const op = "Service.Podcast"

	if s.fetcher == nil {
		return s.fallback(), nil
	}

	feed, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.l.Warn(ctx, "podcast feed unavailable, serving fallback episodes", "error", err)
		return s.fallback(), wrap.Error(ctx, fmt.Errorf("%s: %w: %w", op, types.ErrFeedFailed, err))
	}
	feed.Live = true
	return feed, nil
}

func (s *Service) fallback() models.PodcastFeed {
	return models.PodcastFeed{
		Title:    FallbackFeedTitle,
		Episodes: slices.Clone(s.episodes),
	}
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}
