package content

import (
	"context"
	"errors"
	"testing"

	"github.com/Temutjin2k/ubar/internal/adapter/static"
	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/logger"
)

type fetcherFunc func(ctx context.Context) (models.PodcastFeed, error)

func (fn fetcherFunc) Fetch(ctx context.Context) (models.PodcastFeed, error) {
	return fn(ctx)
}

func newService(fetcher FeedFetcher) *Service {
	return New(static.Passes, static.UpcomingEvents, static.FallbackEpisodes, fetcher, logger.Discard())
}

func TestListPasses(t *testing.T) {
	svc := newService(nil)

	tests := []struct {
		name      string
		sort      string
		page      int
		pageSize  int
		wantFirst string
		wantLen   int
	}{
		{"cheapest first", "price", 1, 3, "day-pass", 3},
		{"priciest first", "-price", 1, 1, "fifa-full", 1},
		{"by title", "title", 1, 50, "fifa-full", len(static.Passes)},
		{"popular first", "-popular", 1, 2, "night-pass", 2},
		{"last page", "price", 5, 2, "fifa-full", 1},
		{"past the end", "price", 9, 5, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := models.NewFilters(tt.page, tt.pageSize, tt.sort, PassSortSafelist)
			if err != nil {
				t.Fatalf("NewFilters() error = %v", err)
			}

			passes, meta := svc.ListPasses(context.Background(), f)
			if len(passes) != tt.wantLen {
				t.Fatalf("got %d passes, want %d", len(passes), tt.wantLen)
			}
			if tt.wantLen > 0 && passes[0].ID != tt.wantFirst {
				t.Fatalf("first pass = %s, want %s", passes[0].ID, tt.wantFirst)
			}
			if meta.TotalRecords != len(static.Passes) {
				t.Fatalf("total = %d", meta.TotalRecords)
			}
		})
	}
}

func TestGetPass(t *testing.T) {
	svc := newService(nil)

	p, err := svc.GetPass(context.Background(), "night-pass")
	if err != nil || p.Price != "$65.00" || !p.IsPopular {
		t.Fatalf("GetPass() = %+v, %v", p, err)
	}
	if _, err := svc.GetPass(context.Background(), "vip"); !errors.Is(err, types.ErrPassNotFound) {
		t.Fatalf("GetPass() error = %v, want %v", err, types.ErrPassNotFound)
	}
}

func TestPodcast(t *testing.T) {
	ctx := context.Background()

	feed, err := newService(nil).Podcast(ctx)
	if err != nil || feed.Live || len(feed.Episodes) != 3 {
		t.Fatalf("unconfigured Podcast() = %+v, %v", feed, err)
	}
	if feed.Episodes[0].Title != "Ep 42: The Future of Nightlife" {
		t.Fatalf("first fallback episode = %q", feed.Episodes[0].Title)
	}

	live := newService(fetcherFunc(func(context.Context) (models.PodcastFeed, error) {
		return models.PodcastFeed{Title: "Live", Episodes: []models.PodcastEpisode{{ID: "g1"}}}, nil
	}))
	feed, err = live.Podcast(ctx)
	if err != nil || !feed.Live || feed.Title != "Live" {
		t.Fatalf("live Podcast() = %+v, %v", feed, err)
	}

	down := newService(fetcherFunc(func(context.Context) (models.PodcastFeed, error) {
		return models.PodcastFeed{}, errors.New("status not ok")
	}))
	feed, err = down.Podcast(ctx)
	if !errors.Is(err, types.ErrFeedFailed) {
		t.Fatalf("Podcast() error = %v, want %v", err, types.ErrFeedFailed)
	}
	if feed.Live || len(feed.Episodes) != 3 {
		t.Fatalf("fallback feed = %+v", feed)
	}
}
