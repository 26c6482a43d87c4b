package microservices

import (
	"context"
	"time"

	"github.com/Temutjin2k/ubar/config"
	"github.com/Temutjin2k/ubar/internal/adapter/http/handler"
	"github.com/Temutjin2k/ubar/internal/adapter/http/server"
	"github.com/Temutjin2k/ubar/internal/adapter/rss2json"
	"github.com/Temutjin2k/ubar/internal/adapter/static"
	"github.com/Temutjin2k/ubar/internal/service/content"
	"github.com/Temutjin2k/ubar/pkg/logger"
)

type ContentService struct {
	httpServer *server.API

	cfg config.Config
	log logger.Logger
}

func NewContent(ctx context.Context, cfg config.Config, log logger.Logger) (*ContentService, error) {
	var fetcher content.FeedFetcher
	if cfg.ExternalAPI.PodcastRSSURL != "" {
		fetcher = rss2json.New(cfg.ExternalAPI.PodcastRSSURL)
	} else {
		log.Warn(ctx, "podcast rss url is not set, serving fallback episodes")
	}

	catalogue := content.New(static.Passes, static.UpcomingEvents, static.FallbackEpisodes, fetcher, log)

	httpServer, err := server.New(cfg, server.Handlers{
		Content: handler.NewContent(catalogue, log),
	}, nil, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		return nil, err
	}

	return &ContentService{
		httpServer: httpServer,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (s *ContentService) Start(ctx context.Context) error {
	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "content service closed")
	}()

	s.log.Info(ctx, "Content service has been started", "port", s.cfg.Services.ContentService)
	return serve(ctx, s.httpServer, s.log)
}

func (s *ContentService) close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	if err := s.httpServer.Stop(ctx); err != nil {
		s.log.Error(ctx, "failed to shutdown HTTP server", err)
	}
}
