package microservices

import (
	"context"
	"errors"
	"time"

	"github.com/Temutjin2k/ubar/config"
	badgerstore "github.com/Temutjin2k/ubar/internal/adapter/badger"
	"github.com/Temutjin2k/ubar/internal/adapter/http/handler"
	"github.com/Temutjin2k/ubar/internal/adapter/http/server"
	wshandler "github.com/Temutjin2k/ubar/internal/adapter/http/ws"
	repo "github.com/Temutjin2k/ubar/internal/adapter/postgres"
	rabbitadapter "github.com/Temutjin2k/ubar/internal/adapter/rabbit"
	"github.com/Temutjin2k/ubar/internal/adapter/static"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/internal/service/auth"
	"github.com/Temutjin2k/ubar/internal/service/session"
	"github.com/Temutjin2k/ubar/pkg/logger"
	"github.com/Temutjin2k/ubar/pkg/postgres"
	"github.com/Temutjin2k/ubar/pkg/rabbit"
	"github.com/Temutjin2k/ubar/pkg/scheduler"
)

type DriverService struct {
	postgresDB *postgres.PostgreDB
	badgerDB   *badgerstore.Store
	rabbitMQ   *rabbit.RabbitMQ
	sessions   *session.Service
	feed       *wshandler.Feed[string]
	httpServer *server.API

	cfg config.Config
	log logger.Logger
}

func NewDriver(ctx context.Context, cfg config.Config, log logger.Logger) (svc *DriverService, err error) {
	s := &DriverService{cfg: cfg, log: log}
	defer func() {
		if err != nil {
			s.close(ctx)
		}
	}()

	if cfg.UsesPostgres() {
		s.postgresDB, err = postgres.New(ctx, cfg.Database)
		if err != nil {
			log.Error(ctx, "Failed to setup database", err)
			return nil, err
		}
		if err = repo.EnsureSchema(ctx, s.postgresDB.Pool); err != nil {
			log.Error(ctx, "Failed to prepare database schema", err)
			return nil, err
		}
	}

	var store session.Store
	switch cfg.Store.Backend {
	case types.StorePostgres:
		store = repo.NewKVStore(s.postgresDB.Pool)
	case types.StoreBadger:
		s.badgerDB, err = badgerstore.Open(badgerstore.Config{Path: cfg.Store.Path, InMemory: cfg.Store.InMemory}, log)
		if err != nil {
			log.Error(ctx, "Failed to open session store", err)
			return nil, err
		}
		store = s.badgerDB
	default:
		return nil, errors.New("unknown store backend: " + string(cfg.Store.Backend))
	}

	var credentials session.Credentials
	switch cfg.Credentials.Source {
	case types.CredentialsPostgres:
		drivers := repo.NewDriverRepo(s.postgresDB.Pool)
		n, countErr := drivers.Count(ctx)
		if countErr != nil {
			log.Warn(ctx, "Failed to count drivers", "error", countErr.Error())
		} else if n == 0 {
			log.Warn(ctx, "drivers table is empty, run seed-drivers to load the roster")
		}
		credentials = drivers
	default:
		credentials = static.NewCredentials()
	}

	s.rabbitMQ, err = connectRabbit(ctx, cfg.RabbitMQ, log, rabbitadapter.Exchanges...)
	if err != nil {
		log.Error(ctx, "Failed to connect to rabbitmq", err)
		return nil, err
	}
	var publisher session.Publisher = rabbitadapter.Nop{}
	if s.rabbitMQ != nil {
		publisher = rabbitadapter.NewDriverProducer(s.rabbitMQ, log)
	}

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, log)

	s.feed = wshandler.NewFeed[string]("driver", log)
	s.sessions = session.New(scheduler.New(), sessionDelays(cfg.Simulation), store, credentials, publisher, s.feed, log,
		session.WithMarkerIssuer(tokens))

	s.httpServer, err = server.New(cfg, server.Handlers{
		Driver: handler.NewDriver(s.sessions, s.feed, log),
	}, tokens, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		return nil, err
	}

	return s, nil
}

func (s *DriverService) Start(ctx context.Context) error {
	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "driver service closed")
	}()

	s.log.Info(ctx, "Driver service has been started",
		"port", s.cfg.Services.DriverService,
		"store", s.cfg.Store.Backend,
		"credentials", s.cfg.Credentials.Source)
	return serve(ctx, s.httpServer, s.log)
}

// close releases whatever has been set up so far; NewDriver uses it to unwind a partial start.
func (s *DriverService) close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Stop(ctx); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}
	if s.sessions != nil {
		s.sessions.Close()
	}
	if s.feed != nil {
		s.feed.Close()
	}
	if s.rabbitMQ != nil {
		if err := s.rabbitMQ.Close(ctx); err != nil {
			s.log.Warn(ctx, "Failed to close rabbitmq connection", "error", err.Error())
		}
	}
	if s.badgerDB != nil {
		if err := s.badgerDB.Close(); err != nil {
			s.log.Warn(ctx, "Failed to close session store", "error", err.Error())
		}
	}
	if s.postgresDB != nil && s.postgresDB.Pool != nil {
		s.postgresDB.Close()
	}
}
