package microservices

import (
	"context"
	"time"

	"github.com/Temutjin2k/ubar/config"
	"github.com/Temutjin2k/ubar/internal/adapter/gemini"
	"github.com/Temutjin2k/ubar/internal/adapter/http/handler"
	"github.com/Temutjin2k/ubar/internal/adapter/http/server"
	wshandler "github.com/Temutjin2k/ubar/internal/adapter/http/ws"
	locationiq "github.com/Temutjin2k/ubar/internal/adapter/locationIQ"
	rabbitadapter "github.com/Temutjin2k/ubar/internal/adapter/rabbit"
	"github.com/Temutjin2k/ubar/internal/service/booking"
	"github.com/Temutjin2k/ubar/internal/service/concierge"
	"github.com/Temutjin2k/ubar/pkg/logger"
	"github.com/Temutjin2k/ubar/pkg/rabbit"
	"github.com/Temutjin2k/ubar/pkg/scheduler"
	"github.com/google/uuid"
)

type BookingService struct {
	httpServer *server.API
	bookings   *booking.Service
	feed       *wshandler.Feed[uuid.UUID]
	rabbitMQ   *rabbit.RabbitMQ

	cfg config.Config
	log logger.Logger
}

func NewBooking(ctx context.Context, cfg config.Config, log logger.Logger) (*BookingService, error) {
	rabbitMQ, err := connectRabbit(ctx, cfg.RabbitMQ, log, rabbitadapter.Exchanges...)
	if err != nil {
		log.Error(ctx, "Failed to connect to rabbitmq", err)
		return nil, err
	}

	var publisher booking.Publisher = rabbitadapter.Nop{}
	if rabbitMQ != nil {
		publisher = rabbitadapter.NewBookingProducer(rabbitMQ, log)
	}

	var geocoder booking.GeoCoder
	if cfg.ExternalAPI.LocationIQapiKey != "" {
		geocoder = locationiq.New(cfg.ExternalAPI.LocationIQapiKey)
	} else {
		log.Warn(ctx, "locationiq api key is not set, map focus queries are not geocoded")
	}

	if cfg.ExternalAPI.GeminiAPIKey == "" {
		log.Warn(ctx, "gemini api key is not set, concierge suggestions will fail")
	}
	suggester := gemini.New(cfg.ExternalAPI.GeminiAPIKey, gemini.WithModel(cfg.ExternalAPI.GeminiModel))

	feed := wshandler.NewFeed[uuid.UUID]("booking", log)
	chat := concierge.New(suggester, feed, log)
	bookings := booking.New(scheduler.New(), bookingDelays(cfg.Simulation), publisher, feed, chat, geocoder, log)

	httpServer, err := server.New(cfg, server.Handlers{
		Booking: handler.NewBooking(bookings, chat, feed, log),
	}, nil, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		bookings.Close()
		feed.Close()
		if rabbitMQ != nil {
			_ = rabbitMQ.Close(ctx)
		}
		return nil, err
	}

	return &BookingService{
		httpServer: httpServer,
		bookings:   bookings,
		feed:       feed,
		rabbitMQ:   rabbitMQ,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (s *BookingService) Start(ctx context.Context) error {
	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "booking service closed")
	}()

	s.log.Info(ctx, "Booking service has been started", "port", s.cfg.Services.BookingService)
	return serve(ctx, s.httpServer, s.log)
}

func (s *BookingService) close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	if err := s.httpServer.Stop(ctx); err != nil {
		s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
	}

	s.bookings.Close()
	s.feed.Close()

	if s.rabbitMQ != nil {
		if err := s.rabbitMQ.Close(ctx); err != nil {
			s.log.Warn(ctx, "Failed to close rabbitmq connection", "error", err.Error())
		}
	}
}
