package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Temutjin2k/ubar/config"
	"github.com/Temutjin2k/ubar/internal/adapter/http/handler"
	"github.com/Temutjin2k/ubar/internal/adapter/http/middleware"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
)

const serverIPAddress = "%s:%s"

type API struct {
	mode   types.ServiceMode
	mux    *http.ServeMux
	server *http.Server
	routes *Handlers
	m      *middleware.Middleware

	addr string
	log  logger.Logger
}

// Handlers are the route groups of the service modes. Only the group of the running mode is required.
type Handlers struct {
	Booking *handler.Booking
	Driver  *handler.Driver
	Content *handler.Content

	health *handler.Health
}

func New(cfg config.Config, routes Handlers, tokens middleware.TokenValidator, logger logger.Logger) (*API, error) {
	var port string

	switch cfg.Mode {
	case types.BookingService:
		if routes.Booking == nil {
			return nil, errors.New("booking handler is required")
		}
		port = cfg.Services.BookingService
	case types.DriverService:
		if routes.Driver == nil {
			return nil, errors.New("driver handler is required")
		}
		if tokens == nil {
			return nil, errors.New("token validator is required")
		}
		port = cfg.Services.DriverService
	case types.ContentService:
		if routes.Content == nil {
			return nil, errors.New("content handler is required")
		}
		port = cfg.Services.ContentService
	default:
		return nil, fmt.Errorf("invalid mode: %s", cfg.Mode)
	}
	routes.health = handler.NewHealth(string(cfg.Mode), logger)

	api := &API{
		mode:   cfg.Mode,
		mux:    http.NewServeMux(),
		routes: &routes,
		m:      middleware.NewMiddleware(tokens, logger),
		addr:   fmt.Sprintf(serverIPAddress, "0.0.0.0", port),
		log:    logger,
	}

	setupRoutes(api.mux, api.routes, api.m, api.mode, logger)

	api.server = &http.Server{
		Addr:              api.addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// Handler is the mux wrapped in the middleware chain.
func (a *API) Handler() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.Metrics(string(a.mode))(a.m.Logging(a.m.Auth(a.mux)))))
}
