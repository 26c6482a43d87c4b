package microservices

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Temutjin2k/ubar/config"
	"github.com/Temutjin2k/ubar/internal/adapter/http/server"
	"github.com/Temutjin2k/ubar/internal/service/booking"
	"github.com/Temutjin2k/ubar/internal/service/session"
	"github.com/Temutjin2k/ubar/pkg/logger"
	"github.com/Temutjin2k/ubar/pkg/rabbit"
)

// serve runs the http server until it fails or the process receives SIGINT/SIGTERM.
func serve(ctx context.Context, api *server.API, log logger.Logger) error {
	errCh := make(chan error, 1)
	api.Run(ctx, errCh)

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		log.Info(ctx, "shuting down application", "signal", sig.String())
		return nil
	}
}

// connectRabbit dials the broker and declares exchanges. Returns nil when publishing is disabled.
func connectRabbit(ctx context.Context, cfg config.RabbitMQConfig, log logger.Logger, exchanges ...rabbit.Exchange) (*rabbit.RabbitMQ, error) {
	if !cfg.Enabled {
		log.Warn(ctx, "rabbitmq disabled, events are not published")
		return nil, nil
	}
	return rabbit.New(ctx, cfg.GetDSN(), log, exchanges...)
}

func bookingDelays(s config.SimulationConfig) booking.Delays {
	return booking.Delays{
		Search: s.SearchDelay,
		Tick:   s.PositionTick,
	}
}

func sessionDelays(s config.SimulationConfig) session.Delays {
	return session.Delays{
		Load:     s.LoadDelay,
		Login:    s.LoginDelay,
		Register: s.RegisterDelay,
		Jitter:   s.JitterPeriod,
	}
}
