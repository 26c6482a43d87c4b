package booking

import (
	"context"
	"sync"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
	"github.com/Temutjin2k/ubar/pkg/metrics"
	"github.com/Temutjin2k/ubar/pkg/scheduler"
	"github.com/google/uuid"
)

/*
Service owns the booking flows of the booking service: it creates them,
looks them up by id and fans their updates out to the live feed and the broker.
*/
type Service struct {
	sched     scheduler.Scheduler
	delays    Delays
	publisher Publisher
	feed      Feed
	advisor   Advisor
	geocoder  GeoCoder
	l         logger.Logger

	mu    sync.RWMutex
	flows map[uuid.UUID]*Flow
}

// New returns a booking service. geocoder may be nil, in which case map focus queries are sent as typed.
func New(sched scheduler.Scheduler, delays Delays, publisher Publisher, feed Feed, advisor Advisor, geocoder GeoCoder, l logger.Logger) *Service {
	return &Service{
		sched:     sched,
		delays:    delays,
		publisher: publisher,
		feed:      feed,
		advisor:   advisor,
		geocoder:  geocoder,
		l:         l,
		flows:     make(map[uuid.UUID]*Flow),
	}
}

// Create starts a new idle booking focused on the default map query.
func (s *Service) Create(ctx context.Context) *Flow {
	id := uuid.New()
	f := &Flow{
		id:        id,
		ctx:       wrap.WithBookingID(context.WithoutCancel(ctx), id.String()),
		s:         s,
		machine:   newMachine(),
		position:  IdlePosition,
		focus:     models.QueryFocus(DefaultFocusQuery),
		updatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.flows[id] = f
	s.mu.Unlock()

	metrics.ActiveBookingsGauge.Inc()
	s.l.Debug(f.ctx, "booking created")
	return f
}

func (s *Service) Get(id uuid.UUID) (*Flow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.flows[id]
	if !ok {
		return nil, types.ErrBookingNotFound
	}
	return f, nil
}

// Delete stops the booking's pending work and forgets it along with its chat.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	f, ok := s.flows[id]
	delete(s.flows, id)
	s.mu.Unlock()

	if !ok {
		return wrap.Error(ctx, types.ErrBookingNotFound)
	}

	f.close()
	s.advisor.Forget(id)
	metrics.ActiveBookingsGauge.Dec()
	s.l.Debug(ctx, "booking deleted")
	return nil
}

// Close stops every flow. Used on shutdown.
func (s *Service) Close() {
	s.mu.Lock()
	flows := s.flows
	s.flows = make(map[uuid.UUID]*Flow)
	s.mu.Unlock()

	for _, f := range flows {
		f.close()
	}
	metrics.ActiveBookingsGauge.Sub(float64(len(flows)))
}

func (s *Service) emitStatus(ctx context.Context, msg models.BookingStatusMessage) {
	metrics.RecordBookingTransition(msg.Status.String())

	if err := s.feed.Push(ctx, msg.BookingID, types.EventBookingStatus, msg); err != nil {
		s.l.Warn(ctx, "failed to push booking status", "error", err)
	}
	if err := s.publisher.PublishBookingStatus(ctx, msg); err != nil {
		s.l.Error(wrap.ErrorCtx(ctx, err), "failed to publish booking status", err)
	}
}

func (s *Service) emitPosition(ctx context.Context, msg models.DriverPositionMessage) {
	if err := s.feed.Push(ctx, msg.BookingID, types.EventDriverPosition, msg); err != nil {
		s.l.Warn(ctx, "failed to push driver position", "error", err)
	}
}

// pushFocus sends focus to the map, resolving text queries to coordinates when a geocoder is configured.
// A failed lookup still sends the query so the map can resolve it on its own.
func (s *Service) pushFocus(ctx context.Context, f *Flow, focus models.MapFocus) {
	if focus.Coordinates == nil && s.geocoder != nil {
		coords, err := s.geocoder.Search(ctx, focus.Query)
		if err != nil {
			s.l.Warn(ctx, "failed to geocode map focus", "query", focus.Query, "error", err)
		} else {
			focus.Coordinates = &coords
			f.setResolvedFocus(focus)
		}
	}

	if err := s.feed.Push(ctx, f.id, types.EventMapFocus, focus); err != nil {
		s.l.Warn(ctx, "failed to push map focus", "error", err)
	}
}
