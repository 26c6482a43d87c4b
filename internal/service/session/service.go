package session

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/hasher"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
	"github.com/Temutjin2k/ubar/pkg/scheduler"
	"github.com/google/uuid"
)

/*
Service keeps the driver portal sessions of the driver service, one per device.
Persisted keys are namespaced per device so that devices sharing a store do not
see each other's sessions.
*/
type Service struct {
	sched       scheduler.Scheduler
	delays      Delays
	store       Store
	credentials Credentials
	issuer      MarkerIssuer
	publisher   Publisher
	feed        Feed
	l           logger.Logger

	randMu sync.Mutex
	rnd    Rand

	mu       sync.RWMutex
	sessions map[string]*Session
}

type Option func(*Service)

// WithRand sets the source of the GPS drift.
func WithRand(r Rand) Option {
	return func(s *Service) { s.rnd = r }
}

// WithMarkerIssuer makes logins persist a signed token instead of the plain marker.
func WithMarkerIssuer(issuer MarkerIssuer) Option {
	return func(s *Service) { s.issuer = issuer }
}

func New(sched scheduler.Scheduler, delays Delays, store Store, credentials Credentials, publisher Publisher, feed Feed, l logger.Logger, opts ...Option) *Service {
	s := &Service{
		sched:       sched,
		delays:      delays,
		store:       store,
		credentials: credentials,
		publisher:   publisher,
		feed:        feed,
		l:           l,
		rnd:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		sessions:    make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open returns the session of deviceID, starting a new one in the loading view if there is none.
// An empty deviceID gets a fresh one.
func (s *Service) Open(ctx context.Context, deviceID string) (*Session, bool) {
	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	s.mu.Lock()
	if ss, ok := s.sessions[deviceID]; ok {
		s.mu.Unlock()
		return ss, false
	}

	ss := &Session{
		deviceID:   deviceID,
		markerKey:  hasher.Namespaced(MarkerKey, deviceID),
		profileKey: hasher.Namespaced(ProfileKey, deviceID),
		ctx:        wrap.WithDeviceID(context.WithoutCancel(ctx), deviceID),
		s:          s,
		machine:    newMachine(),
		location:   InitialLocation,
	}
	s.sessions[deviceID] = ss
	s.mu.Unlock()

	ss.start()
	s.l.Debug(ss.ctx, "driver session opened")
	return ss, true
}

func (s *Service) Get(deviceID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ss, ok := s.sessions[deviceID]
	if !ok {
		return nil, types.ErrSessionNotFound
	}
	return ss, nil
}

// Drop stops the session of deviceID and forgets it. Persisted keys are kept,
// so opening the device again restores the session.
func (s *Service) Drop(deviceID string) error {
	s.mu.Lock()
	ss, ok := s.sessions[deviceID]
	delete(s.sessions, deviceID)
	s.mu.Unlock()

	if !ok {
		return types.ErrSessionNotFound
	}
	ss.close()
	return nil
}

// Close stops every session. Used on shutdown.
func (s *Service) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, ss := range sessions {
		ss.close()
	}
}

func (s *Service) random() float64 {
	s.randMu.Lock()
	defer s.randMu.Unlock()
	return s.rnd.Float64()
}

func (s *Service) pushView(ctx context.Context, snap models.DriverSessionSnapshot) {
	if err := s.feed.Push(ctx, snap.DeviceID, types.EventSessionView, snap); err != nil {
		s.l.Warn(ctx, "failed to push session view", "error", err)
	}
}

func (s *Service) emitStatus(ctx context.Context, msg models.DriverStatusMessage) {
	if err := s.feed.Push(ctx, msg.DeviceID, types.EventDriverStatus, msg); err != nil {
		s.l.Warn(ctx, "failed to push driver status", "error", err)
	}
	if err := s.publisher.PublishDriverStatus(ctx, msg); err != nil {
		s.l.Error(wrap.ErrorCtx(ctx, err), "failed to publish driver status", err)
	}
}

func (s *Service) emitLocation(ctx context.Context, msg models.DriverLocationMessage) {
	if err := s.feed.Push(ctx, msg.DeviceID, types.EventDriverLocation, msg); err != nil {
		s.l.Warn(ctx, "failed to push driver location", "error", err)
	}
	if err := s.publisher.PublishDriverLocation(ctx, msg); err != nil {
		s.l.Error(wrap.ErrorCtx(ctx, err), "failed to publish driver location", err)
	}
}
