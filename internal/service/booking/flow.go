package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/scheduler"
	"github.com/google/uuid"
	"github.com/looplab/fsm"
)

const (
	MissingLocationsMessage = "Please enter both pickup and drop-off locations."
	CurrentLocation         = "Current Location"
	DefaultFocusQuery       = "Nightlife Seattle WA"

	// UnsupportedGeolocationAdvisory and FailedGeolocationAdvisory are sent through the concierge chat.
	UnsupportedGeolocationAdvisory = "Geolocation is not supported by your browser."
	FailedGeolocationAdvisory      = "I couldn't get your location. Please check your browser permissions."

	// focusMinLength is the drop-off length above which the map follows the typed text.
	focusMinLength = 5
	arriveEpsilon  = 0.5
	approachFactor = 0.05
)

var (
	IdlePosition   = models.Position{X: 10, Y: 10}
	StartPosition  = models.Position{X: 80, Y: 20}
	TargetPosition = models.Position{X: 50, Y: 50}
)

const (
	eventRequest = "request"
	eventConfirm = "confirm"
	eventCancel  = "cancel"
)

func newMachine() *fsm.FSM {
	idle, searching, confirmed := types.BookingIdle.String(), types.BookingSearching.String(), types.BookingConfirmed.String()
	return fsm.NewFSM(
		idle,
		fsm.Events{
			{Name: eventRequest, Src: []string{idle}, Dst: searching},
			{Name: eventConfirm, Src: []string{searching}, Dst: confirmed},
			{Name: eventCancel, Src: []string{idle, searching, confirmed}, Dst: idle},
		},
		fsm.Callbacks{},
	)
}

// fire runs a transition. Firing an event into the state it already is in is not an error.
func fire(ctx context.Context, m *fsm.FSM, event string) error {
	err := m.Event(ctx, event)
	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		return err
	}
	return nil
}

// Delays of the simulated dispatch.
type Delays struct {
	Search time.Duration
	Tick   time.Duration
}

// Flow is a single booking: pickup/dropoff capture, simulated search and the
// simulated approach of the assigned driver. All methods are safe for concurrent use.
type Flow struct {
	id  uuid.UUID
	ctx context.Context
	s   *Service

	mu        sync.Mutex
	machine   *fsm.FSM
	pickup    string
	dropoff   string
	errMsg    string
	position  models.Position
	focus     models.MapFocus
	locating  bool
	pending   scheduler.Timer
	ticker    scheduler.Timer
	epoch     uint64
	closed    bool
	updatedAt time.Time
}

func (f *Flow) ID() uuid.UUID {
	return f.id
}

func (f *Flow) status() types.BookingStatus {
	return types.BookingStatus(f.machine.Current())
}

// RequestRide moves an idle booking to searching and schedules the simulated confirmation.
func (f *Flow) RequestRide(ctx context.Context, pickup, dropoff string) error {
	const op = "Flow.RequestRide"

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return types.ErrBookingNotFound
	}
	if f.status() != types.BookingIdle {
		f.mu.Unlock()
		return types.ErrBookingInProgress
	}

	f.pickup, f.dropoff = pickup, dropoff
	if strings.TrimSpace(pickup) == "" || strings.TrimSpace(dropoff) == "" {
		f.errMsg = MissingLocationsMessage
		f.touch()
		f.mu.Unlock()
		return types.ErrMissingLocations
	}

	if err := fire(ctx, f.machine, eventRequest); err != nil {
		f.mu.Unlock()
		return fmt.Errorf("%s: %w", op, err)
	}
	f.errMsg = ""
	epoch := f.epoch
	f.pending = f.s.sched.AfterFunc(f.s.delays.Search, func() { f.confirm(epoch) })
	f.touch()
	msg := f.statusMessage()
	f.mu.Unlock()

	f.s.emitStatus(ctx, msg)
	return nil
}

// confirm completes the simulated search. It is a no-op for searches cancelled in the meantime.
func (f *Flow) confirm(epoch uint64) {
	f.mu.Lock()
	if epoch != f.epoch || f.status() != types.BookingSearching {
		f.mu.Unlock()
		return
	}
	if err := fire(f.ctx, f.machine, eventConfirm); err != nil {
		f.mu.Unlock()
		f.s.l.Error(f.ctx, "failed to confirm booking", err)
		return
	}

	f.pending = nil
	f.position = StartPosition
	f.ticker = f.s.sched.Every(f.s.delays.Tick, func() { f.tick(epoch) })
	f.touch()
	msg := f.statusMessage()
	pos := f.positionMessage(false)
	f.mu.Unlock()

	f.s.l.Info(f.ctx, "booking confirmed", "pickup", msg.Pickup, "dropoff", msg.Dropoff)
	f.s.emitStatus(f.ctx, msg)
	f.s.emitPosition(f.ctx, pos)
}

// tick moves the simulated driver 5% of the remaining distance toward the target.
func (f *Flow) tick(epoch uint64) {
	f.mu.Lock()
	if epoch != f.epoch || f.status() != types.BookingConfirmed {
		f.mu.Unlock()
		return
	}

	dx := TargetPosition.X - f.position.X
	dy := TargetPosition.Y - f.position.Y
	if math.Abs(dx) < arriveEpsilon && math.Abs(dy) < arriveEpsilon {
		if f.ticker != nil {
			f.ticker.Stop()
			f.ticker = nil
		}
		pos := f.positionMessage(true)
		f.mu.Unlock()

		f.s.emitPosition(f.ctx, pos)
		return
	}

	f.position.X += dx * approachFactor
	f.position.Y += dy * approachFactor
	f.touch()
	pos := f.positionMessage(false)
	f.mu.Unlock()

	f.s.emitPosition(f.ctx, pos)
}

// Cancel forces the booking back to idle from any state and stops pending work before returning.
func (f *Flow) Cancel(ctx context.Context) error {
	const op = "Flow.Cancel"

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return types.ErrBookingNotFound
	}
	f.stopTimers()
	if err := fire(ctx, f.machine, eventCancel); err != nil {
		f.mu.Unlock()
		return fmt.Errorf("%s: %w", op, err)
	}
	f.pickup, f.dropoff, f.errMsg = "", "", ""
	f.position = IdlePosition
	f.touch()
	msg := f.statusMessage()
	f.mu.Unlock()

	f.s.emitStatus(ctx, msg)
	return nil
}

// UpdatePickup replaces the pickup text.
func (f *Flow) UpdatePickup(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pickup = text
	f.touch()
}

// UpdateDropoff replaces the drop-off text. Text longer than five characters becomes the map focus.
func (f *Flow) UpdateDropoff(ctx context.Context, text string) {
	f.mu.Lock()
	f.dropoff = text
	f.touch()
	if utf8.RuneCountInString(text) <= focusMinLength {
		f.mu.Unlock()
		return
	}
	f.focus = models.QueryFocus(text)
	f.mu.Unlock()

	f.s.pushFocus(ctx, f, models.QueryFocus(text))
}

// LocateMe asks loc for the current position. On success the pickup becomes the
// current location and the map centers on it. On failure the booking is untouched
// and an advisory goes to the concierge chat.
func (f *Flow) LocateMe(ctx context.Context, loc Locator) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return types.ErrBookingNotFound
	}
	if f.locating {
		f.mu.Unlock()
		return types.ErrOperationPending
	}
	f.locating = true
	f.mu.Unlock()

	coords, err := loc.CurrentPosition(ctx)

	f.mu.Lock()
	f.locating = false
	if err != nil {
		f.mu.Unlock()
		f.s.advisor.Advise(ctx, f.id, GeolocationAdvisory(err))
		return err
	}
	focus := models.CoordinatesFocus(coords)
	f.pickup = CurrentLocation
	f.focus = focus
	f.touch()
	f.mu.Unlock()

	f.s.pushFocus(ctx, f, focus)
	return nil
}

// GeolocationAdvisory is the chat message for a failed geolocation request.
func GeolocationAdvisory(err error) string {
	if errors.Is(err, types.ErrGeolocationUnsupported) {
		return UnsupportedGeolocationAdvisory
	}
	return FailedGeolocationAdvisory
}

// Snapshot returns a copy of the booking state.
func (f *Flow) Snapshot() models.BookingSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := models.BookingSnapshot{
		ID:        f.id,
		Status:    f.status(),
		Pickup:    f.pickup,
		Dropoff:   f.dropoff,
		Error:     f.errMsg,
		Locating:  f.locating,
		MapFocus:  f.focus,
		UpdatedAt: f.updatedAt,
	}
	if snap.Status == types.BookingConfirmed {
		pos := f.position
		snap.Position = &pos
	}
	return snap
}

// close stops all pending work for good.
func (f *Flow) close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopTimers()
	f.closed = true
}

// stopTimers must be called with f.mu held. Callbacks already in flight see the new epoch and drop out.
func (f *Flow) stopTimers() {
	if f.pending != nil {
		f.pending.Stop()
		f.pending = nil
	}
	if f.ticker != nil {
		f.ticker.Stop()
		f.ticker = nil
	}
	f.epoch++
}

func (f *Flow) touch() {
	f.updatedAt = time.Now().UTC()
}

func (f *Flow) statusMessage() models.BookingStatusMessage {
	return models.BookingStatusMessage{
		BookingID: f.id,
		Status:    f.status(),
		Pickup:    f.pickup,
		Dropoff:   f.dropoff,
		Timestamp: time.Now().UTC(),
	}
}

func (f *Flow) positionMessage(arrived bool) models.DriverPositionMessage {
	return models.DriverPositionMessage{
		BookingID: f.id,
		Position:  f.position,
		Arrived:   arrived,
		Timestamp: time.Now().UTC(),
	}
}

// setResolvedFocus stores geocoded coordinates unless the focus moved on meanwhile.
func (f *Flow) setResolvedFocus(focus models.MapFocus) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.focus.Query == focus.Query && f.focus.Coordinates == nil {
		f.focus = focus
	}
}
