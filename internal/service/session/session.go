package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
	"github.com/Temutjin2k/ubar/pkg/metrics"
	"github.com/Temutjin2k/ubar/pkg/scheduler"
	"github.com/looplab/fsm"
)

const (
	MarkerKey  = "ubar_driver_session"
	ProfileKey = "ubar_driver_data"

	// DefaultMarker is stored when no marker issuer is configured.
	DefaultMarker = "active"

	DeniedMessage      = "Invalid Credentials. Access Denied."
	UnavailableMessage = "Unable to reach the fleet network. Try again in a moment."

	// jitterSpan is the width of the uniform GPS drift applied per tick on each axis.
	jitterSpan = 0.0005
)

var InitialLocation = models.Coordinates{Latitude: 32.7767, Longitude: -96.7970}

const (
	eventRestore      = "restore"
	eventRequireLogin = "require_login"
	eventOpenRegister = "open_register"
	eventOpenLogin    = "open_login"
	eventAuthenticate = "authenticate"
	eventLogout       = "logout"
)

func newMachine() *fsm.FSM {
	loading, login, register, dashboard := types.ViewLoading.String(), types.ViewLogin.String(), types.ViewRegister.String(), types.ViewDashboard.String()
	return fsm.NewFSM(
		loading,
		fsm.Events{
			{Name: eventRestore, Src: []string{loading}, Dst: dashboard},
			{Name: eventRequireLogin, Src: []string{loading}, Dst: login},
			{Name: eventOpenRegister, Src: []string{login}, Dst: register},
			{Name: eventOpenLogin, Src: []string{register}, Dst: login},
			{Name: eventAuthenticate, Src: []string{login}, Dst: dashboard},
			{Name: eventLogout, Src: []string{dashboard}, Dst: login},
		},
		fsm.Callbacks{},
	)
}

// Delays of the simulated portal.
type Delays struct {
	Load     time.Duration
	Login    time.Duration
	Register time.Duration
	Jitter   time.Duration
}

// Session is the driver portal of one device. All methods are safe for concurrent use.
type Session struct {
	deviceID   string
	markerKey  string
	profileKey string
	ctx        context.Context
	s          *Service

	mu              sync.Mutex
	machine         *fsm.FSM
	driver          *models.DriverProfile
	online          bool
	location        models.Coordinates
	errMsg          string
	loginID         string
	applicationSent bool
	pending         scheduler.Timer
	loginCh         chan models.LoginResult
	registerCh      chan error
	jitter          scheduler.Timer
	epoch           uint64
	closed          bool
}

func (ss *Session) DeviceID() string {
	return ss.deviceID
}

func (ss *Session) view() types.SessionView {
	return types.SessionView(ss.machine.Current())
}

// start schedules the initial read of the persisted session.
func (ss *Session) start() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	epoch := ss.epoch
	ss.pending = ss.s.sched.AfterFunc(ss.s.delays.Load, func() { ss.load(epoch) })
}

// load resolves the loading view: marker and profile present restore the dashboard,
// anything else requires a login.
func (ss *Session) load(epoch uint64) {
	ctx := wrap.WithAction(ss.ctx, types.ActionSessionLoaded)
	profile, err := ss.readPersisted(ctx)
	if err != nil {
		ss.s.l.Warn(ctx, "persisted session discarded", "error", err)
	}

	ss.mu.Lock()
	if epoch != ss.epoch || ss.view() != types.ViewLoading {
		ss.mu.Unlock()
		return
	}
	ss.pending = nil

	event := eventRequireLogin
	if profile != nil {
		event = eventRestore
	}
	if err := fire(ctx, ss.machine, event); err != nil {
		ss.mu.Unlock()
		ss.s.l.Error(ctx, "failed to resolve session view", err)
		return
	}
	ss.driver = profile
	snap := ss.snapshotLocked()
	ss.mu.Unlock()

	if profile != nil {
		ss.s.l.Info(wrap.WithDriverID(ctx, profile.ID), "driver session restored")
	}
	ss.s.pushView(ctx, snap)
}

// readPersisted returns the stored profile, or nil when the marker or a valid profile is missing.
// A marker the issuer no longer accepts is cleared together with the profile.
func (ss *Session) readPersisted(ctx context.Context) (*models.DriverProfile, error) {
	marker, ok, err := ss.s.store.Get(ctx, ss.markerKey)
	if err != nil || !ok {
		return nil, err
	}

	raw, ok, err := ss.s.store.Get(ctx, ss.profileKey)
	if err != nil || !ok {
		return nil, err
	}

	var profile models.DriverProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("corrupt driver profile: %w", err)
	}
	if strings.TrimSpace(profile.ID) == "" {
		return nil, errors.New("corrupt driver profile: missing id")
	}

	if err := ss.verifyMarker(ctx, marker, profile.ID); err != nil {
		ss.forget(ctx)
		return nil, err
	}
	return &profile, nil
}

func (ss *Session) verifyMarker(ctx context.Context, marker, driverID string) error {
	if ss.s.issuer == nil {
		return nil
	}
	claims, err := ss.s.issuer.Validate(ctx, marker)
	if err != nil {
		return fmt.Errorf("session marker rejected: %w", err)
	}
	if claims.DeviceID != ss.deviceID || !strings.EqualFold(claims.DriverID, driverID) {
		return fmt.Errorf("session marker rejected: %w", types.ErrInvalidToken)
	}
	return nil
}

// forget deletes the persisted marker and profile.
func (ss *Session) forget(ctx context.Context) {
	if err := ss.s.store.Delete(ctx, ss.markerKey); err != nil {
		ss.s.l.Error(ctx, "failed to clear session marker", err)
	}
	if err := ss.s.store.Delete(ctx, ss.profileKey); err != nil {
		ss.s.l.Error(ctx, "failed to clear driver profile", err)
	}
}

// Login checks the credentials after the simulated latency. The returned channel
// receives exactly one result and is closed, also when the session is dropped first.
// A mismatch leaves the view on login with the denial message.
func (ss *Session) Login(ctx context.Context, id, pin string) (<-chan models.LoginResult, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if err := ss.checkLocked(types.ViewLogin); err != nil {
		return nil, err
	}

	ss.loginID = id
	ss.errMsg = ""
	result := make(chan models.LoginResult, 1)
	ss.loginCh = result
	epoch := ss.epoch
	ss.pending = ss.s.sched.AfterFunc(ss.s.delays.Login, func() {
		ss.resolveLogin(epoch, result, id, pin)
	})
	return result, nil
}

// resolveLogin answers result unless close has done so already.
func (ss *Session) resolveLogin(epoch uint64, result chan models.LoginResult, id, pin string) {
	ctx := wrap.WithAction(ss.ctx, types.ActionLoginResolved)

	profile, err := ss.s.credentials.Lookup(ctx, id, pin)
	if err != nil {
		metrics.RecordLogin("error")
		ss.s.l.Error(ctx, "credential lookup failed", err)
		ss.fail(epoch, result, UnavailableMessage,
			models.LoginResult{Err: wrap.Error(ctx, fmt.Errorf("%w: %w", types.ErrCredentialsLookup, err))})
		return
	}
	if profile == nil {
		metrics.RecordLogin("denied")
		ss.fail(epoch, result, DeniedMessage, models.LoginResult{Err: types.ErrInvalidCredentials})
		return
	}

	ctx = wrap.WithDriverID(ctx, profile.ID)
	if !ss.current(epoch, types.ViewLogin) {
		return
	}
	marker := ss.persist(ctx, profile)

	ss.mu.Lock()
	if epoch != ss.epoch || ss.view() != types.ViewLogin {
		// dropped while the keys were written
		ss.mu.Unlock()
		ss.forget(ctx)
		return
	}
	ss.pending = nil
	if err := fire(ctx, ss.machine, eventAuthenticate); err != nil {
		ss.answerLoginLocked(result, models.LoginResult{Err: err})
		ss.mu.Unlock()
		return
	}
	ss.driver = profile
	ss.errMsg = ""
	snap := ss.snapshotLocked()
	ss.answerLoginLocked(result, models.LoginResult{Driver: profile, Marker: marker})
	ss.mu.Unlock()

	metrics.RecordLogin("success")
	ss.s.l.Info(ctx, "driver logged in")
	ss.s.pushView(ctx, snap)
}

// current reports whether no Drop or Logout happened since epoch and the view is still view.
func (ss *Session) current(epoch uint64, view types.SessionView) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return epoch == ss.epoch && ss.view() == view
}

// answerLoginLocked delivers the one result of the login waiting on ch.
func (ss *Session) answerLoginLocked(ch chan models.LoginResult, res models.LoginResult) {
	if ss.loginCh != ch {
		return
	}
	ch <- res
	close(ch)
	ss.loginCh = nil
}

func (ss *Session) answerRegisterLocked(ch chan error, err error) {
	if ss.registerCh != ch {
		return
	}
	ch <- err
	close(ch)
	ss.registerCh = nil
}

// persist writes the marker and the pin-less profile. Write failures are logged: the login
// still succeeds, only the restore on the next startup is lost.
func (ss *Session) persist(ctx context.Context, profile *models.DriverProfile) string {
	marker := DefaultMarker
	if ss.s.issuer != nil {
		token, err := ss.s.issuer.IssueDriverToken(ctx, profile.ID, ss.deviceID)
		if err != nil {
			ss.s.l.Error(ctx, "failed to issue driver token", err)
		} else {
			marker = token.Token
		}
	}

	data, err := json.Marshal(profile)
	if err != nil {
		ss.s.l.Error(ctx, "failed to encode driver profile", err)
		return marker
	}
	if err := ss.s.store.Set(ctx, ss.markerKey, marker); err != nil {
		ss.s.l.Error(ctx, "failed to persist session marker", err)
	}
	if err := ss.s.store.Set(ctx, ss.profileKey, string(data)); err != nil {
		ss.s.l.Error(ctx, "failed to persist driver profile", err)
	}
	return marker
}

func (ss *Session) fail(epoch uint64, result chan models.LoginResult, msg string, res models.LoginResult) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if epoch != ss.epoch {
		return
	}
	ss.pending = nil
	ss.errMsg = msg
	ss.answerLoginLocked(result, res)
}

// Register submits an application after the simulated latency. It always succeeds;
// nothing is persisted or transmitted. The returned channel receives nil once the
// application is sent, or types.ErrSessionNotFound when the session is dropped first.
func (ss *Session) Register(ctx context.Context, app models.DriverApplication) (<-chan error, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if err := ss.checkLocked(types.ViewRegister); err != nil {
		return nil, err
	}
	if ss.applicationSent {
		return nil, types.ErrOperationPending
	}

	done := make(chan error, 1)
	ss.registerCh = done
	epoch := ss.epoch
	ss.pending = ss.s.sched.AfterFunc(ss.s.delays.Register, func() {
		ss.mu.Lock()
		if epoch != ss.epoch || ss.view() != types.ViewRegister {
			ss.mu.Unlock()
			return
		}
		ss.pending = nil
		ss.applicationSent = true
		ss.answerRegisterLocked(done, nil)
		ss.mu.Unlock()

		ss.s.l.Info(wrap.WithAction(ss.ctx, types.ActionApplicationSent), "driver application received", "name", app.Name)
	})
	return done, nil
}

// DismissApplication clears the sent flag and goes back to the login view.
func (ss *Session) DismissApplication(ctx context.Context) error {
	ss.mu.Lock()
	if err := ss.checkLocked(types.ViewRegister); err != nil {
		ss.mu.Unlock()
		return err
	}
	if !ss.applicationSent {
		ss.mu.Unlock()
		return types.ErrNoApplicationToDismiss
	}
	if err := fire(ctx, ss.machine, eventOpenLogin); err != nil {
		ss.mu.Unlock()
		return err
	}
	ss.applicationSent = false
	ss.errMsg = ""
	snap := ss.snapshotLocked()
	ss.mu.Unlock()

	ss.s.pushView(ctx, snap)
	return nil
}

// OpenRegister switches from the login form to the application form.
func (ss *Session) OpenRegister(ctx context.Context) error {
	return ss.switchView(ctx, types.ViewLogin, eventOpenRegister)
}

// OpenLogin switches from the application form back to the login form.
func (ss *Session) OpenLogin(ctx context.Context) error {
	return ss.switchView(ctx, types.ViewRegister, eventOpenLogin)
}

func (ss *Session) switchView(ctx context.Context, from types.SessionView, event string) error {
	ss.mu.Lock()
	if err := ss.checkLocked(from); err != nil {
		ss.mu.Unlock()
		return err
	}
	if err := fire(ctx, ss.machine, event); err != nil {
		ss.mu.Unlock()
		return err
	}
	ss.errMsg = ""
	ss.applicationSent = false
	snap := ss.snapshotLocked()
	ss.mu.Unlock()

	ss.s.pushView(ctx, snap)
	return nil
}

// Logout clears the persisted session, forces the driver offline and returns to the login view.
func (ss *Session) Logout(ctx context.Context) error {
	ss.mu.Lock()
	if err := ss.checkLocked(types.ViewDashboard); err != nil {
		ss.mu.Unlock()
		return err
	}
	if err := fire(ctx, ss.machine, eventLogout); err != nil {
		ss.mu.Unlock()
		return err
	}
	ss.stopTimers()
	wasOnline := ss.online
	driver := ss.driver
	ss.online = false
	ss.driver = nil
	ss.loginID = ""
	ss.errMsg = ""
	snap := ss.snapshotLocked()
	ss.mu.Unlock()

	ctx = wrap.WithDriverID(ctx, driver.ID)
	ss.forget(ctx)

	if wasOnline {
		metrics.DriversOnlineGauge.Dec()
		ss.s.emitStatus(ctx, ss.statusMessage(driver.ID, types.OfflineStatus))
	}
	ss.s.l.Info(ctx, "driver logged out")
	ss.s.pushView(ctx, snap)
	return nil
}

// ToggleOnline flips the availability of the driver. Going online starts the GPS drift,
// going offline stops it and keeps the last location.
func (ss *Session) ToggleOnline(ctx context.Context) (bool, error) {
	ss.mu.Lock()
	if err := ss.checkLocked(types.ViewDashboard); err != nil {
		ss.mu.Unlock()
		return false, err
	}

	ss.online = !ss.online
	status := types.OfflineStatus
	if ss.online {
		status = types.AvailableStatus
		epoch := ss.epoch
		ss.jitter = ss.s.sched.Every(ss.s.delays.Jitter, func() { ss.drift(epoch) })
	} else if ss.jitter != nil {
		ss.jitter.Stop()
		ss.jitter = nil
	}
	online := ss.online
	msg := ss.statusMessage(ss.driver.ID, status)
	ss.mu.Unlock()

	if online {
		metrics.DriversOnlineGauge.Inc()
	} else {
		metrics.DriversOnlineGauge.Dec()
	}
	ss.s.emitStatus(wrap.WithDriverID(ctx, msg.DriverID), msg)
	return online, nil
}

// drift applies one jitter tick: an independent uniform offset in [-span/2, span/2) per axis.
func (ss *Session) drift(epoch uint64) {
	ss.mu.Lock()
	if epoch != ss.epoch || !ss.online || ss.view() != types.ViewDashboard {
		ss.mu.Unlock()
		return
	}
	ss.location.Latitude += (ss.s.random() - 0.5) * jitterSpan
	ss.location.Longitude += (ss.s.random() - 0.5) * jitterSpan
	msg := models.DriverLocationMessage{
		DriverID:  ss.driver.ID,
		DeviceID:  ss.deviceID,
		Location:  ss.location,
		Timestamp: time.Now().UTC(),
	}
	ss.mu.Unlock()

	ss.s.emitLocation(wrap.WithAction(ss.ctx, types.ActionJitterTick), msg)
}

// Snapshot returns a copy of the session state.
func (ss *Session) Snapshot() models.DriverSessionSnapshot {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.snapshotLocked()
}

func (ss *Session) snapshotLocked() models.DriverSessionSnapshot {
	snap := models.DriverSessionSnapshot{
		DeviceID:        ss.deviceID,
		View:            ss.view(),
		IsOnline:        ss.online,
		Location:        ss.location,
		Error:           ss.errMsg,
		Pending:         ss.pending != nil,
		ApplicationSent: ss.applicationSent,
		LoginID:         ss.loginID,
	}
	if ss.driver != nil {
		d := *ss.driver
		snap.Driver = &d
	}
	return snap
}

// checkLocked rejects operations outside view or while a delayed operation is outstanding.
func (ss *Session) checkLocked(view types.SessionView) error {
	if ss.closed {
		return types.ErrSessionNotFound
	}
	if ss.pending != nil {
		return types.ErrOperationPending
	}
	if ss.view() != view {
		return types.ErrInvalidView
	}
	return nil
}

// stopTimers must be called with ss.mu held.
func (ss *Session) stopTimers() {
	if ss.pending != nil {
		ss.pending.Stop()
		ss.pending = nil
	}
	if ss.jitter != nil {
		ss.jitter.Stop()
		ss.jitter = nil
	}
	ss.epoch++
}

func (ss *Session) close() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.stopTimers()
	ss.closed = true
	if ss.loginCh != nil {
		ss.answerLoginLocked(ss.loginCh, models.LoginResult{Err: types.ErrSessionNotFound})
	}
	if ss.registerCh != nil {
		ss.answerRegisterLocked(ss.registerCh, types.ErrSessionNotFound)
	}
	if ss.online {
		ss.online = false
		metrics.DriversOnlineGauge.Dec()
	}
}

func (ss *Session) statusMessage(driverID string, status types.DriverStatus) models.DriverStatusMessage {
	return models.DriverStatusMessage{
		DriverID:  driverID,
		DeviceID:  ss.deviceID,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}
}

func fire(ctx context.Context, m *fsm.FSM, event string) error {
	err := m.Event(ctx, event)
	var noTransition fsm.NoTransitionError
	if err != nil && !errors.As(err, &noTransition) {
		return err
	}
	return nil
}
