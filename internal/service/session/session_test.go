package session

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Temutjin2k/ubar/internal/adapter/static"
	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/logger"
	"github.com/Temutjin2k/ubar/pkg/scheduler"
)

type memStore struct {
	mu    sync.Mutex
	data  map[string]string
	err   error
	onSet func()
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data[key] = value
	if hook := m.onSet; hook != nil {
		m.onSet = nil
		m.mu.Unlock()
		hook()
		m.mu.Lock()
	}
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.data, key)
	return nil
}

// keyWith returns the stored key that starts with prefix.
func (m *memStore) keyWith(prefix string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.data {
		if strings.HasPrefix(k, prefix+":") {
			return k, true
		}
	}
	return "", false
}

type nopPublisher struct {
	mu        sync.Mutex
	statuses  []types.DriverStatus
	locations int
}

func (p *nopPublisher) PublishDriverStatus(_ context.Context, msg models.DriverStatusMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statuses = append(p.statuses, msg.Status)
	return nil
}

func (p *nopPublisher) PublishDriverLocation(context.Context, models.DriverLocationMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.locations++
	return nil
}

type nopFeed struct{}

func (nopFeed) Push(context.Context, string, types.FeedEvent, any) error { return nil }

type failingCredentials struct{}

func (failingCredentials) Lookup(context.Context, string, string) (*models.DriverProfile, error) {
	return nil, errors.New("connection refused")
}

// seqRand cycles through fixed values.
type seqRand struct {
	values []float64
	i      int
}

func (r *seqRand) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

type stubIssuer struct {
	expired bool
}

func (stubIssuer) IssueDriverToken(_ context.Context, driverID, deviceID string) (models.IssuedToken, error) {
	return models.IssuedToken{Token: "token|" + driverID + "|" + deviceID}, nil
}

func (i stubIssuer) Validate(_ context.Context, token string) (*models.DriverClaims, error) {
	parts := strings.Split(token, "|")
	if len(parts) != 3 || parts[0] != "token" {
		return nil, types.ErrInvalidToken
	}
	if i.expired {
		return nil, types.ErrExpToken
	}
	return &models.DriverClaims{DriverID: parts[1], DeviceID: parts[2]}, nil
}

// hookCredentials runs before on every lookup, then answers from the built-in roster.
type hookCredentials struct {
	before func()
}

func (c hookCredentials) Lookup(ctx context.Context, id, pin string) (*models.DriverProfile, error) {
	c.before()
	return static.NewCredentials().Lookup(ctx, id, pin)
}

var testDelays = Delays{
	Load:     800 * time.Millisecond,
	Login:    1500 * time.Millisecond,
	Register: 2 * time.Second,
	Jitter:   1500 * time.Millisecond,
}

type fixture struct {
	clock     *scheduler.Manual
	store     *memStore
	publisher *nopPublisher
	svc       *Service
}

func newFixture(store *memStore, creds Credentials, opts ...Option) *fixture {
	fx := &fixture{
		clock:     scheduler.NewManual(),
		store:     store,
		publisher: &nopPublisher{},
	}
	fx.svc = New(fx.clock, testDelays, store, creds, fx.publisher, nopFeed{}, logger.Discard(), opts...)
	return fx
}

// open starts a session for device and waits out the initial load.
func (fx *fixture) open(t *testing.T, device string) *Session {
	t.Helper()
	ss, created := fx.svc.Open(context.Background(), device)
	if !created {
		t.Fatalf("session for %s already open", device)
	}
	if got := ss.Snapshot().View; got != types.ViewLoading {
		t.Fatalf("initial view = %s, want loading", got)
	}
	fx.clock.Advance(testDelays.Load)
	return ss
}

// login runs a login through the simulated latency and returns its result.
func (fx *fixture) login(t *testing.T, ss *Session, id, pin string) models.LoginResult {
	t.Helper()
	ch, err := ss.Login(context.Background(), id, pin)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	fx.clock.Advance(testDelays.Login)
	select {
	case res := <-ch:
		return res
	default:
		t.Fatal("login did not resolve after the delay")
		return models.LoginResult{}
	}
}

func TestStartupWithoutMarker(t *testing.T) {
	fx := newFixture(newMemStore(), static.NewCredentials())
	ss := fx.open(t, "device-1")

	if got := ss.Snapshot().View; got != types.ViewLogin {
		t.Fatalf("view = %s, want login", got)
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		pin     string
		wantErr error
	}{
		{"exact id", "UB-ADMIN", "2026", nil},
		{"case-insensitive id", "ub-admin", "2026", nil},
		{"wrong pin", "UB-ADMIN", "0000", types.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(newMemStore(), static.NewCredentials())
			ss := fx.open(t, "device-1")

			res := fx.login(t, ss, tt.id, tt.pin)
			snap := ss.Snapshot()

			if tt.wantErr != nil {
				if !errors.Is(res.Err, tt.wantErr) {
					t.Fatalf("login error = %v, want %v", res.Err, tt.wantErr)
				}
				if snap.View != types.ViewLogin || snap.Error != DeniedMessage || snap.Driver != nil {
					t.Fatalf("snapshot after denial = %+v", snap)
				}
				if _, ok := fx.store.keyWith(MarkerKey); ok {
					t.Fatal("marker persisted on denial")
				}
				return
			}

			if res.Err != nil {
				t.Fatalf("login error = %v", res.Err)
			}
			if res.Driver.ID != "UB-ADMIN" {
				t.Fatalf("driver id = %q, want UB-ADMIN", res.Driver.ID)
			}
			if snap.View != types.ViewDashboard || snap.Driver == nil || snap.Driver.ID != "UB-ADMIN" {
				t.Fatalf("snapshot after login = %+v", snap)
			}
		})
	}
}

func TestLoginPendingAndViewChecks(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(newMemStore(), static.NewCredentials())

	ss, _ := fx.svc.Open(ctx, "device-1")
	if _, err := ss.Login(ctx, "UB-ADMIN", "2026"); !errors.Is(err, types.ErrOperationPending) {
		t.Fatalf("Login() while loading error = %v, want %v", err, types.ErrOperationPending)
	}
	fx.clock.Advance(testDelays.Load)

	if _, err := ss.Login(ctx, "UB-ADMIN", "2026"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if _, err := ss.Login(ctx, "UB-ADMIN", "2026"); !errors.Is(err, types.ErrOperationPending) {
		t.Fatalf("second Login() error = %v, want %v", err, types.ErrOperationPending)
	}
	if !ss.Snapshot().Pending {
		t.Fatal("pending flag not raised")
	}

	if err := ss.Logout(ctx); !errors.Is(err, types.ErrOperationPending) {
		t.Fatalf("Logout() while logging in error = %v", err)
	}
	fx.clock.Advance(testDelays.Login)

	if _, err := ss.Login(ctx, "UB-ADMIN", "2026"); !errors.Is(err, types.ErrInvalidView) {
		t.Fatalf("Login() on dashboard error = %v, want %v", err, types.ErrInvalidView)
	}
}

func TestLoginPersistsPinlessProfile(t *testing.T) {
	fx := newFixture(newMemStore(), static.NewCredentials(), WithMarkerIssuer(stubIssuer{}))
	ss := fx.open(t, "device-1")

	res := fx.login(t, ss, "ub-8842", "1234")
	if res.Marker != "token|UB-8842|device-1" {
		t.Fatalf("marker = %q", res.Marker)
	}

	markerKey, ok := fx.store.keyWith(MarkerKey)
	if !ok {
		t.Fatal("marker not persisted")
	}
	if fx.store.data[markerKey] != res.Marker {
		t.Fatalf("stored marker = %q", fx.store.data[markerKey])
	}

	profileKey, ok := fx.store.keyWith(ProfileKey)
	if !ok {
		t.Fatal("profile not persisted")
	}
	raw := fx.store.data[profileKey]
	if strings.Contains(raw, "1234") || strings.Contains(strings.ToLower(raw), "pin") {
		t.Fatalf("persisted profile leaks the pin: %s", raw)
	}

	var stored models.DriverProfile
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("stored profile is not json: %v", err)
	}
	if stored.Name != "Sarah Jenkins" {
		t.Fatalf("stored profile = %+v", stored)
	}
}

func TestRestoreAfterRestart(t *testing.T) {
	store := newMemStore()

	fx := newFixture(store, static.NewCredentials())
	ss := fx.open(t, "device-1")
	res := fx.login(t, ss, "UB-ADMIN", "2026")
	if res.Err != nil {
		t.Fatalf("login error = %v", res.Err)
	}

	// fresh process over the same store
	fx = newFixture(store, static.NewCredentials())
	ss = fx.open(t, "device-1")

	snap := ss.Snapshot()
	if snap.View != types.ViewDashboard {
		t.Fatalf("view after restart = %s, want dashboard", snap.View)
	}
	want := *res.Driver
	want.Pin = ""
	if snap.Driver == nil || *snap.Driver != want {
		t.Fatalf("restored driver = %+v, want %+v", snap.Driver, want)
	}

	// another device sharing the store does not see the session
	other := fx.open(t, "device-2")
	if got := other.Snapshot().View; got != types.ViewLogin {
		t.Fatalf("other device view = %s, want login", got)
	}
}

func TestRestoreWithMissingOrCorruptProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile *string
	}{
		{"missing", nil},
		{"not json", ptr("{not json")},
		{"no id", ptr(`{"name":"Ghost"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			fx := newFixture(store, static.NewCredentials())
			ss := fx.open(t, "device-1")
			fx.login(t, ss, "UB-ADMIN", "2026")

			profileKey, _ := store.keyWith(ProfileKey)
			if tt.profile == nil {
				delete(store.data, profileKey)
			} else {
				store.data[profileKey] = *tt.profile
			}

			fx = newFixture(store, static.NewCredentials())
			ss = fx.open(t, "device-1")
			if got := ss.Snapshot().View; got != types.ViewLogin {
				t.Fatalf("view = %s, want login", got)
			}
		})
	}
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	fx := newFixture(store, static.NewCredentials(), WithRand(&seqRand{values: []float64{0.9}}))
	ss := fx.open(t, "device-1")
	fx.login(t, ss, "UB-ADMIN", "2026")

	if _, err := ss.ToggleOnline(ctx); err != nil {
		t.Fatalf("ToggleOnline() error = %v", err)
	}
	if err := ss.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	snap := ss.Snapshot()
	if snap.View != types.ViewLogin || snap.IsOnline || snap.Driver != nil || snap.LoginID != "" {
		t.Fatalf("snapshot after logout = %+v", snap)
	}
	if len(store.data) != 0 {
		t.Fatalf("store not cleared: %v", store.data)
	}
	if fx.clock.Pending() != 0 {
		t.Fatalf("timers left after logout: %d", fx.clock.Pending())
	}
	if err := ss.Logout(ctx); !errors.Is(err, types.ErrInvalidView) {
		t.Fatalf("second Logout() error = %v, want %v", err, types.ErrInvalidView)
	}

	fx = newFixture(store, static.NewCredentials())
	ss = fx.open(t, "device-1")
	if got := ss.Snapshot().View; got != types.ViewLogin {
		t.Fatalf("view after restart = %s, want login", got)
	}
}

func TestToggleOnlineJitterBounds(t *testing.T) {
	ctx := context.Background()
	rnd := &seqRand{values: []float64{0, 0.999, 0.25, 0.5, 0.75, 0.1}}
	fx := newFixture(newMemStore(), static.NewCredentials(), WithRand(rnd))
	ss := fx.open(t, "device-1")
	fx.login(t, ss, "UB-9901", "7777")

	if _, err := ss.ToggleOnline(ctx); err != nil {
		t.Fatalf("ToggleOnline() error = %v", err)
	}
	start := ss.Snapshot().Location
	if start != InitialLocation {
		t.Fatalf("start location = %v, want %v", start, InitialLocation)
	}

	const ticks = 10
	fx.clock.Advance(ticks * testDelays.Jitter)

	loc := ss.Snapshot().Location
	bound := ticks*jitterSpan/2 + 1e-12
	if math.Abs(loc.Latitude-start.Latitude) > bound || math.Abs(loc.Longitude-start.Longitude) > bound {
		t.Fatalf("location %v drifted more than %v from %v", loc, bound, start)
	}
	if loc == start {
		t.Fatal("location did not drift")
	}
	if fx.publisher.locations != ticks {
		t.Fatalf("published %d locations, want %d", fx.publisher.locations, ticks)
	}

	online, err := ss.ToggleOnline(ctx)
	if err != nil || online {
		t.Fatalf("ToggleOnline() = %v, %v; want offline", online, err)
	}
	fx.clock.Advance(ticks * testDelays.Jitter)
	if got := ss.Snapshot().Location; got != loc {
		t.Fatalf("location changed while offline: %v -> %v", loc, got)
	}

	want := []types.DriverStatus{types.AvailableStatus, types.OfflineStatus}
	if len(fx.publisher.statuses) != 2 || fx.publisher.statuses[0] != want[0] || fx.publisher.statuses[1] != want[1] {
		t.Fatalf("published statuses = %v, want %v", fx.publisher.statuses, want)
	}
}

func TestToggleOnlineOutsideDashboard(t *testing.T) {
	fx := newFixture(newMemStore(), static.NewCredentials())
	ss := fx.open(t, "device-1")

	if _, err := ss.ToggleOnline(context.Background()); !errors.Is(err, types.ErrInvalidView) {
		t.Fatalf("ToggleOnline() error = %v, want %v", err, types.ErrInvalidView)
	}
}

func TestRegisterAndDismiss(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(newMemStore(), static.NewCredentials())
	ss := fx.open(t, "device-1")

	if _, err := ss.Register(ctx, models.DriverApplication{}); !errors.Is(err, types.ErrInvalidView) {
		t.Fatalf("Register() from login error = %v", err)
	}
	if err := ss.OpenRegister(ctx); err != nil {
		t.Fatalf("OpenRegister() error = %v", err)
	}
	if err := ss.DismissApplication(ctx); !errors.Is(err, types.ErrNoApplicationToDismiss) {
		t.Fatalf("DismissApplication() before sending error = %v", err)
	}

	done, err := ss.Register(ctx, models.DriverApplication{Name: "Jo", Email: "jo@example.com"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	fx.clock.Advance(testDelays.Register - time.Millisecond)
	if ss.Snapshot().ApplicationSent {
		t.Fatal("application sent before the delay")
	}
	fx.clock.Advance(time.Millisecond)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("register result = %v", err)
		}
	default:
		t.Fatal("register did not complete")
	}
	if !ss.Snapshot().ApplicationSent {
		t.Fatal("application flag not raised")
	}
	if len(fx.store.data) != 0 {
		t.Fatal("application persisted")
	}

	if err := ss.DismissApplication(ctx); err != nil {
		t.Fatalf("DismissApplication() error = %v", err)
	}
	snap := ss.Snapshot()
	if snap.View != types.ViewLogin || snap.ApplicationSent {
		t.Fatalf("snapshot after dismiss = %+v", snap)
	}
}

func TestOpenLoginClearsError(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(newMemStore(), static.NewCredentials())
	ss := fx.open(t, "device-1")
	fx.login(t, ss, "UB-ADMIN", "bad")

	if err := ss.OpenRegister(ctx); err != nil {
		t.Fatalf("OpenRegister() error = %v", err)
	}
	if err := ss.OpenLogin(ctx); err != nil {
		t.Fatalf("OpenLogin() error = %v", err)
	}
	if snap := ss.Snapshot(); snap.View != types.ViewLogin || snap.Error != "" {
		t.Fatalf("snapshot = %+v", snap)
	}
	if err := ss.OpenLogin(ctx); !errors.Is(err, types.ErrInvalidView) {
		t.Fatalf("OpenLogin() from login error = %v", err)
	}
}

func TestCredentialOutage(t *testing.T) {
	fx := newFixture(newMemStore(), failingCredentials{})
	ss := fx.open(t, "device-1")

	res := fx.login(t, ss, "UB-ADMIN", "2026")
	if !errors.Is(res.Err, types.ErrCredentialsLookup) {
		t.Fatalf("login error = %v, want %v", res.Err, types.ErrCredentialsLookup)
	}
	if snap := ss.Snapshot(); snap.View != types.ViewLogin || snap.Error != UnavailableMessage || snap.Pending {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestStoreWriteFailureStillLogsIn(t *testing.T) {
	store := newMemStore()
	fx := newFixture(store, static.NewCredentials())
	ss := fx.open(t, "device-1")

	store.err = errors.New("disk full")
	res := fx.login(t, ss, "UB-ADMIN", "2026")
	if res.Err != nil {
		t.Fatalf("login error = %v", res.Err)
	}
	if got := ss.Snapshot().View; got != types.ViewDashboard {
		t.Fatalf("view = %s, want dashboard", got)
	}
}

func TestDropStopsPendingWork(t *testing.T) {
	fx := newFixture(newMemStore(), static.NewCredentials())
	ss, _ := fx.svc.Open(context.Background(), "device-1")

	if err := fx.svc.Drop("device-1"); err != nil {
		t.Fatalf("Drop() error = %v", err)
	}
	fx.clock.Advance(time.Minute)
	if got := ss.Snapshot().View; got != types.ViewLoading {
		t.Fatalf("dropped session moved to %s", got)
	}
	if _, err := fx.svc.Get("device-1"); !errors.Is(err, types.ErrSessionNotFound) {
		t.Fatalf("Get() error = %v", err)
	}
}

func ptr(s string) *string { return &s }

func TestRestoreChecksMarker(t *testing.T) {
	tests := []struct {
		name     string
		issuer   stubIssuer
		tamper   func(store *memStore)
		wantView types.SessionView
	}{
		{
			name:     "valid marker",
			wantView: types.ViewDashboard,
		},
		{
			name:     "expired marker",
			issuer:   stubIssuer{expired: true},
			wantView: types.ViewLogin,
		},
		{
			name: "marker of another device",
			tamper: func(store *memStore) {
				key, _ := store.keyWith(MarkerKey)
				store.data[key] = "token|UB-ADMIN|device-2"
			},
			wantView: types.ViewLogin,
		},
		{
			name: "plain marker",
			tamper: func(store *memStore) {
				key, _ := store.keyWith(MarkerKey)
				store.data[key] = DefaultMarker
			},
			wantView: types.ViewLogin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			fx := newFixture(store, static.NewCredentials(), WithMarkerIssuer(stubIssuer{}))
			ss := fx.open(t, "device-1")
			if res := fx.login(t, ss, "UB-ADMIN", "2026"); res.Err != nil {
				t.Fatalf("login error = %v", res.Err)
			}
			if tt.tamper != nil {
				tt.tamper(store)
			}

			fx = newFixture(store, static.NewCredentials(), WithMarkerIssuer(tt.issuer))
			ss = fx.open(t, "device-1")
			if got := ss.Snapshot().View; got != tt.wantView {
				t.Fatalf("view after restart = %s, want %s", got, tt.wantView)
			}
			if tt.wantView == types.ViewLogin {
				if len(store.data) != 0 {
					t.Fatalf("rejected session left keys behind: %v", store.data)
				}
				// the device can log in again
				if res := fx.login(t, ss, "UB-ADMIN", "2026"); res.Err != nil {
					t.Fatalf("login after rejected restore error = %v", res.Err)
				}
			}
		})
	}
}

func TestDropAnswersPendingLogin(t *testing.T) {
	fx := newFixture(newMemStore(), static.NewCredentials())
	ss := fx.open(t, "device-1")

	ch, err := ss.Login(context.Background(), "UB-ADMIN", "2026")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if err := fx.svc.Drop("device-1"); err != nil {
		t.Fatalf("Drop() error = %v", err)
	}
	fx.clock.Advance(time.Hour)

	select {
	case res, ok := <-ch:
		if !ok || !errors.Is(res.Err, types.ErrSessionNotFound) {
			t.Fatalf("login result = %+v (ok %v), want %v", res, ok, types.ErrSessionNotFound)
		}
	default:
		t.Fatal("login result not delivered after Drop")
	}
	if _, ok := <-ch; ok {
		t.Fatal("login channel not closed")
	}
	if len(fx.store.data) != 0 {
		t.Fatalf("dropped login persisted keys: %v", fx.store.data)
	}
}

func TestCloseAnswersPendingRegister(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(newMemStore(), static.NewCredentials())
	ss := fx.open(t, "device-1")
	if err := ss.OpenRegister(ctx); err != nil {
		t.Fatalf("OpenRegister() error = %v", err)
	}

	done, err := ss.Register(ctx, models.DriverApplication{Name: "Jo"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	fx.svc.Close()
	fx.clock.Advance(time.Hour)

	select {
	case err := <-done:
		if !errors.Is(err, types.ErrSessionNotFound) {
			t.Fatalf("register result = %v, want %v", err, types.ErrSessionNotFound)
		}
	default:
		t.Fatal("register result not delivered after Close")
	}
	if ss.Snapshot().ApplicationSent {
		t.Fatal("application sent after Close")
	}
}

func TestDropDuringLoginDoesNotPersist(t *testing.T) {
	tests := []struct {
		name string
		hook func(fx *fixture, drop func())
	}{
		{"during lookup", func(fx *fixture, drop func()) {
			fx.svc.credentials = hookCredentials{before: drop}
		}},
		{"while writing the keys", func(fx *fixture, drop func()) {
			fx.store.onSet = drop
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(newMemStore(), static.NewCredentials())
			ss := fx.open(t, "device-1")
			tt.hook(fx, func() { _ = fx.svc.Drop("device-1") })

			res := fx.login(t, ss, "UB-ADMIN", "2026")
			if !errors.Is(res.Err, types.ErrSessionNotFound) {
				t.Fatalf("login error = %v, want %v", res.Err, types.ErrSessionNotFound)
			}
			if len(fx.store.data) != 0 {
				t.Fatalf("keys left after a dropped login: %v", fx.store.data)
			}

			// the next open of the device starts logged out
			ss = fx.open(t, "device-1")
			if got := ss.Snapshot().View; got != types.ViewLogin {
				t.Fatalf("view after reopen = %s, want login", got)
			}
		})
	}
}

func TestLoginDoesNotTrimDriverID(t *testing.T) {
	fx := newFixture(newMemStore(), static.NewCredentials())
	ss := fx.open(t, "device-1")

	res := fx.login(t, ss, " UB-ADMIN ", "2026")
	if !errors.Is(res.Err, types.ErrInvalidCredentials) {
		t.Fatalf("login error = %v, want %v", res.Err, types.ErrInvalidCredentials)
	}
	if snap := ss.Snapshot(); snap.View != types.ViewLogin || snap.Error != DeniedMessage {
		t.Fatalf("snapshot = %+v", snap)
	}
}
