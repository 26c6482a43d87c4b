package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Temutjin2k/ubar/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/internal/service/session"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
	"github.com/Temutjin2k/ubar/pkg/validator"
	"github.com/gorilla/websocket"
)

type Driver struct {
	sessions SessionService
	feed     Feed[string]
	upgrader websocket.Upgrader
	l        logger.Logger
}

func NewDriver(sessions SessionService, feed Feed[string], l logger.Logger) *Driver {
	return &Driver{
		sessions: sessions,
		feed:     feed,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		l: l,
	}
}

func (h *Driver) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	ss, err := h.sessions.Get(r.PathValue("device_id"))
	if err != nil {
		serviceErrorResponse(r.Context(), w, h.l, "failed to get session", err)
		return nil, false
	}
	return ss, true
}

// OpenSession godoc
// @Summary      Open driver portal session
// @Description  Starts a session for the device in the loading view, or returns the running one.
// @Description  A persisted login is restored after the simulated load delay.
// @Tags         Driver Portal
// @Accept       json
// @Produce      json
// @Param        request  body  dto.OpenSessionRequest  false  "Device"
// @Success      200  {object}  map[string]any
// @Success      201  {object}  map[string]any
// @Router       /drivers/sessions [post]
func (h *Driver) OpenSession(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "open_driver_session")

	var req dto.OpenSessionRequest
	if err := readOptionalJSON(w, r, &req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	v := validator.New()
	if dto.ValidateOpenSession(v, &req); !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	ss, created := h.sessions.Open(ctx, req.DeviceID)
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	if err := writeJSON(w, status, envelope{"session": ss.Snapshot()}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// GetSession godoc
// @Summary      Get driver portal session
// @Tags         Driver Portal
// @Produce      json
// @Param        device_id  path  string  true  "Device ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /drivers/sessions/{device_id} [get]
func (h *Driver) GetSession(w http.ResponseWriter, r *http.Request) {
	ss, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := writeJSON(w, http.StatusOK, envelope{"session": ss.Snapshot()}, nil); err != nil {
		h.l.Error(r.Context(), "failed to write response", err)
	}
}

// CloseSession godoc
// @Summary      Close driver portal session
// @Description  Stops the session timers. The persisted login survives.
// @Tags         Driver Portal
// @Param        device_id  path  string  true  "Device ID"
// @Success      200  {object}  map[string]string
// @Router       /drivers/sessions/{device_id} [delete]
func (h *Driver) CloseSession(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "close_driver_session")
	deviceID := r.PathValue("device_id")

	if err := h.sessions.Drop(deviceID); err != nil {
		serviceErrorResponse(ctx, w, h.l, "failed to close session", err)
		return
	}
	h.feed.Disconnect(deviceID)

	if err := writeJSON(w, http.StatusOK, envelope{"message": "session closed"}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// Login godoc
// @Summary      Driver login
// @Description  Answers after the simulated latency with the driver profile and the access token
// @Tags         Driver Portal
// @Accept       json
// @Produce      json
// @Param        device_id  path  string            true  "Device ID"
// @Param        request    body  dto.LoginRequest  true  "Driver ID and PIN"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /drivers/sessions/{device_id}/login [post]
func (h *Driver) Login(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "driver_login")

	ss, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithDeviceID(ctx, ss.DeviceID())

	var req dto.LoginRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	v := validator.New()
	if dto.ValidateLogin(v, &req); !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	resultCh, err := ss.Login(ctx, req.DriverID, req.Pin)
	if err != nil {
		serviceErrorResponse(ctx, w, h.l, "failed to start login", err)
		return
	}

	var res models.LoginResult
	select {
	case <-ctx.Done():
		// the login keeps running; the session view reports its outcome
		return
	case res = <-resultCh:
	}

	switch {
	case res.Err == nil:
	case errors.Is(res.Err, types.ErrInvalidCredentials):
		errorResponse(w, http.StatusUnauthorized, session.DeniedMessage)
		return
	case errors.Is(res.Err, types.ErrCredentialsLookup):
		h.l.Warn(wrap.ErrorCtx(ctx, res.Err), "credential lookup failed", "error", res.Err.Error())
		errorResponse(w, http.StatusBadGateway, session.UnavailableMessage)
		return
	default:
		serviceErrorResponse(ctx, w, h.l, "login failed", res.Err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{
		"driver":       res.Driver,
		"access_token": res.Marker,
		"session":      ss.Snapshot(),
	}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// OpenRegister godoc
// @Summary      Switch to the application form
// @Tags         Driver Portal
// @Produce      json
// @Param        device_id  path  string  true  "Device ID"
// @Success      200  {object}  map[string]any
// @Failure      409  {object}  map[string]string
// @Router       /drivers/sessions/{device_id}/register/open [post]
func (h *Driver) OpenRegister(w http.ResponseWriter, r *http.Request) {
	h.switchView(w, r, "open_register", (*session.Session).OpenRegister)
}

// OpenLogin godoc
// @Summary      Switch back to the login form
// @Tags         Driver Portal
// @Produce      json
// @Param        device_id  path  string  true  "Device ID"
// @Success      200  {object}  map[string]any
// @Failure      409  {object}  map[string]string
// @Router       /drivers/sessions/{device_id}/login/open [post]
func (h *Driver) OpenLogin(w http.ResponseWriter, r *http.Request) {
	h.switchView(w, r, "open_login", (*session.Session).OpenLogin)
}

// DismissApplication godoc
// @Summary      Dismiss the sent application
// @Tags         Driver Portal
// @Produce      json
// @Param        device_id  path  string  true  "Device ID"
// @Success      200  {object}  map[string]any
// @Failure      409  {object}  map[string]string
// @Router       /drivers/sessions/{device_id}/register/dismiss [post]
func (h *Driver) DismissApplication(w http.ResponseWriter, r *http.Request) {
	h.switchView(w, r, "dismiss_application", (*session.Session).DismissApplication)
}

// Logout godoc
// @Summary      Driver logout
// @Description  Forces the driver offline and clears the persisted login
// @Tags         Driver Portal
// @Produce      json
// @Security     BearerAuth
// @Param        device_id  path  string  true  "Device ID"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /drivers/sessions/{device_id}/logout [post]
func (h *Driver) Logout(w http.ResponseWriter, r *http.Request) {
	h.switchView(w, r, "driver_logout", (*session.Session).Logout)
}

func (h *Driver) switchView(w http.ResponseWriter, r *http.Request, action string, op func(*session.Session, context.Context) error) {
	ctx := wrap.WithAction(r.Context(), action)

	ss, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithDeviceID(ctx, ss.DeviceID())

	if err := op(ss, ctx); err != nil {
		serviceErrorResponse(ctx, w, h.l, "failed to "+action, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, envelope{"session": ss.Snapshot()}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// Register godoc
// @Summary      Submit a fleet application
// @Description  Answers after the simulated latency; nothing is stored
// @Tags         Driver Portal
// @Accept       json
// @Produce      json
// @Param        device_id  path  string                  true  "Device ID"
// @Param        request    body  dto.ApplicationRequest  true  "Application"
// @Success      200  {object}  map[string]any
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]any
// @Router       /drivers/sessions/{device_id}/register [post]
func (h *Driver) Register(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "driver_register")

	ss, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithDeviceID(ctx, ss.DeviceID())

	var req dto.ApplicationRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	v := validator.New()
	if dto.ValidateApplication(v, &req); !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	done, err := ss.Register(ctx, req.ToModel())
	if err != nil {
		serviceErrorResponse(ctx, w, h.l, "failed to submit application", err)
		return
	}

	select {
	case <-ctx.Done():
		return
	case err = <-done:
	}
	if err != nil {
		serviceErrorResponse(ctx, w, h.l, "application not sent", err)
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"session": ss.Snapshot()}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// ToggleOnline godoc
// @Summary      Toggle driver availability
// @Description  Going online starts the GPS telemetry broadcast
// @Tags         Driver Portal
// @Produce      json
// @Security     BearerAuth
// @Param        device_id  path  string  true  "Device ID"
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /drivers/sessions/{device_id}/online [post]
func (h *Driver) ToggleOnline(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "toggle_online")

	ss, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithDeviceID(ctx, ss.DeviceID())

	online, err := ss.ToggleOnline(ctx)
	if err != nil {
		serviceErrorResponse(ctx, w, h.l, "failed to toggle availability", err)
		return
	}
	if err := writeJSON(w, http.StatusOK, envelope{"is_online": online, "session": ss.Snapshot()}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// HandleWebSocket godoc
// @Summary      Driver telemetry feed
// @Description  Websocket with SESSION_VIEW, DRIVER_STATUS and DRIVER_LOCATION events
// @Tags         Driver Portal
// @Param        device_id  path  string  true  "Device ID"
// @Router       /ws/drivers/{device_id} [get]
func (h *Driver) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "driver_ws")

	ss, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithDeviceID(ctx, ss.DeviceID())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.l.Warn(ctx, "websocket upgrade failed", "error", err.Error())
		return
	}

	if err := h.feed.Attach(ctx, ss.DeviceID(), conn, types.EventSessionView, ss.Snapshot()); err != nil {
		h.l.Debug(ctx, "websocket closed", "error", err.Error())
	}
}
