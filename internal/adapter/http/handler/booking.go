package handler

import (
	"errors"
	"net/http"

	"github.com/Temutjin2k/ubar/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/internal/service/booking"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
	"github.com/Temutjin2k/ubar/pkg/validator"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Booking struct {
	bookings  BookingService
	concierge ConciergeService
	feed      Feed[uuid.UUID]
	upgrader  websocket.Upgrader
	l         logger.Logger
}

func NewBooking(bookings BookingService, concierge ConciergeService, feed Feed[uuid.UUID], l logger.Logger) *Booking {
	return &Booking{
		bookings:  bookings,
		concierge: concierge,
		feed:      feed,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		l: l,
	}
}

// flow resolves the booking of the path or answers the request itself.
func (h *Booking) flow(w http.ResponseWriter, r *http.Request) (*booking.Flow, bool) {
	id, err := pathUUID(r, "booking_id")
	if err != nil {
		badRequestResponse(w, err.Error())
		return nil, false
	}

	f, err := h.bookings.Get(id)
	if err != nil {
		serviceErrorResponse(r.Context(), w, h.l, "failed to get booking", err)
		return nil, false
	}
	return f, true
}

// CreateBooking godoc
// @Summary      Create booking
// @Description  Starts an idle booking centered on the default map focus
// @Tags         Bookings
// @Produce      json
// @Success      201  {object}  map[string]any
// @Router       /bookings [post]
func (h *Booking) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "create_booking")

	f := h.bookings.Create(ctx)
	if err := writeJSON(w, http.StatusCreated, envelope{"booking": f.Snapshot()}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// GetBooking godoc
// @Summary      Get booking
// @Tags         Bookings
// @Produce      json
// @Param        booking_id  path  string  true  "Booking ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /bookings/{booking_id} [get]
func (h *Booking) GetBooking(w http.ResponseWriter, r *http.Request) {
	f, ok := h.flow(w, r)
	if !ok {
		return
	}
	if err := writeJSON(w, http.StatusOK, envelope{"booking": f.Snapshot()}, nil); err != nil {
		h.l.Error(r.Context(), "failed to write response", err)
	}
}

// UpdatePickup godoc
// @Summary      Edit pickup
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        booking_id  path  string           true  "Booking ID"
// @Param        request     body  dto.TextRequest  true  "Pickup text"
// @Success      200  {object}  map[string]any
// @Router       /bookings/{booking_id}/pickup [put]
func (h *Booking) UpdatePickup(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "update_pickup")

	f, ok := h.flow(w, r)
	if !ok {
		return
	}

	var req dto.TextRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	v := validator.New()
	if dto.ValidateText(v, &req); !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	f.UpdatePickup(req.Text)
	if err := writeJSON(w, http.StatusOK, envelope{"booking": f.Snapshot()}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// UpdateDropoff godoc
// @Summary      Edit drop-off
// @Description  Texts longer than five characters move the map focus
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        booking_id  path  string           true  "Booking ID"
// @Param        request     body  dto.TextRequest  true  "Drop-off text"
// @Success      200  {object}  map[string]any
// @Router       /bookings/{booking_id}/dropoff [put]
func (h *Booking) UpdateDropoff(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "update_dropoff")

	f, ok := h.flow(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithBookingID(ctx, f.ID().String())

	var req dto.TextRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	v := validator.New()
	if dto.ValidateText(v, &req); !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	f.UpdateDropoff(ctx, req.Text)
	if err := writeJSON(w, http.StatusOK, envelope{"booking": f.Snapshot()}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// RequestRide godoc
// @Summary      Request ride
// @Description  Moves an idle booking to searching; the confirmation follows on the websocket feed
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        booking_id  path  string           true  "Booking ID"
// @Param        request     body  dto.RideRequest  true  "Pickup and drop-off"
// @Success      202  {object}  map[string]any
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]any
// @Router       /bookings/{booking_id}/request [post]
func (h *Booking) RequestRide(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "request_ride")

	f, ok := h.flow(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithBookingID(ctx, f.ID().String())

	var req dto.RideRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	v := validator.New()
	if dto.ValidateRideRequest(v, &req); !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	if err := f.RequestRide(ctx, req.Pickup, req.Dropoff); err != nil {
		if errors.Is(err, types.ErrMissingLocations) {
			_ = writeJSON(w, http.StatusUnprocessableEntity, envelope{
				"error":   booking.MissingLocationsMessage,
				"booking": f.Snapshot(),
			}, nil)
			return
		}
		serviceErrorResponse(ctx, w, h.l, "failed to request ride", err)
		return
	}

	if err := writeJSON(w, http.StatusAccepted, envelope{"booking": f.Snapshot()}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// CancelBooking godoc
// @Summary      Cancel booking
// @Description  Returns the booking to idle from any status
// @Tags         Bookings
// @Produce      json
// @Param        booking_id  path  string  true  "Booking ID"
// @Success      200  {object}  map[string]any
// @Router       /bookings/{booking_id}/cancel [post]
func (h *Booking) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "cancel_booking")

	f, ok := h.flow(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithBookingID(ctx, f.ID().String())

	if err := f.Cancel(ctx); err != nil {
		serviceErrorResponse(ctx, w, h.l, "failed to cancel booking", err)
		return
	}
	if err := writeJSON(w, http.StatusOK, envelope{"booking": f.Snapshot()}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// LocateMe godoc
// @Summary      Use current location as pickup
// @Description  The client reports its device position or the reason it has none. A failed
// @Description  geolocation leaves the booking untouched and answers with the advisory text.
// @Tags         Bookings
// @Accept       json
// @Produce      json
// @Param        booking_id  path  string             true  "Booking ID"
// @Param        request     body  dto.LocateRequest  true  "Reported position"
// @Success      200  {object}  map[string]any
// @Failure      409  {object}  map[string]string
// @Router       /bookings/{booking_id}/locate [post]
func (h *Booking) LocateMe(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "locate_me")

	f, ok := h.flow(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithBookingID(ctx, f.ID().String())

	var req dto.LocateRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	v := validator.New()
	if dto.ValidateLocate(v, &req); !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	err := f.LocateMe(ctx, req.ToLocator())
	switch {
	case err == nil:
		_ = writeJSON(w, http.StatusOK, envelope{"booking": f.Snapshot()}, nil)
	case IsOneOf(err, types.ErrGeolocationUnsupported, types.ErrGeolocationFailed):
		h.l.Debug(ctx, "geolocation failed", "error", err.Error())
		_ = writeJSON(w, http.StatusOK, envelope{
			"booking":  f.Snapshot(),
			"advisory": booking.GeolocationAdvisory(err),
		}, nil)
	default:
		serviceErrorResponse(ctx, w, h.l, "failed to locate", err)
	}
}

// DeleteBooking godoc
// @Summary      Delete booking
// @Description  Stops every timer of the booking and drops its concierge chat
// @Tags         Bookings
// @Param        booking_id  path  string  true  "Booking ID"
// @Success      200  {object}  map[string]string
// @Router       /bookings/{booking_id} [delete]
func (h *Booking) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "delete_booking")

	id, err := pathUUID(r, "booking_id")
	if err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	ctx = wrap.WithBookingID(ctx, id.String())

	if err := h.bookings.Delete(ctx, id); err != nil {
		serviceErrorResponse(ctx, w, h.l, "failed to delete booking", err)
		return
	}
	h.feed.Disconnect(id)

	if err := writeJSON(w, http.StatusOK, envelope{"message": "booking deleted"}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// HandleWebSocket godoc
// @Summary      Booking live feed
// @Description  Websocket with BOOKING_STATUS, DRIVER_POSITION, MAP_FOCUS and ADVISORY events
// @Tags         Bookings
// @Param        booking_id  path  string  true  "Booking ID"
// @Router       /ws/bookings/{booking_id} [get]
func (h *Booking) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "booking_ws")

	f, ok := h.flow(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithBookingID(ctx, f.ID().String())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.l.Warn(ctx, "websocket upgrade failed", "error", err.Error())
		return
	}

	if err := h.feed.Attach(ctx, f.ID(), conn, types.EventBookingStatus, f.Snapshot()); err != nil {
		h.l.Debug(ctx, "websocket closed", "error", err.Error())
	}
}
