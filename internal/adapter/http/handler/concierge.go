package handler

import (
	"errors"
	"net/http"

	"github.com/Temutjin2k/ubar/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/ubar/internal/domain/types"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
	"github.com/Temutjin2k/ubar/pkg/validator"
)

// AskConcierge godoc
// @Summary      Ask the concierge
// @Description  Sends a chat message and asks the suggestion service for venues. A failing
// @Description  service still answers 200: the failure reply is part of the chat.
// @Tags         Concierge
// @Accept       json
// @Produce      json
// @Param        booking_id  path  string                true  "Booking ID"
// @Param        request     body  dto.ConciergeRequest  true  "Chat message"
// @Success      200  {object}  map[string]any
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /bookings/{booking_id}/concierge [post]
func (h *Booking) AskConcierge(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "ask_concierge")

	f, ok := h.flow(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithBookingID(ctx, f.ID().String())

	var req dto.ConciergeRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	v := validator.New()
	if dto.ValidateConcierge(v, &req); !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	conv, err := h.concierge.Ask(ctx, f.ID(), req.Message)
	switch {
	case err == nil:
		_ = writeJSON(w, http.StatusOK, envelope{"conversation": conv}, nil)
	case errors.Is(err, types.ErrSuggestionFailed):
		h.l.Warn(wrap.ErrorCtx(ctx, err), "suggestion request failed", "error", err.Error())
		_ = writeJSON(w, http.StatusOK, envelope{"conversation": conv, "error": types.ErrSuggestionFailed.Error()}, nil)
	default:
		serviceErrorResponse(ctx, w, h.l, "failed to ask concierge", err)
	}
}

// GetConversation godoc
// @Summary      Concierge chat history
// @Tags         Concierge
// @Produce      json
// @Param        booking_id  path  string  true  "Booking ID"
// @Success      200  {object}  map[string]any
// @Router       /bookings/{booking_id}/concierge [get]
func (h *Booking) GetConversation(w http.ResponseWriter, r *http.Request) {
	f, ok := h.flow(w, r)
	if !ok {
		return
	}
	if err := writeJSON(w, http.StatusOK, envelope{"conversation": h.concierge.Conversation(f.ID())}, nil); err != nil {
		h.l.Error(r.Context(), "failed to write response", err)
	}
}

// SelectSuggestion godoc
// @Summary      Pick a suggested venue
// @Description  The drop-off becomes "<name>, <address>" and the map follows it
// @Tags         Concierge
// @Accept       json
// @Produce      json
// @Param        booking_id  path  string                       true  "Booking ID"
// @Param        request     body  dto.SelectSuggestionRequest  true  "Suggestion index"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /bookings/{booking_id}/concierge/select [post]
func (h *Booking) SelectSuggestion(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "select_suggestion")

	f, ok := h.flow(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithBookingID(ctx, f.ID().String())

	var req dto.SelectSuggestionRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}
	v := validator.New()
	if dto.ValidateSelectSuggestion(v, &req); !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	s, err := h.concierge.Select(f.ID(), *req.Index)
	if err != nil {
		serviceErrorResponse(ctx, w, h.l, "failed to select suggestion", err)
		return
	}
	f.UpdateDropoff(ctx, s.FullAddress())

	if err := writeJSON(w, http.StatusOK, envelope{"booking": f.Snapshot(), "suggestion": s}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}
