package handler

import (
	"net/http"
	"strconv"

	"github.com/Temutjin2k/ubar/internal/domain/models"
	"github.com/Temutjin2k/ubar/internal/service/content"
	"github.com/Temutjin2k/ubar/pkg/logger"
	wrap "github.com/Temutjin2k/ubar/pkg/logger/wrapper"
	"github.com/Temutjin2k/ubar/pkg/validator"
)

type Content struct {
	content ContentService
	l       logger.Logger
}

func NewContent(content ContentService, l logger.Logger) *Content {
	return &Content{
		content: content,
		l:       l,
	}
}

// ListPasses godoc
// @Summary      List passes
// @Tags         Content
// @Produce      json
// @Param        page       query  int     false  "Page (default 1)"
// @Param        page_size  query  int     false  "Page size (default 20)"
// @Param        sort       query  string  false  "title, price or popular; prefix with - for descending"
// @Success      200  {object}  map[string]any
// @Failure      422  {object}  map[string]any
// @Router       /passes [get]
func (h *Content) ListPasses(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_passes")
	qs := r.URL.Query()
	v := validator.New()

	filters, err := models.NewFilters(
		readInt(qs.Get("page"), 1, "page", v),
		readInt(qs.Get("page_size"), 20, "page_size", v),
		qs.Get("sort"),
		content.PassSortSafelist,
	)
	if err != nil {
		internalErrorResponse(w, err.Error())
		return
	}
	if filters.Validate(v); !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	passes, meta := h.content.ListPasses(ctx, filters)
	if err := writeJSON(w, http.StatusOK, envelope{"passes": passes, "metadata": meta}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// GetPass godoc
// @Summary      Get pass
// @Tags         Content
// @Produce      json
// @Param        pass_id  path  string  true  "Pass ID"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Router       /passes/{pass_id} [get]
func (h *Content) GetPass(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_pass")

	pass, err := h.content.GetPass(ctx, r.PathValue("pass_id"))
	if err != nil {
		serviceErrorResponse(ctx, w, h.l, "failed to get pass", err)
		return
	}
	if err := writeJSON(w, http.StatusOK, envelope{"pass": pass}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// ListEvents godoc
// @Summary      Upcoming events
// @Tags         Content
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /events [get]
func (h *Content) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_events")

	if err := writeJSON(w, http.StatusOK, envelope{"events": h.content.Events(ctx)}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// GetPodcast godoc
// @Summary      Podcast feed
// @Description  The live feed when one is configured and reachable, the fallback episodes otherwise.
// @Description  A failed fetch is reported in "error" next to the fallback list.
// @Tags         Content
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /podcast [get]
func (h *Content) GetPodcast(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_podcast")

	feed, err := h.content.Podcast(ctx)
	env := envelope{"podcast": feed}
	if err != nil {
		env["error"] = "Failed to connect to podcast service."
	}

	if err := writeJSON(w, http.StatusOK, env, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
	}
}

// readInt parses an integer query value, recording a validation error when it is not one.
func readInt(s string, def int, key string, v *validator.Validator) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		v.AddError(key, "must be an integer value")
		return def
	}
	return i
}
