package events

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"ringside/pkg/handlers"
	"ringside/pkg/pagination"
	"ringside/pkg/routes"
)

var errInvalidRequest = errors.New("invalid request")

// Handler provides HTTP endpoints for event and bout operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "events"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for event and bout endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/events",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "POST", Pattern: "/search", Handler: h.Search},
			{Method: "PUT", Pattern: "/{id}/cancel", Handler: h.Cancel},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
			{Method: "GET", Pattern: "/{id}/bouts", Handler: h.Bouts},
			{Method: "POST", Pattern: "/{id}/bouts", Handler: h.AddBout},
			{Method: "GET", Pattern: "/bouts/{boutId}", Handler: h.FindBout},
			{Method: "PUT", Pattern: "/bouts/{boutId}/cancel", Handler: h.CancelBout},
			{Method: "PUT", Pattern: "/bouts/{boutId}/result", Handler: h.RecordResult},
		},
	}
}

// List returns a paginated list of events with optional query parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single event by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	e, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, e)
}

// Search accepts a JSON body with pagination and filter criteria and returns matching events.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.sys.List(r.Context(), req.PageRequest, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create schedules a new event.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateEventCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	e, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, e)
}

// Cancel marks a scheduled event as cancelled.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	e, err := h.sys.Cancel(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, e)
}

// Delete removes an event by its UUID path parameter.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Bouts returns the card for an event ordered by position.
func (h *Handler) Bouts(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	bouts, err := h.sys.Bouts(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, bouts)
}

// FindBout returns a single bout by its UUID path parameter.
func (h *Handler) FindBout(w http.ResponseWriter, r *http.Request) {
	boutID, err := uuid.Parse(r.PathValue("boutId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	b, err := h.sys.FindBout(r.Context(), boutID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, b)
}

// AddBout books a bout onto an event card.
func (h *Handler) AddBout(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	var cmd CreateBoutCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	b, err := h.sys.AddBout(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, b)
}

// CancelBout marks a scheduled bout as cancelled.
func (h *Handler) CancelBout(w http.ResponseWriter, r *http.Request) {
	boutID, err := uuid.Parse(r.PathValue("boutId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	b, err := h.sys.CancelBout(r.Context(), boutID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, b)
}

// RecordResult records how a bout ended.
func (h *Handler) RecordResult(w http.ResponseWriter, r *http.Request) {
	boutID, err := uuid.Parse(r.PathValue("boutId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	var cmd RecordResultCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	b, err := h.sys.RecordResult(r.Context(), boutID, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, b)
}
