package eligibility

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"ringside/pkg/handlers"
	"ringside/pkg/pagination"
	"ringside/pkg/routes"
)

// Handler provides HTTP endpoints for eligibility operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// RulesetSearchRequest combines pagination and filter criteria for the
// ruleset search endpoint.
type RulesetSearchRequest struct {
	pagination.PageRequest
	RulesetFilters
}

// CheckRequest identifies the fighter and ruleset to evaluate. AsOf is
// optional; it defaults to today so callers only pin it for audits and
// what-if checks.
type CheckRequest struct {
	FighterID uuid.UUID `json:"fighter_id"`
	RulesetID uuid.UUID `json:"ruleset_id"`
	AsOf      *Date     `json:"as_of,omitempty"`
}

var errInvalidRequest = errors.New("invalid request")

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "eligibility"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for eligibility endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/eligibility",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/rulesets", Handler: h.ListRulesets},
			{Method: "GET", Pattern: "/rulesets/{id}", Handler: h.FindRuleset},
			{Method: "POST", Pattern: "/rulesets", Handler: h.CreateRuleset},
			{Method: "POST", Pattern: "/rulesets/search", Handler: h.SearchRulesets},
			{Method: "PUT", Pattern: "/rulesets/{id}/requirements", Handler: h.UpdateRequirements},
			{Method: "DELETE", Pattern: "/rulesets/{id}", Handler: h.DeleteRuleset},
			{Method: "POST", Pattern: "/check", Handler: h.Check},
			{Method: "GET", Pattern: "/history/{fighterId}", Handler: h.History},
			{Method: "GET", Pattern: "/suspensions/{fighterId}", Handler: h.Suspensions},
			{Method: "POST", Pattern: "/suspensions", Handler: h.IssueSuspension},
			{Method: "PUT", Pattern: "/suspensions/{id}/lift", Handler: h.LiftSuspension},
		},
	}
}

// ListRulesets returns a paginated list of rulesets with optional query parameter filters.
func (h *Handler) ListRulesets(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := RulesetFiltersFromQuery(r.URL.Query())

	result, err := h.sys.ListRulesets(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// FindRuleset returns a single ruleset by its UUID path parameter.
func (h *Handler) FindRuleset(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	rs, err := h.sys.FindRuleset(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rs)
}

// SearchRulesets accepts a JSON body with pagination and filter criteria.
func (h *Handler) SearchRulesets(w http.ResponseWriter, r *http.Request) {
	var req RulesetSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.sys.ListRulesets(r.Context(), req.PageRequest, req.RulesetFilters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// CreateRuleset registers a new required-document checklist for a commission.
func (h *Handler) CreateRuleset(w http.ResponseWriter, r *http.Request) {
	var cmd CreateRulesetCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	rs, err := h.sys.CreateRuleset(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, rs)
}

// UpdateRequirements replaces a ruleset's requirement list, bumping its version.
func (h *Handler) UpdateRequirements(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	var cmd UpdateRequirementsCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	rs, err := h.sys.UpdateRequirements(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rs)
}

// DeleteRuleset removes a ruleset by its UUID path parameter.
func (h *Handler) DeleteRuleset(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	if err := h.sys.DeleteRuleset(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Check evaluates a fighter against a ruleset and returns the persisted verdict.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	asOf := DateOf(time.Now())
	if req.AsOf != nil {
		asOf = *req.AsOf
	}

	check, err := h.sys.Check(r.Context(), req.FighterID, req.RulesetID, asOf)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, check)
}

// Suspensions returns a fighter's commission-issued suspension records.
func (h *Handler) Suspensions(w http.ResponseWriter, r *http.Request) {
	fighterID, err := uuid.Parse(r.PathValue("fighterId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	suspensions, err := h.sys.Suspensions(r.Context(), fighterID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, suspensions)
}

// IssueSuspension places a manual suspension on a fighter.
func (h *Handler) IssueSuspension(w http.ResponseWriter, r *http.Request) {
	var cmd IssueSuspensionCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	s, err := h.sys.IssueSuspension(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, s)
}

// LiftSuspension clears a manual suspension with a recorded reason.
func (h *Handler) LiftSuspension(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	var cmd LiftSuspensionCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	s, err := h.sys.LiftSuspension(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, s)
}

// History returns a fighter's persisted eligibility checks, newest first.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	fighterID, err := uuid.Parse(r.PathValue("fighterId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errInvalidRequest)
		return
	}

	checks, err := h.sys.History(r.Context(), fighterID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, checks)
}
