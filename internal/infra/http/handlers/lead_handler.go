package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/funnelhq/leadfunnel/internal/infra/http/middleware"
	"github.com/funnelhq/leadfunnel/internal/usecase"
)

type LeadHandler struct {
	CreateUC  *usecase.CreateLeadUseCase
	ListUC    *usecase.ListLeadsUseCase
	UpdateUC  *usecase.UpdateLeadUseCase
	DeleteUC  *usecase.DeleteLeadUseCase
	MetricsUC *usecase.LeadMetricsUseCase
	Log       *zap.SugaredLogger
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	listUC *usecase.ListLeadsUseCase,
	updateUC *usecase.UpdateLeadUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
	metricsUC *usecase.LeadMetricsUseCase,
	log *zap.SugaredLogger,
) *LeadHandler {
	return &LeadHandler{
		CreateUC:  createUC,
		ListUC:    listUC,
		UpdateUC:  updateUC,
		DeleteUC:  deleteUC,
		MetricsUC: metricsUC,
		Log:       log,
	}
}

// GET /api/leads/{userID}
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	callerID, ok := h.authorizeOwner(w, r, "userID")
	if !ok {
		return
	}

	grouped, err := h.ListUC.Execute(r.Context(), callerID)
	if err != nil {
		h.Log.Errorw("list leads", "account_id", callerID, "err", err)
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(w, http.StatusOK, grouped)
}

// POST /api/leads
func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.AccountID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var input usecase.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	grouped, err := h.CreateUC.Execute(r.Context(), callerID, input)
	if err != nil {
		if respondValidation(w, err) {
			return
		}
		h.Log.Errorw("create lead", "account_id", callerID, "err", err)
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	middleware.RecordLeadCreated()
	respond(w, http.StatusCreated, grouped)
}

// PUT /api/leads/{id}
func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.AccountID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	leadID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "lead id is not in its proper form")
		return
	}

	var input usecase.LeadUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	output, err := h.UpdateUC.Execute(r.Context(), callerID, leadID, input)
	if err != nil {
		if respondValidation(w, err) {
			return
		}
		if respondNotFound(w, err) {
			return
		}
		h.Log.Errorw("update lead", "account_id", callerID, "lead_id", leadID, "err", err)
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(w, http.StatusOK, output)
}

// DELETE /api/leads/{id}
func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.AccountID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	leadID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "lead id is not in its proper form")
		return
	}

	if err := h.DeleteUC.Execute(r.Context(), callerID, leadID); err != nil {
		if respondNotFound(w, err) {
			return
		}
		h.Log.Errorw("delete lead", "account_id", callerID, "lead_id", leadID, "err", err)
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(w, http.StatusOK, map[string]bool{"success": true})
}

// GET /api/leads/metrics/{userID}
func (h *LeadHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	callerID, ok := h.authorizeOwner(w, r, "userID")
	if !ok {
		return
	}

	report, err := h.MetricsUC.Execute(r.Context(), callerID, time.Now().UTC())
	if err != nil {
		h.Log.Errorw("lead metrics", "account_id", callerID, "err", err)
		respondError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	respond(w, http.StatusOK, report)
}

// authorizeOwner parses the path user id and checks it against the token
// identity. Owner mismatch is terminal: 403, never a filtered result.
func (h *LeadHandler) authorizeOwner(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	callerID, authed := middleware.AccountID(r.Context())
	if !authed {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return 0, false
	}

	requestedID, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "user id is not in its proper form")
		return 0, false
	}

	if requestedID != callerID {
		respondError(w, http.StatusForbidden, "forbidden")
		return 0, false
	}

	return callerID, true
}
