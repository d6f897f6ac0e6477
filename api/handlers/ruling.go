package handlers

import (
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/justiceflow/justiceflow-api/api"
	"github.com/justiceflow/justiceflow-api/config"
	"github.com/justiceflow/justiceflow-api/databases"
	"github.com/justiceflow/justiceflow-api/models"
)

// Ruling exported for testing purposes
type Ruling struct {
	DB databases.CaseDatabase
}

// fetchForCourt loads a case and enforces the judge's court jurisdiction.
// A case outside the court is an explicit denial, not a not-found: the
// dashboards treat the two outcomes differently.
func (rh Ruling) fetchForCourt(w http.ResponseWriter, r *http.Request) (models.Case, bool) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	caseID := mux.Vars(r)["case_id"]
	court := r.URL.Query().Get("court")

	dbResp, err := rh.DB.FindByID(ctx, caseID)
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return models.Case{}, false
	}
	if court == "" || dbResp.AssignedCourt != court {
		config.ErrorStatus("access denied: case is assigned to another court", http.StatusForbidden, w,
			errors.Errorf("case %s is assigned to %q", dbResp.ID, dbResp.AssignedCourt))
		return models.Case{}, false
	}
	return dbResp, true
}

// CourtCaseHandler returns a case for the judge dashboard, restricted to the
// acting judge's court
func (rh Ruling) CourtCaseHandler(w http.ResponseWriter, r *http.Request) {
	dbResp, ok := rh.fetchForCourt(w, r)
	if !ok {
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

type rulingRequest struct {
	Status   string `json:"status"`
	Reason   string `json:"reason"`
	Note     string `json:"note"`
	NextDate string `json:"nextDate"`
}

func (req rulingRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Status, validation.Required,
			validation.In(models.StatusAdjourned, models.StatusCaseDismissed, models.StatusReferredHigher).
				Error("status is not a court ruling")),
		validation.Field(&req.NextDate,
			validation.Required.When(req.Status == models.StatusAdjourned).Error("next hearing date is required to adjourn"),
			validation.When(req.NextDate != "", validation.Date("2006-01-02"))),
		validation.Field(&req.Reason,
			validation.Required.When(req.Status == models.StatusCaseDismissed || req.Status == models.StatusReferredHigher).
				Error("a reason is required for this ruling")),
	)
}

// SaveRulingHandler records a ruling: the status changes, the courtData
// sub-record is rewritten and an entry is appended to the immutable court
// history
func (rh Ruling) SaveRulingHandler(w http.ResponseWriter, r *http.Request) {
	var req rulingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := req.Validate(); err != nil {
		config.ErrorStatus("ruling validation failed", http.StatusBadRequest, w, err)
		return
	}

	dbResp, ok := rh.fetchForCourt(w, r)
	if !ok {
		return
	}

	details := req.Reason
	if details == "" {
		details = req.Note
	}
	if details == "" {
		details = "Status updated by Court"
	}
	entry := models.CourtHistoryEntry{
		Date:     today(),
		Action:   "Ruling: " + req.Status,
		Details:  details,
		NextDate: req.NextDate,
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var updated models.Case
	err := rh.DB.UpdateByID(ctx, dbResp.ID, func(cs *models.Case) {
		cs.Status = req.Status
		cs.CourtData = &models.JudicialRecord{
			Verdict:     req.Status,
			Remarks:     details,
			NextHearing: req.NextDate,
			Date:        entry.Date,
		}
		cs.CourtHistory = append(cs.CourtHistory, entry)
		updated = *cs
	})
	if err != nil {
		config.ErrorStatus("failed to update case", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(updated)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
