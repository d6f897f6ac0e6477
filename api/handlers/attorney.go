package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/justiceflow/justiceflow-api/api"
	"github.com/justiceflow/justiceflow-api/config"
	"github.com/justiceflow/justiceflow-api/databases"
	"github.com/justiceflow/justiceflow-api/models"
	"github.com/justiceflow/justiceflow-api/projection"
)

// Attorney exported for testing purposes
type Attorney struct {
	DB databases.CaseDatabase
}

// CaseReview is the read-only composite the attorney dashboard renders: the
// raw case plus the normalized judicial and medical views, pre-resolved so the
// consumer never touches the legacy field variants.
type CaseReview struct {
	Case     models.Case             `json:"case"`
	Judicial projection.JudicialInfo `json:"judicial"`
	Medical  projection.MedicalInfo  `json:"medical"`
}

// CaseReviewHandler looks up a case by id for legal review. Attorneys have no
// jurisdiction restriction; an unknown id is plain not-found.
func (a Attorney) CaseReviewHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	caseID := mux.Vars(r)["case_id"]

	dbResp, err := a.DB.FindByID(ctx, caseID)
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return
	}

	review := CaseReview{
		Case:     dbResp,
		Judicial: projection.ExtractJudicial(dbResp),
		Medical:  projection.ExtractMedical(dbResp),
	}

	b, err := json.Marshal(review)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
