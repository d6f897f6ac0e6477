package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/justiceflow/justiceflow-api/api"
	"github.com/justiceflow/justiceflow-api/config"
	"github.com/justiceflow/justiceflow-api/databases"
	"github.com/justiceflow/justiceflow-api/models"
	"github.com/justiceflow/justiceflow-api/projection"
)

// Patient exported for testing purposes
type Patient struct {
	DB databases.CaseDatabase
}

// PatientListHandler returns the hospitalized parties admitted to the acting
// medical officer's hospital, one row per party
func (p Patient) PatientListHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	q := r.URL.Query()
	hospital := q.Get("hospital")
	if hospital == "" {
		config.ErrorStatus("hospital is required", http.StatusBadRequest, w,
			errors.New("missing hospital query parameter"))
		return
	}

	cases, err := p.DB.FetchAll(ctx)
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusInternalServerError, w, err)
		return
	}

	rows := projection.FlattenPatients(cases, hospital)
	rows = projection.FilterPatientsByDate(rows, q.Get("dateFrom"), q.Get("dateTo"))
	rows = projection.FilterPatients(rows, q.Get("search"))

	b, err := json.Marshal(rows)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

type medicalReportRequest struct {
	Status    string            `json:"status"`
	Notes     string            `json:"notes"`
	Documents []models.Document `json:"documents"`
	Officer   string            `json:"officer"`
	Hospital  string            `json:"hospital"`
}

func (req medicalReportRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Status, validation.Required),
		validation.Field(&req.Hospital, validation.Required),
	)
}

// SubmitMedicalReportHandler replaces the medical report of one party,
// addressed by case id and party position. The submitting hospital must match
// where the party is admitted; anything else is an explicit denial.
func (p Patient) SubmitMedicalReportHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	vars := mux.Vars(r)
	caseID := vars["case_id"]

	index, err := strconv.Atoi(vars["party_index"])
	if err != nil {
		config.ErrorStatus("failed to parse party index", http.StatusBadRequest, w, err)
		return
	}

	var req medicalReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := req.Validate(); err != nil {
		config.ErrorStatus("report validation failed", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := p.DB.FindByID(ctx, caseID)
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return
	}
	if index < 0 || index >= len(dbResp.Parties) {
		config.ErrorStatus("no such party on case", http.StatusNotFound, w,
			errors.Errorf("case %s has %d parties", dbResp.ID, len(dbResp.Parties)))
		return
	}

	party := dbResp.Parties[index]
	if !party.IsHospitalized || party.HospitalName != req.Hospital {
		config.ErrorStatus("access denied: party is not admitted to your hospital", http.StatusForbidden, w,
			errors.Errorf("party %d of case %s is admitted to %q", index, dbResp.ID, party.HospitalName))
		return
	}

	report := models.MedicalReport{
		Status:      req.Status,
		Notes:       req.Notes,
		Documents:   req.Documents,
		UpdatedDate: today(),
		Officer:     req.Officer,
		Hospital:    req.Hospital,
	}

	var updated models.Case
	err = p.DB.UpdateByID(ctx, dbResp.ID, func(cs *models.Case) {
		cs.Parties[index].MedicalReport = &report
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
