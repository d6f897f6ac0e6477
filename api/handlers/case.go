package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/justiceflow/justiceflow-api/api"
	"github.com/justiceflow/justiceflow-api/config"
	"github.com/justiceflow/justiceflow-api/databases"
	"github.com/justiceflow/justiceflow-api/models"
	"github.com/justiceflow/justiceflow-api/projection"
)

// Case exported for testing purposes
type Case struct {
	DB databases.CaseDatabase
}

// Statuses the police dashboard may set. The remaining statuses belong to the
// court and can only be set through a ruling.
var policeStatuses = []string{
	models.StatusPending,
	models.StatusUnderInvestigation,
	models.StatusClosed,
}

// CaseListHandler returns the cases visible to the acting officer's station,
// narrowed by the optional search and filter query params
func (c Case) CaseListHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	q := r.URL.Query()
	cases, err := c.DB.FetchAll(ctx)
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusInternalServerError, w, err)
		return
	}

	filtered := projection.FilterCases(cases,
		projection.Jurisdiction{Station: q.Get("station")},
		projection.CaseFilter{
			Search:   q.Get("search"),
			Status:   q.Get("status"),
			Court:    q.Get("court"),
			DateFrom: q.Get("dateFrom"),
			DateTo:   q.Get("dateTo"),
		})

	b, err := json.Marshal(filtered)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

type createCaseRequest struct {
	Date          string            `json:"date"`
	Venue         string            `json:"venue"`
	Description   string            `json:"desc"`
	AssignedCourt string            `json:"assignedCourt"`
	Station       string            `json:"station"`
	Officer       string            `json:"officer"`
	ReporterRole  string            `json:"reporterRole"`
	Evidence      []models.Document `json:"evidence"`
	Parties       []models.Party    `json:"parties"`
}

// CaseCreateHandler registers a new case. The id, victim name, JMO flag and
// party ids are derived server-side; the status always starts at Pending.
func (c Case) CaseCreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var req createCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	existing, err := c.DB.FetchAll(ctx)
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusInternalServerError, w, err)
		return
	}

	newCase := models.Case{
		ID:            nextCaseID(existing),
		Date:          req.Date,
		Venue:         req.Venue,
		Description:   req.Description,
		Status:        models.StatusPending,
		AssignedCourt: req.AssignedCourt,
		Station:       req.Station,
		Officer:       req.Officer,
		ReporterRole:  req.ReporterRole,
		Evidence:      req.Evidence,
		Parties:       req.Parties,
		VictimName:    deriveVictimName(req.Parties),
		JmoRequired:   anyHospitalized(req.Parties),
	}
	for i := range newCase.Parties {
		newCase.Parties[i].PartyID = uuid.NewString()
	}

	if err := newCase.Validate(); err != nil {
		config.ErrorStatus("case validation failed", http.StatusBadRequest, w, err)
		return
	}
	for _, party := range newCase.Parties {
		if err := party.Validate(); err != nil {
			config.ErrorStatus("party validation failed", http.StatusBadRequest, w, err)
			return
		}
	}

	if err := c.DB.Insert(ctx, newCase); err != nil {
		config.ErrorStatus("failed to insert case", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(newCase)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// CaseByIDHandler returns a case by ID
func (c Case) CaseByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	caseID := mux.Vars(r)["case_id"]
	zap.S().Debugf("case_id: %v", caseID)

	dbResp, err := c.DB.FindByID(ctx, caseID)
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
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

type editCaseRequest struct {
	Venue        string            `json:"venue"`
	Description  string            `json:"desc"`
	ReporterRole string            `json:"reporterRole"`
	Evidence     []models.Document `json:"evidence"`
}

// CaseEditHandler updates the editable intake fields. Evidence is append-only:
// items in the request are added to the case, never removed.
func (c Case) CaseEditHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	caseID := mux.Vars(r)["case_id"]

	var req editCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if _, err := c.DB.FindByID(ctx, caseID); err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return
	}

	var updated models.Case
	err := c.DB.UpdateByID(ctx, caseID, func(cs *models.Case) {
		if req.Venue != "" {
			cs.Venue = req.Venue
		}
		if req.Description != "" {
			cs.Description = req.Description
		}
		if req.ReporterRole != "" {
			cs.ReporterRole = req.ReporterRole
		}
		cs.Evidence = append(cs.Evidence, req.Evidence...)
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

type caseStatusRequest struct {
	Status string `json:"status"`
}

func (s caseStatusRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Status, validation.Required,
			validation.In(toInterfaces(policeStatuses)...).Error("status is not a police status")),
	)
}

// CaseStatusHandler moves a case between the police-owned statuses. Cases the
// court has dismissed or referred upward are locked.
func (c Case) CaseStatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	caseID := mux.Vars(r)["case_id"]

	var req caseStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := req.Validate(); err != nil {
		config.ErrorStatus("status validation failed", http.StatusBadRequest, w, err)
		return
	}

	current, err := c.DB.FindByID(ctx, caseID)
	if err != nil {
		config.ErrorStatus("failed to get case by ID", http.StatusNotFound, w, err)
		return
	}
	if current.Status == models.StatusCaseDismissed || current.Status == models.StatusReferredHigher {
		config.ErrorStatus("case is under judicial control", http.StatusConflict, w,
			errors.Errorf("case %s has status %q", current.ID, current.Status))
		return
	}

	err = c.DB.UpdateByID(ctx, caseID, func(cs *models.Case) {
		cs.Status = req.Status
	})
	if err != nil {
		config.ErrorStatus("failed to update case", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"id": "%s", "status": "%s"}`, current.ID, req.Status)))
}

// nextCaseID issues sequential CRIM ids, one past the highest suffix already
// in the collection.
func nextCaseID(cases []models.Case) string {
	max := 0
	for _, c := range cases {
		rest, ok := strings.CutPrefix(c.ID, "CRIM-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("CRIM-%04d", max+1)
}

func deriveVictimName(parties []models.Party) string {
	for _, p := range parties {
		if p.Role == "Victim" {
			return p.Name
		}
	}
	if len(parties) > 0 {
		return parties[0].Name
	}
	return "N/A"
}

func anyHospitalized(parties []models.Party) bool {
	for _, p := range parties {
		if p.IsHospitalized {
			return true
		}
	}
	return false
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func today() string {
	return time.Now().Format("2006-01-02")
}
