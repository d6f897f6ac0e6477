package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/justiceflow/justiceflow-api/api/handlers"
	"github.com/justiceflow/justiceflow-api/databases"
	"github.com/justiceflow/justiceflow-api/models"
	"github.com/justiceflow/justiceflow-api/projection"
	"github.com/justiceflow/justiceflow-api/storage"
)

func TestAttorney_CaseReviewHandler(t *testing.T) {
	backend := storage.NewMemory()
	seedCases(t, backend, []models.Case{{
		ID:        "CRIM-0001",
		Date:      "2024-03-01",
		CourtData: &models.JudicialRecord{Verdict: "Guilty", Remarks: "sentencing next month"},
	}})
	a := handlers.Attorney{DB: databases.NewCaseDatabase(backend)}

	// lookups are case-insensitive
	req, err := http.NewRequest("GET", "/api/v1/attorney/cases/crim-0001", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "crim-0001"})

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.CaseReviewHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var review handlers.CaseReview
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &review))
	assert.Equal(t, "CRIM-0001", review.Case.ID)
	assert.True(t, review.Judicial.HasData)
	assert.Equal(t, "Guilty", review.Judicial.Verdict)
	assert.False(t, review.Medical.HasData)
	assert.Equal(t, projection.FallbackNotes, review.Medical.Notes)
}

func TestAttorney_CaseReviewHandlerNotFound(t *testing.T) {
	backend := storage.NewMemory()
	seedCases(t, backend, []models.Case{})
	a := handlers.Attorney{DB: databases.NewCaseDatabase(backend)}

	req, err := http.NewRequest("GET", "/api/v1/attorney/cases/CRIM-9999", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"case_id": "CRIM-9999"})

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.CaseReviewHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
