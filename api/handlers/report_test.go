package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justiceflow/justiceflow-api/api/handlers"
	"github.com/justiceflow/justiceflow-api/databases"
	"github.com/justiceflow/justiceflow-api/models"
	"github.com/justiceflow/justiceflow-api/storage"
)

func TestReport_GenerateHandler(t *testing.T) {
	backend := storage.NewMemory()
	seedCases(t, backend, []models.Case{
		{
			ID: "CRIM-0003", Date: "2025-02-14", Station: "Dehiwala Station",
			AssignedCourt: "Mount Lavinia Magistrate Court", Status: models.StatusAdjourned,
			Parties: []models.Party{{Name: "A", IsHospitalized: true, HospitalName: "Colombo South Teaching Hospital"}},
		},
		{
			ID: "CRIM-0002", Date: "2024-05-12", Station: "Dehiwala Station",
			AssignedCourt: "Gangodawila Magistrate Court", Status: models.StatusPending,
		},
		{
			ID: "CRIM-0001", Date: "2023-10-15", Station: "Mount Lavinia HQ",
			AssignedCourt: "Mount Lavinia Magistrate Court", Status: models.StatusClosed,
		},
	})
	rep := handlers.Report{DB: databases.NewCaseDatabase(backend)}

	req, err := http.NewRequest("GET",
		"/api/v1/reports?policeStation=Dehiwala+Station&startDate=2024-01-01&endDate=2025-12-31", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(rep.GenerateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var rows []handlers.ReportRow
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)
	assert.Equal(t, "CRIM-0003", rows[0].ID)
	assert.Equal(t, "Colombo South Teaching Hospital", rows[0].Hospital)
	assert.Equal(t, "CRIM-0002", rows[1].ID)
	assert.Empty(t, rows[1].Hospital)
}
