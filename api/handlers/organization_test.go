package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/justiceflow/justiceflow-api/api/handlers"
	"github.com/justiceflow/justiceflow-api/databases"
	"github.com/justiceflow/justiceflow-api/models"
	"github.com/justiceflow/justiceflow-api/storage"
)

func TestOrganization_ListHandlerSeeds(t *testing.T) {
	o := handlers.Organization{DB: databases.NewStationDatabase(storage.NewMemory()), Kind: "station"}

	req, err := http.NewRequest("GET", "/api/v1/stations", nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(o.ListHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var stations []models.Organization
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stations))
	assert.Len(t, stations, 2)
}

func TestOrganization_CreateHandler(t *testing.T) {
	o := handlers.Organization{DB: databases.NewHospitalDatabase(storage.NewMemory()), Kind: "hospital"}

	tests := []struct {
		name         string
		body         string
		expectedCode int
	}{
		{
			name:         "valid hospital",
			body:         `{"name": "Kalutara General", "location": "Kalutara", "contact": "0342222261"}`,
			expectedCode: http.StatusCreated,
		},
		{
			name:         "bad contact number",
			body:         `{"name": "Kalutara General", "location": "Kalutara", "contact": "034-2222261"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing location",
			body:         `{"name": "Kalutara General", "contact": "0342222261"}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/api/v1/hospitals", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}

			rr := httptest.NewRecorder()
			http.HandlerFunc(o.CreateHandler).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestOrganization_UpdateHandlerNotFound(t *testing.T) {
	o := handlers.Organization{DB: databases.NewCourtDatabase(storage.NewMemory()), Kind: "court"}

	body := `{"name": "Nowhere Court", "location": "Nowhere", "contact": "0112000000"}`
	req, err := http.NewRequest("PUT", "/api/v1/courts/CRT-999", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"org_id": "CRT-999"})

	rr := httptest.NewRecorder()
	http.HandlerFunc(o.UpdateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestOrganization_DeleteHandler(t *testing.T) {
	backend := storage.NewMemory()
	o := handlers.Organization{DB: databases.NewStationDatabase(backend), Kind: "station"}

	req, err := http.NewRequest("DELETE", "/api/v1/stations/POL-002", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"org_id": "POL-002"})

	rr := httptest.NewRecorder()
	http.HandlerFunc(o.DeleteHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"deleted": "POL-002"}`, rr.Body.String())
}
