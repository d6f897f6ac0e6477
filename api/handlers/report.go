package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/justiceflow/justiceflow-api/api"
	"github.com/justiceflow/justiceflow-api/config"
	"github.com/justiceflow/justiceflow-api/databases"
	"github.com/justiceflow/justiceflow-api/models"
	"github.com/justiceflow/justiceflow-api/projection"
)

// Report exported for testing purposes
type Report struct {
	DB databases.CaseDatabase
}

// ReportRow is one line of the admin report: a case reduced to the fields the
// report table shows.
type ReportRow struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Station  string `json:"policeStation"`
	Court    string `json:"court"`
	Hospital string `json:"hospital"`
	Status   string `json:"status"`
}

// GenerateHandler builds the cross-organization admin report. Admins see
// every station, so no jurisdiction applies; all filters come from the query.
func (rep Report) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	q := r.URL.Query()
	cases, err := rep.DB.FetchAll(ctx)
	if err != nil {
		config.ErrorStatus("failed to get cases", http.StatusInternalServerError, w, err)
		return
	}

	filtered := projection.FilterCases(cases, projection.Jurisdiction{}, projection.CaseFilter{
		Status:   q.Get("status"),
		Station:  q.Get("policeStation"),
		Court:    q.Get("court"),
		Hospital: q.Get("hospital"),
		DateFrom: q.Get("startDate"),
		DateTo:   q.Get("endDate"),
	})

	rows := make([]ReportRow, 0, len(filtered))
	for _, c := range filtered {
		rows = append(rows, ReportRow{
			ID:       c.ID,
			Date:     c.Date,
			Station:  c.Station,
			Court:    c.AssignedCourt,
			Hospital: firstHospital(c),
			Status:   c.Status,
		})
	}

	b, err := json.Marshal(rows)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func firstHospital(c models.Case) string {
	for _, party := range c.Parties {
		if party.IsHospitalized {
			return party.HospitalName
		}
	}
	return ""
}
