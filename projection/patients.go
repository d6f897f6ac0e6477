package projection

import (
	"fmt"

	"github.com/justiceflow/justiceflow-api/models"
)

// PatientRow is one hospitalized party flattened out of its case for the
// medical dashboard. RowKey combines the case id with the party's position,
// which is how a report submission addresses the party.
type PatientRow struct {
	RowKey     string       `json:"rowKey"`
	CaseID     string       `json:"caseId"`
	CaseDate   string       `json:"caseDate"`
	CaseStatus string       `json:"caseStatus"`
	Venue      string       `json:"venue"`
	PartyIndex int          `json:"partyIndex"`
	Party      models.Party `json:"party"`
}

// FlattenPatients projects the case collection into one row per hospitalized
// party at the given hospital. The hospital acts as the medical officer's
// jurisdiction: parties admitted elsewhere never appear. Cases without parties
// contribute no rows.
func FlattenPatients(cases []models.Case, hospital string) []PatientRow {
	rows := []PatientRow{}
	for _, c := range cases {
		for i, party := range c.Parties {
			if !party.IsHospitalized {
				continue
			}
			if party.HospitalName != hospital {
				continue
			}
			rows = append(rows, PatientRow{
				RowKey:     fmt.Sprintf("%s-%d", c.ID, i),
				CaseID:     c.ID,
				CaseDate:   c.Date,
				CaseStatus: c.Status,
				Venue:      c.Venue,
				PartyIndex: i,
				Party:      party,
			})
		}
	}
	return rows
}
