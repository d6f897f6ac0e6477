package projection

import (
	"strings"

	"github.com/justiceflow/justiceflow-api/models"
)

// Jurisdiction is the mandatory narrowing applied before any user-chosen
// filter. Empty fields are unset; a set field must match exactly. Because it
// is applied first, no search term or categorical filter can surface a case
// outside it.
type Jurisdiction struct {
	Station  string
	Court    string
	Hospital string
}

// CaseFilter is the user-chosen filtering for case listings and admin
// reports. Empty categorical fields match everything; dates are inclusive
// YYYY-MM-DD bounds compared lexicographically.
type CaseFilter struct {
	Search   string
	Status   string
	Station  string
	Court    string
	Hospital string
	DateFrom string
	DateTo   string
}

// FilterCases applies the jurisdiction first and the user filter second,
// preserving collection order.
func FilterCases(cases []models.Case, j Jurisdiction, f CaseFilter) []models.Case {
	out := []models.Case{}
	for _, c := range cases {
		if !inJurisdiction(c, j) {
			continue
		}
		if !matchesFilter(c, f) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func inJurisdiction(c models.Case, j Jurisdiction) bool {
	if j.Station != "" && c.Station != j.Station {
		return false
	}
	if j.Court != "" && c.AssignedCourt != j.Court {
		return false
	}
	if j.Hospital != "" && !anyPartyAt(c, j.Hospital) {
		return false
	}
	return true
}

func matchesFilter(c models.Case, f CaseFilter) bool {
	if f.Status != "" && models.NormalizeStatus(c.Status) != models.NormalizeStatus(f.Status) {
		return false
	}
	if f.Station != "" && c.Station != f.Station {
		return false
	}
	if f.Court != "" && c.AssignedCourt != f.Court {
		return false
	}
	if f.Hospital != "" && !anyPartyAt(c, f.Hospital) {
		return false
	}
	if f.DateFrom != "" && c.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && c.Date > f.DateTo {
		return false
	}
	if f.Search != "" && !matchesSearch(c, f.Search) {
		return false
	}
	return true
}

func matchesSearch(c models.Case, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.ID), term) ||
		strings.Contains(strings.ToLower(c.VictimName), term) ||
		strings.Contains(strings.ToLower(c.Venue), term)
}

func anyPartyAt(c models.Case, hospital string) bool {
	for _, party := range c.Parties {
		if party.IsHospitalized && party.HospitalName == hospital {
			return true
		}
	}
	return false
}

// FilterPatientsByDate narrows flattened patient rows to those whose case date
// falls within the inclusive bounds. Empty bounds are unbounded.
func FilterPatientsByDate(rows []PatientRow, from, to string) []PatientRow {
	if from == "" && to == "" {
		return rows
	}
	out := []PatientRow{}
	for _, row := range rows {
		if from != "" && row.CaseDate < from {
			continue
		}
		if to != "" && row.CaseDate > to {
			continue
		}
		out = append(out, row)
	}
	return out
}

// FilterPatients narrows flattened patient rows by a free-text term matched
// against the case id, the party name and the NIC.
func FilterPatients(rows []PatientRow, term string) []PatientRow {
	if term == "" {
		return rows
	}
	term = strings.ToLower(term)
	out := []PatientRow{}
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.CaseID), term) ||
			strings.Contains(strings.ToLower(row.Party.Name), term) ||
			strings.Contains(strings.ToLower(row.Party.NIC), term) {
			out = append(out, row)
		}
	}
	return out
}
