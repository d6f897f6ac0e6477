package projection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justiceflow/justiceflow-api/models"
	"github.com/justiceflow/justiceflow-api/projection"
)

func TestJurisdictionCannotBeDefeatedBySearch(t *testing.T) {
	cases := []models.Case{
		{ID: "CRIM-0001", Station: "X", VictimName: "Saman Perera"},
		{ID: "CRIM-0002", Station: "Y", VictimName: "Unique Victim"},
	}

	// searching for a term that only matches a case from another station
	got := projection.FilterCases(cases, projection.Jurisdiction{Station: "X"}, projection.CaseFilter{Search: "Unique"})
	assert.Empty(t, got)
}

func TestDateRangeFilterIsInclusive(t *testing.T) {
	cases := []models.Case{
		{ID: "CRIM-0001", Date: "2023-12-31"},
		{ID: "CRIM-0002", Date: "2024-06-01"},
		{ID: "CRIM-0003", Date: "2025-01-01"},
	}

	got := projection.FilterCases(cases, projection.Jurisdiction{}, projection.CaseFilter{
		DateFrom: "2024-01-01",
		DateTo:   "2024-12-31",
	})
	assert.Len(t, got, 1)
	assert.Equal(t, "CRIM-0002", got[0].ID)
}

func TestStatusFilterNormalizesLegacySpellings(t *testing.T) {
	cases := []models.Case{
		{ID: "CRIM-0001", Status: "Open"},
		{ID: "CRIM-0002", Status: models.StatusClosed},
	}

	got := projection.FilterCases(cases, projection.Jurisdiction{}, projection.CaseFilter{Status: models.StatusPending})
	assert.Len(t, got, 1)
	assert.Equal(t, "CRIM-0001", got[0].ID)
}

func TestHospitalFilterMatchesAnyHospitalizedParty(t *testing.T) {
	cases := []models.Case{
		{ID: "CRIM-0001", Parties: []models.Party{
			{Name: "A", IsHospitalized: true, HospitalName: "National Hospital"},
		}},
		{ID: "CRIM-0002", Parties: []models.Party{
			{Name: "B", IsHospitalized: false, HospitalName: "National Hospital"},
		}},
	}

	got := projection.FilterCases(cases, projection.Jurisdiction{}, projection.CaseFilter{Hospital: "National Hospital"})
	assert.Len(t, got, 1)
	assert.Equal(t, "CRIM-0001", got[0].ID)
}

func TestCourtJurisdiction(t *testing.T) {
	cases := []models.Case{
		{ID: "CRIM-0001", AssignedCourt: "Mount Lavinia Magistrate Court"},
		{ID: "CRIM-0002", AssignedCourt: "Gangodawila Magistrate Court"},
	}

	got := projection.FilterCases(cases, projection.Jurisdiction{Court: "Gangodawila Magistrate Court"}, projection.CaseFilter{})
	assert.Len(t, got, 1)
	assert.Equal(t, "CRIM-0002", got[0].ID)
}

func TestSearchMatchesIDVictimAndVenue(t *testing.T) {
	cases := []models.Case{
		{ID: "CRIM-0001", VictimName: "Saman Perera", Venue: "Borella"},
		{ID: "CRIM-0002", VictimName: "Kamal Gunaratne", Venue: "Pettah"},
	}

	for term, expectedID := range map[string]string{
		"crim-0001": "CRIM-0001",
		"kamal":     "CRIM-0002",
		"borella":   "CRIM-0001",
	} {
		got := projection.FilterCases(cases, projection.Jurisdiction{}, projection.CaseFilter{Search: term})
		assert.Len(t, got, 1, "term %q", term)
		assert.Equal(t, expectedID, got[0].ID)
	}

	assert.Empty(t, projection.FilterCases(cases, projection.Jurisdiction{}, projection.CaseFilter{Search: "galle"}))
}

func TestEmptyFilterReturnsEverythingInOrder(t *testing.T) {
	cases := []models.Case{{ID: "CRIM-0002"}, {ID: "CRIM-0001"}}
	got := projection.FilterCases(cases, projection.Jurisdiction{}, projection.CaseFilter{})
	assert.Equal(t, cases, got)
}
