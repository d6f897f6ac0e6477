package projection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justiceflow/justiceflow-api/models"
	"github.com/justiceflow/justiceflow-api/projection"
)

func TestFlattenPatients(t *testing.T) {
	cases := []models.Case{
		{
			ID:     "CRIM-0001",
			Date:   "2024-01-05",
			Status: models.StatusPending,
			Parties: []models.Party{
				{Name: "Saman Perera", IsHospitalized: true, HospitalName: "Hospital A"},
				{Name: "Nimal Silva", IsHospitalized: false},
				{Name: "Kamal Gunaratne", IsHospitalized: true, HospitalName: "Hospital B"},
			},
		},
		{ID: "CRIM-0002", Date: "2024-02-01"}, // no parties
	}

	rowsA := projection.FlattenPatients(cases, "Hospital A")
	assert.Len(t, rowsA, 1)
	assert.Equal(t, "CRIM-0001-0", rowsA[0].RowKey)
	assert.Equal(t, 0, rowsA[0].PartyIndex)
	assert.Equal(t, "Saman Perera", rowsA[0].Party.Name)
	assert.Equal(t, models.StatusPending, rowsA[0].CaseStatus)

	rowsB := projection.FlattenPatients(cases, "Hospital B")
	assert.Len(t, rowsB, 1)
	assert.Equal(t, "CRIM-0001-2", rowsB[0].RowKey)

	assert.Empty(t, projection.FlattenPatients(cases, "Hospital C"))
}

func TestFilterPatientsByDate(t *testing.T) {
	rows := []projection.PatientRow{
		{CaseID: "CRIM-0001", CaseDate: "2023-12-31"},
		{CaseID: "CRIM-0002", CaseDate: "2024-06-01"},
		{CaseID: "CRIM-0003", CaseDate: "2025-01-01"},
	}

	got := projection.FilterPatientsByDate(rows, "2024-01-01", "2024-12-31")
	assert.Len(t, got, 1)
	assert.Equal(t, "CRIM-0002", got[0].CaseID)

	// open-ended bounds
	assert.Len(t, projection.FilterPatientsByDate(rows, "2024-01-01", ""), 2)
	assert.Len(t, projection.FilterPatientsByDate(rows, "", "2024-12-31"), 2)
	assert.Len(t, projection.FilterPatientsByDate(rows, "", ""), 3)
}

func TestFilterPatients(t *testing.T) {
	rows := []projection.PatientRow{
		{CaseID: "CRIM-0001", Party: models.Party{Name: "Saman Perera", NIC: "851234567V"}},
		{CaseID: "CRIM-0002", Party: models.Party{Name: "Kamal Gunaratne", NIC: "781234567V"}},
	}

	assert.Len(t, projection.FilterPatients(rows, ""), 2)
	assert.Len(t, projection.FilterPatients(rows, "saman"), 1)
	assert.Len(t, projection.FilterPatients(rows, "crim-0002"), 1)
	assert.Len(t, projection.FilterPatients(rows, "851234567v"), 1)
	assert.Empty(t, projection.FilterPatients(rows, "no such patient"))
}
