package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justiceflow/justiceflow-api/models"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, models.StatusPending, models.NormalizeStatus("Open"))
	assert.Equal(t, models.StatusUnderInvestigation, models.NormalizeStatus("Investigating"))
	assert.Equal(t, models.StatusCaseDismissed, models.NormalizeStatus("Dismissed"))
	// canonical and unknown values pass through
	assert.Equal(t, models.StatusClosed, models.NormalizeStatus(models.StatusClosed))
	assert.Equal(t, "Archived", models.NormalizeStatus("Archived"))
}

func TestCaseValidate(t *testing.T) {
	valid := models.Case{
		ID:            "CRIM-0001",
		Date:          "2024-03-01",
		Venue:         "Galle Road",
		Description:   "Hit and run near the junction.",
		AssignedCourt: "Mount Lavinia Magistrate Court",
		Station:       "Mount Lavinia HQ",
	}
	assert.NoError(t, valid.Validate())

	badDate := valid
	badDate.Date = "01/03/2024"
	assert.Error(t, badDate.Validate())

	noCourt := valid
	noCourt.AssignedCourt = ""
	assert.Error(t, noCourt.Validate())
}

func TestPartyValidate(t *testing.T) {
	valid := models.Party{Name: "Saman Perera", NIC: "851234567V", Role: "Victim"}
	assert.NoError(t, valid.Validate())

	hospitalizedNoHospital := valid
	hospitalizedNoHospital.IsHospitalized = true
	assert.Error(t, hospitalizedNoHospital.Validate())

	hospitalizedNoHospital.HospitalName = "National Hospital"
	assert.NoError(t, hospitalizedNoHospital.Validate())

	badRole := valid
	badRole.Role = "Bystander"
	assert.Error(t, badRole.Validate())

	badNIC := valid
	badNIC.NIC = "12345"
	assert.Error(t, badNIC.Validate())
}

func TestDocumentContent(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,AAA", models.Document{FileData: "data:image/png;base64,AAA"}.Content())
	assert.Equal(t, "data:image/png;base64,BBB", models.Document{Data: "data:image/png;base64,BBB"}.Content())
	// failed uploads persist without content
	assert.Empty(t, models.Document{Name: "scene.jpg"}.Content())
}
