package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justiceflow/justiceflow-api/models"
)

func TestValidateNIC(t *testing.T) {
	assert.NoError(t, models.ValidateNIC("851234567V"))
	assert.NoError(t, models.ValidateNIC("851234567X"))
	assert.NoError(t, models.ValidateNIC("851234567v"))
	assert.NoError(t, models.ValidateNIC("198512345678"))

	assert.Error(t, models.ValidateNIC("85123456V"))     // too few digits
	assert.Error(t, models.ValidateNIC("8512345678"))    // ten digits, no letter
	assert.Error(t, models.ValidateNIC("19851234567"))   // eleven digits
	assert.Error(t, models.ValidateNIC("851234567A"))    // wrong letter
	assert.Error(t, models.ValidateNIC(""))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, models.ValidatePassword("Str0ng!pass"))

	assert.ErrorIs(t, models.ValidatePassword("Sh0rt!"), models.ErrPasswordTooShort)
	assert.ErrorIs(t, models.ValidatePassword("alllowercase1!"), models.ErrPasswordNotComplex)
	assert.ErrorIs(t, models.ValidatePassword("NoDigits!here"), models.ErrPasswordNotComplex)
	assert.ErrorIs(t, models.ValidatePassword("NoSpecial1here"), models.ErrPasswordNotComplex)
}

func TestAccountValidate(t *testing.T) {
	valid := models.Account{
		Name:           "Sgt. Wijesinghe",
		Email:          "sgt@justiceflow.gov.lk",
		NIC:            "199012345678",
		Role:           models.RolePolice,
		Contact:        "0715555555",
		AppointedPlace: "Dehiwala Station",
	}
	assert.NoError(t, valid.Validate())

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, badEmail.Validate())

	// attorneys have no appointed place
	attorney := valid
	attorney.Role = models.RoleAttorney
	attorney.AppointedPlace = ""
	assert.NoError(t, attorney.Validate())

	policeNoPlace := valid
	policeNoPlace.AppointedPlace = ""
	assert.Error(t, policeNoPlace.Validate())

	badContact := valid
	badContact.Contact = "071-5555555"
	assert.Error(t, badContact.Validate())
}
