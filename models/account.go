package models

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pkg/errors"
)

// Account statuses
const (
	AccountActive   = "Active"
	AccountInactive = "Inactive"
)

// Roles known to the system
const (
	RolePolice   = "police"
	RoleJmo      = "jmo"
	RoleAttorney = "attorney"
	RoleJudge    = "judge"
	RoleAdmin    = "admin"
)

var (
	// Old-format NICs are nine digits followed by V or X; the new format is
	// twelve digits. Both remain in circulation.
	nicOldPattern = regexp.MustCompile(`^\d{9}[VvXx]$`)
	nicNewPattern = regexp.MustCompile(`^\d{12}$`)

	passwordLower   = regexp.MustCompile(`[a-z]`)
	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordDigit   = regexp.MustCompile(`\d`)
	passwordSpecial = regexp.MustCompile(`[!@#$%^&*]`)
)

// Password validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include an uppercase letter, a lowercase letter, a digit and a special character")
)

// Account is a login account for one of the role dashboards. The email is the
// login key; the password is stored in plain text, which is this prototype's
// documented (and weak) security model.
type Account struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	NIC            string `json:"nic"`
	Role           string `json:"role"`
	Contact        string `json:"contact"`
	AppointedPlace string `json:"appointedPlace"`
	Status         string `json:"status"`
	Password       string `json:"password,omitempty"`
}

// Validate checks the fields required before an account can be saved
func (a Account) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Required),
		validation.Field(&a.Email, validation.Required, is.Email),
		validation.Field(&a.NIC, validation.Required, validation.By(ValidateNIC)),
		validation.Field(&a.Contact, validation.Required, validation.Match(contactPattern).Error("contact must be a 10 digit phone number")),
		validation.Field(&a.Role, validation.Required, validation.In(RolePolice, RoleJmo, RoleAttorney, RoleJudge, RoleAdmin)),
		validation.Field(&a.AppointedPlace, validation.Required.When(a.Role != RoleAttorney).Error("an appointed place of work is required")),
	)
}

// ValidateNIC accepts either national identity card format
func ValidateNIC(value interface{}) error {
	nic, _ := value.(string)
	if nicOldPattern.MatchString(nic) || nicNewPattern.MatchString(nic) {
		return nil
	}
	return errors.New("nic must be 9 digits followed by V/X or 12 digits")
}

func validateNIC(value interface{}) error { return ValidateNIC(value) }

// ValidatePassword enforces the minimum-entropy rule for new passwords.
// The old dashboards disagreed on the exact rule; the strictest one wins.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if !passwordLower.MatchString(password) ||
		!passwordUpper.MatchString(password) ||
		!passwordDigit.MatchString(password) ||
		!passwordSpecial.MatchString(password) {
		return ErrPasswordNotComplex
	}
	return nil
}
