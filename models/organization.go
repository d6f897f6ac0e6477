package models

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var contactPattern = regexp.MustCompile(`^\d{10}$`)

// Organization is a police station, hospital or court managed by the admin
// dashboard. IDs carry a three-letter prefix and a zero-padded sequence number,
// e.g. POL-001.
type Organization struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Contact  string `json:"contact"`
}

// Validate checks the fields required before an organization can be saved
func (o Organization) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Name, validation.Required),
		validation.Field(&o.Location, validation.Required),
		validation.Field(&o.Contact, validation.Required, validation.Match(contactPattern).Error("contact must be a 10 digit phone number")),
	)
}
