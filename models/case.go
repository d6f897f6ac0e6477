package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Canonical lifecycle statuses for a case. Legacy spellings that appear in
// older persisted blobs are normalized through StatusAliases at read time.
const (
	StatusPending            = "Pending"
	StatusUnderInvestigation = "Under Investigation"
	StatusAdjourned          = "Adjourned"
	StatusCaseDismissed      = "Case Dismissed"
	StatusReferredHigher     = "Referred to Higher Court"
	StatusClosed             = "Closed"
)

// StatusAliases maps legacy status spellings to the canonical enumeration.
// The old dashboards disagreed on casing and wording; this table is the single
// place where that is reconciled.
var StatusAliases = map[string]string{
	"Open":          StatusPending,
	"Investigating": StatusUnderInvestigation,
	"Dismissed":     StatusCaseDismissed,
}

// NormalizeStatus resolves a stored status value to its canonical spelling.
// Unknown values pass through unchanged.
func NormalizeStatus(status string) string {
	if canonical, ok := StatusAliases[status]; ok {
		return canonical
	}
	return status
}

// Case holds the structure for a single incident record in the cases collection
type Case struct {
	ID            string              `json:"id"`
	Date          string              `json:"date"` // incident date, YYYY-MM-DD
	Venue         string              `json:"venue"`
	Description   string              `json:"desc"`
	Status        string              `json:"status"`
	AssignedCourt string              `json:"assignedCourt"`
	Station       string              `json:"station"`
	Officer       string              `json:"officer"`
	ReporterRole  string              `json:"reporterRole"`
	VictimName    string              `json:"victimName"`
	JmoRequired   bool                `json:"jmoRequired"`
	Evidence      []Document          `json:"evidence"`
	Parties       []Party             `json:"parties"`
	CourtData     *JudicialRecord     `json:"courtData,omitempty"`
	CourtHistory  []CourtHistoryEntry `json:"courtHistory,omitempty"`

	// Legacy judicial fields. Earlier writers stored rulings flat on the case
	// or under a differently named container; they are read through
	// projection.ExtractJudicial and never written by this codebase.
	JudicialData    *JudicialRecord `json:"judicialData,omitempty"`
	Verdict         string          `json:"verdict,omitempty"`
	Remarks         string          `json:"remarks,omitempty"`
	Sentence        string          `json:"sentence,omitempty"`
	NextHearing     string          `json:"nextHearing,omitempty"`
	JudicialVerdict string          `json:"judicialVerdict,omitempty"`
	JudicialRemarks string          `json:"judicialRemarks,omitempty"`

	// Legacy case-level medical fields, same story as above. Current writers
	// attach medical reports to the individual party instead.
	MedicalReport *MedicalReport `json:"medicalReport,omitempty"`
	JmoReport     *MedicalReport `json:"jmoReport,omitempty"`
	Medical       *MedicalReport `json:"medical,omitempty"`
	MedicalNotes  string         `json:"medicalNotes,omitempty"`
}

// Validate checks the fields required before a case may be registered
func (c Case) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required),
		validation.Field(&c.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&c.Venue, validation.Required),
		validation.Field(&c.Description, validation.Required),
		validation.Field(&c.AssignedCourt, validation.Required),
		validation.Field(&c.Station, validation.Required),
	)
}

// Party is a person attached to a case: victim, suspect or witness.
// Identity within a case is positional (the index in Case.Parties); PartyID is
// a synthetic id assigned at registration so rows keep a stable handle even if
// two parties share a name and NIC.
type Party struct {
	PartyID        string         `json:"partyID,omitempty"`
	Name           string         `json:"name"`
	NIC            string         `json:"nic"`
	Role           string         `json:"role"`
	Statement      string         `json:"statement,omitempty"`
	IsHospitalized bool           `json:"isHospitalized"`
	HospitalName   string         `json:"hospitalName,omitempty"`
	MedicalReport  *MedicalReport `json:"medicalReport,omitempty"`
}

// Validate checks a party entry before it is accepted onto a new case
func (p Party) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.NIC, validation.Required, validation.By(validateNIC)),
		validation.Field(&p.Role, validation.Required, validation.In("Victim", "Suspect", "Witness")),
		validation.Field(&p.HospitalName, validation.Required.When(p.IsHospitalized).Error("hospital is required for a hospitalized party")),
	)
}

// MedicalReport is the single live report for one party. Submissions overwrite
// it wholesale; there is no report history.
type MedicalReport struct {
	Status      string     `json:"status"`
	Notes       string     `json:"notes"`
	Documents   []Document `json:"documents"`
	UpdatedDate string     `json:"updatedDate"`
	Officer     string     `json:"officer"`
	Hospital    string     `json:"location"`

	// Legacy aliases, read-only (see projection.ExtractMedical).
	Description  string     `json:"description,omitempty"`
	Summary      string     `json:"summary,omitempty"`
	Observations string     `json:"observations,omitempty"`
	Files        []Document `json:"files,omitempty"`
	Attachments  []Document `json:"attachments,omitempty"`
}

// Document is an uploaded evidence file or medical attachment. Content is an
// inline data URL and may be empty when the original upload failed to save;
// readers must treat that as missing content, not corruption.
type Document struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Date     string `json:"date,omitempty"`
	FileData string `json:"fileData,omitempty"`
	Data     string `json:"data,omitempty"` // legacy content field used by evidence uploads
}

// Content returns the inline file content under whichever field it was stored,
// or empty when the upload never persisted its data.
func (d Document) Content() string {
	if d.FileData != "" {
		return d.FileData
	}
	return d.Data
}

// JudicialRecord is the ruling sub-record written by the judge dashboard under
// the courtData container.
type JudicialRecord struct {
	Verdict     string `json:"verdict,omitempty"`
	Remarks     string `json:"remarks,omitempty"`
	Sentence    string `json:"sentence,omitempty"`
	NextHearing string `json:"nextHearing,omitempty"`
	Date        string `json:"date,omitempty"`

	// Legacy alias for remarks.
	Summary string `json:"summary,omitempty"`
}

// CourtHistoryEntry records one ruling event. The history log is append-only:
// entries are never edited or removed once saved.
type CourtHistoryEntry struct {
	Date     string `json:"date"`
	Action   string `json:"action"`
	Details  string `json:"details"`
	NextDate string `json:"nextDate,omitempty"`
}
