// Package projection holds the pure, read-only transformations over the case
// collection: the patient flattening used by the medical dashboard, the filter
// engine shared by the role listings, and the readers that absorb the
// historical field-name drift in judicial and medical sub-records.
package projection

import "github.com/justiceflow/justiceflow-api/models"

// Fallback placeholders returned when a sub-record resolves to nothing.
// Consumers render these directly instead of null-checking.
const (
	FallbackRemarks = "No additional remarks recorded."
	FallbackNotes   = "No medical observations recorded."
)

// JudicialInfo is the normalized ruling view assembled from whichever field
// variant the writing dashboard used.
type JudicialInfo struct {
	HasData  bool   `json:"hasData"`
	Verdict  string `json:"verdict"`
	Remarks  string `json:"remarks"`
	Sentence string `json:"sentence"`
	NextDate string `json:"nextDate"`
}

// MedicalInfo is the normalized medical view, same idea as JudicialInfo
type MedicalInfo struct {
	HasData     bool              `json:"hasData"`
	Status      string            `json:"status"`
	Notes       string            `json:"notes"`
	Documents   []models.Document `json:"documents"`
	UpdatedDate string            `json:"updatedDate"`
	Hospital    string            `json:"hospital"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ExtractJudicial reads the ruling out of a case regardless of which field
// variant it was written under. Per field the nested container wins over the
// flat aliases. HasData reflects what was actually found: a result carrying
// only the remarks placeholder reports HasData false.
func ExtractJudicial(c models.Case) JudicialInfo {
	container := c.CourtData
	if container == nil {
		container = c.JudicialData
	}
	if container == nil {
		container = &models.JudicialRecord{}
	}

	verdict := firstNonEmpty(container.Verdict, c.Verdict, c.JudicialVerdict)
	remarks := firstNonEmpty(container.Remarks, container.Summary, c.Remarks, c.JudicialRemarks)
	sentence := firstNonEmpty(container.Sentence, c.Sentence)
	nextDate := firstNonEmpty(container.NextHearing, c.NextHearing, container.Date, c.Date)

	info := JudicialInfo{
		HasData:  verdict != "" || remarks != "" || sentence != "",
		Verdict:  verdict,
		Remarks:  remarks,
		Sentence: sentence,
		NextDate: nextDate,
	}
	if info.Remarks == "" {
		info.Remarks = FallbackRemarks
	}
	return info
}

// ExtractMedical reads the medical report out of a case. Older writers stored
// it flat on the case under several container names; the current writer
// attaches it to the hospitalized party, so that is the last place searched.
func ExtractMedical(c models.Case) MedicalInfo {
	container := c.MedicalReport
	if container == nil {
		container = c.JmoReport
	}
	if container == nil {
		container = c.Medical
	}
	if container == nil {
		for i := range c.Parties {
			if c.Parties[i].MedicalReport != nil {
				container = c.Parties[i].MedicalReport
				break
			}
		}
	}
	if container == nil {
		container = &models.MedicalReport{}
	}

	notes := firstNonEmpty(container.Notes, container.Description, container.Summary, container.Observations, c.MedicalNotes)
	documents := container.Documents
	if len(documents) == 0 {
		documents = container.Files
	}
	if len(documents) == 0 {
		documents = container.Attachments
	}

	info := MedicalInfo{
		HasData:     notes != "" || len(documents) > 0,
		Status:      container.Status,
		Notes:       notes,
		Documents:   documents,
		UpdatedDate: container.UpdatedDate,
		Hospital:    container.Hospital,
	}
	if info.Notes == "" {
		info.Notes = FallbackNotes
	}
	if info.Documents == nil {
		info.Documents = []models.Document{}
	}
	return info
}
