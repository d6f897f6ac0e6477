package databases

import (
	"github.com/google/uuid"

	"github.com/justiceflow/justiceflow-api/models"
)

// SeedCases returns the demo case collection written whenever the cases blob
// is missing or unreadable. Newest first, matching insert order.
func SeedCases() []models.Case {
	return []models.Case{
		{
			ID:            "CASE-2023-005",
			Date:          "2023-10-26",
			Venue:         "Maradana",
			Description:   "Pedestrian hit by three-wheeler.",
			Status:        models.StatusPending,
			AssignedCourt: "Gangodawila Magistrate Court",
			Station:       "Dehiwala Station",
			Officer:       "OIC Perera",
			ReporterRole:  "Witness",
			VictimName:    "Sunil Bandara",
			JmoRequired:   true,
			Parties: []models.Party{
				{
					PartyID:        uuid.NewString(),
					Name:           "Sunil Bandara",
					NIC:            "651234567V",
					Role:           "Victim",
					IsHospitalized: true,
					HospitalName:   "National Hospital",
				},
			},
		},
		{
			ID:            "CASE-2023-002",
			Date:          "2023-10-25",
			Venue:         "Pettah",
			Description:   "Physical altercation at public market.",
			Status:        models.StatusUnderInvestigation,
			AssignedCourt: "Mount Lavinia Magistrate Court",
			Station:       "Mount Lavinia HQ",
			Officer:       "OIC Perera",
			ReporterRole:  "Victim",
			VictimName:    "Kamal Gunaratne",
			JmoRequired:   true,
			Parties: []models.Party{
				{
					PartyID:        uuid.NewString(),
					Name:           "Kamal Gunaratne",
					NIC:            "781234567V",
					Role:           "Victim",
					IsHospitalized: true,
					HospitalName:   "Colombo South Teaching Hospital",
				},
			},
		},
		{
			ID:            "CASE-2023-001",
			Date:          "2023-10-24",
			Venue:         "Borella",
			Description:   "Traffic accident involving two motorcycles at Borella Junction.",
			Status:        models.StatusPending,
			AssignedCourt: "Mount Lavinia Magistrate Court",
			Station:       "Mount Lavinia HQ",
			Officer:       "OIC Perera",
			ReporterRole:  "Victim",
			VictimName:    "Saman Perera",
			JmoRequired:   true,
			Parties: []models.Party{
				{
					PartyID:        uuid.NewString(),
					Name:           "Saman Perera",
					NIC:            "851234567V",
					Role:           "Victim",
					IsHospitalized: true,
					HospitalName:   "Colombo South Teaching Hospital",
				},
				{
					PartyID:        uuid.NewString(),
					Name:           "Nimal Silva",
					NIC:            "901234567V",
					Role:           "Suspect",
					IsHospitalized: false,
				},
			},
		},
	}
}

// SeedStations returns the demo police stations
func SeedStations() []models.Organization {
	return []models.Organization{
		{ID: "POL-001", Name: "Mount Lavinia HQ", Location: "Mount Lavinia", Contact: "0112717501"},
		{ID: "POL-002", Name: "Dehiwala Station", Location: "Dehiwala", Contact: "0112717502"},
	}
}

// SeedHospitals returns the demo hospitals
func SeedHospitals() []models.Organization {
	return []models.Organization{
		{ID: "HOS-001", Name: "Colombo South Teaching Hospital", Location: "Kalubowila", Contact: "0112763000"},
		{ID: "HOS-002", Name: "National Hospital", Location: "Colombo 10", Contact: "0112691111"},
	}
}

// SeedCourts returns the demo courts
func SeedCourts() []models.Organization {
	return []models.Organization{
		{ID: "CRT-001", Name: "Mount Lavinia Magistrate Court", Location: "Mount Lavinia", Contact: "0112717341"},
		{ID: "CRT-002", Name: "Gangodawila Magistrate Court", Location: "Nugegoda", Contact: "0112852555"},
	}
}

// SeedAccounts returns the demo login accounts. Passwords here predate the
// complexity rule, which only applies to new and changed passwords.
func SeedAccounts() []models.Account {
	return []models.Account{
		{
			ID:             "USR-001",
			Name:           "OIC Perera",
			Email:          "police@justiceflow.gov.lk",
			NIC:            "198512345678",
			Role:           models.RolePolice,
			Contact:        "0711111111",
			AppointedPlace: "Mount Lavinia HQ",
			Status:         models.AccountActive,
			Password:       "123",
		},
		{
			ID:             "USR-002",
			Name:           "Dr. Silva",
			Email:          "jmo@justiceflow.gov.lk",
			NIC:            "197812345678",
			Role:           models.RoleJmo,
			Contact:        "0772222222",
			AppointedPlace: "Colombo South Teaching Hospital",
			Status:         models.AccountActive,
			Password:       "123",
		},
		{
			ID:             "USR-003",
			Name:           "Justice Fernando",
			Email:          "judge@justiceflow.gov.lk",
			NIC:            "196712345678",
			Role:           models.RoleJudge,
			Contact:        "0713333333",
			AppointedPlace: "Mount Lavinia Magistrate Court",
			Status:         models.AccountActive,
			Password:       "123",
		},
		{
			ID:       "USR-004",
			Name:     "Anura Jayasuriya",
			Email:    "attorney@justiceflow.gov.lk",
			NIC:      "198012345678",
			Role:     models.RoleAttorney,
			Contact:  "0774444444",
			Status:   models.AccountActive,
			Password: "123",
		},
	}
}
