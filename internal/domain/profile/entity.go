package profile

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

// Profile is the questionnaire record for one user. It is written wholesale on
// every submission (upsert by ID) and never partially patched.
type Profile struct {
	ID                     uuid.UUID
	Name                   string
	Age                    int
	GenderIdentity         string
	Location               string
	CulturalBackground     string
	PreferredLanguage      string
	LGBTQIdentity          bool
	RelationshipStatus     string
	HasChildren            bool
	Occupation             string
	MentalHealthConditions []string
	Medications            []string
	CommunicationStyle     string
	ReligiousBeliefs       string
	SessionFormat          string
	Insurance              string
	Budget                 float64
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// ValidationError names the first field that failed validation. Message
// overrides the default "<field> is required" wording when set.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return strings.ReplaceAll(e.Field, "_", " ") + " is required"
}

// Validate checks the required fields in a fixed order and reports the first
// missing one: name, age, gender_identity, location.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name"}
	}
	if p.Age <= 0 {
		return &ValidationError{Field: "age"}
	}
	if strings.TrimSpace(p.GenderIdentity) == "" {
		return &ValidationError{Field: "gender_identity"}
	}
	if strings.TrimSpace(p.Location) == "" {
		return &ValidationError{Field: "location"}
	}
	if p.Budget < 0 {
		return &ValidationError{Field: "budget", Message: "please enter a valid budget"}
	}
	return nil
}
