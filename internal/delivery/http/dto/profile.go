package dto

import (
	"time"

	"therapist-match/internal/domain/profile"
	"therapist-match/internal/usecase"
)

// ProfileRequest mirrors the questionnaire form. Age and budget arrive as
// free-text fields and are coerced server side.
type ProfileRequest struct {
	Name                   string `json:"name"`
	Age                    string `json:"age"`
	GenderIdentity         string `json:"gender_identity"`
	Location               string `json:"location"`
	CulturalBackground     string `json:"cultural_background"`
	PreferredLanguage      string `json:"preferred_language"`
	LGBTQIdentity          bool   `json:"lgbtq_identity"`
	RelationshipStatus     string `json:"relationship_status"`
	HasChildren            bool   `json:"has_children"`
	Occupation             string `json:"occupation"`
	MentalHealthConditions string `json:"mental_health_conditions"`
	Medications            string `json:"medications"`
	CommunicationStyle     string `json:"communication_style"`
	ReligiousBeliefs       string `json:"religious_beliefs"`
	SessionFormat          string `json:"session_format"`
	Insurance              string `json:"insurance"`
	Budget                 string `json:"budget"`
}

func (r ProfileRequest) ToForm() usecase.ProfileForm {
	return usecase.ProfileForm{
		Name:                   r.Name,
		Age:                    r.Age,
		GenderIdentity:         r.GenderIdentity,
		Location:               r.Location,
		CulturalBackground:     r.CulturalBackground,
		PreferredLanguage:      r.PreferredLanguage,
		LGBTQIdentity:          r.LGBTQIdentity,
		RelationshipStatus:     r.RelationshipStatus,
		HasChildren:            r.HasChildren,
		Occupation:             r.Occupation,
		MentalHealthConditions: r.MentalHealthConditions,
		Medications:            r.Medications,
		CommunicationStyle:     r.CommunicationStyle,
		ReligiousBeliefs:       r.ReligiousBeliefs,
		SessionFormat:          r.SessionFormat,
		Insurance:              r.Insurance,
		Budget:                 r.Budget,
	}
}

type ProfileResponse struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Age                    int      `json:"age"`
	GenderIdentity         string   `json:"gender_identity"`
	Location               string   `json:"location"`
	CulturalBackground     string   `json:"cultural_background"`
	PreferredLanguage      string   `json:"preferred_language"`
	LGBTQIdentity          bool     `json:"lgbtq_identity"`
	RelationshipStatus     string   `json:"relationship_status"`
	HasChildren            bool     `json:"has_children"`
	Occupation             string   `json:"occupation"`
	MentalHealthConditions []string `json:"mental_health_conditions"`
	Medications            []string `json:"medications"`
	CommunicationStyle     string   `json:"communication_style"`
	ReligiousBeliefs       string   `json:"religious_beliefs"`
	SessionFormat          string   `json:"session_format"`
	Insurance              string   `json:"insurance"`
	Budget                 float64  `json:"budget"`
	UpdatedAt              string   `json:"updated_at"`
}

func NewProfileResponse(p profile.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                     p.ID.String(),
		Name:                   p.Name,
		Age:                    p.Age,
		GenderIdentity:         p.GenderIdentity,
		Location:               p.Location,
		CulturalBackground:     p.CulturalBackground,
		PreferredLanguage:      p.PreferredLanguage,
		LGBTQIdentity:          p.LGBTQIdentity,
		RelationshipStatus:     p.RelationshipStatus,
		HasChildren:            p.HasChildren,
		Occupation:             p.Occupation,
		MentalHealthConditions: emptyIfNil(p.MentalHealthConditions),
		Medications:            emptyIfNil(p.Medications),
		CommunicationStyle:     p.CommunicationStyle,
		ReligiousBeliefs:       p.ReligiousBeliefs,
		SessionFormat:          p.SessionFormat,
		Insurance:              p.Insurance,
		Budget:                 p.Budget,
		UpdatedAt:              p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
