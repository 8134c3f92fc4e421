package dto

import (
	"therapist-match/internal/domain/matching"
	"therapist-match/internal/domain/therapist"
)

type TherapistResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	PhotoURL          string   `json:"photo_url"`
	Location          string   `json:"location"`
	Specialties       []string `json:"specialties"`
	InsuranceAccepted []string `json:"insurance_accepted"`
	Availability      string   `json:"availability"`
	ContactInfo       string   `json:"contact_info"`
	SessionFormats    []string `json:"session_formats"`
	Languages         []string `json:"languages"`
	Rating            *float64 `json:"rating,omitempty"`
}

func NewTherapistResponse(t therapist.Therapist) TherapistResponse {
	return TherapistResponse{
		ID:                t.ID,
		Name:              t.Name,
		PhotoURL:          t.PhotoURL,
		Location:          t.Location,
		Specialties:       emptyIfNil(t.Specialties),
		InsuranceAccepted: emptyIfNil(t.InsuranceAccepted),
		Availability:      t.Availability,
		ContactInfo:       t.ContactInfo,
		SessionFormats:    emptyIfNil(t.SessionFormats),
		Languages:         emptyIfNil(t.Languages),
		Rating:            t.Rating,
	}
}

func NewTherapistListResponse(ts []therapist.Therapist) []TherapistResponse {
	out := make([]TherapistResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, NewTherapistResponse(t))
	}
	return out
}

type MatchRequest struct {
	Needs string `json:"needs"`
}

type MatchResponse struct {
	Therapist TherapistResponse `json:"therapist"`
	Reason    string            `json:"reason"`
}

type MatchListResponse struct {
	RequestID string          `json:"request_id"`
	Matches   []MatchResponse `json:"matches"`
}

func NewMatchListResponse(requestID string, matches []matching.Match) MatchListResponse {
	out := make([]MatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchResponse{
			Therapist: NewTherapistResponse(m.Therapist),
			Reason:    m.Reason,
		})
	}
	return MatchListResponse{RequestID: requestID, Matches: out}
}
