package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"therapist-match/internal/domain/profile"

	"github.com/google/uuid"
)

// ProfileForm carries the raw questionnaire fields as submitted: free text
// untrimmed, numbers as strings, tag lists comma-separated.
type ProfileForm struct {
	Name                   string
	Age                    string
	GenderIdentity         string
	Location               string
	CulturalBackground     string
	PreferredLanguage      string
	LGBTQIdentity          bool
	RelationshipStatus     string
	HasChildren            bool
	Occupation             string
	MentalHealthConditions string
	Medications            string
	CommunicationStyle     string
	ReligiousBeliefs       string
	SessionFormat          string
	Insurance              string
	Budget                 string
}

type ProfileUsecase interface {
	Submit(ctx context.Context, userID uuid.UUID, form ProfileForm) (profile.Profile, error)
	Fetch(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
}

type Profiles struct {
	store ProfileStore
	now   func() time.Time
}

func NewProfileUsecase(store ProfileStore) *Profiles {
	return &Profiles{store: store, now: time.Now}
}

// Submit trims and coerces the form, validates the result, and overwrites any
// prior profile for the user. Resubmitting identical input is an identical
// overwrite.
func (u *Profiles) Submit(ctx context.Context, userID uuid.UUID, form ProfileForm) (profile.Profile, error) {
	for _, f := range []struct{ name, value string }{
		{"name", form.Name},
		{"age", form.Age},
		{"gender_identity", form.GenderIdentity},
		{"location", form.Location},
	} {
		if strings.TrimSpace(f.value) == "" {
			return profile.Profile{}, &profile.ValidationError{Field: f.name}
		}
	}

	now := u.now().UTC()
	p := profile.Profile{
		ID:                     userID,
		Name:                   strings.TrimSpace(form.Name),
		Age:                    coerceInt(form.Age),
		GenderIdentity:         strings.TrimSpace(form.GenderIdentity),
		Location:               strings.TrimSpace(form.Location),
		CulturalBackground:     strings.TrimSpace(form.CulturalBackground),
		PreferredLanguage:      strings.TrimSpace(form.PreferredLanguage),
		LGBTQIdentity:          form.LGBTQIdentity,
		RelationshipStatus:     strings.TrimSpace(form.RelationshipStatus),
		HasChildren:            form.HasChildren,
		Occupation:             strings.TrimSpace(form.Occupation),
		MentalHealthConditions: splitTags(form.MentalHealthConditions),
		Medications:            splitTags(form.Medications),
		CommunicationStyle:     strings.TrimSpace(form.CommunicationStyle),
		ReligiousBeliefs:       strings.TrimSpace(form.ReligiousBeliefs),
		SessionFormat:          strings.TrimSpace(form.SessionFormat),
		Insurance:              strings.TrimSpace(form.Insurance),
		Budget:                 coerceFloat(form.Budget),
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if p.Age <= 0 {
		return profile.Profile{}, &profile.ValidationError{Field: "age", Message: "please enter a valid age"}
	}
	if p.Budget < 0 {
		return profile.Profile{}, &profile.ValidationError{Field: "budget", Message: "please enter a valid budget"}
	}

	if err := u.store.Upsert(ctx, p); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func (u *Profiles) Fetch(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	return u.store.GetByID(ctx, userID)
}

// coerceInt follows the questionnaire rule: invalid numeric input becomes 0
// and fails the later range check rather than erroring here.
func coerceInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func coerceFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// splitTags turns a comma-separated field into a trimmed, empty-filtered set.
func splitTags(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
