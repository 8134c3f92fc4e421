package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"therapist-match/internal/domain/matching"
	"therapist-match/internal/domain/profile"
	"therapist-match/internal/domain/therapist"

	"github.com/google/uuid"
)

// Client talks to the hosted directory/profile service over its PostgREST
// surface. It backs both the therapist directory and the profile store when
// no direct database connection is configured.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *log.Logger
}

func NewClient(baseURL, apiKey string, logger *log.Logger) *Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  strings.TrimSpace(apiKey),
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

type therapistRecord struct {
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

type profileRecord struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Age                    int       `json:"age"`
	GenderIdentity         string    `json:"gender_identity"`
	Location               string    `json:"location"`
	CulturalBackground     string    `json:"cultural_background"`
	PreferredLanguage      string    `json:"preferred_language"`
	LGBTQIdentity          bool      `json:"lgbtq_identity"`
	RelationshipStatus     string    `json:"relationship_status"`
	HasChildren            bool      `json:"has_children"`
	Occupation             string    `json:"occupation"`
	MentalHealthConditions []string  `json:"mental_health_conditions"`
	Medications            []string  `json:"medications"`
	CommunicationStyle     string    `json:"communication_style"`
	ReligiousBeliefs       string    `json:"religious_beliefs"`
	SessionFormat          string    `json:"session_format"`
	Insurance              string    `json:"insurance"`
	Budget                 float64   `json:"budget"`
}

func (c *Client) ListTherapists(ctx context.Context) ([]therapist.Therapist, error) {
	var records []therapistRecord
	if err := c.get(ctx, "/rest/v1/therapists?select=*", &records); err != nil {
		return nil, err
	}

	out := make([]therapist.Therapist, 0, len(records))
	for _, r := range records {
		out = append(out, therapist.Therapist{
			ID:                r.ID,
			Name:              r.Name,
			PhotoURL:          r.PhotoURL,
			Location:          r.Location,
			Specialties:       r.Specialties,
			InsuranceAccepted: r.InsuranceAccepted,
			Availability:      r.Availability,
			ContactInfo:       r.ContactInfo,
			SessionFormats:    r.SessionFormats,
			Languages:         r.Languages,
			Rating:            r.Rating,
		})
	}
	return out, nil
}

func (c *Client) Upsert(ctx context.Context, p profile.Profile) error {
	rec := profileRecord{
		ID:                     p.ID,
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
		MentalHealthConditions: p.MentalHealthConditions,
		Medications:            p.Medications,
		CommunicationStyle:     p.CommunicationStyle,
		ReligiousBeliefs:       p.ReligiousBeliefs,
		SessionFormat:          p.SessionFormat,
		Insurance:              p.Insurance,
		Budget:                 p.Budget,
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/rest/v1/profiles", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates")

	resp, err := c.client.Do(req)
	if err != nil {
		return &matching.UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.upstreamError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	var records []profileRecord
	if err := c.get(ctx, "/rest/v1/profiles?select=*&id=eq."+id.String(), &records); err != nil {
		return profile.Profile{}, err
	}
	if len(records) == 0 {
		return profile.Profile{}, profile.ErrNotFound
	}

	r := records[0]
	return profile.Profile{
		ID:                     r.ID,
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
	}, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &matching.UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.upstreamError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("nil directory client")
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	return req, nil
}

func (c *Client) upstreamError(resp *http.Response) error {
	rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	bodyStr := strings.TrimSpace(string(rb))
	if c.logger != nil {
		c.logger.Printf("[Directory] request failed | url=%s status=%d body=%q", resp.Request.URL, resp.StatusCode, bodyStr)
	}
	return &matching.UpstreamError{Status: resp.StatusCode, Body: bodyStr}
}
