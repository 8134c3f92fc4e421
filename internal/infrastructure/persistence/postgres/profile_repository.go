package postgres

import (
	"context"
	"errors"

	"therapist-match/internal/database"
	"therapist-match/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProfileRepository struct {
	db database.DB
}

func NewProfileRepository(db database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Upsert(ctx context.Context, p profile.Profile) error {
	query := `
		INSERT INTO profiles (
			id, name, age, gender_identity, location,
			cultural_background, preferred_language, lgbtq_identity,
			relationship_status, has_children, occupation,
			mental_health_conditions, medications, communication_style,
			religious_beliefs, session_format, insurance, budget,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			gender_identity = EXCLUDED.gender_identity,
			location = EXCLUDED.location,
			cultural_background = EXCLUDED.cultural_background,
			preferred_language = EXCLUDED.preferred_language,
			lgbtq_identity = EXCLUDED.lgbtq_identity,
			relationship_status = EXCLUDED.relationship_status,
			has_children = EXCLUDED.has_children,
			occupation = EXCLUDED.occupation,
			mental_health_conditions = EXCLUDED.mental_health_conditions,
			medications = EXCLUDED.medications,
			communication_style = EXCLUDED.communication_style,
			religious_beliefs = EXCLUDED.religious_beliefs,
			session_format = EXCLUDED.session_format,
			insurance = EXCLUDED.insurance,
			budget = EXCLUDED.budget,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Age, p.GenderIdentity, p.Location,
		p.CulturalBackground, p.PreferredLanguage, p.LGBTQIdentity,
		p.RelationshipStatus, p.HasChildren, p.Occupation,
		p.MentalHealthConditions, p.Medications, p.CommunicationStyle,
		p.ReligiousBeliefs, p.SessionFormat, p.Insurance, p.Budget,
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	query := `
		SELECT id, name, age, gender_identity, location,
			cultural_background, preferred_language, lgbtq_identity,
			relationship_status, has_children, occupation,
			mental_health_conditions, medications, communication_style,
			religious_beliefs, session_format, insurance, budget,
			created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var p profile.Profile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Age, &p.GenderIdentity, &p.Location,
		&p.CulturalBackground, &p.PreferredLanguage, &p.LGBTQIdentity,
		&p.RelationshipStatus, &p.HasChildren, &p.Occupation,
		&p.MentalHealthConditions, &p.Medications, &p.CommunicationStyle,
		&p.ReligiousBeliefs, &p.SessionFormat, &p.Insurance, &p.Budget,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return profile.Profile{}, profile.ErrNotFound
	}
	if err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}
