package postgres

import (
	"context"

	"therapist-match/internal/database"
	"therapist-match/internal/domain/therapist"
)

type TherapistRepository struct {
	db database.DB
}

func NewTherapistRepository(db database.DB) *TherapistRepository {
	return &TherapistRepository{db: db}
}

func (r *TherapistRepository) ListTherapists(ctx context.Context) ([]therapist.Therapist, error) {
	query := `
		SELECT id, name, photo_url, location, specialties,
			insurance_accepted, availability, contact_info,
			session_formats, languages, rating
		FROM therapists
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []therapist.Therapist
	for rows.Next() {
		var t therapist.Therapist
		if err := rows.Scan(
			&t.ID, &t.Name, &t.PhotoURL, &t.Location, &t.Specialties,
			&t.InsuranceAccepted, &t.Availability, &t.ContactInfo,
			&t.SessionFormats, &t.Languages, &t.Rating,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TherapistRepository) Save(ctx context.Context, t therapist.Therapist) error {
	query := `
		INSERT INTO therapists (
			id, name, photo_url, location, specialties,
			insurance_accepted, availability, contact_info,
			session_formats, languages, rating
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			photo_url = EXCLUDED.photo_url,
			location = EXCLUDED.location,
			specialties = EXCLUDED.specialties,
			insurance_accepted = EXCLUDED.insurance_accepted,
			availability = EXCLUDED.availability,
			contact_info = EXCLUDED.contact_info,
			session_formats = EXCLUDED.session_formats,
			languages = EXCLUDED.languages,
			rating = EXCLUDED.rating
	`

	_, err := r.db.Exec(ctx, query,
		t.ID, t.Name, t.PhotoURL, t.Location, t.Specialties,
		t.InsuranceAccepted, t.Availability, t.ContactInfo,
		t.SessionFormats, t.Languages, t.Rating,
	)
	return err
}
