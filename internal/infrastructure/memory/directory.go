package memory

import (
	"context"

	"therapist-match/internal/domain/therapist"
)

// Directory serves a fixed therapist catalogue. Demo mode uses it in place
// of the hosted directory service.
type Directory struct {
	therapists []therapist.Therapist
}

func NewDirectory(therapists []therapist.Therapist) *Directory {
	return &Directory{therapists: therapists}
}

func NewDemoDirectory() *Directory {
	return NewDirectory(therapist.DemoCatalog())
}

func (d *Directory) ListTherapists(_ context.Context) ([]therapist.Therapist, error) {
	out := make([]therapist.Therapist, len(d.therapists))
	copy(out, d.therapists)
	return out, nil
}
