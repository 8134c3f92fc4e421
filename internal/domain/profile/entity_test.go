package profile

import (
	"errors"
	"testing"
)

func valid() Profile {
	return Profile{
		Name:           "Jordan Lee",
		Age:            31,
		GenderIdentity: "Non-binary",
		Location:       "Portland, OR",
		Budget:         120,
	}
}

func TestValidateComplete(t *testing.T) {
	if err := valid().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateReportsFirstMissingField(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Profile)
		field  string
	}{
		{"missing name", func(p *Profile) { p.Name = "  " }, "name"},
		{"zero age", func(p *Profile) { p.Age = 0 }, "age"},
		{"missing gender", func(p *Profile) { p.GenderIdentity = "" }, "gender_identity"},
		{"missing location", func(p *Profile) { p.Location = "" }, "location"},
		{"negative budget", func(p *Profile) { p.Budget = -1 }, "budget"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid()
			tc.mutate(&p)

			err := p.Validate()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, ve.Field)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "gender_identity"}
	if got := err.Error(); got != "gender identity is required" {
		t.Fatalf("unexpected message: %q", got)
	}

	err = &ValidationError{Field: "age", Message: "please enter a valid age"}
	if got := err.Error(); got != "please enter a valid age" {
		t.Fatalf("unexpected message: %q", got)
	}
}
