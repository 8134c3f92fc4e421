package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"therapist-match/internal/domain/profile"

	"github.com/google/uuid"
)

func validForm() ProfileForm {
	return ProfileForm{
		Name:                   "  Jordan Lee  ",
		Age:                    "31",
		GenderIdentity:         "Non-binary",
		Location:               "Portland, OR",
		MentalHealthConditions: "Anxiety, Depression, ",
		Medications:            "",
		Budget:                 "120.50",
	}
}

func TestSubmitTrimsAndCoercesForm(t *testing.T) {
	store := &mockProfileStore{}
	uc := NewProfileUsecase(store)
	userID := uuid.New()

	p, err := uc.Submit(context.Background(), userID, validForm())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Name != "Jordan Lee" {
		t.Fatalf("name not trimmed: %q", p.Name)
	}
	if p.Age != 31 {
		t.Fatalf("age not coerced: %d", p.Age)
	}
	if p.Budget != 120.50 {
		t.Fatalf("budget not coerced: %v", p.Budget)
	}
	if want := []string{"Anxiety", "Depression"}; !reflect.DeepEqual(p.MentalHealthConditions, want) {
		t.Fatalf("conditions = %v, want %v", p.MentalHealthConditions, want)
	}
	if len(p.Medications) != 0 {
		t.Fatalf("expected empty medications, got %v", p.Medications)
	}
}

func TestSubmitRequiredFieldsInOrder(t *testing.T) {
	uc := NewProfileUsecase(&mockProfileStore{})

	form := ProfileForm{}
	_, err := uc.Submit(context.Background(), uuid.New(), form)

	var ve *profile.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Field != "name" {
		t.Fatalf("expected name reported first, got %q", ve.Field)
	}

	form.Name = "Jordan"
	_, err = uc.Submit(context.Background(), uuid.New(), form)
	if !errors.As(err, &ve) || ve.Field != "age" {
		t.Fatalf("expected age reported second, got %v", err)
	}
}

func TestSubmitRejectsNonNumericAge(t *testing.T) {
	uc := NewProfileUsecase(&mockProfileStore{})
	form := validForm()
	form.Age = "thirty"

	_, err := uc.Submit(context.Background(), uuid.New(), form)

	var ve *profile.ValidationError
	if !errors.As(err, &ve) || ve.Field != "age" {
		t.Fatalf("expected age validation error, got %v", err)
	}
}

func TestSubmitRejectsNegativeBudget(t *testing.T) {
	uc := NewProfileUsecase(&mockProfileStore{})
	form := validForm()
	form.Budget = "-5"

	_, err := uc.Submit(context.Background(), uuid.New(), form)

	var ve *profile.ValidationError
	if !errors.As(err, &ve) || ve.Field != "budget" {
		t.Fatalf("expected budget validation error, got %v", err)
	}
}

func TestSubmitOverwritesPriorProfile(t *testing.T) {
	store := &mockProfileStore{}
	uc := NewProfileUsecase(store)
	userID := uuid.New()

	if _, err := uc.Submit(context.Background(), userID, validForm()); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	form := validForm()
	form.Location = "Seattle, WA"
	if _, err := uc.Submit(context.Background(), userID, form); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	got, err := uc.Fetch(context.Background(), userID)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got.Location != "Seattle, WA" {
		t.Fatalf("expected overwrite, got %q", got.Location)
	}
}

func TestFetchMissingProfile(t *testing.T) {
	uc := NewProfileUsecase(&mockProfileStore{})
	_, err := uc.Fetch(context.Background(), uuid.New())
	if !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
