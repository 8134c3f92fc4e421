package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"therapist-match/internal/domain/matching"
	"therapist-match/internal/domain/profile"
	"therapist-match/internal/domain/therapist"

	"github.com/google/uuid"
)

type mockProfileStore struct {
	profiles map[uuid.UUID]profile.Profile
}

func (m *mockProfileStore) Upsert(_ context.Context, p profile.Profile) error {
	if m.profiles == nil {
		m.profiles = make(map[uuid.UUID]profile.Profile)
	}
	m.profiles[p.ID] = p
	return nil
}

func (m *mockProfileStore) GetByID(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

type mockDirectory struct {
	therapists []therapist.Therapist
	err        error
	calls      int
}

func (m *mockDirectory) ListTherapists(_ context.Context) ([]therapist.Therapist, error) {
	m.calls++
	return m.therapists, m.err
}

type mockChat struct {
	reply string
	err   error
	calls int
}

func (m *mockChat) Complete(_ context.Context, _ string) (string, error) {
	m.calls++
	return m.reply, m.err
}

type mockNotifier struct {
	started   []string
	completed []string
	failed    []string
}

func (m *mockNotifier) MatchStarted(_ uuid.UUID, requestID string) {
	m.started = append(m.started, requestID)
}

func (m *mockNotifier) MatchCompleted(_ uuid.UUID, requestID string, _ int) {
	m.completed = append(m.completed, requestID)
}

func (m *mockNotifier) MatchFailed(_ uuid.UUID, requestID string, _ string) {
	m.failed = append(m.failed, requestID)
}

func completeProfile(id uuid.UUID) profile.Profile {
	return profile.Profile{
		ID:             id,
		Name:           "Jordan Lee",
		Age:            31,
		GenderIdentity: "Non-binary",
		Location:       "Portland, OR",
		Budget:         120,
	}
}

func liveMatcher(store *mockProfileStore, dir *mockDirectory, chat *mockChat, notifier *mockNotifier) *Matcher {
	return NewMatcher(store, dir, chat, notifier, true, 0, nil)
}

func TestMatchRejectsBlankNeedsBeforeAnyNetworkCall(t *testing.T) {
	userID := uuid.New()
	store := &mockProfileStore{profiles: map[uuid.UUID]profile.Profile{userID: completeProfile(userID)}}
	dir := &mockDirectory{}
	chat := &mockChat{}

	m := liveMatcher(store, dir, chat, &mockNotifier{})
	_, err := m.Match(context.Background(), userID, "   ")

	var ve *profile.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Field != "needs" {
		t.Fatalf("expected needs field, got %q", ve.Field)
	}
	if dir.calls != 0 || chat.calls != 0 {
		t.Fatalf("expected no network calls, got directory=%d chat=%d", dir.calls, chat.calls)
	}
}

func TestMatchRejectsIncompleteProfile(t *testing.T) {
	userID := uuid.New()
	p := completeProfile(userID)
	p.Location = ""
	store := &mockProfileStore{profiles: map[uuid.UUID]profile.Profile{userID: p}}
	dir := &mockDirectory{}

	m := liveMatcher(store, dir, &mockChat{}, &mockNotifier{})
	_, err := m.Match(context.Background(), userID, "anxiety")

	var ve *profile.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if dir.calls != 0 {
		t.Fatalf("expected no directory fetch, got %d", dir.calls)
	}
}

func TestMatchMissingProfile(t *testing.T) {
	m := liveMatcher(&mockProfileStore{}, &mockDirectory{}, &mockChat{}, &mockNotifier{})
	_, err := m.Match(context.Background(), uuid.New(), "anxiety")
	if !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchEmptyDirectorySkipsModelCall(t *testing.T) {
	userID := uuid.New()
	store := &mockProfileStore{profiles: map[uuid.UUID]profile.Profile{userID: completeProfile(userID)}}
	chat := &mockChat{}

	m := liveMatcher(store, &mockDirectory{}, chat, &mockNotifier{})
	_, err := m.Match(context.Background(), userID, "anxiety")

	if !errors.Is(err, matching.ErrEmptyDirectory) {
		t.Fatalf("expected ErrEmptyDirectory, got %v", err)
	}
	if chat.calls != 0 {
		t.Fatalf("expected no model call, got %d", chat.calls)
	}
}

func TestMatchNonJSONReply(t *testing.T) {
	userID := uuid.New()
	store := &mockProfileStore{profiles: map[uuid.UUID]profile.Profile{userID: completeProfile(userID)}}
	dir := &mockDirectory{therapists: therapist.DemoCatalog()}
	chat := &mockChat{reply: "I think Dr. Johnson would be great for you!"}

	notifier := &mockNotifier{}
	m := liveMatcher(store, dir, chat, notifier)
	_, err := m.Match(context.Background(), userID, "anxiety")

	if !errors.Is(err, matching.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if len(notifier.failed) != 1 {
		t.Fatalf("expected one failure event, got %d", len(notifier.failed))
	}
}

func TestMatchShapeErrorCarriesIndex(t *testing.T) {
	userID := uuid.New()
	store := &mockProfileStore{profiles: map[uuid.UUID]profile.Profile{userID: completeProfile(userID)}}
	dir := &mockDirectory{therapists: therapist.DemoCatalog()}
	chat := &mockChat{reply: `[
		{"id":"demo-therapist-1","name":"Dr. Sarah Johnson","reason":"fit"},
		{"id":"","name":"Dr. Mystery","reason":"fit"}
	]`}

	m := liveMatcher(store, dir, chat, &mockNotifier{})
	_, err := m.Match(context.Background(), userID, "anxiety")

	var shape *matching.ShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("expected shape error, got %v", err)
	}
	if shape.Index != 1 {
		t.Fatalf("expected index 1, got %d", shape.Index)
	}
}

func TestMatchDropsUnresolvedIDsSilently(t *testing.T) {
	userID := uuid.New()
	store := &mockProfileStore{profiles: map[uuid.UUID]profile.Profile{userID: completeProfile(userID)}}
	dir := &mockDirectory{therapists: therapist.DemoCatalog()}
	chat := &mockChat{reply: `[
		{"id":"demo-therapist-2","name":"Dr. Michael Chen","reason":"identity work"},
		{"id":"ghost-id","name":"Dr. Ghost","reason":"who knows"},
		{"id":"demo-therapist-1","name":"Dr. Sarah Johnson","reason":"anxiety"}
	]`}

	m := liveMatcher(store, dir, chat, &mockNotifier{})
	out, err := m.Match(context.Background(), userID, "anxiety and identity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Matches) != 2 {
		t.Fatalf("expected 2 matches after dropping ghost, got %d", len(out.Matches))
	}
	if out.Matches[0].Therapist.ID != "demo-therapist-2" || out.Matches[1].Therapist.ID != "demo-therapist-1" {
		t.Fatalf("model order not preserved: %q, %q", out.Matches[0].Therapist.ID, out.Matches[1].Therapist.ID)
	}
}

func TestMatchAllIDsUnresolved(t *testing.T) {
	userID := uuid.New()
	store := &mockProfileStore{profiles: map[uuid.UUID]profile.Profile{userID: completeProfile(userID)}}
	dir := &mockDirectory{therapists: therapist.DemoCatalog()}
	chat := &mockChat{reply: `[{"id":"ghost","name":"Dr. Ghost","reason":"n/a"}]`}

	m := liveMatcher(store, dir, chat, &mockNotifier{})
	_, err := m.Match(context.Background(), userID, "anxiety")

	var upstream *matching.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestMatchBlankReasonGetsDefault(t *testing.T) {
	userID := uuid.New()
	store := &mockProfileStore{profiles: map[uuid.UUID]profile.Profile{userID: completeProfile(userID)}}
	dir := &mockDirectory{therapists: therapist.DemoCatalog()}
	chat := &mockChat{reply: `[{"id":"demo-therapist-1","name":"Dr. Sarah Johnson","reason":"  "}]`}

	m := liveMatcher(store, dir, chat, &mockNotifier{})
	out, err := m.Match(context.Background(), userID, "anxiety")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := out.Matches[0].Reason; got != "No specific reason provided" {
		t.Fatalf("expected default reason, got %q", got)
	}
}

func TestMatchFallbackServesWithoutModel(t *testing.T) {
	userID := uuid.New()
	store := &mockProfileStore{profiles: map[uuid.UUID]profile.Profile{userID: completeProfile(userID)}}
	notifier := &mockNotifier{}

	m := NewMatcher(store, &mockDirectory{}, nil, notifier, false, 0, nil)
	out, err := m.Match(context.Background(), userID, "anxiety and stress")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Matches) == 0 {
		t.Fatal("expected fallback matches")
	}
	if out.RequestID == "" {
		t.Fatal("expected a request id")
	}
	if len(notifier.started) != 1 || len(notifier.completed) != 1 {
		t.Fatalf("expected started+completed events, got %d/%d", len(notifier.started), len(notifier.completed))
	}
	if notifier.started[0] != notifier.completed[0] {
		t.Fatal("events should carry the same request id")
	}
}

func TestMatchFallbackHonorsContextCancellation(t *testing.T) {
	userID := uuid.New()
	store := &mockProfileStore{profiles: map[uuid.UUID]profile.Profile{userID: completeProfile(userID)}}

	m := NewMatcher(store, &mockDirectory{}, nil, &mockNotifier{}, false, time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Match(ctx, userID, "anxiety")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
