package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"therapist-match/internal/domain/matching"
	"therapist-match/internal/domain/profile"
	"therapist-match/internal/domain/therapist"

	"github.com/google/uuid"
)

// MatchOutcome pairs the ranked matches with the server-assigned request id.
// Clients keep the id of their newest request and discard results and events
// carrying any older one.
type MatchOutcome struct {
	RequestID string
	Matches   []matching.Match
}

type MatchUsecase interface {
	Match(ctx context.Context, userID uuid.UUID, needs string) (MatchOutcome, error)
}

type Matcher struct {
	profiles  ProfileStore
	directory TherapistDirectory
	chat      ChatCompleter
	notifier  MatchNotifier
	logger    *log.Logger

	// live is fixed at construction from configuration; the fallback path
	// serves the whole session when false.
	live          bool
	fallbackDelay time.Duration
}

func NewMatcher(
	profiles ProfileStore,
	directory TherapistDirectory,
	chat ChatCompleter,
	notifier MatchNotifier,
	live bool,
	fallbackDelay time.Duration,
	logger *log.Logger,
) *Matcher {
	return &Matcher{
		profiles:      profiles,
		directory:     directory,
		chat:          chat,
		notifier:      notifier,
		logger:        logger,
		live:          live,
		fallbackDelay: fallbackDelay,
	}
}

// Match runs the full pipeline: validate, fetch the directory, delegate to
// the model (or the deterministic fallback), parse and resolve the reply.
// Nothing is retried; a failed attempt surfaces as one error.
func (m *Matcher) Match(ctx context.Context, userID uuid.UUID, needs string) (MatchOutcome, error) {
	prof, err := m.profiles.GetByID(ctx, userID)
	if err != nil {
		return MatchOutcome{}, err
	}
	if err := prof.Validate(); err != nil {
		return MatchOutcome{}, err
	}
	if strings.TrimSpace(needs) == "" {
		return MatchOutcome{}, &profile.ValidationError{
			Field:   "needs",
			Message: "please enter your specific needs for therapy",
		}
	}

	requestID := uuid.NewString()
	m.notifyStarted(userID, requestID)

	var matches []matching.Match
	if m.live {
		matches, err = m.matchLive(ctx, prof, needs)
	} else {
		matches, err = m.matchFallback(ctx, needs)
	}
	if err != nil {
		m.notifyFailed(userID, requestID, err)
		return MatchOutcome{}, err
	}

	m.notifyCompleted(userID, requestID, len(matches))
	return MatchOutcome{RequestID: requestID, Matches: matches}, nil
}

func (m *Matcher) matchLive(ctx context.Context, prof profile.Profile, needs string) ([]matching.Match, error) {
	directory, err := m.directory.ListTherapists(ctx)
	if err != nil {
		return nil, err
	}
	if len(directory) == 0 {
		return nil, matching.ErrEmptyDirectory
	}

	content, err := m.chat.Complete(ctx, BuildMatchPrompt(prof, needs, directory))
	if err != nil {
		return nil, err
	}

	parsed, err := parseMatchReply(content)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]therapist.Therapist, len(directory))
	for _, t := range directory {
		byID[t.ID] = t
	}

	// Ids with no directory resolution are dropped silently, so the result
	// can shrink below the requested three. Model order is preserved.
	out := make([]matching.Match, 0, len(parsed))
	for _, p := range parsed {
		t, ok := byID[p.ID]
		if !ok {
			if m.logger != nil {
				m.logger.Printf("[Match] dropping unresolved therapist id | id=%s", p.ID)
			}
			continue
		}
		reason := strings.TrimSpace(p.Reason)
		if reason == "" {
			reason = "No specific reason provided"
		}
		out = append(out, matching.Match{Therapist: t, Reason: reason})
	}
	if len(out) == 0 {
		return nil, &matching.UpstreamError{Message: "failed to resolve matched therapists"}
	}

	return out, nil
}

// matchFallback ranks the fixed catalog by keyword bands, after an artificial
// delay emulating the network round trip. It never fails on content grounds.
func (m *Matcher) matchFallback(ctx context.Context, needs string) ([]matching.Match, error) {
	if m.fallbackDelay > 0 {
		select {
		case <-time.After(m.fallbackDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return matching.Rank(needs, therapist.DemoCatalog()), nil
}

func (m *Matcher) notifyStarted(userID uuid.UUID, requestID string) {
	if m.notifier != nil {
		m.notifier.MatchStarted(userID, requestID)
	}
}

func (m *Matcher) notifyCompleted(userID uuid.UUID, requestID string, n int) {
	if m.notifier != nil {
		m.notifier.MatchCompleted(userID, requestID, n)
	}
}

func (m *Matcher) notifyFailed(userID uuid.UUID, requestID string, err error) {
	if m.notifier != nil {
		m.notifier.MatchFailed(userID, requestID, err.Error())
	}
}
