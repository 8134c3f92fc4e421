package usecase

import (
	"errors"
	"testing"

	"therapist-match/internal/domain/matching"
)

func TestParseMatchReplyPlainArray(t *testing.T) {
	matches, err := parseMatchReply(`[{"id":"t-1","name":"Dr. A","reason":"good fit"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != "t-1" {
		t.Fatalf("unexpected matches: %+v", matches)
	}
}

func TestParseMatchReplyStripsCodeFences(t *testing.T) {
	content := "```json\n[{\"id\":\"t-1\",\"name\":\"Dr. A\",\"reason\":\"fit\"}]\n```"
	matches, err := parseMatchReply(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
}

func TestParseMatchReplyNotJSON(t *testing.T) {
	_, err := parseMatchReply("Sure! Here are your matches:")
	if !errors.Is(err, matching.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestParseMatchReplyEmptyArray(t *testing.T) {
	_, err := parseMatchReply("[]")
	if !errors.Is(err, matching.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestParseMatchReplyKeepsWhitespaceReason(t *testing.T) {
	matches, err := parseMatchReply(`[{"id":"t-1","name":"Dr. A","reason":"  "}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matches[0].Reason != "  " {
		t.Fatalf("reason should pass through untrimmed, got %q", matches[0].Reason)
	}
}

func TestParseMatchReplyMissingFieldReportsIndex(t *testing.T) {
	content := `[
		{"id":"t-1","name":"Dr. A","reason":"fit"},
		{"id":"t-2","name":"Dr. B","reason":"fit"},
		{"id":"t-3","name":"Dr. C","reason":""}
	]`
	_, err := parseMatchReply(content)

	var shape *matching.ShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("expected shape error, got %v", err)
	}
	if shape.Index != 2 {
		t.Fatalf("expected index 2, got %d", shape.Index)
	}
}
