package matching

import (
	"fmt"
	"strings"

	"therapist-match/internal/domain/therapist"
)

const maxMatches = 3

// band ties a set of trigger keywords to a catalog position and a reason
// template. The template receives the therapist name.
type band struct {
	keywords []string
	index    int
	reason   string
}

var bands = []band{
	{
		keywords: []string{"anxiety", "stress", "worry"},
		index:    0,
		reason:   "%s specializes in anxiety and stress management, with strong experience helping clients work through the kind of concerns you described.",
	},
	{
		keywords: []string{"lgbtq", "identity", "gender", "sexuality"},
		index:    1,
		reason:   "%s is an LGBTQ+ affirming therapist with deep experience supporting clients exploring questions of identity.",
	},
	{
		keywords: []string{"family", "relationship", "couple", "marriage"},
		index:    2,
		reason:   "%s works extensively with families and couples on relationship dynamics and communication.",
	},
}

const genericReason = "%s is a well-rounded therapist who can support you across a wide range of concerns."

// Rank is the deterministic fallback matcher: a pure function of the needs
// text and catalog order. Keyword bands are tested in a fixed order against
// the lower-cased needs; each matched band contributes its catalog entry with
// a templated reason. Remaining catalog entries then pad the result, in
// catalog order, under a generic reason. At most three matches are returned.
func Rank(needs string, catalog []therapist.Therapist) []Match {
	lowered := strings.ToLower(needs)

	used := make(map[int]bool, len(catalog))
	out := make([]Match, 0, maxMatches)

	for _, b := range bands {
		if b.index >= len(catalog) || used[b.index] {
			continue
		}
		if !containsAny(lowered, b.keywords) {
			continue
		}
		t := catalog[b.index]
		out = append(out, Match{Therapist: t, Reason: fmt.Sprintf(b.reason, t.Name)})
		used[b.index] = true
	}

	for i := 0; i < len(catalog) && len(out) < maxMatches; i++ {
		if used[i] {
			continue
		}
		t := catalog[i]
		out = append(out, Match{Therapist: t, Reason: fmt.Sprintf(genericReason, t.Name)})
		used[i] = true
	}

	if len(out) > maxMatches {
		out = out[:maxMatches]
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
