package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"therapist-match/internal/domain/matching"
)

// parsedMatch is one element of the model's JSON array reply.
type parsedMatch struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// parseMatchReply interprets the model's textual reply as a JSON array of
// matches, tolerating markdown code fences around the payload. The array must
// be non-empty and every element must carry id, name and reason. A
// whitespace-only field counts as present; the caller trims and defaults
// reasons when resolving.
func parseMatchReply(content string) ([]parsedMatch, error) {
	clean := stripCodeFences(content)

	var matches []parsedMatch
	if err := json.Unmarshal([]byte(clean), &matches); err != nil {
		return nil, fmt.Errorf("%w: %v", matching.ErrParse, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no therapist matches found", matching.ErrParse)
	}

	for i, m := range matches {
		if m.ID == "" || m.Name == "" || m.Reason == "" {
			return nil, &matching.ShapeError{Index: i}
		}
	}

	return matches, nil
}

func stripCodeFences(s string) string {
	clean := strings.TrimSpace(s)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
