package matching

import "therapist-match/internal/domain/therapist"

// Match joins a directory therapist with the natural-language justification
// for recommending them. Results are ordered most-recommended first, produced
// fresh on every request and never persisted.
type Match struct {
	Therapist therapist.Therapist
	Reason    string
}
