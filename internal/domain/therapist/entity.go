package therapist

// Therapist is a read-only directory entry. IDs are opaque strings copied
// verbatim from the directory service; the matching pipeline resolves model
// replies against them by exact match.
type Therapist struct {
	ID                string
	Name              string
	PhotoURL          string
	Location          string
	Specialties       []string
	InsuranceAccepted []string
	Availability      string
	ContactInfo       string
	SessionFormats    []string
	Languages         []string
	Rating            *float64
}
