package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"therapist-match/internal/domain/profile"
	"therapist-match/internal/domain/therapist"
)

const (
	notSpecified  = "Not specified"
	noneSpecified = "None specified"
	notRated      = "Not rated"
)

// BuildMatchPrompt serializes the profile, the need statement, and the full
// directory into the single-turn instruction block sent to the model. Every
// therapist field is included, with placeholder text substituted for missing
// optional values, and the model is told to copy directory ids verbatim.
func BuildMatchPrompt(p profile.Profile, needs string, directory []therapist.Therapist) string {
	var b strings.Builder

	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Age: %d\n", p.Age)
	fmt.Fprintf(&b, "Gender Identity: %s\n", p.GenderIdentity)
	fmt.Fprintf(&b, "Location: %s\n", p.Location)
	fmt.Fprintf(&b, "Cultural Background: %s\n", textOr(p.CulturalBackground, notSpecified))
	fmt.Fprintf(&b, "Preferred Language: %s\n", textOr(p.PreferredLanguage, notSpecified))
	fmt.Fprintf(&b, "LGBTQ+ Identity: %s\n", yesNo(p.LGBTQIdentity))
	fmt.Fprintf(&b, "Relationship Status: %s\n", textOr(p.RelationshipStatus, notSpecified))
	fmt.Fprintf(&b, "Has Children: %s\n", yesNo(p.HasChildren))
	fmt.Fprintf(&b, "Occupation: %s\n", textOr(p.Occupation, notSpecified))
	fmt.Fprintf(&b, "Mental Health Conditions: %s\n", listOr(p.MentalHealthConditions, noneSpecified))
	fmt.Fprintf(&b, "Medications: %s\n", listOr(p.Medications, noneSpecified))
	fmt.Fprintf(&b, "Communication Style: %s\n", textOr(p.CommunicationStyle, notSpecified))
	fmt.Fprintf(&b, "Religious Beliefs: %s\n", textOr(p.ReligiousBeliefs, notSpecified))
	fmt.Fprintf(&b, "Session Format: %s\n", textOr(p.SessionFormat, notSpecified))
	fmt.Fprintf(&b, "Insurance: %s\n", textOr(p.Insurance, notSpecified))
	fmt.Fprintf(&b, "Budget: %s\n", budgetOr(p.Budget, notSpecified))

	b.WriteString("\nUser's specific needs:\n")
	b.WriteString(needs)
	b.WriteString("\n\nAvailable Therapists:\n")

	for _, t := range directory {
		fmt.Fprintf(&b, "\nID: %s\n", t.ID)
		fmt.Fprintf(&b, "Name: %s\n", t.Name)
		fmt.Fprintf(&b, "Specialties: %s\n", listOr(t.Specialties, notSpecified))
		fmt.Fprintf(&b, "Location: %s\n", textOr(t.Location, notSpecified))
		fmt.Fprintf(&b, "Languages: %s\n", listOr(t.Languages, notSpecified))
		fmt.Fprintf(&b, "Session Formats: %s\n", listOr(t.SessionFormats, notSpecified))
		fmt.Fprintf(&b, "Insurance Accepted: %s\n", listOr(t.InsuranceAccepted, notSpecified))
		fmt.Fprintf(&b, "Availability: %s\n", textOr(t.Availability, notSpecified))
		fmt.Fprintf(&b, "Rating: %s\n", ratingOr(t.Rating, notRated))
	}

	b.WriteString(`
Based on the user's profile, specific needs, and the available therapist profiles,
select the top 3 most suitable therapists. For each therapist, provide a detailed
explanation of why they would be a good match considering factors like location,
specialties, language, session format, insurance, and budget compatibility.

IMPORTANT: Use the exact therapist IDs from the list above in your response.

Return the result as a JSON array with this structure:
[{
  "id": "exact_therapist_id_from_list",
  "name": "therapist_name",
  "reason": "detailed matching explanation"
}]`)

	return b.String()
}

func textOr(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func listOr(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func budgetOr(v float64, def string) string {
	if v == 0 {
		return def
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func ratingOr(v *float64, def string) string {
	if v == nil {
		return def
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
