package domain

import "strings"

// TrustedOutlets are the news organisations the model is asked to prioritise.
var TrustedOutlets = []string{"BBC", "RFI", "France 24", "Jeune Afrique", "Reuters", "AP"}

// knownOutlets are matched against citation titles to build short labels.
var knownOutlets = []string{"BBC", "RFI", "France 24", "Reuters", "Jeune Afrique", "AP", "Al Jazeera", "Le Monde"}

// SourceDisplayName shortens a citation title to a recognisable outlet name.
// A known outlet contained in the title wins, then the first word of the
// title, then the literal "Source".
func SourceDisplayName(title string) string {
	lower := strings.ToLower(title)
	for _, outlet := range knownOutlets {
		if strings.Contains(lower, strings.ToLower(outlet)) {
			return outlet
		}
	}
	if fields := strings.Fields(title); len(fields) > 0 {
		return fields[0]
	}
	return "Source"
}
