package domain

// Suggestions returns the topics offered as one-click searches.
// The first entry is searched automatically when the TUI starts.
func Suggestions() []string {
	return []string{
		"Situation au Burkina Faso",
		"Économie UEMOA",
		"Sécurité Sahel",
		"Tech à Dakar",
	}
}
