package domain

// Placeholder values used when the model output or grounding metadata
// leaves a field empty.
const (
	// DefaultArticleTitle is used when a segment has no title line.
	DefaultArticleTitle = "Actualité"

	// DefaultCitationTitle is used when a grounding chunk has no title.
	DefaultCitationTitle = "Source Certifiée"

	// DefaultCitationURL is used when a citation has no link.
	DefaultCitationURL = "#"

	// DirectTimestamp marks articles built from unstructured model output.
	DirectTimestamp = "direct"
)

// Citation is a web source returned alongside a grounded completion.
type Citation struct {
	// Title is the page title reported by the search backend.
	Title string `json:"title"`

	// URL is the link to the source page.
	URL string `json:"url"`
}

// NewCitation builds a citation, substituting placeholders for empty fields.
func NewCitation(title, url string) Citation {
	if title == "" {
		title = DefaultCitationTitle
	}
	if url == "" {
		url = DefaultCitationURL
	}
	return Citation{Title: title, URL: url}
}

// DisplayName returns the short outlet name shown on article cards.
func (c Citation) DisplayName() string {
	return SourceDisplayName(c.Title)
}

// Article is a single news card parsed from a model completion.
// Articles are created fresh on every search and never mutated afterwards.
type Article struct {
	// ID is unique within one batch of results.
	ID string `json:"id"`

	// Title is never empty; DefaultArticleTitle when unparsed.
	Title string `json:"title"`

	// Summary is free text and may be empty.
	Summary string `json:"summary"`

	// Category is always a member of the closed label set.
	Category Category `json:"category"`

	// Sources are the citations assigned to this article.
	Sources []Citation `json:"sources"`

	// Timestamp is the local HH:MM display time, or DirectTimestamp.
	Timestamp string `json:"timestamp"`
}

// IsDirect reports whether the article was built from unstructured output.
func (a Article) IsDirect() bool {
	return a.Timestamp == DirectTimestamp
}
