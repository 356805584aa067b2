package driven

// PromptStore provides access to prompt templates.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a sensible default
	// or an error, depending on whether the prompt is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names.
const (
	// PromptNewsSystem is the system instruction describing the strict output
	// grammar and the editorial policy. It has no format placeholders.
	PromptNewsSystem = "news_system"

	// PromptNewsUser is the user turn. It expects one %s placeholder for the topic.
	PromptNewsUser = "news_user"
)
