package driven

// ConfigStore holds the settings keys ("llm.provider", "llm.api_key", ...).
// The file adapter writes through to TOML on every Set; the memory adapter
// keeps values for the life of the process.
type ConfigStore interface {
	// Get returns the raw value and whether the key is present.
	Get(key string) (any, bool)

	// GetString returns the value if it is a string, "" otherwise.
	GetString(key string) string

	// GetInt returns the value if it is an integer, 0 otherwise.
	GetInt(key string) int

	// Set stores value under key.
	Set(key string, value any) error

	// Load re-reads the backing storage.
	Load() error

	// Path is the backing file, or a placeholder when there is none.
	Path() string
}
