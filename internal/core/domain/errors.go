package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input, such as an empty topic.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates the completion credential is missing or still
	// the placeholder value. It is raised before any network call and is never retried.
	ErrNotConfigured = errors.New("completion service not configured")

	// ErrServiceUnavailable indicates both the grounded attempt and the
	// ungrounded fallback failed.
	ErrServiceUnavailable = errors.New("completion service unavailable")

	// ErrEmptyResponse indicates the service answered without any text.
	ErrEmptyResponse = errors.New("completion service produced no content")

	// ErrUnsupportedProvider indicates an unknown completion provider name.
	ErrUnsupportedProvider = errors.New("unsupported provider")
)

// User-facing messages shown by the rendering layers.
const (
	MessageNotConfigured      = "Clé API manquante : configurez GEMINI_API_KEY ou lancez 'stonynews settings set-key'."
	MessageServiceUnavailable = "Erreur de liaison avec les agences de presse. Réessayez."
	MessageEmptyResponse      = "Les agences de presse n'ont renvoyé aucun contenu. Réessayez."
	MessageInvalidInput       = "Veuillez saisir un sujet de recherche."
	MessageGeneric            = "Erreur de connexion aux serveurs de presse."
)

// UserMessage maps an error to the single human-readable message shown to the user.
// Returns an empty string for a nil error.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotConfigured):
		return MessageNotConfigured
	case errors.Is(err, ErrServiceUnavailable):
		return MessageServiceUnavailable
	case errors.Is(err, ErrEmptyResponse):
		return MessageEmptyResponse
	case errors.Is(err, ErrInvalidInput):
		return MessageInvalidInput
	default:
		return MessageGeneric
	}
}
