package ports

import "context"

// SecretPrompter asks the user for a sensitive value exactly once.
// Implementations return an empty string when the user declines.
type SecretPrompter interface {
	PromptSecret(ctx context.Context, title, description string) (string, error)
}
