package mocks

import (
	"context"

	"github.com/piforge/claudeup/internal/ports"
)

// SecretPrompter is a test double for ports.SecretPrompter that returns a
// canned value and records how often it was invoked.
type SecretPrompter struct {
	Secret string
	Err    error
	Calls  int
}

// NewSecretPrompter creates a prompter that answers with secret.
func NewSecretPrompter(secret string) *SecretPrompter {
	return &SecretPrompter{Secret: secret}
}

func (p *SecretPrompter) PromptSecret(_ context.Context, _, _ string) (string, error) {
	p.Calls++
	if p.Err != nil {
		return "", p.Err
	}
	return p.Secret, nil
}

var _ ports.SecretPrompter = (*SecretPrompter)(nil)
