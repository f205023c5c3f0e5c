// Package prompt provides interactive input adapters.
package prompt

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/piforge/claudeup/internal/ports"
)

// HuhPrompter collects a secret through a masked terminal form. When
// stdin is not a terminal it declines silently so unattended runs never
// hang on input.
type HuhPrompter struct{}

// NewHuhPrompter creates a new HuhPrompter.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

// PromptSecret asks for a secret once. An empty answer, Ctrl-C, or a
// non-terminal stdin all yield an empty string without error.
func (p *HuhPrompter) PromptSecret(ctx context.Context, title, description string) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", nil
	}

	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				EchoMode(huh.EchoModePassword).
				Value(&value),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}

	return strings.TrimSpace(value), nil
}

// Ensure HuhPrompter implements ports.SecretPrompter.
var _ ports.SecretPrompter = (*HuhPrompter)(nil)
