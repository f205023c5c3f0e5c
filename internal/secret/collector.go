// Package secret collects the API credential and persists it.
package secret

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"

	"github.com/piforge/claudeup/internal/ports"
	"github.com/piforge/claudeup/internal/scaffold"
)

const (
	promptTitle       = "Anthropic API key"
	promptDescription = "Get yours at https://console.anthropic.com (Enter to skip)"
)

// Result reports what the collector did.
type Result struct {
	// Saved is true when a non-empty key was written.
	Saved bool
	// ProfileUpdated is true when the shell profile received the export.
	ProfileUpdated bool
}

// Collector prompts once for the API key and persists it to the env file
// and the invoking user's shell profile.
type Collector struct {
	envPath     string
	profilePath string
	prompter    ports.SecretPrompter
	fs          ports.FileSystem
	logger      ports.Logger
}

// NewCollector creates a Collector.
func NewCollector(envPath, profilePath string, prompter ports.SecretPrompter, fs ports.FileSystem, logger ports.Logger) *Collector {
	return &Collector{
		envPath:     envPath,
		profilePath: profilePath,
		prompter:    prompter,
		fs:          fs,
		logger:      logger,
	}
}

// Collect runs the prompt and persists a non-empty answer. Declining
// leaves the placeholder in place and modifies no files.
func (c *Collector) Collect(ctx context.Context) (Result, error) {
	key, err := c.prompter.PromptSecret(ctx, promptTitle, promptDescription)
	if err != nil {
		return Result{}, fmt.Errorf("reading API key: %w", err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		c.logger.Info(ctx, "no API key entered, keeping placeholder")
		return Result{}, nil
	}

	if err := c.writeEnvFile(key); err != nil {
		return Result{}, err
	}

	updated, err := c.appendToProfile(key)
	if err != nil {
		return Result{Saved: true}, err
	}

	return Result{Saved: true, ProfileUpdated: updated}, nil
}

// writeEnvFile replaces the env file with exactly the supplied credential.
func (c *Collector) writeEnvFile(key string) error {
	content, err := godotenv.Marshal(map[string]string{scaffold.EnvKey: key})
	if err != nil {
		return fmt.Errorf("encoding env file: %w", err)
	}
	if err := c.fs.WriteFile(c.envPath, []byte(content+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing env file: %w", err)
	}
	return nil
}

// appendToProfile adds the export to the shell profile unless the file
// already declares the variable. The guard is a substring check, not a
// parse; it keeps repeated runs from stacking duplicate exports.
func (c *Collector) appendToProfile(key string) (bool, error) {
	existing, err := c.fs.ReadFile(c.profilePath)
	if err != nil && c.fs.Exists(c.profilePath) {
		return false, fmt.Errorf("reading shell profile: %w", err)
	}
	if strings.Contains(string(existing), scaffold.EnvKey) {
		return false, nil
	}

	block := fmt.Sprintf("\n# Anthropic API Key\nexport %s=%q\n", scaffold.EnvKey, key)
	if err := c.fs.AppendFile(c.profilePath, []byte(block), 0o644); err != nil {
		return false, fmt.Errorf("appending to shell profile: %w", err)
	}
	return true, nil
}
