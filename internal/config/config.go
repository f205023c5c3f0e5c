// Package config holds the provisioner's settings and user-facing errors.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults for a stock Raspberry Pi OS install.
const (
	DefaultUser         = "pi"
	DefaultWorkspaceDir = "claude-workspace"
	DefaultNodeMinMajor = 18
	DefaultNodeSetupURL = "https://deb.nodesource.com/setup_20.x"
	DefaultComposeImage = "node:20-slim"
	DefaultProbeHost    = "google.com"
	DefaultShellProfile = ".bashrc"
)

// Config carries every tunable of the setup workflow. The zero value is not
// usable; start from Default() and layer file and flag overrides on top.
type Config struct {
	// User is the non-root account the workspace belongs to.
	User string `yaml:"user"`
	// WorkspaceDir is the workspace folder name under the user's home.
	WorkspaceDir string `yaml:"workspace_dir"`
	// NodeMinMajor is the minimum acceptable Node.js major version.
	NodeMinMajor int `yaml:"node_min_major"`
	// NodeSetupURL is the NodeSource repository setup script.
	NodeSetupURL string `yaml:"node_setup_url"`
	// ComposeImage is the container image the generated manifest runs.
	ComposeImage string `yaml:"compose_image"`
	// ProbeHost is pinged once during preflight.
	ProbeHost string `yaml:"probe_host"`
	// ShellProfile is the profile file (relative to the user's home) that
	// receives the exported API key.
	ShellProfile string `yaml:"shell_profile"`
	// SkipUpgrade skips the apt-get upgrade pass.
	SkipUpgrade bool `yaml:"skip_upgrade"`
}

// Default returns the stock configuration with the invoking user detected
// from the environment.
func Default() Config {
	return Config{
		User:         InvokingUser(),
		WorkspaceDir: DefaultWorkspaceDir,
		NodeMinMajor: DefaultNodeMinMajor,
		NodeSetupURL: DefaultNodeSetupURL,
		ComposeImage: DefaultComposeImage,
		ProbeHost:    DefaultProbeHost,
		ShellProfile: DefaultShellProfile,
	}
}

// InvokingUser returns the non-root account on whose behalf the tool was
// launched via sudo, falling back to the stock Pi account.
func InvokingUser() string {
	if u := os.Getenv("SUDO_USER"); u != "" {
		return u
	}
	return DefaultUser
}

// HomeDir returns the home directory of the configured user.
func (c Config) HomeDir() string {
	if c.User == "root" {
		return "/root"
	}
	return filepath.Join("/home", c.User)
}

// WorkspaceRoot returns the absolute workspace path.
func (c Config) WorkspaceRoot() string {
	return filepath.Join(c.HomeDir(), c.WorkspaceDir)
}

// ProfilePath returns the absolute path of the user's shell profile.
func (c Config) ProfilePath() string {
	return filepath.Join(c.HomeDir(), c.ShellProfile)
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	if c.User == "" {
		return NewUserError(ErrCodeConfigInvalid, "user must not be empty")
	}
	if c.WorkspaceDir == "" {
		return NewUserError(ErrCodeConfigInvalid, "workspace_dir must not be empty")
	}
	if c.NodeMinMajor < 1 {
		return NewUserError(ErrCodeConfigInvalid,
			fmt.Sprintf("node_min_major must be positive, got %d", c.NodeMinMajor))
	}
	return nil
}

// Load reads path and overlays its values on top of base. A missing file is
// not an error; the base configuration is returned unchanged.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, NewUserError(ErrCodeConfigParse, "could not read config file").
			WithContext(path).WithUnderlying(err)
	}
	return Parse(data, base)
}

// Parse overlays YAML data on top of base.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, NewUserError(ErrCodeConfigParse, "config file is not valid YAML").
			WithSuggestion("check the file for tabs or unclosed quotes").
			WithUnderlying(err)
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// DefaultPath returns the conventional config file location for the
// invoking user.
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", "claudeup", "claudeup.yaml")
}
