// Package scaffold materializes the workspace the installed software runs
// from: compose manifest, env file, launcher script.
package scaffold

import "path/filepath"

// Workspace file names.
const (
	WorkDirName      = "workspace"
	ComposeFileName  = "docker-compose.yml"
	EnvFileName      = ".env"
	LauncherFileName = "start-claude.sh"
)

// EnvKey is the credential variable every artifact refers to.
const EnvKey = "ANTHROPIC_API_KEY"

// PlaceholderValue is the literal default written to the env file before a
// real credential is supplied.
const PlaceholderValue = "your-api-key-here"

// Layout names every path the scaffolder owns.
type Layout struct {
	Root     string
	WorkDir  string
	Compose  string
	EnvFile  string
	Launcher string
}

// NewLayout builds the layout under the given workspace root.
func NewLayout(root string) Layout {
	return Layout{
		Root:     root,
		WorkDir:  filepath.Join(root, WorkDirName),
		Compose:  filepath.Join(root, ComposeFileName),
		EnvFile:  filepath.Join(root, EnvFileName),
		Launcher: filepath.Join(root, LauncherFileName),
	}
}
