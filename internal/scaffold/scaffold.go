package scaffold

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/piforge/claudeup/internal/ports"
	"github.com/piforge/claudeup/internal/validation"
)

// envFileBody is the placeholder env file. Written literally so the
// comment survives; parsing uses godotenv.
const envFileBody = "# Paste your Anthropic API key below\n" +
	EnvKey + "=" + PlaceholderValue + "\n"

// Scaffolder materializes the workspace layout on disk, deterministically
// and without consulting any state beyond what is already there.
type Scaffolder struct {
	layout Layout
	image  string
	user   string
	fs     ports.FileSystem
	runner ports.CommandRunner
	logger ports.Logger
}

// NewScaffolder creates a Scaffolder for the given workspace root.
func NewScaffolder(root, image, user string, fs ports.FileSystem, runner ports.CommandRunner, logger ports.Logger) *Scaffolder {
	return &Scaffolder{
		layout: NewLayout(root),
		image:  image,
		user:   user,
		fs:     fs,
		runner: runner,
		logger: logger,
	}
}

// Layout returns the paths the scaffolder owns.
func (s *Scaffolder) Layout() Layout {
	return s.layout
}

// Materialize writes the workspace: directories, compose manifest,
// env file and launcher. The compose manifest and launcher are rewritten
// on every run; the env file is preserved once it holds a real key.
func (s *Scaffolder) Materialize(ctx context.Context) error {
	if err := s.fs.MkdirAll(s.layout.WorkDir, 0o755); err != nil {
		return fmt.Errorf("creating workspace: %w", err)
	}

	compose, err := RenderCompose(s.image)
	if err != nil {
		return err
	}
	if err := s.fs.WriteFile(s.layout.Compose, compose, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", ComposeFileName, err)
	}

	if err := s.writeEnvFile(ctx); err != nil {
		return err
	}

	launcher, err := RenderLauncher()
	if err != nil {
		return err
	}
	if err := s.fs.WriteFile(s.layout.Launcher, launcher, 0o755); err != nil {
		return fmt.Errorf("writing %s: %w", LauncherFileName, err)
	}
	// WriteFile only applies the mode on creation.
	if err := s.fs.Chmod(s.layout.Launcher, 0o755); err != nil {
		return fmt.Errorf("marking launcher executable: %w", err)
	}

	s.logger.Info(ctx, "workspace materialized", ports.F("root", s.layout.Root))
	return nil
}

// writeEnvFile writes the placeholder env file unless a previous run
// already stored a real credential in it.
func (s *Scaffolder) writeEnvFile(ctx context.Context) error {
	if s.HasRealKey() {
		s.logger.Debug(ctx, "env file already configured, leaving untouched",
			ports.F("path", s.layout.EnvFile))
		return nil
	}
	if err := s.fs.WriteFile(s.layout.EnvFile, []byte(envFileBody), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", EnvFileName, err)
	}
	return nil
}

// HasRealKey reports whether the env file exists and carries a
// non-placeholder credential.
func (s *Scaffolder) HasRealKey() bool {
	data, err := s.fs.ReadFile(s.layout.EnvFile)
	if err != nil {
		return false
	}
	values, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return false
	}
	key := values[EnvKey]
	return key != "" && key != PlaceholderValue
}

// FixOwnership hands the workspace tree to the invoking user. Everything
// before this ran as root.
func (s *Scaffolder) FixOwnership(ctx context.Context) error {
	if err := validation.ValidateUsername(s.user); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}
	if err := validation.ValidatePath(s.layout.Root); err != nil {
		return fmt.Errorf("invalid workspace path: %w", err)
	}

	result, err := s.runner.Run(ctx, "chown", "-R", s.user+":"+s.user, s.layout.Root)
	if err != nil {
		return fmt.Errorf("chown workspace: %w", err)
	}
	if !result.Success() {
		return fmt.Errorf("chown workspace exited %d: %s", result.ExitCode, result.Tail(600))
	}
	return nil
}
