// Package validation provides input validation utilities to prevent
// command injection through values that end up on an argument vector.
package validation

import (
	"errors"
	"fmt"
	"regexp"
)

// Common validation errors.
var (
	ErrEmptyInput         = errors.New("input cannot be empty")
	ErrInvalidPackageName = errors.New("invalid package name")
	ErrInvalidNpmPackage  = errors.New("invalid npm package name")
	ErrInvalidPipPackage  = errors.New("invalid pip package name")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidPath        = errors.New("invalid path")
)

var (
	// packageNameRegex matches valid apt package names: alphanumeric,
	// hyphens, underscores, dots, plus. Examples: "git", "python3-pip", "g++"
	packageNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._+-]*$`)

	// npmPackageRegex matches plain and scoped npm package names.
	// Examples: "typescript", "@anthropic-ai/claude-code"
	npmPackageRegex = regexp.MustCompile(`^(@[a-z0-9][a-z0-9._-]*/)?[a-z0-9][a-z0-9._-]*$`)

	// usernameRegex matches POSIX usernames. Examples: "pi", "deploy-1"
	usernameRegex = regexp.MustCompile(`^[a-z_][a-z0-9_-]*\$?$`)

	// pathRegex rejects characters a shell would interpret, for paths that
	// are passed to commands like chown.
	pathRegex = regexp.MustCompile(`^[a-zA-Z0-9._/~-]+$`)
)

// ValidatePackageName checks that name is a safe apt package name.
func ValidatePackageName(name string) error {
	if name == "" {
		return ErrEmptyInput
	}
	if !packageNameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidPackageName, name)
	}
	return nil
}

// ValidateNpmPackage checks that name is a safe npm package name,
// including scoped packages.
func ValidateNpmPackage(name string) error {
	if name == "" {
		return ErrEmptyInput
	}
	if !npmPackageRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidNpmPackage, name)
	}
	return nil
}

// ValidatePipPackage checks that name is a safe pip package name.
func ValidatePipPackage(name string) error {
	if name == "" {
		return ErrEmptyInput
	}
	if !packageNameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidPipPackage, name)
	}
	return nil
}

// ValidateUsername checks that name is a safe POSIX username. The invoking
// user comes from the environment, so it is validated before being placed
// on any argument vector.
func ValidateUsername(name string) error {
	if name == "" {
		return ErrEmptyInput
	}
	if len(name) > 32 || !usernameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidUsername, name)
	}
	return nil
}

// ValidatePath checks that path contains no shell metacharacters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyInput
	}
	if !pathRegex.MatchString(path) {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return nil
}
