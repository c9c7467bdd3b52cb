// Package config loads the optional genc defaults file (~/.config/genc/config.yaml).
// The file overrides built-in defaults for the initial branch name, the
// framework submodule sources, and the scaffold toggles; command-line flags
// override the file in turn.
package config

import "errors"

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the defaults file failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidYAML indicates invalid YAML syntax in the defaults file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrFileTooLarge indicates the defaults file exceeds the size limit.
	ErrFileTooLarge = errors.New("config: file exceeds size limit")
)
