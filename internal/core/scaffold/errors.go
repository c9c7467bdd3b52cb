// Package scaffold implements project generation for the "genc new" CLI
// command: deriving the project token, building the directory tree,
// initializing the git repository, emitting rendered templates, and
// registering framework submodules as a strictly sequential pipeline.
package scaffold

import "errors"

// Sentinel errors for the scaffold package.
var (
	// ErrTargetExists indicates the target directory already exists and
	// --delete was not given.
	ErrTargetExists = errors.New("target directory already exists")

	// ErrEmptyName indicates an empty project name was supplied.
	ErrEmptyName = errors.New("project name must not be empty")

	// ErrEmptyDir indicates an empty target directory was supplied.
	ErrEmptyDir = errors.New("target directory must not be empty")
)
