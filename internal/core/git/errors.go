// Package git wraps the system git binary for repository initialization,
// branch setup, and submodule registration in freshly scaffolded projects.
package git

import "errors"

// ErrSystemGitNotFound indicates the git binary is not on PATH.
var ErrSystemGitNotFound = errors.New("git: system git binary not found")
