package git

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// localOpTimeout bounds git operations that touch only the local filesystem.
// Submodule registration performs a network fetch and runs under the caller's
// context instead.
const localOpTimeout = 30 * time.Second

// Manager runs git commands against scaffolded project directories. The
// directory is passed per call because it does not exist until the scaffold
// pipeline creates it.
type Manager struct {
	logger *slog.Logger
}

// NewManager creates a Manager. A nil logger discards all log output.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{logger: logger.With("module", "git")}
}

// InitRepository initializes a git repository at dir and checks out a fresh
// branch with the given name as the active branch.
func (m *Manager) InitRepository(ctx context.Context, dir, branch string) error {
	m.logger.Debug("initializing repository", "dir", dir, "branch", branch)

	ctx, cancel := context.WithTimeout(ctx, localOpTimeout)
	defer cancel()

	if _, err := execGit(ctx, dir, "init"); err != nil {
		return fmt.Errorf("init repository at %s: %w", dir, err)
	}

	if _, err := execGit(ctx, dir, "checkout", "-b", branch); err != nil {
		return fmt.Errorf("checkout branch %q: %w", branch, err)
	}

	m.logger.Debug("repository initialized", "dir", dir, "branch", branch)
	return nil
}

// AddSubmodule registers the repository at url as a submodule of the
// repository at dir, pinned at relPath. This performs a network fetch; the
// caller's context governs cancellation.
func (m *Manager) AddSubmodule(ctx context.Context, dir, url, relPath string) error {
	m.logger.Debug("adding submodule", "dir", dir, "url", url, "path", relPath)

	if _, err := execGit(ctx, dir, "submodule", "add", url, relPath); err != nil {
		return fmt.Errorf("add submodule %s at %s: %w", url, relPath, err)
	}

	m.logger.Debug("submodule added", "path", relPath)
	return nil
}

// execGit executes a git command in the given directory and returns stdout.
// It sets GIT_TERMINAL_PROMPT=0 and LC_ALL=C for consistent behavior.
func execGit(ctx context.Context, dir string, args ...string) (string, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("system git lookup: %w", ErrSystemGitNotFound)
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}

	return strings.TrimSpace(stdout.String()), nil
}
