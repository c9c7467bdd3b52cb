package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Run executes the wizard, seeded with defaults, and returns the collected
// values. Returns ErrCancelled if the user aborts.
func Run(defaults Result) (*Result, error) {
	result := defaults

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Mixed-case names become snake_case folder tokens (MyProject -> my_project)").
				Validate(validateNotEmpty("project name")).
				Value(&result.Name),
			huh.NewInput().
				Title("Target directory").
				Description("Base directory for the new project").
				Validate(validateNotEmpty("target directory")).
				Value(&result.Dir),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Include GoogleTest scaffold?").
				Value(&result.Tests),
			huh.NewConfirm().
				Title("Include Google Benchmark scaffold?").
				Value(&result.Benchmark),
			huh.NewConfirm().
				Title("Delete the target directory if it already exists?").
				Value(&result.Delete),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("wizard error: %w", err)
	}

	return &result, nil
}

// validateNotEmpty rejects blank input for the named field.
func validateNotEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}
