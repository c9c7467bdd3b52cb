// Package wizard provides the interactive prompt flow used by "genc new"
// when required flags are missing and stdin is a terminal.
package wizard

import "errors"

// ErrCancelled indicates the user aborted the wizard.
var ErrCancelled = errors.New("wizard cancelled by user")

// Result holds the values collected by the wizard.
type Result struct {
	Name      string // project name
	Dir       string // target base directory
	Tests     bool   // include the GoogleTest scaffold
	Benchmark bool   // include the Google Benchmark scaffold
	Delete    bool   // delete an existing target directory
}
