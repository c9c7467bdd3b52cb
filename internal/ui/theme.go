// Package ui provides terminal progress reporting for scaffold runs: an
// animated progress bar on interactive terminals and plain log lines when
// output is piped or stdin is not a TTY.
package ui

import "os"

// ColorPalette holds the theme colors used by interactive components.
type ColorPalette struct {
	Primary   string
	Secondary string
}

// Theme configures the visual appearance of UI components.
type Theme struct {
	NoColor bool
	Colors  ColorPalette
}

// DefaultTheme returns the standard genc theme. NO_COLOR in the environment
// disables all color output.
func DefaultTheme() *Theme {
	return &Theme{
		NoColor: os.Getenv("NO_COLOR") != "",
		Colors: ColorPalette{
			Primary:   "#DA7756",
			Secondary: "#10B981",
		},
	}
}
