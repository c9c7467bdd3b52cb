package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI output styles for consistent genc-themed terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"}).Bold(true)
	cliBorder  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}).
			Padding(0, 2)
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symWarning() string { return cliWarn.Render("!") }

// kvPair is a single key/value line in a rendered card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders aligned "Key:  value" lines with muted keys.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}

	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		key := fmt.Sprintf("%-*s", width+1, p.key+":")
		lines = append(lines, cliMuted.Render(key)+" "+p.value)
	}
	return strings.Join(lines, "\n")
}

// renderCard renders a titled, bordered card around the given body.
func renderCard(title, body string) string {
	return cliBorder.Render(cliPrimary.Render(title) + "\n\n" + body)
}

// renderSuccessCard renders a card with a success checkmark in the title.
func renderSuccessCard(title string, details ...string) string {
	return renderCard(symSuccess()+" "+title, strings.Join(details, "\n"))
}
