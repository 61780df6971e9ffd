package components

import (
	"sondreal/domctl/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders a status message line between the content and footer.
// Long messages (record data in API errors, typically) are truncated to
// the window width so the bar stays a single line.
func StatusBar(width int, message string, isError bool) string {
	if message == "" {
		return ""
	}

	if width > 8 && lipgloss.Width(message) > width-4 {
		message = ansi.Truncate(message, width-7, "...")
	}

	style := styles.MutedText
	if isError {
		style = styles.ErrorText
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render(style.Render(message))
}
