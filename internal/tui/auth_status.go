package tui

import (
	"errors"
	"fmt"

	"sondreal/domctl/internal/services/auth"
	"sondreal/domctl/internal/tui/components"
	"sondreal/domctl/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Credential status ---

type credentialStatus struct {
	label  string
	status string // "stored", "not stored", or error message
	ok     bool
}

// --- Auth status model ---

type authStatusModel struct {
	store auth.Store

	statuses []credentialStatus

	width  int
	height int
}

// RunAuthStatus starts the full-window auth status TUI.
func RunAuthStatus(store auth.Store) error {
	keys := []struct {
		label string
		key   string
	}{
		{"API token", auth.KeyToken},
		{"API secret", auth.KeySecret},
	}

	statuses := make([]credentialStatus, 0, len(keys))
	for _, k := range keys {
		_, err := store.Get(k.key)
		switch {
		case err == nil:
			statuses = append(statuses, credentialStatus{label: k.label, status: "stored", ok: true})
		case errors.Is(err, auth.ErrCredentialNotFound):
			statuses = append(statuses, credentialStatus{label: k.label, status: "not stored", ok: false})
		default:
			statuses = append(statuses, credentialStatus{label: k.label, status: fmt.Sprintf("error: %v", err), ok: false})
		}
	}

	m := authStatusModel{
		store:    store,
		statuses: statuses,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m authStatusModel) Init() tea.Cmd {
	return nil
}

func (m authStatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m authStatusModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "auth status", "")
	footerBindings := []components.KeyBinding{
		{Key: "q", Desc: "quit"},
	}
	footer := components.Footer(m.width, footerBindings)

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	contentH := m.height - headerH - footerH
	if contentH < 1 {
		contentH = 1
	}

	content := m.renderContent(contentH)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m authStatusModel) renderContent(height int) string {
	title := styles.Title.Render("API Credentials")

	cardWidth := 48
	labelWidth := 16

	rows := make([]string, 0, len(m.statuses))
	for _, cs := range m.statuses {
		labelStyle := styles.Label.Width(labelWidth)
		label := labelStyle.Render(cs.label)

		var statusText string
		if cs.ok {
			statusText = styles.SuccessText.Render(cs.status)
		} else {
			statusText = styles.MutedText.Render(cs.status)
		}

		rows = append(rows, label+statusText)
	}

	content := ""
	for i, row := range rows {
		content += row
		if i < len(rows)-1 {
			content += "\n"
		}
	}

	card := styles.Card.Width(cardWidth).Render(content)

	combined := lipgloss.JoinVertical(lipgloss.Center, title, "", card)

	return lipgloss.Place(
		m.width, height,
		lipgloss.Center, lipgloss.Center,
		combined,
	)
}
