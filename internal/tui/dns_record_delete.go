package tui

import (
	"fmt"
	"strings"

	"sondreal/domctl/internal/domeneshop"
	"sondreal/domctl/internal/tui/components"
	"sondreal/domctl/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dnsRecordDeleteModel struct {
	domainName string
	record     domeneshop.Record

	confirmIdx int // 0 = Delete, 1 = Cancel

	width  int
	height int
}

func newDNSRecordDeleteModel(domainName string, rec domeneshop.Record, width, height int) dnsRecordDeleteModel {
	return dnsRecordDeleteModel{
		domainName: domainName,
		record:     rec,
		confirmIdx: 1, // Default to Cancel for safety
		width:      width,
		height:     height,
	}
}

func (m dnsRecordDeleteModel) Init() tea.Cmd {
	return nil
}

func (m dnsRecordDeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return dnsNavigateBackMsg{} }
		case "left", "h":
			if m.confirmIdx > 0 {
				m.confirmIdx--
			}
		case "right", "l":
			if m.confirmIdx < 1 {
				m.confirmIdx++
			}
		case "enter":
			if m.confirmIdx == 1 {
				// Cancel
				return m, func() tea.Msg { return dnsNavigateBackMsg{} }
			}
			// Delete
			return m, func() tea.Msg { return dnsDeleteConfirmedMsg{record: m.record} }
		}
	}

	return m, nil
}

func (m dnsRecordDeleteModel) View() string {
	header := components.Header(m.width, "dns > delete", m.domainName)

	bindings := []components.KeyBinding{
		{Key: "←/→", Desc: "select"},
		{Key: "enter", Desc: "confirm"},
		{Key: "esc", Desc: "cancel"},
	}
	footer := components.Footer(m.width, bindings)

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	contentH := m.height - headerH - footerH
	if contentH < 1 {
		contentH = 1
	}

	content := lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.renderCard())

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m dnsRecordDeleteModel) renderCard() string {
	title := lipgloss.NewStyle().Foreground(styles.Red).Bold(true).Render("Delete DNS Record")

	r := m.record

	fields := []string{
		lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("Host")), styles.Value.Render(r.Host)),
		lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("Type")), styles.Value.Render(string(r.Type))),
		lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("Data")), styles.Value.Render(r.Data)),
		lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("TTL")), styles.Value.Render(fmt.Sprintf("%d", r.TTL))),
	}

	warning := styles.ErrorText.Render("This action cannot be undone.")

	// Buttons
	delBtn := "[ Delete ]"
	canBtn := "[ Cancel ]"

	if m.confirmIdx == 0 {
		delBtn = lipgloss.NewStyle().Foreground(styles.White).Background(styles.Red).Render(delBtn)
		canBtn = styles.MutedText.Render(canBtn)
	} else {
		delBtn = lipgloss.NewStyle().Foreground(styles.Red).Render(delBtn)
		canBtn = lipgloss.NewStyle().Foreground(styles.White).Background(styles.Gray).Render(canBtn)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, delBtn, "  ", canBtn)

	cardContent := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		strings.Join(fields, "\n"),
		"",
		warning,
	)

	// Make the card border red
	cardStyle := styles.Card.BorderForeground(styles.Red)

	return lipgloss.JoinVertical(lipgloss.Center, cardStyle.Render(cardContent), "", buttons)
}
