package tui

import (
	"fmt"
	"strconv"

	"sondreal/domctl/internal/domeneshop"
	"sondreal/domctl/internal/tui/components"
	"sondreal/domctl/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dnsRecordShowModel struct {
	record     domeneshop.Record
	domainName string
	width      int
	height     int
}

func newDNSRecordShowModel(record domeneshop.Record, domainName string, width, height int) dnsRecordShowModel {
	return dnsRecordShowModel{
		record:     record,
		domainName: domainName,
		width:      width,
		height:     height,
	}
}

func (m dnsRecordShowModel) Init() tea.Cmd {
	return nil
}

func (m dnsRecordShowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace", "left", "h", "q":
			return m, func() tea.Msg { return dnsNavigateBackMsg{} }
		case "e":
			return m, func() tea.Msg { return dnsNavigateToRecordEditMsg{record: m.record} }
		case "d":
			return m, func() tea.Msg { return dnsNavigateToRecordDeleteMsg{record: m.record} }
		}
	}

	return m, nil
}

func (m dnsRecordShowModel) View() string {
	breadcrumb := fmt.Sprintf("dns > %s > %s", m.domainName, m.record.Host)
	header := components.Header(m.width, breadcrumb, m.domainName)

	bindings := []components.KeyBinding{
		{Key: "e", Desc: "edit"},
		{Key: "d", Desc: "delete"},
		{Key: "esc", Desc: "back"},
	}
	footer := components.Footer(m.width, bindings)

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	contentH := m.height - headerH - footerH
	if contentH < 1 {
		contentH = 1
	}

	content := m.renderCard()

	// Center horizontally and vertically
	content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m dnsRecordShowModel) renderCard() string {
	r := m.record

	titleRow := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.Title.Render(r.Host),
		"  ",
		recordTypeStyle(r.Type).Render(string(r.Type)),
	)

	optInt := func(p *int) string {
		if p == nil {
			return "—"
		}
		return strconv.Itoa(*p)
	}

	// Detail grid
	fields := []struct {
		label string
		val   string
	}{
		{"ID", strconv.Itoa(r.ID)},
		{"Host", r.Host},
		{"Type", string(r.Type)},
		{"Data", r.Data},
		{"TTL", strconv.Itoa(r.TTL)},
	}

	switch r.Type {
	case domeneshop.TypeMX:
		fields = append(fields, struct {
			label string
			val   string
		}{"Priority", optInt(r.Priority)})
	case domeneshop.TypeSRV:
		fields = append(fields,
			struct {
				label string
				val   string
			}{"Priority", optInt(r.Priority)},
			struct {
				label string
				val   string
			}{"Weight", optInt(r.Weight)},
			struct {
				label string
				val   string
			}{"Port", optInt(r.Port)},
		)
	}

	var gridRows []string
	gridRows = append(gridRows, titleRow, "") // Title + empty line

	for _, f := range fields {
		row := lipgloss.JoinHorizontal(lipgloss.Left,
			lipgloss.NewStyle().Width(12).Render(styles.Label.Render(f.label)),
			styles.Value.Render(f.val),
		)
		gridRows = append(gridRows, row)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, gridRows...)
	return styles.Card.Render(content)
}
