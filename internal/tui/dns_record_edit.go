package tui

import (
	"fmt"
	"strconv"
	"strings"

	"sondreal/domctl/internal/domeneshop"
	"sondreal/domctl/internal/tui/components"
	"sondreal/domctl/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dnsRecordEditModel struct {
	domainName string
	record     domeneshop.Record
	data       domeneshop.RecordData

	step dnsCreateStep // Reuse the same steps as create

	// Text inputs
	inputs map[dnsCreateStep]textinput.Model

	width  int
	height int
}

func newDNSRecordEditModel(domainName string, record domeneshop.Record, width, height int) dnsRecordEditModel {
	inputs := make(map[dnsCreateStep]textinput.Model)

	// Host input
	hostIn := textinput.New()
	hostIn.Placeholder = "e.g. www (@ for the root)"
	hostIn.SetValue(record.Host)
	inputs[dnsCreateStepHost] = hostIn

	// Data input
	dataIn := textinput.New()
	dataIn.Placeholder = "e.g. 203.0.113.7"
	dataIn.SetValue(record.Data)
	inputs[dnsCreateStepData] = dataIn

	// TTL input
	ttlIn := textinput.New()
	ttlIn.Placeholder = "e.g. 3600"
	if record.TTL > 0 {
		ttlIn.SetValue(strconv.Itoa(record.TTL))
	}
	inputs[dnsCreateStepTTL] = ttlIn

	// Priority input
	prioIn := textinput.New()
	prioIn.Placeholder = "e.g. 10"
	if record.Priority != nil {
		prioIn.SetValue(strconv.Itoa(*record.Priority))
	}
	inputs[dnsCreateStepPriority] = prioIn

	// The type is fixed; everything else starts from the stored record.
	m := dnsRecordEditModel{
		domainName: domainName,
		record:     record,
		data:       record.RecordData,
		step:       dnsCreateStepHost, // Skip type step
		inputs:     inputs,
	}
	m.width = width
	m.height = height
	m.focusInput()
	return m
}

func (m dnsRecordEditModel) Init() tea.Cmd {
	return nil
}

func (m dnsRecordEditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.step > dnsCreateStepHost {
				m.step--
				// Skip priority for types that don't carry one
				if m.step == dnsCreateStepPriority && !needsPriority(m.data.Type) {
					m.step--
				}
				m.focusInput()
				return m, nil
			}
			return m, func() tea.Msg { return dnsNavigateBackMsg{} }
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			// Process current step
			switch m.step {
			case dnsCreateStepHost:
				host := m.inputs[m.step].Value()
				if host == "" {
					host = "@"
				}
				m.data.Host = host
				m.step++
				m.focusInput()
			case dnsCreateStepData:
				val := m.inputs[m.step].Value()
				if val == "" {
					return m, nil // Don't allow empty data
				}
				m.data.Data = val
				m.step++
				m.focusInput()
			case dnsCreateStepTTL:
				val := m.inputs[m.step].Value()
				if val != "" {
					if ttl, err := strconv.Atoi(val); err == nil {
						m.data.TTL = ttl
					}
				}
				m.step++
				if !needsPriority(m.data.Type) {
					m.step++ // skip priority
				}
				m.focusInput()
			case dnsCreateStepPriority:
				val := m.inputs[m.step].Value()
				if val != "" {
					if prio, err := strconv.Atoi(val); err == nil {
						m.data.Priority = domeneshop.Ptr(prio)
					}
				}
				m.step++
				m.focusInput()
			case dnsCreateStepConfirm:
				return m, func() tea.Msg {
					return dnsUpdateConfirmedMsg{recordID: m.record.ID, data: m.data}
				}
			}
		}

	}

	// Route msg to current input if applicable
	if m.step >= dnsCreateStepHost && m.step <= dnsCreateStepPriority {
		if in, ok := m.inputs[m.step]; ok {
			var cmd tea.Cmd
			in, cmd = in.Update(msg)
			m.inputs[m.step] = in
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *dnsRecordEditModel) focusInput() {
	for k, in := range m.inputs {
		if k == m.step {
			in.Focus()
		} else {
			in.Blur()
		}
		m.inputs[k] = in
	}
}

func (m dnsRecordEditModel) View() string {
	header := components.Header(m.width, "dns > edit", m.domainName)

	bindings := []components.KeyBinding{
		{Key: "esc", Desc: "back"},
	}
	if m.step == dnsCreateStepConfirm {
		bindings = append(bindings, components.KeyBinding{Key: "enter", Desc: "confirm"})
	} else {
		bindings = append(bindings, components.KeyBinding{Key: "enter", Desc: "next"})
	}

	footer := components.Footer(m.width, bindings)

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	contentH := m.height - headerH - footerH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch m.step {
	case dnsCreateStepHost:
		content = m.renderInputStep("Host")
	case dnsCreateStepData:
		content = m.renderInputStep(fmt.Sprintf("%s Data", m.data.Type))
	case dnsCreateStepTTL:
		content = m.renderInputStep("TTL (seconds)")
	case dnsCreateStepPriority:
		content = m.renderInputStep("Priority")
	case dnsCreateStepConfirm:
		content = m.renderConfirmStep()
	}

	content = m.renderStepper() + "\n\n" + content

	// Pad to height
	lines := lipgloss.Height(content)
	if lines < contentH {
		content += strings.Repeat("\n", contentH-lines)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m dnsRecordEditModel) renderStepper() string {
	steps := []string{"Host", "Data", "TTL"}
	if needsPriority(m.data.Type) {
		steps = append(steps, "Priority")
	}
	steps = append(steps, "Confirm")

	logicalStep := int(m.step) - 1 // skip type
	if m.step >= dnsCreateStepConfirm && !needsPriority(m.data.Type) {
		logicalStep--
	}

	var parts []string
	for i, step := range steps {
		if i == logicalStep {
			parts = append(parts, styles.AccentText.Render("● "+step))
		} else if i < logicalStep {
			parts = append(parts, styles.SuccessText.Render("✓ ")+styles.MutedText.Render(step))
		} else {
			parts = append(parts, styles.MutedText.Render("○ "+step))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m dnsRecordEditModel) renderInputStep(title string) string {
	in := m.inputs[m.step]

	in.PromptStyle = styles.AccentText
	in.TextStyle = styles.Value
	in.PlaceholderStyle = styles.MutedText

	return fmt.Sprintf("  %s\n\n  %s", styles.Subtitle.Render(title+":"), in.View())
}

func (m dnsRecordEditModel) renderConfirmStep() string {
	title := styles.Title.Render("Update DNS Record")

	d := m.data
	r := m.record

	ttlStr := strconv.Itoa(d.TTL)
	if d.TTL == 0 {
		ttlStr = "Default"
	}

	// Helper to highlight changed fields
	val := func(old string, newStr string) string {
		if old != newStr && newStr != "" {
			return styles.AccentText.Render(newStr)
		}
		return styles.Value.Render(old)
	}

	optInt := func(p *int) string {
		if p == nil {
			return ""
		}
		return strconv.Itoa(*p)
	}

	fields := []string{
		lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("Domain")), styles.Value.Render(m.domainName)),
		lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("Type")), styles.Value.Render(string(d.Type))),
		lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("Host")), val(r.Host, d.Host)),
		lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("Data")), val(r.Data, d.Data)),
		lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("TTL")), val(strconv.Itoa(r.TTL), ttlStr)),
	}

	if r.Priority != nil || d.Priority != nil {
		fields = append(fields, lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("Priority")), val(optInt(r.Priority), optInt(d.Priority))))
	}

	cardContent := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		strings.Join(fields, "\n"),
	)

	return lipgloss.JoinVertical(lipgloss.Center,
		styles.CardActive.Render(cardContent),
		"",
		"  Press Enter to Update",
	)
}
