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

type dnsCreateStep int

const (
	dnsCreateStepType dnsCreateStep = iota
	dnsCreateStepHost
	dnsCreateStepData
	dnsCreateStepTTL
	dnsCreateStepPriority
	dnsCreateStepConfirm
)

// needsPriority reports whether the wizard should ask for a priority.
func needsPriority(t domeneshop.RecordType) bool {
	return t == domeneshop.TypeMX || t == domeneshop.TypeSRV
}

type dnsRecordCreateModel struct {
	domainName string
	data       domeneshop.RecordData

	step dnsCreateStep

	// Type selection
	types  []domeneshop.RecordType
	cursor int

	// Text inputs
	inputs map[dnsCreateStep]textinput.Model

	width  int
	height int
}

func newDNSRecordCreateModel(domainName string, prefill domeneshop.RecordData, width, height int) dnsRecordCreateModel {
	types := domeneshop.RecordTypes()

	inputs := make(map[dnsCreateStep]textinput.Model)

	// Host input
	hostIn := textinput.New()
	hostIn.Placeholder = "e.g. www (@ for the root)"
	hostIn.SetValue(prefill.Host)
	inputs[dnsCreateStepHost] = hostIn

	// Data input
	dataIn := textinput.New()
	dataIn.Placeholder = "e.g. 203.0.113.7"
	dataIn.SetValue(prefill.Data)
	inputs[dnsCreateStepData] = dataIn

	// TTL input
	ttlIn := textinput.New()
	ttlIn.Placeholder = "e.g. 3600"
	if prefill.TTL > 0 {
		ttlIn.SetValue(strconv.Itoa(prefill.TTL))
	}
	inputs[dnsCreateStepTTL] = ttlIn

	// Priority input
	prioIn := textinput.New()
	prioIn.Placeholder = "e.g. 10"
	if prefill.Priority != nil {
		prioIn.SetValue(strconv.Itoa(*prefill.Priority))
	}
	inputs[dnsCreateStepPriority] = prioIn

	// Preset the data type
	data := prefill
	if data.Type == "" {
		data.Type = domeneshop.TypeA // default
	}

	cursor := 0
	for i, t := range types {
		if t == data.Type {
			cursor = i
			break
		}
	}

	return dnsRecordCreateModel{
		domainName: domainName,
		data:       data,
		step:       dnsCreateStepType,
		types:      types,
		cursor:     cursor,
		inputs:     inputs,
		width:      width,
		height:     height,
	}
}

func (m dnsRecordCreateModel) Init() tea.Cmd {
	return nil
}

func (m dnsRecordCreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.step > dnsCreateStepType {
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
		case "up", "k":
			if m.step == dnsCreateStepType && m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.step == dnsCreateStepType && m.cursor < len(m.types)-1 {
				m.cursor++
			}
		case "enter":
			// Process current step
			switch m.step {
			case dnsCreateStepType:
				m.data.Type = m.types[m.cursor]
				m.updatePlaceholders()
				m.step++
				m.focusInput()
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
					return dnsCreateConfirmedMsg{data: m.data}
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

func (m *dnsRecordCreateModel) focusInput() {
	for k, in := range m.inputs {
		if k == m.step {
			in.Focus()
		} else {
			in.Blur()
		}
		m.inputs[k] = in
	}
}

func (m *dnsRecordCreateModel) updatePlaceholders() {
	in := m.inputs[dnsCreateStepData]
	switch m.data.Type {
	case domeneshop.TypeA:
		in.Placeholder = "e.g. 203.0.113.7"
	case domeneshop.TypeAAAA:
		in.Placeholder = "e.g. 2001:db8::1"
	case domeneshop.TypeCNAME, domeneshop.TypeANAME:
		in.Placeholder = "e.g. example.com"
	case domeneshop.TypeMX:
		in.Placeholder = "e.g. mail.example.com"
	case domeneshop.TypeTXT:
		in.Placeholder = `e.g. "v=spf1 include:_spf.example.com ~all"`
	default:
		in.Placeholder = "Record data"
	}
	m.inputs[dnsCreateStepData] = in
}

func (m dnsRecordCreateModel) View() string {
	header := components.Header(m.width, "dns > create", m.domainName)

	bindings := []components.KeyBinding{
		{Key: "esc", Desc: "back"},
	}
	if m.step == dnsCreateStepType {
		bindings = append(bindings, components.KeyBinding{Key: "j/k", Desc: "select"})
		bindings = append(bindings, components.KeyBinding{Key: "enter", Desc: "next"})
	} else if m.step == dnsCreateStepConfirm {
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
	case dnsCreateStepType:
		content = m.renderTypeStep()
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

func (m dnsRecordCreateModel) renderStepper() string {
	steps := []string{"Type", "Host", "Data", "TTL"}
	if needsPriority(m.data.Type) {
		steps = append(steps, "Priority")
	}
	steps = append(steps, "Confirm")

	// Calculate which logical step we are on (accounting for skipped priority)
	logicalStep := int(m.step)
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

func (m dnsRecordCreateModel) renderTypeStep() string {
	var rows []string
	rows = append(rows, "  "+styles.Subtitle.Render("Select record type:"))
	rows = append(rows, "")

	for i, t := range m.types {
		cursor := " "
		style := styles.Value
		if i == m.cursor {
			cursor = styles.AccentText.Render(">")
			style = styles.AccentText
		}

		desc := ""
		switch t {
		case domeneshop.TypeA:
			desc = "IPv4 address"
		case domeneshop.TypeAAAA:
			desc = "IPv6 address"
		case domeneshop.TypeANAME:
			desc = "CNAME flattening"
		case domeneshop.TypeCAA:
			desc = "Certificate authority"
		case domeneshop.TypeCNAME:
			desc = "Canonical name"
		case domeneshop.TypeDS:
			desc = "DNSSEC delegation"
		case domeneshop.TypeMX:
			desc = "Mail exchange"
		case domeneshop.TypeNS:
			desc = "Name server"
		case domeneshop.TypeSRV:
			desc = "Service locator"
		case domeneshop.TypeTLSA:
			desc = "TLS association"
		case domeneshop.TypeTXT:
			desc = "Text record"
		}

		row := fmt.Sprintf("  %s %-8s %s", cursor, style.Render(string(t)), styles.MutedText.Render(desc))
		rows = append(rows, row)
	}

	return strings.Join(rows, "\n")
}

func (m dnsRecordCreateModel) renderInputStep(title string) string {
	in := m.inputs[m.step]

	// Apply proper styling to the input
	in.PromptStyle = styles.AccentText
	in.TextStyle = styles.Value
	in.PlaceholderStyle = styles.MutedText

	if in.Focused() {
		// Draw a border around it
		view := in.View()
		box := styles.CardActive.Render(view)
		return fmt.Sprintf("  %s\n\n%s", styles.Subtitle.Render(title+":"), "  "+box)
	}
	return fmt.Sprintf("  %s\n\n  %s", styles.Subtitle.Render(title+":"), in.View())
}

func (m dnsRecordCreateModel) renderConfirmStep() string {
	title := styles.Title.Render("Create DNS Record")

	d := m.data
	ttlStr := strconv.Itoa(d.TTL)
	if d.TTL == 0 {
		ttlStr = "Default"
	}

	host := d.Host
	if host == "" {
		host = "@"
	}

	fields := []string{
		lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("Domain")), styles.Value.Render(m.domainName)),
		lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("Type")), styles.Value.Render(string(d.Type))),
		lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("Host")), styles.Value.Render(host)),
		lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("Data")), styles.Value.Render(d.Data)),
		lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("TTL")), styles.Value.Render(ttlStr)),
	}

	if d.Priority != nil {
		fields = append(fields, lipgloss.JoinHorizontal(lipgloss.Left, lipgloss.NewStyle().Width(10).Render(styles.Label.Render("Priority")), styles.Value.Render(strconv.Itoa(*d.Priority))))
	}

	cardContent := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		strings.Join(fields, "\n"),
	)

	return lipgloss.JoinVertical(lipgloss.Center,
		styles.CardActive.Render(cardContent),
		"",
		"  Press Enter to Create",
	)
}
