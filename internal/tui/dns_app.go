package tui

import (
	"context"
	"fmt"

	"sondreal/domctl/internal/domeneshop"
	"sondreal/domctl/internal/tui/components"
	"sondreal/domctl/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RecordService is the slice of the DNS service the record TUI needs.
type RecordService interface {
	List(ctx context.Context, domainID int, filter *domeneshop.RecordFilter) ([]domeneshop.Record, error)
	Get(ctx context.Context, domainID, recordID int) (*domeneshop.Record, error)
	Create(ctx context.Context, domainID int, data domeneshop.RecordData) (int, error)
	Update(ctx context.Context, domainID, recordID int, data domeneshop.RecordData) error
	Delete(ctx context.Context, domainID, recordID int) error
}

// --- Navigation messages ---
// Sent by child models to request view transitions.

type dnsNavigateToRecordShowMsg struct {
	record domeneshop.Record
}

type dnsNavigateToRecordCreateMsg struct{}

type dnsNavigateToRecordEditMsg struct {
	record domeneshop.Record
}

type dnsNavigateToRecordDeleteMsg struct {
	record domeneshop.Record
}

type dnsNavigateBackMsg struct{}

// --- Action messages ---
// Sent by child models when the user confirms a destructive/creative action.

type dnsCreateConfirmedMsg struct {
	data domeneshop.RecordData
}

type dnsUpdateConfirmedMsg struct {
	recordID int
	data     domeneshop.RecordData
}

type dnsDeleteConfirmedMsg struct {
	record domeneshop.Record
}

// --- Action result messages ---

type dnsCreateResultMsg struct {
	id  int
	err error
}

type dnsUpdateResultMsg struct {
	err error
}

type dnsDeleteResultMsg struct {
	record domeneshop.Record
	err    error
}

// --- Top-level App Model ---

type dnsAppView int

const (
	dnsAppViewRecordList dnsAppView = iota
	dnsAppViewRecordShow
	dnsAppViewRecordCreate
	dnsAppViewRecordEdit
	dnsAppViewRecordDelete
	dnsAppViewAction // spinner while API call in progress
)

type dnsAppModel struct {
	service    RecordService
	domainID   int
	domainName string
	view       dnsAppView

	// Child models
	recordList   dnsRecordListModel
	recordShow   dnsRecordShowModel
	recordCreate dnsRecordCreateModel
	recordEdit   dnsRecordEditModel
	recordDelete dnsRecordDeleteModel

	// Action state
	actionSpinner spinner.Model
	actionLabel   string
	actionStatus  string
	actionIsError bool

	width  int
	height int
}

// RunDNSApp starts the record browser TUI for an already-resolved domain.
func RunDNSApp(service RecordService, domainID int, domainName string) (tea.Model, error) {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	m := dnsAppModel{
		service:       service,
		domainID:      domainID,
		domainName:    domainName,
		view:          dnsAppViewRecordList,
		actionSpinner: s,
	}
	m.recordList = newDNSRecordListModel(service, domainID, domainName, m.width, m.height)

	p := tea.NewProgram(m, tea.WithAltScreen())
	return p.Run()
}

func (m dnsAppModel) Init() tea.Cmd {
	return m.recordList.Init()
}

func (m dnsAppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.updateChild(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		if m.view == dnsAppViewAction {
			m.actionSpinner, cmd = m.actionSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		// Also forward to child so loading spinners animate
		childModel, childCmd := m.updateChild(msg)
		m = childModel.(dnsAppModel)
		cmds = append(cmds, childCmd)
		return m, tea.Batch(cmds...)

	case dnsNavigateToRecordShowMsg:
		m.view = dnsAppViewRecordShow
		m.recordShow = newDNSRecordShowModel(msg.record, m.domainName, m.width, m.height)
		return m, m.recordShow.Init()

	case dnsNavigateToRecordCreateMsg:
		m.view = dnsAppViewRecordCreate
		m.recordCreate = newDNSRecordCreateModel(m.domainName, domeneshop.RecordData{}, m.width, m.height)
		return m, m.recordCreate.Init()

	case dnsNavigateToRecordEditMsg:
		m.view = dnsAppViewRecordEdit
		m.recordEdit = newDNSRecordEditModel(m.domainName, msg.record, m.width, m.height)
		return m, m.recordEdit.Init()

	case dnsNavigateToRecordDeleteMsg:
		m.view = dnsAppViewRecordDelete
		m.recordDelete = newDNSRecordDeleteModel(m.domainName, msg.record, m.width, m.height)
		return m, m.recordDelete.Init()

	// Actions
	case dnsCreateConfirmedMsg:
		m.view = dnsAppViewAction
		m.actionLabel = fmt.Sprintf("Creating record for %s", m.domainName)
		m.actionIsError = false
		m.actionStatus = ""
		return m, tea.Batch(m.actionSpinner.Tick, func() tea.Msg {
			id, err := m.service.Create(context.Background(), m.domainID, msg.data)
			return dnsCreateResultMsg{id: id, err: err}
		})

	case dnsUpdateConfirmedMsg:
		m.view = dnsAppViewAction
		m.actionLabel = fmt.Sprintf("Updating record %d", msg.recordID)
		m.actionIsError = false
		m.actionStatus = ""
		return m, tea.Batch(m.actionSpinner.Tick, func() tea.Msg {
			err := m.service.Update(context.Background(), m.domainID, msg.recordID, msg.data)
			return dnsUpdateResultMsg{err: err}
		})

	case dnsDeleteConfirmedMsg:
		m.view = dnsAppViewAction
		m.actionLabel = fmt.Sprintf("Deleting record %d", msg.record.ID)
		m.actionIsError = false
		m.actionStatus = ""
		return m, tea.Batch(m.actionSpinner.Tick, func() tea.Msg {
			err := m.service.Delete(context.Background(), m.domainID, msg.record.ID)
			return dnsDeleteResultMsg{record: msg.record, err: err}
		})

	// Results
	case dnsCreateResultMsg:
		if msg.err != nil {
			m.actionIsError = true
			m.actionStatus = msg.err.Error()
			return m, nil
		}
		// Go back to record list and refresh
		m.view = dnsAppViewRecordList
		m.recordList.persistentStatus = fmt.Sprintf("Created record %d", msg.id)
		m.recordList.statusIsError = false
		m.recordList.loading = true
		return m, m.recordList.loadRecordsCmd()

	case dnsUpdateResultMsg:
		if msg.err != nil {
			m.actionIsError = true
			m.actionStatus = msg.err.Error()
			return m, nil
		}
		m.view = dnsAppViewRecordList
		m.recordList.persistentStatus = "Record updated successfully"
		m.recordList.statusIsError = false
		m.recordList.loading = true
		return m, m.recordList.loadRecordsCmd()

	case dnsDeleteResultMsg:
		if msg.err != nil {
			m.actionIsError = true
			m.actionStatus = msg.err.Error()
			return m, nil
		}
		m.view = dnsAppViewRecordList
		m.recordList.persistentStatus = fmt.Sprintf("Deleted record %d", msg.record.ID)
		m.recordList.statusIsError = false
		m.recordList.loading = true
		return m, m.recordList.loadRecordsCmd()

	case dnsNavigateBackMsg:
		switch m.view {
		case dnsAppViewRecordShow, dnsAppViewRecordCreate, dnsAppViewRecordEdit, dnsAppViewRecordDelete:
			m.view = dnsAppViewRecordList
			return m, nil
		case dnsAppViewRecordList:
			return m, tea.Quit
		}
	}

	childModel, cmd := m.updateChild(msg)
	m = childModel.(dnsAppModel)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m dnsAppModel) updateChild(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case dnsAppViewRecordList:
		var updated tea.Model
		updated, cmd = m.recordList.Update(msg)
		m.recordList = updated.(dnsRecordListModel)
	case dnsAppViewRecordShow:
		var updated tea.Model
		updated, cmd = m.recordShow.Update(msg)
		m.recordShow = updated.(dnsRecordShowModel)
	case dnsAppViewRecordCreate:
		var updated tea.Model
		updated, cmd = m.recordCreate.Update(msg)
		m.recordCreate = updated.(dnsRecordCreateModel)
	case dnsAppViewRecordEdit:
		var updated tea.Model
		updated, cmd = m.recordEdit.Update(msg)
		m.recordEdit = updated.(dnsRecordEditModel)
	case dnsAppViewRecordDelete:
		var updated tea.Model
		updated, cmd = m.recordDelete.Update(msg)
		m.recordDelete = updated.(dnsRecordDeleteModel)
	}
	return m, cmd
}

func (m dnsAppModel) View() string {
	var view string

	switch m.view {
	case dnsAppViewRecordList:
		view = m.recordList.View()
	case dnsAppViewRecordShow:
		view = m.recordShow.View()
	case dnsAppViewRecordCreate:
		view = m.recordCreate.View()
	case dnsAppViewRecordEdit:
		view = m.recordEdit.View()
	case dnsAppViewRecordDelete:
		view = m.recordDelete.View()
	case dnsAppViewAction:
		header := components.Header(m.width, "dns > processing", m.domainName)
		content := fmt.Sprintf("\n  %s %s\n", m.actionSpinner.View(), m.actionLabel)

		statusStyle := styles.Value
		if m.actionIsError {
			statusStyle = styles.ErrorText
		}

		if m.actionStatus != "" {
			content += fmt.Sprintf("\n  %s\n", statusStyle.Render(m.actionStatus))
		}

		view = lipgloss.JoinVertical(lipgloss.Left, header, content)
	}

	return view
}
