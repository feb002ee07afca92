package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/debugger"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/monitor"
)

// Model holds TUI state. All data arrives pushed from the engine as
// updateMsg; the UI never samples the OS itself.
type Model struct {
	engine  *monitor.Engine
	gateway *debugger.Gateway

	table   table.Model
	samples []model.ProcessSample
	system  model.SystemMetrics
	events  []model.Event // newest first
	paused  bool
	tasks   int
	running int
	sorter  *model.Sorter
	width   int
	height  int

	// Filtering
	filterInput textinput.Model
	filterText  string
	mode        uiMode

	// Status messages
	statusText  string
	statusError bool

	// Pending action target
	selectedPID int32

	// Detail view data, loaded on demand
	detail detailMsg
}

func NewModel(engine *monitor.Engine, gateway *debugger.Gateway) Model {
	columns := []table.Column{
		{Title: "PID", Width: 7},
		{Title: "USER", Width: 10},
		{Title: "NAME", Width: 18},
		{Title: "STATUS", Width: 11},
		{Title: "%CPU", Width: 7},
		{Title: "%MEM", Width: 7},
		{Title: "STARTED", Width: 9},
		{Title: "COMMAND", Width: 45},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("cyan"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "filter by process name..."
	ti.CharLimit = 50

	return Model{
		engine:      engine,
		gateway:     gateway,
		table:       t,
		sorter:      model.NewSorter(),
		filterInput: ti,
		mode:        normalMode,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// SendUpdate is the engine's notify hook: it pushes each cycle's read model
// into the running program.
func SendUpdate(p *tea.Program, u monitor.Update) {
	p.Send(updateMsg(u))
}
