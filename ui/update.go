package ui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 14)
		return m, nil

	case updateMsg:
		m.samples = msg.Snapshot.Processes
		m.system = msg.System
		m.events = msg.Events
		m.paused = msg.Paused
		m.tasks, m.running = msg.Snapshot.Tasks()
		m.updateTable()
		return m, nil

	case statusMsg:
		m.statusText = msg.text
		m.statusError = msg.isError
		return m, nil

	case detailMsg:
		m.detail = msg
		m.mode = detailMode
		return m, nil
	}

	if m.mode == filterMode {
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case normalMode:
		return m.handleNormalMode(msg)
	case filterMode:
		return m.handleFilterMode(msg)
	case confirmKillMode:
		return m.handleConfirmKill(msg)
	case priorityMode:
		return m.handlePriority(msg)
	case helpMode, eventsMode:
		switch msg.String() {
		case "esc", "q", "?", "e":
			m.mode = normalMode
		}
		return m, nil
	case detailMode:
		switch msg.String() {
		case "esc", "q", "d":
			m.mode = normalMode
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.mode = helpMode
		return m, nil

	case "e":
		m.mode = eventsMode
		return m, nil

	// Sorting
	case "c":
		m.sorter.Toggle(model.SortByCPUCol)
		m.updateTable()
	case "m":
		m.sorter.Toggle(model.SortByMEM)
		m.updateTable()
	case "p":
		m.sorter.Toggle(model.SortByPID)
		m.updateTable()
	case "u":
		m.sorter.Toggle(model.SortByUSER)
		m.updateTable()
	case "n":
		m.sorter.Toggle(model.SortByNAME)
		m.updateTable()

	// Filtering
	case "/":
		m.mode = filterMode
		m.filterInput.Focus()
		return m, textinput.Blink

	// Pause only stops reconciliation; system metrics keep flowing.
	case " ":
		m.engine.Pause(!m.engine.Paused())

	// Terminate (with confirmation)
	case "k":
		if pid := m.getSelectedPID(); pid > 0 {
			m.selectedPID = pid
			m.mode = confirmKillMode
		}

	// Suspend/resume toggle
	case "s":
		if pid := m.getSelectedPID(); pid > 0 {
			return m, m.toggleSuspendCmd(pid)
		}

	// Priority change
	case "r":
		if pid := m.getSelectedPID(); pid > 0 {
			m.selectedPID = pid
			m.mode = priorityMode
		}

	// Detail view
	case "d":
		if pid := m.getSelectedPID(); pid > 0 {
			return m, m.detailCmd(pid)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.mode = normalMode
		m.filterInput.Blur()
		return m, nil
	case "enter":
		m.mode = normalMode
		m.filterInput.Blur()
		m.filterText = m.filterInput.Value()
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m *Model) applyFilter() {
	opts := m.engine.Options()
	opts.Filter.Name = m.filterText
	m.engine.SetOptions(opts)
}

func (m Model) handleConfirmKill(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = normalMode
		return m, m.terminateCmd(m.selectedPID)
	case "n", "N", "esc", "q":
		m.mode = normalMode
	}
	return m, nil
}

func (m Model) handlePriority(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var level model.PriorityLevel
	switch msg.String() {
	case "l":
		level = model.PriorityLow
	case "n":
		level = model.PriorityNormal
	case "h":
		level = model.PriorityHigh
	case "t":
		level = model.PriorityRealtime
	case "esc", "q":
		m.mode = normalMode
		return m, nil
	default:
		return m, nil
	}
	m.mode = normalMode
	return m, m.setPriorityCmd(m.selectedPID, level)
}

// Debug actions run in their own command goroutine; Terminate can block for
// the full 3s graceful window.

func (m Model) terminateCmd(pid int32) tea.Cmd {
	gw, eng := m.gateway, m.engine
	return func() tea.Msg {
		res := gw.Terminate(context.Background(), pid)
		eng.LogAction(res)
		return statusMsg{text: res.Message, isError: !res.Success}
	}
}

func (m Model) toggleSuspendCmd(pid int32) tea.Cmd {
	gw, eng := m.gateway, m.engine
	return func() tea.Msg {
		res := gw.ToggleSuspend(context.Background(), pid)
		eng.LogAction(res)
		return statusMsg{text: res.Message, isError: !res.Success}
	}
}

func (m Model) setPriorityCmd(pid int32, level model.PriorityLevel) tea.Cmd {
	gw, eng := m.gateway, m.engine
	return func() tea.Msg {
		res := gw.SetPriority(context.Background(), pid, level)
		eng.LogAction(res)
		return statusMsg{text: res.Message, isError: !res.Success}
	}
}

func (m Model) detailCmd(pid int32) tea.Cmd {
	eng := m.engine
	return func() tea.Msg {
		msg := detailMsg{pid: pid}
		msg.hist, msg.hasHist = eng.History(pid)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		msg.children, msg.childErr = eng.Children(ctx, pid)
		return msg
	}
}

func (m *Model) getSelectedPID() int32 {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return 0
	}
	pid, err := strconv.Atoi(row[0])
	if err != nil {
		return 0
	}
	return int32(pid)
}

func (m *Model) updateTable() {
	samples := append([]model.ProcessSample(nil), m.samples...)
	m.sorter.Sort(samples)

	rows := make([]table.Row, 0, len(samples))
	for _, p := range samples {
		cmd := p.Cmdline
		if cmd == "" {
			cmd = p.Name
		}
		rows = append(rows, table.Row{
			strconv.Itoa(int(p.Pid)),
			p.Username,
			p.Name,
			string(p.Status),
			fmt.Sprintf("%.1f", p.CPUPercent),
			fmt.Sprintf("%.1f", p.MemoryPercent),
			FormatStarted(p.CreateTime),
			cmd,
		})
	}
	m.table.SetRows(rows)
}
