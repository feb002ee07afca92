package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
)

const recentEventLines = 4

func (m Model) View() string {
	switch m.mode {
	case helpMode:
		return m.renderHelp()
	case eventsMode:
		return m.renderEvents()
	case detailMode:
		return m.renderDetail()
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(m.renderHeader()))
	b.WriteString("\n\n")
	b.WriteString(baseStyle.Render(m.table.View()))
	b.WriteString("\n")

	if m.mode == normalMode {
		b.WriteString(m.renderQuickHelp())
		b.WriteString("\n")
	}

	b.WriteString(m.renderRecentEvents())

	if m.statusText != "" {
		b.WriteString("\n")
		b.WriteString(m.renderStatus())
		b.WriteString("\n")
	}

	if m.mode == filterMode {
		b.WriteString("\n")
		b.WriteString(m.renderFilterBar())
	}

	if m.mode == confirmKillMode {
		b.WriteString("\n")
		b.WriteString(confirmStyle.Render(
			fmt.Sprintf("Terminate PID %d? (y/n)", m.selectedPID)))
	}

	if m.mode == priorityMode {
		b.WriteString("\n")
		b.WriteString(confirmStyle.Render(
			fmt.Sprintf("Priority for PID %d: [l]ow [n]ormal [h]igh real[t]ime (esc to cancel)", m.selectedPID)))
	}

	return b.String()
}

func (m Model) renderTitle() string {
	title := titleStyle.Render("PROCESS VISUAL DEBUGGER")
	return lipgloss.NewStyle().
		Background(lipgloss.Color("62")).
		Foreground(lipgloss.Color("230")).
		Bold(true).
		Width(m.width).
		Align(lipgloss.Center).
		Render(title)
}

func (m Model) renderHeader() string {
	uptime := "-"
	if !m.system.BootTime.IsZero() {
		uptime = FormatUptime(time.Since(m.system.BootTime))
	}

	direction := sortedColumnStyle.Render("↓")
	if !m.sorter.Descending {
		direction = sortedColumnStyle.Render("↑")
	}

	header := fmt.Sprintf(
		"CPU: %.1f%% | MEM: %.1f%% | Disk: %.1f%% | Load: %.2f %.2f %.2f | Up: %s | Tasks: %d (%d running) | Sort: %s %s",
		m.system.CPUPercent, m.system.MemoryPercent, m.system.DiskPercent,
		m.system.LoadAvg[0], m.system.LoadAvg[1], m.system.LoadAvg[2],
		uptime, m.tasks, m.running,
		sortedColumnStyle.Render(m.sorter.ColumnName()),
		direction,
	)

	if m.filterText != "" {
		header += fmt.Sprintf(" | Filter: %s",
			lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Render(m.filterText))
	}
	if m.paused {
		header += " | " + pausedStyle.Render("PAUSED")
	}
	return header
}

func (m Model) renderQuickHelp() string {
	quickHelp := fmt.Sprintf(
		"%s Sort | %s Filter | %s Pause | %s Kill | %s Suspend | %s Priority | %s Detail | %s Events | %s Help | %s Quit",
		keybindStyle.Render("[c/m/p/u/n]"),
		keybindStyle.Render("[/]"),
		keybindStyle.Render("[space]"),
		keybindStyle.Render("[k]"),
		keybindStyle.Render("[s]"),
		keybindStyle.Render("[r]"),
		keybindStyle.Render("[d]"),
		keybindStyle.Render("[e]"),
		keybindStyle.Render("[?]"),
		keybindStyle.Render("[q]"),
	)
	return keybindDescStyle.Render(quickHelp)
}

func (m Model) renderStatus() string {
	style := successStyle
	if m.statusError {
		style = errorStyle
	}
	return style.Render(m.statusText)
}

func (m Model) renderFilterBar() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Render("Filter: ") +
		m.filterInput.View() +
		keybindDescStyle.Render(" (Enter to apply, Esc to cancel)")
}

func (m Model) renderRecentEvents() string {
	if len(m.events) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	for i, ev := range m.events {
		if i >= recentEventLines {
			break
		}
		b.WriteString(m.renderEventLine(ev))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderEventLine(ev model.Event) string {
	line := fmt.Sprintf("[%s] %s", ev.Timestamp.Format("15:04:05"), ev.Message)
	if ev.Severity == model.SeverityWarning {
		return warningEventStyle.Render(line)
	}
	return infoEventStyle.Render(line)
}

func (m Model) renderEvents() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Event Log (newest first)"))
	b.WriteString("\n\n")
	if len(m.events) == 0 {
		b.WriteString(keybindDescStyle.Render("no events yet"))
		b.WriteString("\n")
	}
	for _, ev := range m.events {
		b.WriteString(m.renderEventLine(ev))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(keybindDescStyle.Render("[e/esc/q] back"))
	return b.String()
}

func (m Model) renderDetail() string {
	d := m.detail

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Process Detail: PID %d", d.pid)))
	b.WriteString("\n\n")

	if !d.hasHist {
		b.WriteString(keybindDescStyle.Render("no history recorded for this process yet"))
		b.WriteString("\n")
	} else {
		h := d.hist
		n := h.Len()
		b.WriteString(fmt.Sprintf("Name: %s\n", h.Name))
		b.WriteString(fmt.Sprintf("Samples: %d | Status: %s | Last seen: %s\n",
			n, h.LastStatus(), h.LastSeen.Format("15:04:05")))
		if n > 0 {
			b.WriteString(fmt.Sprintf("Latest: %.1f%% CPU, %.1f%% MEM\n",
				h.CPU[n-1], h.Memory[n-1]))
			b.WriteString(fmt.Sprintf("Window: %s - %s\n",
				h.Timestamps[0].Format("15:04:05"),
				h.Timestamps[n-1].Format("15:04:05")))
		}
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Children"))
	b.WriteString("\n")
	switch {
	case d.childErr != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("could not list children: %v", d.childErr)))
		b.WriteString("\n")
	case len(d.children.Processes) == 0:
		b.WriteString(keybindDescStyle.Render("no child processes"))
		b.WriteString("\n")
	default:
		for _, c := range d.children.Processes {
			b.WriteString(fmt.Sprintf("  %-7d %-18s %-11s %5.1f%% %5.1f%%\n",
				c.Pid, c.Name, c.Status, c.CPUPercent, c.MemoryPercent))
		}
	}

	b.WriteString("\n")
	b.WriteString(keybindDescStyle.Render("[d/esc/q] back"))
	return b.String()
}

func (m Model) renderHelp() string {
	rows := []struct{ key, desc string }{
		{"c / m / p / u / n", "sort by CPU, memory, PID, user, name"},
		{"/", "filter processes by name"},
		{"space", "pause/resume sampling (system metrics keep flowing)"},
		{"k", "terminate selected process (graceful, escalates after 3s)"},
		{"s", "suspend or resume selected process"},
		{"r", "change priority of selected process"},
		{"d", "show history and children of selected process"},
		{"e", "show the full event log"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Help"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			keybindStyle.Render(fmt.Sprintf("%-18s", r.key)),
			keybindDescStyle.Render(r.desc)))
	}
	return helpBoxStyle.Render(b.String())
}
