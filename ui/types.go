package ui

import (
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/history"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/model"
	"github.com/Sharma123-Mohit/ProcessVisualDebugger/monitor"
)

// Messages

type updateMsg monitor.Update

type statusMsg struct {
	text    string
	isError bool
}

type detailMsg struct {
	pid      int32
	hist     history.ProcessHistory
	hasHist  bool
	children model.Snapshot
	childErr error
}

// UI Modes

type uiMode int

const (
	normalMode uiMode = iota
	filterMode
	confirmKillMode
	priorityMode
	helpMode
	eventsMode
	detailMode
)
