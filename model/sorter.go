package model

import (
	"sort"
	"strings"
)

type SortColumn int

const (
	SortByCPUCol SortColumn = iota
	SortByMEM
	SortByPID
	SortByUSER
	SortByNAME
	SortBySTATUS
)

type Sorter struct {
	Column     SortColumn
	Descending bool
}

func NewSorter() *Sorter {
	return &Sorter{
		Column:     SortByCPUCol,
		Descending: true, // Default: highest CPU first
	}
}

func (s *Sorter) Toggle(col SortColumn) {
	if s.Column == col {
		s.Descending = !s.Descending
	} else {
		s.Column = col
		s.Descending = true
	}
}

func (s *Sorter) Sort(samples []ProcessSample) {
	sort.SliceStable(samples, func(i, j int) bool {
		a, b := &samples[i], &samples[j]

		var less bool
		switch s.Column {
		case SortByCPUCol:
			less = a.CPUPercent < b.CPUPercent
		case SortByMEM:
			less = a.MemoryPercent < b.MemoryPercent
		case SortByPID:
			less = a.Pid < b.Pid
		case SortByUSER:
			less = strings.ToLower(a.Username) < strings.ToLower(b.Username)
		case SortByNAME:
			less = strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortBySTATUS:
			less = a.Status < b.Status
		default:
			less = a.CPUPercent < b.CPUPercent
		}

		if s.Descending {
			return !less
		}
		return less
	})
}

func (s *Sorter) ColumnName() string {
	names := []string{"CPU", "MEM", "PID", "USER", "NAME", "STATUS"}
	return names[s.Column]
}
