package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSorterDefaultsToCPUDescending(t *testing.T) {
	s := NewSorter()
	samples := []ProcessSample{
		{Pid: 1, CPUPercent: 10},
		{Pid: 2, CPUPercent: 90},
		{Pid: 3, CPUPercent: 50},
	}

	s.Sort(samples)
	assert.Equal(t, int32(2), samples[0].Pid)
	assert.Equal(t, int32(1), samples[2].Pid)
}

func TestSorterToggleFlipsDirection(t *testing.T) {
	s := NewSorter()
	s.Toggle(SortByCPUCol)
	assert.False(t, s.Descending)

	s.Toggle(SortByPID)
	assert.Equal(t, SortByPID, s.Column)
	assert.True(t, s.Descending, "switching column resets to descending")

	samples := []ProcessSample{{Pid: 1}, {Pid: 3}, {Pid: 2}}
	s.Sort(samples)
	assert.Equal(t, int32(3), samples[0].Pid)
}

func TestSorterByUserCaseInsensitive(t *testing.T) {
	s := &Sorter{Column: SortByUSER, Descending: false}
	samples := []ProcessSample{
		{Pid: 1, Username: "Zoe"},
		{Pid: 2, Username: "alice"},
	}

	s.Sort(samples)
	assert.Equal(t, "alice", samples[0].Username)
}
