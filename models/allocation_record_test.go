package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocationRecord_String(t *testing.T) {
	tests := []struct {
		name     string
		record   AllocationRecord
		expected string
	}{
		{"Plain", AllocationRecord{Subject: "Physics", Hours: 6}, "Physics (6 hrs)"},
		{"WeakArea", AllocationRecord{Subject: "Math", Hours: 2, WeakArea: "Calculus"}, "Math (2 hrs) - Focus on Calculus"},
		{"Prerequisite", AllocationRecord{Subject: "C++", Hours: 4, Prerequisite: "Basic Programming"}, "C++ (4 hrs) [Prerequisite: Basic Programming]"},
		{"Both", AllocationRecord{Subject: "AI", Hours: 5, WeakArea: "Machine Learning", Prerequisite: "Python"}, "AI (5 hrs) - Focus on Machine Learning [Prerequisite: Python]"},
		{"Placeholder", NewPlaceholderRecord(), PlaceholderTask},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.record.String())
		})
	}
}

func TestDayAt_Wraps(t *testing.T) {
	assert.Equal(t, Saturday, DayAt(0))
	assert.Equal(t, Friday, DayAt(6))
	assert.Equal(t, Saturday, DayAt(7))
	assert.Equal(t, Monday, DayAt(16))
}

func TestParseDayLabel(t *testing.T) {
	day, err := ParseDayLabel(" monday ")
	assert.NoError(t, err)
	assert.Equal(t, Monday, day)

	_, err = ParseDayLabel("Someday")
	assert.Error(t, err)
}

func TestNewWeeklyPlan_HasSevenDays(t *testing.T) {
	plan := NewWeeklyPlan()

	assert.Len(t, plan.Days, DaysPerWeek)
	for i, d := range plan.Days {
		assert.Equal(t, WeekDays[i], d.Day)
		assert.Empty(t, d.Tasks)
	}
	assert.Nil(t, plan.Tasks("Someday"))
}
