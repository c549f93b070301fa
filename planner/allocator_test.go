package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-planner/models"
)

func hoursBySubject(plan models.WeeklyPlan) map[string]int {
	totals := make(map[string]int)
	for _, d := range plan.Days {
		for _, r := range d.Tasks {
			if !r.Placeholder {
				totals[r.Subject] += r.Hours
			}
		}
	}
	return totals
}

func TestAllocate_Example(t *testing.T) {
	// Arrange
	subjects := []models.Subject{
		{Name: "Math", Priority: 1, WeeklyHours: 8},
		{Name: "Physics", Priority: 2, WeeklyHours: 6},
	}

	// Act
	plan, err := Allocate(subjects, 6, nil, nil)

	// Assert
	require.NoError(t, err)
	require.Len(t, plan.Days, models.DaysPerWeek)
	assert.Equal(t, []models.AllocationRecord{{Subject: "Math", Hours: 6}}, plan.Tasks(models.Saturday))
	assert.Equal(t, []models.AllocationRecord{{Subject: "Math", Hours: 2}}, plan.Tasks(models.Sunday))
	assert.Equal(t, []models.AllocationRecord{{Subject: "Physics", Hours: 6}}, plan.Tasks(models.Monday))
	for _, day := range []models.DayLabel{models.Tuesday, models.Wednesday, models.Thursday, models.Friday} {
		assert.Equal(t, []models.AllocationRecord{models.NewPlaceholderRecord()}, plan.Tasks(day), "day %s", day)
	}
}

func TestAllocate_DefaultInputs(t *testing.T) {
	subjects := []models.Subject{
		{Name: "Math", Priority: 1, WeeklyHours: 8},
		{Name: "Physics", Priority: 2, WeeklyHours: 6},
		{Name: "AI", Priority: 1, WeeklyHours: 5},
		{Name: "C++", Priority: 2, WeeklyHours: 4},
		{Name: "English", Priority: 3, WeeklyHours: 3},
	}
	weak := map[string]string{"Math": "Calculus", "AI": "Machine Learning"}
	pre := map[string]string{"AI": "Python", "Math": "Algebra", "C++": "Basic Programming"}

	plan, err := Allocate(subjects, 6, weak, pre)

	require.NoError(t, err)
	expected := map[models.DayLabel][]string{
		models.Saturday:  {"Math (6 hrs) - Focus on Calculus [Prerequisite: Algebra]"},
		models.Sunday:    {"Math (2 hrs) - Focus on Calculus [Prerequisite: Algebra]"},
		models.Monday:    {"AI (5 hrs) - Focus on Machine Learning [Prerequisite: Python]"},
		models.Tuesday:   {"Physics (6 hrs)"},
		models.Wednesday: {"C++ (4 hrs) [Prerequisite: Basic Programming]"},
		models.Thursday:  {"English (3 hrs)"},
		models.Friday:    {models.PlaceholderTask},
	}
	for day, tasks := range expected {
		var got []string
		for _, r := range plan.Tasks(day) {
			got = append(got, r.String())
		}
		assert.Equal(t, tasks, got, "day %s", day)
	}
}

func TestAllocate_PreservesTotalHours(t *testing.T) {
	for capacity := 1; capacity <= 12; capacity++ {
		for hours := 0; hours <= 60; hours++ {
			subjects := []models.Subject{
				{Name: "A", Priority: 1, WeeklyHours: hours},
				{Name: "B", Priority: 2, WeeklyHours: 5},
			}

			plan, err := Allocate(subjects, capacity, nil, nil)

			require.NoError(t, err)
			totals := hoursBySubject(plan)
			assert.Equal(t, hours, totals["A"], "capacity=%d hours=%d", capacity, hours)
			assert.Equal(t, 5, totals["B"], "capacity=%d hours=%d", capacity, hours)
			for _, d := range plan.Days {
				for _, r := range d.Tasks {
					assert.LessOrEqual(t, r.Hours, capacity)
					if !r.Placeholder {
						assert.Greater(t, r.Hours, 0)
					}
				}
			}
		}
	}
}

func TestAllocate_NoSubjects(t *testing.T) {
	plan, err := Allocate(nil, 4, nil, nil)

	require.NoError(t, err)
	require.Len(t, plan.Days, models.DaysPerWeek)
	for i, d := range plan.Days {
		assert.Equal(t, models.WeekDays[i], d.Day)
		assert.Equal(t, []models.AllocationRecord{models.NewPlaceholderRecord()}, d.Tasks)
	}
}

func TestAllocate_StableForEqualPriority(t *testing.T) {
	subjects := []models.Subject{
		{Name: "Late", Priority: 2, WeeklyHours: 1},
		{Name: "First", Priority: 1, WeeklyHours: 1},
		{Name: "Second", Priority: 1, WeeklyHours: 1},
		{Name: "Third", Priority: 1, WeeklyHours: 1},
	}

	plan, err := Allocate(subjects, 3, nil, nil)

	require.NoError(t, err)
	var order []string
	for _, d := range plan.Days {
		for _, r := range d.Tasks {
			if !r.Placeholder {
				order = append(order, r.Subject)
			}
		}
	}
	assert.Equal(t, []string{"First", "Second", "Third", "Late"}, order)
}

func TestAllocate_ZeroHoursDoesNotAdvanceCursor(t *testing.T) {
	subjects := []models.Subject{
		{Name: "Nothing", Priority: 1, WeeklyHours: 0},
		{Name: "Math", Priority: 2, WeeklyHours: 2},
	}

	plan, err := Allocate(subjects, 2, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, []models.AllocationRecord{{Subject: "Math", Hours: 2}}, plan.Tasks(models.Saturday))
	assert.NotContains(t, hoursBySubject(plan), "Nothing")
}

func TestAllocate_WrapsPastFriday(t *testing.T) {
	subjects := []models.Subject{{Name: "Math", Priority: 1, WeeklyHours: 9}}

	plan, err := Allocate(subjects, 1, nil, nil)

	require.NoError(t, err)
	assert.Len(t, plan.Tasks(models.Saturday), 2)
	assert.Len(t, plan.Tasks(models.Sunday), 2)
	assert.Len(t, plan.Tasks(models.Monday), 1)
	assert.Equal(t, 9, hoursBySubject(plan)["Math"])
}

func TestAllocate_SharedCursorAcrossSubjects(t *testing.T) {
	subjects := []models.Subject{
		{Name: "Math", Priority: 1, WeeklyHours: 12},
		{Name: "Art", Priority: 2, WeeklyHours: 3},
	}

	plan, err := Allocate(subjects, 2, nil, nil)

	require.NoError(t, err)
	// Math takes Saturday..Thursday, Art continues on Friday and wraps to Saturday.
	assert.Equal(t, []models.AllocationRecord{{Subject: "Art", Hours: 2}}, plan.Tasks(models.Friday))
	assert.Equal(t, []models.AllocationRecord{
		{Subject: "Math", Hours: 2},
		{Subject: "Art", Hours: 1},
	}, plan.Tasks(models.Saturday))
}

func TestAllocate_AnnotatesEverySlot(t *testing.T) {
	subjects := []models.Subject{
		{Name: "Math", Priority: 1, WeeklyHours: 8},
		{Name: "Physics", Priority: 2, WeeklyHours: 6},
	}
	weak := map[string]string{"Math": "Calculus", "math": "ignored"}

	plan, err := Allocate(subjects, 6, weak, nil)

	require.NoError(t, err)
	for _, day := range []models.DayLabel{models.Saturday, models.Sunday} {
		tasks := plan.Tasks(day)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Calculus", tasks[0].WeakArea)
	}
	assert.Empty(t, plan.Tasks(models.Monday)[0].WeakArea)
}

func TestAllocate_Idempotent(t *testing.T) {
	subjects := []models.Subject{
		{Name: "B", Priority: 2, WeeklyHours: 7},
		{Name: "A", Priority: 1, WeeklyHours: 11},
	}
	weak := map[string]string{"A": "Proofs"}

	first, err := Allocate(subjects, 4, weak, nil)
	require.NoError(t, err)
	second, err := Allocate(subjects, 4, weak, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "B", subjects[0].Name, "input order must not change")
}

func TestAllocate_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -3} {
		_, err := Allocate([]models.Subject{{Name: "Math", Priority: 1, WeeklyHours: 2}}, capacity, nil, nil)

		assert.ErrorIs(t, err, ErrInvalidCapacity)
	}
}
