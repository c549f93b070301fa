package planner

import (
	"errors"
	"fmt"
	"sort"

	"study-planner/models"
)

// ErrInvalidCapacity is returned when the daily capacity is below one hour.
var ErrInvalidCapacity = errors.New("daily capacity must be at least 1 hour")

// slot is a record waiting to be placed on the day at dayIndex.
type slot struct {
	dayIndex int
	record   models.AllocationRecord
}

// Allocate distributes every subject's weekly hours over the seven day labels.
//
// Subjects are taken in ascending priority order (stable, so equal priorities
// keep their input order). A single day cursor is shared by all subjects: each
// slot takes min(dailyCapacity, remaining) hours on the cursor's day and moves
// the cursor one day forward. Days left without a slot get a placeholder record.
// Weak-area and prerequisite notes are attached to every slot of the matching
// subject. The result depends only on the arguments.
func Allocate(
	subjects []models.Subject,
	dailyCapacity int,
	weakAreas map[string]string,
	prerequisites map[string]string,
) (models.WeeklyPlan, error) {
	if dailyCapacity < 1 {
		return models.WeeklyPlan{}, fmt.Errorf("%w: got %d", ErrInvalidCapacity, dailyCapacity)
	}

	plan := models.NewWeeklyPlan()
	cursor := 0
	for _, s := range sortByPriority(subjects) {
		var slots []slot
		cursor, slots = allocateSubject(cursor, s, dailyCapacity, weakAreas, prerequisites)
		for _, sl := range slots {
			plan.Days[sl.dayIndex].Tasks = append(plan.Days[sl.dayIndex].Tasks, sl.record)
		}
	}

	for i := range plan.Days {
		if len(plan.Days[i].Tasks) == 0 {
			plan.Days[i].Tasks = append(plan.Days[i].Tasks, models.NewPlaceholderRecord())
		}
	}
	return plan, nil
}

// allocateSubject emits the slots of one subject starting at cursor and
// returns the cursor the next subject starts from.
func allocateSubject(
	cursor int,
	s models.Subject,
	dailyCapacity int,
	weakAreas map[string]string,
	prerequisites map[string]string,
) (int, []slot) {
	var slots []slot
	// remaining drops by the full capacity even when the last slot was clamped.
	for remaining := s.WeeklyHours; remaining > 0; remaining -= dailyCapacity {
		slots = append(slots, slot{
			dayIndex: cursor % models.DaysPerWeek,
			record: models.AllocationRecord{
				Subject:      s.Name,
				Hours:        min(dailyCapacity, remaining),
				WeakArea:     weakAreas[s.Name],
				Prerequisite: prerequisites[s.Name],
			},
		})
		cursor++
	}
	return cursor, slots
}

func sortByPriority(subjects []models.Subject) []models.Subject {
	sorted := make([]models.Subject, len(subjects))
	copy(sorted, subjects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return sorted
}
