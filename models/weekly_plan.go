package models

// DayPlan holds the records assigned to one day, in assignment order.
type DayPlan struct {
	Day   DayLabel           `json:"day"`
	Tasks []AllocationRecord `json:"tasks"`
}

// WeeklyPlan always holds exactly one DayPlan per label in WeekDays order.
type WeeklyPlan struct {
	Days []DayPlan `json:"days"`
}

// NewWeeklyPlan returns a plan with seven empty days.
func NewWeeklyPlan() WeeklyPlan {
	days := make([]DayPlan, DaysPerWeek)
	for i, d := range WeekDays {
		days[i] = DayPlan{Day: d, Tasks: []AllocationRecord{}}
	}
	return WeeklyPlan{Days: days}
}

// Tasks returns the records for a day, or nil if the label is not in the plan.
func (p WeeklyPlan) Tasks(day DayLabel) []AllocationRecord {
	for _, d := range p.Days {
		if d.Day == day {
			return d.Tasks
		}
	}
	return nil
}
