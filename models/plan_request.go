package models

// PlanRequest carries the raw planner inputs: the subject list
// ("name,priority,hours" per line), the weak-area and prerequisite lists
// ("Subject: note" entries separated by commas) and the daily study budget.
type PlanRequest struct {
	Subjects      string `json:"subjects" yaml:"subjects"`
	WeakAreas     string `json:"weak_areas" yaml:"weak_areas"`
	Prerequisites string `json:"prerequisites" yaml:"prerequisites"`
	DailyHours    int    `json:"daily_hours" yaml:"daily_hours"`
}

// PlanResult is the outcome of one planning run.
type PlanResult struct {
	DailyHours    int               `json:"daily_hours"`
	Subjects      []Subject         `json:"subjects"`
	WeakAreas     map[string]string `json:"weak_areas"`
	Prerequisites map[string]string `json:"prerequisites"`
	Plan          WeeklyPlan        `json:"plan"`
}
