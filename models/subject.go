package models

// Subject is one line of the subject list: a name, a priority (1 = highest)
// and the number of hours to study it during the week.
type Subject struct {
	Name        string `json:"name" yaml:"name"`
	Priority    int    `json:"priority" yaml:"priority"`
	WeeklyHours int    `json:"weekly_hours" yaml:"weekly_hours"`
}
