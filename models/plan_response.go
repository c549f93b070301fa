package models

// TaskView is one schedule entry with its display text.
type TaskView struct {
	Text         string `json:"text"`
	Subject      string `json:"subject,omitempty"`
	Hours        int    `json:"hours,omitempty"`
	WeakArea     string `json:"weak_area,omitempty"`
	Prerequisite string `json:"prerequisite,omitempty"`
}

// DayView groups the tasks of one day.
type DayView struct {
	Day   DayLabel   `json:"day"`
	Tasks []TaskView `json:"tasks"`
}

// PlanResponse is the JSON body the planner server returns for a plan.
type PlanResponse struct {
	DailyHours   int            `json:"daily_hours"`
	Days         []DayView      `json:"days"`
	ChartRows    []ChartRow     `json:"chart_rows"`
	Schedule     string         `json:"schedule_text"`
	WeakAreas    string         `json:"weak_areas"`
	SubjectHours map[string]int `json:"subject_hours"`
}
