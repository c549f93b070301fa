package plannerapi

import "study-planner/models"

// PlannerAPI defines the interface for talking to a running planner server
type PlannerAPI interface {
	CreatePlan(req models.PlanRequest) (*models.PlanResponse, error)
	CreatePlanText(req models.PlanRequest) (string, error)
	GetCurrentPlan() (*models.PlanResponse, error)
	GetDayTimetable(day models.DayLabel) (string, error)
}
