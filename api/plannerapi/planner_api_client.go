package plannerapi

import (
	"fmt"

	"study-planner/api"
	"study-planner/models"
)

// PlannerApiClient embeds the common HTTPClient
type PlannerApiClient struct {
	*api.HTTPClient
}

// NewPlannerApiClient creates a new instance of PlannerApiClient
func NewPlannerApiClient(httpClient *api.HTTPClient) *PlannerApiClient {
	return &PlannerApiClient{
		HTTPClient: httpClient,
	}
}

// CreatePlan asks the server to plan the given inputs
func (c *PlannerApiClient) CreatePlan(req models.PlanRequest) (*models.PlanResponse, error) {
	var response models.PlanResponse
	if err := c.Request("POST", "/v1/plan", nil, req, &response); err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return &response, nil
}

// CreatePlanText asks the server for the schedule listing of the given inputs
func (c *PlannerApiClient) CreatePlanText(req models.PlanRequest) (string, error) {
	text, err := c.RequestText("POST", "/v1/plan/text", nil, req)
	if err != nil {
		return "", fmt.Errorf("create plan text: %w", err)
	}
	return text, nil
}

// GetCurrentPlan retrieves the plan the server built from its input file
func (c *PlannerApiClient) GetCurrentPlan() (*models.PlanResponse, error) {
	var response models.PlanResponse
	if err := c.Request("GET", "/v1/plan/current", nil, nil, &response); err != nil {
		return nil, fmt.Errorf("get current plan: %w", err)
	}
	return &response, nil
}

// GetDayTimetable retrieves the timetable of one day of the current plan
func (c *PlannerApiClient) GetDayTimetable(day models.DayLabel) (string, error) {
	text, err := c.RequestText("GET", "/v1/plan/day/"+string(day), nil, nil)
	if err != nil {
		return "", fmt.Errorf("get %s timetable: %w", day, err)
	}
	return text, nil
}
