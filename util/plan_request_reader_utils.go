package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"study-planner/models"
)

// ReadPlanRequestFromJSON loads a PlanRequest from JSON on disk.
func ReadPlanRequestFromJSON(filePath string) (*models.PlanRequest, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var req models.PlanRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PlanRequest: %w", err)
	}
	return &req, nil
}

// ReadPlanRequestFromYAML loads a PlanRequest from YAML on disk.
func ReadPlanRequestFromYAML(filePath string) (*models.PlanRequest, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var req models.PlanRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PlanRequest: %w", err)
	}
	return &req, nil
}

// ReadPlanRequest picks the decoder from the file extension: ".json" is read
// as JSON, anything else as YAML.
func ReadPlanRequest(filePath string) (*models.PlanRequest, error) {
	if strings.EqualFold(filepath.Ext(filePath), ".json") {
		return ReadPlanRequestFromJSON(filePath)
	}
	return ReadPlanRequestFromYAML(filePath)
}
