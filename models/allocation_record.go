package models

import "fmt"

// PlaceholderTask is the reminder given to days that received no study slot.
const PlaceholderTask = "Check pending tasks or review weak areas"

// AllocationRecord is one slot of the weekly plan: a contiguous block of hours
// assigned to one subject on one day. Placeholder records carry no hours.
type AllocationRecord struct {
	Subject      string `json:"subject,omitempty"`
	Hours        int    `json:"hours,omitempty"`
	WeakArea     string `json:"weak_area,omitempty"`
	Prerequisite string `json:"prerequisite,omitempty"`
	Placeholder  bool   `json:"placeholder,omitempty"`
}

// NewPlaceholderRecord returns the record used to fill an empty day.
func NewPlaceholderRecord() AllocationRecord {
	return AllocationRecord{Placeholder: true}
}

// String renders the record the way it appears in the schedule listing, e.g.
// "Math (6 hrs) - Focus on Calculus [Prerequisite: Algebra]".
func (r AllocationRecord) String() string {
	if r.Placeholder {
		return PlaceholderTask
	}
	s := fmt.Sprintf("%s (%d hrs)", r.Subject, r.Hours)
	if r.WeakArea != "" {
		s += " - Focus on " + r.WeakArea
	}
	if r.Prerequisite != "" {
		s += " [Prerequisite: " + r.Prerequisite + "]"
	}
	return s
}
