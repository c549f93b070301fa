// models/week.go

package models

import (
	"fmt"
	"strings"
)

// DayLabel names one of the seven planning days. Labels are not dates.
type DayLabel string

const (
	Saturday  DayLabel = "Saturday"
	Sunday    DayLabel = "Sunday"
	Monday    DayLabel = "Monday"
	Tuesday   DayLabel = "Tuesday"
	Wednesday DayLabel = "Wednesday"
	Thursday  DayLabel = "Thursday"
	Friday    DayLabel = "Friday"
)

// DaysPerWeek is the length of the planning cycle.
const DaysPerWeek = 7

// WeekDays lists the day labels in planning order. The week starts on Saturday.
var WeekDays = [DaysPerWeek]DayLabel{Saturday, Sunday, Monday, Tuesday, Wednesday, Thursday, Friday}

// DayAt maps a rolling cursor onto a day label, wrapping after Friday.
func DayAt(cursor int) DayLabel {
	return WeekDays[cursor%DaysPerWeek]
}

// ParseDayLabel resolves a day name case-insensitively.
func ParseDayLabel(s string) (DayLabel, error) {
	s = strings.TrimSpace(s)
	for _, d := range WeekDays {
		if strings.EqualFold(string(d), s) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown day label %q", s)
}
