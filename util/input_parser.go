package util

import (
	"log"
	"strconv"
	"strings"

	"study-planner/models"
)

const (
	subjectFieldSeparator    = ","
	annotationEntrySeparator = ","
	annotationKeySeparator   = ":"
	subjectFieldCount        = 3
)

// ParseSubjects reads one "name,priority,hours" subject per line.
// Lines without exactly three fields, with a non-integer priority or hours,
// or with an empty name are dropped.
func ParseSubjects(raw string) []models.Subject {
	var subjects []models.Subject
	for i, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, subjectFieldSeparator)
		if len(parts) != subjectFieldCount {
			log.Printf("[InputParser] Skipping subject line %d: expected %d fields, got %d", i+1, subjectFieldCount, len(parts))
			continue
		}

		name := strings.TrimSpace(parts[0])
		if name == "" {
			log.Printf("[InputParser] Skipping subject line %d: empty name", i+1)
			continue
		}
		priority, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			log.Printf("[InputParser] Skipping subject %q: invalid priority: %v", name, err)
			continue
		}
		hours, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			log.Printf("[InputParser] Skipping subject %q: invalid hours: %v", name, err)
			continue
		}

		subjects = append(subjects, models.Subject{Name: name, Priority: priority, WeeklyHours: hours})
	}
	return subjects
}

// ParseAnnotationMap reads comma-separated "Subject: note" entries into a
// subject-name to note map. Entries without a colon are dropped; the note is
// everything after the first colon. A repeated subject keeps its last note.
func ParseAnnotationMap(raw string) map[string]string {
	notes := make(map[string]string)
	for _, entry := range strings.Split(raw, annotationEntrySeparator) {
		if !strings.Contains(entry, annotationKeySeparator) {
			if strings.TrimSpace(entry) != "" {
				log.Printf("[InputParser] Skipping annotation %q: missing %q", strings.TrimSpace(entry), annotationKeySeparator)
			}
			continue
		}
		kv := strings.SplitN(entry, annotationKeySeparator, 2)
		subject := strings.TrimSpace(kv[0])
		if subject == "" {
			log.Printf("[InputParser] Skipping annotation %q: empty subject", strings.TrimSpace(entry))
			continue
		}
		notes[subject] = strings.TrimSpace(kv[1])
	}
	return notes
}
