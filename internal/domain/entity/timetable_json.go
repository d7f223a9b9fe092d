package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// UnmarshalJSON reads the day-keyed form {"Monday": [...], ...}. Unknown
// day names are rejected; missing days stay empty.
func (t *Timetable) UnmarshalJSON(data []byte) error {
	var raw map[string][]Lesson
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode timetable: %w", err)
	}

	var out Timetable
	for name, lessons := range raw {
		day, err := ParseWeekday(name)
		if err != nil {
			return err
		}
		out[day] = lessons
	}

	*t = out
	return nil
}

// MarshalJSON writes every day, including empty ones, keyed by day name
func (t Timetable) MarshalJSON() ([]byte, error) {
	raw := make(map[string][]Lesson, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		lessons := t[day]
		if lessons == nil {
			lessons = []Lesson{}
		}
		raw[day.String()] = lessons
	}
	return json.Marshal(raw)
}
