package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidLesson is wrapped by every validation failure of a lesson
var ErrInvalidLesson = errors.New("invalid lesson")

// Lesson is a single class slot. Times are "H:MM" or "HH:MM", 24h.
type Lesson struct {
	Subject   string `json:"subject"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Teacher   string `json:"teacher,omitempty"`
	Room      string `json:"room,omitempty"`
}

// Start returns the parsed start time. The timetable is trusted, so a
// malformed value yields the zero Clock.
func (l Lesson) Start() Clock {
	c, _ := ParseClock(l.StartTime)
	return c
}

// End returns the parsed end time.
func (l Lesson) End() Clock {
	c, _ := ParseClock(l.EndTime)
	return c
}

// HasTeacher reports whether the teacher clause should be rendered
func (l Lesson) HasTeacher() bool {
	return l.Teacher != ""
}

// Validate checks the lesson invariants. Only loaders call it; the
// scheduling core assumes a valid timetable.
func (l Lesson) Validate() error {
	if strings.TrimSpace(l.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidLesson)
	}

	start, err := ParseClock(l.StartTime)
	if err != nil {
		return fmt.Errorf("%w: %s start time: %v", ErrInvalidLesson, l.Subject, err)
	}

	end, err := ParseClock(l.EndTime)
	if err != nil {
		return fmt.Errorf("%w: %s end time: %v", ErrInvalidLesson, l.Subject, err)
	}

	if !start.Before(end) {
		return fmt.Errorf("%w: %s starts at %s but ends at %s", ErrInvalidLesson, l.Subject, start, end)
	}

	return nil
}

// Clock is a time of day with minute precision
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses "H:MM" or "HH:MM"
func ParseClock(value string) (Clock, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return Clock{}, fmt.Errorf("invalid time format %q, expected HH:MM", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return Clock{}, fmt.Errorf("invalid hour in %q", value)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("invalid minute in %q", value)
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// Before reports whether c is strictly earlier in the day than other
func (c Clock) Before(other Clock) bool {
	return c.Hour*60+c.Minute < other.Hour*60+other.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Timetable maps each weekday to its ordered lessons. Index is time.Weekday,
// Sunday = 0.
type Timetable [7][]Lesson

// Day returns the lessons of d in class order. Out of range days have none.
func (t Timetable) Day(d time.Weekday) []Lesson {
	if d < time.Sunday || d > time.Saturday {
		return nil
	}
	return t[d]
}

// Validate checks every lesson of every day
func (t Timetable) Validate() error {
	for day := time.Sunday; day <= time.Saturday; day++ {
		for i, lesson := range t[day] {
			if err := lesson.Validate(); err != nil {
				return fmt.Errorf("%s lesson %d: %w", day, i+1, err)
			}
		}
	}
	return nil
}

// ParseWeekday resolves a canonical English day name, case-insensitive
func ParseWeekday(name string) (time.Weekday, error) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(day.String(), strings.TrimSpace(name)) {
			return day, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown day of week: %q", name)
}
