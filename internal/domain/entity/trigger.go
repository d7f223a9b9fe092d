package entity

import (
	"fmt"
	"time"

	"github.com/diegoclair/class-schedule-bot/internal/domain"
)

// Trigger is a weekly recurring firing derived from one lesson
type Trigger struct {
	ID     string
	Day    time.Weekday
	Hour   int
	Minute int
	Kind   domain.EventKind
	Lesson Lesson
}

// DayLabel is the canonical day name shown in messages
func (t Trigger) DayLabel() string {
	return t.Day.String()
}

// CronSpec renders the trigger as a standard five field cron expression
func (t Trigger) CronSpec() string {
	return fmt.Sprintf("%d %d * * %d", t.Minute, t.Hour, int(t.Day))
}

// Delivery is the recorded outcome of one send attempt
type Delivery struct {
	ID        int64
	RunID     string
	TriggerID string
	Kind      domain.EventKind
	Recipient string
	Success   bool
	Error     string
	CreatedAt time.Time
}
