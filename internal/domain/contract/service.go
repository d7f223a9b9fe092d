package contract

import (
	"time"

	"github.com/diegoclair/class-schedule-bot/internal/domain/entity"
)

// ScheduleService exposes the running schedule to the slash command handler
type ScheduleService interface {
	Lessons(day time.Weekday) []entity.Lesson
	Triggers() []entity.Trigger
	Today() time.Weekday
}
