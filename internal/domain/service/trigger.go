package service

import (
	"fmt"
	"time"

	"github.com/diegoclair/class-schedule-bot/internal/domain"
	"github.com/diegoclair/class-schedule-bot/internal/domain/entity"
)

// DeriveTriggers turns the weekly timetable into its recurring triggers,
// walking days from Sunday to Saturday and lessons in class order.
// Every lesson yields a reminder and an end trigger; lessons starting at
// 07:00 also yield a morning trigger.
func DeriveTriggers(tt entity.Timetable) []entity.Trigger {
	var triggers []entity.Trigger
	seen := make(map[string]int)

	add := func(trigger entity.Trigger) {
		trigger.ID = uniqueTriggerID(seen, trigger)
		triggers = append(triggers, trigger)
	}

	for day := time.Sunday; day <= time.Saturday; day++ {
		for _, lesson := range tt.Day(day) {
			if morning, ok := morningTrigger(day, lesson); ok {
				add(morning)
			}
			add(reminderTrigger(day, lesson))
			add(endTrigger(day, lesson))
		}
	}

	return triggers
}

func morningTrigger(day time.Weekday, lesson entity.Lesson) (entity.Trigger, bool) {
	start := lesson.Start()
	if start.Hour != domain.FirstLessonHour || start.Minute != domain.FirstLessonMinute {
		return entity.Trigger{}, false
	}

	return entity.Trigger{
		Day:    day,
		Hour:   domain.MorningHour,
		Minute: domain.MorningMinute,
		Kind:   domain.KindMorning,
		Lesson: lesson,
	}, true
}

// reminderTrigger fires ReminderLead minutes before the lesson. Borrowing
// past midnight wraps the hour to 23 but keeps the same weekday.
func reminderTrigger(day time.Weekday, lesson entity.Lesson) entity.Trigger {
	hour, minute := reminderTime(lesson.Start())

	return entity.Trigger{
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Kind:   domain.KindReminder,
		Lesson: lesson,
	}
}

func reminderTime(start entity.Clock) (hour, minute int) {
	if start.Minute >= domain.ReminderLead {
		return start.Hour, start.Minute - domain.ReminderLead
	}
	return (start.Hour - 1 + 24) % 24, start.Minute + 60 - domain.ReminderLead
}

func endTrigger(day time.Weekday, lesson entity.Lesson) entity.Trigger {
	end := lesson.End()

	return entity.Trigger{
		Day:    day,
		Hour:   end.Hour,
		Minute: end.Minute,
		Kind:   domain.KindEnd,
		Lesson: lesson,
	}
}

// uniqueTriggerID keys a trigger by kind, subject and day. A subject taught
// twice on the same day gets a numeric suffix on its later occurrences.
func uniqueTriggerID(seen map[string]int, trigger entity.Trigger) string {
	base := fmt.Sprintf("%s_%s_%s", trigger.Kind, trigger.Lesson.Subject, trigger.DayLabel())

	seen[base]++
	if n := seen[base]; n > 1 {
		return fmt.Sprintf("%s_%d", base, n)
	}
	return base
}
