package service

import (
	"fmt"
	"strings"

	"github.com/diegoclair/class-schedule-bot/internal/domain"
	"github.com/diegoclair/class-schedule-bot/internal/domain/entity"
)

// Composer renders the notification texts. It does no I/O.
type Composer struct {
	className string
}

func NewComposer(className string) *Composer {
	if className == "" {
		className = domain.DefaultClassName
	}
	return &Composer{className: className}
}

// MorningMessage greets the class before the first lesson of the day
func (c *Composer) MorningMessage(lesson entity.Lesson, day, quote string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌅 *Selamat Pagi %s!*\n\n", c.className)
	fmt.Fprintf(&b, "Hari ini %s pelajaran pertama:\n", day)
	fmt.Fprintf(&b, "📚 %s%s\n", lesson.Subject, teacherClause(lesson))
	fmt.Fprintf(&b, "⏰ Jadwal: %s\n\n", timeRange(lesson))
	fmt.Fprintf(&b, "Quote hari ini:\n_%s_\n\n", quote)
	b.WriteString("Semangat belajar! 💪")
	return b.String()
}

// ReminderMessage announces the lesson starting in ten minutes
func (c *Composer) ReminderMessage(lesson entity.Lesson, quote string) string {
	var b strings.Builder
	b.WriteString("⏰ *Pengingat Pergantian Pelajaran*\n\n")
	fmt.Fprintf(&b, "Dalam %d menit akan dimulai:\n", domain.ReminderLead)
	fmt.Fprintf(&b, "📚 %s%s\n", lesson.Subject, teacherClause(lesson))
	fmt.Fprintf(&b, "⏰ Waktu: %s\n\n", timeRange(lesson))
	fmt.Fprintf(&b, "Quote motivasi:\n_%s_", quote)
	return b.String()
}

// EndMessage closes a lesson. It never mentions time, teacher or quote.
func (c *Composer) EndMessage(lesson entity.Lesson) string {
	return fmt.Sprintf("🔔 Pelajaran %s telah selesai.\nTerima kasih atas perhatiannya! 🙏", lesson.Subject)
}

// FormatTime left pads "H:MM" to "HH:MM"
func FormatTime(value string) string {
	if len(value) >= 5 {
		return value
	}
	return strings.Repeat("0", 5-len(value)) + value
}

func timeRange(lesson entity.Lesson) string {
	return FormatTime(lesson.StartTime) + " - " + FormatTime(lesson.EndTime)
}

func teacherClause(lesson entity.Lesson) string {
	if !lesson.HasTeacher() {
		return ""
	}
	return " dengan " + lesson.Teacher
}
