package database

import (
	"fmt"

	"github.com/diegoclair/class-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/class-schedule-bot/internal/domain/entity"
)

type timetableRepo struct {
	db dbConn
}

func newTimetableRepo(db dbConn) contract.TimetableRepo {
	return &timetableRepo{db: db}
}

func (r *timetableRepo) Get() (entity.Timetable, error) {
	var tt entity.Timetable
	query := `
		SELECT day_of_week, subject, start_time, end_time, teacher, room
		FROM lessons
		ORDER BY day_of_week ASC, position ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return tt, fmt.Errorf("failed to get lessons: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var day int
		var lesson entity.Lesson
		err := rows.Scan(
			&day,
			&lesson.Subject,
			&lesson.StartTime,
			&lesson.EndTime,
			&lesson.Teacher,
			&lesson.Room,
		)
		if err != nil {
			return tt, fmt.Errorf("failed to scan lesson: %w", err)
		}
		if day < 0 || day > 6 {
			return tt, fmt.Errorf("lesson %s has invalid day %d", lesson.Subject, day)
		}
		tt[day] = append(tt[day], lesson)
	}

	if err := rows.Err(); err != nil {
		return tt, fmt.Errorf("failed to iterate lessons: %w", err)
	}

	return tt, nil
}

func (r *timetableRepo) Clear() error {
	query := `DELETE FROM lessons`

	_, err := r.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to clear lessons: %w", err)
	}

	return nil
}

func (r *timetableRepo) AddLesson(day int, position int, lesson entity.Lesson) error {
	query := `
		INSERT INTO lessons (day_of_week, position, subject, start_time, end_time, teacher, room)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		day,
		position,
		lesson.Subject,
		lesson.StartTime,
		lesson.EndTime,
		lesson.Teacher,
		lesson.Room,
	)
	if err != nil {
		return fmt.Errorf("failed to add lesson: %w", err)
	}

	return nil
}
