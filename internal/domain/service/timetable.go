package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/diegoclair/class-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/class-schedule-bot/internal/domain/entity"
)

type TimetableService struct {
	dm     contract.DataManager
	logger *slog.Logger
}

// NewTimetableService manages the stored timetable
func NewTimetableService(dm contract.DataManager, logger *slog.Logger) *TimetableService {
	return &TimetableService{dm: dm, logger: logger}
}

// Load reads the stored timetable
func (s *TimetableService) Load() (entity.Timetable, error) {
	tt, err := s.dm.Timetable().Get()
	if err != nil {
		return entity.Timetable{}, fmt.Errorf("failed to load timetable: %w", err)
	}
	return tt, nil
}

// Import validates tt and replaces the stored timetable with it
func (s *TimetableService) Import(ctx context.Context, tt entity.Timetable) error {
	if err := tt.Validate(); err != nil {
		return err
	}

	var total int
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Timetable().Clear(); err != nil {
			return fmt.Errorf("failed to clear timetable: %w", err)
		}

		for day := time.Sunday; day <= time.Saturday; day++ {
			for position, lesson := range tt.Day(day) {
				if err := tx.Timetable().AddLesson(int(day), position, lesson); err != nil {
					return fmt.Errorf("failed to add %s lesson %s: %w", day, lesson.Subject, err)
				}
				total++
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Timetable imported", "lessons", total)
	return nil
}
