package contract

import (
	"context"

	"github.com/diegoclair/class-schedule-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Timetable() TimetableRepo
	Delivery() DeliveryRepo
}

// TimetableRepo defines the contract for the stored weekly timetable
type TimetableRepo interface {
	Get() (entity.Timetable, error)
	Clear() error
	AddLesson(day int, position int, lesson entity.Lesson) error
}

// DeliveryRepo defines the contract for the send outcome log
type DeliveryRepo interface {
	Create(delivery *entity.Delivery) error
	ListRecent(limit int) ([]*entity.Delivery, error)
}
