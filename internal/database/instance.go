package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/class-schedule-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db            *DB
	timetableRepo contract.TimetableRepo
	deliveryRepo  contract.DeliveryRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.timetableRepo = newTimetableRepo(i.db.conn)
	i.deliveryRepo = newDeliveryRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		timetableRepo: newTimetableRepo(db),
		deliveryRepo:  newDeliveryRepo(db),
	}
}

// Timetable returns the timetable repository
func (i *instance) Timetable() contract.TimetableRepo {
	return i.timetableRepo
}

// Delivery returns the delivery log repository
func (i *instance) Delivery() contract.DeliveryRepo {
	return i.deliveryRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fmt.Errorf("nested transactions are not supported")
	}

	tx, err := i.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
