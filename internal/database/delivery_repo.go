package database

import (
	"fmt"

	"github.com/diegoclair/class-schedule-bot/internal/domain"
	"github.com/diegoclair/class-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/class-schedule-bot/internal/domain/entity"
)

type deliveryRepo struct {
	db dbConn
}

func newDeliveryRepo(db dbConn) contract.DeliveryRepo {
	return &deliveryRepo{db: db}
}

func (r *deliveryRepo) Create(delivery *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (run_id, trigger_id, kind, recipient, success, error)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		delivery.RunID,
		delivery.TriggerID,
		string(delivery.Kind),
		delivery.Recipient,
		delivery.Success,
		delivery.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to create delivery: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	delivery.ID = id
	return nil
}

func (r *deliveryRepo) ListRecent(limit int) ([]*entity.Delivery, error) {
	query := `
		SELECT id, run_id, trigger_id, kind, recipient, success, error, created_at
		FROM deliveries
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []*entity.Delivery
	for rows.Next() {
		delivery := &entity.Delivery{}
		var kind string
		err := rows.Scan(
			&delivery.ID,
			&delivery.RunID,
			&delivery.TriggerID,
			&kind,
			&delivery.Recipient,
			&delivery.Success,
			&delivery.Error,
			&delivery.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		delivery.Kind = domain.EventKind(kind)
		deliveries = append(deliveries, delivery)
	}

	return deliveries, rows.Err()
}
