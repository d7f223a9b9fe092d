package service

import (
	"log/slog"

	"github.com/diegoclair/class-schedule-bot/internal/domain"
	"github.com/diegoclair/class-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/class-schedule-bot/internal/domain/entity"
	"github.com/google/uuid"
)

// deliveryRecorder writes every send outcome published by the dispatcher
// to the delivery log, tagged with the id of this process run.
type deliveryRecorder struct {
	dm     contract.DataManager
	runID  string
	logger *slog.Logger
}

func newDeliveryRecorder(dm contract.DataManager, logger *slog.Logger) *deliveryRecorder {
	return &deliveryRecorder{
		dm:     dm,
		runID:  uuid.NewString(),
		logger: logger,
	}
}

func (r *deliveryRecorder) RunID() string {
	return r.runID
}

// Attach subscribes the recorder to the message events of d
func (r *deliveryRecorder) Attach(d *Dispatcher) {
	d.On(domain.EventMessageSent, r.record)
	d.On(domain.EventMessageError, r.record)
}

func (r *deliveryRecorder) record(evt entity.Event) {
	if evt.Trigger == nil {
		return
	}

	delivery := &entity.Delivery{
		RunID:     r.runID,
		TriggerID: evt.Trigger.ID,
		Kind:      evt.Trigger.Kind,
		Recipient: evt.Recipient,
		Success:   evt.Type == domain.EventMessageSent,
	}
	if evt.Err != nil {
		delivery.Error = evt.Err.Error()
	}

	// the log is informational; a write failure must not affect delivery
	if err := r.dm.Delivery().Create(delivery); err != nil {
		r.logger.Warn("Failed to record delivery", "trigger", delivery.TriggerID, "error", err)
	}
}
