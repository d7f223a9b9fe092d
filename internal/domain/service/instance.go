package service

import (
	"log/slog"
	"time"

	"github.com/diegoclair/class-schedule-bot/internal/domain/contract"
)

// Options carries what the embedding application supplies at construction
type Options struct {
	Recipient string
	ClassName string
	Location  *time.Location
}

type Instance struct {
	Dispatcher *Dispatcher
	Deliveries *deliveryRecorder
}

func NewInstance(dm contract.DataManager, transport contract.Transport, quotes contract.QuoteProvider, opts Options, logger *slog.Logger) *Instance {
	dispatcher := newDispatcher(transport, quotes, NewComposer(opts.ClassName), opts.Recipient, opts.Location, logger)

	deliveries := newDeliveryRecorder(dm, logger)
	deliveries.Attach(dispatcher)

	return &Instance{
		Dispatcher: dispatcher,
		Deliveries: deliveries,
	}
}
