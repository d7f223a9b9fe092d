package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/diegoclair/class-schedule-bot/internal/domain"
	"github.com/diegoclair/class-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/class-schedule-bot/internal/domain/entity"
	"github.com/robfig/cron/v3"
)

type registration struct {
	entryID cron.EntryID
	trigger entity.Trigger
}

// Dispatcher owns the recurring trigger registry and sends the composed
// messages through the transport when a trigger fires.
type Dispatcher struct {
	transport contract.Transport
	quotes    contract.QuoteProvider
	composer  *Composer
	recipient string
	location  *time.Location
	logger    *slog.Logger

	cron   *cron.Cron
	events *eventBus

	mu        sync.RWMutex
	timetable entity.Timetable
	entries   map[string]registration
	order     []string
	stopped   bool
}

func newDispatcher(transport contract.Transport, quotes contract.QuoteProvider, composer *Composer, recipient string, location *time.Location, logger *slog.Logger) *Dispatcher {
	if location == nil {
		location = time.Local
	}

	return &Dispatcher{
		transport: transport,
		quotes:    quotes,
		composer:  composer,
		recipient: recipient,
		location:  location,
		logger:    logger,
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithLogger(cronLogger{logger: logger}),
			// a panicking job must not take the process down
			cron.WithChain(cron.Recover(cronLogger{logger: logger})),
		),
		events:  newEventBus(),
		entries: make(map[string]registration),
	}
}

// On registers a handler for one event type. Handlers of the same type are
// notified in the order they were registered.
func (d *Dispatcher) On(eventType domain.EventType, handler EventHandler) {
	d.events.on(eventType, handler)
}

// Start derives the triggers of tt, registers them and starts the scheduler.
// The transport is initialized in the background; its outcome is reported
// through the ready, authenticated, auth_failure and init_error events.
func (d *Dispatcher) Start(ctx context.Context, tt entity.Timetable) error {
	jobCtx := context.WithoutCancel(ctx)
	triggers := DeriveTriggers(tt)

	d.mu.Lock()
	d.timetable = tt
	d.stopped = false
	for _, trigger := range triggers {
		trigger := trigger
		entryID, err := d.cron.AddFunc(trigger.CronSpec(), func() {
			d.fire(jobCtx, trigger)
		})
		if err != nil {
			d.mu.Unlock()
			return fmt.Errorf("failed to register trigger %s: %w", trigger.ID, err)
		}

		d.entries[trigger.ID] = registration{entryID: entryID, trigger: trigger}
		d.order = append(d.order, trigger.ID)
	}
	d.mu.Unlock()

	d.cron.Start()
	d.logger.Info("All lessons scheduled", "triggers", len(triggers), "recipient", d.recipient)

	if pairer, ok := d.transport.(contract.Pairer); ok {
		pairer.OnPairing(func(data string) {
			d.events.emit(entity.Event{Type: domain.EventQR, Data: data})
		})
	}

	go d.initTransport(jobCtx)

	return nil
}

// Stop prevents any further firing and closes the transport session.
// Sends already in flight are left to complete.
func (d *Dispatcher) Stop() error {
	d.mu.Lock()
	for _, id := range d.order {
		d.cron.Remove(d.entries[id].entryID)
	}
	d.entries = make(map[string]registration)
	d.order = nil
	d.stopped = true
	d.mu.Unlock()

	d.cron.Stop()
	d.logger.Info("Scheduler stopped")

	if err := d.transport.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy transport: %w", err)
	}
	return nil
}

// Triggers returns the registered triggers in derivation order
func (d *Dispatcher) Triggers() []entity.Trigger {
	d.mu.RLock()
	defer d.mu.RUnlock()

	triggers := make([]entity.Trigger, 0, len(d.order))
	for _, id := range d.order {
		triggers = append(triggers, d.entries[id].trigger)
	}
	return triggers
}

// Lessons returns the lessons of one day from the started timetable
func (d *Dispatcher) Lessons(day time.Weekday) []entity.Lesson {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.timetable.Day(day)
}

// Today is the current weekday in the scheduler's time zone
func (d *Dispatcher) Today() time.Weekday {
	return time.Now().In(d.location).Weekday()
}

func (d *Dispatcher) initTransport(ctx context.Context) {
	err := d.transport.Initialize(ctx)

	d.mu.RLock()
	stopped := d.stopped
	d.mu.RUnlock()
	if stopped {
		d.logger.Info("Transport initialization finished after stop, ignoring", "error", err)
		return
	}

	switch {
	case errors.Is(err, domain.ErrAuthFailure):
		d.logger.Error("Transport authentication failed", "error", err)
		d.events.emit(entity.Event{Type: domain.EventAuthFailure, Err: err})
	case err != nil:
		d.logger.Error("Failed to initialize transport", "error", err)
		d.events.emit(entity.Event{Type: domain.EventInitError, Err: err})
	default:
		d.logger.Info("Transport ready")
		d.events.emit(entity.Event{Type: domain.EventAuthenticated})
		d.events.emit(entity.Event{Type: domain.EventReady})
	}
}

// fire runs one trigger: quote fetch (when needed), compose, send
func (d *Dispatcher) fire(ctx context.Context, trigger entity.Trigger) {
	text := d.compose(ctx, trigger)

	if err := d.transport.SendMessage(ctx, d.recipient, text); err != nil {
		d.logger.Error("Failed to send message", "trigger", trigger.ID, "error", err)
		d.events.emit(entity.Event{
			Type:      domain.EventMessageError,
			Trigger:   &trigger,
			Recipient: d.recipient,
			Err:       err,
		})
		return
	}

	d.logger.Info("Message sent", "trigger", trigger.ID, "kind", trigger.Kind)
	d.events.emit(entity.Event{
		Type:      domain.EventMessageSent,
		Trigger:   &trigger,
		Recipient: d.recipient,
	})
}

func (d *Dispatcher) compose(ctx context.Context, trigger entity.Trigger) string {
	var quote string
	if trigger.Kind.NeedsQuote() {
		quote = d.quotes.FetchQuote(ctx)
	}

	switch trigger.Kind {
	case domain.KindMorning:
		return d.composer.MorningMessage(trigger.Lesson, trigger.DayLabel(), quote)
	case domain.KindReminder:
		return d.composer.ReminderMessage(trigger.Lesson, quote)
	default:
		return d.composer.EndMessage(trigger.Lesson)
	}
}

// cronLogger routes the scheduler's own logging through slog
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
