package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/diegoclair/class-schedule-bot/internal/domain"
	"github.com/diegoclair/class-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/class-schedule-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var rplMonday = entity.Lesson{Subject: "RPL", StartTime: "07:00", EndTime: "09:40", Teacher: "Pak Mift"}

func mondayTimetable() entity.Timetable {
	var tt entity.Timetable
	tt[time.Monday] = []entity.Lesson{rplMonday}
	tt[time.Sunday] = []entity.Lesson{}
	return tt
}

// eventCollector records events in arrival order
type eventCollector struct {
	mu     sync.Mutex
	events []entity.Event
}

func (c *eventCollector) handle(evt entity.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, evt)
}

func (c *eventCollector) types() []domain.EventType {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []domain.EventType
	for _, evt := range c.events {
		out = append(out, evt.Type)
	}
	return out
}

func (c *eventCollector) subscribe(d *Dispatcher, types ...domain.EventType) {
	for _, eventType := range types {
		d.On(eventType, c.handle)
	}
}

func Test_newDispatcher(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	d := newTestDispatcher(m)

	require.NotNil(t, d)
	assert.Equal(t, m.mockTransport, d.transport)
	assert.Equal(t, m.mockQuotes, d.quotes)
	assert.Equal(t, testRecipient, d.recipient)
	assert.NotNil(t, d.cron)
	assert.Empty(t, d.Triggers())
}

func TestDispatcher_StartAndStop(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	initialized := make(chan struct{})
	m.mockTransport.EXPECT().Initialize(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		defer close(initialized)
		return nil
	}).Times(1)
	m.mockTransport.EXPECT().Destroy().Return(nil).Times(1)

	d := newTestDispatcher(m)

	events := &eventCollector{}
	events.subscribe(d, domain.EventAuthenticated, domain.EventReady)

	err := d.Start(context.Background(), mondayTimetable())
	require.NoError(t, err)
	<-initialized

	triggers := d.Triggers()
	require.Len(t, triggers, 3)
	assert.Equal(t, "morning_RPL_Monday", triggers[0].ID)
	assert.Equal(t, "reminder_RPL_Monday", triggers[1].ID)
	assert.Equal(t, "end_RPL_Monday", triggers[2].ID)
	assert.Equal(t, []entity.Lesson{rplMonday}, d.Lessons(time.Monday))
	assert.Empty(t, d.Lessons(time.Sunday))

	entries := d.cron.Entries()
	require.Len(t, entries, 3)

	// Sunday 2024-01-07, so every trigger's next firing is Monday 2024-01-08
	from := time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)
	want := map[time.Time]bool{
		time.Date(2024, 1, 8, 5, 0, 0, 0, time.UTC):  true,
		time.Date(2024, 1, 8, 6, 50, 0, 0, time.UTC): true,
		time.Date(2024, 1, 8, 9, 40, 0, 0, time.UTC): true,
	}
	for _, entry := range entries {
		next := entry.Schedule.Next(from)
		assert.True(t, want[next], "unexpected next firing %s", next)
	}

	require.Eventually(t, func() bool {
		return len(events.types()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []domain.EventType{domain.EventAuthenticated, domain.EventReady}, events.types())

	err = d.Stop()
	require.NoError(t, err)

	assert.Empty(t, d.Triggers())
	assert.Empty(t, d.cron.Entries())
}

func TestDispatcher_Stop_DestroyError(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockTransport.EXPECT().Destroy().Return(errors.New("already closed")).Times(1)

	d := newTestDispatcher(m)

	err := d.Stop()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to destroy transport")
}

func TestDispatcher_initTransport(t *testing.T) {
	tests := []struct {
		name    string
		initErr error
		want    []domain.EventType
	}{
		{
			name:    "Should emit authenticated then ready on success",
			initErr: nil,
			want:    []domain.EventType{domain.EventAuthenticated, domain.EventReady},
		},
		{
			name:    "Should emit auth_failure when credentials are rejected",
			initErr: fmt.Errorf("%w: invalid_auth", domain.ErrAuthFailure),
			want:    []domain.EventType{domain.EventAuthFailure},
		},
		{
			name:    "Should emit init_error for any other failure",
			initErr: errors.New("connection refused"),
			want:    []domain.EventType{domain.EventInitError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			m.mockTransport.EXPECT().Initialize(gomock.Any()).Return(tt.initErr).Times(1)

			d := newTestDispatcher(m)
			events := &eventCollector{}
			events.subscribe(d, domain.EventAuthenticated, domain.EventReady, domain.EventAuthFailure, domain.EventInitError)

			d.initTransport(context.Background())

			assert.Equal(t, tt.want, events.types())
			if tt.initErr != nil {
				assert.ErrorIs(t, events.events[0].Err, tt.initErr)
			}
		})
	}
}

func TestDispatcher_fire(t *testing.T) {
	composer := NewComposer("")

	tests := []struct {
		name      string
		trigger   entity.Trigger
		buildMock func(mocks allMocks, trigger entity.Trigger)
		wantEvent domain.EventType
	}{
		{
			name:    "Should fetch a quote and send the morning message",
			trigger: entity.Trigger{ID: "morning_RPL_Monday", Day: time.Monday, Hour: 5, Kind: domain.KindMorning, Lesson: rplMonday},
			buildMock: func(mocks allMocks, trigger entity.Trigger) {
				gomock.InOrder(
					mocks.mockQuotes.EXPECT().FetchQuote(gomock.Any()).Return("Ngelmu iku kalakone kanthi laku").Times(1),
					mocks.mockTransport.EXPECT().
						SendMessage(gomock.Any(), testRecipient, composer.MorningMessage(rplMonday, "Monday", "Ngelmu iku kalakone kanthi laku")).
						Return(nil).Times(1),
				)
			},
			wantEvent: domain.EventMessageSent,
		},
		{
			name:    "Should fetch a quote and send the reminder message",
			trigger: entity.Trigger{ID: "reminder_RPL_Monday", Day: time.Monday, Hour: 6, Minute: 50, Kind: domain.KindReminder, Lesson: rplMonday},
			buildMock: func(mocks allMocks, trigger entity.Trigger) {
				gomock.InOrder(
					mocks.mockQuotes.EXPECT().FetchQuote(gomock.Any()).Return(domain.DefaultQuote).Times(1),
					mocks.mockTransport.EXPECT().
						SendMessage(gomock.Any(), testRecipient, composer.ReminderMessage(rplMonday, domain.DefaultQuote)).
						Return(nil).Times(1),
				)
			},
			wantEvent: domain.EventMessageSent,
		},
		{
			name:    "Should send the end message without fetching a quote",
			trigger: entity.Trigger{ID: "end_RPL_Monday", Day: time.Monday, Hour: 9, Minute: 40, Kind: domain.KindEnd, Lesson: rplMonday},
			buildMock: func(mocks allMocks, trigger entity.Trigger) {
				mocks.mockTransport.EXPECT().
					SendMessage(gomock.Any(), testRecipient, composer.EndMessage(rplMonday)).
					Return(nil).Times(1)
			},
			wantEvent: domain.EventMessageSent,
		},
		{
			name:    "Should report a failed send as message_error",
			trigger: entity.Trigger{ID: "end_RPL_Monday", Day: time.Monday, Hour: 9, Minute: 40, Kind: domain.KindEnd, Lesson: rplMonday},
			buildMock: func(mocks allMocks, trigger entity.Trigger) {
				mocks.mockTransport.EXPECT().
					SendMessage(gomock.Any(), testRecipient, gomock.Any()).
					Return(errors.New("channel_not_found")).Times(1)
			},
			wantEvent: domain.EventMessageError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m, tt.trigger)

			d := newTestDispatcher(m)
			events := &eventCollector{}
			events.subscribe(d, domain.EventMessageSent, domain.EventMessageError)

			d.fire(context.Background(), tt.trigger)

			require.Len(t, events.events, 1)
			evt := events.events[0]
			assert.Equal(t, tt.wantEvent, evt.Type)
			assert.Equal(t, testRecipient, evt.Recipient)
			require.NotNil(t, evt.Trigger)
			assert.Equal(t, tt.trigger.ID, evt.Trigger.ID)
			if tt.wantEvent == domain.EventMessageError {
				assert.EqualError(t, evt.Err, "channel_not_found")
			} else {
				assert.NoError(t, evt.Err)
			}
		})
	}
}

func TestDispatcher_fire_Concurrent(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockQuotes.EXPECT().FetchQuote(gomock.Any()).Return("q").Times(2)
	m.mockTransport.EXPECT().SendMessage(gomock.Any(), testRecipient, gomock.Any()).Return(nil).Times(3)

	d := newTestDispatcher(m)
	events := &eventCollector{}
	events.subscribe(d, domain.EventMessageSent)

	triggers := DeriveTriggers(mondayTimetable())
	require.Len(t, triggers, 3)

	var wg sync.WaitGroup
	for _, trigger := range triggers {
		wg.Add(1)
		go func(trigger entity.Trigger) {
			defer wg.Done()
			d.fire(context.Background(), trigger)
		}(trigger)
	}
	wg.Wait()

	assert.Len(t, events.types(), 3)
}

type pairingTransport struct {
	*mocks.MockTransport
	*mocks.MockPairer
}

func TestDispatcher_Start_Pairing(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	pairer := mocks.NewMockPairer(ctrl)
	transport := pairingTransport{MockTransport: m.mockTransport, MockPairer: pairer}

	var challenge func(string)
	pairer.EXPECT().OnPairing(gomock.Any()).Do(func(fn func(string)) {
		challenge = fn
	}).Times(1)

	initialized := make(chan struct{})
	m.mockTransport.EXPECT().Initialize(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		defer close(initialized)
		challenge("2@pairing-data")
		return nil
	}).Times(1)
	m.mockTransport.EXPECT().Destroy().Return(nil).Times(1)

	d := newDispatcher(transport, m.mockQuotes, NewComposer(""), testRecipient, time.UTC, discardLogger())
	events := &eventCollector{}
	events.subscribe(d, domain.EventQR)

	require.NoError(t, d.Start(context.Background(), entity.Timetable{}))
	<-initialized

	require.Len(t, events.events, 1)
	assert.Equal(t, "2@pairing-data", events.events[0].Data)

	require.NoError(t, d.Stop())
}

type panickingTransport struct {
	*mocks.MockTransport
	sends atomic.Int32
}

func (p *panickingTransport) SendMessage(ctx context.Context, recipient, text string) error {
	p.sends.Add(1)
	var delivered map[string]string
	delivered[recipient] = text
	return nil
}

func TestDispatcher_RecoversPanickingJob(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	transport := &panickingTransport{MockTransport: m.mockTransport}
	d := newDispatcher(transport, m.mockQuotes, NewComposer(""), testRecipient, time.UTC, discardLogger())

	endTrigger := entity.Trigger{ID: "end_RPL_Monday", Day: time.Monday, Hour: 9, Minute: 40, Kind: domain.KindEnd, Lesson: rplMonday}

	var healthy atomic.Int32
	_, err := d.cron.AddFunc("@every 1s", func() {
		d.fire(context.Background(), endTrigger)
	})
	require.NoError(t, err)
	_, err = d.cron.AddFunc("@every 1s", func() {
		healthy.Add(1)
	})
	require.NoError(t, err)

	d.cron.Start()
	defer d.cron.Stop()

	require.Eventually(t, func() bool {
		return transport.sends.Load() >= 2 && healthy.Load() >= 2
	}, 5*time.Second, 50*time.Millisecond)
}

func TestDispatcher_StopDuringInitialize(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})
	returned := make(chan struct{})
	m.mockTransport.EXPECT().Initialize(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		defer close(returned)
		close(started)
		<-release
		return nil
	}).Times(1)
	m.mockTransport.EXPECT().Destroy().Return(nil).Times(1)

	d := newTestDispatcher(m)
	events := &eventCollector{}
	events.subscribe(d, domain.EventAuthenticated, domain.EventReady, domain.EventAuthFailure, domain.EventInitError)

	require.NoError(t, d.Start(context.Background(), mondayTimetable()))
	<-started

	require.NoError(t, d.Stop())
	close(release)
	<-returned

	assert.Never(t, func() bool {
		return len(events.types()) > 0
	}, 200*time.Millisecond, 10*time.Millisecond)
}
