package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/diegoclair/class-schedule-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testRecipient = "C123456789"

type allMocks struct {
	mockDataManager   *mocks.MockDataManager
	mockTimetableRepo *mocks.MockTimetableRepo
	mockDeliveryRepo  *mocks.MockDeliveryRepo
	mockTransport     *mocks.MockTransport
	mockQuotes        *mocks.MockQuoteProvider
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	timetableRepo := mocks.NewMockTimetableRepo(ctrl)
	dm.EXPECT().Timetable().Return(timetableRepo).AnyTimes()

	deliveryRepo := mocks.NewMockDeliveryRepo(ctrl)
	dm.EXPECT().Delivery().Return(deliveryRepo).AnyTimes()

	m = allMocks{
		mockDataManager:   dm,
		mockTimetableRepo: timetableRepo,
		mockDeliveryRepo:  deliveryRepo,
		mockTransport:     mocks.NewMockTransport(ctrl),
		mockQuotes:        mocks.NewMockQuoteProvider(ctrl),
	}

	// validate service creation
	instance := NewInstance(dm, m.mockTransport, m.mockQuotes, Options{Recipient: testRecipient}, discardLogger())
	require.NotNil(t, instance)

	return
}

func newTestDispatcher(m allMocks) *Dispatcher {
	return newDispatcher(m.mockTransport, m.mockQuotes, NewComposer(""), testRecipient, time.UTC, discardLogger())
}
